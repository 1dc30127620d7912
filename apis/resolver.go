/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package apis

// Resolver turns descriptors into predicates.
type Resolver interface {
	// MatchType returns the predicate for d. If no rule applies to d, the
	// predicate always returns false.
	MatchType(d Descriptor) Predicate

	// Match reports whether v satisfies d. Match(d, v) == MatchType(d)(v).
	Match(d Descriptor, v any) bool
}
