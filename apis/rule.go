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

// Rule is a single resolution step. A Resolver walks its rules in order and
// the first rule that Applies to a descriptor builds the predicate for it.
type Rule interface {
	// Applies reports whether this rule knows how to interpret d.
	Applies(d Descriptor) bool

	// Build returns the predicate for d. It is only called after Applies(d)
	// returned true. res is the resolver the rule belongs to, so composite
	// descriptors can resolve their members.
	Build(d Descriptor, res Resolver) Predicate
}
