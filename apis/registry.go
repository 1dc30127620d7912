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

// Registry is the ordered, append-only list of resolution rules owned by one
// namespace. There is no removal operation.
type Registry interface {
	// Add appends rule at the end of the list.
	Add(rule Rule) error
	// Rules returns the current rules in evaluation order. The returned slice
	// is a snapshot and must not be modified.
	Rules() []Rule
	// Count returns the number of rules.
	Count() int
}
