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

package descriptor

// Primitive is a built-in category marker. Each tag maps to a fixed predicate
// in the primitive rule.
type Primitive string

const (
	// Function matches non-nil funcs.
	Function Primitive = "Function"
	// Boolean matches bools.
	Boolean Primitive = "Boolean"
	// Number matches integers and floats.
	Number Primitive = "Number"
	// Array matches slices and arrays.
	Array Primitive = "Array"
	// Date matches time.Time and non-nil *time.Time.
	Date Primitive = "Date"
	// RegExp matches non-nil *regexp.Regexp.
	RegExp Primitive = "RegExp"
	// Object matches non-nil references and composites.
	Object Primitive = "Object"
	// String matches strings.
	String Primitive = "String"
)

// Primitives returns every primitive tag.
func Primitives() []Primitive {
	return []Primitive{Function, Boolean, Number, Array, Date, RegExp, Object, String}
}

// DescribeType implements apis.Describer.
func (p Primitive) DescribeType() string { return string(p) }
