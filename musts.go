// Copyright 2023 The decfp Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package decfp

import "fmt"

// MustParse is like NewFromString but panics on a syntax error. It
// simplifies the use of decimal literals:
//
//	pi := decfp.MustParse("3.14159")
func MustParse(s string) *Decimal {
	d, err := NewFromString(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q): %v", s, err))
	}
	return d
}

// MustNew is like New but panics when scale is out of range. It exists
// for symmetry with MustParse in variable declarations.
func MustNew(coeff int64, scale int) *Decimal {
	if scale > MaxScale || scale < -MaxScale {
		panic(fmt.Sprintf("MustNew(%d, %d): %s", coeff, scale, errExponentOutOfRangeStr))
	}
	return New(coeff, scale)
}
