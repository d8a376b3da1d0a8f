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

import (
	"testing"
)

func TestConstants(t *testing.T) {
	cs, err := NewConstants(testCtx)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		d    *Decimal
		r    string
	}{
		{"pi", cs.Pi(), "3.141592653589793238462643383279502884197"},
		{"e", cs.E(), "2.71828182845904523536028747135266249775"},
		{"1/pi", cs.InvPi(), "0.318309886183790671537767526745028724068"},
		{"pi/2", cs.HalfPi(), "1.570796326794896619231321691639751442098"},
		{"pi/4", cs.QuarterPi(), "0.785398163397448309615660845819875721049"},
		{"2pi", cs.TwoPi(), "6.28318530717958647692528676655900576839"},
		{"2/pi", cs.TwoOverPi(), "0.63661977236758134307553505349005744813"},
		{"2/sqrt(pi)", cs.TwoOverSqrtPi(), "1.1283791670955125738961589031215451716"},
		{"sqrt2", cs.SqrtTwo(), "1.41421356237309504880168872420969807856"},
		{"1/sqrt2", cs.InvSqrtTwo(), "0.70710678118654752440084436210484903928"},
		{"ln2", cs.Ln2(), "0.693147180559945309417232121458176568075"},
		{"ln10", cs.Ln10(), "2.30258509299404568401799145468436420760"},
		{"log2e", cs.Log2E(), "1.44269504088896340735992468100189213742"},
		{"log10e", cs.Log10E(), "0.4342944819032518276511289189166050822944"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			checkPrefix(t, tc.d.String(), tc.r)
		})
	}
}

// TestConstantsPrecision regenerates at a higher precision and checks the
// extended pi digits.
func TestConstantsPrecision(t *testing.T) {
	c := BaseContext.WithDecimals(60)
	cs, err := NewConstants(c)
	if err != nil {
		t.Fatal(err)
	}
	checkPrefix(t, cs.Pi().String(),
		"3.14159265358979323846264338327950288419716939937510582097494")
}
