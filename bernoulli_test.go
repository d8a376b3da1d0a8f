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
	"fmt"
	"testing"
)

func TestBernoulli(t *testing.T) {
	// B_2m = N/D with the von Staudt-Clausen denominator; the expected
	// strings are the exact rationals at 40 digits.
	tests := []struct {
		n int
		r string // digit prefix
	}{
		{0, "1"},
		{1, "-0.5"},
		{3, "0"},
		{5, "0"},
		{2, "0.1666666666666666666666666666666666"},
		{4, "-0.0333333333333333333333333333333333"},
		{6, "0.0238095238095238095238095238095238"},
		{8, "-0.0333333333333333333333333333333333"},
		{10, "0.0757575757575757575757575757575757"},
		{12, "-0.2531135531135531135531135531135531"},
		{14, "1.1666666666666666666666666666666666"},
		{16, "-7.0921568627450980392156862745098039"},
	}
	gen := NewBernoulliGenerator(testCtx)
	for _, tc := range tests {
		t.Run(fmt.Sprint(tc.n), func(t *testing.T) {
			d := new(Decimal)
			if _, err := gen.Bernoulli(d, tc.n); err != nil {
				t.Fatal(err)
			}
			checkPrefix(t, d.String(), tc.r)
		})
	}

	d := new(Decimal)
	if _, err := gen.Bernoulli(d, -2); err == nil {
		t.Fatal("negative index: expected error")
	}
}
