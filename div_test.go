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
	"strings"
	"testing"
)

func TestQuo(t *testing.T) {
	tests := []struct {
		x, y string
		r    string
	}{
		{x: "6", y: "3", r: "2"},
		{x: "10", y: "4", r: "2.5"},
		{x: "1", y: "8", r: "0.125"},
		{x: "-6", y: "3", r: "-2"},
		{x: "6", y: "-3", r: "-2"},
		{x: "-6", y: "-3", r: "2"},
		{x: "0", y: "7", r: "0"},
		{x: "1.21", y: "1.1", r: "1.1"},
		{x: "100", y: "0.5", r: "200"},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("%s,%s", tc.x, tc.y), func(t *testing.T) {
			x := newDecimal(t, testCtx, tc.x)
			y := newDecimal(t, testCtx, tc.y)
			d := new(Decimal)
			if _, err := testCtx.Quo(d, x, y); err != nil {
				t.Fatal(err)
			}
			if got := d.String(); got != tc.r {
				t.Fatalf("got %s, expected %s", got, tc.r)
			}
		})
	}
}

func TestQuoOneThird(t *testing.T) {
	x := newDecimal(t, testCtx, "1")
	y := newDecimal(t, testCtx, "3")
	d := new(Decimal)
	if _, err := testCtx.Quo(d, x, y); err != nil {
		t.Fatal(err)
	}
	want := "0." + strings.Repeat("3", 40)
	if got := d.String(); got != want {
		t.Fatalf("got %s, expected %s", got, want)
	}
}

// TestQuoRefinement pins the Newton-Raphson path against plain long
// division across magnitudes, including operands beyond 2^64.
func TestQuoRefinement(t *testing.T) {
	tests := []struct {
		x, y string
	}{
		{"1", "7"},
		{"123456789123456789123456789", "987654321"},
		{"98765432109876543210987654321098765432109", "12345678901234567890123456789"},
		{"1e50", "3"},
		{"2", "1.4142135623730950488"},
	}
	plain := BaseContext
	plain.DivSteps = 0
	refined := BaseContext
	refined.DivSteps = 5
	for _, tc := range tests {
		t.Run(fmt.Sprintf("%s,%s", tc.x, tc.y), func(t *testing.T) {
			x := newDecimal(t, testCtx, tc.x)
			y := newDecimal(t, testCtx, tc.y)
			a, b := new(Decimal), new(Decimal)
			if _, err := plain.Quo(a, x, y); err != nil {
				t.Fatal(err)
			}
			if _, err := refined.Quo(b, x, y); err != nil {
				t.Fatal(err)
			}
			if a.Cmp(b) != 0 {
				t.Fatalf("plain %s != refined %s", a, b)
			}
		})
	}
}

// TestQuoMulInverse exercises (x/y)*y ~= x within a digit of the
// configured precision.
func TestQuoMulInverse(t *testing.T) {
	values := []string{"1", "3", "-7", "0.001", "123.456", "99999.99999"}
	eps := New(1, 39) // 10^-39
	for _, xs := range values {
		for _, ys := range values {
			t.Run(fmt.Sprintf("%s,%s", xs, ys), func(t *testing.T) {
				x := newDecimal(t, testCtx, xs)
				y := newDecimal(t, testCtx, ys)
				q := new(Decimal)
				if _, err := testCtx.Quo(q, x, y); err != nil {
					t.Fatal(err)
				}
				back := new(Decimal)
				if _, err := testCtx.Mul(back, q, y); err != nil {
					t.Fatal(err)
				}
				diff := new(Decimal)
				if _, err := testCtx.Sub(diff, back, x); err != nil {
					t.Fatal(err)
				}
				diff.Abs(diff)
				if diff.Cmp(eps) > 0 {
					t.Fatalf("(x/y)*y: off by %s", diff)
				}
			})
		}
	}
}

func TestQuoInteger(t *testing.T) {
	tests := []struct {
		x, y string
		r    string
	}{
		{"7", "2", "3"},
		{"-7", "2", "-3"},
		{"7", "-2", "-3"},
		{"1.5", "0.25", "6"},
		{"1", "3", "0"},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("%s,%s", tc.x, tc.y), func(t *testing.T) {
			x := newDecimal(t, testCtx, tc.x)
			y := newDecimal(t, testCtx, tc.y)
			d := new(Decimal)
			if _, err := testCtx.QuoInteger(d, x, y); err != nil {
				t.Fatal(err)
			}
			if got := d.String(); got != tc.r {
				t.Fatalf("got %s, expected %s", got, tc.r)
			}
		})
	}
}

func TestRem(t *testing.T) {
	tests := []struct {
		x, y string
		r    string
	}{
		{"7", "3", "1"},
		{"-5", "3", "-2"},
		{"5", "-3", "2"},
		{"-5", "-3", "-2"},
		{"6", "3", "0"},
		{"1.75", "0.5", "0.25"},
		{"0.3", "0.1", "0"},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("%s,%s", tc.x, tc.y), func(t *testing.T) {
			x := newDecimal(t, testCtx, tc.x)
			y := newDecimal(t, testCtx, tc.y)
			d := new(Decimal)
			if _, err := testCtx.Rem(d, x, y); err != nil {
				t.Fatal(err)
			}
			if got := d.String(); got != tc.r {
				t.Fatalf("got %s, expected %s", got, tc.r)
			}
		})
	}
}
