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

func TestAdd(t *testing.T) {
	tests := []struct {
		x, y string
		r    string
	}{
		{x: "1", y: "10", r: "11"},
		{x: "1", y: "1e1", r: "11"},
		{x: "1e1", y: "1", r: "11"},
		{x: "0.1", y: "0.9", r: "1"},
		{x: "1.5", y: "2.25", r: "3.75"},
		{x: "1", y: "-1", r: "0"},
		{x: "-3", y: "1", r: "-2"},
		{x: "1", y: "-3", r: "-2"},
		{x: "-1", y: "-2", r: "-3"},
		{x: "0.999", y: "0.001", r: "1"},
		{x: "123456789123456789", y: "1", r: "123456789123456790"},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("%s,%s", tc.x, tc.y), func(t *testing.T) {
			x := newDecimal(t, testCtx, tc.x)
			y := newDecimal(t, testCtx, tc.y)
			d := new(Decimal)
			if _, err := testCtx.Add(d, x, y); err != nil {
				t.Fatal(err)
			}
			if got := d.String(); got != tc.r {
				t.Fatalf("got %s, expected %s", got, tc.r)
			}
		})
	}
}

func TestSub(t *testing.T) {
	tests := []struct {
		x, y string
		r    string
	}{
		{x: "1", y: "10", r: "-9"},
		{x: "10", y: "1", r: "9"},
		{x: "1.5", y: "1.5", r: "0"},
		{x: "0.3", y: "0.1", r: "0.2"},
		{x: "-1", y: "-1", r: "0"},
		{x: "-1", y: "1", r: "-2"},
		{x: "100", y: "0.001", r: "99.999"},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("%s,%s", tc.x, tc.y), func(t *testing.T) {
			x := newDecimal(t, testCtx, tc.x)
			y := newDecimal(t, testCtx, tc.y)
			d := new(Decimal)
			if _, err := testCtx.Sub(d, x, y); err != nil {
				t.Fatal(err)
			}
			if got := d.String(); got != tc.r {
				t.Fatalf("got %s, expected %s", got, tc.r)
			}
		})
	}
}

func TestMul(t *testing.T) {
	tests := []struct {
		x, y string
		r    string
	}{
		{x: "0", y: "5", r: "0"},
		{x: "2", y: "3", r: "6"},
		{x: "-2", y: "3", r: "-6"},
		{x: "-2", y: "-3", r: "6"},
		{x: "1.5", y: "2", r: "3"},
		{x: "0.5", y: "0.5", r: "0.25"},
		{x: "0.1", y: "0.1", r: "0.01"},
		{x: "12345", y: "6789", r: "83810205"},
		{x: "9.99", y: "9.99", r: "99.8001"},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("%s,%s", tc.x, tc.y), func(t *testing.T) {
			x := newDecimal(t, testCtx, tc.x)
			y := newDecimal(t, testCtx, tc.y)
			d := new(Decimal)
			if _, err := testCtx.Mul(d, x, y); err != nil {
				t.Fatal(err)
			}
			if got := d.String(); got != tc.r {
				t.Fatalf("got %s, expected %s", got, tc.r)
			}
		})
	}
}

// TestAddSubInverse exercises (x+y)-y == x and x + (-x) == 0.
func TestAddSubInverse(t *testing.T) {
	values := []string{"0", "1", "-1", "0.5", "123.456", "-9999.0001", "1e20"}
	for _, xs := range values {
		for _, ys := range values {
			t.Run(fmt.Sprintf("%s,%s", xs, ys), func(t *testing.T) {
				x := newDecimal(t, testCtx, xs)
				y := newDecimal(t, testCtx, ys)
				sum := new(Decimal)
				if _, err := testCtx.Add(sum, x, y); err != nil {
					t.Fatal(err)
				}
				back := new(Decimal)
				if _, err := testCtx.Sub(back, sum, y); err != nil {
					t.Fatal(err)
				}
				if back.Cmp(x) != 0 {
					t.Fatalf("(x+y)-y: got %s, expected %s", back, x)
				}
				neg := new(Decimal).Neg(x)
				zero := new(Decimal)
				if _, err := testCtx.Add(zero, x, neg); err != nil {
					t.Fatal(err)
				}
				if zero.Sign() != 0 {
					t.Fatalf("x + (-x): got %s", zero)
				}
			})
		}
	}
}

func TestSpecialValues(t *testing.T) {
	nan := newDecimal(t, testCtx, "NaN")
	inf := newDecimal(t, testCtx, "Infinity")
	ninf := newDecimal(t, testCtx, "-Infinity")
	one := newDecimal(t, testCtx, "1")
	zero := newDecimal(t, testCtx, "0")

	type op func(d, x, y *Decimal) (Condition, error)
	ops := map[string]op{
		"add": testCtx.Add,
		"sub": testCtx.Sub,
		"mul": testCtx.Mul,
		"quo": testCtx.Quo,
		"rem": testCtx.Rem,
		"pow": testCtx.Pow,
	}

	// NaN absorbs through every binary operation.
	for name, f := range ops {
		for _, other := range []*Decimal{one, zero, inf, nan} {
			d := new(Decimal)
			if _, err := f(d, nan, other); err != nil {
				t.Fatalf("%s: %v", name, err)
			}
			if !d.IsNaN() {
				t.Fatalf("%s(NaN, %s): got %s", name, other, d)
			}
			d = new(Decimal)
			if _, err := f(d, other, nan); err != nil {
				t.Fatalf("%s: %v", name, err)
			}
			if !d.IsNaN() {
				t.Fatalf("%s(%s, NaN): got %s", name, other, d)
			}
		}
	}

	quiet := BaseContext.WithTraps(0)
	tests := []struct {
		name string
		f    func(d *Decimal) (Condition, error)
		r    string
	}{
		{"inf+inf", func(d *Decimal) (Condition, error) { return quiet.Add(d, inf, inf) }, "Infinity"},
		{"inf-inf", func(d *Decimal) (Condition, error) { return quiet.Sub(d, inf, inf) }, "NaN"},
		{"inf+1", func(d *Decimal) (Condition, error) { return quiet.Add(d, inf, one) }, "Infinity"},
		{"-inf+1", func(d *Decimal) (Condition, error) { return quiet.Add(d, ninf, one) }, "-Infinity"},
		{"inf*inf", func(d *Decimal) (Condition, error) { return quiet.Mul(d, inf, inf) }, "Infinity"},
		{"inf*-inf", func(d *Decimal) (Condition, error) { return quiet.Mul(d, inf, ninf) }, "-Infinity"},
		{"inf*0", func(d *Decimal) (Condition, error) { return quiet.Mul(d, inf, zero) }, "NaN"},
		{"inf/inf", func(d *Decimal) (Condition, error) { return quiet.Quo(d, inf, inf) }, "NaN"},
		{"1/inf", func(d *Decimal) (Condition, error) { return quiet.Quo(d, one, inf) }, "0"},
		{"inf/1", func(d *Decimal) (Condition, error) { return quiet.Quo(d, inf, one) }, "Infinity"},
		{"1/0", func(d *Decimal) (Condition, error) { return quiet.Quo(d, one, zero) }, "Infinity"},
		{"0/0", func(d *Decimal) (Condition, error) { return quiet.Quo(d, zero, zero) }, "NaN"},
		{"1%0", func(d *Decimal) (Condition, error) { return quiet.Rem(d, one, zero) }, "NaN"},
		{"1%inf", func(d *Decimal) (Condition, error) { return quiet.Rem(d, one, inf) }, "1"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := new(Decimal)
			if _, err := tc.f(d); err != nil {
				t.Fatal(err)
			}
			if got := d.String(); got != tc.r {
				t.Fatalf("got %s, expected %s", got, tc.r)
			}
		})
	}

	// The same illegal operations fail loudly under the default traps.
	d := new(Decimal)
	if _, err := testCtx.Quo(d, one, zero); err == nil {
		t.Fatal("1/0: expected error")
	}
	if _, err := testCtx.Quo(d, zero, zero); err == nil {
		t.Fatal("0/0: expected error")
	}
	if _, err := testCtx.Sub(d, inf, inf); err == nil {
		t.Fatal("inf-inf: expected error")
	}
}

func TestSaturation(t *testing.T) {
	// A quotient whose magnitude cannot be told from infinity at the
	// configured precision saturates.
	x := newDecimal(t, testCtx, "1e400")
	y := newDecimal(t, testCtx, "1e-400")
	d := new(Decimal)
	res, err := testCtx.Quo(d, x, y)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Overflow() {
		t.Fatalf("expected overflow flag, got %s", res)
	}
	if got := d.String(); got != "Infinity" {
		t.Fatalf("got %s, expected Infinity", got)
	}

	// The operands themselves parse exactly.
	if x.String() == "Infinity" || y.Sign() == 0 {
		t.Fatal("operands should be exact")
	}
}
