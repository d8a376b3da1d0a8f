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

func TestValueOps(t *testing.T) {
	x := MustParse("10")
	y := MustParse("4")

	sum, err := x.Add(y)
	if err != nil {
		t.Fatal(err)
	}
	if got := sum.String(); got != "14" {
		t.Fatalf("add: got %s", got)
	}

	diff, err := x.Sub(y)
	if err != nil {
		t.Fatal(err)
	}
	if got := diff.String(); got != "6" {
		t.Fatalf("sub: got %s", got)
	}

	prod, err := x.Mul(y)
	if err != nil {
		t.Fatal(err)
	}
	if got := prod.String(); got != "40" {
		t.Fatalf("mul: got %s", got)
	}

	quot, err := x.Div(y)
	if err != nil {
		t.Fatal(err)
	}
	if got := quot.String(); got != "2.5" {
		t.Fatalf("div: got %s", got)
	}

	mod, err := MustParse("-5").Mod(MustParse("3"))
	if err != nil {
		t.Fatal(err)
	}
	if got := mod.String(); got != "-2" {
		t.Fatalf("mod: got %s", got)
	}

	pow, err := MustParse("2").Pow(MustParse("10"))
	if err != nil {
		t.Fatal(err)
	}
	if got := pow.String(); got != "1024" {
		t.Fatalf("pow: got %s", got)
	}

	if got := x.Negated().String(); got != "-10" {
		t.Fatalf("negated: got %s", got)
	}
	if got := MustParse("-3.5").AbsVal().String(); got != "3.5" {
		t.Fatalf("abs: got %s", got)
	}

	// The operands are never mutated.
	if x.String() != "10" || y.String() != "4" {
		t.Fatalf("operands mutated: %s, %s", x, y)
	}
}

func TestValueSqrt(t *testing.T) {
	r, err := MustParse("2").Sqrt()
	if err != nil {
		t.Fatal(err)
	}
	checkPrefix(t, r.String(), "1.414213562373095048801688724209698078569")
}

// TestContextAdoption checks that a binary operation runs under the left
// operand's context, widened to the operands' fractional lengths.
func TestContextAdoption(t *testing.T) {
	narrow := BaseContext.WithDecimals(2)
	x, _, err := narrow.NewFromString("1")
	if err != nil {
		t.Fatal(err)
	}
	y := MustParse("3")
	q, err := x.Div(y)
	if err != nil {
		t.Fatal(err)
	}
	if got := q.String(); got != "0.33" {
		t.Fatalf("got %s", got)
	}
	if q.Context.Decimals != 2 {
		t.Fatalf("context not adopted: %d", q.Context.Decimals)
	}

	// Widening: the left context's Decimals may not drop below the
	// operands' scales.
	z := MustParse("0.12345")
	s, err := x.Add(z)
	if err != nil {
		t.Fatal(err)
	}
	if got := s.String(); got != "1.12345" {
		t.Fatalf("got %s", got)
	}
}

func TestApply(t *testing.T) {
	d := MustParse("1.23456")
	e := d.Apply(BaseContext.WithDecimals(2))
	// Fidelity wins over the narrower setting.
	if e.Context.Decimals != 5 {
		t.Fatalf("got %d", e.Context.Decimals)
	}
	if e.String() != "1.23456" {
		t.Fatalf("got %s", e)
	}
	wide := d.Apply(BaseContext.WithDecimals(80))
	if wide.Context.Decimals != 80 {
		t.Fatalf("got %d", wide.Context.Decimals)
	}
}

func TestComparisonsNaN(t *testing.T) {
	nan := MustParse("NaN")
	one := MustParse("1")

	if nan.Eq(one) || one.Eq(nan) || nan.Eq(nan) {
		t.Fatal("Eq with NaN should be false")
	}
	if !nan.Ne(one) || !one.Ne(nan) || !nan.Ne(nan) {
		t.Fatal("Ne with NaN should be true")
	}
	if nan.Lt(one) || nan.Le(one) || nan.Gt(one) || nan.Ge(one) {
		t.Fatal("ordered comparison with NaN should be false")
	}

	two := MustParse("2")
	if !one.Lt(two) || !one.Le(two) || !two.Gt(one) || !two.Ge(one) {
		t.Fatal("ordering broken")
	}
	if !one.Le(MustParse("1.0")) || !one.Ge(MustParse("1.0")) || !one.Eq(MustParse("1.0")) {
		t.Fatal("1 vs 1.0")
	}

	inf := MustParse("Infinity")
	ninf := MustParse("-Infinity")
	if !ninf.Lt(one) || !one.Lt(inf) || !ninf.Lt(inf) {
		t.Fatal("infinity ordering broken")
	}
}
