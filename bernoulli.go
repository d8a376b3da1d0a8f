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
	"github.com/decfp/decfp/dig10"
)

// DefaultBernoulliIters is the zeta series term count used by
// BernoulliGenerator.
const DefaultBernoulliIters = 40

// BernoulliGenerator computes Bernoulli numbers in the Chowla-Hartung
// manner: the analytic value 2*(2m)!*zeta(2m)/(2pi)^2m is combined with
// the von Staudt-Clausen denominator, whose product over the primes p
// with (p-1) | 2m makes D*B_2m an integer. Rounding the scaled estimate
// to that integer turns a short, bounded zeta sum into the exact rational
// value; the series never needs more terms as m grows.
type BernoulliGenerator struct {
	ctx   Context
	iters uint32
}

// NewBernoulliGenerator returns a generator producing Bernoulli numbers
// at c's precision.
func NewBernoulliGenerator(c *Context) *BernoulliGenerator {
	return &BernoulliGenerator{ctx: c.effective(), iters: DefaultBernoulliIters}
}

func newBernoulliGenerator(c *Context) *BernoulliGenerator {
	return &BernoulliGenerator{ctx: c.effective(), iters: DefaultBernoulliIters}
}

// Bernoulli sets d to the nth Bernoulli number. Negative n is an
// InvalidOperation.
func (g *BernoulliGenerator) Bernoulli(d *Decimal, n int) (Condition, error) {
	c := &g.ctx
	if n < 0 {
		return c.nan(d, InvalidOperation).GoError(c.Traps)
	}
	if err := g.number(d, n); err != nil {
		return 0, err
	}
	return 0, nil
}

func (g *BernoulliGenerator) number(d *Decimal, n int) error {
	c := &g.ctx
	switch {
	case n == 0:
		d.Set(decimalOne)
		return nil
	case n == 1:
		d.Set(decimalHalf)
		d.Negative = true
		return nil
	case n%2 == 1:
		d.Set(decimalZero)
		return nil
	}
	m := n / 2

	// (2m)! and the work precision that covers its magnitude.
	fact := dig10.NewInt(1)
	for i := int64(2); i <= int64(n); i++ {
		fact = fact.Mul(dig10.NewInt(uint64(i)))
	}
	wc := c.workContext(fact.Len() + 20)
	ed := MakeErrDecimal(wc)

	// K = 2*(2m)! / (2pi)^2m.
	kv := new(Decimal)
	if _, err := wc.integerPower(kv, twoPiDec(wc.decimals()), int64(n)); err != nil {
		return err
	}
	num := &Decimal{Form: Finite, Coeff: fact}
	ed.Quo(kv, num, kv)
	ed.Mul(kv, kv, decimalTwo)

	// zeta(2m) by direct summation; the rounding below absorbs the
	// truncation error.
	zeta := New(1, 0)
	t := new(Decimal)
	for k := int64(2); k <= int64(g.iters); k++ {
		if _, err := wc.integerPower(t, New(k, 0), int64(n)); err != nil {
			return err
		}
		ed.Quo(t, decimalOne, t)
		ed.Add(zeta, zeta, t)
	}
	ed.Mul(kv, kv, zeta)

	// D = product of the primes p with (p-1) | 2m.
	den := dig10.NewInt(1)
	for p := int64(2); p <= int64(n)+1; p++ {
		if !isPrime(p) || n%int(p-1) != 0 {
			continue
		}
		den = den.Mul(dig10.NewInt(uint64(p)))
	}
	denDec := &Decimal{Form: Finite, Coeff: den}

	// Round D*|B_2m| to the nearest integer and divide back out.
	ed.Mul(kv, kv, denDec)
	if err := ed.Err(); err != nil {
		return err
	}
	wc.quantize(kv, kv, 0)
	ed.Quo(kv, kv, denDec)
	if err := ed.Err(); err != nil {
		return err
	}
	kv.Negative = m%2 == 0 // (-1)^(m+1)
	if kv.isZero() {
		kv.Negative = false
	}
	c.quantize(d, kv, c.decimals())
	d.Context = *c
	return nil
}

func isPrime(p int64) bool {
	if p < 2 {
		return false
	}
	for i := int64(2); i*i <= p; i++ {
		if p%i == 0 {
			return false
		}
	}
	return true
}
