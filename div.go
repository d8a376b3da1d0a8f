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
	"math"

	"github.com/decfp/decfp/dig10"
)

// guardDigits is the number of extra fractional digits carried through
// division before the final rounding step.
const guardDigits = 2

// Quo sets d to the quotient x/y. The quotient carries c.Decimals
// fractional digits, rounded half-up or truncated per c.Truncate.
func (c *Context) Quo(d, x, y *Decimal) (Condition, error) {
	return c.goError(c.quo(d, x, y))
}

func (c *Context) quo(d, x, y *Decimal) Condition {
	if res, handled := c.quoSpecials(d, x, y); handled {
		return res
	}
	neg := x.Negative != y.Negative

	// Scale both operands to integers at a common scale; the net scale
	// cancels in the quotient.
	s := maxInt(x.Scale, y.Scale)
	var a, b dig10.Int
	a.Set(x.Coeff)
	a.Mul10(s - x.Scale)
	b.Set(y.Coeff)
	b.Mul10(s - y.Scale)

	// Shift the dividend so the integer quotient carries the requested
	// fractional digits plus guard digits.
	prec := c.decimals()
	shift := prec + guardDigits
	a.Mul10(shift)

	q, rem := dig10.QuoRem(a, b)
	if steps := c.effective().DivSteps; steps > 0 {
		q = c.refineQuotient(q, a, b, steps)
	}

	d.Form = Finite
	d.Negative = neg
	d.Coeff = q
	d.Scale = shift
	res := c.quantize(d, d, prec)
	if !rem.Zero() {
		res |= Inexact
	}
	return res | c.finish(d)
}

func (c *Context) quoSpecials(d, x, y *Decimal) (Condition, bool) {
	if x.Form == NaN || y.Form == NaN {
		return c.nan(d, 0), true
	}
	if x.Form == Infinite && y.Form == Infinite {
		return c.nan(d, InvalidOperation), true
	}
	if x.Form == Infinite {
		return c.inf(d, x.Negative != y.Negative, 0), true
	}
	if y.Form == Infinite {
		d.Set(decimalZero)
		return 0, true
	}
	if y.isZero() {
		if x.isZero() {
			return c.nan(d, DivisionUndefined), true
		}
		return c.inf(d, x.Negative, DivisionByZero), true
	}
	if x.isZero() {
		d.Set(decimalZero)
		return 0, true
	}
	return 0, false
}

// refineQuotient tightens the long-division quotient q of a/b with a
// Newton-Raphson reciprocal: r converges to 1/b under r <- r*(2 - b*r),
// the candidate floor(a*r) replaces q, and an exact cross-check against
// q*b restores the invariant q*b <= a < (q+1)*b. The refinement guards
// quotient exactness in regimes where the guard digits of plain long
// division are insufficient.
func (c *Context) refineQuotient(q, a, b dig10.Int, steps uint32) dig10.Int {
	r, ok := reciprocalSeed(b)
	if !ok {
		return q
	}
	// Each Newton round roughly doubles the correct digits; the working
	// precision must cover every digit of the quotient.
	workPrec := a.Len() + 4
	wc := Context{Decimals: uint32(workPrec) + 8}
	B := &Decimal{Form: Finite, Coeff: b}
	t := new(Decimal)
	for i := uint32(0); i < steps; i++ {
		wc.mul(t, B, r)
		wc.add(t, decimalTwo, t, true)
		wc.mul(r, r, t)
		wc.quantize(r, r, workPrec)
	}
	A := &Decimal{Form: Finite, Coeff: a}
	cand := new(Decimal)
	wc.mul(cand, A, r)
	tc := wc
	tc.Truncate = true
	tc.quantize(cand, cand, 0)
	qr := append(dig10.Int(nil), cand.Coeff...)

	// Exact correction: nudge the candidate until q*b <= a < (q+1)*b. A
	// converged reciprocal needs at most a step or two; give up and keep
	// the long-division quotient if the candidate is further off.
	var prod dig10.Int
	for i := 0; ; i++ {
		if i > 4 {
			return q
		}
		prod = qr.Mul(b)
		if prod.Cmp(a) > 0 {
			qr.Sub(qr, dig10.NewInt(1))
			continue
		}
		var next dig10.Int
		next.Add(prod, b)
		if next.Cmp(a) <= 0 {
			qr.Add(qr, dig10.NewInt(1))
			continue
		}
		return qr
	}
}

// reciprocalSeed builds a floating-point seed for 1/b accurate to about
// 15 digits, expressed as a Decimal. ok is false when b is zero.
func reciprocalSeed(b dig10.Int) (*Decimal, bool) {
	n := b.Len()
	if n == 0 {
		return nil, false
	}
	// m is the leading-digit mantissa of b in [0.1, 1).
	var m float64
	for i := 0; i < 17; i++ {
		m = m*10 + float64(b.Digit(n-1-i))
	}
	m /= 1e17
	inv := 1 / m // in (1, 10]
	r := new(Decimal)
	if _, err := r.SetFloat64(inv); err != nil {
		return nil, false
	}
	if math.IsInf(inv, 0) || math.IsNaN(inv) {
		return nil, false
	}
	// 1/b = (1/m) * 10^-n.
	r.Scale += n
	return r.trim(), true
}

// QuoInteger sets d to the integer part of the quotient x/y, truncated
// toward zero.
func (c *Context) QuoInteger(d, x, y *Decimal) (Condition, error) {
	return c.goError(c.quoInteger(d, x, y))
}

func (c *Context) quoInteger(d, x, y *Decimal) Condition {
	if res, handled := c.quoSpecials(d, x, y); handled {
		return res
	}
	neg := x.Negative != y.Negative
	s := maxInt(x.Scale, y.Scale)
	var a, b dig10.Int
	a.Set(x.Coeff)
	a.Mul10(s - x.Scale)
	b.Set(y.Coeff)
	b.Mul10(s - y.Scale)
	q, _ := dig10.QuoRem(a, b)
	d.Form = Finite
	d.Negative = neg && !q.Zero()
	d.Coeff = q
	d.Scale = 0
	return c.finish(d)
}

// Rem sets d to the remainder x - trunc(x/y)*y. The sign of a non-zero
// remainder follows the dividend.
func (c *Context) Rem(d, x, y *Decimal) (Condition, error) {
	return c.goError(c.rem(d, x, y))
}

func (c *Context) rem(d, x, y *Decimal) Condition {
	if x.Form == NaN || y.Form == NaN {
		return c.nan(d, 0)
	}
	if x.Form == Infinite {
		return c.nan(d, InvalidOperation)
	}
	if y.Form == Infinite {
		d.Set(x)
		return 0
	}
	if y.isZero() {
		return c.nan(d, DivisionUndefined)
	}
	neg := x.Negative
	s := maxInt(x.Scale, y.Scale)
	var a, b dig10.Int
	a.Set(x.Coeff)
	a.Mul10(s - x.Scale)
	b.Set(y.Coeff)
	b.Mul10(s - y.Scale)
	_, rem := dig10.QuoRem(a, b)
	d.Form = Finite
	d.Negative = neg && !rem.Zero()
	d.Coeff = append(d.Coeff[:0], rem...)
	d.Scale = s
	return c.finish(d)
}
