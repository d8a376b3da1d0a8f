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

// Sinh sets d to the hyperbolic sine of x, (e^x - e^-x)/2.
func (c *Context) Sinh(d, x *Decimal) (Condition, error) {
	res, err := c.expPair(d, x, true)
	if err != nil {
		return res, err
	}
	return c.goError(res)
}

// Cosh sets d to the hyperbolic cosine of x, (e^x + e^-x)/2.
func (c *Context) Cosh(d, x *Decimal) (Condition, error) {
	res, err := c.expPair(d, x, false)
	if err != nil {
		return res, err
	}
	return c.goError(res)
}

func (c *Context) expPair(d, x *Decimal, odd bool) (Condition, error) {
	if x.Form == NaN {
		return c.nan(d, 0), nil
	}
	if x.Form == Infinite {
		neg := odd && x.Negative
		return c.inf(d, neg, 0), nil
	}
	if x.isZero() {
		if odd {
			d.Set(decimalZero)
		} else {
			d.Set(decimalOne)
		}
		return 0, nil
	}
	wc := c.workContext(0)
	ed := MakeErrDecimal(wc)
	ex := new(Decimal)
	if _, err := wc.exp(ex, x); err != nil {
		return 0, err
	}
	if ex.Form == Infinite {
		neg := odd && x.Negative
		return c.inf(d, neg, Overflow), nil
	}
	// e^-x as the reciprocal keeps a single series evaluation.
	exn := new(Decimal)
	ed.Quo(exn, decimalOne, ex)
	t := new(Decimal)
	if odd {
		ed.Sub(t, ex, exn)
	} else {
		ed.Add(t, ex, exn)
	}
	ed.Mul(t, t, decimalHalf)
	if err := ed.Err(); err != nil {
		return 0, err
	}
	res := c.quantize(d, t, c.decimals())
	res |= Inexact
	return res | c.finish(d), nil
}

// Tanh sets d to the hyperbolic tangent of x. Small arguments go through
// the Bernoulli-number series; larger ones through sinh/cosh.
func (c *Context) Tanh(d, x *Decimal) (Condition, error) {
	res, err := c.tanh(d, x)
	if err != nil {
		return res, err
	}
	return c.goError(res)
}

func (c *Context) tanh(d, x *Decimal) (Condition, error) {
	if x.Form == NaN {
		return c.nan(d, 0), nil
	}
	if x.Form == Infinite {
		d.Set(decimalOne)
		d.Negative = x.Negative
		return 0, nil
	}
	if x.isZero() {
		d.Set(decimalZero)
		return 0, nil
	}
	wc := c.workContext(0)
	if cmpAbs(x, decimalTanhCut) <= 0 {
		sum, err := wc.tanhSeries(x, c.effective().TanhTerms)
		if err != nil {
			return 0, err
		}
		res := c.quantize(d, sum, c.decimals())
		res |= Inexact
		return res | c.finish(d), nil
	}
	sh := new(Decimal)
	ch := new(Decimal)
	if _, err := wc.expPair(sh, x, true); err != nil {
		return 0, err
	}
	if _, err := wc.expPair(ch, x, false); err != nil {
		return 0, err
	}
	if sh.Form == Infinite {
		d.Set(decimalOne)
		d.Negative = x.Negative
		return Inexact, nil
	}
	res := c.quo(d, sh, ch)
	res |= Inexact
	return res | c.finish(d), nil
}

// decimalTanhCut bounds the region where the Bernoulli series converges a
// digit or more per term.
var decimalTanhCut = New(4, 1)

// tanhSeries sums tanh(x) = sum 2^2n (2^2n - 1) B_2n x^(2n-1) / (2n)! for
// |x| below decimalTanhCut.
func (c *Context) tanhSeries(x *Decimal, minTerms uint32) (*Decimal, error) {
	ed := MakeErrDecimal(c)
	gen := newBernoulliGenerator(c)

	xsq := new(Decimal)
	ed.Mul(xsq, x, x)
	c.quantize(xsq, xsq, c.decimals())

	sum := new(Decimal)
	pow := new(Decimal).Set(x) // x^(2n-1)
	fact := dig10.NewInt(1)    // (2n)!
	fourPow := New(1, 0)       // 2^2n
	term := new(Decimal)
	b := new(Decimal)
	eps := epsilonFor(c.decimals())
	l := c.newLoop("tanh", x, minTerms, 2)
	for n := 1; ; n++ {
		fact = fact.Mul(dig10.NewInt(uint64(2*n - 1))).Mul(dig10.NewInt(uint64(2 * n)))
		ed.Mul(fourPow, fourPow, decimalFour)
		if err := gen.number(b, 2*n); err != nil {
			return nil, err
		}
		// term = 2^2n (2^2n - 1) B_2n pow / (2n)!
		t2 := new(Decimal)
		ed.Sub(t2, fourPow, decimalOne)
		ed.Mul(t2, t2, fourPow)
		ed.Mul(t2, t2, b)
		ed.Mul(t2, t2, pow)
		ed.Quo(term, t2, &Decimal{Form: Finite, Coeff: fact})
		ed.Add(sum, sum, term)
		ed.Mul(pow, pow, xsq)
		c.quantize(pow, pow, c.decimals())
		if err := ed.Err(); err != nil {
			return nil, err
		}
		var at Decimal
		at.Abs(term)
		if at.Cmp(eps) < 0 && uint32(n) >= minTerms {
			break
		}
		if done, err := l.done(sum); err != nil {
			return nil, err
		} else if done {
			break
		}
	}
	return sum, nil
}

// Coth sets d to the hyperbolic cotangent of x.
func (c *Context) Coth(d, x *Decimal) (Condition, error) {
	return c.hyperReciprocal(d, x, c.tanh)
}

// Sech sets d to the hyperbolic secant of x.
func (c *Context) Sech(d, x *Decimal) (Condition, error) {
	f := func(d, x *Decimal) (Condition, error) { return c.expPair(d, x, false) }
	return c.hyperReciprocal(d, x, f)
}

// Csch sets d to the hyperbolic cosecant of x.
func (c *Context) Csch(d, x *Decimal) (Condition, error) {
	f := func(d, x *Decimal) (Condition, error) { return c.expPair(d, x, true) }
	return c.hyperReciprocal(d, x, f)
}

func (c *Context) hyperReciprocal(d, x *Decimal, f func(d, x *Decimal) (Condition, error)) (Condition, error) {
	t := new(Decimal)
	if _, err := f(t, x); err != nil {
		return 0, err
	}
	if t.Form == NaN {
		return c.goError(c.nan(d, 0))
	}
	res := c.quo(d, decimalOne, t)
	res |= Inexact
	return c.goError(res | c.finish(d))
}

// Asinh sets d to the inverse hyperbolic sine of x, ln(x + sqrt(x^2+1)).
func (c *Context) Asinh(d, x *Decimal) (Condition, error) {
	res, err := c.asinh(d, x)
	if err != nil {
		return res, err
	}
	return c.goError(res)
}

func (c *Context) asinh(d, x *Decimal) (Condition, error) {
	if x.Form == NaN {
		return c.nan(d, 0), nil
	}
	if x.Form == Infinite {
		return c.inf(d, x.Negative, 0), nil
	}
	if x.isZero() {
		d.Set(decimalZero)
		return 0, nil
	}
	wc := c.workContext(0)
	ed := MakeErrDecimal(wc)
	// For negative x use the odd symmetry to keep the log argument away
	// from zero.
	ax := new(Decimal).Abs(x)
	t := new(Decimal)
	ed.Mul(t, ax, ax)
	ed.Add(t, t, decimalOne)
	if _, err := wc.improvisedSqrt(t, t); err != nil {
		return 0, err
	}
	ed.Add(t, t, ax)
	ed.Ln(t, t)
	if err := ed.Err(); err != nil {
		return 0, err
	}
	t.Negative = x.Negative
	res := c.quantize(d, t, c.decimals())
	res |= Inexact
	return res | c.finish(d), nil
}

// Acosh sets d to the inverse hyperbolic cosine of x, ln(x + sqrt(x^2-1)),
// defined for x >= 1.
func (c *Context) Acosh(d, x *Decimal) (Condition, error) {
	res, err := c.acosh(d, x)
	if err != nil {
		return res, err
	}
	return c.goError(res)
}

func (c *Context) acosh(d, x *Decimal) (Condition, error) {
	if x.Form == NaN {
		return c.nan(d, 0), nil
	}
	if x.Form == Infinite {
		if x.Negative {
			return c.nan(d, InvalidOperation), nil
		}
		return c.inf(d, false, 0), nil
	}
	if x.Cmp(decimalOne) < 0 {
		return c.nan(d, InvalidOperation), nil
	}
	if x.Cmp(decimalOne) == 0 {
		d.Set(decimalZero)
		return 0, nil
	}
	wc := c.workContext(0)
	ed := MakeErrDecimal(wc)
	t := new(Decimal)
	ed.Mul(t, x, x)
	ed.Sub(t, t, decimalOne)
	if _, err := wc.improvisedSqrt(t, t); err != nil {
		return 0, err
	}
	ed.Add(t, t, x)
	ed.Ln(t, t)
	if err := ed.Err(); err != nil {
		return 0, err
	}
	res := c.quantize(d, t, c.decimals())
	res |= Inexact
	return res | c.finish(d), nil
}

// Atanh sets d to the inverse hyperbolic tangent of x,
// ln((1+x)/(1-x))/2, defined for |x| < 1.
func (c *Context) Atanh(d, x *Decimal) (Condition, error) {
	res, err := c.atanhInv(d, x)
	if err != nil {
		return res, err
	}
	return c.goError(res)
}

func (c *Context) atanhInv(d, x *Decimal) (Condition, error) {
	if x.Form == NaN {
		return c.nan(d, 0), nil
	}
	if x.Form == Infinite || cmpAbs(x, decimalOne) >= 0 {
		return c.nan(d, InvalidOperation), nil
	}
	if x.isZero() {
		d.Set(decimalZero)
		return 0, nil
	}
	wc := c.workContext(0)
	ed := MakeErrDecimal(wc)
	num := new(Decimal)
	den := new(Decimal)
	ed.Add(num, decimalOne, x)
	ed.Sub(den, decimalOne, x)
	t := new(Decimal)
	ed.Quo(t, num, den)
	ed.Ln(t, t)
	ed.Mul(t, t, decimalHalf)
	if err := ed.Err(); err != nil {
		return 0, err
	}
	res := c.quantize(d, t, c.decimals())
	res |= Inexact
	return res | c.finish(d), nil
}

var decimalFour = New(4, 0)
