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
	"github.com/pkg/errors"

	"github.com/decfp/decfp/dig10"
)

// Floor sets d to the largest integer <= x.
func (c *Context) Floor(d, x *Decimal) (Condition, error) {
	if x.Form != Finite {
		d.Set(x)
		return 0, nil
	}
	frac := new(Decimal)
	x.Modf(d, frac)
	if frac.Sign() < 0 {
		d.Dec()
	}
	return c.goError(c.finish(d))
}

// Ceil sets d to the smallest integer >= x. An argument that is already
// integral is returned unchanged.
func (c *Context) Ceil(d, x *Decimal) (Condition, error) {
	if x.Form != Finite {
		d.Set(x)
		return 0, nil
	}
	frac := new(Decimal)
	x.Modf(d, frac)
	if frac.Sign() > 0 {
		d.Inc()
	}
	return c.goError(c.finish(d))
}

// Round sets d to x with at most places fractional digits, rounding
// half-up or truncating toward zero per c.Truncate.
func (c *Context) Round(d, x *Decimal, places int) (Condition, error) {
	if x.Form != Finite {
		d.Set(x)
		return 0, nil
	}
	if places < 0 {
		places = 0
	}
	res := c.quantize(d, x, places)
	return c.goError(res | c.finish(d))
}

// Signum sets d to -1, 0 or +1 by the sign of x. NaN propagates.
func (c *Context) Signum(d, x *Decimal) (Condition, error) {
	if x.Form == NaN {
		return c.goError(c.nan(d, 0))
	}
	d.SetInt64(int64(x.Sign()))
	return 0, nil
}

// erfCut is the magnitude beyond which erf is 1 to well past any
// practical precision.
var erfCut = New(10, 0)

// Erf sets d to the error function of x,
// (2/sqrt(pi)) * sum (-1)^n x^(2n+1) / (n! (2n+1)).
func (c *Context) Erf(d, x *Decimal) (Condition, error) {
	res, err := c.erf(d, x)
	if err != nil {
		return res, err
	}
	return c.goError(res)
}

func (c *Context) erf(d, x *Decimal) (Condition, error) {
	if x.Form == NaN {
		return c.nan(d, 0), nil
	}
	if x.Form == Infinite || cmpAbs(x, erfCut) >= 0 {
		d.Set(decimalOne)
		d.Negative = x.Negative
		if x.Form == Finite {
			return Inexact, nil
		}
		return 0, nil
	}
	if x.isZero() {
		d.Set(decimalZero)
		return 0, nil
	}

	// The alternating terms peak near e^(x^2) before they decay, so the
	// working precision carries that many extra digits against the
	// cancellation.
	extra := 0
	if x.wholeDigits() > 0 {
		extra = 50
	}
	wc := c.workContext(extra)
	ed := MakeErrDecimal(wc)

	xsq := new(Decimal)
	ed.Mul(xsq, x, x)
	wc.quantize(xsq, xsq, wc.decimals())

	sum := new(Decimal).Set(x)
	t := new(Decimal).Set(x) // x^(2n+1) / n!
	term := new(Decimal)
	n := New(0, 0)
	odd := New(1, 0)
	l := wc.newLoop("erf", x, c.effective().TanhTerms, 4)
	for {
		n.Inc()
		odd.Inc()
		odd.Inc()
		ed.Mul(t, t, xsq)
		ed.Quo(t, t, n)
		t.Negative = !t.Negative && !t.isZero()
		ed.Quo(term, t, odd)
		ed.Add(sum, sum, term)
		if err := ed.Err(); err != nil {
			return 0, err
		}
		if done, err := l.done(sum); err != nil {
			return 0, err
		} else if done {
			break
		}
	}
	ed.Mul(sum, sum, twoOverSqrtPiDec(wc.decimals()))
	if err := ed.Err(); err != nil {
		return 0, err
	}
	res := c.quantize(d, sum, c.decimals())
	res |= Inexact
	return res | c.finish(d), nil
}

// factorialLimit bounds the arguments accepted by the combinatoric
// functions; anything larger has long since saturated the precision.
const factorialLimit = 100000

// Factorial sets d to x! for a non-negative integral x.
func (c *Context) Factorial(d, x *Decimal) (Condition, error) {
	n, res, ok := c.combArg(x)
	if !ok {
		return c.goError(c.nan(d, res))
	}
	f := dig10.NewInt(1)
	for i := int64(2); i <= n; i++ {
		f = f.Mul(dig10.NewInt(uint64(i)))
		if f.Len() > c.decimals() {
			return c.goError(c.inf(d, false, Overflow))
		}
	}
	d.Form = Finite
	d.Negative = false
	d.Coeff = f
	d.Scale = 0
	return c.goError(c.finish(d))
}

// combArg validates a combinatoric argument: finite, integral,
// non-negative and bounded.
func (c *Context) combArg(x *Decimal) (int64, Condition, bool) {
	if x.Form != Finite || !x.integral() || x.Negative {
		return 0, InvalidOperation, false
	}
	if x.wholeDigits() > 6 || x.Int64Unchecked() > factorialLimit {
		return 0, InvalidOperation, false
	}
	return x.Int64Unchecked(), 0, true
}

// Perm sets d to nPr(n, k), the count of ordered k-arrangements of n
// items: n! / (n-k)! evaluated as the cancelled product.
func (c *Context) Perm(d, n, k *Decimal) (Condition, error) {
	ni, res, ok := c.combArg(n)
	if !ok {
		return c.goError(c.nan(d, res))
	}
	ki, res, ok := c.combArg(k)
	if !ok {
		return c.goError(c.nan(d, res))
	}
	if ki > ni {
		d.Set(decimalZero)
		return 0, nil
	}
	f := dig10.NewInt(1)
	for i := ni - ki + 1; i <= ni; i++ {
		f = f.Mul(dig10.NewInt(uint64(i)))
		if f.Len() > c.decimals() {
			return c.goError(c.inf(d, false, Overflow))
		}
	}
	d.Form = Finite
	d.Negative = false
	d.Coeff = f
	d.Scale = 0
	return c.goError(c.finish(d))
}

// Comb sets d to nCr(n, k), the binomial coefficient: the Perm product
// with each factor of k! divided back out exactly.
func (c *Context) Comb(d, n, k *Decimal) (Condition, error) {
	ni, res, ok := c.combArg(n)
	if !ok {
		return c.goError(c.nan(d, res))
	}
	ki, res, ok := c.combArg(k)
	if !ok {
		return c.goError(c.nan(d, res))
	}
	if ki > ni {
		d.Set(decimalZero)
		return 0, nil
	}
	if ki > ni-ki {
		ki = ni - ki
	}
	f := dig10.NewInt(1)
	for i := int64(1); i <= ki; i++ {
		f = f.Mul(dig10.NewInt(uint64(ni - ki + i)))
		q, rem := f.QuoRemUint(uint64(i))
		if rem != 0 {
			// The running product of i consecutive factors is always
			// divisible by i!.
			return 0, errors.Errorf("binomial cancellation: %s / %d", f, i)
		}
		f = q
		if f.Len() > c.decimals() {
			return c.goError(c.inf(d, false, Overflow))
		}
	}
	d.Form = Finite
	d.Negative = false
	d.Coeff = f
	d.Scale = 0
	return c.goError(c.finish(d))
}

// Binomial is an alias for Comb.
func (c *Context) Binomial(d, n, k *Decimal) (Condition, error) {
	return c.Comb(d, n, k)
}
