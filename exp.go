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

	"github.com/pkg/errors"

	"github.com/decfp/decfp/dig10"
)

// workGuard is the number of extra fractional digits carried by the
// iterative algorithms before the final rounding step.
const workGuard = 10

// workContext returns an untrapped context with widened precision for
// intermediate computation.
func (c *Context) workContext(extra int) *Context {
	wc := c.effective()
	wc.Decimals = uint32(c.decimals() + workGuard + extra)
	wc.Traps = 0
	wc.Truncate = false
	return &wc
}

// epsilonFor returns 10^-(prec), the convergence threshold used by the
// series loops at the given working precision.
func epsilonFor(prec int) *Decimal {
	return New(1, prec)
}

// Exp sets d to e**x.
func (c *Context) Exp(d, x *Decimal) (Condition, error) {
	res, err := c.exp(d, x)
	if err != nil {
		return res, err
	}
	return c.goError(res)
}

func (c *Context) exp(d, x *Decimal) (Condition, error) {
	switch x.Form {
	case NaN:
		return c.nan(d, 0), nil
	case Infinite:
		if x.Negative {
			d.Set(decimalZero)
			return 0, nil
		}
		return c.inf(d, false, 0), nil
	}
	if x.isZero() {
		d.Set(decimalOne)
		return 0, nil
	}

	wc := c.workContext(0)
	ed := MakeErrDecimal(wc)

	// Halve the argument into [-1, 1] so the Maclaurin series converges a
	// digit or more per term; the result is squared back afterwards.
	z := new(Decimal).Set(x)
	var squarings int
	for z.wholeDigits() > 0 && !z.Coeff.Zero() {
		if cmpAbs(z, decimalOne) <= 0 {
			break
		}
		ed.Mul(z, z, decimalHalf)
		wc.quantize(z, z, wc.decimals())
		squarings++
		if squarings > 4*MaxScale {
			return 0, errors.New("exp: argument reduction did not terminate")
		}
	}

	sum, err := wc.expSeries(z, c.effective().ETerms)
	if err != nil {
		return 0, err
	}
	for i := 0; i < squarings; i++ {
		ed.Mul(sum, sum, sum)
		wc.quantize(sum, sum, wc.decimals())
		if sum.Form == Finite && sum.wholeDigits() > c.decimals()+1 {
			return c.inf(d, false, Overflow), nil
		}
		if sum.isZero() {
			break
		}
	}
	if err := ed.Err(); err != nil {
		return 0, err
	}
	res := c.quantize(d, sum, c.decimals())
	res |= Inexact
	return res | c.finish(d), nil
}

// expSeries sums the Maclaurin series e**z = sum z**n / n! at c's
// precision. minTerms is the configured series floor; summation continues
// past it until the terms fall below the working epsilon.
func (c *Context) expSeries(z *Decimal, minTerms uint32) (*Decimal, error) {
	ed := MakeErrDecimal(c)
	sum := New(1, 0)
	term := New(1, 0)
	n := New(0, 0)
	l := c.newLoop("exp", z, minTerms, 4)
	for {
		n.Inc()
		ed.Mul(term, term, z)
		ed.Quo(term, term, n)
		ed.Add(sum, sum, term)
		if err := ed.Err(); err != nil {
			return nil, err
		}
		if done, err := l.done(sum); err != nil {
			return nil, err
		} else if done {
			break
		}
	}
	return sum, nil
}

// Pow sets d to x**y.
func (c *Context) Pow(d, x, y *Decimal) (Condition, error) {
	res, err := c.pow(d, x, y)
	if err != nil {
		return res, err
	}
	return c.goError(res)
}

func (c *Context) pow(d, x, y *Decimal) (Condition, error) {
	if x.Form == NaN || y.Form == NaN {
		return c.nan(d, 0), nil
	}
	// x ** 1 == x, 1 ** y == 1.
	if y.Form == Finite && y.integral() && y.Cmp(decimalOne) == 0 {
		d.Set(x)
		return 0, nil
	}
	if x.Form == Finite && x.Cmp(decimalOne) == 0 {
		d.Set(decimalOne)
		return 0, nil
	}

	if y.Form == Infinite {
		// |x| against 1 decides the limit.
		var ax Decimal
		ax.Abs(x)
		cmp := ax.Cmp(decimalOne)
		grow := cmp > 0
		if y.Negative {
			grow = !grow
		}
		if cmp == 0 {
			return c.nan(d, InvalidOperation), nil
		}
		if grow {
			return c.inf(d, false, 0), nil
		}
		d.Set(decimalZero)
		return 0, nil
	}

	yInt := y.integral()
	ys := y.Sign()
	xs := x.Sign()

	if x.Form == Infinite {
		switch {
		case ys == 0:
			return c.nan(d, InvalidOperation), nil
		case ys < 0:
			d.Set(decimalZero)
			return 0, nil
		default:
			neg := x.Negative && yInt && y.Coeff.Low()%2 == 1
			return c.inf(d, neg, 0), nil
		}
	}

	if xs == 0 {
		switch {
		case ys == 0:
			// 0 ** 0.
			return c.nan(d, InvalidOperation), nil
		case ys > 0:
			d.Set(decimalZero)
			return 0, nil
		default:
			return c.inf(d, false, DivisionByZero), nil
		}
	}

	if xs < 0 && !yInt {
		return c.nan(d, InvalidOperation), nil
	}

	if yInt && y.wholeDigits() <= 18 {
		return c.integerPower(d, x, y.Int64Unchecked())
	}

	// exp(y * ln|x|), negating for odd integer exponents of a negative
	// base.
	wc := c.workContext(0)
	ed := MakeErrDecimal(wc)
	tmp := new(Decimal)
	ed.Abs(tmp, x)
	ed.Ln(tmp, tmp)
	ed.Mul(tmp, tmp, y)
	ed.Exp(tmp, tmp)
	if xs < 0 && yInt && y.Coeff.Low()%2 == 1 {
		ed.Neg(tmp, tmp)
	}
	if err := ed.Err(); err != nil {
		return 0, err
	}
	res := c.quantize(d, tmp, c.decimals())
	res |= Inexact
	return res | c.finish(d), nil
}

// integerPower sets d to x**n by exponentiation by squaring. Negative
// exponents go through the reciprocal.
func (c *Context) integerPower(d, x *Decimal, n int64) (Condition, error) {
	neg := n < 0
	if neg {
		n = -n
	}
	wc := c.workContext(0)
	ed := MakeErrDecimal(wc)
	negResult := x.Negative && n&1 == 1
	b := new(Decimal).Set(x)
	z := New(1, 0)
	for n > 0 {
		if z.wholeDigits() > wc.decimals() || b.wholeDigits() > wc.decimals() {
			return c.inf(d, negResult, Overflow), nil
		}
		if n&1 == 1 {
			ed.Mul(z, z, b)
			wc.quantize(z, z, wc.decimals())
		}
		n >>= 1
		if n == 0 {
			break
		}
		ed.Mul(b, b, b)
		wc.quantize(b, b, wc.decimals())
	}
	if neg {
		ed.Quo(z, decimalOne, z)
	}
	if err := ed.Err(); err != nil {
		return 0, err
	}
	res := c.quantize(d, z, c.decimals())
	return res | c.finish(d), nil
}

// Int64Unchecked returns the whole part of d without range checking. The
// result is undefined when d has more than 18 whole digits.
func (d *Decimal) Int64Unchecked() int64 {
	hi, _ := d.Coeff.Split(d.Scale)
	v := hi.Int64()
	if d.Negative {
		v = -v
	}
	return v
}

// Sqrt sets d to the square root of x, computed as Pow(x, 0.5).
func (c *Context) Sqrt(d, x *Decimal) (Condition, error) {
	res, err := c.sqrt(d, x)
	if err != nil {
		return res, err
	}
	return c.goError(res)
}

func (c *Context) sqrt(d, x *Decimal) (Condition, error) {
	switch x.Form {
	case NaN:
		return c.nan(d, 0), nil
	case Infinite:
		if x.Negative {
			return c.nan(d, InvalidOperation), nil
		}
		return c.inf(d, false, 0), nil
	}
	if x.isZero() {
		d.Set(decimalZero)
		return 0, nil
	}
	if x.Negative {
		return c.nan(d, InvalidOperation), nil
	}
	return c.pow(d, x, decimalHalf)
}

// improvisedSqrt sets d to the square root of x by Newton iteration
// r <- (r + x/r)/2 from a floating-point seed. It depends only on the
// rational operations, so the Constants bootstrap can use it before Ln
// and Pow are armed.
func (c *Context) improvisedSqrt(d, x *Decimal) (Condition, error) {
	if x.Form != Finite || x.Negative {
		return c.nan(d, InvalidOperation).GoError(c.Traps)
	}
	if x.isZero() {
		d.Set(decimalZero)
		return 0, nil
	}
	wc := c.workContext(0)
	ed := MakeErrDecimal(wc)
	r, ok := sqrtSeed(x)
	if !ok {
		return 0, errors.Errorf("sqrt seed: %s", x)
	}
	tmp := new(Decimal)
	l := wc.newLoop("sqrt", x, c.effective().SqrtIters, 1)
	for {
		ed.Quo(tmp, x, r)
		ed.Add(tmp, tmp, r)
		ed.Mul(r, tmp, decimalHalf)
		wc.quantize(r, r, wc.decimals())
		if err := ed.Err(); err != nil {
			return 0, err
		}
		if done, err := l.done(r); err != nil {
			return 0, err
		} else if done {
			break
		}
	}
	res := c.quantize(d, r, c.decimals())
	res |= Inexact
	return res | c.finish(d), nil
}

// sqrtSeed approximates sqrt(x) from the leading digits of x.
func sqrtSeed(x *Decimal) (*Decimal, bool) {
	n := x.Coeff.Len()
	var m float64
	for i := 0; i < 17; i++ {
		m = m*10 + float64(x.Coeff.Digit(n-1-i))
	}
	m /= 1e17 // mantissa in [0.1, 1)
	e := n - x.Scale
	if e%2 != 0 {
		m /= 10
		e++
	}
	s := math.Sqrt(m) // in [0.1, 1)
	r := new(Decimal)
	if _, err := r.SetFloat64(s); err != nil {
		return nil, false
	}
	// sqrt(x) = sqrt(m) * 10^(e/2).
	half := e / 2
	if half >= 0 {
		r.Coeff.Mul10(half)
		r.trim()
	} else {
		r.Scale -= half
	}
	return r, true
}

// Inc adds 1 to d in place. The carry walks the coefficient directly.
func (d *Decimal) Inc() *Decimal {
	if d.Form != Finite {
		return d
	}
	one := dig10.NewInt(1)
	one.Mul10(d.Scale)
	if d.Negative {
		if d.Coeff.Diff(d.Coeff, one) {
			// |d| was below 1; the result crosses zero.
			d.Negative = false
		}
	} else {
		d.Coeff.Add(d.Coeff, one)
	}
	return d.trim()
}

// Dec subtracts 1 from d in place.
func (d *Decimal) Dec() *Decimal {
	if d.Form != Finite {
		return d
	}
	one := dig10.NewInt(1)
	one.Mul10(d.Scale)
	if d.Negative {
		d.Coeff.Add(d.Coeff, one)
	} else if d.Coeff.Diff(d.Coeff, one) {
		d.Negative = true
	}
	return d.trim()
}
