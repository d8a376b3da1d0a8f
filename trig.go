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

// TrigPhaseCorrect sets d to x reduced into (-pi, pi] by subtracting
// multiples of 2*pi.
func (c *Context) TrigPhaseCorrect(d, x *Decimal) (Condition, error) {
	if x.Form != Finite {
		if x.Form == NaN {
			return c.nan(d, 0), nil
		}
		return c.nan(d, InvalidOperation).GoError(c.Traps)
	}
	wc := c.workContext(0)
	if _, err := wc.phaseCorrect(d, x); err != nil {
		return 0, err
	}
	res := c.quantize(d, d, c.decimals())
	return c.goError(res | c.finish(d))
}

// phaseCorrect reduces x into (-pi, pi] at c's working precision.
func (c *Context) phaseCorrect(d, x *Decimal) (Condition, error) {
	prec := c.decimals()
	pi := piDec(prec)
	twoPi := twoPiDec(prec)
	ed := MakeErrDecimal(c)

	var negPi Decimal
	negPi.Neg(pi)

	if x.Cmp(&negPi) > 0 && x.Cmp(pi) <= 0 {
		d.Set(x)
		return 0, nil
	}

	// n = trunc((x + pi) / 2pi), then r = x - n*2pi; a final nudge
	// handles the half-open boundary.
	t := new(Decimal)
	ed.Add(t, x, pi)
	n := new(Decimal)
	ed.QuoInteger(n, t, twoPi)
	r := new(Decimal)
	ed.Mul(r, n, twoPi)
	ed.Sub(r, x, r)
	if err := ed.Err(); err != nil {
		return 0, err
	}
	for r.Cmp(pi) > 0 {
		ed.Sub(r, r, twoPi)
	}
	for r.Cmp(&negPi) <= 0 {
		ed.Add(r, r, twoPi)
	}
	if err := ed.Err(); err != nil {
		return 0, err
	}
	d.Set(r)
	return 0, nil
}

// Sin sets d to the sine of x (radians).
func (c *Context) Sin(d, x *Decimal) (Condition, error) {
	res, err := c.sinCos(d, x, true)
	if err != nil {
		return res, err
	}
	return c.goError(res)
}

// Cos sets d to the cosine of x (radians).
func (c *Context) Cos(d, x *Decimal) (Condition, error) {
	res, err := c.sinCos(d, x, false)
	if err != nil {
		return res, err
	}
	return c.goError(res)
}

func (c *Context) sinCos(d, x *Decimal, sin bool) (Condition, error) {
	if x.Form == NaN {
		return c.nan(d, 0), nil
	}
	if x.Form == Infinite {
		return c.nan(d, InvalidOperation), nil
	}
	wc := c.workContext(0)
	z := new(Decimal)
	if _, err := wc.phaseCorrect(z, x); err != nil {
		return 0, err
	}
	sum, err := wc.sinCosSeries(z, sin, c.effective().TrigTerms)
	if err != nil {
		return 0, err
	}
	res := c.quantize(d, sum, c.decimals())
	res |= Inexact
	return res | c.finish(d), nil
}

// sinCosSeries sums the alternating factorial series for sine or cosine
// on a phase-reduced argument.
func (c *Context) sinCosSeries(z *Decimal, sin bool, minTerms uint32) (*Decimal, error) {
	ed := MakeErrDecimal(c)
	zsq := new(Decimal)
	ed.Mul(zsq, z, z)
	c.quantize(zsq, zsq, c.decimals())

	term := new(Decimal)
	n := New(0, 0)
	if sin {
		term.Set(z)
		n.Inc()
	} else {
		term.Set(decimalOne)
	}
	sum := new(Decimal).Set(term)
	l := c.newLoop("sincos", z, minTerms, 2)
	for {
		// Each step multiplies by -z^2 / ((n+1)(n+2)) where n is the
		// current term's top factorial index.
		n.Inc()
		ed.Mul(term, term, zsq)
		ed.Quo(term, term, n)
		n.Inc()
		ed.Quo(term, term, n)
		term.Negative = !term.Negative && !term.isZero()
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

// Tan sets d to the tangent of x, sin(x)/cos(x).
func (c *Context) Tan(d, x *Decimal) (Condition, error) {
	return c.trigRatio(d, x, true)
}

// Cot sets d to the cotangent of x, cos(x)/sin(x).
func (c *Context) Cot(d, x *Decimal) (Condition, error) {
	return c.trigRatio(d, x, false)
}

func (c *Context) trigRatio(d, x *Decimal, tan bool) (Condition, error) {
	if x.Form == NaN {
		_, err := c.nan(d, 0).GoError(c.Traps)
		return 0, err
	}
	if x.Form == Infinite {
		return c.nan(d, InvalidOperation).GoError(c.Traps)
	}
	wc := c.workContext(0)
	z := new(Decimal)
	if _, err := wc.phaseCorrect(z, x); err != nil {
		return 0, err
	}
	sin, err := wc.sinCosSeries(z, true, c.effective().TrigTerms)
	if err != nil {
		return 0, err
	}
	cos, err := wc.sinCosSeries(z, false, c.effective().TrigTerms)
	if err != nil {
		return 0, err
	}
	if !tan {
		sin, cos = cos, sin
	}
	res := c.quo(d, sin, cos)
	res |= Inexact
	return c.goError(res | c.finish(d))
}

// Sec sets d to the secant of x, 1/cos(x).
func (c *Context) Sec(d, x *Decimal) (Condition, error) {
	return c.trigReciprocal(d, x, false)
}

// Csc sets d to the cosecant of x, 1/sin(x).
func (c *Context) Csc(d, x *Decimal) (Condition, error) {
	return c.trigReciprocal(d, x, true)
}

func (c *Context) trigReciprocal(d, x *Decimal, sin bool) (Condition, error) {
	t := new(Decimal)
	wc := c.workContext(0)
	var res Condition
	var err error
	if sin {
		res, err = wc.sinCos(t, x, true)
	} else {
		res, err = wc.sinCos(t, x, false)
	}
	if err != nil {
		return res, err
	}
	if t.Form == NaN {
		return c.goError(c.nan(d, res&InvalidOperation))
	}
	qres := c.quo(d, decimalOne, t)
	return c.goError(qres | Inexact | c.finish(d))
}

// Atan sets d to the arctangent of x.
func (c *Context) Atan(d, x *Decimal) (Condition, error) {
	res, err := c.atan(d, x)
	if err != nil {
		return res, err
	}
	return c.goError(res)
}

func (c *Context) atan(d, x *Decimal) (Condition, error) {
	if x.Form == NaN {
		return c.nan(d, 0), nil
	}
	wc := c.workContext(0)
	ed := MakeErrDecimal(wc)
	if x.Form == Infinite {
		// atan(+-Inf) = +-pi/2.
		t := new(Decimal)
		ed.Mul(t, piDec(wc.decimals()), decimalHalf)
		t.Negative = x.Negative
		if err := ed.Err(); err != nil {
			return 0, err
		}
		res := c.quantize(d, t, c.decimals())
		return res | Inexact | c.finish(d), nil
	}
	if x.isZero() {
		d.Set(decimalZero)
		return 0, nil
	}

	z := new(Decimal).Set(x)
	outside := cmpAbs(z, decimalOne) > 0
	if outside {
		// atan(x) = sign(x)*pi/2 - atan(1/x).
		ed.Quo(z, decimalOne, z)
	}
	sum, err := wc.atanSeries(z, c.effective().TrigTerms)
	if err != nil {
		return 0, err
	}
	if outside {
		half := new(Decimal)
		ed.Mul(half, piDec(wc.decimals()), decimalHalf)
		half.Negative = x.Negative
		ed.Sub(sum, half, sum)
	}
	if err := ed.Err(); err != nil {
		return 0, err
	}
	res := c.quantize(d, sum, c.decimals())
	res |= Inexact
	return res | c.finish(d), nil
}

// atanSeries sums atan(z) for |z| <= 1. Arguments near 1 are first pulled
// toward zero with the half-angle identity atan(z) = 2*atan(z/(1+sqrt
// (1+z^2))), which the plain alternating series needs to converge at a
// useful rate.
func (c *Context) atanSeries(z *Decimal, minTerms uint32) (*Decimal, error) {
	ed := MakeErrDecimal(c)
	halvings := 0
	zz := new(Decimal).Set(z)
	threshold := New(4, 1) // 0.4
	for cmpAbs(zz, threshold) > 0 {
		t := new(Decimal)
		ed.Mul(t, zz, zz)
		ed.Add(t, t, decimalOne)
		if _, err := c.improvisedSqrt(t, t); err != nil {
			return nil, err
		}
		ed.Add(t, t, decimalOne)
		ed.Quo(zz, zz, t)
		if err := ed.Err(); err != nil {
			return nil, err
		}
		halvings++
		if halvings > 8 {
			break
		}
	}

	zsq := new(Decimal)
	ed.Mul(zsq, zz, zz)
	c.quantize(zsq, zsq, c.decimals())

	sum := new(Decimal).Set(zz)
	pow := new(Decimal).Set(zz)
	term := new(Decimal)
	n := New(1, 0)
	l := c.newLoop("atan", z, minTerms, 3)
	for {
		n.Inc()
		n.Inc()
		ed.Mul(pow, pow, zsq)
		c.quantize(pow, pow, c.decimals())
		pow.Negative = !pow.Negative && !pow.isZero()
		ed.Quo(term, pow, n)
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
	for i := 0; i < halvings; i++ {
		ed.Mul(sum, sum, decimalTwo)
	}
	if err := ed.Err(); err != nil {
		return nil, err
	}
	return sum, nil
}

// Asin sets d to the arcsine of x, atan(x/sqrt(1-x^2)).
func (c *Context) Asin(d, x *Decimal) (Condition, error) {
	res, err := c.asin(d, x)
	if err != nil {
		return res, err
	}
	return c.goError(res)
}

func (c *Context) asin(d, x *Decimal) (Condition, error) {
	if x.Form == NaN {
		return c.nan(d, 0), nil
	}
	if x.Form == Infinite || cmpAbs(x, decimalOne) > 0 {
		return c.nan(d, InvalidOperation), nil
	}
	wc := c.workContext(0)
	ed := MakeErrDecimal(wc)
	if cmpAbs(x, decimalOne) == 0 {
		// asin(+-1) = +-pi/2.
		t := new(Decimal)
		ed.Mul(t, piDec(wc.decimals()), decimalHalf)
		t.Negative = x.Negative
		if err := ed.Err(); err != nil {
			return 0, err
		}
		res := c.quantize(d, t, c.decimals())
		return res | Inexact | c.finish(d), nil
	}
	t := new(Decimal)
	ed.Mul(t, x, x)
	ed.Sub(t, decimalOne, t)
	if _, err := wc.improvisedSqrt(t, t); err != nil {
		return 0, err
	}
	ed.Quo(t, x, t)
	if err := ed.Err(); err != nil {
		return 0, err
	}
	return c.atan(d, t)
}

// Acos sets d to the arccosine of x, pi/2 - asin(x).
func (c *Context) Acos(d, x *Decimal) (Condition, error) {
	res, err := c.acos(d, x)
	if err != nil {
		return res, err
	}
	return c.goError(res)
}

func (c *Context) acos(d, x *Decimal) (Condition, error) {
	if x.Form == NaN {
		return c.nan(d, 0), nil
	}
	if x.Form == Infinite || cmpAbs(x, decimalOne) > 0 {
		return c.nan(d, InvalidOperation), nil
	}
	wc := c.workContext(0)
	ed := MakeErrDecimal(wc)
	as := new(Decimal)
	if _, err := wc.asin(as, x); err != nil {
		return 0, err
	}
	half := new(Decimal)
	ed.Mul(half, piDec(wc.decimals()), decimalHalf)
	ed.Sub(as, half, as)
	if err := ed.Err(); err != nil {
		return 0, err
	}
	res := c.quantize(d, as, c.decimals())
	res |= Inexact
	return res | c.finish(d), nil
}

// Atan2 sets d to the angle of the point (x, y) in (-pi, pi], resolving
// the quadrant from the signs of both arguments.
func (c *Context) Atan2(d, y, x *Decimal) (Condition, error) {
	res, err := c.atan2(d, y, x)
	if err != nil {
		return res, err
	}
	return c.goError(res)
}

func (c *Context) atan2(d, y, x *Decimal) (Condition, error) {
	if x.Form == NaN || y.Form == NaN {
		return c.nan(d, 0), nil
	}
	if x.Form == Infinite || y.Form == Infinite {
		return c.nan(d, InvalidOperation), nil
	}
	wc := c.workContext(0)
	ed := MakeErrDecimal(wc)
	xs, ys := x.Sign(), y.Sign()
	switch {
	case xs == 0 && ys == 0:
		return c.nan(d, DivisionUndefined), nil
	case xs == 0:
		// +-pi/2 by the sign of y.
		t := new(Decimal)
		ed.Mul(t, piDec(wc.decimals()), decimalHalf)
		t.Negative = ys < 0
		if err := ed.Err(); err != nil {
			return 0, err
		}
		res := c.quantize(d, t, c.decimals())
		return res | Inexact | c.finish(d), nil
	case ys == 0:
		if xs > 0 {
			d.Set(decimalZero)
			return 0, nil
		}
		res := c.quantize(d, piDec(wc.decimals()), c.decimals())
		return res | Inexact | c.finish(d), nil
	}
	t := new(Decimal)
	ed.Quo(t, y, x)
	if err := ed.Err(); err != nil {
		return 0, err
	}
	at := new(Decimal)
	if _, err := wc.atan(at, t); err != nil {
		return 0, err
	}
	if xs < 0 {
		// Shift the bare arctangent into the left half-plane.
		pi := piDec(wc.decimals())
		if ys > 0 {
			ed.Add(at, at, pi)
		} else {
			ed.Sub(at, at, pi)
		}
		if err := ed.Err(); err != nil {
			return 0, err
		}
	}
	res := c.quantize(d, at, c.decimals())
	res |= Inexact
	return res | c.finish(d), nil
}
