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

// Ln sets d to the natural log of x.
func (c *Context) Ln(d, x *Decimal) (Condition, error) {
	res, err := c.ln(d, x)
	if err != nil {
		return res, err
	}
	return c.goError(res)
}

func (c *Context) ln(d, x *Decimal) (Condition, error) {
	if x.Form == NaN {
		return c.nan(d, 0), nil
	}
	if x.Form == Infinite {
		if x.Negative {
			return c.nan(d, InvalidOperation), nil
		}
		return c.inf(d, false, 0), nil
	}
	if x.Sign() <= 0 {
		return c.nan(d, InvalidOperation), nil
	}
	if x.Cmp(decimalOne) == 0 {
		d.Set(decimalZero)
		return 0, nil
	}

	wc := c.workContext(0)
	ed := MakeErrDecimal(wc)

	// Reduce x to m * 2^k with m in [1, 2) by repeated halving or
	// doubling in base 10.
	m := new(Decimal).Set(x)
	k := 0
	for m.Cmp(decimalTwo) >= 0 {
		ed.Mul(m, m, decimalHalf)
		wc.quantize(m, m, wc.decimals())
		k++
	}
	for m.Cmp(decimalOne) < 0 {
		ed.Mul(m, m, decimalTwo)
		wc.quantize(m, m, wc.decimals())
		k--
	}
	if err := ed.Err(); err != nil {
		return 0, err
	}

	sum, err := wc.atanhSeries(m, c.effective().LnTerms)
	if err != nil {
		return 0, err
	}
	ed.Mul(sum, sum, decimalTwo)

	if k != 0 {
		t := new(Decimal)
		ed.Mul(t, New(int64(k), 0), lnTwo(wc.decimals()))
		ed.Add(sum, sum, t)
	}
	if err := ed.Err(); err != nil {
		return 0, err
	}
	res := c.quantize(d, sum, c.decimals())
	res |= Inexact
	return res | c.finish(d), nil
}

// atanhSeries sums atanh((m-1)/(m+1)) = sum z^(2k+1)/(2k+1) for
// z = (m-1)/(m+1), which equals ln(m)/2. minTerms is the configured
// series floor.
func (c *Context) atanhSeries(m *Decimal, minTerms uint32) (*Decimal, error) {
	ed := MakeErrDecimal(c)
	num := new(Decimal)
	den := new(Decimal)
	ed.Sub(num, m, decimalOne)
	ed.Add(den, m, decimalOne)
	z := new(Decimal)
	ed.Quo(z, num, den)

	zsq := new(Decimal)
	ed.Mul(zsq, z, z)
	c.quantize(zsq, zsq, c.decimals())

	sum := new(Decimal).Set(z)
	pow := new(Decimal).Set(z)
	term := new(Decimal)
	n := New(1, 0)
	l := c.newLoop("ln", m, minTerms, 2)
	for {
		n.Inc()
		n.Inc()
		ed.Mul(pow, pow, zsq)
		c.quantize(pow, pow, c.decimals())
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
	return sum, nil
}

// Log sets d to the base-b logarithm of x, ln(x)/ln(b).
func (c *Context) Log(d, b, x *Decimal) (Condition, error) {
	res, err := c.log(d, b, x)
	if err != nil {
		return res, err
	}
	return c.goError(res)
}

func (c *Context) log(d, b, x *Decimal) (Condition, error) {
	if b.Form == NaN || x.Form == NaN {
		return c.nan(d, 0), nil
	}
	if b.Form == Finite && (b.Sign() <= 0 || b.Cmp(decimalOne) == 0) {
		return c.nan(d, InvalidOperation), nil
	}
	wc := c.workContext(0)
	ed := MakeErrDecimal(wc)
	lx := new(Decimal)
	lb := new(Decimal)
	ed.Ln(lx, x)
	ed.Ln(lb, b)
	t := new(Decimal)
	ed.Quo(t, lx, lb)
	if err := ed.Err(); err != nil {
		return 0, err
	}
	if t.Form != Finite {
		d.Set(t)
		return ed.Flags & (InvalidOperation | DivisionByZero), nil
	}
	res := c.quantize(d, t, c.decimals())
	res |= Inexact
	return res | c.finish(d), nil
}

// Log10 sets d to the base 10 log of x, using the cached ln 10.
func (c *Context) Log10(d, x *Decimal) (Condition, error) {
	res, err := c.logConst(d, x, lnTen)
	if err != nil {
		return res, err
	}
	return c.goError(res)
}

// Log2 sets d to the base 2 log of x, using the cached ln 2.
func (c *Context) Log2(d, x *Decimal) (Condition, error) {
	res, err := c.logConst(d, x, lnTwo)
	if err != nil {
		return res, err
	}
	return c.goError(res)
}

func (c *Context) logConst(d, x *Decimal, base func(int) *Decimal) (Condition, error) {
	if x.Form == NaN {
		return c.nan(d, 0), nil
	}
	wc := c.workContext(0)
	ed := MakeErrDecimal(wc)
	t := new(Decimal)
	ed.Ln(t, x)
	if err := ed.Err(); err != nil {
		return 0, err
	}
	if t.Form != Finite {
		d.Set(t)
		return ed.Flags & (InvalidOperation | DivisionByZero), nil
	}
	ed.Quo(t, t, base(wc.decimals()))
	if err := ed.Err(); err != nil {
		return 0, err
	}
	res := c.quantize(d, t, c.decimals())
	res |= Inexact
	return res | c.finish(d), nil
}
