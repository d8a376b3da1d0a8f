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

// Constants holds the mathematical constants materialised at a Context's
// precision. The values are generated in dependency order on
// construction: e by its Taylor series, 1/pi by the Chudnovsky series,
// then pi and its multiples, the square roots by the bootstrap Newton
// method, and the logarithms by the atanh series, which needs none of
// the armed transcendental functions and so breaks the Ln/ln2 cycle.
//
// A Constants instance is not safe for concurrent use.
type Constants struct {
	ctx Context

	e, pi, invPi, halfPi, quarterPi, twoPi, twoOverPi, twoOverSqrtPi,
	sqrtTwo, invSqrtTwo, ln2, ln10, log2E, log10E Decimal
}

// NewConstants generates every constant at c's precision.
func NewConstants(c *Context) (*Constants, error) {
	cs := &Constants{ctx: c.effective()}
	if err := cs.generate(); err != nil {
		return nil, err
	}
	return cs, nil
}

func (cs *Constants) generate() error {
	c := &cs.ctx
	wc := c.workContext(0)
	ed := MakeErrDecimal(wc)

	// e = exp(1).
	e, err := wc.expSeries(decimalOne, c.effective().ETerms)
	if err != nil {
		return err
	}
	c.quantize(&cs.e, e, c.decimals())

	// 1/pi by Chudnovsky, then everything pi-shaped.
	invPi, err := wc.chudnovsky()
	if err != nil {
		return err
	}
	c.quantize(&cs.invPi, invPi, c.decimals())
	pi := new(Decimal)
	ed.Quo(pi, decimalOne, invPi)
	c.quantize(&cs.pi, pi, c.decimals())
	t := new(Decimal)
	ed.Mul(t, pi, decimalHalf)
	c.quantize(&cs.halfPi, t, c.decimals())
	ed.Mul(t, t, decimalHalf)
	c.quantize(&cs.quarterPi, t, c.decimals())
	ed.Mul(t, pi, decimalTwo)
	c.quantize(&cs.twoPi, t, c.decimals())
	ed.Mul(t, invPi, decimalTwo)
	c.quantize(&cs.twoOverPi, t, c.decimals())

	// 2/sqrt(pi) and the square roots of two.
	if _, err := wc.improvisedSqrt(t, pi); err != nil {
		return err
	}
	ed.Quo(t, decimalTwo, t)
	c.quantize(&cs.twoOverSqrtPi, t, c.decimals())
	if _, err := wc.improvisedSqrt(t, decimalTwo); err != nil {
		return err
	}
	c.quantize(&cs.sqrtTwo, t, c.decimals())
	ed.Quo(t, decimalOne, t)
	c.quantize(&cs.invSqrtTwo, t, c.decimals())

	// ln 2 = 2*atanh(1/3), directly from the series.
	l2, err := wc.atanhSeries(decimalTwo, c.effective().LnTerms)
	if err != nil {
		return err
	}
	ed.Mul(l2, l2, decimalTwo)
	c.quantize(&cs.ln2, l2, c.decimals())

	// ln 10 = 3*ln 2 + ln(10/8).
	tenEighths := New(125, 2)
	l10, err := wc.atanhSeries(tenEighths, c.effective().LnTerms)
	if err != nil {
		return err
	}
	ed.Mul(l10, l10, decimalTwo)
	ed.Mul(t, l2, New(3, 0))
	ed.Add(l10, l10, t)
	c.quantize(&cs.ln10, l10, c.decimals())

	// The log bases of e.
	ed.Quo(t, decimalOne, l2)
	c.quantize(&cs.log2E, t, c.decimals())
	ed.Quo(t, decimalOne, l10)
	c.quantize(&cs.log10E, t, c.decimals())

	if err := ed.Err(); err != nil {
		return err
	}
	for _, d := range []*Decimal{
		&cs.e, &cs.pi, &cs.invPi, &cs.halfPi, &cs.quarterPi, &cs.twoPi,
		&cs.twoOverPi, &cs.twoOverSqrtPi, &cs.sqrtTwo, &cs.invSqrtTwo,
		&cs.ln2, &cs.ln10, &cs.log2E, &cs.log10E,
	} {
		d.Context = *c
	}
	return nil
}

// Chudnovsky series constants: 1/pi = 12/(C*sqrt(C)) *
// sum (6k)!*(A*k+B) / ((3k)!*(k!)^3*(-C^3)^k).
const (
	chudA  = 545140134
	chudB  = 13591409
	chudC  = 640320
	chudC3 = chudC * chudC * chudC
)

// chudnovsky computes 1/pi at c's precision. Each series term yields
// about 14 digits; the configured PiTerms acts as a floor on the term
// count.
func (c *Context) chudnovsky() (*Decimal, error) {
	terms := int(c.effective().PiTerms)
	if need := c.decimals()/14 + 2; terms < need {
		terms = need
	}
	ed := MakeErrDecimal(c)

	f6 := dig10.NewInt(1) // (6k)!
	f3 := dig10.NewInt(1) // (3k)!
	f1 := dig10.NewInt(1) // k!
	c3k := dig10.NewInt(1)
	c3 := dig10.NewInt(chudC3)

	sum := new(Decimal)
	term := new(Decimal)
	for k := 0; k < terms; k++ {
		if k > 0 {
			for i := int64(6*k - 5); i <= int64(6*k); i++ {
				f6 = f6.Mul(dig10.NewInt(uint64(i)))
			}
			for i := int64(3*k - 2); i <= int64(3*k); i++ {
				f3 = f3.Mul(dig10.NewInt(uint64(i)))
			}
			f1 = f1.Mul(dig10.NewInt(uint64(k)))
			c3k = c3k.Mul(c3)
		}
		num := f6.Mul(dig10.NewInt(uint64(chudA*int64(k) + chudB)))
		den := f3.Mul(f1).Mul(f1).Mul(f1).Mul(c3k)
		ed.Quo(term,
			&Decimal{Form: Finite, Coeff: num, Negative: k%2 == 1},
			&Decimal{Form: Finite, Coeff: den})
		ed.Add(sum, sum, term)
		if err := ed.Err(); err != nil {
			return nil, err
		}
	}

	// 12 / (C*sqrt(C)).
	sqrtC := new(Decimal)
	if _, err := c.improvisedSqrt(sqrtC, New(chudC, 0)); err != nil {
		return nil, err
	}
	ed.Mul(sqrtC, sqrtC, New(chudC, 0))
	ed.Quo(sqrtC, New(12, 0), sqrtC)
	ed.Mul(sum, sum, sqrtC)
	if err := ed.Err(); err != nil {
		return nil, err
	}
	return sum, nil
}

// constCache backs the package-level constant accessors used by the
// transcendental functions. It grows monotonically with the requested
// precision and, like the rest of the package, is not guarded for
// concurrent use.
var constCache struct {
	prec int
	cs   *Constants
}

func constantsAt(prec int) *Constants {
	if constCache.cs == nil || constCache.prec < prec {
		c := BaseContext
		c.Decimals = uint32(prec)
		c.Traps = 0
		cs, err := NewConstants(&c)
		if err != nil {
			panic(errors.Wrap(err, "constants"))
		}
		constCache.cs = cs
		constCache.prec = prec
	}
	return constCache.cs
}

func piDec(prec int) *Decimal            { return &constantsAt(prec).pi }
func twoPiDec(prec int) *Decimal         { return &constantsAt(prec).twoPi }
func lnTwo(prec int) *Decimal            { return &constantsAt(prec).ln2 }
func lnTen(prec int) *Decimal            { return &constantsAt(prec).ln10 }
func twoOverSqrtPiDec(prec int) *Decimal { return &constantsAt(prec).twoOverSqrtPi }

// E returns e at the generator's precision.
func (cs *Constants) E() *Decimal { return new(Decimal).Set(&cs.e).withContext(cs.ctx) }

// Pi returns pi.
func (cs *Constants) Pi() *Decimal { return new(Decimal).Set(&cs.pi).withContext(cs.ctx) }

// InvPi returns 1/pi.
func (cs *Constants) InvPi() *Decimal { return new(Decimal).Set(&cs.invPi).withContext(cs.ctx) }

// HalfPi returns pi/2.
func (cs *Constants) HalfPi() *Decimal { return new(Decimal).Set(&cs.halfPi).withContext(cs.ctx) }

// QuarterPi returns pi/4.
func (cs *Constants) QuarterPi() *Decimal {
	return new(Decimal).Set(&cs.quarterPi).withContext(cs.ctx)
}

// TwoPi returns 2*pi.
func (cs *Constants) TwoPi() *Decimal { return new(Decimal).Set(&cs.twoPi).withContext(cs.ctx) }

// TwoOverPi returns 2/pi.
func (cs *Constants) TwoOverPi() *Decimal {
	return new(Decimal).Set(&cs.twoOverPi).withContext(cs.ctx)
}

// TwoOverSqrtPi returns 2/sqrt(pi).
func (cs *Constants) TwoOverSqrtPi() *Decimal {
	return new(Decimal).Set(&cs.twoOverSqrtPi).withContext(cs.ctx)
}

// SqrtTwo returns sqrt(2).
func (cs *Constants) SqrtTwo() *Decimal { return new(Decimal).Set(&cs.sqrtTwo).withContext(cs.ctx) }

// InvSqrtTwo returns 1/sqrt(2).
func (cs *Constants) InvSqrtTwo() *Decimal {
	return new(Decimal).Set(&cs.invSqrtTwo).withContext(cs.ctx)
}

// Ln2 returns ln 2.
func (cs *Constants) Ln2() *Decimal { return new(Decimal).Set(&cs.ln2).withContext(cs.ctx) }

// Ln10 returns ln 10.
func (cs *Constants) Ln10() *Decimal { return new(Decimal).Set(&cs.ln10).withContext(cs.ctx) }

// Log2E returns log base 2 of e.
func (cs *Constants) Log2E() *Decimal { return new(Decimal).Set(&cs.log2E).withContext(cs.ctx) }

// Log10E returns log base 10 of e.
func (cs *Constants) Log10E() *Decimal { return new(Decimal).Set(&cs.log10E).withContext(cs.ctx) }

func (d *Decimal) withContext(c Context) *Decimal {
	d.Context = c
	return d
}
