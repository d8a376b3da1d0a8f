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

// Context maintains options for Decimal operations. Operations never modify
// it, but the transcendental operations read and grow the package-level
// constants cache without locking, so they are not safe for concurrent use.
type Context struct {
	// Decimals is the minimum number of error-corrected fractional digits
	// retained by inexact operations. A finite result whose whole-digit
	// count exceeds Decimals saturates to infinity.
	Decimals uint32
	// ETerms is the Taylor series term count used to materialise e.
	ETerms uint32
	// PiTerms is the Chudnovsky series term floor used to materialise 1/pi.
	PiTerms uint32
	// DivSteps is the number of Newton-Raphson reciprocal refinement
	// rounds applied after long division. 0 disables refinement.
	DivSteps uint32
	// LnTerms is the series term floor for Ln.
	LnTerms uint32
	// TanhTerms is the series term floor for Tanh and related functions.
	TanhTerms uint32
	// SqrtIters is the Newton iteration budget for the square root helper.
	SqrtIters uint32
	// TrigTerms is the series term floor for the trigonometric functions.
	TrigTerms uint32
	// Truncate selects truncation toward zero instead of rounding half-up
	// when narrowing fractional digits.
	Truncate bool
	// Traps are the conditions which will trigger an error result if the
	// corresponding flag condition occurred. A condition not in Traps
	// yields the matching special value in-band instead.
	Traps Condition
}

// Default iteration counts and precision.
const (
	DefaultDecimals  = 40
	DefaultETerms    = 40
	DefaultPiTerms   = 1
	DefaultDivSteps  = 5
	DefaultLnTerms   = 40
	DefaultTanhTerms = 40
	DefaultSqrtIters = 40
	DefaultTrigTerms = 5
)

// DefaultTraps is the default trap set used by BaseContext. Overflow is
// not trapped: saturation to infinity is ordinary behavior of the
// fixed-point representation, not a domain violation.
const DefaultTraps = DivisionUndefined |
	DivisionByZero |
	InvalidOperation |
	ConversionSyntax

// BaseContext is a useful default Context. Should not be mutated.
var BaseContext = Context{
	Decimals:  DefaultDecimals,
	ETerms:    DefaultETerms,
	PiTerms:   DefaultPiTerms,
	DivSteps:  DefaultDivSteps,
	LnTerms:   DefaultLnTerms,
	TanhTerms: DefaultTanhTerms,
	SqrtIters: DefaultSqrtIters,
	TrigTerms: DefaultTrigTerms,
	Traps:     DefaultTraps,
}

// WithDecimals returns a copy of c but with the specified number of
// fractional digits.
func (c *Context) WithDecimals(n uint32) *Context {
	r := c.effective()
	r.Decimals = n
	return &r
}

// WithTraps returns a copy of c but with the specified trap set. A zero
// trap set converts every illegal operation to its special value instead
// of an error.
func (c *Context) WithTraps(t Condition) *Context {
	r := c.effective()
	r.Traps = t
	return &r
}

// effective returns c, or BaseContext when c is the zero value, so that
// zero-valued Decimals operate under the defaults.
func (c *Context) effective() Context {
	if *c == (Context{}) {
		return BaseContext
	}
	return *c
}

func (c *Context) decimals() int {
	e := c.effective()
	return int(e.Decimals)
}

// goError converts flags into an error based on c.Traps.
func (c *Context) goError(flags Condition) (Condition, error) {
	return flags.GoError(c.Traps)
}

// finish canonicalizes d and saturates it to infinity when its magnitude
// can no longer be distinguished from infinity at c.Decimals precision.
func (c *Context) finish(d *Decimal) Condition {
	d.trim()
	if d.Form == Finite && d.wholeDigits() > c.decimals() {
		neg := d.Negative
		d.setInf(neg)
		return Overflow
	}
	return 0
}

// quantize reduces x to at most scale fractional digits, rounding half-up
// or truncating toward zero per c.Truncate, and stores the result in d.
func (c *Context) quantize(d, x *Decimal, scale int) Condition {
	d.Set(x)
	if d.Form != Finite || d.Scale <= scale {
		return 0
	}
	drop := d.Scale - scale
	var res Condition
	inexact := false
	for i := 0; i < drop; i++ {
		if d.Coeff.Digit(i) != 0 {
			inexact = true
			break
		}
	}
	up := !c.Truncate && d.Coeff.Digit(drop-1) >= 5
	d.Coeff.Mul10(-drop)
	d.Scale = scale
	if inexact {
		res |= Inexact | Rounded
		if up {
			d.Coeff.Add(d.Coeff, dig10.NewInt(1))
		}
	}
	d.trim()
	return res
}

// nan sets d to NaN and reports res.
func (c *Context) nan(d *Decimal, res Condition) Condition {
	d.setNaN()
	return res
}

// inf sets d to a signed infinity and reports res.
func (c *Context) inf(d *Decimal, neg bool, res Condition) Condition {
	d.setInf(neg)
	return res
}

// addSpecials resolves x+y (or x-y when sub is set) when either operand is
// non-finite. The handled return is false when both operands are finite.
func (c *Context) addSpecials(d, x, y *Decimal, sub bool) (Condition, bool) {
	if x.Form == Finite && y.Form == Finite {
		return 0, false
	}
	if x.Form == NaN || y.Form == NaN {
		return c.nan(d, 0), true
	}
	yneg := y.Negative
	if sub {
		yneg = !yneg
	}
	switch {
	case x.Form == Infinite && y.Form == Infinite:
		if x.Negative != yneg {
			// Inf - Inf.
			return c.nan(d, InvalidOperation), true
		}
		return c.inf(d, x.Negative, 0), true
	case x.Form == Infinite:
		return c.inf(d, x.Negative, 0), true
	default:
		return c.inf(d, yneg, 0), true
	}
}

// Add sets d to the sum x+y.
func (c *Context) Add(d, x, y *Decimal) (Condition, error) {
	return c.goError(c.add(d, x, y, false))
}

// Sub sets d to the difference x-y.
func (c *Context) Sub(d, x, y *Decimal) (Condition, error) {
	return c.goError(c.add(d, x, y, true))
}

func (c *Context) add(d, x, y *Decimal, sub bool) Condition {
	if res, handled := c.addSpecials(d, x, y, sub); handled {
		return res
	}
	yneg := y.Negative
	if sub {
		yneg = !yneg
	}
	// Align the fractional parts by padding the shorter one with zeros.
	s := maxInt(x.Scale, y.Scale)
	var xa, ya dig10.Int
	xa.Set(x.Coeff)
	xa.Mul10(s - x.Scale)
	ya.Set(y.Coeff)
	ya.Mul10(s - y.Scale)

	var z dig10.Int
	var neg bool
	if x.Negative == yneg {
		z.Add(xa, ya)
		neg = x.Negative
	} else {
		borrow := z.Diff(xa, ya)
		if borrow {
			neg = yneg
		} else {
			neg = x.Negative
		}
	}
	d.Form = Finite
	d.Negative = neg
	d.Coeff = z
	d.Scale = s
	return c.finish(d)
}

// Mul sets d to the product x*y.
func (c *Context) Mul(d, x, y *Decimal) (Condition, error) {
	return c.goError(c.mul(d, x, y))
}

func (c *Context) mul(d, x, y *Decimal) Condition {
	if x.Form == NaN || y.Form == NaN {
		return c.nan(d, 0)
	}
	if x.Form == Infinite || y.Form == Infinite {
		if x.isZero() || y.isZero() {
			// Inf * 0.
			return c.nan(d, InvalidOperation)
		}
		return c.inf(d, x.Negative != y.Negative, 0)
	}
	neg := x.Negative != y.Negative
	d.Form = Finite
	d.Coeff = x.Coeff.Mul(y.Coeff)
	d.Scale = x.Scale + y.Scale
	d.Negative = neg
	return c.finish(d)
}

// Neg sets d to -x.
func (c *Context) Neg(d, x *Decimal) (Condition, error) {
	d.Neg(x)
	return 0, nil
}

// Abs sets d to |x|.
func (c *Context) Abs(d, x *Decimal) (Condition, error) {
	d.Abs(x)
	return 0, nil
}
