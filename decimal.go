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

// Package decfp implements arbitrary-precision fixed-point decimals with
// IEEE-style special values (infinities and NaN) and a suite of
// transcendental functions computed to a configurable number of fractional
// digits.
package decfp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/decfp/decfp/dig10"
)

// Form specifies the kind of value a Decimal holds.
type Form int8

const (
	// Finite is an ordinary decimal number.
	Finite Form = iota
	// Infinite is a signed infinity.
	Infinite
	// NaN is not-a-number. Its sign is ignored.
	NaN
)

func (f Form) String() string {
	switch f {
	case Finite:
		return "finite"
	case Infinite:
		return "infinite"
	case NaN:
		return "NaN"
	default:
		return fmt.Sprintf("unknown form %d", int8(f))
	}
}

// Decimal is an arbitrary-precision fixed-point decimal. A finite value is:
//
//	(-1)^neg * Coeff * 10^(-Scale)
//
// where Coeff is a base-10 digit sequence and Scale counts fractional
// digits. When Form is not Finite, Coeff is empty and Scale is zero.
//
// A Decimal carries the Context under which it was produced; operations on
// the value layer (see ops.go) adopt the left operand's context.
type Decimal struct {
	Form     Form
	Negative bool
	Coeff    dig10.Int
	Scale    int
	Context  Context
}

// MaxScale bounds the scale shifts performed when folding a parsed
// exponent into the fixed-point representation. Scales near this range
// allocate one word per digit and will be slow.
const MaxScale = 100000

const errExponentOutOfRangeStr = "exponent out of range"

// New creates a new decimal with the given coefficient and scale. The value
// is coeff * 10^(-scale). A negative scale multiplies the coefficient out.
func New(coeff int64, scale int) *Decimal {
	d := &Decimal{
		Negative: coeff < 0,
		Coeff:    dig10.NewInt64(coeff),
		Scale:    scale,
	}
	if scale < 0 {
		d.Coeff.Mul10(-scale)
		d.Scale = 0
	}
	d.trim()
	return d
}

func parseString(s string) (neg bool, coeff dig10.Int, scale int, err error) {
	orig := s
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	var exp int
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		e, perr := strconv.ParseInt(s[i+1:], 10, 32)
		if perr != nil {
			return false, nil, 0, errors.Wrapf(perr, "parse exponent: %s", s[i+1:])
		}
		exp = int(e)
		s = s[:i]
	}
	if i := strings.IndexByte(s, '.'); i >= 0 {
		scale = len(s) - i - 1
		s = s[:i] + s[i+1:]
	}
	if s == "" {
		return false, nil, 0, errors.Errorf("parse mantissa: %q", orig)
	}
	coeff, ok := dig10.NewIntString(s)
	if !ok {
		return false, nil, 0, errors.Errorf("parse mantissa: %q", orig)
	}
	scale -= exp
	if scale > MaxScale || scale < -MaxScale {
		return false, nil, 0, errors.New(errExponentOutOfRangeStr)
	}
	if scale < 0 {
		coeff.Mul10(-scale)
		scale = 0
	}
	return neg, coeff, scale, nil
}

// specialFromString recognizes the textual forms of the special values.
func specialFromString(s string) (Form, bool, bool) {
	neg := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	switch strings.ToLower(s) {
	case "inf", "infinity":
		return Infinite, neg, true
	case "nan":
		return NaN, false, true
	}
	return Finite, false, false
}

// NewFromString creates a new decimal from s. Parsing is exact: no rounding
// or saturation occurs regardless of the base context's Decimals setting.
func NewFromString(s string) (*Decimal, error) {
	d := new(Decimal)
	_, err := d.setString(&BaseContext, s)
	return d, err
}

// SetString sets d to s and returns d.
func (d *Decimal) SetString(s string) (*Decimal, error) {
	_, err := d.setString(&BaseContext, s)
	return d, err
}

// NewFromString creates a new decimal from s, attaching c to the result.
// Syntax errors are trapped or converted to NaN per c.Traps.
func (c *Context) NewFromString(s string) (*Decimal, Condition, error) {
	d := new(Decimal)
	res, err := d.setString(c, s)
	return d, res, err
}

func (d *Decimal) setString(c *Context, s string) (Condition, error) {
	d.Context = *c
	if form, neg, ok := specialFromString(s); ok {
		d.Form = form
		d.Negative = neg
		d.Coeff = nil
		d.Scale = 0
		return 0, nil
	}
	neg, coeff, scale, err := parseString(s)
	if err != nil {
		d.Form = NaN
		d.Negative = false
		d.Coeff = nil
		d.Scale = 0
		res := Condition(ConversionSyntax)
		if _, gerr := res.GoError(c.Traps); gerr != nil {
			return res, errors.Wrap(err, "parse")
		}
		return res, nil
	}
	d.Form = Finite
	d.Negative = neg
	d.Coeff = coeff
	d.Scale = scale
	if d.Coeff.Zero() && d.Scale == 0 {
		d.Negative = false
	}
	return 0, nil
}

// String returns the canonical form of d: an optional minus sign, the
// integer digits, and the fractional digits after a point when Scale > 0.
func (d *Decimal) String() string {
	switch d.Form {
	case Infinite:
		if d.Negative {
			return "-Infinity"
		}
		return "Infinity"
	case NaN:
		return "NaN"
	}
	var b strings.Builder
	if d.Negative && !d.isZero() {
		b.WriteByte('-')
	}
	n := d.Coeff.Len()
	if n <= d.Scale {
		b.WriteByte('0')
	} else {
		for i := n - 1; i >= d.Scale; i-- {
			b.WriteByte(byte(d.Coeff.Digit(i)) + '0')
		}
	}
	if d.Scale > 0 {
		b.WriteByte('.')
		for i := d.Scale - 1; i >= 0; i-- {
			b.WriteByte(byte(d.Coeff.Digit(i)) + '0')
		}
	}
	return b.String()
}

// ToFixed returns d with exactly Context.Decimals fractional digits,
// zero-padded on the right, rounding (or truncating, per Context.Truncate)
// when d carries more.
func (d *Decimal) ToFixed() string {
	if d.Form != Finite {
		return d.String()
	}
	target := int(d.Context.decimals())
	t := new(Decimal).Set(d)
	if t.Scale > target {
		d.Context.quantize(t, t, target)
	}
	s := t.String()
	frac := t.Scale
	if frac == 0 && target > 0 {
		s += "."
	}
	if pad := target - frac; pad > 0 {
		s += strings.Repeat("0", pad)
	}
	return s
}

// Set sets d's form, sign, coefficient and scale from x and returns d. d's
// context is left unchanged.
func (d *Decimal) Set(x *Decimal) *Decimal {
	if d != x {
		d.Form = x.Form
		d.Negative = x.Negative
		d.Coeff = append(d.Coeff[:0], x.Coeff...)
		d.Scale = x.Scale
	}
	return d
}

// SetInt64 sets d to x and returns d.
func (d *Decimal) SetInt64(x int64) *Decimal {
	d.Form = Finite
	d.Negative = x < 0
	d.Coeff = dig10.NewInt64(x)
	d.Scale = 0
	return d
}

// SetUint64 sets d to x and returns d. The full uint64 range is supported;
// values above 2^63-1 do not need to round-trip through a string.
func (d *Decimal) SetUint64(x uint64) *Decimal {
	d.Form = Finite
	d.Negative = false
	d.Coeff = dig10.NewInt(x)
	d.Scale = 0
	return d
}

// SetFloat64 sets d to the shortest decimal that round-trips to f. The
// non-finite floats map onto the matching special forms.
func (d *Decimal) SetFloat64(f float64) (*Decimal, error) {
	return d.SetString(strconv.FormatFloat(f, 'g', -1, 64))
}

// setInf sets d to an infinity with the given sign.
func (d *Decimal) setInf(neg bool) *Decimal {
	d.Form = Infinite
	d.Negative = neg
	d.Coeff = nil
	d.Scale = 0
	return d
}

// setNaN sets d to NaN.
func (d *Decimal) setNaN() *Decimal {
	d.Form = NaN
	d.Negative = false
	d.Coeff = nil
	d.Scale = 0
	return d
}

// IsNaN reports whether d is NaN.
func (d *Decimal) IsNaN() bool { return d.Form == NaN }

// IsInf reports whether d is an infinity.
func (d *Decimal) IsInf() bool { return d.Form == Infinite }

func (d *Decimal) isZero() bool { return d.Form == Finite && d.Coeff.Zero() }

// Sign returns:
//
//	-1 if d <  0
//	 0 if d == 0 or d is NaN
//	+1 if d >  0
//
// Infinities report the sign they carry.
func (d *Decimal) Sign() int {
	switch d.Form {
	case NaN:
		return 0
	case Infinite:
		if d.Negative {
			return -1
		}
		return 1
	}
	if d.Coeff.Zero() {
		return 0
	}
	if d.Negative {
		return -1
	}
	return 1
}

// NumDigits returns the number of decimal digits of d's coefficient.
func (d *Decimal) NumDigits() int {
	n := d.Coeff.Len()
	if n == 0 {
		return 1
	}
	return n
}

// Decimals returns the number of fractional digits of d.
func (d *Decimal) Decimals() int { return d.Scale }

// wholeDigits returns the number of digits left of the point.
func (d *Decimal) wholeDigits() int {
	if n := d.Coeff.Len() - d.Scale; n > 0 {
		return n
	}
	return 0
}

// Neg sets d to -x and returns d. -NaN is NaN.
func (d *Decimal) Neg(x *Decimal) *Decimal {
	d.Set(x)
	if d.Form != NaN && !d.isZero() {
		d.Negative = !d.Negative
	}
	return d
}

// Abs sets d to |x| and returns d.
func (d *Decimal) Abs(x *Decimal) *Decimal {
	d.Set(x)
	if d.Form != NaN {
		d.Negative = false
	}
	return d
}

// Cmp compares d and x and returns:
//
//	-1 if d <  x
//	 0 if d == x
//	+1 if d >  x
//
// Infinities order by sign around all finite values. NaN orders below
// every other value; two NaNs compare equal. For IEEE comparison semantics
// use Eq, Lt and friends.
func (d *Decimal) Cmp(x *Decimal) int {
	if d.Form == NaN || x.Form == NaN {
		if d.Form == x.Form {
			return 0
		}
		if d.Form == NaN {
			return -1
		}
		return 1
	}
	ds, xs := d.Sign(), x.Sign()
	if ds != xs {
		if ds < xs {
			return -1
		}
		return 1
	}
	if d.Form == Infinite || x.Form == Infinite {
		switch {
		case d.Form == x.Form:
			return 0
		case d.Form == Infinite:
			return ds
		default:
			return -xs
		}
	}
	c := cmpAbs(d, x)
	if ds < 0 {
		c = -c
	}
	return c
}

// cmpAbs compares the magnitudes of two finite decimals: whole-digit
// widths first, then digits aligned at the decimal point, missing
// fractional positions reading as zero.
func cmpAbs(a, b *Decimal) int {
	aw, bw := a.wholeDigits(), b.wholeDigits()
	if aw != bw {
		if aw < bw {
			return -1
		}
		return 1
	}
	// Walk from the highest whole digit down through the longer fraction.
	as, bs := a.Scale, b.Scale
	for i := aw - 1; i >= -maxInt(as, bs); i-- {
		ad := a.Coeff.Digit(i + as)
		bd := b.Coeff.Digit(i + bs)
		if ad != bd {
			if ad < bd {
				return -1
			}
			return 1
		}
	}
	return 0
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Modf sets integ to the integral part of d and frac to the fractional
// part such that d = integ+frac. If d is negative, both integ and frac
// will be either 0 or negative.
func (d *Decimal) Modf(integ, frac *Decimal) {
	if d.Form != Finite {
		integ.Set(d)
		frac.setNaN()
		if d.Form == Infinite {
			frac.Form = Finite
			frac.Negative = false
			frac.Coeff = nil
			frac.Scale = 0
		}
		return
	}
	// Snapshot before writing: integ or frac may alias d.
	hi, lo := d.Coeff.Split(d.Scale)
	scale := d.Scale
	neg := d.Negative
	hic := append(dig10.Int(nil), hi...)
	loc := append(dig10.Int(nil), lo...)
	// The low split can expose high zeros; restore the invariant.
	for len(loc) > 0 && loc[len(loc)-1] == 0 {
		loc = loc[:len(loc)-1]
	}
	integ.Form = Finite
	integ.Negative = neg
	integ.Coeff = hic
	integ.Scale = 0
	frac.Form = Finite
	frac.Negative = neg
	frac.Coeff = loc
	frac.Scale = scale
	integ.trim()
	frac.trim()
}

// integral reports whether d is finite with no significant fractional
// digits.
func (d *Decimal) integral() bool {
	if d.Form != Finite {
		return false
	}
	for i := 0; i < d.Scale; i++ {
		if d.Coeff.Digit(i) != 0 {
			return false
		}
	}
	return true
}

// trim restores the canonical shape: non-significant trailing fractional
// zeros are dropped, and zero loses its sign and scale.
func (d *Decimal) trim() *Decimal {
	if d.Form != Finite {
		return d
	}
	for d.Scale > 0 && d.Coeff.Len() > 0 && d.Coeff.Low() == 0 {
		d.Coeff.Mul10(-1)
		d.Scale--
	}
	if d.Coeff.Zero() {
		d.Coeff = nil
		d.Scale = 0
		d.Negative = false
	}
	return d
}

var (
	decimalZero = New(0, 0)
	decimalOne  = New(1, 0)
	decimalTwo  = New(2, 0)
	decimalHalf = New(5, 1)
)
