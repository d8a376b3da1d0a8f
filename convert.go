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
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/decfp/decfp/dig10"
)

// FromHex creates a decimal from a hexadecimal integer string without a
// 0x prefix. An optional leading sign is accepted.
func FromHex(s string) (*Decimal, error) {
	d, _, err := BaseContext.FromHex(s)
	return d, err
}

// FromHex creates a decimal from a hexadecimal integer string, attaching
// c to the result.
func (c *Context) FromHex(s string) (*Decimal, Condition, error) {
	d := new(Decimal)
	d.Context = *c
	orig := s
	neg := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	if s == "" {
		return d.setNaN(), ConversionSyntax, c.trapErr(ConversionSyntax, "parse hex: %q", orig)
	}
	var v dig10.Int
	for i := 0; i < len(s); i++ {
		var w dig10.Word
		switch ch := s[i]; {
		case ch >= '0' && ch <= '9':
			w = dig10.Word(ch - '0')
		case ch >= 'a' && ch <= 'f':
			w = dig10.Word(ch-'a') + 10
		case ch >= 'A' && ch <= 'F':
			w = dig10.Word(ch-'A') + 10
		default:
			return d.setNaN(), ConversionSyntax, c.trapErr(ConversionSyntax, "parse hex: %q", orig)
		}
		// Accumulate by repeated multiply-by-16.
		v = v.MulWord(16)
		v.Add(v, dig10.NewInt(uint64(w)))
	}
	d.Form = Finite
	d.Negative = neg && !v.Zero()
	d.Coeff = v
	d.Scale = 0
	return d, 0, nil
}

// trapErr returns an error for res when it is trapped by c, nil
// otherwise.
func (c *Context) trapErr(res Condition, format string, args ...interface{}) error {
	if res&c.Traps != 0 {
		return errors.Errorf(format, args...)
	}
	return nil
}

// ToHex returns the whole part of d, truncated toward zero, as a
// hexadecimal string. lower selects the digit case.
func (d *Decimal) ToHex(lower bool) string {
	if d.Form != Finite {
		return d.String()
	}
	hi, _ := d.Coeff.Split(d.Scale)
	v := append(dig10.Int(nil), hi...)
	if v.Zero() {
		return "0"
	}
	digits := "0123456789ABCDEF"
	if lower {
		digits = "0123456789abcdef"
	}
	var b []byte
	for !v.Zero() {
		var rem uint64
		v, rem = v.QuoRemUint(16)
		b = append(b, digits[rem])
	}
	if d.Negative {
		b = append(b, '-')
	}
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

// range limits as decimal digit strings, for the narrowing checks.
const (
	maxInt64Str  = "9223372036854775807"
	minInt64Str  = "9223372036854775808" // magnitude of MinInt64
	maxUint64Str = "18446744073709551615"
	maxInt32Str  = "2147483647"
	minInt32Str  = "2147483648"
	maxUint32Str = "4294967295"
)

// fitsMagnitude reports whether the whole part of d is at most the
// decimal string limit.
func (d *Decimal) fitsMagnitude(limit string) bool {
	hi, _ := d.Coeff.Split(d.Scale)
	s := hi.String()
	if len(s) != len(limit) {
		return len(s) < len(limit)
	}
	return s <= limit
}

// FitsInt64 reports whether d is a finite integral value in the int64
// range.
func (d *Decimal) FitsInt64() bool {
	if d.Form != Finite || !d.integral() {
		return false
	}
	if d.Negative {
		return d.fitsMagnitude(minInt64Str)
	}
	return d.fitsMagnitude(maxInt64Str)
}

// FitsInt32 reports whether d is a finite integral value in the int32
// range.
func (d *Decimal) FitsInt32() bool {
	if d.Form != Finite || !d.integral() {
		return false
	}
	if d.Negative {
		return d.fitsMagnitude(minInt32Str)
	}
	return d.fitsMagnitude(maxInt32Str)
}

// FitsUint64 reports whether d is a finite integral non-negative value in
// the uint64 range.
func (d *Decimal) FitsUint64() bool {
	return d.Form == Finite && d.integral() && !d.Negative && d.fitsMagnitude(maxUint64Str)
}

// FitsUint32 reports whether d is a finite integral non-negative value in
// the uint32 range.
func (d *Decimal) FitsUint32() bool {
	return d.Form == Finite && d.integral() && !d.Negative && d.fitsMagnitude(maxUint32Str)
}

// narrowErr builds the error returned by a failed narrowing, or nil when
// the value's context does not trap InvalidOperation, in which case the
// conversion saturates.
func (d *Decimal) narrowErr(target string) error {
	c := d.Context.effective()
	if c.Traps&InvalidOperation != 0 {
		return errors.Errorf("%s: does not fit in %s", d, target)
	}
	return nil
}

// Int64 returns the int64 representation of d. When d does not fit and
// the context traps InvalidOperation an error is returned; otherwise the
// result saturates to the range bound.
func (d *Decimal) Int64() (int64, error) {
	if !d.FitsInt64() {
		if d.Sign() < 0 {
			return math.MinInt64, d.narrowErr("int64")
		}
		return math.MaxInt64, d.narrowErr("int64")
	}
	hi, _ := d.Coeff.Split(d.Scale)
	if d.Negative && hi.String() == minInt64Str {
		return math.MinInt64, nil
	}
	v := hi.Int64()
	if d.Negative {
		v = -v
	}
	return v, nil
}

// Int32 returns the int32 representation of d, with the same narrowing
// policy as Int64.
func (d *Decimal) Int32() (int32, error) {
	if !d.FitsInt32() {
		if d.Sign() < 0 {
			return math.MinInt32, d.narrowErr("int32")
		}
		return math.MaxInt32, d.narrowErr("int32")
	}
	hi, _ := d.Coeff.Split(d.Scale)
	v := hi.Int64()
	if d.Negative {
		v = -v
	}
	return int32(v), nil
}

// Uint64 returns the uint64 representation of d, with the same narrowing
// policy as Int64.
func (d *Decimal) Uint64() (uint64, error) {
	if !d.FitsUint64() {
		if d.Sign() < 0 {
			return 0, d.narrowErr("uint64")
		}
		return math.MaxUint64, d.narrowErr("uint64")
	}
	hi, _ := d.Coeff.Split(d.Scale)
	return hi.Uint64(), nil
}

// Uint32 returns the uint32 representation of d, with the same narrowing
// policy as Int64.
func (d *Decimal) Uint32() (uint32, error) {
	if !d.FitsUint32() {
		if d.Sign() < 0 {
			return 0, d.narrowErr("uint32")
		}
		return math.MaxUint32, d.narrowErr("uint32")
	}
	hi, _ := d.Coeff.Split(d.Scale)
	return uint32(hi.Uint64()), nil
}

// Float64 returns the float64 representation of d. This conversion may
// lose data (see strconv.ParseFloat for caveats).
func (d *Decimal) Float64() (float64, error) {
	switch d.Form {
	case Infinite:
		if d.Negative {
			return math.Inf(-1), nil
		}
		return math.Inf(1), nil
	case NaN:
		return math.NaN(), nil
	}
	return strconv.ParseFloat(d.String(), 64)
}

// Scan implements fmt.Scanner so decimals parse from a stream with the
// fmt verbs %v, %s and %f.
func (d *Decimal) Scan(state fmt.ScanState, verb rune) error {
	tok, err := state.Token(true, func(r rune) bool {
		return !strings.ContainsRune(" \t\r\n", r)
	})
	if err != nil {
		return err
	}
	_, err = d.SetString(string(tok))
	return err
}
