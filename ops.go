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

// The value layer wraps the Context operations in operator form: each
// method returns a fresh Decimal, never mutating its operands. A binary
// operation runs under the left operand's context, with Decimals widened
// to cover both operands' fractional lengths; the adopted context is
// attached to the result.

// binContext is the context-adoption rule for binary operations.
func (x *Decimal) binContext(y *Decimal) Context {
	c := x.Context.effective()
	if w := maxInt(x.Scale, y.Scale); int(c.Decimals) < w {
		c.Decimals = uint32(w)
	}
	return c
}

// Apply returns a copy of x reconfigured with c. A Decimals setting
// below x's current fractional length is widened to preserve fidelity.
func (x *Decimal) Apply(c *Context) *Decimal {
	e := c.effective()
	if int(e.Decimals) < x.Scale {
		e.Decimals = uint32(x.Scale)
	}
	d := new(Decimal).Set(x)
	d.Context = e
	return d
}

func (x *Decimal) binOp(y *Decimal, f func(c *Context, d, a, b *Decimal) (Condition, error)) (*Decimal, error) {
	c := x.binContext(y)
	d := new(Decimal)
	_, err := f(&c, d, x, y)
	d.Context = c
	if err != nil {
		return d, err
	}
	return d, nil
}

// Add returns x + y.
func (x *Decimal) Add(y *Decimal) (*Decimal, error) {
	return x.binOp(y, (*Context).Add)
}

// Sub returns x - y.
func (x *Decimal) Sub(y *Decimal) (*Decimal, error) {
	return x.binOp(y, (*Context).Sub)
}

// Mul returns x * y.
func (x *Decimal) Mul(y *Decimal) (*Decimal, error) {
	return x.binOp(y, (*Context).Mul)
}

// Div returns x / y.
func (x *Decimal) Div(y *Decimal) (*Decimal, error) {
	return x.binOp(y, (*Context).Quo)
}

// Mod returns the remainder of x / y; a non-zero result keeps x's sign.
func (x *Decimal) Mod(y *Decimal) (*Decimal, error) {
	return x.binOp(y, (*Context).Rem)
}

// Pow returns x ** y.
func (x *Decimal) Pow(y *Decimal) (*Decimal, error) {
	return x.binOp(y, (*Context).Pow)
}

// Negated returns -x.
func (x *Decimal) Negated() *Decimal {
	c := x.Context.effective()
	d := new(Decimal).Neg(x)
	d.Context = c
	return d
}

// AbsVal returns |x|.
func (x *Decimal) AbsVal() *Decimal {
	c := x.Context.effective()
	d := new(Decimal).Abs(x)
	d.Context = c
	return d
}

// Sqrt returns the square root of x under x's context.
func (x *Decimal) Sqrt() (*Decimal, error) {
	c := x.Context.effective()
	d := new(Decimal)
	_, err := c.Sqrt(d, x)
	d.Context = c
	return d, err
}

// Exp returns e**x under x's context.
func (x *Decimal) Exp() (*Decimal, error) {
	c := x.Context.effective()
	d := new(Decimal)
	_, err := c.Exp(d, x)
	d.Context = c
	return d, err
}

// Ln returns the natural logarithm of x under x's context.
func (x *Decimal) Ln() (*Decimal, error) {
	c := x.Context.effective()
	d := new(Decimal)
	_, err := c.Ln(d, x)
	d.Context = c
	return d, err
}

// Comparisons follow IEEE semantics: every comparison against NaN is
// false, except Ne which is true.

// Eq reports x == y.
func (x *Decimal) Eq(y *Decimal) bool {
	if x.Form == NaN || y.Form == NaN {
		return false
	}
	return x.Cmp(y) == 0
}

// Ne reports x != y.
func (x *Decimal) Ne(y *Decimal) bool {
	if x.Form == NaN || y.Form == NaN {
		return true
	}
	return x.Cmp(y) != 0
}

// Lt reports x < y.
func (x *Decimal) Lt(y *Decimal) bool {
	if x.Form == NaN || y.Form == NaN {
		return false
	}
	return x.Cmp(y) < 0
}

// Le reports x <= y.
func (x *Decimal) Le(y *Decimal) bool {
	if x.Form == NaN || y.Form == NaN {
		return false
	}
	return x.Cmp(y) <= 0
}

// Gt reports x > y.
func (x *Decimal) Gt(y *Decimal) bool {
	if x.Form == NaN || y.Form == NaN {
		return false
	}
	return x.Cmp(y) > 0
}

// Ge reports x >= y.
func (x *Decimal) Ge(y *Decimal) bool {
	if x.Form == NaN || y.Form == NaN {
		return false
	}
	return x.Cmp(y) >= 0
}
