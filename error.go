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

// ErrDecimal performs operations on decimals and collects errors during
// operations. If an error is already set, the operation is skipped. Designed
// to be used for many operations in a row, with a single error check at the
// end.
type ErrDecimal struct {
	err error
	// Ctx is the context used for the operations.
	Ctx *Context
	// Flags are the accumulated condition flags of all operations.
	Flags Condition
}

// MakeErrDecimal creates an ErrDecimal with an initialized Context.
func MakeErrDecimal(c *Context) ErrDecimal {
	return ErrDecimal{Ctx: c}
}

// Err returns the first error encountered, or nil.
func (e *ErrDecimal) Err() error {
	return e.err
}

func (e *ErrDecimal) op2(d, x *Decimal, f func(a, b *Decimal) (Condition, error)) {
	if e.err != nil {
		return
	}
	res, err := f(d, x)
	e.Flags |= res
	e.err = err
}

// Abs performs e.Ctx.Abs(d, x).
func (e *ErrDecimal) Abs(d, x *Decimal) {
	e.op2(d, x, e.Ctx.Abs)
}

// Neg performs e.Ctx.Neg(d, x).
func (e *ErrDecimal) Neg(d, x *Decimal) {
	e.op2(d, x, e.Ctx.Neg)
}

// Add performs e.Ctx.Add(d, x, y).
func (e *ErrDecimal) Add(d, x, y *Decimal) {
	if e.err != nil {
		return
	}
	res, err := e.Ctx.Add(d, x, y)
	e.Flags |= res
	e.err = err
}

// Sub performs e.Ctx.Sub(d, x, y).
func (e *ErrDecimal) Sub(d, x, y *Decimal) {
	if e.err != nil {
		return
	}
	res, err := e.Ctx.Sub(d, x, y)
	e.Flags |= res
	e.err = err
}

// Mul performs e.Ctx.Mul(d, x, y).
func (e *ErrDecimal) Mul(d, x, y *Decimal) {
	if e.err != nil {
		return
	}
	res, err := e.Ctx.Mul(d, x, y)
	e.Flags |= res
	e.err = err
}

// Quo performs e.Ctx.Quo(d, x, y).
func (e *ErrDecimal) Quo(d, x, y *Decimal) {
	if e.err != nil {
		return
	}
	res, err := e.Ctx.Quo(d, x, y)
	e.Flags |= res
	e.err = err
}

// QuoInteger performs e.Ctx.QuoInteger(d, x, y).
func (e *ErrDecimal) QuoInteger(d, x, y *Decimal) {
	if e.err != nil {
		return
	}
	res, err := e.Ctx.QuoInteger(d, x, y)
	e.Flags |= res
	e.err = err
}

// Rem performs e.Ctx.Rem(d, x, y).
func (e *ErrDecimal) Rem(d, x, y *Decimal) {
	if e.err != nil {
		return
	}
	res, err := e.Ctx.Rem(d, x, y)
	e.Flags |= res
	e.err = err
}

// Exp performs e.Ctx.Exp(d, x).
func (e *ErrDecimal) Exp(d, x *Decimal) {
	e.op2(d, x, e.Ctx.Exp)
}

// Ln performs e.Ctx.Ln(d, x).
func (e *ErrDecimal) Ln(d, x *Decimal) {
	e.op2(d, x, e.Ctx.Ln)
}

// Sqrt performs e.Ctx.Sqrt(d, x).
func (e *ErrDecimal) Sqrt(d, x *Decimal) {
	e.op2(d, x, e.Ctx.Sqrt)
}

// Pow performs e.Ctx.Pow(d, x, y).
func (e *ErrDecimal) Pow(d, x, y *Decimal) {
	if e.err != nil {
		return
	}
	res, err := e.Ctx.Pow(d, x, y)
	e.Flags |= res
	e.err = err
}

// Cmp returns 0 if Err is set. Otherwise returns x.Cmp(y).
func (e *ErrDecimal) Cmp(x, y *Decimal) int {
	if e.err != nil {
		return 0
	}
	return x.Cmp(y)
}
