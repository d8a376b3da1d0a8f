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
	"strings"

	"github.com/pkg/errors"
)

// Condition holds condition flags.
type Condition uint32

const (
	// Overflow is raised when a result's whole-digit count exceeds
	// Context.Decimals and the value saturates to infinity.
	Overflow Condition = 1 << iota
	// Inexact is raised when an operation is not exact.
	Inexact
	// Rounded is raised when rounding occurs.
	Rounded
	// DivisionUndefined is raised when both division operands are 0.
	DivisionUndefined
	// DivisionByZero is raised when the divisor is zero.
	DivisionByZero
	// InvalidOperation is raised during an operation whose inputs violate
	// its mathematical domain.
	InvalidOperation
	// ConversionSyntax is raised when a string cannot be parsed as a
	// decimal.
	ConversionSyntax
)

// Any returns true if any flag is true.
func (r Condition) Any() bool { return r != 0 }

// Overflow returns true if the Overflow flag is set.
func (r Condition) Overflow() bool { return r&Overflow != 0 }

// Inexact returns true if the Inexact flag is set.
func (r Condition) Inexact() bool { return r&Inexact != 0 }

// Rounded returns true if the Rounded flag is set.
func (r Condition) Rounded() bool { return r&Rounded != 0 }

// DivisionUndefined returns true if the DivisionUndefined flag is set.
func (r Condition) DivisionUndefined() bool { return r&DivisionUndefined != 0 }

// DivisionByZero returns true if the DivisionByZero flag is set.
func (r Condition) DivisionByZero() bool { return r&DivisionByZero != 0 }

// InvalidOperation returns true if the InvalidOperation flag is set.
func (r Condition) InvalidOperation() bool { return r&InvalidOperation != 0 }

// ConversionSyntax returns true if the ConversionSyntax flag is set.
func (r Condition) ConversionSyntax() bool { return r&ConversionSyntax != 0 }

// GoError converts r to an error based on the given traps and returns r.
// Flags not present in traps never produce an error; the operation instead
// yields the matching special value in-band.
func (r Condition) GoError(traps Condition) (Condition, error) {
	var err error
	if t := r & traps; t != 0 {
		err = errors.New(t.String())
	}
	return r, err
}

func (r Condition) String() string {
	var names []string
	for i := Condition(1); r != 0; i <<= 1 {
		if r&i == 0 {
			continue
		}
		r ^= i
		var s string
		switch i {
		case Overflow:
			s = "overflow"
		case Inexact:
			s = "inexact"
		case Rounded:
			s = "rounded"
		case DivisionUndefined:
			s = "division undefined"
		case DivisionByZero:
			s = "division by zero"
		case InvalidOperation:
			s = "invalid operation"
		case ConversionSyntax:
			s = "conversion syntax"
		default:
			panic(errors.Errorf("unknown condition %d", i))
		}
		names = append(names, s)
	}
	return strings.Join(names, ", ")
}
