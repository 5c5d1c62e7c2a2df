// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixedtime

import (
	"fmt"

	"github.com/bitmark-inc/gpstime/fault"
)

// LiteralError - a string or byte slice that is not a decimal number
type LiteralError struct {
	Literal interface{} // string, []byte or json.Number as given
}

func (e *LiteralError) Error() string {
	return fmt.Sprintf("invalid literal for %s: %q", typeName, e.Literal)
}

func (e *LiteralError) Unwrap() error {
	return fault.ErrInvalidLiteral
}

// ConversionError - a value of a type that cannot become a Time, or
// one that is outside the range of a Time
type ConversionError struct {
	Value interface{}
	Err   error // fault.ErrCannotConvert, fault.ErrNotFiniteValue or fault.ErrOutOfRange
}

func (e *ConversionError) Error() string {
	if fault.ErrOutOfRange == e.Err {
		return fmt.Sprintf("%#v (%s) takes %s out of range", e.Value, typeNameOf(e.Value), typeName)
	}
	return fmt.Sprintf("cannot convert %#v (%s) to %s", e.Value, typeNameOf(e.Value), typeName)
}

func (e *ConversionError) Unwrap() error {
	if nil == e.Err {
		return fault.ErrCannotConvert
	}
	return e.Err
}

// ComparisonError - ordering against a value that is neither an
// infinity nor convertible
type ComparisonError struct {
	Op    string
	Value interface{}
}

func (e *ComparisonError) Error() string {
	return fmt.Sprintf("'%s' not supported between instances of '%s' and '%s'", e.Op, typeName, typeNameOf(e.Value))
}

func (e *ComparisonError) Unwrap() error {
	return fault.ErrUnsupportedComparison
}

// OperandError - an arithmetic operation that is not defined for the
// operand types, e.g. number / Time
type OperandError struct {
	Op    string
	Left  interface{}
	Right interface{}
}

func (e *OperandError) Error() string {
	return fmt.Sprintf("unsupported operand type(s) for %s: '%s' and '%s'", e.Op, typeNameOf(e.Left), typeNameOf(e.Right))
}

func (e *OperandError) Unwrap() error {
	return fault.ErrUnsupportedOperandType
}

func typeNameOf(v interface{}) string {
	switch v.(type) {
	case Time, *Time:
		return typeName
	default:
		return fmt.Sprintf("%T", v)
	}
}
