// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type UnsupportedError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised     = ProcessError("already initialised")
	ErrCannotConvert          = InvalidError("cannot convert")
	ErrDivisionByZero         = ProcessError("division by zero")
	ErrInvalidCommand         = InvalidError("invalid command")
	ErrInvalidConfiguration   = InvalidError("configuration did not return a table")
	ErrInvalidFormat          = InvalidError("invalid output format")
	ErrInvalidLiteral         = InvalidError("invalid literal")
	ErrInvalidLoggerChannel   = InvalidError("invalid logger channel")
	ErrInvalidPrecision       = InvalidError("invalid precision")
	ErrInvalidStructPointer   = InvalidError("invalid struct pointer")
	ErrMissingArguments       = InvalidError("missing arguments")
	ErrNotFiniteValue         = InvalidError("value is not finite")
	ErrNotFoundConfigFile     = NotFoundError("config file is not found")
	ErrOutOfRange             = InvalidError("value out of range")
	ErrTooManyArguments       = InvalidError("too many arguments")
	ErrUnsupportedComparison  = UnsupportedError("unsupported comparison")
	ErrUnsupportedOperandType = UnsupportedError("unsupported operand type")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e InvalidError) Error() string     { return string(e) }
func (e NotFoundError) Error() string    { return string(e) }
func (e ProcessError) Error() string     { return string(e) }
func (e UnsupportedError) Error() string { return string(e) }

// determine the class of an error, looking through any wrapping
func IsErrInvalid(e error) bool     { var x InvalidError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool    { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool     { var x ProcessError; return errors.As(e, &x) }
func IsErrUnsupported(e error) bool { var x UnsupportedError; return errors.As(e, &x) }
