// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixedtime - GPS style times with nanosecond resolution
//
// A Time is a signed count of whole seconds since an epoch plus an
// unsigned count of nanoseconds in [0, 1e9) that is always added to the
// seconds, so -0.5 s is stored as seconds = -1, nanoseconds = 500000000.
// Keeping the two parts as integers avoids the loss of the sub-second
// part that a float64 suffers once the seconds exceed about 1e9.
//
// Values are immutable; every operation returns a new Time.  There are
// two sets of operations:
//
//   typed:  Add, Sub, Mul, Div, Mod, Cmp ... on Time and float64/int64
//   value:  AddValue, SubValue, RSubValue, MulValue, DivValue ...
//
// The value forms accept any operand that Convert understands (Time,
// TimeLike, integers, floats, decimal strings) and return an error
// instead of panicking.  RSubValue and RDivValue are the reflected forms
// (operand on the left); addition and multiplication are commutative.
//
// Multiplication is exact: the product of the total nanoseconds and the
// multiplier (taken as an exact rational) is rounded half to even to the
// nearest nanosecond.  Division refines a float64 estimate using that
// exact product until the residual is within half a nanosecond.
//
// The seconds never wrap around: a result outside the int64 range is
// fault.ErrOutOfRange, a panic from the typed forms and an error from
// the value forms.
package fixedtime
