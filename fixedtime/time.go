// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixedtime

import (
	"math"
	"math/big"

	"github.com/bitmark-inc/gpstime/fault"
)

// NanosecondsPerSecond - scale of the fractional part
const NanosecondsPerSecond = 1000000000

const (
	typeName = "FixedTime"

	halfSecond     = 500000000 // in nanoseconds
	halfNanosecond = 0.5e-9    // in seconds

	maxRefinements = 100 // division iterations

	// bounds of a float64 that can be truncated into an int64
	minFloatSeconds = float64(math.MinInt64)
	maxFloatSeconds = -float64(math.MinInt64)
)

var bigNanosecondsPerSecond = big.NewInt(NanosecondsPerSecond)

// Time - seconds since the epoch with nanosecond resolution
//
// the zero value is the epoch
type Time struct {
	seconds     int64
	nanoseconds uint32
}

// TimeLike - any foreign time value exposing integer seconds and
// nanoseconds, e.g. an adapter around a C time structure
type TimeLike interface {
	Seconds() int64
	Nanoseconds() int64
}

// New - create a time from seconds plus nanoseconds
//
// the nanoseconds may be negative or larger than one second, the
// result is normalised so that 0 <= nanoseconds < 1e9
//
// panics with fault.ErrOutOfRange if the carry takes the seconds past
// the int64 range, Convert returns this as an error instead
func New(seconds int64, nanoseconds int64) Time {
	t, ok := normalise(seconds, nanoseconds)
	if !ok {
		panic(fault.ErrOutOfRange)
	}
	return t
}

// FromTimeLike - copy the fields of a foreign time value
//
// panics as New does
func FromTimeLike(v TimeLike) Time {
	return New(v.Seconds(), v.Nanoseconds())
}

// Seconds - the whole seconds part, may be negative
func (t Time) Seconds() int64 {
	return t.seconds
}

// Nanoseconds - the residual nanoseconds, always in [0, 1e9)
func (t Time) Nanoseconds() int64 {
	return int64(t.nanoseconds)
}

// floored division so that the nanoseconds are never negative, false
// if the carry overflows the seconds
func normalise(seconds int64, nanoseconds int64) (Time, bool) {
	carry := nanoseconds / NanosecondsPerSecond
	ns := nanoseconds % NanosecondsPerSecond
	if ns < 0 {
		ns += NanosecondsPerSecond
		carry -= 1
	}
	s, ok := addSeconds(seconds, carry)
	return Time{
		seconds:     s,
		nanoseconds: uint32(ns),
	}, ok
}

// a + b, false on int64 overflow
func addSeconds(a int64, b int64) (int64, bool) {
	s := a + b
	return s, (s > a) == (b > 0)
}

// a - b, false on int64 overflow
func subSeconds(a int64, b int64) (int64, bool) {
	s := a - b
	return s, (s < a) == (b > 0)
}

// same as normalise but for a float nanosecond count, any fraction of
// a nanosecond is dropped after the floored modulo
func normaliseFloat(seconds int64, nanoseconds float64) (Time, bool) {
	mod := math.Mod(nanoseconds, NanosecondsPerSecond)
	if mod < 0 {
		mod += NanosecondsPerSecond
	}
	carry := math.Floor((nanoseconds-mod)/NanosecondsPerSecond + 0.5)
	if carry < minFloatSeconds || carry >= maxFloatSeconds {
		return Time{}, false
	}

	ns := int64(mod)
	if ns >= NanosecondsPerSecond {
		ns -= NanosecondsPerSecond
		carry += 1
	}
	if carry >= maxFloatSeconds {
		return Time{}, false
	}
	s, ok := addSeconds(seconds, int64(carry))
	return Time{
		seconds:     s,
		nanoseconds: uint32(ns),
	}, ok
}

// split an exact nanosecond count, false if the seconds overflow
func fromTotalNanoseconds(total *big.Int) (Time, bool) {
	// Euclidean with a positive divisor is floored
	s, ns := new(big.Int).DivMod(total, bigNanosecondsPerSecond, new(big.Int))
	if !s.IsInt64() {
		return Time{}, false
	}
	return Time{
		seconds:     s.Int64(),
		nanoseconds: uint32(ns.Int64()),
	}, true
}
