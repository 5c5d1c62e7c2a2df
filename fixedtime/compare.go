// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixedtime

import (
	"math"
)

// Cmp - -1, 0 or +1 as t is before, equal to or after u
func (t Time) Cmp(u Time) int {
	switch {
	case t.seconds < u.seconds:
		return -1
	case t.seconds > u.seconds:
		return 1
	case t.nanoseconds < u.nanoseconds:
		return -1
	case t.nanoseconds > u.nanoseconds:
		return 1
	}
	return 0
}

// Equal - same seconds and nanoseconds
func (t Time) Equal(u Time) bool {
	return t == u
}

// Before - t < u
func (t Time) Before(u Time) bool {
	return t.Cmp(u) < 0
}

// After - t > u
func (t Time) After(u Time) bool {
	return t.Cmp(u) > 0
}

// Hash - seconds XOR nanoseconds, equal times hash equally
func (t Time) Hash() int64 {
	return t.seconds ^ int64(t.nanoseconds)
}

// IsZero - true only for the epoch itself
func (t Time) IsZero() bool {
	return 0 == t.seconds && 0 == t.nanoseconds
}

// EqualValue - compare with anything Convert accepts
//
// never an error: an infinity or a value that cannot be converted is
// simply not equal
func (t Time) EqualValue(v interface{}) bool {
	if f, ok := floatOf(v); ok && math.IsInf(f, 0) {
		return false
	}
	u, err := Convert(v)
	if nil != err {
		return false
	}
	return t == u
}

// CompareValue - -1, 0 or +1 against anything Convert accepts
//
// +Inf is after every Time and -Inf before every Time; any other
// value that cannot be converted gives a *ComparisonError
func (t Time) CompareValue(v interface{}) (int, error) {
	return t.compareValue("cmp", v)
}

// LessValue - t < v
func (t Time) LessValue(v interface{}) (bool, error) {
	c, err := t.compareValue("<", v)
	return c < 0, err
}

// LessEqualValue - t <= v
func (t Time) LessEqualValue(v interface{}) (bool, error) {
	c, err := t.compareValue("<=", v)
	return c <= 0 && nil == err, err
}

// GreaterValue - t > v
func (t Time) GreaterValue(v interface{}) (bool, error) {
	c, err := t.compareValue(">", v)
	return c > 0, err
}

// GreaterEqualValue - t >= v
func (t Time) GreaterEqualValue(v interface{}) (bool, error) {
	c, err := t.compareValue(">=", v)
	return c >= 0 && nil == err, err
}

func (t Time) compareValue(op string, v interface{}) (int, error) {
	if f, ok := floatOf(v); ok && math.IsInf(f, 0) {
		if f > 0 {
			return -1, nil
		}
		return 1, nil
	}
	u, err := Convert(v)
	if nil != err {
		return 0, &ComparisonError{Op: op, Value: v}
	}
	return t.Cmp(u), nil
}

func floatOf(v interface{}) (float64, bool) {
	switch f := v.(type) {
	case float64:
		return f, true
	case float32:
		return float64(f), true
	}
	return 0, false
}
