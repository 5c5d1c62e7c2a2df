// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixedtime

import (
	"math/big"

	"github.com/bitmark-inc/gpstime/fault"
)

// AddValue - t + v, v is converted by Convert
//
// addition is commutative so this also serves for v + t
func (t Time) AddValue(v interface{}) (Time, error) {
	u, err := Convert(v)
	if nil != err {
		return Time{}, err
	}
	return inRange(v)(t.add(u))
}

// SubValue - t - v, v is converted by Convert
func (t Time) SubValue(v interface{}) (Time, error) {
	u, err := Convert(v)
	if nil != err {
		return Time{}, err
	}
	return inRange(v)(t.sub(u))
}

// RSubValue - v - t, v is converted by Convert
func (t Time) RSubValue(v interface{}) (Time, error) {
	u, err := Convert(v)
	if nil != err {
		return Time{}, err
	}
	return inRange(v)(u.sub(t))
}

// MulValue - t * v for a numeric or time v
//
// multiplication is commutative so this also serves for v * t
func (t Time) MulValue(v interface{}) (Time, error) {
	factor, _, err := factorOf("*", t, v)
	if nil != err {
		return Time{}, err
	}
	return t.multiply(factor)
}

// DivValue - t / v for a numeric or time v
func (t Time) DivValue(v interface{}) (Time, error) {
	divisor, approximate, err := factorOf("/", t, v)
	if nil != err {
		return Time{}, err
	}
	return t.divide(divisor, approximate)
}

// RDivValue - v / t, which is never defined
func (t Time) RDivValue(v interface{}) (Time, error) {
	return Time{}, &OperandError{Op: "/", Left: v, Right: t}
}

// ModValue - t % v for a numeric or time v
func (t Time) ModValue(v interface{}) (Time, error) {
	divisor, approximate, err := factorOf("%", t, v)
	if nil != err {
		return Time{}, err
	}
	return t.modulo(divisor, approximate)
}

// an overflowing sum is reported against the operand
func inRange(v interface{}) func(Time, bool) (Time, error) {
	return func(t Time, ok bool) (Time, error) {
		if !ok {
			return Time{}, &ConversionError{Value: v, Err: fault.ErrOutOfRange}
		}
		return t, nil
	}
}

// the exact and the float value of a multiplier or divisor
func factorOf(op string, t Time, v interface{}) (*big.Rat, float64, error) {
	switch x := v.(type) {
	case Time:
		return x.rat(), x.Float64(), nil
	case *Time:
		if nil != x {
			return x.rat(), x.Float64(), nil
		}
	case TimeLike:
		u, err := Convert(x)
		if nil != err {
			return nil, 0, err
		}
		return u.rat(), u.Float64(), nil
	case float64, float32:
		f, _ := floatOf(x)
		r, err := floatFactor(f)
		if nil != err {
			return nil, 0, err
		}
		return r, f, nil
	}

	if n, ok := integerOf(v); ok {
		f, _ := new(big.Float).SetInt(n).Float64()
		return new(big.Rat).SetInt(n), f, nil
	}
	return nil, 0, &OperandError{Op: op, Left: t, Right: v}
}
