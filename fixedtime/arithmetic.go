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

var bigOne = big.NewInt(1)

// Add - t + u
//
// panics with fault.ErrOutOfRange if the seconds overflow
func (t Time) Add(u Time) Time {
	return mustFit(t.add(u))
}

// Sub - t - u
//
// panics with fault.ErrOutOfRange if the seconds overflow
func (t Time) Sub(u Time) Time {
	return mustFit(t.sub(u))
}

// Neg - -t
//
// panics with fault.ErrOutOfRange for the most negative second
func (t Time) Neg() Time {
	return mustFit(t.neg())
}

// Abs - |t|
//
// panics as Neg does
func (t Time) Abs() Time {
	if t.seconds >= 0 {
		return t
	}
	return t.Neg()
}

func (t Time) add(u Time) (Time, bool) {
	s, ok := addSeconds(t.seconds, u.seconds)
	if !ok {
		return Time{}, false
	}
	return normalise(s, int64(t.nanoseconds)+int64(u.nanoseconds))
}

func (t Time) sub(u Time) (Time, bool) {
	s, ok := subSeconds(t.seconds, u.seconds)
	if !ok {
		return Time{}, false
	}
	return normalise(s, int64(t.nanoseconds)-int64(u.nanoseconds))
}

// -(s + ns) is (-s - 1) + (1e9 - ns), which fits even for the
// most negative second, only -s alone can overflow
func (t Time) neg() (Time, bool) {
	if 0 == t.nanoseconds {
		return Time{seconds: -t.seconds}, math.MinInt64 != t.seconds
	}
	return Time{
		seconds:     -t.seconds - 1,
		nanoseconds: NanosecondsPerSecond - t.nanoseconds,
	}, true
}

func mustFit(t Time, ok bool) Time {
	if !ok {
		panic(fault.ErrOutOfRange)
	}
	return t
}

// Round - round to n decimal places
//
// n == 0 rounds to the nearest second with halves going up, otherwise
// the nanoseconds are rounded half to even at 9 - n digits (which may
// carry into the seconds) and the seconds are left alone
//
// panics with fault.ErrOutOfRange if rounding up overflows the seconds
func (t Time) Round(n int) Time {
	if 0 == n {
		if t.nanoseconds >= halfSecond {
			return mustFit(normalise(t.seconds, NanosecondsPerSecond))
		}
		return Time{seconds: t.seconds}
	}
	if n >= nanosecondsDigits {
		return t
	}

	// the unit would exceed int64 and is far more than 1e9 anyway
	places := nanosecondsDigits - n
	if places > 18 {
		return Time{seconds: t.seconds}
	}
	unit := int64(1)
	for i := 0; i < places; i += 1 {
		unit *= 10
	}

	ns := int64(t.nanoseconds)
	q := ns / unit
	r := ns % unit
	if 2*r > unit || (2*r == unit && 1 == q%2) {
		q += 1
	}
	return mustFit(normalise(t.seconds, q*unit))
}

// Mul - t * factor, exact to the nearest nanosecond
//
// panics if the factor is not finite or the product overflows
func (t Time) Mul(factor float64) Time {
	r, err := floatFactor(factor)
	if nil == err {
		var product Time
		product, err = t.multiply(r)
		if nil == err {
			return product
		}
	}
	panic(err)
}

// MulInt - t * n
//
// panics if the product overflows
func (t Time) MulInt(n int64) Time {
	product, err := t.multiply(new(big.Rat).SetInt64(n))
	if nil != err {
		panic(err)
	}
	return product
}

// MulTime - t * u, with u treated as a number of seconds
//
// panics if the product overflows
func (t Time) MulTime(u Time) Time {
	product, err := t.multiply(u.rat())
	if nil != err {
		panic(err)
	}
	return product
}

// Div - t / divisor
//
// panics if the divisor is zero or not finite
func (t Time) Div(divisor float64) Time {
	r, err := floatFactor(divisor)
	if nil == err {
		var quotient Time
		quotient, err = t.divide(r, divisor)
		if nil == err {
			return quotient
		}
	}
	panic(err)
}

// DivTime - t / u, with u treated as a number of seconds
//
// panics if u is zero
func (t Time) DivTime(u Time) Time {
	quotient, err := t.divide(u.rat(), u.Float64())
	if nil != err {
		panic(err)
	}
	return quotient
}

// Mod - t - floor(t / divisor) * divisor
//
// panics if the divisor is zero or not finite
func (t Time) Mod(divisor float64) Time {
	r, err := floatFactor(divisor)
	if nil == err {
		var remainder Time
		remainder, err = t.modulo(r, divisor)
		if nil == err {
			return remainder
		}
	}
	panic(err)
}

// ModTime - t modulo u, with u treated as a number of seconds
//
// panics if u is zero
func (t Time) ModTime(u Time) Time {
	remainder, err := t.modulo(u.rat(), u.Float64())
	if nil != err {
		panic(err)
	}
	return remainder
}

// the exact value in seconds
func (t Time) rat() *big.Rat {
	return new(big.Rat).SetFrac(t.TotalNanoseconds(), bigNanosecondsPerSecond)
}

func floatFactor(f float64) (*big.Rat, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fault.ErrNotFiniteValue
	}
	return new(big.Rat).SetFloat64(f), nil
}

// exact product rounded half to even to a whole nanosecond, this
// stands in for splitting both operands into high and low halves to
// keep float products exact
func (t Time) multiply(factor *big.Rat) (Time, error) {
	product := new(big.Rat).SetInt(t.TotalNanoseconds())
	product.Mul(product, factor)

	result, ok := fromTotalNanoseconds(roundHalfEven(product))
	if !ok {
		return Time{}, fault.ErrOutOfRange
	}
	return result, nil
}

// start from the float quotient and add the float residual until it is
// within half a nanosecond; the residual is computed from the exact
// product so it is not swamped by the magnitude of the seconds
func (t Time) divide(divisor *big.Rat, approximate float64) (Time, error) {
	if 0 == divisor.Sign() || 0 == approximate {
		return Time{}, fault.ErrDivisionByZero
	}

	quotient, err := FromFloat64(t.Float64() / approximate)
	if nil != err {
		return Time{}, fault.ErrOutOfRange
	}

	for i := 0; i < maxRefinements; i += 1 {
		product, err := quotient.multiply(divisor)
		if nil != err {
			return Time{}, err
		}
		difference, ok := t.sub(product)
		if !ok {
			return Time{}, fault.ErrOutOfRange
		}
		residual := difference.Float64() / approximate

		step, err := FromFloat64(residual)
		if nil != err {
			return Time{}, fault.ErrOutOfRange
		}
		quotient, ok = quotient.add(step)
		if !ok {
			return Time{}, fault.ErrOutOfRange
		}

		if math.Abs(residual) <= halfNanosecond {
			break
		}
	}
	return quotient, nil
}

func (t Time) modulo(divisor *big.Rat, approximate float64) (Time, error) {
	quotient, err := t.divide(divisor, approximate)
	if nil != err {
		return Time{}, err
	}
	product, err := Time{seconds: quotient.seconds}.multiply(divisor)
	if nil != err {
		return Time{}, err
	}
	remainder, ok := t.sub(product)
	if !ok {
		return Time{}, fault.ErrOutOfRange
	}
	return remainder, nil
}

// nearest integer, ties to even
func roundHalfEven(r *big.Rat) *big.Int {
	// the denominator is always positive so this is floored
	q, m := new(big.Int).DivMod(r.Num(), r.Denom(), new(big.Int))
	m.Lsh(m, 1)
	c := m.Cmp(r.Denom())
	if c > 0 || (0 == c && 1 == q.Bit(0)) {
		q.Add(q, bigOne)
	}
	return q
}
