// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixedtime

import (
	"encoding/json"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/bitmark-inc/gpstime/fault"
)

// a time being assembled from several inputs
type parts struct {
	seconds     int64
	nanoseconds int64   // exact, kept within +/- 2e9
	fraction    float64 // nanoseconds from float inputs
}

// FromFloat64 - convert seconds held in a float
//
// the fractional part is scaled to nanoseconds in floating point, so
// anything below a nanosecond is subject to float rounding
func FromFloat64(seconds float64) (Time, error) {
	p, err := floatParts(seconds, seconds)
	if nil != err {
		return Time{}, err
	}
	return p.time(seconds)
}

// Parse - convert a decimal string such as "1187008882.4" or "-1.2e3"
//
// the value is truncated toward zero at the ninth fractional digit
func Parse(s string) (Time, error) {
	return parseLiteral(s, s)
}

// ParseBytes - as Parse for a byte slice
func ParseBytes(b []byte) (Time, error) {
	return parseLiteral(string(b), b)
}

// Convert - create a Time from any supported value
//
// in order of precedence: Time, TimeLike, integers of any size,
// float32/float64, decimal strings ([]byte and json.Number included)
func Convert(value interface{}) (Time, error) {
	p, err := toParts(value)
	if nil != err {
		return Time{}, err
	}
	return p.time(value)
}

// ConvertPair - as Convert with an extra nanosecond addend
//
// the addend may be any integer, float or numeric string
func ConvertPair(value interface{}, nanoseconds interface{}) (Time, error) {
	p, err := toParts(value)
	if nil != err {
		return Time{}, err
	}
	err = p.addNanoseconds(nanoseconds)
	if nil != err {
		return Time{}, err
	}
	return p.time(value)
}

func toParts(value interface{}) (parts, error) {
	switch v := value.(type) {
	case Time:
		return parts{seconds: v.seconds, nanoseconds: int64(v.nanoseconds)}, nil
	case *Time:
		if nil == v {
			break
		}
		return parts{seconds: v.seconds, nanoseconds: int64(v.nanoseconds)}, nil
	case TimeLike:
		p := parts{seconds: v.Seconds()}
		if !p.addExact(v.Nanoseconds()) {
			return parts{}, &ConversionError{Value: value, Err: fault.ErrOutOfRange}
		}
		return p, nil
	case float64:
		return floatParts(v, value)
	case float32:
		return floatParts(float64(v), value)
	case string:
		return literalParts(v, value)
	case []byte:
		return literalParts(string(v), value)
	case json.Number:
		return literalParts(string(v), value)
	}

	if n, ok := integerOf(value); ok {
		if !n.IsInt64() {
			return parts{}, &ConversionError{Value: value, Err: fault.ErrOutOfRange}
		}
		return parts{seconds: n.Int64()}, nil
	}
	return parts{}, &ConversionError{Value: value}
}

func floatParts(f float64, value interface{}) (parts, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return parts{}, &ConversionError{Value: value, Err: fault.ErrNotFiniteValue}
	}
	whole, frac := math.Modf(f)
	if whole < minFloatSeconds || whole >= maxFloatSeconds {
		return parts{}, &ConversionError{Value: value, Err: fault.ErrOutOfRange}
	}
	return parts{
		seconds:  int64(whole),
		fraction: frac * NanosecondsPerSecond,
	}, nil
}

func literalParts(s string, value interface{}) (parts, error) {
	t, err := parseLiteral(s, value)
	if nil != err {
		return parts{}, err
	}
	return parts{seconds: t.seconds, nanoseconds: int64(t.nanoseconds)}, nil
}

// fold whole seconds out so the exact part cannot overflow, false if
// the seconds do
func (p *parts) addExact(nanoseconds int64) bool {
	s, ok := addSeconds(p.seconds, nanoseconds/NanosecondsPerSecond)
	if !ok {
		return false
	}
	p.seconds = s
	p.nanoseconds += nanoseconds % NanosecondsPerSecond
	return true
}

// the second argument of ConvertPair
func (p *parts) addNanoseconds(value interface{}) error {
	switch v := value.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &ConversionError{Value: value, Err: fault.ErrNotFiniteValue}
		}
		p.fraction += v
		return nil
	case float32:
		return p.addNanoseconds(float64(v))
	case string:
		return p.addNumericString(v, value)
	case []byte:
		return p.addNumericString(string(v), value)
	case json.Number:
		return p.addNumericString(string(v), value)
	}

	n, ok := integerOf(value)
	if !ok {
		return &ConversionError{Value: value}
	}
	if n.IsInt64() {
		if !p.addExact(n.Int64()) {
			return &ConversionError{Value: value, Err: fault.ErrOutOfRange}
		}
		return nil
	}

	// too big for int64: carry whole seconds separately
	s, ns := new(big.Int).DivMod(n, bigNanosecondsPerSecond, new(big.Int))
	if !s.IsInt64() {
		return &ConversionError{Value: value, Err: fault.ErrOutOfRange}
	}
	seconds, ok := addSeconds(p.seconds, s.Int64())
	if !ok {
		return &ConversionError{Value: value, Err: fault.ErrOutOfRange}
	}
	p.seconds = seconds
	p.nanoseconds += ns.Int64()
	return nil
}

func (p *parts) addNumericString(s string, value interface{}) error {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); nil == err {
		if !p.addExact(n) {
			return &ConversionError{Value: value, Err: fault.ErrOutOfRange}
		}
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if nil != err || math.IsNaN(f) || math.IsInf(f, 0) {
		return &LiteralError{Literal: value}
	}
	p.fraction += f
	return nil
}

// normalise the assembled value
func (p parts) time(value interface{}) (Time, error) {
	t, ok := normalise(p.seconds, p.nanoseconds)
	if !ok {
		return Time{}, &ConversionError{Value: value, Err: fault.ErrOutOfRange}
	}
	if 0 == p.fraction {
		return t, nil
	}
	t, ok = normaliseFloat(t.seconds, float64(t.nanoseconds)+p.fraction)
	if !ok {
		return Time{}, &ConversionError{Value: value, Err: fault.ErrOutOfRange}
	}
	return t, nil
}

// any of the Go integer kinds as a big.Int
func integerOf(value interface{}) (*big.Int, bool) {
	switch v := value.(type) {
	case int:
		return big.NewInt(int64(v)), true
	case int8:
		return big.NewInt(int64(v)), true
	case int16:
		return big.NewInt(int64(v)), true
	case int32:
		return big.NewInt(int64(v)), true
	case int64:
		return big.NewInt(v), true
	case uint:
		return new(big.Int).SetUint64(uint64(v)), true
	case uint8:
		return new(big.Int).SetUint64(uint64(v)), true
	case uint16:
		return new(big.Int).SetUint64(uint64(v)), true
	case uint32:
		return new(big.Int).SetUint64(uint64(v)), true
	case uint64:
		return new(big.Int).SetUint64(v), true
	case *big.Int:
		if nil == v {
			return nil, false
		}
		return v, true
	}
	return nil, false
}
