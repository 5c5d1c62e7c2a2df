// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixedtime

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v2"

	"github.com/bitmark-inc/gpstime/fault"
)

const (
	maxIntegerDigits  = 30 // of the nanosecond count, beyond int64 seconds
	nanosecondsDigits = 9
)

// decimal literal:
//
//   [space][+|-](digits[.[digits]] | .digits)[(e|E)[+|-]digits][space]
//
// the exact decimal value is scaled to nanoseconds and truncated
// toward zero, no binary floating point is involved
func parseLiteral(s string, literal interface{}) (Time, error) {
	s = strings.TrimSpace(s)
	if !signsPlaced(s) {
		return Time{}, &LiteralError{Literal: literal}
	}

	d, _, err := apd.NewFromString(s)
	if nil != err {
		return parseWideExponent(s, literal)
	}
	if !finite(d) {
		return Time{}, &LiteralError{Literal: literal}
	}
	if d.IsZero() {
		return Time{}, nil
	}

	// digits before the point once scaled to nanoseconds
	if d.NumDigits()+int64(d.Exponent)+nanosecondsDigits > maxIntegerDigits {
		return Time{}, &ConversionError{Value: literal, Err: fault.ErrOutOfRange}
	}

	scaled := new(apd.Decimal).Set(d)
	scaled.Exponent += nanosecondsDigits
	whole := new(apd.Decimal)
	scaled.Modf(whole, nil)

	total := new(big.Int).Set(&whole.Coeff)
	if whole.Exponent > 0 {
		total.Mul(total, powerOfTen(int(whole.Exponent)))
	}
	if whole.Negative {
		total.Neg(total)
	}

	t, ok := fromTotalNanoseconds(total)
	if !ok {
		return Time{}, &ConversionError{Value: literal, Err: fault.ErrOutOfRange}
	}
	return t, nil
}

// apd refuses exponents beyond +/-100000: these are either below a
// nanosecond or far out of range
func parseWideExponent(s string, literal interface{}) (Time, error) {
	i := strings.IndexAny(s, "eE")
	if i < 0 {
		return Time{}, &LiteralError{Literal: literal}
	}
	mantissa, _, err := apd.NewFromString(s[:i])
	if nil != err || !finite(mantissa) {
		return Time{}, &LiteralError{Literal: literal}
	}
	e := s[i+1:]
	exponent, err := strconv.ParseInt(e, 10, 64)
	if nil != err {
		// a range error is reported before any trailing junk is seen
		n, ok := err.(*strconv.NumError)
		if !ok || strconv.ErrRange != n.Err || "" != strings.Trim(strings.TrimLeft(e, "+-"), "0123456789") {
			return Time{}, &LiteralError{Literal: literal}
		}
	}

	if mantissa.IsZero() || exponent < 0 {
		return Time{}, nil
	}
	return Time{}, &ConversionError{Value: literal, Err: fault.ErrOutOfRange}
}

// apd parses the coefficient with big.Int which takes a sign of its
// own, so a sign may only lead the literal or its exponent
func signsPlaced(s string) bool {
	for i := 1; i < len(s); i += 1 {
		if '+' == s[i] || '-' == s[i] {
			if 'e' != s[i-1] && 'E' != s[i-1] {
				return false
			}
		}
	}
	return true
}

// inf and nan are valid to apd but not as a time
func finite(d *apd.Decimal) bool {
	return apd.Finite == d.Form && d.Coeff.Sign() >= 0
}

func powerOfTen(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}
