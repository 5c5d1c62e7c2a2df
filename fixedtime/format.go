// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixedtime

import (
	"fmt"
	"math/big"
	"strings"
)

// Float64 - seconds as a float
//
// lossy: a float64 cannot hold both GPS era seconds and nanoseconds
func (t Time) Float64() float64 {
	return float64(t.seconds) + float64(t.nanoseconds)*1e-9
}

// Int64 - the whole seconds, nanoseconds are discarded
func (t Time) Int64() int64 {
	return t.seconds
}

// TotalNanoseconds - exact count of nanoseconds since the epoch
func (t Time) TotalNanoseconds() *big.Int {
	n := big.NewInt(t.seconds)
	n.Mul(n, bigNanosecondsPerSecond)
	return n.Add(n, big.NewInt(int64(t.nanoseconds)))
}

// String - canonical decimal form, e.g. "-0.5", "100.000000001", "3"
func (t Time) String() string {
	s := ""
	switch {
	case t.seconds >= 0 || 0 == t.nanoseconds:
		s = fmt.Sprintf("%d.%09d", t.seconds, t.nanoseconds)
	case t.seconds < -1:
		// borrow a second to show a conventional negative decimal
		s = fmt.Sprintf("%d.%09d", t.seconds+1, NanosecondsPerSecond-t.nanoseconds)
	default:
		s = fmt.Sprintf("-0.%09d", NanosecondsPerSecond-t.nanoseconds)
	}
	return strings.TrimSuffix(strings.TrimRight(s, "0"), ".")
}

// GoString - the exact internal fields, for the %#v format
func (t Time) GoString() string {
	return fmt.Sprintf("%s(%d, %d)", typeName, t.seconds, t.nanoseconds)
}

// MarshalText - canonical string for JSON and configuration files
func (t Time) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText - decimal string to Time
func (t *Time) UnmarshalText(s []byte) error {
	v, err := ParseBytes(s)
	if nil != err {
		return err
	}
	*t = v
	return nil
}
