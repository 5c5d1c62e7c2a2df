// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixedtime_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/gpstime/fault"
	"github.com/bitmark-inc/gpstime/fixedtime"
)

func TestCmp(t *testing.T) {
	tests := []struct {
		a        fixedtime.Time
		b        fixedtime.Time
		expected int
	}{
		{fixedtime.New(0, 0), fixedtime.New(0, 0), 0},
		{fixedtime.New(1, 0), fixedtime.New(0, 999999999), 1},
		{fixedtime.New(-1, 999999999), fixedtime.New(0, 0), -1},
		{fixedtime.New(100, 2), fixedtime.New(100, 1), 1},
		{fixedtime.New(100, 1), fixedtime.New(100, 2), -1},
		{fixedtime.New(math.MinInt64, 0), fixedtime.New(math.MaxInt64, 0), -1},
	}

	for i, item := range tests {
		actual := item.a.Cmp(item.b)
		if item.expected != actual {
			t.Errorf("%d: actual: %d  expected: %d", i, actual, item.expected)
		}
		if -item.expected != item.b.Cmp(item.a) {
			t.Errorf("%d: reversed actual: %d  expected: %d", i, item.b.Cmp(item.a), -item.expected)
		}
		if (0 == item.expected) != item.a.Equal(item.b) {
			t.Errorf("%d: equal actual: %t", i, item.a.Equal(item.b))
		}
		if (item.expected < 0) != item.a.Before(item.b) {
			t.Errorf("%d: before actual: %t", i, item.a.Before(item.b))
		}
		if (item.expected > 0) != item.a.After(item.b) {
			t.Errorf("%d: after actual: %t", i, item.a.After(item.b))
		}
	}
}

func TestEqualValue(t *testing.T) {
	x := fixedtime.New(100, 500000000)

	tests := []struct {
		value    interface{}
		expected bool
	}{
		{fixedtime.New(100, 500000000), true},
		{100.5, true},
		{"100.5", true},
		{[]byte("100.50"), true},
		{100, false},
		{fixedtime.New(100, 500000001), false},
		{math.Inf(1), false},
		{math.Inf(-1), false},
		{math.NaN(), false},
		{"test", false},
		{nil, false},
		{struct{}{}, false},
	}

	for i, item := range tests {
		actual := x.EqualValue(item.value)
		if item.expected != actual {
			t.Errorf("%d: %#v actual: %t  expected: %t", i, item.value, actual, item.expected)
		}
	}
}

func TestCompareValue(t *testing.T) {
	x := fixedtime.New(100, 500000000)

	tests := []struct {
		value    interface{}
		expected int
	}{
		{fixedtime.New(100, 500000000), 0},
		{100.5, 0},
		{101, -1},
		{100, 1},
		{"100.500000001", -1},
		{float32(100.25), 1},
		{math.Inf(1), -1},
		{math.Inf(-1), 1},
		{float32(math.Inf(1)), -1},
	}

	for i, item := range tests {
		c, err := x.CompareValue(item.value)
		if nil != err {
			t.Errorf("%d: %#v error: %s", i, item.value, err)
			continue
		}
		if item.expected != c {
			t.Errorf("%d: %#v actual: %d  expected: %d", i, item.value, c, item.expected)
		}

		lt, err := x.LessValue(item.value)
		assert.Nil(t, err, "%d: LessValue", i)
		le, err := x.LessEqualValue(item.value)
		assert.Nil(t, err, "%d: LessEqualValue", i)
		gt, err := x.GreaterValue(item.value)
		assert.Nil(t, err, "%d: GreaterValue", i)
		ge, err := x.GreaterEqualValue(item.value)
		assert.Nil(t, err, "%d: GreaterEqualValue", i)

		assert.Equal(t, item.expected < 0, lt, "%d: <", i)
		assert.Equal(t, item.expected <= 0, le, "%d: <=", i)
		assert.Equal(t, item.expected > 0, gt, "%d: >", i)
		assert.Equal(t, item.expected >= 0, ge, "%d: >=", i)
	}
}

func TestCompareValueUnsupported(t *testing.T) {
	x := fixedtime.New(100, 500000000)

	_, err := x.LessValue("test")
	assert.EqualError(t, err, "'<' not supported between instances of 'FixedTime' and 'string'", "wrong message")
	assert.True(t, fault.IsErrUnsupported(err), "wrong class")

	var comparison *fixedtime.ComparisonError
	assert.True(t, errors.As(err, &comparison), "not a comparison error")
	assert.Equal(t, "test", comparison.Value, "wrong value")

	tests := []struct {
		op string
		f  func(interface{}) (bool, error)
	}{
		{"<", x.LessValue},
		{"<=", x.LessEqualValue},
		{">", x.GreaterValue},
		{">=", x.GreaterEqualValue},
	}

	for i, item := range tests {
		actual, err := item.f(nil)
		if actual {
			t.Errorf("%d: %s returned true with an error", i, item.op)
		}
		if !errors.Is(err, fault.ErrUnsupportedComparison) {
			t.Errorf("%d: %s actual error: %v", i, item.op, err)
		}
	}

	_, err = x.CompareValue(math.NaN())
	assert.True(t, errors.Is(err, fault.ErrUnsupportedComparison), "NaN: %v", err)
}

func TestHash(t *testing.T) {
	tests := []struct {
		time     fixedtime.Time
		expected int64
	}{
		{fixedtime.New(0, 0), 0},
		{fixedtime.New(123, 456), 435},
		{fixedtime.New(12345, 67890), 80139},
		{fixedtime.New(100, 0), 100},
		{fixedtime.New(-1, 1), -2},
	}

	for i, item := range tests {
		actual := item.time.Hash()
		if item.expected != actual {
			t.Errorf("%d: actual: %d  expected: %d", i, actual, item.expected)
		}
	}

	// equal values from different sources hash the same
	a, _ := fixedtime.Parse("100.5")
	b, _ := fixedtime.FromFloat64(100.5)
	c := fixedtime.New(99, 1500000000)
	assert.True(t, a.Equal(b), "parse and float differ")
	assert.Equal(t, a.Hash(), b.Hash(), "wrong float hash")
	assert.Equal(t, a.Hash(), c.Hash(), "wrong normalised hash")

	m := map[fixedtime.Time]string{a: "event"}
	assert.Equal(t, "event", m[c], "wrong map key")
}

func TestInfinity(t *testing.T) {
	one := fixedtime.New(1, 0)

	lt, err := one.LessValue(math.Inf(1))
	assert.Nil(t, err, "LessValue(+Inf)")
	assert.True(t, lt, "1 < +Inf")

	gt, err := one.GreaterValue(math.Inf(-1))
	assert.Nil(t, err, "GreaterValue(-Inf)")
	assert.True(t, gt, "1 > -Inf")

	assert.False(t, one.EqualValue(math.Inf(1)), "1 == +Inf")
	assert.False(t, one.EqualValue(math.Inf(-1)), "1 == -Inf")
}

func TestIsZero(t *testing.T) {
	assert.True(t, fixedtime.Time{}.IsZero(), "zero value")
	assert.True(t, fixedtime.New(1, -1000000000).IsZero(), "normalised zero")
	assert.False(t, fixedtime.New(0, 1).IsZero(), "one nanosecond")
	assert.False(t, fixedtime.New(-1, 999999999).IsZero(), "minus one nanosecond")
}
