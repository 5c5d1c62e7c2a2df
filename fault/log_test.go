// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/gpstime/fault"
)

const dir = "testing"

func setupTestLogger() {
	_ = os.RemoveAll(dir)
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func teardownTestLogger() {
	logger.Finalise()
	_ = os.RemoveAll(dir)
}

// without a channel the message goes to stdout
func TestCriticalfWithoutChannel(t *testing.T) {
	fault.Finalise()
	fault.Criticalf("value: %d", 42)
}

func TestInitialise(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	err := fault.Initialise()
	assert.Nil(t, err, "wrong Initialise")
	defer fault.Finalise()

	err = fault.Initialise()
	assert.Equal(t, fault.ErrAlreadyInitialised, err, "second Initialise")

	fault.Criticalf("logged value: %d", 42)
}
