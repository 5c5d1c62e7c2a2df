// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"io/ioutil"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
	"github.com/davecgh/go-spew/spew"

	"github.com/bitmark-inc/gpstime/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "format", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'f'},
		{Long: "precision", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'p'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		arguments = []string{"version"}
	} else if len(options["help"]) > 0 {
		arguments = []string{"help"}
	}

	if len(options["config-file"]) > 1 {
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}

	// the configuration file is optional
	configurationFile := ""
	if 1 == len(options["config-file"]) {
		configurationFile = options["config-file"][0]
	}
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	err = theConfiguration.override(options["format"], options["precision"])
	if nil != err {
		exitwithstatus.Message("%s: invalid option: %s", program, err)
	}

	// without a configuration file only an existing log directory is used
	var log *logger.L
	if theConfiguration.logging {
		if err = logger.Initialise(theConfiguration.Logging); nil != err {
			exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
		}
		defer logger.Finalise()

		// only fails if called twice
		fault.PanicIfError("fault.Initialise", fault.Initialise())
		defer fault.Finalise()

		// create a logger channel for the main program
		log = logger.New("main")
		defer log.Info("finished")
		log.Info("starting…")
		log.Infof("version: %s", version)
		log.Debugf("theConfiguration: %v", theConfiguration)
	}

	if len(options["verbose"]) > 0 {
		spew.Fdump(os.Stderr, theConfiguration)
	}

	out := io.Writer(os.Stdout)
	if len(options["quiet"]) > 0 {
		out = ioutil.Discard
	}

	err = runCommand(out, log, program, theConfiguration, arguments)
	if nil != err {
		if nil != log {
			log.Errorf("command: %q  error: %s", arguments, err)
		}
		exitwithstatus.Message("%s: %s", program, err)
	}
}
