// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/pkg/errors"

	"github.com/bitmark-inc/gpstime/configuration"
	"github.com/bitmark-inc/gpstime/fault"
	"github.com/bitmark-inc/gpstime/util"
)

// basic defaults (the log directory is relative to the configuration file)
const (
	defaultFormat    = formatString
	defaultPrecision = -1 // no rounding

	defaultLogDirectory = "log"
	defaultLogFile      = "gpstime.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	maximumPrecision = 9
)

// output formats
const (
	formatString = "string"
	formatRepr   = "repr"
	formatFloat  = "float"
	formatNs     = "ns"
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// Configuration - items read from the optional configuration file
type Configuration struct {
	Format    string               `gluamapper:"format" json:"format"`
	Precision int                  `gluamapper:"precision" json:"precision"`
	Logging   logger.Configuration `gluamapper:"logging" json:"logging"`

	logging bool // start the logger
}

// defaults, with the log in the per user data directory
func newConfiguration() *Configuration {

	// the file's levels are merged into this map
	levels := make(map[string]string, len(defaultLogLevels))
	for k, v := range defaultLogLevels {
		levels[k] = v
	}

	return &Configuration{
		Format:    defaultFormat,
		Precision: defaultPrecision,
		Logging: logger.Configuration{
			Directory: util.EnsureAbsolute(util.AppDataDir("gpstime", false), defaultLogDirectory),
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   false,
			Levels:    levels,
		},
	}
}

// will read decode and verify the configuration, a blank file name
// gives the defaults
func getConfiguration(configurationFileName string) (*Configuration, error) {

	options := newConfiguration()

	if "" != configurationFileName {
		configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}

		// log files default to being beside the configuration file
		dataDirectory, _ := filepath.Split(configurationFileName)
		options.Logging.Directory = defaultLogDirectory

		if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
			return nil, err
		}
		options.Logging.Directory = util.EnsureAbsolute(dataDirectory, options.Logging.Directory)
	}

	if err := options.validate(); nil != err {
		return nil, err
	}

	// fail if the log file is not a simple file name
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, errors.Errorf("Files: %q is not plain name", options.Logging.File)
	}

	// the default directory is never created, only used if present
	if "" == configurationFileName {
		options.logging = util.IsDirectory(options.Logging.Directory)
		return options, nil
	}

	if err := util.EnsureDirectory(options.Logging.Directory); nil != err {
		return nil, errors.Wrapf(err, "log directory: %q", options.Logging.Directory)
	}
	options.logging = true

	// done
	return options, nil
}

// apply the last of any command-line overrides
func (c *Configuration) override(formats []string, precisions []string) error {
	if n := len(formats); n > 0 {
		c.Format = formats[n-1]
	}
	if n := len(precisions); n > 0 {
		p, err := strconv.Atoi(precisions[n-1])
		if nil != err {
			return errors.Wrapf(fault.ErrInvalidPrecision, "%q", precisions[n-1])
		}
		c.Precision = p
	}
	return c.validate()
}

func (c *Configuration) validate() error {
	c.Format = strings.ToLower(c.Format)
	switch c.Format {
	case formatString, formatRepr, formatFloat, formatNs:
	default:
		return errors.Wrapf(fault.ErrInvalidFormat, "%q", c.Format)
	}
	if c.Precision < -1 || c.Precision > maximumPrecision {
		return errors.Wrapf(fault.ErrInvalidPrecision, "%d", c.Precision)
	}
	return nil
}
