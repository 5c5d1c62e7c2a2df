// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/pkg/errors"

	"github.com/bitmark-inc/gpstime/fault"
	"github.com/bitmark-inc/gpstime/fixedtime"
)

// run a command, reporting any panic through the fault channel
func runCommand(w io.Writer, log *logger.L, program string, c *Configuration, arguments []string) (err error) {
	defer func() {
		if r := recover(); nil != r {
			fault.Criticalf("command: %q  panic: %v", arguments, r)
			err = errors.Errorf("command: %q failed: %v", arguments, r)
		}
	}()
	return processCommand(w, log, program, c, arguments)
}

// command handler
//
// all output goes to w, a failure is returned for the caller to
// report and set the exit status; log is nil when logging is off
func processCommand(w io.Writer, log *logger.L, program string, c *Configuration, arguments []string) error {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	if nil != log {
		log.Debugf("command: %q  arguments: %q", command, arguments)
	}

	p := printer{w: w, format: c.Format, precision: c.Precision}

	switch command {

	case "parse", "p":
		if err := checkArguments(command, arguments, 1, -1); nil != err {
			return err
		}
		for _, s := range arguments {
			t, err := parseTime(s)
			if nil != err {
				return err
			}
			p.time(t)
		}

	case "pair":
		if err := checkArguments(command, arguments, 2, 2); nil != err {
			return err
		}
		t, err := fixedtime.ConvertPair(arguments[0], arguments[1])
		if nil != err {
			return err
		}
		p.time(t)

	case "repr", "r":
		t, err := oneTime(command, arguments)
		if nil != err {
			return err
		}
		fmt.Fprintf(w, "%#v\n", t)

	case "add", "+", "sub", "-":
		if err := checkArguments(command, arguments, 2, 2); nil != err {
			return err
		}
		a, err := parseTime(arguments[0])
		if nil != err {
			return err
		}
		b, err := parseTime(arguments[1])
		if nil != err {
			return err
		}
		var result fixedtime.Time
		if "add" == command || "+" == command {
			result, err = a.AddValue(b)
		} else {
			result, err = a.SubValue(b)
		}
		if nil != err {
			return errors.Wrapf(err, "%s %s %s", command, arguments[0], arguments[1])
		}
		p.time(result)

	case "mul", "*", "div", "/", "mod", "%":
		if err := checkArguments(command, arguments, 2, 2); nil != err {
			return err
		}
		a, err := parseTime(arguments[0])
		if nil != err {
			return err
		}
		factor, err := parseFactor(arguments[1])
		if nil != err {
			return err
		}
		if nil != log {
			log.Debugf("%s factor: %#v", command, factor)
		}

		var result fixedtime.Time
		switch command {
		case "mul", "*":
			result, err = a.MulValue(factor)
		case "div", "/":
			result, err = a.DivValue(factor)
		default:
			result, err = a.ModValue(factor)
		}
		if nil != err {
			return errors.Wrapf(err, "%s %s %s", command, arguments[0], arguments[1])
		}
		p.time(result)

	case "neg":
		t, err := oneTime(command, arguments)
		if nil != err {
			return err
		}
		p.time(t.Neg())

	case "abs":
		t, err := oneTime(command, arguments)
		if nil != err {
			return err
		}
		p.time(t.Abs())

	case "round":
		if err := checkArguments(command, arguments, 1, 2); nil != err {
			return err
		}
		t, err := parseTime(arguments[0])
		if nil != err {
			return err
		}
		n := 0
		if 2 == len(arguments) {
			n, err = strconv.Atoi(arguments[1])
			if nil != err {
				return errors.Wrapf(fault.ErrInvalidPrecision, "%q", arguments[1])
			}
		}
		p.time(t.Round(n))

	case "cmp", "compare":
		if err := checkArguments(command, arguments, 2, 2); nil != err {
			return err
		}
		a, err := parseTime(arguments[0])
		if nil != err {
			return err
		}
		r, err := a.CompareValue(comparand(arguments[1]))
		if nil != err {
			return err
		}
		fmt.Fprintf(w, "%d\n", r)

	case "ns", "nanoseconds":
		t, err := oneTime(command, arguments)
		if nil != err {
			return err
		}
		fmt.Fprintf(w, "%s\n", t.TotalNanoseconds())

	case "float":
		t, err := oneTime(command, arguments)
		if nil != err {
			return err
		}
		fmt.Fprintf(w, "%s\n", formatFloat64(t.Float64()))

	case "int":
		t, err := oneTime(command, arguments)
		if nil != err {
			return err
		}
		fmt.Fprintf(w, "%d\n", t.Int64())

	case "hash":
		t, err := oneTime(command, arguments)
		if nil != err {
			return err
		}
		fmt.Fprintf(w, "%d\n", t.Hash())

	case "version", "v":
		fmt.Fprintf(w, "%s\n", version)

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Fprintf(w, "error: missing command\n")
		default:
			fmt.Fprintf(w, "error: no such command: %q\n", command)
		}
		printUsage(w, program)

		switch command {
		case "help", "h", "?":
		default:
			return errors.Wrapf(fault.ErrInvalidCommand, "%q", command)
		}
	}

	return nil
}

func printUsage(w io.Writer, program string) {
	fmt.Fprintf(w, "usage: %s [--help] [--verbose] [--quiet] [--config-file=FILE] [--format=FMT] [--precision=N] command arguments...\n", program)

	fmt.Fprintf(w, "supported commands:\n\n")
	fmt.Fprintf(w, "  help                       (h)      - display this message\n\n")
	fmt.Fprintf(w, "  version                    (v)      - display version string\n\n")

	fmt.Fprintf(w, "  parse T...                 (p)      - print each decimal time in the output format\n")
	fmt.Fprintf(w, "  pair S NS                           - seconds plus nanoseconds, either may be fractional\n")
	fmt.Fprintf(w, "  repr T                     (r)      - exact seconds and nanoseconds fields\n")
	fmt.Fprintf(w, "\n")

	fmt.Fprintf(w, "  add T U                    (+)      - T + U\n")
	fmt.Fprintf(w, "  sub T U                    (-)      - T - U\n")
	fmt.Fprintf(w, "  mul T F                    (*)      - T * F\n")
	fmt.Fprintf(w, "  div T F                    (/)      - T / F\n")
	fmt.Fprintf(w, "  mod T F                    (%%)      - T modulo F\n")
	fmt.Fprintf(w, "                                        integer F is exact, otherwise F is a float\n")
	fmt.Fprintf(w, "  neg T                               - -T\n")
	fmt.Fprintf(w, "  abs T                               - |T|\n")
	fmt.Fprintf(w, "  round T [N]                         - round to N decimal places [0]\n")
	fmt.Fprintf(w, "\n")

	fmt.Fprintf(w, "  cmp T U                    (compare) - -1, 0 or 1, U may be inf or -inf\n")
	fmt.Fprintf(w, "  ns T                       (nanoseconds) - total nanoseconds\n")
	fmt.Fprintf(w, "  float T                             - nearest float\n")
	fmt.Fprintf(w, "  int T                               - whole seconds\n")
	fmt.Fprintf(w, "  hash T                              - hash value\n")
	fmt.Fprintf(w, "\n")

	fmt.Fprintf(w, "output formats: %s, %s, %s, %s\n", formatString, formatRepr, formatFloat, formatNs)
	fmt.Fprintf(w, "put -- before the command if any value is negative\n")
	fmt.Fprintf(w, "\n")
}

// maximum < 0 means no limit
func checkArguments(command string, arguments []string, minimum int, maximum int) error {
	if len(arguments) < minimum {
		return errors.Wrapf(fault.ErrMissingArguments, "%s needs %d", command, minimum)
	}
	if maximum >= 0 && len(arguments) > maximum {
		return errors.Wrapf(fault.ErrTooManyArguments, "%s takes %d", command, maximum)
	}
	return nil
}

func oneTime(command string, arguments []string) (fixedtime.Time, error) {
	if err := checkArguments(command, arguments, 1, 1); nil != err {
		return fixedtime.Time{}, err
	}
	return parseTime(arguments[0])
}

func parseTime(s string) (fixedtime.Time, error) {
	return fixedtime.Parse(s)
}

// an integer is an exact multiplier, anything else is a float
func parseFactor(s string) (interface{}, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); nil == err {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if nil != err {
		return nil, &fixedtime.LiteralError{Literal: s}
	}
	return f, nil
}

// a time, or failing that an infinity or other float
func comparand(s string) interface{} {
	if _, err := fixedtime.Parse(s); nil == err {
		return s
	}
	if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); nil == err {
		return f
	}
	return s
}

type printer struct {
	w         io.Writer
	format    string
	precision int
}

// print one result in the configured format
func (p printer) time(t fixedtime.Time) {
	if p.precision >= 0 {
		t = t.Round(p.precision)
	}
	switch p.format {
	case formatRepr:
		fmt.Fprintf(p.w, "%#v\n", t)
	case formatFloat:
		fmt.Fprintf(p.w, "%s\n", formatFloat64(t.Float64()))
	case formatNs:
		fmt.Fprintf(p.w, "%s\n", t.TotalNanoseconds())
	default:
		fmt.Fprintf(p.w, "%s\n", t)
	}
}

func formatFloat64(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
