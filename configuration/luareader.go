// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"reflect"

	"github.com/pkg/errors"
	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"

	"github.com/bitmark-inc/gpstime/fault"
)

// ParseConfigurationFile - read and execute a Lua files and assign
// the results to a configuration structure
//
// fields not set by the file keep the values already in config, so
// defaults are filled in before calling
func ParseConfigurationFile(fileName string, config interface{}) error {

	// since interface{} is untyped, have to verify type compatibility at run-time
	rv := reflect.ValueOf(config)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fault.ErrInvalidStructPointer
	}

	if _, err := os.Stat(fileName); nil != err {
		if os.IsNotExist(err) {
			return errors.Wrap(fault.ErrNotFoundConfigFile, fileName)
		}
		return errors.Wrapf(err, "configuration: %q", fileName)
	}

	L := lua.NewState()
	defer L.Close()

	L.OpenLibs()

	// create the global "arg" table
	// arg[0] = config file
	arg := &lua.LTable{}
	arg.Insert(0, lua.LString(fileName))
	L.SetGlobal("arg", arg)

	// execute configuration
	if err := L.DoFile(fileName); err != nil {
		return errors.Wrapf(err, "configuration: %q", fileName)
	}

	table, ok := L.Get(L.GetTop()).(*lua.LTable)
	if !ok {
		return errors.Wrap(fault.ErrInvalidConfiguration, fileName)
	}

	mapperOption := gluamapper.Option{
		NameFunc: func(s string) string {
			return s
		},
		TagName: "gluamapper",
	}
	mapper := gluamapper.Mapper{Option: mapperOption}
	if err := mapper.Map(table, config); nil != err {
		return errors.Wrapf(err, "configuration: %q", fileName)
	}
	return nil
}
