// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// most of base Lua is available such as reading files to set key data
// and getenv to extract environment supplied items.
//
// the file must return a single table, its keys are matched to the
// "gluamapper" tags of the destination structure:
//
//   local M = {}
//   M.format = "string"
//   M.precision = 9
//   M.logging = {
//       directory = "log",
//       file = "gpstime.log",
//       levels = { DEFAULT = "info" },
//   }
//   return M
package configuration
