// SPDX-License-Identifier: ISC
// Copyright (c) 2013-2014 Conformal Systems LLC.
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"strings"
	"unicode"
)

// AppDataDir - the per user directory for an application's data
//
//   windows:  %LOCALAPPDATA%\Name  (%APPDATA% if roaming)
//   darwin:   ~/Library/Application Support/Name
//   plan9:    ~/name
//   others:   ~/.config/name if ~/.config exists, otherwise ~/.name
//
// an empty or "." name gives the current directory
func AppDataDir(appName string, roaming bool) string {
	return appDataDir(runtime.GOOS, appName, roaming)
}

func appDataDir(goos string, appName string, roaming bool) string {
	if "" == appName || "." == appName {
		return "."
	}

	appName = strings.TrimPrefix(appName, ".")
	appNameUpper := string(unicode.ToUpper(rune(appName[0]))) + appName[1:]
	appNameLower := string(unicode.ToLower(rune(appName[0]))) + appName[1:]

	homeDir := os.Getenv("HOME")
	if u, err := user.Current(); nil == err {
		homeDir = u.HomeDir
	}

	switch goos {
	case "windows":
		appData := os.Getenv("LOCALAPPDATA")
		if roaming || "" == appData {
			appData = os.Getenv("APPDATA")
		}
		if "" != appData {
			return filepath.Join(appData, appNameUpper)
		}

	case "darwin":
		if "" != homeDir {
			return filepath.Join(homeDir, "Library", "Application Support", appNameUpper)
		}

	case "plan9":
		if "" != homeDir {
			return filepath.Join(homeDir, appNameLower)
		}

	default:
		if "" != homeDir {
			dotConfig := filepath.Join(homeDir, ".config")
			if info, err := os.Stat(dotConfig); nil == err && info.IsDir() {
				return filepath.Join(dotConfig, appNameLower)
			}
			return filepath.Join(homeDir, "."+appNameLower)
		}
	}

	return "."
}
