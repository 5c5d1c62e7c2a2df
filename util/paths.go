// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"
)

// EnsureAbsolute - ensure the path is absolute
// if not, prepend the directory to make absolute path
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// EnsureDirectory - make the directory and any parents if missing
func EnsureDirectory(directory string) error {
	return os.MkdirAll(directory, 0700)
}

// IsDirectory - true if the path exists and is a directory
func IsDirectory(directory string) bool {
	info, err := os.Stat(directory)
	return nil == err && info.IsDir()
}
