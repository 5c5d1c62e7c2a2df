// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"io/ioutil"
	"os"
	"os/user"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnsureAbsolute(t *testing.T) {
	tests := []struct {
		directory string
		path      string
		expected  string
	}{
		{"/var/lib", "log", "/var/lib/log"},
		{"/var/lib", "./log/../data", "/var/lib/data"},
		{"/var/lib", "/tmp/log", "/tmp/log"},
		{"/var/lib/", "/tmp//log/", "/tmp/log"},
	}

	for i, item := range tests {
		actual := EnsureAbsolute(item.directory, item.path)
		if item.expected != actual {
			t.Errorf("%d: actual: %q  expected: %q", i, actual, item.expected)
		}
	}
}

func TestEnsureDirectory(t *testing.T) {
	base, err := ioutil.TempDir("", "gpstime-util")
	assert.Nil(t, err, "wrong TempDir")
	defer os.RemoveAll(base)

	d := filepath.Join(base, "a", "b")
	assert.Nil(t, EnsureDirectory(d), "wrong first EnsureDirectory")
	assert.Nil(t, EnsureDirectory(d), "wrong repeat EnsureDirectory")

	info, err := os.Stat(d)
	assert.Nil(t, err, "directory missing")
	assert.True(t, info.IsDir(), "not a directory")
}

func TestIsDirectory(t *testing.T) {
	base, err := ioutil.TempDir("", "gpstime-util")
	assert.Nil(t, err, "wrong TempDir")
	defer os.RemoveAll(base)

	file := filepath.Join(base, "file")
	assert.Nil(t, ioutil.WriteFile(file, []byte("x"), 0600), "wrong WriteFile")

	assert.True(t, IsDirectory(base), "directory")
	assert.False(t, IsDirectory(file), "plain file")
	assert.False(t, IsDirectory(filepath.Join(base, "missing")), "missing path")
}

func TestAppDataDir(t *testing.T) {
	usr, err := user.Current()
	if nil != err {
		t.Skipf("user.Current: %v", err)
	}
	homeDir := usr.HomeDir

	appConfig := filepath.Join(homeDir, ".gpstime")
	if info, err := os.Stat(filepath.Join(homeDir, ".config")); nil == err && info.IsDir() {
		appConfig = filepath.Join(homeDir, ".config", "gpstime")
	}

	tests := []struct {
		goos     string
		appName  string
		expected string
	}{
		{"linux", "gpstime", appConfig},
		{"linux", "Gpstime", appConfig},
		{"freebsd", ".gpstime", appConfig},
		{"darwin", "gpstime", filepath.Join(homeDir, "Library", "Application Support", "Gpstime")},
		{"plan9", "Gpstime", filepath.Join(homeDir, "gpstime")},
		{"linux", "", "."},
		{"darwin", ".", "."},
	}

	for i, item := range tests {
		actual := appDataDir(item.goos, item.appName, false)
		if item.expected != actual {
			t.Errorf("%d: %s %q actual: %q  expected: %q", i, item.goos, item.appName, actual, item.expected)
		}
	}
}
