// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package util contains utility functions for b64.
package util

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/structs"
	"github.com/frankbraun/codechain/util/file"
	"github.com/mutecomm/b64/log"
	"golang.org/x/crypto/ssh/terminal"
)

// Fatal prints err to stderr and exits the process with exit code 1.
func Fatal(err error) {
	fmt.Fprintf(os.Stderr, "%s: error: %s\n", os.Args[0], err)
	os.Exit(1)
}

// CreateDirs creates all given directories. Empty names are skipped.
func CreateDirs(dirs ...string) error {
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0700); err != nil {
			return log.Error(err)
		}
	}
	return nil
}

// IsTerminal returns true, if the file pointer fp refers to a terminal.
func IsTerminal(fp *os.File) bool {
	return terminal.IsTerminal(int(fp.Fd()))
}

// CheckOutput makes sure the output file outFile can be written.
// If outFile exists already and force is false, an error is returned.
func CheckOutput(outFile string, force bool) error {
	if force {
		return nil
	}
	exists, err := file.Exists(outFile)
	if err != nil {
		return log.Error(err)
	}
	if exists {
		return log.Errorf("output file '%s' exists already (use --force to overwrite)", outFile)
	}
	return nil
}

// SortedJSON encodes the struct strct as JSON with sorted keys.
func SortedJSON(strct interface{}) []byte {
	// convert the struct to map before the JSON encoding, because maps are
	// automatically sorted and structs are not
	m := structs.Map(strct)
	jsn, err := json.Marshal(m)
	if err != nil {
		panic(log.Critical(err))
	}
	return jsn
}
