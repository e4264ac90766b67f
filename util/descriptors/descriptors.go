// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package descriptors defines helper functions for common file descriptors.
package descriptors

import (
	"os"
	"strconv"

	"github.com/mutecomm/b64/log"
	"github.com/urfave/cli"
)

var (
	// InputFDFlag defines the standard --input-fd flag.
	InputFDFlag = cli.StringFlag{
		Name:  "input-fd",
		Value: "stdin",
		Usage: "input file descriptor",
	}
	// OutputFDFlag defines the standard --output-fd flag.
	OutputFDFlag = cli.StringFlag{
		Name:  "output-fd",
		Value: "stdout",
		Usage: "output file descriptor",
	}
	// StatusFDFlag defines the standard --status-fd flag.
	StatusFDFlag = cli.StringFlag{
		Name:  "status-fd",
		Value: "stderr",
		Usage: "status file descriptor",
	}
)

// Table contains the standard file pointers.
type Table struct {
	InputFP  *os.File // input file pointer
	OutputFP *os.File // output file pointer
	StatusFP *os.File // status file pointer
}

// Open returns the file pointer for the file descriptor option value fs
// of the option with the given name. fs must be "stdin", "stdout",
// "stderr" or an integer.
func Open(name, fs string) (*os.File, error) {
	switch fs {
	case "stdin":
		return os.Stdin, nil
	case "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	}
	fd, err := strconv.Atoi(fs)
	if err != nil || fd < 0 {
		return nil,
			log.Errorf("cannot parse --%s %s: argument must be \"stdin\", "+
				"\"stdout\", \"stderr\" or an integer (a file descriptor)",
				name, fs)
	}
	return os.NewFile(uintptr(fd), name), nil
}

// NewTable parses the standard file descriptor options in context c and
// returns a table with the corresponding file pointers.
func NewTable(c *cli.Context) (*Table, error) {
	var t Table
	var err error
	t.InputFP, err = Open(InputFDFlag.Name, c.GlobalString(InputFDFlag.Name))
	if err != nil {
		return nil, err
	}
	t.OutputFP, err = Open(OutputFDFlag.Name, c.GlobalString(OutputFDFlag.Name))
	if err != nil {
		return nil, err
	}
	t.StatusFP, err = Open(StatusFDFlag.Name, c.GlobalString(StatusFDFlag.Name))
	if err != nil {
		return nil, err
	}
	return &t, nil
}
