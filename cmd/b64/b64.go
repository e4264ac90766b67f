// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// b64 is a command-line tool to encode and decode base64.
package main

import (
	"os"

	"github.com/mutecomm/b64/b64engine"
	"github.com/mutecomm/b64/log"
	"github.com/mutecomm/b64/release"
	"github.com/mutecomm/b64/util"
	"github.com/urfave/cli"
)

func init() {
	cli.VersionPrinter = release.PrintVersion
}

func b64Main() error {
	defer log.Flush()
	return b64engine.New().Start(os.Args)
}

func main() {
	// work around defer not working after os.Exit()
	if err := b64Main(); err != nil {
		util.Fatal(err)
	}
}
