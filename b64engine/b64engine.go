// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package b64engine implements the command engine for the b64 tool.
package b64engine

import (
	"os"
	"strings"

	"github.com/mutecomm/b64/def"
	"github.com/mutecomm/b64/log"
	"github.com/mutecomm/b64/util"
	"github.com/mutecomm/b64/util/descriptors"
	"github.com/urfave/cli"
)

// B64Engine abstracts a b64 command engine.
type B64Engine struct {
	prepared bool
	fds      *descriptors.Table // parsed from the options, unless preset
	args     []string           // command line the engine was started with
	environ  func() []string    // source of the env command

	app *cli.App
}

func (be *B64Engine) prepare(c *cli.Context) error {
	if be.prepared {
		return nil
	}
	logdir := c.GlobalString("logdir")
	if err := util.CreateDirs(logdir); err != nil {
		return err
	}
	err := log.Init(c.GlobalString("loglevel"), def.LogPrefix, logdir,
		c.GlobalBool("logconsole"))
	if err != nil {
		return err
	}
	if be.fds == nil {
		be.fds, err = descriptors.NewTable(c)
		if err != nil {
			return err
		}
	}
	be.app.Writer = be.fds.OutputFP
	be.prepared = true
	return nil
}

func noArgs(c *cli.Context) error {
	if len(c.Args()) > 0 {
		return log.Errorf("superfluous argument(s): %s", strings.Join(c.Args(), " "))
	}
	return nil
}

// New returns a new b64 command engine.
func New() *B64Engine {
	var be B64Engine
	be.environ = os.Environ
	be.app = cli.NewApp()
	be.app.Name = "b64"
	be.app.Usage = "tool to encode and decode base64 (RFC 4648)"
	be.app.Version = def.Version
	be.app.Flags = []cli.Flag{
		descriptors.InputFDFlag,
		descriptors.OutputFDFlag,
		descriptors.StatusFDFlag,
		cli.StringFlag{
			Name:   "loglevel",
			Value:  def.LogLevel,
			Usage:  "logging level {trace, debug, info, warn, error, critical}",
			EnvVar: def.EnvLogLevel,
		},
		cli.StringFlag{
			Name:   "logdir",
			Usage:  "directory to log output",
			EnvVar: def.EnvLogDir,
		},
		cli.BoolFlag{
			Name:   "logconsole",
			Usage:  "enable logging to console",
			EnvVar: def.EnvLogConsole,
		},
	}
	be.app.Before = be.prepare
	ioFlags := []cli.Flag{
		cli.StringFlag{
			Name:  "in",
			Usage: "read input from file instead of input-fd",
		},
		cli.StringFlag{
			Name:  "out",
			Usage: "write output to file instead of output-fd",
		},
		cli.BoolFlag{
			Name:  "force",
			Usage: "overwrite existing output file, write binary data to terminal",
		},
		cli.BoolFlag{
			Name:  "status",
			Usage: "write a JSON status report to status-fd",
		},
	}
	be.app.Commands = []cli.Command{
		{
			Name:  "encode",
			Usage: "Encode input as base64",
			Flags: append([]cli.Flag{
				cli.IntFlag{
					Name:  "wrap",
					Value: def.WrapColumn,
					Usage: "wrap encoded lines after this many characters (0 disables wrapping)",
				},
			}, ioFlags...),
			Before: noArgs,
			Action: func(c *cli.Context) error {
				if c.Int("wrap") < 0 {
					return log.Errorf("--wrap must not be negative: %d", c.Int("wrap"))
				}
				return be.run(c, func(w *output, in []byte) (*report, error) {
					return encode(w, in, c.Int("wrap"))
				})
			},
		},
		{
			Name:   "decode",
			Usage:  "Decode base64 input",
			Flags:  ioFlags,
			Before: noArgs,
			Action: func(c *cli.Context) error {
				return be.run(c, func(w *output, in []byte) (*report, error) {
					return decode(w, in, c.Bool("force"))
				})
			},
		},
		{
			Name:  "size",
			Usage: "Show the output size without producing the output",
			Subcommands: []cli.Command{
				{
					Name:   "encode",
					Usage:  "Show the size of the base64 encoding of the input",
					Flags:  ioFlags[:1],
					Before: noArgs,
					Action: func(c *cli.Context) error {
						return be.size(c, encodedSize)
					},
				},
				{
					Name:   "decode",
					Usage:  "Show the size of the decoded base64 input",
					Flags:  ioFlags[:1],
					Before: noArgs,
					Action: func(c *cli.Context) error {
						return be.size(c, decodedSize)
					},
				},
			},
		},
		{
			Name:            "args",
			Usage:           "Print the command-line arguments",
			SkipFlagParsing: true,
			Action: func(c *cli.Context) error {
				return printArgs(be.fds.OutputFP, be.args)
			},
		},
		{
			Name:   "env",
			Usage:  "Print the environment, sorted by name",
			Before: noArgs,
			Action: func(c *cli.Context) error {
				return printEnv(be.fds.OutputFP, be.environ())
			},
		},
		{
			Name:   "demo",
			Usage:  "Encode and decode a sample message",
			Before: noArgs,
			Action: func(c *cli.Context) error {
				return demo(be.fds.OutputFP, def.DemoInput)
			},
		},
	}
	return &be
}

// Start starts the b64 engine with the given command line arguments,
// args[0] being the name of the binary.
func (be *B64Engine) Start(args []string) error {
	be.args = args
	return be.app.Run(args)
}
