// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package def defines all default values used in b64.
package def

import (
	"github.com/mutecomm/b64/def/version"
)

// Version is the current b64 version.
const Version = version.Number

// LogLevel is the default logging level.
const LogLevel = "info"

// LogPrefix is the command prefix used by the b64 tool in log messages.
const LogPrefix = "b64  "

// WrapColumn is the default line length of encoded output (as in MIME).
// A value of 0 disables line wrapping.
const WrapColumn = 76

// Environment variables which can be used instead of the global options.
const (
	EnvLogLevel   = "B64_LOGLEVEL"
	EnvLogDir     = "B64_LOGDIR"
	EnvLogConsole = "B64_LOGCONSOLE"
)

// DemoInput is the message encoded and decoded by the demo command.
const DemoInput = "Hello wasi\n"
