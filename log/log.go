// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/cihub/seelog"
)

// PrefixLen is the required length of the command prefix passed to Init.
const PrefixLen = 5

var logger seelog.LoggerInterface

func init() {
	// disable logger by default
	logger = seelog.Disabled
}

// Config returns the seelog XML configuration for the given logging level
// and command prefix. If logFile is not empty a size-based rolling file
// output is added, if logToConsole is true a console output is added.
func Config(logLevel, cmdPrefix, logFile string, logToConsole bool) string {
	var console, file string
	if logToConsole {
		console = "<console />"
	}
	if logFile != "" {
		file = fmt.Sprintf("<rollingfile type=\"size\" filename=\"%s\" maxsize=\"10485760\" maxrolls=\"3\" />",
			logFile)
	}
	config := `
<seelog type="sync" minlevel="%s">
	<outputs formatid="all">
		%s
		%s
	</outputs>
	<formats>
		<format id="all" format="%%UTCDate %%UTCTime [%s] [%%LEV] %%Msg%%n" />
	</formats>
</seelog>`
	return fmt.Sprintf(config, logLevel, console, file, cmdPrefix)
}

// Init initializes the logging framework to the given logging level.
// If logDir is not empty logging is done to the file <binary>.log in that
// directory. If logToConsole is true the console logging is activated.
// cmdPrefix must be PrefixLen characters long, pad it with spaces if
// necessary. Without log directory and console the logger is disabled.
// If the given level is invalid or the initialization fails, an
// error is returned and the current logger stays in place.
func Init(logLevel, cmdPrefix, logDir string, logToConsole bool) error {
	if _, found := seelog.LogLevelFromString(logLevel); !found {
		return fmt.Errorf("log: level '%s' is invalid", logLevel)
	}
	if len(cmdPrefix) != PrefixLen {
		return fmt.Errorf("log: len(cmdPrefix) must be %d: \"%s\"", PrefixLen, cmdPrefix)
	}
	if logDir == "" && !logToConsole {
		UseLogger(seelog.Disabled)
		return nil
	}
	var file string
	if logDir != "" {
		file = filepath.Join(logDir, filepath.Base(os.Args[0])+".log")
	}
	newLogger, err := seelog.LoggerFromConfigAsString(Config(logLevel, cmdPrefix, file, logToConsole))
	if err != nil {
		return err
	}
	newLogger.SetAdditionalStackDepth(1)
	UseLogger(newLogger)
	Infof("%s started (built with %s %s for %s/%s)", os.Args[0],
		runtime.Compiler, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	return nil
}

// Flush flushes all the messages in the logger.
func Flush() {
	logger.Flush()
}

// Critical formats message using the default formats for its operands and
// writes to default logger with log level = Critical.
// If v is a single error, that error is returned unchanged.
func Critical(v ...interface{}) error {
	if len(v) == 1 {
		if err, ok := v[0].(error); ok {
			logger.Critical(err)
			return err
		}
	}
	return logger.Critical(v...)
}

// Criticalf formats message according to format specifier and writes to
// default logger with log level = Critical.
func Criticalf(format string, params ...interface{}) error {
	return logger.Criticalf(format, params...)
}

// Error formats message using the default formats for its operands and writes
// to default logger with log level = Error.
// If v is a single error, that error is returned unchanged, so that callers
// can still match it with errors.Is.
func Error(v ...interface{}) error {
	if len(v) == 1 {
		if err, ok := v[0].(error); ok {
			logger.Error(err)
			return err
		}
	}
	return logger.Error(v...)
}

// Errorf formats message according to format specifier and writes to default
// logger with log level = Error.
func Errorf(format string, params ...interface{}) error {
	return logger.Errorf(format, params...)
}

// Warn formats message using the default formats for its operands and writes
// to default logger with log level = Warn.
func Warn(v ...interface{}) error {
	if len(v) == 1 {
		if err, ok := v[0].(error); ok {
			logger.Warn(err)
			return err
		}
	}
	return logger.Warn(v...)
}

// Warnf formats message according to format specifier and writes to default
// logger with log level = Warn.
func Warnf(format string, params ...interface{}) error {
	return logger.Warnf(format, params...)
}

// Info formats message using the default formats for its operands and writes
// to default logger with log level = Info.
func Info(v ...interface{}) {
	logger.Info(v...)
}

// Infof formats message according to format specifier and writes to default
// logger with log level = Info.
func Infof(format string, params ...interface{}) {
	logger.Infof(format, params...)
}

// Debug formats message using the default formats for its operands and writes
// to default logger with log level = Debug.
func Debug(v ...interface{}) {
	logger.Debug(v...)
}

// Debugf formats message according to format specifier and writes to default
// logger with log level = Debug.
func Debugf(format string, params ...interface{}) {
	logger.Debugf(format, params...)
}

// Trace formats message using the default formats for its operands and writes
// to default logger with log level = Trace.
func Trace(v ...interface{}) {
	logger.Trace(v...)
}

// Tracef formats message according to format specifier and writes to default
// logger with log level = Trace.
func Tracef(format string, params ...interface{}) {
	logger.Tracef(format, params...)
}

// UseLogger replaces the package logger with newLogger.
func UseLogger(newLogger seelog.LoggerInterface) {
	logger.Flush()
	logger = newLogger
}

// SetLogWriter logs everything down to level trace to writer.
func SetLogWriter(writer io.Writer) error {
	if writer == nil {
		return errors.New("log: nil writer")
	}
	newLogger, err := seelog.LoggerFromWriterWithMinLevel(writer, seelog.TraceLvl)
	if err != nil {
		return err
	}
	UseLogger(newLogger)
	return nil
}
