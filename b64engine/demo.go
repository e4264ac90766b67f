// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package b64engine

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/mutecomm/b64/encode/base64"
	"github.com/mutecomm/b64/log"
)

// printArgs writes every argument as "<index>: <arg>", args[0] included.
func printArgs(w io.Writer, args []string) error {
	for i, arg := range args {
		if _, err := fmt.Fprintf(w, "%d: %s\n", i, arg); err != nil {
			return log.Error(err)
		}
	}
	return nil
}

// printEnv writes the environment env one KEY=VALUE per line, sorted.
func printEnv(w io.Writer, env []string) error {
	sorted := append([]string(nil), env...)
	sort.Strings(sorted)
	for _, kv := range sorted {
		if _, err := fmt.Fprintln(w, kv); err != nil {
			return log.Error(err)
		}
	}
	return nil
}

// demo encodes msg, prints the encoding, decodes it again and prints
// whether the round trip reproduced msg.
func demo(w io.Writer, msg string) error {
	enc := base64.Encode([]byte(msg))
	if _, err := fmt.Fprintln(w, enc); err != nil {
		return log.Error(err)
	}
	dec, err := base64.Decode(enc)
	if err != nil {
		// cannot happen for our own encoding
		return log.Critical(err)
	}
	if _, err := fmt.Fprintln(w, bytes.Equal(dec, []byte(msg))); err != nil {
		return log.Error(err)
	}
	return nil
}
