// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package b64engine

import (
	"bytes"
	"fmt"
	"io"
	"io/ioutil"
	"unicode/utf8"

	"github.com/mutecomm/b64/encode/base64"
	"github.com/mutecomm/b64/log"
	"github.com/mutecomm/b64/util"
	"github.com/urfave/cli"
)

// report is the status report of an encode or decode command.
type report struct {
	Command   string
	InputLen  int
	OutputLen int
	Padding   int
}

// output is the destination of a command.
type output struct {
	io.Writer
	terminal bool // output goes to a terminal
}

// readInput reads all input from inFile or, if inFile is empty, from the
// input file descriptor.
func (be *B64Engine) readInput(inFile string) ([]byte, error) {
	if inFile == "" {
		in, err := ioutil.ReadAll(be.fds.InputFP)
		if err != nil {
			return nil, log.Error(err)
		}
		return in, nil
	}
	in, err := ioutil.ReadFile(inFile)
	if err != nil {
		return nil, log.Error(err)
	}
	return in, nil
}

// run executes the command f with the input and output given by the
// options in c.
func (be *B64Engine) run(
	c *cli.Context,
	f func(w *output, in []byte) (*report, error),
) error {
	in, err := be.readInput(c.String("in"))
	if err != nil {
		return err
	}
	// produce the result before touching the output file, so a failed
	// command leaves it alone
	var buf bytes.Buffer
	w := &output{Writer: &buf}
	outFile := c.String("out")
	if outFile == "" {
		w.terminal = util.IsTerminal(be.fds.OutputFP)
	} else if err := util.CheckOutput(outFile, c.Bool("force")); err != nil {
		return err
	}
	r, err := f(w, in)
	if err != nil {
		return err
	}
	log.Infof("%s: %d bytes in, %d bytes out", r.Command, r.InputLen, r.OutputLen)
	if outFile == "" {
		if _, err := be.fds.OutputFP.Write(buf.Bytes()); err != nil {
			return log.Error(err)
		}
	} else if err := ioutil.WriteFile(outFile, buf.Bytes(), 0644); err != nil {
		return log.Error(err)
	}
	if c.Bool("status") {
		fmt.Fprintf(be.fds.StatusFP, "%s\n", util.SortedJSON(r))
	}
	return nil
}

// encode writes the base64 encoding of in to w, broken into lines of wrap
// characters. Every line is terminated by a newline, wrap == 0 puts the
// whole encoding on one line. Empty input produces no output.
func encode(w *output, in []byte, wrap int) (*report, error) {
	enc := []byte(base64.Encode(in))
	r := &report{
		Command:   "encode",
		InputLen:  len(in),
		OutputLen: len(enc),
		Padding:   (3 - len(in)%3) % 3,
	}
	log.Debugf("encode: %d groups, %d padding", len(enc)/4, r.Padding)
	if wrap == 0 {
		wrap = len(enc)
	}
	for len(enc) > 0 {
		n := wrap
		if n > len(enc) {
			n = len(enc)
		}
		if _, err := w.Write(enc[:n]); err != nil {
			return nil, log.Error(err)
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return nil, log.Error(err)
		}
		enc = enc[n:]
	}
	return r, nil
}

// stripLineBreaks removes all CR and LF characters from in.
func stripLineBreaks(in []byte) []byte {
	out := make([]byte, 0, len(in))
	for _, c := range in {
		if c != '\r' && c != '\n' {
			out = append(out, c)
		}
	}
	return out
}

// decode writes the decoding of the base64 input in to w. Line breaks in
// the input are ignored. Decoded data which is not valid UTF-8 is only
// written to a terminal if force is set.
func decode(w *output, in []byte, force bool) (*report, error) {
	src := stripLineBreaks(in)
	dec, err := base64.Decode(string(src))
	if err != nil {
		return nil, log.Error(err)
	}
	if w.terminal && !force && !utf8.Valid(dec) {
		return nil, log.Error("decode: refusing to write binary data to terminal (use --force)")
	}
	if _, err := w.Write(dec); err != nil {
		return nil, log.Error(err)
	}
	return &report{
		Command:   "decode",
		InputLen:  len(in),
		OutputLen: len(dec),
		Padding:   len(src) - len(bytes.TrimRight(src, string(base64.Pad))),
	}, nil
}

func encodedSize(in []byte) (int, error) {
	return base64.EncodedLen(len(in)), nil
}

// decodedSize validates the complete input, like a size query of
// base64_decode does.
func decodedSize(in []byte) (int, error) {
	dec, err := base64.Decode(string(stripLineBreaks(in)))
	if err != nil {
		return 0, log.Error(err)
	}
	return len(dec), nil
}

func (be *B64Engine) size(c *cli.Context, f func([]byte) (int, error)) error {
	in, err := be.readInput(c.String("in"))
	if err != nil {
		return err
	}
	n, err := f(in)
	if err != nil {
		return err
	}
	fmt.Fprintln(be.fds.OutputFP, n)
	return nil
}
