// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package b64engine

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/mutecomm/b64/util/descriptors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEngine struct {
	*B64Engine
	dir string
}

// newTestEngine returns an engine whose input, output and status file
// descriptors are files in a new temporary directory.
func newTestEngine(t *testing.T, input string) *testEngine {
	dir, err := ioutil.TempDir("", "b64engine_test")
	require.NoError(t, err)
	inFile := filepath.Join(dir, "input")
	require.NoError(t, ioutil.WriteFile(inFile, []byte(input), 0600))
	var fds descriptors.Table
	fds.InputFP, err = os.Open(inFile)
	require.NoError(t, err)
	fds.OutputFP, err = os.Create(filepath.Join(dir, "output"))
	require.NoError(t, err)
	fds.StatusFP, err = os.Create(filepath.Join(dir, "status"))
	require.NoError(t, err)
	be := New()
	be.fds = &fds
	be.environ = func() []string { return []string{"B=2", "A=1"} }
	return &testEngine{B64Engine: be, dir: dir}
}

func (te *testEngine) close() {
	te.fds.InputFP.Close()
	te.fds.OutputFP.Close()
	te.fds.StatusFP.Close()
	os.RemoveAll(te.dir)
}

func (te *testEngine) read(t *testing.T, name string) string {
	content, err := ioutil.ReadFile(filepath.Join(te.dir, name))
	require.NoError(t, err)
	return string(content)
}

func TestEncodeDecodeFD(t *testing.T) {
	te := newTestEngine(t, "Man")
	defer te.close()
	require.NoError(t, te.Start([]string{"b64", "encode", "--status"}))
	assert.Equal(t, "TWFu\n", te.read(t, "output"))
	assert.Equal(t, `{"Command":"encode","InputLen":3,"OutputLen":4,"Padding":0}`+"\n",
		te.read(t, "status"))

	te2 := newTestEngine(t, "TWE=\n")
	defer te2.close()
	require.NoError(t, te2.Start([]string{"b64", "decode"}))
	assert.Equal(t, "Ma", te2.read(t, "output"))
	assert.Equal(t, "", te2.read(t, "status"))
}

func TestEncodeDecodeFiles(t *testing.T) {
	te := newTestEngine(t, "")
	defer te.close()

	inFile := filepath.Join(te.dir, "in")
	encFile := filepath.Join(te.dir, "in.b64")
	decFile := filepath.Join(te.dir, "in.dec")
	require.NoError(t, ioutil.WriteFile(inFile, []byte("Man"), 0600))

	err := te.Start([]string{"b64", "encode", "--in", inFile, "--out", encFile})
	require.NoError(t, err)
	assert.Equal(t, "TWFu\n", te.read(t, "in.b64"))

	err = te.Start([]string{"b64", "decode", "--in", encFile, "--out", decFile, "--status"})
	require.NoError(t, err)
	assert.Equal(t, "Man", te.read(t, "in.dec"))
	assert.Equal(t, `{"Command":"decode","InputLen":5,"OutputLen":3,"Padding":0}`+"\n",
		te.read(t, "status"))

	// output exists already
	err = te.Start([]string{"b64", "decode", "--in", encFile, "--out", decFile})
	assert.Error(t, err)
	err = te.Start([]string{"b64", "decode", "--in", encFile, "--out", decFile, "--force"})
	assert.NoError(t, err)
	assert.Equal(t, "", te.read(t, "output"))
}

func TestDecodeInvalidLeavesOutput(t *testing.T) {
	te := newTestEngine(t, "")
	defer te.close()

	inFile := filepath.Join(te.dir, "in")
	outFile := filepath.Join(te.dir, "out")
	require.NoError(t, ioutil.WriteFile(inFile, []byte("AB#="), 0600))
	err := te.Start([]string{"b64", "decode", "--in", inFile, "--out", outFile})
	assert.Error(t, err)
	_, err = os.Stat(outFile)
	assert.True(t, os.IsNotExist(err))
}

func TestCommands(t *testing.T) {
	tests := []struct {
		input string
		args  []string
		out   string
	}{
		{"", []string{"demo"}, "SGVsbG8gd2FzaQo=\ntrue\n"},
		{"fooba", []string{"size", "encode"}, "8\n"},
		{"Zm9vYmE=\n", []string{"size", "decode"}, "5\n"},
		{"", []string{"env"}, "A=1\nB=2\n"},
		{"", []string{"args", "-x", "y"}, "0: b64\n1: args\n2: -x\n3: y\n"},
	}
	for _, test := range tests {
		te := newTestEngine(t, test.input)
		args := append([]string{"b64"}, test.args...)
		require.NoError(t, te.Start(args), "%v", test.args)
		assert.Equal(t, test.out, te.read(t, "output"), "%v", test.args)
		te.close()
	}
}

func TestSizeDecodeInvalid(t *testing.T) {
	te := newTestEngine(t, "Zm9vY#E=")
	defer te.close()
	assert.Error(t, te.Start([]string{"b64", "size", "decode"}))
}

func TestSuperfluousArguments(t *testing.T) {
	for _, cmd := range []string{"encode", "decode", "env", "demo"} {
		te := newTestEngine(t, "")
		assert.Error(t, te.Start([]string{"b64", cmd, "extra"}), cmd)
		te.close()
	}
}

func TestInvalidOptions(t *testing.T) {
	te := newTestEngine(t, "Man")
	defer te.close()
	assert.Error(t, te.Start([]string{"b64", "--loglevel", "verbose", "demo"}))
	assert.Error(t, te.Start([]string{"b64", "encode", "--wrap", "-1"}))
	assert.Error(t, New().Start([]string{"b64", "--output-fd", "nofd", "demo"}))
}
