// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestTwoCallProtocol follows the way a host allocates buffers: query the
// size with a NULL destination first, then call again with a buffer of
// exactly that size.
func TestTwoCallProtocol(t *testing.T) {
	input := []byte("Hello wasi\n")

	size := encodeABI(input, nil)
	assert.Equal(t, 16, size)
	enc := make([]byte, size)
	assert.Equal(t, size, encodeABI(input, enc))
	assert.Equal(t, "SGVsbG8gd2FzaQo=", string(enc))

	size = decodeABI(enc, nil)
	assert.Equal(t, len(input), size)
	dec := make([]byte, size)
	assert.Equal(t, size, decodeABI(enc, dec))
	assert.Equal(t, input, dec)
}

func TestEmptyInput(t *testing.T) {
	assert.Equal(t, 0, encodeABI(nil, nil))
	assert.Equal(t, 0, encodeABI([]byte{}, []byte{}))
	assert.Equal(t, 0, decodeABI(nil, nil))
}

func TestDecodeFailure(t *testing.T) {
	for _, src := range []string{"ABC", "AB#=", "TQ==TWFu"} {
		assert.Equal(t, 0, decodeABI([]byte(src), nil), "size query for %q", src)
		dst := make([]byte, 6)
		assert.Equal(t, 0, decodeABI([]byte(src), dst), "decode of %q", src)
		assert.Equal(t, make([]byte, 6), dst)
	}
}

func TestNoTerminator(t *testing.T) {
	dst := []byte("xxxxxx")
	assert.Equal(t, 4, encodeABI([]byte("Man"), dst))
	assert.Equal(t, "TWFuxx", string(dst))
}
