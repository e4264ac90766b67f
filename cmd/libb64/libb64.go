// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// libb64 exports the base64 codec with C linkage. Build it with
//
//	go build -buildmode=c-shared -o libb64.so ./cmd/libb64
//
// which also generates the header libb64.h declaring
//
//	size_t base64_encode(const unsigned char* src, size_t len, char* dst);
//	size_t base64_decode(const char* src, size_t len, unsigned char* dst);
//
// Both functions return the number of bytes written to dst. If dst is NULL
// nothing is written and the required size of dst is returned. A failed
// decoding returns 0. No terminating NUL byte is written.
package main

import (
	"github.com/mutecomm/b64/encode/base64"
)

// encodeABI implements base64_encode on Go slices. A nil dst is a size
// query.
func encodeABI(src, dst []byte) int {
	size := base64.EncodedLen(len(src))
	if dst == nil {
		return size
	}
	return base64.EncodeTo(dst[:size], src)
}

// decodeABI implements base64_decode on Go slices. A nil dst is a size
// query, the input is still validated completely.
func decodeABI(src, dst []byte) int {
	size, err := base64.DecodedLen(src)
	if err != nil {
		return 0
	}
	if dst == nil {
		dst = make([]byte, size)
	}
	n, err := base64.DecodeTo(dst[:size], src)
	if err != nil {
		return 0
	}
	return n
}

func main() {}
