// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

/*
#include <stddef.h>
*/
import "C"

import (
	"unsafe"

	"github.com/mutecomm/b64/encode/base64"
)

// maxLen bounds the buffers handed over from C.
const maxLen = 1 << 30

// view returns a slice of length n backed by the C memory at p, without
// copying. It returns nil for a NULL pointer.
func view(p unsafe.Pointer, n int) []byte {
	if p == nil {
		return nil
	}
	if n == 0 {
		return []byte{}
	}
	return (*[maxLen]byte)(p)[:n:n]
}

//export base64_encode
func base64_encode(src *C.uchar, n C.size_t, dst *C.char) C.size_t {
	if n > maxLen/4*3 {
		return 0
	}
	in := view(unsafe.Pointer(src), int(n))
	if dst == nil {
		return C.size_t(encodeABI(in, nil))
	}
	out := view(unsafe.Pointer(dst), encodeABI(in, nil))
	return C.size_t(encodeABI(in, out))
}

//export base64_decode
func base64_decode(src *C.char, n C.size_t, dst *C.uchar) C.size_t {
	if n > maxLen {
		return 0
	}
	in := view(unsafe.Pointer(src), int(n))
	if dst == nil {
		return C.size_t(decodeABI(in, nil))
	}
	size, err := base64.DecodedLen(in)
	if err != nil {
		return 0
	}
	return C.size_t(decodeABI(in, view(unsafe.Pointer(dst), size)))
}
