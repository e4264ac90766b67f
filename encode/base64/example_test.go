// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package base64_test

import (
	"errors"
	"fmt"

	"github.com/mutecomm/b64/encode/base64"
)

func ExampleEncode() {
	fmt.Println(base64.Encode([]byte("Man")))
	fmt.Println(base64.Encode([]byte("Ma")))
	fmt.Println(base64.Encode([]byte("M")))
	// Output:
	// TWFu
	// TWE=
	// TQ==
}

func ExampleDecode() {
	dec, err := base64.Decode("TWFu")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%s\n", dec)

	_, err = base64.Decode("AB#=")
	fmt.Println(errors.Is(err, base64.ErrInvalidCharacter), err)
	// Output:
	// Man
	// true base64: invalid character at input byte 2
}

// This example shows how to size the destination buffers in advance.
func ExampleDecodeTo() {
	src := []byte("Zm9vYmE=")
	n, err := base64.DecodedLen(src)
	if err != nil {
		fmt.Println(err)
		return
	}
	dst := make([]byte, n)
	if _, err := base64.DecodeTo(dst, src); err != nil {
		fmt.Println(err)
		return
	}
	enc := make([]byte, base64.EncodedLen(len(dst)))
	base64.EncodeTo(enc, dst)
	fmt.Println(n, string(dst), string(enc))
	// Output:
	// 5 fooba Zm9vYmE=
}
