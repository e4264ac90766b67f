// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package base64

import (
	"errors"
	"fmt"
)

// ErrInvalidLength is raised when the length of an encoded input is not a
// multiple of 4.
var ErrInvalidLength = errors.New("base64: input length is not a multiple of 4")

// ErrInvalidCharacter is raised when an encoded input contains a byte which
// is neither part of the alphabet nor the padding character.
var ErrInvalidCharacter = errors.New("base64: invalid character")

// ErrInvalidPadding is raised when the padding character appears in a
// position other than the last one or two bytes of the final group.
var ErrInvalidPadding = errors.New("base64: invalid padding")

// CorruptInputError describes where decoding failed.
type CorruptInputError struct {
	Err    error // one of ErrInvalidLength, ErrInvalidCharacter, ErrInvalidPadding
	Offset int   // offset of the offending byte in the input
}

func (e *CorruptInputError) Error() string {
	if e.Err == ErrInvalidLength {
		return fmt.Sprintf("%s (length %d)", e.Err, e.Offset)
	}
	return fmt.Sprintf("%s at input byte %d", e.Err, e.Offset)
}

// Unwrap returns the error kind, so errors.Is works on a *CorruptInputError.
func (e *CorruptInputError) Unwrap() error {
	return e.Err
}

func corrupt(kind error, offset int) error {
	return &CorruptInputError{Err: kind, Offset: offset}
}
