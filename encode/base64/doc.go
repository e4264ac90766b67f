// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package base64 implements the standard base64 encoding as defined in
RFC 4648, section 4.

Every 3 input bytes are encoded as 4 characters of the alphabet
A-Z, a-z, 0-9, '+' and '/'. A final group of 1 or 2 bytes is padded with
'=' so that the encoded length is always a multiple of 4.

Decoding is strict: the input length must be a multiple of 4, only
alphabet characters are allowed and padding may only appear at the end
of the last group. Line breaks and other whitespace are rejected.

The package holds no state. All functions are safe for concurrent use,
as long as input and output buffers do not overlap.
*/
package base64
