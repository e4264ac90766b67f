// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package base64

// Alphabet is the standard base64 alphabet. The index of a character is the
// 6-bit value it encodes.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// Pad is the padding character.
const Pad = '='

const invalid = 0xff

// decodeMap maps every byte to its alphabet index or to invalid.
var decodeMap [256]byte

func init() {
	for i := range decodeMap {
		decodeMap[i] = invalid
	}
	for i := 0; i < len(Alphabet); i++ {
		decodeMap[Alphabet[i]] = byte(i)
	}
}

// EncodedLen returns the length of the base64 encoding of n input bytes,
// that is 4*ceil(n/3).
func EncodedLen(n int) int {
	return (n + 2) / 3 * 4
}

// DecodedLen returns the number of bytes src decodes to, that is
// 3*(len(src)/4) minus the number of trailing padding characters.
// It fails with ErrInvalidLength if len(src) is not a multiple of 4.
// DecodedLen only looks at the length and the last two bytes of src, the
// remaining input is validated by DecodeTo.
func DecodedLen(src []byte) (int, error) {
	if len(src)%4 != 0 {
		return 0, corrupt(ErrInvalidLength, len(src))
	}
	n := len(src) / 4 * 3
	if len(src) > 0 && src[len(src)-1] == Pad {
		n--
		if src[len(src)-2] == Pad {
			n--
		}
	}
	return n, nil
}

// EncodeTo writes the base64 encoding of src to dst and returns the number
// of bytes written, which is always EncodedLen(len(src)). No terminator is
// appended. If dst is too short EncodeTo panics.
func EncodeTo(dst, src []byte) int {
	n := EncodedLen(len(src))
	if len(dst) < n {
		panic("base64: EncodeTo(): dst too short")
	}
	di := 0
	full := len(src) / 3 * 3
	for si := 0; si < full; si += 3 {
		val := uint(src[si])<<16 | uint(src[si+1])<<8 | uint(src[si+2])
		dst[di+0] = Alphabet[val>>18&0x3f]
		dst[di+1] = Alphabet[val>>12&0x3f]
		dst[di+2] = Alphabet[val>>6&0x3f]
		dst[di+3] = Alphabet[val&0x3f]
		di += 4
	}
	switch len(src) - full {
	case 1:
		val := uint(src[full]) << 16
		dst[di+0] = Alphabet[val>>18&0x3f]
		dst[di+1] = Alphabet[val>>12&0x3f]
		dst[di+2] = Pad
		dst[di+3] = Pad
	case 2:
		val := uint(src[full])<<16 | uint(src[full+1])<<8
		dst[di+0] = Alphabet[val>>18&0x3f]
		dst[di+1] = Alphabet[val>>12&0x3f]
		dst[di+2] = Alphabet[val>>6&0x3f]
		dst[di+3] = Pad
	}
	return n
}

// DecodeTo decodes the base64 input src into dst and returns the number of
// bytes written. dst must have room for DecodedLen(src) bytes, otherwise
// DecodeTo panics.
//
// Decoding either succeeds completely or fails with a *CorruptInputError
// wrapping ErrInvalidLength, ErrInvalidCharacter or ErrInvalidPadding.
// In the latter case the part of dst written so far is zeroed again and
// n is 0.
func DecodeTo(dst, src []byte) (n int, err error) {
	size, err := DecodedLen(src)
	if err != nil {
		return 0, err
	}
	if len(dst) < size {
		panic("base64: DecodeTo(): dst too short")
	}
	fail := func(kind error, offset int) (int, error) {
		wipe(dst[:n])
		return 0, corrupt(kind, offset)
	}
	for i := 0; i < len(src); i += 4 {
		last := i+4 == len(src)
		var quad [4]byte
		pad := 0
		for j := 0; j < 4; j++ {
			c := src[i+j]
			if c == Pad {
				// only "xx==" and "xxx=" are allowed, and only at the end
				if !last || j < 2 {
					return fail(ErrInvalidPadding, i+j)
				}
				pad++
				continue
			}
			if pad > 0 {
				return fail(ErrInvalidPadding, i+j)
			}
			v := decodeMap[c]
			if v == invalid {
				return fail(ErrInvalidCharacter, i+j)
			}
			quad[j] = v
		}
		val := uint(quad[0])<<18 | uint(quad[1])<<12 | uint(quad[2])<<6 | uint(quad[3])
		dst[n] = byte(val >> 16)
		n++
		if pad < 2 {
			dst[n] = byte(val >> 8)
			n++
		}
		if pad < 1 {
			dst[n] = byte(val)
			n++
		}
	}
	return n, nil
}

// Encode returns the base64 encoding of src.
func Encode(src []byte) string {
	dst := make([]byte, EncodedLen(len(src)))
	EncodeTo(dst, src)
	return string(dst)
}

// Decode returns the bytes represented by the base64 string s.
func Decode(s string) ([]byte, error) {
	src := []byte(s)
	size, err := DecodedLen(src)
	if err != nil {
		return nil, err
	}
	dst := make([]byte, size)
	n, err := DecodeTo(dst, src)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
