// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fuzzer implements a simple bit-flip fuzzer for unit tests.
package fuzzer

// SequentialFuzzer flips every bit of Data in turn and calls TestFunc with
// each mutated copy. TestFunc must not retain the slice it is given.
type SequentialFuzzer struct {
	Data     []byte             // seed input, never modified
	TestFunc func([]byte) error // called once per flipped bit
	Errors   int                // number of mutations TestFunc returned an error for
}

// Fuzz runs TestFunc on all len(Data)*8 single-bit mutations of Data.
// It returns true, if TestFunc returned an error for at least one of them.
func (s *SequentialFuzzer) Fuzz() bool {
	s.Errors = 0
	buf := make([]byte, len(s.Data))
	for i := 0; i < len(s.Data)*8; i++ {
		copy(buf, s.Data)
		buf[i/8] ^= 1 << uint(i%8)
		if err := s.TestFunc(buf); err != nil {
			s.Errors++
		}
	}
	return s.Errors > 0
}
