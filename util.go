package cobs

import (
	"bufio"
	"io"

	"golang.org/x/exp/constraints"
)

// ceilDiv divides n by d, rounding up. Callers guard against overflow of
// n+d-1 themselves.
func ceilDiv[T constraints.Integer](n, d T) T { return (n + d - 1) / d }

// byteReader promotes an io.Reader to an io.ByteReader, reusing an existing
// ReadByte method where the reader has one rather than double-buffering.
func byteReader(r io.Reader) io.ByteReader {
	if br, ok := r.(io.ByteReader); ok {
		return br
	}
	return bufio.NewReader(r)
}
