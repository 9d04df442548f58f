package cobsr

import (
	"bufio"
	"io"
)

// byteReader promotes an io.Reader to an io.ByteReader, reusing an existing
// ReadByte method where the reader has one rather than double-buffering.
func byteReader(r io.Reader) io.ByteReader {
	if br, ok := r.(io.ByteReader); ok {
		return br
	}
	return bufio.NewReader(r)
}
