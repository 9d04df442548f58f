package cobs

import "io"

// EncodeReader encodes a byte stream incrementally. It pulls raw bytes from
// an underlying reader on demand and yields their COBS encoding, holding at
// most one run (254 bytes) of pending output internally, so the whole input
// never needs to be in memory.
//
// A length code can only be emitted once its run's boundary is known, so
// each pull that exhausts the hold buffer consumes input up to the next
// zero byte, run cap, or end of input.
//
// The first error from the underlying reader is latched; subsequent calls
// return it. A clean end of input surfaces as io.EOF after the final length
// code and run have been drained.
type EncodeReader struct {
	src        io.ByteReader
	err        error
	lastRunMax bool // previous code was 0xFF, suppress the implied zero
	holdR      int
	holdW      int
	hold       [254]byte
}

// NewEncodeReader returns an EncodeReader pulling raw bytes from src.
// If src does not implement io.ByteReader it is wrapped in a bufio.Reader.
func NewEncodeReader(src io.Reader) *EncodeReader {
	return &EncodeReader{src: byteReader(src)}
}

// ReadByte returns the next byte of the encoding.
func (e *EncodeReader) ReadByte() (byte, error) {
	if e.holdW != 0 {
		if e.holdR < e.holdW {
			b := e.hold[e.holdR]
			e.holdR++
			return b, nil
		}
		e.holdR, e.holdW = 0, 0
	}
	if e.err != nil {
		return 0, e.err
	}
	for {
		if e.holdW == 0xFE {
			// Full run. Emit the cap code now; the held bytes drain on
			// subsequent calls.
			e.lastRunMax = true
			return 0xFF, nil
		}
		b, err := e.src.ReadByte()
		eof := false
		if err != nil {
			if err != io.EOF {
				e.err = err
				return 0, err
			}
			eof = true
			b = 0
		}
		if e.lastRunMax {
			e.lastRunMax = false
			if eof {
				// A capped run at end of input carries no trailing code.
				e.err = io.EOF
				return 0, io.EOF
			}
		}
		if b == 0 {
			if eof {
				e.err = io.EOF
			}
			return byte(e.holdW + 1), nil
		}
		e.hold[e.holdW] = b
		e.holdW++
	}
}

// Read implements io.Reader over the encoded stream.
func (e *EncodeReader) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		b, err := e.ReadByte()
		if err != nil {
			if n > 0 && err == io.EOF {
				return n, nil
			}
			return n, err
		}
		p[n] = b
		n++
	}
	return n, nil
}

// DecodeReader decodes a COBS-encoded byte stream incrementally. Unlike
// encoding, decoding needs no lookahead: the state carried between pulls is
// the remaining length of the current run and the previous run's code (to
// interleave the implied zero between runs).
//
// In checked mode (NewDecodeReader), malformed input surfaces
// ErrZeroInEncodedData or ErrTruncatedEncodedData. In lenient mode
// (NewLenientDecodeReader), malformed input reads as a clean io.EOF and the
// output silently stops at the last decodable byte, which suits pipelines
// that drop garbled frames rather than fail.
//
// Errors, including io.EOF, are latched; subsequent calls return the same
// error.
type DecodeReader struct {
	src      io.ByteReader
	err      error
	lenient  bool
	lastRun  byte // previous length code, 0 before the first
	countRun byte // data bytes remaining in the current run
}

// NewDecodeReader returns a DecodeReader that reports malformed input.
// If src does not implement io.ByteReader it is wrapped in a bufio.Reader.
func NewDecodeReader(src io.Reader) *DecodeReader {
	return &DecodeReader{src: byteReader(src)}
}

// NewLenientDecodeReader returns a DecodeReader that treats malformed input
// as end of stream.
func NewLenientDecodeReader(src io.Reader) *DecodeReader {
	return &DecodeReader{src: byteReader(src), lenient: true}
}

// fail latches a malformed-input error, downgraded to io.EOF in lenient
// mode. Real I/O errors from the source bypass this and latch as-is.
func (d *DecodeReader) fail(err error) (byte, error) {
	if d.lenient {
		err = io.EOF
	}
	d.err = err
	return 0, err
}

// ReadByte returns the next byte of the decoded payload.
func (d *DecodeReader) ReadByte() (byte, error) {
	if d.err != nil {
		return 0, d.err
	}
	for {
		b, err := d.src.ReadByte()
		if err != nil {
			if err != io.EOF {
				d.err = err
				return 0, err
			}
			if d.countRun != 0 {
				// A length code promised more data than the stream held.
				return d.fail(ErrTruncatedEncodedData)
			}
			d.err = io.EOF
			return 0, io.EOF
		}
		if b == 0 {
			return d.fail(ErrZeroInEncodedData)
		}
		if d.countRun == 0 {
			lastRun := d.lastRun
			d.lastRun = b
			d.countRun = b - 1
			if lastRun != 0 && lastRun != 0xFF {
				// The previous run ended at a zero byte the encoder consumed.
				return 0, nil
			}
			continue
		}
		d.countRun--
		return b, nil
	}
}

// Read implements io.Reader over the decoded stream.
func (d *DecodeReader) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		b, err := d.ReadByte()
		if err != nil {
			if n > 0 && err == io.EOF {
				return n, nil
			}
			return n, err
		}
		p[n] = b
		n++
	}
	return n, nil
}
