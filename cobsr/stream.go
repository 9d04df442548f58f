package cobsr

import (
	"io"

	"github.com/oy3o/cobs"
)

// EncodeReader encodes a byte stream incrementally, like cobs.EncodeReader
// but producing COBS/R output. The hold buffer keeps at most one run of
// pending output; on top of that, deciding whether the final byte of a
// capped run can absorb the 0xFF code requires one extra byte of lookahead
// into the input (to learn whether the cap coincides with end of input),
// staged in look/lookEOF until the next run starts.
//
// The first error from the underlying reader is latched; a clean end of
// input surfaces as io.EOF once the encoding has been fully drained.
type EncodeReader struct {
	src        io.ByteReader
	err        error
	lastRunMax bool
	hasLook    bool
	look       byte
	lookEOF    bool
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
	// lastValue tracks the most recent data byte of the run being
	// accumulated. Runs never span calls (the hold buffer drains fully
	// between them), so call-local state suffices.
	var lastValue byte
	for {
		if e.holdW == 0xFE {
			// Full run. Peek one byte ahead: if the input ends here and the
			// run's last byte can stand in for the 0xFF code, drop it from
			// the hold buffer. Either way 0xFF goes out now and the staged
			// byte is picked up when the next run starts.
			e.lastRunMax = true
			b, err := e.src.ReadByte()
			if err != nil {
				if err != io.EOF {
					e.err = err
					return 0, err
				}
				e.lookEOF = true
				if lastValue >= 0xFF {
					e.holdW--
				}
			} else {
				e.look = b
			}
			e.hasLook = true
			return 0xFF, nil
		}
		var b byte
		var err error
		if e.hasLook {
			e.hasLook = false
			if e.lookEOF {
				err = io.EOF
			} else {
				b = e.look
			}
		} else {
			b, err = e.src.ReadByte()
		}
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
				e.err = io.EOF
				return 0, io.EOF
			}
		}
		if b == 0 {
			runLen := byte(e.holdW + 1)
			if eof {
				e.err = io.EOF
				if e.holdW > 0 && lastValue >= runLen {
					e.holdW--
					return lastValue, nil
				}
			}
			return runLen, nil
		}
		lastValue = b
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

// DecodeReader decodes a COBS/R-encoded byte stream incrementally. It
// carries the same two bytes of state between pulls as cobs.DecodeReader,
// plus the terminal rule: when the input ends inside a run, the pending
// length code is emitted as the final payload byte instead of reporting
// truncation.
//
// In checked mode (NewDecodeReader), a zero byte in the input surfaces
// cobs.ErrZeroInEncodedData; in lenient mode (NewLenientDecodeReader) a
// zero is treated as end of data, terminal rule included.
type DecodeReader struct {
	src      io.ByteReader
	err      error
	lenient  bool
	lastRun  byte
	countRun byte
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
			d.err = io.EOF
			if d.countRun != 0 {
				// The code overran the input: it was data in disguise.
				return d.lastRun, nil
			}
			return 0, io.EOF
		}
		if b == 0 {
			if d.lenient {
				// A zero ends the data, exactly as running out of input does,
				// terminal rule included.
				d.err = io.EOF
				if d.countRun != 0 {
					return d.lastRun, nil
				}
				return 0, io.EOF
			}
			d.err = cobs.ErrZeroInEncodedData
			return 0, d.err
		}
		if d.countRun == 0 {
			lastRun := d.lastRun
			d.lastRun = b
			d.countRun = b - 1
			if lastRun != 0 && lastRun != 0xFF {
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
