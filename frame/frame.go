package frame

import (
	"bufio"
	"bytes"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/oy3o/cobs"
)

// Delimiter separates frames on the wire. COBS encodings never contain it.
const Delimiter byte = 0x00

// Writer frames payloads onto an underlying io.Writer. Each WriteFrame
// issues a single Write on the underlying writer, so frames stay contiguous
// even when the writer is shared.
type Writer struct {
	w io.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteFrame encodes p and writes it followed by the delimiter.
func (w *Writer) WriteFrame(p []byte) error {
	need := cobs.MaxEncodedLen(len(p)) + 1

	bp := framePool.Get().(*[]byte)
	defer framePool.Put(bp)
	buf := *bp
	if cap(buf) < need {
		buf = make([]byte, 0, need)
		*bp = buf
	}
	buf = buf[:need]

	encoded, err := cobs.EncodeTo(buf[:need-1], p)
	if err != nil {
		return err
	}
	frame := append(encoded, Delimiter)
	_, err = w.w.Write(frame)
	return err
}

// Scanner walks the zero-delimited frames held in a byte slice. A trailing
// span without a closing delimiter counts as a final frame; runs of
// consecutive delimiters (idle bytes on a quiet line) are skipped.
//
//	sc := frame.NewScanner(buf)
//	for sc.Next() {
//		payload, err := sc.Decode()
//		...
//	}
type Scanner struct {
	rest    []byte
	encoded []byte
}

func NewScanner(p []byte) *Scanner {
	s := &Scanner{}
	s.Reset(p)
	return s
}

// Reset rewinds the scanner onto a new slice.
func (s *Scanner) Reset(p []byte) {
	s.rest = p
	s.encoded = nil
}

// Next advances to the next frame, reporting whether one is available.
func (s *Scanner) Next() bool {
	for len(s.rest) > 0 {
		i := bytes.IndexByte(s.rest, Delimiter)
		if i < 0 {
			s.encoded = s.rest
			s.rest = nil
			return true
		}
		span := s.rest[:i]
		s.rest = s.rest[i+1:]
		if len(span) == 0 {
			continue
		}
		s.encoded = span
		return true
	}
	s.encoded = nil
	return false
}

// Encoded returns the current frame still in its encoded form, aliasing the
// scanned slice. Valid until the next call to Next or Reset.
func (s *Scanner) Encoded() []byte {
	return s.encoded
}

// Decode returns the current frame's decoded payload.
func (s *Scanner) Decode() ([]byte, error) {
	return cobs.Decode(s.encoded)
}

// Reader pulls decoded frames off an underlying io.Reader. Frames that fail
// to decode are dropped with a debug log entry and reading continues at the
// next delimiter, so one corrupted frame does not poison the stream.
type Reader struct {
	br *bufio.Reader
}

func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r)}
}

// ReadFrame returns the next decoded frame. A trailing span without a
// closing delimiter counts as a final frame; a clean end of stream returns
// io.EOF.
func (r *Reader) ReadFrame() ([]byte, error) {
	for {
		span, err := r.br.ReadBytes(Delimiter)
		if err != nil && err != io.EOF {
			return nil, err
		}
		atEOF := err == io.EOF
		if n := len(span); n > 0 && span[n-1] == Delimiter {
			span = span[:n-1]
		}
		if len(span) == 0 {
			if atEOF {
				return nil, io.EOF
			}
			continue
		}
		payload, err := cobs.Decode(span)
		if err != nil {
			log.Debug().Err(err).Bytes("encoded", span).Msg("dropping malformed frame")
			if atEOF {
				return nil, io.EOF
			}
			continue
		}
		return payload, nil
	}
}
