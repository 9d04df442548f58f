package cobs

import (
	"io"
	"iter"
)

// pullReader adapts a pulled byte sequence to io.ByteReader so the stream
// state machines can consume it.
type pullReader struct {
	next func() (byte, bool)
}

func (r *pullReader) ReadByte() (byte, error) {
	b, ok := r.next()
	if !ok {
		return 0, io.EOF
	}
	return b, nil
}

// EncodeSeq returns a lazy sequence yielding the COBS encoding of src,
// consuming src only as far as the consumer pulls.
func EncodeSeq(src iter.Seq[byte]) iter.Seq[byte] {
	return func(yield func(byte) bool) {
		next, stop := iter.Pull(src)
		defer stop()
		drain(&EncodeReader{src: &pullReader{next: next}}, yield)
	}
}

// DecodeSeq returns a lazy sequence yielding the decoding of the
// COBS-encoded src. Decoding is best-effort: a zero byte in src is treated
// as end of data, and a truncated final run simply ends the sequence early.
func DecodeSeq(src iter.Seq[byte]) iter.Seq[byte] {
	return func(yield func(byte) bool) {
		next, stop := iter.Pull(src)
		defer stop()
		drain(&DecodeReader{src: &pullReader{next: next}, lenient: true}, yield)
	}
}

// DecodeSeqChecked returns a lazy sequence yielding the decoding of the
// COBS-encoded src with per-item error reporting: malformed input yields a
// final (0, ErrZeroInEncodedData) or (0, ErrTruncatedEncodedData) pair and
// then the sequence terminates.
func DecodeSeqChecked(src iter.Seq[byte]) iter.Seq2[byte, error] {
	return func(yield func(byte, error) bool) {
		next, stop := iter.Pull(src)
		defer stop()
		dec := &DecodeReader{src: &pullReader{next: next}}
		for {
			b, err := dec.ReadByte()
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(0, err)
				return
			}
			if !yield(b, nil) {
				return
			}
		}
	}
}

// drain pumps a byte reader into a yield function until end of stream or
// the consumer stops pulling.
func drain(r io.ByteReader, yield func(byte) bool) {
	for {
		b, err := r.ReadByte()
		if err != nil || !yield(b) {
			return
		}
	}
}
