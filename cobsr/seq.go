package cobsr

import (
	"io"
	"iter"
)

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

// EncodeSeq returns a lazy sequence yielding the COBS/R encoding of src,
// consuming src only as far as the consumer pulls.
func EncodeSeq(src iter.Seq[byte]) iter.Seq[byte] {
	return func(yield func(byte) bool) {
		next, stop := iter.Pull(src)
		defer stop()
		drain(&EncodeReader{src: &pullReader{next: next}}, yield)
	}
}

// DecodeSeq returns a lazy sequence yielding the decoding of the
// COBS/R-encoded src. Decoding is best-effort: a zero byte in src is
// treated as end of data.
func DecodeSeq(src iter.Seq[byte]) iter.Seq[byte] {
	return func(yield func(byte) bool) {
		next, stop := iter.Pull(src)
		defer stop()
		drain(&DecodeReader{src: &pullReader{next: next}, lenient: true}, yield)
	}
}

// DecodeSeqChecked returns a lazy sequence yielding the decoding of the
// COBS/R-encoded src with per-item error reporting: a zero byte in src
// yields a final (0, cobs.ErrZeroInEncodedData) pair and then the sequence
// terminates.
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

func drain(r io.ByteReader, yield func(byte) bool) {
	for {
		b, err := r.ReadByte()
		if err != nil || !yield(b) {
			return
		}
	}
}
