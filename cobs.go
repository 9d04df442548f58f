package cobs

// EncodeTo encodes src into the caller-supplied buffer dst and returns the
// written prefix of dst. It performs no allocation. If dst cannot hold the
// encoding at any point, it fails with ErrOutputBufferTooSmall; size dst
// with MaxEncodedLen to rule that out.
func EncodeTo(dst, src []byte) ([]byte, error) {
	codePos := 0
	writePos := 1

	// Position 0 is reserved for the first length code, so even an empty
	// input needs one byte of room.
	if codePos >= len(dst) {
		return nil, ErrOutputBufferTooSmall
	}
	for _, b := range src {
		if writePos-codePos >= 0xFF {
			// Run reached the 254-byte cap. Finalize it with the no-implied-zero
			// code and reserve a new slot.
			dst[codePos] = 0xFF
			codePos = writePos
			if codePos >= len(dst) {
				return nil, ErrOutputBufferTooSmall
			}
			writePos = codePos + 1
		}
		if b == 0 {
			// The zero itself is not copied; the decoder restores it from the
			// length code.
			dst[codePos] = byte(writePos - codePos)
			codePos = writePos
			if codePos >= len(dst) {
				return nil, ErrOutputBufferTooSmall
			}
			writePos = codePos + 1
		} else {
			if writePos >= len(dst) {
				return nil, ErrOutputBufferTooSmall
			}
			dst[writePos] = b
			writePos++
		}
	}
	dst[codePos] = byte(writePos - codePos)
	return dst[:writePos], nil
}

// Encode encodes src into a freshly allocated buffer. The result contains
// no zero bytes and is never empty.
func Encode(src []byte) []byte {
	dst := make([]byte, 1, MaxEncodedLen(len(src)))
	codePos := 0

	for _, b := range src {
		if len(dst)-codePos >= 0xFF {
			dst[codePos] = 0xFF
			codePos = len(dst)
			dst = append(dst, 0)
		}
		if b == 0 {
			dst[codePos] = byte(len(dst) - codePos)
			codePos = len(dst)
			dst = append(dst, 0)
		} else {
			dst = append(dst, b)
		}
	}
	dst[codePos] = byte(len(dst) - codePos)
	return dst
}

// DecodeTo decodes the COBS-encoded src into the caller-supplied buffer dst
// and returns the written prefix of dst. It performs no allocation.
//
// It fails with ErrZeroInEncodedData if src contains a zero byte anywhere,
// ErrTruncatedEncodedData if a length code claims more bytes than remain,
// and ErrOutputBufferTooSmall if dst cannot hold the result; size dst with
// MaxDecodedLen to rule out the latter.
func DecodeTo(dst, src []byte) ([]byte, error) {
	codePos := 0
	writePos := 0

	for codePos < len(src) {
		code := src[codePos]
		if code == 0 {
			return nil, ErrZeroInEncodedData
		}
		for i := codePos + 1; i < codePos+int(code); i++ {
			if i >= len(src) {
				return nil, ErrTruncatedEncodedData
			}
			b := src[i]
			if b == 0 {
				return nil, ErrZeroInEncodedData
			}
			if writePos >= len(dst) {
				return nil, ErrOutputBufferTooSmall
			}
			dst[writePos] = b
			writePos++
		}
		codePos += int(code)
		if codePos >= len(src) {
			// End of input. The final run has no implied zero.
			break
		}
		if code < 0xFF {
			// Restore the zero byte the encoder consumed.
			if writePos >= len(dst) {
				return nil, ErrOutputBufferTooSmall
			}
			dst[writePos] = 0
			writePos++
		}
	}
	return dst[:writePos], nil
}

// Decode decodes the COBS-encoded src into a freshly allocated buffer.
// Empty input decodes to empty output.
func Decode(src []byte) ([]byte, error) {
	dst := make([]byte, 0, MaxDecodedLen(len(src)))
	codePos := 0

	for codePos < len(src) {
		code := src[codePos]
		if code == 0 {
			return nil, ErrZeroInEncodedData
		}
		for i := codePos + 1; i < codePos+int(code); i++ {
			if i >= len(src) {
				return nil, ErrTruncatedEncodedData
			}
			b := src[i]
			if b == 0 {
				return nil, ErrZeroInEncodedData
			}
			dst = append(dst, b)
		}
		codePos += int(code)
		if codePos < len(src) && code < 0xFF {
			dst = append(dst, 0)
		}
	}
	return dst, nil
}
