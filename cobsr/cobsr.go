package cobsr

import "github.com/oy3o/cobs"

// EncodeTo encodes src into the caller-supplied buffer dst and returns the
// written prefix of dst. It performs no allocation. If dst cannot hold the
// encoding at any point, it fails with cobs.ErrOutputBufferTooSmall; size
// dst with MaxEncodedLen to rule that out.
func EncodeTo(dst, src []byte) ([]byte, error) {
	codePos := 0
	writePos := 1
	var lastValue byte

	if codePos >= len(dst) {
		return nil, cobs.ErrOutputBufferTooSmall
	}
	for _, b := range src {
		if writePos-codePos >= 0xFF {
			// The 254-byte run cap applies exactly as in plain COBS; the
			// reduction only ever touches the final code.
			dst[codePos] = 0xFF
			codePos = writePos
			if codePos >= len(dst) {
				return nil, cobs.ErrOutputBufferTooSmall
			}
			writePos = codePos + 1
		}
		if b == 0 {
			dst[codePos] = byte(writePos - codePos)
			codePos = writePos
			if codePos >= len(dst) {
				return nil, cobs.ErrOutputBufferTooSmall
			}
			writePos = codePos + 1
			lastValue = 0
		} else {
			lastValue = b
			if writePos >= len(dst) {
				return nil, cobs.ErrOutputBufferTooSmall
			}
			dst[writePos] = b
			writePos++
		}
	}
	if int(lastValue) >= writePos-codePos {
		// The final data byte doubles as the length code: write it in the
		// code slot and drop it from the tail.
		dst[codePos] = lastValue
		writePos--
	} else {
		dst[codePos] = byte(writePos - codePos)
	}
	return dst[:writePos], nil
}

// Encode encodes src into a freshly allocated buffer. The result contains
// no zero bytes and is never empty.
func Encode(src []byte) []byte {
	dst := make([]byte, 1, MaxEncodedLen(len(src)))
	codePos := 0
	var lastValue byte

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
			lastValue = 0
		} else {
			lastValue = b
			dst = append(dst, b)
		}
	}
	if int(lastValue) >= len(dst)-codePos {
		dst[codePos] = lastValue
		dst = dst[:len(dst)-1]
	} else {
		dst[codePos] = byte(len(dst) - codePos)
	}
	return dst
}

// DecodeTo decodes the COBS/R-encoded src into the caller-supplied buffer
// dst and returns the written prefix of dst. Plain COBS input decodes
// identically; a final length code that overruns the input is read as the
// last payload byte rather than an error, so unlike plain COBS decoding
// this never reports cobs.ErrTruncatedEncodedData.
func DecodeTo(dst, src []byte) ([]byte, error) {
	codePos := 0
	writePos := 0

	for codePos < len(src) {
		code := src[codePos]
		if code == 0 {
			return nil, cobs.ErrZeroInEncodedData
		}
		for i := codePos + 1; i < codePos+int(code); i++ {
			if writePos >= len(dst) {
				return nil, cobs.ErrOutputBufferTooSmall
			}
			if i >= len(src) {
				// The code overruns the input: it was the final data byte in
				// disguise.
				dst[writePos] = code
				writePos++
				break
			}
			b := src[i]
			if b == 0 {
				return nil, cobs.ErrZeroInEncodedData
			}
			dst[writePos] = b
			writePos++
		}
		codePos += int(code)
		if codePos >= len(src) {
			break
		}
		if code < 0xFF {
			if writePos >= len(dst) {
				return nil, cobs.ErrOutputBufferTooSmall
			}
			dst[writePos] = 0
			writePos++
		}
	}
	return dst[:writePos], nil
}

// Decode decodes the COBS/R-encoded src into a freshly allocated buffer.
// Empty input decodes to empty output.
func Decode(src []byte) ([]byte, error) {
	dst := make([]byte, 0, MaxDecodedLen(len(src)))
	codePos := 0

	for codePos < len(src) {
		code := src[codePos]
		if code == 0 {
			return nil, cobs.ErrZeroInEncodedData
		}
		for i := codePos + 1; i < codePos+int(code); i++ {
			if i >= len(src) {
				dst = append(dst, code)
				break
			}
			b := src[i]
			if b == 0 {
				return nil, cobs.ErrZeroInEncodedData
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
