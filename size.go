package cobs

import "math"

// MaxEncodedLen returns the worst-case encoded size for n bytes of input:
// one length code per 254 input bytes, and a single 0x01 code byte for
// empty input. Arithmetic saturates at math.MaxInt instead of wrapping.
func MaxEncodedLen(n int) int {
	if n == 0 {
		return 1
	}
	if n >= math.MaxInt-253 {
		return math.MaxInt
	}
	overhead := ceilDiv(n, 254)
	if n >= math.MaxInt-overhead {
		return math.MaxInt
	}
	return n + overhead
}

// MinEncodedLen returns the best-case encoded size for n bytes of input.
// Standard COBS always pays one byte of overhead.
func MinEncodedLen(n int) int {
	if n >= math.MaxInt-1 {
		return math.MaxInt
	}
	return n + 1
}

// MaxDecodedLen returns the worst-case decoded size for n bytes of encoded
// input, i.e. the input minus its single unavoidable length code.
func MaxDecodedLen(n int) int {
	if n > 1 {
		return n - 1
	}
	return 0
}

// MinDecodedLen returns the best-case decoded size for n bytes of encoded
// input, reached when every run is a full 254 bytes (one length code per
// 255 bytes of encoded data, restoring no implied zeros).
func MinDecodedLen(n int) int {
	if n < 1 {
		return 0
	}
	return n - 1 - (n-1)/255
}
