package cobsr

import "github.com/oy3o/cobs"

// MaxEncodedLen returns the worst-case encoded size for n bytes of input.
// The reduction never lengthens a message, so the plain COBS bound holds.
func MaxEncodedLen(n int) int {
	return cobs.MaxEncodedLen(n)
}

// MinEncodedLen returns the best-case encoded size for n bytes of input.
// When the final data byte absorbs the length code, COBS/R costs no
// overhead at all; only empty input still needs its one code byte.
func MinEncodedLen(n int) int {
	if n == 0 {
		return 1
	}
	return n
}

// MaxDecodedLen returns the worst-case decoded size for n bytes of encoded
// input. The trailing length byte may have been elided, so unlike plain
// COBS there is no guaranteed one-byte reduction.
func MaxDecodedLen(n int) int {
	return n
}

// MinDecodedLen returns the best-case decoded size for n bytes of encoded
// input. The worst case is input from a plain COBS encoder, so the plain
// COBS bound holds.
func MinDecodedLen(n int) int {
	return cobs.MinDecodedLen(n)
}
