package cobs

import "errors"

var (
	// ErrOutputBufferTooSmall indicates that a caller-supplied output buffer
	// cannot hold the result. The caller can retry with a buffer sized via
	// MaxEncodedLen or MaxDecodedLen.
	ErrOutputBufferTooSmall = errors.New("cobs: output buffer too small")

	// ErrZeroInEncodedData indicates that a zero byte was found where
	// well-formed encoded data can never contain one, either as a length
	// code or inside a run. The input is corrupt or not COBS-encoded.
	ErrZeroInEncodedData = errors.New("cobs: zero byte in encoded data")

	// ErrTruncatedEncodedData indicates that a length code claims more
	// bytes than remain in the input. The encoded data was cut short.
	//
	// Only standard COBS decoding produces this error; the cobsr package
	// reinterprets an over-claiming final code as data instead.
	ErrTruncatedEncodedData = errors.New("cobs: unexpected end of encoded data")
)
