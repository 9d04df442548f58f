// Package cobs implements Consistent Overhead Byte Stuffing (COBS), a
// framing encoding that transforms an arbitrary byte sequence into one
// containing no zero bytes, so that 0x00 can serve as an unambiguous frame
// delimiter in a byte stream.
//
// The encoding replaces every zero byte with a one-byte length code giving
// the distance to the next length code. A run of non-zero bytes is capped at
// 254 bytes; a length code of 0xFF marks a full-length run with no implied
// zero after it. Encoding costs at least one byte of overhead, and at most
// one byte per 254 bytes of input.
//
// Three interface shapes are provided, all encoding the same format:
//
//   - EncodeTo/DecodeTo write into a caller-supplied buffer, sized with
//     MaxEncodedLen/MaxDecodedLen, and fail with ErrOutputBufferTooSmall
//     rather than growing.
//   - Encode/Decode allocate their output.
//   - EncodeReader/DecodeReader produce output incrementally from an
//     io.Reader source, holding at most one run of lookahead. EncodeSeq,
//     DecodeSeq and DecodeSeqChecked expose the same machinery as iterator
//     adapters.
//
// The sibling package cobsr implements COBS/R, a variant that elides the
// final length byte when the last data byte can stand in for it. A COBS/R
// decoder accepts anything a COBS encoder produces.
package cobs
