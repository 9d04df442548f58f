// Package cobsr implements COBS/R (Consistent Overhead Byte Stuffing,
// Reduced), a COBS variant that often avoids the fixed one-byte overhead of
// plain COBS, a worthwhile saving when most messages are small.
//
// In plain COBS the final length code is partly redundant: a code claiming
// more bytes than remain can only mean corrupt input. COBS/R spends that
// redundancy: when the final data byte's value is at least what the final
// length code would be, the data byte itself is written in the code's place
// and dropped from the end of the output. The decoder detects the
// substitution exactly by noticing that the code overruns the remaining
// input, and emits the code's value as the last payload byte.
//
// For example, 2F A2 00 92 73 26 encodes in plain COBS as
//
//	03 2F A2 04 92 73 26
//
// and in COBS/R as
//
//	03 2F A2 26 92 73
//
// because the final data byte 26 is at least the length code 04 it
// replaces.
//
// Consequently COBS/R decoding never reports truncation, and accepts any
// valid plain-COBS encoding. The package mirrors the cobs package surface
// (bounded, allocating, stream and sequence forms) and shares its error
// values, so errors.Is works across the two families.
package cobsr
