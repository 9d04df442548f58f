package cobsr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oy3o/cobs"
	"github.com/oy3o/cobs/cobsr"
)

// fill returns n non-zero bytes cycling through 0x01..0xFF.
func fill(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(i%255 + 1)
	}
	return out
}

func cat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

type mapping struct {
	name    string
	raw     []byte
	encoded []byte
}

func encodeMappings() []mapping {
	raw252 := fill(252)
	raw253 := fill(253)
	raw254 := fill(254)
	raw255 := fill(255)
	return []mapping{
		{"empty", []byte{}, []byte{0x01}},
		{"0x01 stays framed", []byte{0x01}, []byte{0x02, 0x01}},
		{"0x02 absorbs code", []byte{0x02}, []byte{0x02}},
		{"0x03 absorbs code", []byte{0x03}, []byte{0x03}},
		{"0x7E absorbs code", []byte{0x7E}, []byte{0x7E}},
		{"0x7F absorbs code", []byte{0x7F}, []byte{0x7F}},
		{"0x80 absorbs code", []byte{0x80}, []byte{0x80}},
		{"0xD5 absorbs code", []byte{0xD5}, []byte{0xD5}},
		{"0xFE absorbs code", []byte{0xFE}, []byte{0xFE}},
		{"0xFF absorbs code", []byte{0xFF}, []byte{0xFF}},
		{"one printable", []byte("1"), []byte("1")},
		{"small final byte", []byte("\x05\x04\x03\x02\x01"), []byte("\x06\x05\x04\x03\x02\x01")},
		{"large final byte", []byte("12345"), []byte("51234")},
		{"zero then small tail", []byte("12345\x00\x04\x03\x02\x01"), []byte("\x0612345\x05\x04\x03\x02\x01")},
		{"zero then large tail", []byte("12345\x006789"), []byte("\x06123459678")},
		{"leading zero", []byte("\x0012345\x006789"), []byte("\x01\x06123459678")},
		{"trailing zero", []byte("12345\x006789\x00"), []byte("\x0612345\x056789\x01")},
		{"one zero", []byte{0x00}, []byte{0x01, 0x01}},
		{"two zeros", []byte{0x00, 0x00}, []byte{0x01, 0x01, 0x01}},
		{"three zeros", []byte{0x00, 0x00, 0x00}, []byte{0x01, 0x01, 0x01, 0x01}},
		{"253 non-zero, small tail", raw253, cat([]byte{0xFE}, raw253)},
		{"253 non-zero, 0xFF tail", cat(raw252, []byte{0xFF}), cat([]byte{0xFF}, raw252)},
		{"254 non-zero, small tail", raw254, cat([]byte{0xFF}, raw254)},
		{"254 non-zero, 0xFF tail", cat(raw253, []byte{0xFF}), cat([]byte{0xFF}, raw253)},
		{"255 non-zero", raw255, cat([]byte{0xFF}, raw255[:254], []byte{0xFF})},
		{"254 non-zero then zero", cat(raw254, []byte{0x00}), cat([]byte{0xFF}, raw254, []byte{0x01, 0x01})},
	}
}

// Encoded forms this encoder never emits, such as plain COBS output, that
// the decoder must still accept.
func decodeOnlyMappings() []mapping {
	raw254 := fill(254)
	return []mapping{
		{"empty encoding", []byte{}, []byte{}},
		{"plain cobs small message", []byte("12345"), []byte("\x0612345")},
		{"plain cobs large final byte", []byte("12345\x006789"), []byte("\x0612345\x056789")},
		{"redundant trailing code", raw254, cat([]byte{0xFF}, raw254, []byte{0x01})},
		{"terminal code as data", []byte("AAA\x05"), []byte("\x05AAA")},
		{"overlong code alone", []byte{0x05}, []byte{0x05}},
	}
}

func TestEncodePredefined(t *testing.T) {
	for _, m := range encodeMappings() {
		t.Run(m.name, func(t *testing.T) {
			assert.Equal(t, m.encoded, cobsr.Encode(m.raw))

			buf := make([]byte, cobsr.MaxEncodedLen(len(m.raw)))
			out, err := cobsr.EncodeTo(buf, m.raw)
			require.NoError(t, err)
			assert.Equal(t, m.encoded, out)
		})
	}
}

func TestDecodePredefined(t *testing.T) {
	all := append(encodeMappings(), decodeOnlyMappings()...)
	for _, m := range all {
		t.Run(m.name, func(t *testing.T) {
			out, err := cobsr.Decode(m.encoded)
			require.NoError(t, err)
			assert.Equal(t, m.raw, out)

			buf := make([]byte, cobsr.MaxDecodedLen(len(m.encoded)))
			bounded, err := cobsr.DecodeTo(buf, m.encoded)
			require.NoError(t, err)
			assert.Equal(t, m.raw, bounded)
		})
	}
}

// The decoder accepts every plain COBS encoding unchanged; the reduction
// only reinterprets inputs plain COBS would reject as truncated.
func TestDecodeAcceptsPlainCobs(t *testing.T) {
	raws := [][]byte{
		{},
		[]byte("12345"),
		[]byte("12345\x006789"),
		{0x00, 0x00, 0x00},
		fill(253),
		fill(254),
		fill(255),
		cat(fill(254), []byte{0x00}),
	}
	for _, raw := range raws {
		enc := cobs.Encode(raw)
		out, err := cobsr.Decode(enc)
		require.NoError(t, err)
		assert.Equal(t, raw, out)
	}
}

func TestDecodeMalformed(t *testing.T) {
	cases := []struct {
		name    string
		encoded []byte
	}{
		{"zero length code", []byte("\x00sAAA")},
		{"zero inside run", []byte("\x04a\x00b")},
		{"zero at end", []byte("\x02a\x00")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := cobsr.Decode(tc.encoded)
			assert.ErrorIs(t, err, cobs.ErrZeroInEncodedData)

			buf := make([]byte, len(tc.encoded)+1)
			_, err = cobsr.DecodeTo(buf, tc.encoded)
			assert.ErrorIs(t, err, cobs.ErrZeroInEncodedData)
		})
	}
}

func TestEncodeToBufferTooSmall(t *testing.T) {
	// Five single-byte zero runs need six bytes of output.
	raw := []byte{0x01, 0x01, 0x01, 0x01, 0x01}

	_, err := cobsr.EncodeTo(make([]byte, 5), raw)
	assert.ErrorIs(t, err, cobs.ErrOutputBufferTooSmall)

	out, err := cobsr.EncodeTo(make([]byte, 6), raw)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x06, 0x01, 0x01, 0x01, 0x01, 0x01}, out)

	_, err = cobsr.EncodeTo(nil, nil)
	assert.ErrorIs(t, err, cobs.ErrOutputBufferTooSmall)
}

func TestDecodeToBufferTooSmall(t *testing.T) {
	encoded := cobsr.Encode([]byte("12345\x006789"))

	_, err := cobsr.DecodeTo(make([]byte, 9), encoded)
	assert.ErrorIs(t, err, cobs.ErrOutputBufferTooSmall)

	out, err := cobsr.DecodeTo(make([]byte, 10), encoded)
	require.NoError(t, err)
	assert.Equal(t, []byte("12345\x006789"), out)
}

// The reduction never costs a byte over plain COBS and saves exactly one
// when the final data byte can absorb the final length code.
func TestEncodeSavesAtMostOneByte(t *testing.T) {
	for _, m := range encodeMappings() {
		plain := cobs.Encode(m.raw)
		reduced := cobsr.Encode(m.raw)
		saving := len(plain) - len(reduced)
		assert.Contains(t, []int{0, 1}, saving, m.name)
	}

	assert.Len(t, cobsr.Encode([]byte("12345")), 5)
	assert.Len(t, cobs.Encode([]byte("12345")), 6)
}

func TestEncodedContainsNoZero(t *testing.T) {
	for _, m := range encodeMappings() {
		for _, b := range cobsr.Encode(m.raw) {
			if b == 0 {
				t.Fatalf("%s: zero byte in encoding", m.name)
			}
		}
	}
}
