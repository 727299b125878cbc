package cbor

import (
	"encoding/hex"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(strings.ReplaceAll(s, " ", ""))
	require.NoError(t, err)
	return b
}

// TestEncodeConcreteScenarios covers the worked examples from the RFC 8949
// appendix-style scenario table: small integers, one million (a 4-byte
// argument), a text string, and an array. The bignum below -(2^64) is
// covered by TestEncodeBignumBelowNegative64BitRange.
func TestEncodeConcreteScenarios(t *testing.T) {
	tests := []struct {
		name string
		in   Value
		want string
	}{
		{"zero", Int(0), "00"},
		{"minus one", Int(-1), "20"},
		{"one million", Int(1000000), "1A 00 0F 42 40"},
		{"IETF text", TextString("IETF"), "64 49 45 54 46"},
		{"small array", Array{Int(1), Int(2), Int(3)}, "83 01 02 03"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.in)
			require.NoError(t, err)
			assert.Equal(t, mustHex(t, tt.want), got)
		})
	}
}

func TestEncodeBignumBelowNegative64BitRange(t *testing.T) {
	// -(2^64) - 1, requiring tag 3 plus a 9-byte big-endian magnitude.
	n := new(big.Int).Lsh(big.NewInt(1), 64)
	n.Neg(n)
	n.Sub(n, big.NewInt(1))

	got, err := Encode(BigInt(n))
	require.NoError(t, err)
	assert.Equal(t, mustHex(t, "C3 49 01 00 00 00 00 00 00 00 00"), got)
}

func TestEncodeMinimumWidthIntegerBoundaries(t *testing.T) {
	tests := []struct {
		n       int64
		wantLen int
	}{
		{23, 1},
		{24, 2},
		{256, 3},
		{65536, 5},
	}
	for _, tt := range tests {
		got, err := Encode(Int(tt.n))
		require.NoError(t, err)
		assert.Len(t, got, tt.wantLen, "encode(%d)", tt.n)
	}

	big2pow32, err := Encode(BigInt(new(big.Int).Lsh(big.NewInt(1), 32)))
	require.NoError(t, err)
	assert.Len(t, big2pow32, 9)
}

func TestEncodeFloatSpecials(t *testing.T) {
	tests := []struct {
		name string
		in   Float
		want string
	}{
		{"+inf", PositiveInfinity(), "F9 7C 00"},
		{"-inf", NegativeInfinity(), "F9 FC 00"},
		{"nan", NaN(), "F9 7E 00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.in)
			require.NoError(t, err)
			assert.Equal(t, mustHex(t, tt.want), got)
		})
	}
}

func TestEncodeFiniteFloatNeverDowncasts(t *testing.T) {
	got, err := Encode(NewFloat(1.5))
	require.NoError(t, err)
	require.Len(t, got, 9, "finite doubles always use the 8-byte double encoding")
	assert.Equal(t, byte(0xFB), got[0])
}

func TestEncodeMapDeterministicKeyOrder(t *testing.T) {
	m := NewMap(
		MapEntry{Key: TextString("b"), Value: Int(2)},
		MapEntry{Key: TextString("a"), Value: Int(1)},
	)
	got, err := Encode(m)
	require.NoError(t, err)
	// {"a": 1, "b": 2} regardless of the insertion order above.
	assert.Equal(t, mustHex(t, "A2 61 61 01 61 62 02"), got)
}

func TestEncodeMapRejectsDuplicateKeys(t *testing.T) {
	m := NewMap(
		MapEntry{Key: Int(1), Value: TextString("first")},
		MapEntry{Key: Int(1), Value: TextString("second")},
	)
	_, err := Encode(m)
	assert.ErrorIs(t, err, ErrDuplicateMapKey)
}

func TestEncodeDatetimeSugar(t *testing.T) {
	tm, err := time.Parse(time.RFC3339, "2013-03-21T20:04:00Z")
	require.NoError(t, err)

	got, err := Encode(Datetime{Time: tm})
	require.NoError(t, err)
	require.True(t, len(got) > 1)
	assert.Equal(t, byte(0xC0), got[0], "tag 0 header byte")
}

func TestEncodeTimestampSugarWholeSeconds(t *testing.T) {
	tm, err := time.Parse(time.RFC3339, "2013-03-21T20:04:00Z")
	require.NoError(t, err)

	got, err := Encode(Timestamp{Time: tm})
	require.NoError(t, err)
	assert.Equal(t, mustHex(t, "C1 1A 51 4B 67 B0"), got)
}

func TestEncodeUnencodableValue(t *testing.T) {
	_, err := Encode(nil)
	var target *UnencodableValueError
	assert.ErrorAs(t, err, &target)
}

func TestEncodeHexRoundTripsWithDecode(t *testing.T) {
	text, err := EncodeHex(Array{Int(1), TextString("x")})
	require.NoError(t, err)

	value, rest, err := DecodeHex(text, nil)
	require.NoError(t, err)
	assert.Empty(t, rest)
	assert.Equal(t, Array{Int(1), TextString("x")}, value)
}
