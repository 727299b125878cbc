package cbor

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntegerConstructors(t *testing.T) {
	assert.Equal(t, big.NewInt(42), Int(42).Big())
	assert.Equal(t, new(big.Int).SetUint64(1<<63), Uint(1<<63).Big())

	huge := new(big.Int).Lsh(big.NewInt(1), 128)
	assert.Equal(t, huge, BigInt(huge).Big())

	assert.Equal(t, big.NewInt(0), BigInt(nil).Big())
}

func TestIntegerBigIsOwnedByCaller(t *testing.T) {
	n := Int(5)
	got := n.Big()
	got.SetInt64(999)
	assert.Equal(t, big.NewInt(5), n.Big(), "mutating the returned *big.Int must not affect the Integer")
}

func TestFloatClassification(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want FloatSpecial
	}{
		{"finite", 1.5, FloatFinite},
		{"nan", math.NaN(), FloatNaN},
		{"+inf", math.Inf(1), FloatPositiveInfinity},
		{"-inf", math.Inf(-1), FloatNegativeInfinity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFloat(tt.in)
			assert.Equal(t, tt.want, f.Special())
		})
	}

	assert.Equal(t, FloatPositiveInfinity, PositiveInfinity().Special())
	assert.Equal(t, FloatNegativeInfinity, NegativeInfinity().Special())
	assert.Equal(t, FloatNaN, NaN().Special())
}

func TestMapPutGetDedupesByKeyBytes(t *testing.T) {
	m := NewMap()
	m = m.Put(TextString("a"), Int(1))
	m = m.Put(TextString("b"), Int(2))
	m = m.Put(TextString("a"), Int(99))

	assert.Equal(t, 2, m.Len())

	v, ok := m.Get(TextString("a"))
	assert.True(t, ok)
	assert.Equal(t, Int(99), v)

	_, ok = m.Get(TextString("z"))
	assert.False(t, ok)
}

func TestMapEntriesIsACopy(t *testing.T) {
	m := NewMap(MapEntry{Key: Int(1), Value: Int(2)})
	entries := m.Entries()
	entries[0].Value = Int(999)
	again, _ := m.Get(Int(1))
	assert.Equal(t, Int(2), again)
}

func TestKindsAreDistinct(t *testing.T) {
	values := []Value{
		Int(0), NewFloat(0), Bool(true), Null{}, Undefined{},
		ByteString{1}, TextString("x"), Array{Int(1)}, NewMap(),
		SimpleValue(5), Tagged{Tag: 1, Inner: Int(1)},
	}
	seen := make(map[Kind]bool, len(values))
	for _, v := range values {
		// Every data-model variant implements Value and reports a Kind no
		// other variant shares.
		k := v.Kind()
		assert.False(t, seen[k], "kind %s reported by more than one variant", k)
		seen[k] = true
	}
}
