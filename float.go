package cbor

import (
	"math"

	"github.com/x448/float16"
)

// specialHalfBits returns the canonical half-precision bit pattern the
// encoder emits for a Float special marker.
func specialHalfBits(s FloatSpecial) uint16 {
	switch s {
	case FloatPositiveInfinity:
		return 0x7C00
	case FloatNegativeInfinity:
		return 0xFC00
	default: // FloatNaN
		return 0x7E00
	}
}

// decodeHalfFloat converts a half-precision bit pattern into a Float,
// classifying the IEEE-754 special cases (zero, subnormal, infinity, NaN)
// the way RFC 8949's reference decoders do. Conversion of the finite and
// subnormal range is delegated to x448/float16, the same micro-library
// fxamacker/cbor uses for this purpose, rather than hand-rolled bit
// manipulation.
func decodeHalfFloat(bits uint16) Float {
	f32 := float16.Frombits(bits).Float32()
	return NewFloat(float64(f32))
}

// decodeSingleFloat converts a single-precision bit pattern into a Float.
func decodeSingleFloat(bits uint32) Float {
	return NewFloat(float64(math.Float32frombits(bits)))
}

// decodeDoubleFloat converts a double-precision bit pattern into a Float.
func decodeDoubleFloat(bits uint64) Float {
	return NewFloat(math.Float64frombits(bits))
}
