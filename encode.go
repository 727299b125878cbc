package cbor

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"math"
	"math/big"
	"sort"
	"time"
)

// Encode produces a fully formed CBOR byte sequence for v. It fails with
// *UnencodableValueError if v's concrete type is not one of the Value
// variants, or with ErrDuplicateMapKey if a Map contains two entries
// whose keys encode to the same bytes.
func Encode(v Value) ([]byte, error) {
	return encodeValue(nil, v)
}

// EncodeHex is Encode followed by hex encoding of the resulting bytes.
func EncodeHex(v Value) (string, error) {
	b, err := Encode(v)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func encodeValue(buf []byte, v Value) ([]byte, error) {
	switch val := v.(type) {
	case Integer:
		return encodeInteger(buf, val)
	case Float:
		return encodeFloat(buf, val), nil
	case Bool:
		if val {
			return append(buf, encodeInitialByte(MajorTypeSimpleOrFloat, byte(simpleCodeTrue))), nil
		}
		return append(buf, encodeInitialByte(MajorTypeSimpleOrFloat, byte(simpleCodeFalse))), nil
	case Null:
		return append(buf, encodeInitialByte(MajorTypeSimpleOrFloat, byte(simpleCodeNull))), nil
	case Undefined:
		return append(buf, encodeInitialByte(MajorTypeSimpleOrFloat, byte(simpleCodeUndefined))), nil
	case ByteString:
		buf = writeHeader(buf, MajorTypeByteString, uint64(len(val)))
		return append(buf, val...), nil
	case TextString:
		buf = writeHeader(buf, MajorTypeTextString, uint64(len(val)))
		return append(buf, val...), nil
	case Array:
		buf = writeHeader(buf, MajorTypeArray, uint64(len(val)))
		for _, elem := range val {
			var err error
			buf, err = encodeValue(buf, elem)
			if err != nil {
				return nil, err
			}
		}
		return buf, nil
	case Map:
		return encodeMap(buf, val)
	case SimpleValue:
		return encodeSimpleValue(buf, val), nil
	case Tagged:
		buf = writeHeader(buf, MajorTypeTag, val.Tag)
		return encodeValue(buf, val.Inner)
	case Datetime:
		buf = writeHeader(buf, MajorTypeTag, uint64(TagDateTimeString))
		return encodeValue(buf, TextString(val.Time.Format(time.RFC3339Nano)))
	case Timestamp:
		return encodeTimestamp(buf, val)
	default:
		return nil, &UnencodableValueError{Value: v}
	}
}

// Additional-information codes for major type 7 booleans/null/undefined.
const (
	simpleCodeFalse     byte = 20
	simpleCodeTrue      byte = 21
	simpleCodeNull      byte = 22
	simpleCodeUndefined byte = 23
)

func encodeInteger(buf []byte, val Integer) ([]byte, error) {
	n := val.Big()
	if n.Sign() >= 0 {
		if n.IsUint64() {
			return writeHeader(buf, MajorTypeUnsignedInteger, n.Uint64()), nil
		}
		buf = writeHeader(buf, MajorTypeTag, uint64(TagUnsignedBignum))
		return encodeValue(buf, ByteString(n.Bytes()))
	}

	// CBOR's negative-integer encoding represents value n as -1-n; this
	// is always non-negative for n < 0.
	encoded := new(big.Int).Neg(n)
	encoded.Sub(encoded, big.NewInt(1))
	if encoded.IsUint64() {
		return writeHeader(buf, MajorTypeNegativeInteger, encoded.Uint64()), nil
	}
	buf = writeHeader(buf, MajorTypeTag, uint64(TagNegativeBignum))
	return encodeValue(buf, ByteString(encoded.Bytes()))
}

// encodeFloat never downcasts a finite double to a narrower width: only
// the three non-finite markers use the half-precision encoding, with
// their canonical bit patterns.
func encodeFloat(buf []byte, val Float) []byte {
	if val.Special() != FloatFinite {
		buf = append(buf, encodeInitialByte(MajorTypeSimpleOrFloat, 25))
		return binary.BigEndian.AppendUint16(buf, specialHalfBits(val.Special()))
	}
	buf = append(buf, encodeInitialByte(MajorTypeSimpleOrFloat, 27))
	return binary.BigEndian.AppendUint64(buf, math.Float64bits(val.Value()))
}

func encodeSimpleValue(buf []byte, val SimpleValue) []byte {
	n := byte(val)
	if n < 24 {
		return append(buf, encodeInitialByte(MajorTypeSimpleOrFloat, n))
	}
	buf = append(buf, encodeInitialByte(MajorTypeSimpleOrFloat, byte(AdditionalInfo8Bit)))
	return append(buf, n)
}

func encodeTimestamp(buf []byte, val Timestamp) ([]byte, error) {
	buf = writeHeader(buf, MajorTypeTag, uint64(TagUnixTime))
	if ns := val.Time.Nanosecond(); ns != 0 {
		seconds := float64(val.Time.Unix()) + float64(ns)*1e-9
		return encodeValue(buf, NewFloat(seconds))
	}
	return encodeValue(buf, Int(val.Time.Unix()))
}

// encodeMap implements the deterministic key-byte ordering required on
// the wire: each key and value is fully encoded first, the resulting
// pairs are sorted by unsigned lexicographic comparison of the key
// bytes, and only then is the header plus the sorted K_i V_i sequence
// written. A pair of equal encoded keys is a map built with duplicate
// keys and fails with ErrDuplicateMapKey.
func encodeMap(buf []byte, m Map) ([]byte, error) {
	entries := m.Entries()

	type encodedPair struct {
		key   []byte
		value []byte
	}

	pairs := make([]encodedPair, len(entries))
	for i, e := range entries {
		key, err := Encode(e.Key)
		if err != nil {
			return nil, err
		}
		value, err := Encode(e.Value)
		if err != nil {
			return nil, err
		}
		pairs[i] = encodedPair{key: key, value: value}
	}

	sort.Slice(pairs, func(i, j int) bool {
		return bytes.Compare(pairs[i].key, pairs[j].key) < 0
	})

	for i := 1; i < len(pairs); i++ {
		if bytes.Equal(pairs[i].key, pairs[i-1].key) {
			return nil, ErrDuplicateMapKey
		}
	}

	buf = writeHeader(buf, MajorTypeMap, uint64(len(pairs)))
	for _, p := range pairs {
		buf = append(buf, p.key...)
		buf = append(buf, p.value...)
	}
	return buf, nil
}
