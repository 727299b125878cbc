package cbor

import (
	"math"
	"math/big"
	"time"
)

// Kind identifies which variant of Value a given value holds.
type Kind int

const (
	// KindInteger holds an arbitrary-precision signed integer.
	KindInteger Kind = iota
	// KindFloat holds a finite double or one of the float specials.
	KindFloat
	// KindBool holds true or false.
	KindBool
	// KindNull holds the null unit value.
	KindNull
	// KindUndefined holds the undefined unit value.
	KindUndefined
	// KindByteString holds an opaque byte sequence.
	KindByteString
	// KindTextString holds a UTF-8 string.
	KindTextString
	// KindArray holds an ordered sequence of Values.
	KindArray
	// KindMap holds a Value-keyed mapping.
	KindMap
	// KindSimpleValue holds a generic major-type-7 simple value.
	KindSimpleValue
	// KindTagged holds a tag number plus its inner Value.
	KindTagged
	// KindDatetime holds a caller-supplied calendar datetime (encode-only).
	KindDatetime
	// KindTimestamp holds a caller-supplied instant in time (encode-only).
	KindTimestamp
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "Integer"
	case KindFloat:
		return "Float"
	case KindBool:
		return "Bool"
	case KindNull:
		return "Null"
	case KindUndefined:
		return "Undefined"
	case KindByteString:
		return "ByteString"
	case KindTextString:
		return "TextString"
	case KindArray:
		return "Array"
	case KindMap:
		return "Map"
	case KindSimpleValue:
		return "SimpleValue"
	case KindTagged:
		return "Tagged"
	case KindDatetime:
		return "Datetime"
	case KindTimestamp:
		return "Timestamp"
	default:
		return "Unknown"
	}
}

// Value is the sum type every value exchanged with the core implements.
// The concrete variants are exactly those enumerated in the data model:
// Integer, Float, Bool, Null, Undefined, ByteString, TextString, Array,
// Map, SimpleValue, Tagged, Datetime, and Timestamp. It is closed at the
// package boundary — callers cannot add new variants — so an unrecognized
// implementation is always an encoder error (UnencodableValueError), never
// a silently-accepted extension point.
type Value interface {
	// Kind reports which variant this value is.
	Kind() Kind

	// sealed prevents types outside this package from implementing Value.
	sealed()
}

// Integer is an arbitrary-precision signed integer. Values whose magnitude
// fits within the native 64-bit unsigned/negative encodings are encoded
// with major type 0 or 1; larger magnitudes fall back to the bignum tags
// (2 and 3).
type Integer struct {
	v *big.Int
}

// Int wraps a signed 64-bit integer as an Integer value.
func Int(v int64) Integer { return Integer{v: big.NewInt(v)} }

// Uint wraps an unsigned 64-bit integer as an Integer value.
func Uint(v uint64) Integer { return Integer{v: new(big.Int).SetUint64(v)} }

// BigInt wraps an arbitrary-precision integer as an Integer value. A nil
// v is treated as zero.
func BigInt(v *big.Int) Integer {
	if v == nil {
		return Integer{v: new(big.Int)}
	}
	return Integer{v: new(big.Int).Set(v)}
}

// Big returns the integer's value as a *big.Int. The returned pointer is
// owned by the caller; mutating it does not affect the Integer.
func (i Integer) Big() *big.Int {
	if i.v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(i.v)
}

// Kind implements Value.
func (Integer) Kind() Kind { return KindInteger }
func (Integer) sealed()    {}

// FloatSpecial distinguishes the non-finite float markers from an ordinary
// finite double.
type FloatSpecial int

const (
	// FloatFinite means the Float carries an ordinary finite value.
	FloatFinite FloatSpecial = iota
	// FloatPositiveInfinity is the +∞ marker.
	FloatPositiveInfinity
	// FloatNegativeInfinity is the -∞ marker.
	FloatNegativeInfinity
	// FloatNaN is the single logical NaN marker; its payload is not
	// preserved across encode/decode.
	FloatNaN
)

// Float holds a finite IEEE-754 double, or one of the three distinguished
// markers (+∞, -∞, NaN).
type Float struct {
	value   float64
	special FloatSpecial
}

// NewFloat wraps a finite double as a Float value. Passing a NaN or an
// infinite value here still produces the matching special marker, since
// there is exactly one logical representation of each.
func NewFloat(v float64) Float {
	switch {
	case math.IsNaN(v):
		return Float{special: FloatNaN}
	case math.IsInf(v, 1):
		return Float{special: FloatPositiveInfinity}
	case math.IsInf(v, -1):
		return Float{special: FloatNegativeInfinity}
	default:
		return Float{value: v, special: FloatFinite}
	}
}

// PositiveInfinity returns the +∞ Float marker.
func PositiveInfinity() Float { return Float{special: FloatPositiveInfinity} }

// NegativeInfinity returns the -∞ Float marker.
func NegativeInfinity() Float { return Float{special: FloatNegativeInfinity} }

// NaN returns the NaN Float marker.
func NaN() Float { return Float{special: FloatNaN} }

// Special reports which, if any, non-finite marker this Float holds.
func (f Float) Special() FloatSpecial { return f.special }

// Value returns the finite value. It is only meaningful when Special()
// is FloatFinite.
func (f Float) Value() float64 { return f.value }

// Kind implements Value.
func (Float) Kind() Kind { return KindFloat }
func (Float) sealed()    {}

// Bool is a CBOR boolean.
type Bool bool

// Kind implements Value.
func (Bool) Kind() Kind { return KindBool }
func (Bool) sealed()    {}

// Null is the CBOR null unit value.
type Null struct{}

// Kind implements Value.
func (Null) Kind() Kind { return KindNull }
func (Null) sealed()    {}

// Undefined is the CBOR undefined unit value.
type Undefined struct{}

// Kind implements Value.
func (Undefined) Kind() Kind { return KindUndefined }
func (Undefined) sealed()    {}

// ByteString is an opaque byte sequence (major type 2).
type ByteString []byte

// Kind implements Value.
func (ByteString) Kind() Kind { return KindByteString }
func (ByteString) sealed()    {}

// TextString is a UTF-8 string (major type 3). Using this type instead of
// ByteString is how a caller disambiguates "bytes" from "text" at the
// encoder boundary.
type TextString string

// Kind implements Value.
func (TextString) Kind() Kind { return KindTextString }
func (TextString) sealed()    {}

// Array is an ordered sequence of Values (major type 4).
type Array []Value

// Kind implements Value.
func (Array) Kind() Kind { return KindArray }
func (Array) sealed()    {}

// MapEntry is one key/value pair of a Map.
type MapEntry struct {
	Key   Value
	Value Value
}

// Map is a Value-keyed mapping (major type 5). Entries preserve insertion
// (or decode) order; the encoder is responsible for producing the
// deterministic key-byte ordering required on the wire. Duplicate keys are
// permitted in the in-memory representation only transiently: the encoder
// rejects them (ErrDuplicateMapKey) and the decoder resolves them by
// keeping the last occurrence.
type Map struct {
	entries []MapEntry
}

// NewMap builds a Map from the given entries, in order.
func NewMap(entries ...MapEntry) Map {
	m := Map{entries: make([]MapEntry, len(entries))}
	copy(m.entries, entries)
	return m
}

// Len returns the number of entries.
func (m Map) Len() int { return len(m.entries) }

// Entries returns the map's entries in their stored order. The returned
// slice is owned by the caller.
func (m Map) Entries() []MapEntry {
	out := make([]MapEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Put appends a key/value pair, replacing an existing entry whose key
// encodes to the same bytes.
func (m Map) Put(key, value Value) Map {
	keyBytes := canonicalKeyBytes(key)
	for i, e := range m.entries {
		if string(canonicalKeyBytes(e.Key)) == string(keyBytes) {
			entries := append([]MapEntry(nil), m.entries...)
			entries[i].Value = value
			return Map{entries: entries}
		}
	}
	entries := append(append([]MapEntry(nil), m.entries...), MapEntry{Key: key, Value: value})
	return Map{entries: entries}
}

// Get looks up the value for a key that encodes to the same bytes as key.
func (m Map) Get(key Value) (Value, bool) {
	keyBytes := canonicalKeyBytes(key)
	for _, e := range m.entries {
		if string(canonicalKeyBytes(e.Key)) == string(keyBytes) {
			return e.Value, true
		}
	}
	return nil, false
}

// Kind implements Value.
func (Map) Kind() Kind { return KindMap }
func (Map) sealed()    {}

// canonicalKeyBytes encodes v for the sole purpose of key comparison.
// Every Value the decoder produces, and every Value a caller is expected
// to use as a map key, is encodable, so the error is ignored in favor of
// an empty-bytes fallback (which only ever collides with another
// unencodable key, itself a caller error surfaced at Encode time).
func canonicalKeyBytes(v Value) []byte {
	b, err := Encode(v)
	if err != nil {
		return nil
	}
	return b
}

// SimpleValue is a generic major-type-7 value: any of 0..255 except the
// reserved codes handled by Bool/Null/Undefined (20-23) and the float
// codes (25-27).
type SimpleValue byte

// Kind implements Value.
func (SimpleValue) Kind() Kind { return KindSimpleValue }
func (SimpleValue) sealed()    {}

// Tagged is the fallback representation of a tagged value for which no
// interpreter is registered: the raw tag number plus its decoded inner
// Value.
type Tagged struct {
	Tag   uint64
	Inner Value
}

// Kind implements Value.
func (Tagged) Kind() Kind { return KindTagged }
func (Tagged) sealed()    {}

// Datetime is an encoder-only variant: a calendar datetime, encoded as
// tag 0 wrapping an RFC 3339 text string. The decoder never produces a
// Datetime; decoding tag 0 yields whatever the registered interpreter
// returns (by default, the text string itself).
type Datetime struct {
	Time time.Time
}

// Kind implements Value.
func (Datetime) Kind() Kind { return KindDatetime }
func (Datetime) sealed()    {}

// Timestamp is an encoder-only variant: an instant in time, encoded as
// tag 1 wrapping an integer (whole seconds) or a double (seconds plus a
// fractional part) depending on whether the instant carries a
// sub-second component.
type Timestamp struct {
	Time time.Time
}

// Kind implements Value.
func (Timestamp) Kind() Kind { return KindTimestamp }
func (Timestamp) sealed()    {}
