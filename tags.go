package cbor

import (
	"encoding/base64"
	"math"
	"math/big"
)

// TagInterpreter transforms the decoded (tag, inner) pair of a tagged
// item into a semantic Value. depth is the nesting depth at which the
// tagged item itself was decoded; an interpreter that recurses back into
// the decoder (as the tag-24 interpreter does, for embedded CBOR) must
// pass depth+1 onward so the recursion composes with Options.MaxDepth
// instead of resetting it.
type TagInterpreter func(tag uint64, inner Value, opts Options, depth uint32) (Value, error)

// DefaultTagInterpreters returns a fresh registry covering tags 0, 1, 2,
// 3, 24, 32, 33, 34, 35, 36, and 55799, as specified. The map is newly
// allocated on every call so callers may freely mutate the result (for
// example, to merge in application-specific tags) without affecting
// other callers.
func DefaultTagInterpreters() map[uint64]TagInterpreter {
	return map[uint64]TagInterpreter{
		uint64(TagDateTimeString):    interpretDateTimeString,
		uint64(TagUnixTime):          interpretUnixTime,
		uint64(TagUnsignedBignum):    interpretUnsignedBignum,
		uint64(TagNegativeBignum):    interpretNegativeBignum,
		uint64(TagEncodedCborData):   interpretEncodedCborData,
		uint64(TagURI):               interpretPassthroughText,
		uint64(TagBase64URL):         interpretBase64URL,
		uint64(TagBase64):            interpretBase64,
		uint64(TagRegularExpression): interpretPassthroughText,
		uint64(TagMIMEMessage):       interpretPassthroughText,
		uint64(TagSelfDescribedCbor): interpretSelfDescribed,
	}
}

func interpretDateTimeString(tag uint64, inner Value, _ Options, _ uint32) (Value, error) {
	if _, ok := inner.(TextString); !ok {
		return nil, &InvalidTaggedValueError{Tag: tag, Inner: inner}
	}
	return inner, nil
}

func interpretPassthroughText(tag uint64, inner Value, _ Options, _ uint32) (Value, error) {
	if _, ok := inner.(TextString); !ok {
		return nil, &InvalidTaggedValueError{Tag: tag, Inner: inner}
	}
	return inner, nil
}

// interpretUnixTime converts tag 1's epoch-based timestamp into an
// integer count of nanoseconds since the epoch. A whole-second integer
// is multiplied by 10^9; a float is rounded to the nearest nanosecond,
// intentionally losing any precision finer than a nanosecond.
func interpretUnixTime(tag uint64, inner Value, _ Options, _ uint32) (Value, error) {
	const nanosPerSecond = 1_000_000_000

	switch v := inner.(type) {
	case Integer:
		seconds := v.Big()
		nanos := new(big.Int).Mul(seconds, big.NewInt(nanosPerSecond))
		return BigInt(nanos), nil
	case Float:
		if v.Special() != FloatFinite {
			return nil, &InvalidTaggedValueError{Tag: tag, Inner: inner}
		}
		nanos := math.Round(v.Value() * nanosPerSecond)
		bigNanos, _ := big.NewFloat(nanos).Int(nil)
		return BigInt(bigNanos), nil
	default:
		return nil, &InvalidTaggedValueError{Tag: tag, Inner: inner}
	}
}

func interpretUnsignedBignum(tag uint64, inner Value, _ Options, _ uint32) (Value, error) {
	bs, ok := inner.(ByteString)
	if !ok {
		return nil, &InvalidTaggedValueError{Tag: tag, Inner: inner}
	}
	return BigInt(new(big.Int).SetBytes(bs)), nil
}

func interpretNegativeBignum(tag uint64, inner Value, _ Options, _ uint32) (Value, error) {
	bs, ok := inner.(ByteString)
	if !ok {
		return nil, &InvalidTaggedValueError{Tag: tag, Inner: inner}
	}
	magnitude := new(big.Int).SetBytes(bs)
	result := new(big.Int).Add(magnitude, big.NewInt(1))
	result.Neg(result)
	return BigInt(result), nil
}

// interpretEncodedCborData implements tag 24: the inner byte string must
// hold exactly one complete CBOR item, which is decoded recursively at
// depth+1 so embedded-CBOR nesting composes with Options.MaxDepth rather
// than resetting the counter (see the TagInterpreter doc comment).
func interpretEncodedCborData(tag uint64, inner Value, opts Options, depth uint32) (Value, error) {
	bs, ok := inner.(ByteString)
	if !ok {
		return nil, &InvalidTaggedValueError{Tag: tag, Inner: inner}
	}

	value, rest, err := decodeValue([]byte(bs), opts, depth+1)
	if err != nil {
		return nil, &InvalidCborDataError{Reason: err}
	}
	if len(rest) != 0 {
		return nil, &InvalidTrailingDataError{Bytes: rest}
	}
	return value, nil
}

func interpretBase64URL(tag uint64, inner Value, _ Options, _ uint32) (Value, error) {
	text, ok := inner.(TextString)
	if !ok {
		return nil, &InvalidTaggedValueError{Tag: tag, Inner: inner}
	}
	decoded, err := base64.RawURLEncoding.DecodeString(string(text))
	if err != nil {
		if decoded, err = base64.URLEncoding.DecodeString(string(text)); err != nil {
			return nil, &InvalidBase64UrlDataError{Reason: err}
		}
	}
	return ByteString(decoded), nil
}

func interpretBase64(tag uint64, inner Value, _ Options, _ uint32) (Value, error) {
	text, ok := inner.(TextString)
	if !ok {
		return nil, &InvalidTaggedValueError{Tag: tag, Inner: inner}
	}
	decoded, err := base64.StdEncoding.DecodeString(string(text))
	if err != nil {
		if decoded, err = base64.RawStdEncoding.DecodeString(string(text)); err != nil {
			return nil, &InvalidBase64DataError{Reason: err}
		}
	}
	return ByteString(decoded), nil
}

func interpretSelfDescribed(_ uint64, inner Value, _ Options, _ uint32) (Value, error) {
	return inner, nil
}
