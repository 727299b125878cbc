package cbor

import (
	"errors"
	"fmt"
)

// Structural decode errors: the byte stream itself is malformed or
// truncated independent of any tag semantics.
var (
	// ErrNoInput is returned when Decode is called with zero bytes.
	ErrNoInput = errors.New("cbor: no input")

	// errTruncatedHeader signals that a major-type/length header's
	// following bytes were cut short. Callers never see this directly;
	// decodeValue reclassifies it against the item being read (an
	// unsigned integer, a negative integer, a tag number, ...).
	errTruncatedHeader = errors.New("cbor: truncated header")

	// errInvalidAdditionalInfo signals an additional-information value
	// that is not legal in a definite-length header (28, 29, or 30).
	errInvalidAdditionalInfo = errors.New("cbor: invalid additional information")

	// ErrTruncatedUnsignedInteger is returned when an unsigned integer's
	// length bytes run past the end of the input.
	ErrTruncatedUnsignedInteger = errors.New("cbor: truncated unsigned integer")

	// ErrTruncatedNegativeInteger is returned when a negative integer's
	// length bytes run past the end of the input.
	ErrTruncatedNegativeInteger = errors.New("cbor: truncated negative integer")

	// ErrTruncatedByteString is returned when a byte string's declared
	// length exceeds the remaining input.
	ErrTruncatedByteString = errors.New("cbor: truncated byte string")

	// ErrTruncatedUtf8String is returned when a text string's declared
	// length exceeds the remaining input.
	ErrTruncatedUtf8String = errors.New("cbor: truncated utf-8 string")

	// ErrTruncatedArray is returned when an array ends before its
	// declared element count is satisfied.
	ErrTruncatedArray = errors.New("cbor: truncated array")

	// ErrTruncatedMap is returned when a map ends before its declared
	// pair count is satisfied.
	ErrTruncatedMap = errors.New("cbor: truncated map")

	// ErrTruncatedSimpleValue is returned when a one-byte-payload simple
	// value's payload byte is missing.
	ErrTruncatedSimpleValue = errors.New("cbor: truncated simple value")

	// ErrTruncatedFloat is returned when a half/single/double float's
	// payload bytes run past the end of the input.
	ErrTruncatedFloat = errors.New("cbor: truncated float")

	// ErrTruncatedTaggedValue is returned when a tag's number bytes run
	// past the end of the input.
	ErrTruncatedTaggedValue = errors.New("cbor: truncated tagged value")

	// ErrOddNumberOfMapValues is returned when an indefinite-length map
	// is terminated after an odd number of decoded items.
	ErrOddNumberOfMapValues = errors.New("cbor: odd number of map values")

	// ErrMaxDepthReached is returned when decoding would recurse past
	// Options.MaxDepth.
	ErrMaxDepthReached = errors.New("cbor: maximum depth reached")

	// ErrDuplicateMapKey is returned by the encoder when two map entries
	// encode to the same key bytes.
	ErrDuplicateMapKey = errors.New("cbor: duplicate map key")
)

// InvalidTypeTagError is returned when the initial byte's major
// type/additional-information combination does not correspond to any
// defined CBOR item.
type InvalidTypeTagError struct {
	Byte byte
}

func (e *InvalidTypeTagError) Error() string {
	return fmt.Sprintf("cbor: invalid type tag 0x%02x", e.Byte)
}

// InvalidUtf8StringError is returned when a text string's bytes are not
// valid UTF-8.
type InvalidUtf8StringError struct {
	Bytes []byte
}

func (e *InvalidUtf8StringError) Error() string {
	return fmt.Sprintf("cbor: invalid utf-8 string (%d bytes)", len(e.Bytes))
}

// IncompleteUtf8StringError is returned when a text string ends in the
// middle of a multi-byte UTF-8 sequence.
type IncompleteUtf8StringError struct {
	Bytes []byte
}

func (e *IncompleteUtf8StringError) Error() string {
	return fmt.Sprintf("cbor: incomplete utf-8 sequence (%d bytes)", len(e.Bytes))
}

// UnencodableValueError is returned when Encode is given a Value whose
// concrete type is not one of the variants in the data model.
type UnencodableValueError struct {
	Value Value
}

func (e *UnencodableValueError) Error() string {
	return fmt.Sprintf("cbor: unencodable value %#v", e.Value)
}

// UnencodableTagError is returned when a Tagged value's tag number falls
// outside [0, 2^64-1]. Go's uint64 representation makes such a tag
// impossible to construct directly, but the error type is kept for tags
// synthesized through other means (reflection, future extension points).
type UnencodableTagError struct {
	Tag uint64
}

func (e *UnencodableTagError) Error() string {
	return fmt.Sprintf("cbor: unencodable tag %d", e.Tag)
}

// InvalidTaggedValueError is returned by a default tag interpreter when
// the inner value's shape does not match what the tag requires (for
// example, tag 0 wrapping something other than a text string).
type InvalidTaggedValueError struct {
	Tag   uint64
	Inner Value
}

func (e *InvalidTaggedValueError) Error() string {
	return fmt.Sprintf("cbor: invalid tagged value for tag %d", e.Tag)
}

// InvalidBase64DataError wraps the external base64 helper's error when
// the tag-34 interpreter fails to decode its text string.
type InvalidBase64DataError struct {
	Reason error
}

func (e *InvalidBase64DataError) Error() string {
	return fmt.Sprintf("cbor: invalid base64 data: %v", e.Reason)
}

func (e *InvalidBase64DataError) Unwrap() error { return e.Reason }

// InvalidBase64UrlDataError wraps the external base64url helper's error
// when the tag-33 interpreter fails to decode its text string.
type InvalidBase64UrlDataError struct {
	Reason error
}

func (e *InvalidBase64UrlDataError) Error() string {
	return fmt.Sprintf("cbor: invalid base64url data: %v", e.Reason)
}

func (e *InvalidBase64UrlDataError) Unwrap() error { return e.Reason }

// InvalidCborDataError wraps a decode failure encountered while the tag-24
// interpreter recursively decodes its embedded byte string.
type InvalidCborDataError struct {
	Reason error
}

func (e *InvalidCborDataError) Error() string {
	return fmt.Sprintf("cbor: invalid embedded cbor data: %v", e.Reason)
}

func (e *InvalidCborDataError) Unwrap() error { return e.Reason }

// InvalidTrailingDataError is returned by the tag-24 interpreter when its
// embedded byte string contains bytes after the one CBOR item it must
// hold in full.
type InvalidTrailingDataError struct {
	Bytes []byte
}

func (e *InvalidTrailingDataError) Error() string {
	return fmt.Sprintf("cbor: invalid trailing data (%d bytes) after embedded cbor item", len(e.Bytes))
}

// CborError annotates an underlying error with the byte offset at which
// it was detected. Decode wraps every failure this way before returning
// it, so a caller decoding a large buffer can report where in it the bad
// bytes were found instead of just what was wrong. DecodeHex passes
// Decode's errors through; its own hex-decoding error is not wrapped.
type CborError struct {
	Err     error
	Offset  int
	Message string
}

func (e *CborError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("cbor error at offset %d: %s: %v", e.Offset, e.Message, e.Err)
	}
	return fmt.Sprintf("cbor error at offset %d: %v", e.Offset, e.Err)
}

func (e *CborError) Unwrap() error { return e.Err }

// NewCborError creates a new CborError.
func NewCborError(err error, offset int, message string) *CborError {
	return &CborError{Err: err, Offset: offset, Message: message}
}
