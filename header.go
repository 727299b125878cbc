package cbor

import (
	"encoding/binary"
	"math"
)

// writeHeader appends the minimum-width major-type/length header to buf and
// returns the extended buffer. This is the encoder's sole entry point for
// producing an initial byte plus optional following-length bytes; every
// item written by the encoder (integers, strings, arrays, maps, tags)
// funnels through it so the minimum-width rule lives in exactly one place.
func writeHeader(buf []byte, mt MajorType, length uint64) []byte {
	switch {
	case length < 24:
		return append(buf, encodeInitialByte(mt, byte(length)))
	case length <= math.MaxUint8:
		buf = append(buf, encodeInitialByte(mt, byte(AdditionalInfo8Bit)))
		return append(buf, byte(length))
	case length <= math.MaxUint16:
		buf = append(buf, encodeInitialByte(mt, byte(AdditionalInfo16Bit)))
		return binary.BigEndian.AppendUint16(buf, uint16(length))
	case length <= math.MaxUint32:
		buf = append(buf, encodeInitialByte(mt, byte(AdditionalInfo32Bit)))
		return binary.BigEndian.AppendUint32(buf, uint32(length))
	default:
		buf = append(buf, encodeInitialByte(mt, byte(AdditionalInfo64Bit)))
		return binary.BigEndian.AppendUint64(buf, length)
	}
}

// readHeader reads the length (or tag number) that follows the additional
// info of an initial byte. data must
// start at the byte immediately after the initial byte; ai is that initial
// byte's additional-information field. It returns the decoded length and
// the number of bytes of data consumed (not including the initial byte
// itself). ai == 31 (indefinite length) yields length 0 and is the caller's
// signal to switch to indefinite-length handling, not a normal value.
func readHeader(data []byte, ai byte) (length uint64, consumed int, err error) {
	switch {
	case ai < 24:
		return uint64(ai), 0, nil
	case ai == 24:
		if len(data) < 1 {
			return 0, 0, errTruncatedHeader
		}
		return uint64(data[0]), 1, nil
	case ai == 25:
		if len(data) < 2 {
			return 0, 0, errTruncatedHeader
		}
		return uint64(binary.BigEndian.Uint16(data)), 2, nil
	case ai == 26:
		if len(data) < 4 {
			return 0, 0, errTruncatedHeader
		}
		return uint64(binary.BigEndian.Uint32(data)), 4, nil
	case ai == 27:
		if len(data) < 8 {
			return 0, 0, errTruncatedHeader
		}
		return binary.BigEndian.Uint64(data), 8, nil
	case ai == byte(AdditionalInfoIndefiniteLength):
		return 0, 0, nil
	default:
		return 0, 0, errInvalidAdditionalInfo
	}
}
