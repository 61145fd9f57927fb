package tlv

import "encoding/binary"

// VarNum boundary bytes. A VarNum is a big-endian unsigned integer whose
// encoded width is signaled by its leading byte: values up to 0xFC encode
// as themselves (a single byte); 0xFD, 0xFE and 0xFF signal that 2, 4 or 8
// big-endian bytes follow.
const (
	varNumBoundary2 = 0xFD
	varNumBoundary4 = 0xFE
	varNumBoundary8 = 0xFF
	varNumMax1Byte  = 0xFC
)

// DecodeVarNum reads a single VarNum from the front of buf, returning its
// value and the number of bytes it occupied. It fails with ErrInvalidVarNum
// if buf is too short to hold the discriminated width.
func DecodeVarNum(buf []byte) (value uint64, size int, err error) {
	if len(buf) < 1 {
		return 0, 0, ErrInvalidVarNum
	}
	b := buf[0]
	switch {
	case b <= varNumMax1Byte:
		return uint64(b), 1, nil
	case b == varNumBoundary2:
		if len(buf) < 3 {
			return 0, 0, ErrInvalidVarNum
		}
		return uint64(binary.BigEndian.Uint16(buf[1:3])), 3, nil
	case b == varNumBoundary4:
		if len(buf) < 5 {
			return 0, 0, ErrInvalidVarNum
		}
		return uint64(binary.BigEndian.Uint32(buf[1:5])), 5, nil
	default: // varNumBoundary8
		if len(buf) < 9 {
			return 0, 0, ErrInvalidVarNum
		}
		return binary.BigEndian.Uint64(buf[1:9]), 9, nil
	}
}

// EncodeVarNum appends the VarNum encoding of v to dst and returns the
// extended slice. It always chooses the narrowest representation.
func EncodeVarNum(dst []byte, v uint64) []byte {
	switch {
	case v <= varNumMax1Byte:
		return append(dst, byte(v))
	case v <= 0xFFFF:
		dst = append(dst, varNumBoundary2)
		var b [2]byte
		binary.BigEndian.PutUint16(b[:], uint16(v))
		return append(dst, b[:]...)
	case v <= 0xFFFFFFFF:
		dst = append(dst, varNumBoundary4)
		var b [4]byte
		binary.BigEndian.PutUint32(b[:], uint32(v))
		return append(dst, b[:]...)
	default:
		dst = append(dst, varNumBoundary8)
		var b [8]byte
		binary.BigEndian.PutUint64(b[:], v)
		return append(dst, b[:]...)
	}
}

// DecodeNatural interprets buf as a big-endian natural number. The wire
// format requires the value to occupy exactly 1, 2, 4 or 8 bytes; any other
// length is malformed.
func DecodeNatural(buf []byte) (uint64, error) {
	switch len(buf) {
	case 1:
		return uint64(buf[0]), nil
	case 2:
		return uint64(binary.BigEndian.Uint16(buf)), nil
	case 4:
		return uint64(binary.BigEndian.Uint32(buf)), nil
	case 8:
		return binary.BigEndian.Uint64(buf), nil
	default:
		return 0, ErrInvalidNaturalSize
	}
}

// EncodeNatural renders v as the narrowest of the four permitted
// big-endian widths.
func EncodeNatural(v uint64) []byte {
	switch {
	case v <= 0xFF:
		return []byte{byte(v)}
	case v <= 0xFFFF:
		b := make([]byte, 2)
		binary.BigEndian.PutUint16(b, uint16(v))
		return b
	case v <= 0xFFFFFFFF:
		b := make([]byte, 4)
		binary.BigEndian.PutUint32(b, uint32(v))
		return b
	default:
		b := make([]byte, 8)
		binary.BigEndian.PutUint64(b, v)
		return b
	}
}
