// Package tlv implements the binary TLV (type-length-value) codec the
// trust-schema wire format is built from: VarNum-discriminated type and
// length fields, natural numbers, opaque byte strings and verbatim name
// components.
package tlv

import "math"

// Reader is a cursor over a byte slice that hands out one TLV block at a
// time. It never copies the underlying buffer; values it returns are
// subslices of the slice it was constructed with.
type Reader struct {
	buf []byte
	pos int
}

// NewReader constructs a Reader positioned at the start of buf.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Remaining reports how many bytes have not yet been consumed.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.pos
}

// Finish reports ErrTrailingBytes if any bytes remain. Struct decoders call
// this only at the outermost decode site; nested blocks tolerate leftover
// bytes for forward compatibility.
func (r *Reader) Finish() error {
	if r.Remaining() != 0 {
		return ErrTrailingBytes
	}
	return nil
}

// ReadBlock reads one TLV block whose type equals want. If the next bytes
// in the buffer declare a different type, the block is absent: ReadBlock
// returns ok == false and a nil error without consuming anything. Once the
// leading type matches, any further malformation is reported as an error.
func (r *Reader) ReadBlock(want uint64) (value []byte, ok bool, err error) {
	if r.Remaining() == 0 {
		return nil, false, nil
	}
	typ, n, err := DecodeVarNum(r.buf[r.pos:])
	if err != nil {
		return nil, false, err
	}
	if typ != want {
		return nil, false, nil
	}
	pos := r.pos + n
	length, n2, err := DecodeVarNum(r.buf[pos:])
	if err != nil {
		return nil, false, err
	}
	pos += n2
	if length > uint64(math.MaxInt) {
		return nil, false, ErrOverflow
	}
	if uint64(len(r.buf)-pos) < length {
		return nil, false, ErrUnexpectedEOF
	}
	val := r.buf[pos : pos+int(length)]
	r.pos = pos + int(length)
	return val, true, nil
}

// ReadNatural reads a block of the given type and decodes its value as a
// natural number.
func (r *Reader) ReadNatural(want uint64) (value uint64, ok bool, err error) {
	raw, ok, err := r.ReadBlock(want)
	if !ok || err != nil {
		return 0, ok, err
	}
	value, err = DecodeNatural(raw)
	return value, true, err
}

// ReadNameComponent reads a block of the given type and returns its value
// unchanged: schema-embedded name components are stored as opaque bytes,
// the same way a byte-string field is.
func (r *Reader) ReadNameComponent(want uint64) (value []byte, ok bool, err error) {
	return r.ReadBlock(want)
}
