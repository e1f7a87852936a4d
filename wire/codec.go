// Package wire implements the canonical little-endian, length-prefixed
// binary codec every transcript, ciphertext and share type in this module
// shares (§6 "External interfaces"). It mirrors the DeDiS marshal package's
// split between fixed-size element encoding and length-prefixed vectors,
// generalized with Go generics instead of an interface-per-type registry.
package wire

import (
	"encoding/binary"
)

// Unmarshaler is a fixed-size binary decoder, satisfied by pairing.Scalar,
// pairing.G1, pairing.G2 and pairing.GT.
type Unmarshaler interface {
	UnmarshalBinary(data []byte) error
}

// Marshaler is a fixed-size binary encoder.
type Marshaler interface {
	MarshalBinary() ([]byte, error)
}

// AppendUint32 appends v as 4 little-endian bytes (§6 "all integers
// little-endian").
func AppendUint32(buf []byte, v uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return append(buf, b[:]...)
}

// ReadUint32 reads a 4-byte little-endian length prefix.
func ReadUint32(data []byte) (uint32, []byte, error) {
	if len(data) < 4 {
		return 0, nil, &TruncatedError{Field: "u32", Need: 4, Got: len(data)}
	}
	return binary.LittleEndian.Uint32(data[:4]), data[4:], nil
}

// AppendElement appends m's fixed-size encoding.
func AppendElement(buf []byte, m Marshaler) ([]byte, error) {
	b, err := m.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return append(buf, b...), nil
}

// ReadElement decodes one fixed-size element of size elemSize from the
// front of data into a freshly allocated T, returning the remainder.
func ReadElement[T Unmarshaler](data []byte, elemSize int, newElem func() T) (T, []byte, error) {
	var zero T
	if len(data) < elemSize {
		return zero, nil, &TruncatedError{Field: "element", Need: elemSize, Got: len(data)}
	}
	e := newElem()
	if err := e.UnmarshalBinary(data[:elemSize]); err != nil {
		return zero, nil, err
	}
	return e, data[elemSize:], nil
}

// AppendVector appends a u32 length prefix followed by each item's
// fixed-size encoding (§6's `coeffs_len:u32 || coeffs[...]:G1` shape,
// repeated across every transcript and share type).
func AppendVector[T Marshaler](buf []byte, items []T) ([]byte, error) {
	buf = AppendUint32(buf, uint32(len(items)))
	for _, it := range items {
		var err error
		buf, err = AppendElement(buf, it)
		if err != nil {
			return nil, err
		}
	}
	return buf, nil
}

// ReadVector decodes a length-prefixed vector of fixed-size elements. The
// declared count is checked against the remaining buffer length before
// allocating out, so a malformed huge count fails with TruncatedError
// instead of driving a large allocation off attacker-controlled input.
func ReadVector[T Unmarshaler](data []byte, elemSize int, newElem func() T) ([]T, []byte, error) {
	n, rest, err := ReadUint32(data)
	if err != nil {
		return nil, nil, err
	}
	if uint64(len(rest)) < uint64(n)*uint64(elemSize) {
		return nil, nil, &TruncatedError{Field: "vector", Need: int(n) * elemSize, Got: len(rest)}
	}
	out := make([]T, n)
	for i := range out {
		var e T
		e, rest, err = ReadElement(rest, elemSize, newElem)
		if err != nil {
			return nil, nil, err
		}
		out[i] = e
	}
	return out, rest, nil
}

// AppendBytes appends a u32 length prefix followed by raw bytes (§6's
// `payload_len:u32 || payload[payload_len]` shape).
func AppendBytes(buf []byte, b []byte) []byte {
	buf = AppendUint32(buf, uint32(len(b)))
	return append(buf, b...)
}

// ReadBytes decodes a length-prefixed raw byte string.
func ReadBytes(data []byte) ([]byte, []byte, error) {
	n, rest, err := ReadUint32(data)
	if err != nil {
		return nil, nil, err
	}
	if uint32(len(rest)) < n {
		return nil, nil, &TruncatedError{Field: "bytes", Need: int(n), Got: len(rest)}
	}
	out := make([]byte, n)
	copy(out, rest[:n])
	return out, rest[n:], nil
}

// ExpectConsumed returns a DeserializationError if rest is non-empty,
// catching trailing garbage after a well-formed decode.
func ExpectConsumed(rest []byte) error {
	if len(rest) != 0 {
		return &DeserializationError{Reason: "trailing bytes after decode"}
	}
	return nil
}
