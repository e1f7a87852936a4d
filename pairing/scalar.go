// Package pairing wraps the BLS12-381 pairing engine (G1, G2, GT and the
// scalar field F_r) that every other package in this module builds on.
// It is the one place curve-specific types and constants are allowed to
// leak; everything above it speaks only in terms of Scalar, G1, G2 and GT.
package pairing

import (
	"io"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// ScalarSize is the canonical wire size of a scalar field element (§6).
const ScalarSize = fr.Bytes

// Scalar is an element of F_r, the BLS12-381 scalar field.
type Scalar struct {
	v fr.Element
}

// NewScalar returns the additive identity.
func NewScalar() *Scalar {
	return &Scalar{}
}

// NewScalarFromFieldElement lifts a raw gnark-crypto field element into a
// Scalar. Exists so sibling packages (poly's evaluation domain, in
// particular) can hand back field elements produced by gnark-crypto's own
// FFT/polynomial machinery without reaching into Scalar's internals.
func NewScalarFromFieldElement(e fr.Element) *Scalar {
	return &Scalar{v: e}
}

// FieldElement exposes the raw gnark-crypto representation for packages
// that need to call into gnark-crypto APIs directly (e.g. fr/fft, fr/polynomial).
func (s *Scalar) FieldElement() fr.Element {
	return s.v
}

// ScalarFromUint64 builds a small scalar, mostly useful for domain points
// and Lagrange arithmetic.
func ScalarFromUint64(x uint64) *Scalar {
	s := new(Scalar)
	s.v.SetUint64(x)
	return s
}

// RandomScalar draws a uniform element of F_r from rnd via rejection
// sampling. rnd is always an explicit argument: this package never reaches
// for a package-level RNG (§5 determinism).
func RandomScalar(rnd io.Reader) (*Scalar, error) {
	var buf [ScalarSize]byte
	s := new(Scalar)
	for {
		if _, err := io.ReadFull(rnd, buf[:]); err != nil {
			return nil, err
		}
		if err := s.v.SetBytesCanonical(buf[:]); err == nil {
			return s, nil
		}
		// buf was >= the field modulus; draw again.
	}
}

// Zeroize overwrites the scalar's limbs. Called on every exit path of a
// function that holds secret-bearing scalars (§5, §9).
func (s *Scalar) Zeroize() {
	if s == nil {
		return
	}
	s.v = fr.Element{}
}

// Clone returns a deep copy.
func (s *Scalar) Clone() *Scalar {
	out := new(Scalar)
	out.v = s.v
	return out
}

func (s *Scalar) Add(a, b *Scalar) *Scalar {
	s.v.Add(&a.v, &b.v)
	return s
}

func (s *Scalar) Sub(a, b *Scalar) *Scalar {
	s.v.Sub(&a.v, &b.v)
	return s
}

func (s *Scalar) Mul(a, b *Scalar) *Scalar {
	s.v.Mul(&a.v, &b.v)
	return s
}

// Inverse sets s = 1/a and returns s. The field has no inverse of zero: if
// a is zero, s is set to zero and no error is reported.
func (s *Scalar) Inverse(a *Scalar) *Scalar {
	s.v.Inverse(&a.v)
	return s
}

func (s *Scalar) IsZero() bool {
	return s.v.IsZero()
}

func (s *Scalar) Equal(o *Scalar) bool {
	return s.v.Equal(&o.v)
}

// Bytes returns the field's native big-endian encoding (gnark-crypto's
// canonical form). Use MarshalBinary for the little-endian wire encoding
// mandated by §6.
func (s *Scalar) Bytes() [ScalarSize]byte {
	return s.v.Bytes()
}

// MarshalBinary encodes the scalar as 32 little-endian bytes (§6: "All
// integers little-endian").
func (s *Scalar) MarshalBinary() ([]byte, error) {
	be := s.v.Bytes()
	out := make([]byte, ScalarSize)
	for i, b := range be {
		out[ScalarSize-1-i] = b
	}
	return out, nil
}

// UnmarshalBinary decodes 32 little-endian bytes produced by MarshalBinary.
func (s *Scalar) UnmarshalBinary(data []byte) error {
	if len(data) != ScalarSize {
		return &InvalidByteLengthError{Expected: ScalarSize, Got: len(data)}
	}
	var be [ScalarSize]byte
	for i, b := range data {
		be[ScalarSize-1-i] = b
	}
	return s.v.SetBytesCanonical(be[:])
}
