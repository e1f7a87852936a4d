package pairing

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// GTSize is the wire size of a (necessarily uncompressed) GT element (§6).
const GTSize = bls12381.SizeOfGT

// GT is an element of the pairing target group.
type GT struct {
	v bls12381.GT
}

func (z *GT) Clone() *GT {
	out := new(GT)
	out.v = z.v
	return out
}

// GTIdentity returns the multiplicative identity of GT (used as the
// accumulator start value when combining decryption shares, §4.7).
func GTIdentity() *GT {
	out := new(GT)
	out.v.SetOne()
	return out
}

// Mul sets z = a*b in GT (used to combine decryption shares, §4.7).
func (z *GT) Mul(a, b *GT) *GT {
	z.v.Mul(&a.v, &b.v)
	return z
}

// Exp sets z = a^s.
func (z *GT) Exp(a *GT, s *Scalar) *GT {
	z.v.Exp(a.v, scalarToBigInt(&s.v))
	return z
}

func (z *GT) Equal(o *GT) bool {
	return z.v.Equal(&o.v)
}

// Zeroize clears a GT-valued shared secret (§3 SharedSecret, §9).
func (z *GT) Zeroize() {
	if z == nil {
		return
	}
	z.v = bls12381.GT{}
}

func (z *GT) Bytes() [GTSize]byte {
	return z.v.Bytes()
}

func (z *GT) MarshalBinary() ([]byte, error) {
	b := z.v.Bytes()
	return b[:], nil
}

func (z *GT) UnmarshalBinary(data []byte) error {
	if len(data) != GTSize {
		return &InvalidByteLengthError{Expected: GTSize, Got: len(data)}
	}
	var b [GTSize]byte
	copy(b[:], data)
	z.v.SetBytes(b[:])
	return nil
}
