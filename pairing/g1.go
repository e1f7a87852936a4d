package pairing

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// G1Size is the compressed wire size of a G1 point (§6).
const G1Size = bls12381.SizeOfG1AffineCompressed

// G1 is a point of the first pairing source group, stored in affine form
// for cheap storage/comparison; arithmetic promotes to Jacobian internally.
type G1 struct {
	p bls12381.G1Affine
}

// G1Generator returns the fixed base point g (§2).
func G1Generator() *G1 {
	_, _, g1, _ := bls12381.Generators()
	return &G1{p: g1}
}

// G1Identity returns the identity element of G1.
func G1Identity() *G1 {
	return &G1{}
}

func (p *G1) Clone() *G1 {
	out := new(G1)
	out.p = p.p
	return out
}

// ScalarMul sets p = s*base and returns p. base == nil multiplies the
// fixed generator.
func (p *G1) ScalarMul(base *G1, s *Scalar) *G1 {
	if base == nil {
		base = G1Generator()
	}
	var bj, rj bls12381.G1Jac
	bj.FromAffine(&base.p)
	rj.ScalarMultiplication(&bj, scalarToBigInt(&s.v))
	p.p.FromJacobian(&rj)
	return p
}

func (p *G1) Add(a, b *G1) *G1 {
	var aj, bj, rj bls12381.G1Jac
	aj.FromAffine(&a.p)
	bj.FromAffine(&b.p)
	rj.Set(&aj).AddAssign(&bj)
	p.p.FromJacobian(&rj)
	return p
}

// Neg sets p = -a and returns p.
func (p *G1) Neg(a *G1) *G1 {
	p.p = a.p
	p.p.Neg(&p.p)
	return p
}

// Sub sets p = a - b and returns p.
func (p *G1) Sub(a, b *G1) *G1 {
	neg := new(G1).Neg(b)
	return p.Add(a, neg)
}

func (p *G1) Equal(o *G1) bool {
	return p.p.Equal(&o.p)
}

func (p *G1) IsIdentity() bool {
	return p.p.IsInfinity()
}

// MultiExpG1 computes Σ scalars[i]*points[i] via gnark-crypto's batched
// multi-scalar-multiplication (§2 "batch multi-exponentiation").
func MultiExpG1(points []*G1, scalars []*Scalar) (*G1, error) {
	affs := make([]bls12381.G1Affine, len(points))
	exps := make([]fr.Element, len(scalars))
	for i := range points {
		affs[i] = points[i].p
		exps[i] = scalars[i].v
	}
	var out bls12381.G1Affine
	if _, err := out.MultiExp(affs, exps, multiExpConfig()); err != nil {
		return nil, &ArithmeticError{Op: "G1.MultiExp", Err: err}
	}
	return &G1{p: out}, nil
}

func (p *G1) Bytes() [G1Size]byte {
	return p.p.Bytes()
}

func (p *G1) MarshalBinary() ([]byte, error) {
	b := p.p.Bytes()
	return b[:], nil
}

func (p *G1) UnmarshalBinary(data []byte) error {
	if len(data) != G1Size {
		return &InvalidByteLengthError{Expected: G1Size, Got: len(data)}
	}
	var b [G1Size]byte
	copy(b[:], data)
	if _, err := p.p.SetBytes(b[:]); err != nil {
		return &ArithmeticError{Op: "G1.UnmarshalBinary", Err: err}
	}
	return nil
}

// HashToG1 hashes msg to a point of G1 under the given domain-separation
// tag, using the curve's standard (RFC 9380) hash-to-curve map.
func HashToG1(msg, dst []byte) (*G1, error) {
	p, err := bls12381.HashToG1(msg, dst)
	if err != nil {
		return nil, &ArithmeticError{Op: "HashToG1", Err: err}
	}
	return &G1{p: p}, nil
}

func scalarToBigInt(e *fr.Element) *big.Int {
	var z big.Int
	e.BigInt(&z)
	return &z
}
