package pairing

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// G2Size is the compressed wire size of a G2 point (§6).
const G2Size = bls12381.SizeOfG2AffineCompressed

// G2 is a point of the second pairing source group.
type G2 struct {
	p bls12381.G2Affine
}

// G2Generator returns the fixed base point h (§2).
func G2Generator() *G2 {
	_, _, _, g2 := bls12381.Generators()
	return &G2{p: g2}
}

func G2Identity() *G2 {
	return &G2{}
}

func (p *G2) Clone() *G2 {
	out := new(G2)
	out.p = p.p
	return out
}

func (p *G2) ScalarMul(base *G2, s *Scalar) *G2 {
	if base == nil {
		base = G2Generator()
	}
	var bj, rj bls12381.G2Jac
	bj.FromAffine(&base.p)
	rj.ScalarMultiplication(&bj, scalarToBigInt(&s.v))
	p.p.FromJacobian(&rj)
	return p
}

func (p *G2) Add(a, b *G2) *G2 {
	var aj, bj, rj bls12381.G2Jac
	aj.FromAffine(&a.p)
	bj.FromAffine(&b.p)
	rj.Set(&aj).AddAssign(&bj)
	p.p.FromJacobian(&rj)
	return p
}

// Neg sets p = -a and returns p.
func (p *G2) Neg(a *G2) *G2 {
	p.p = a.p
	p.p.Neg(&p.p)
	return p
}

// Sub sets p = a - b and returns p.
func (p *G2) Sub(a, b *G2) *G2 {
	neg := new(G2).Neg(b)
	return p.Add(a, neg)
}

func (p *G2) Equal(o *G2) bool {
	return p.p.Equal(&o.p)
}

func (p *G2) IsIdentity() bool {
	return p.p.IsInfinity()
}

// MultiExpG2 computes Σ scalars[i]*points[i].
func MultiExpG2(points []*G2, scalars []*Scalar) (*G2, error) {
	affs := make([]bls12381.G2Affine, len(points))
	exps := make([]fr.Element, len(scalars))
	for i := range points {
		affs[i] = points[i].p
		exps[i] = scalars[i].v
	}
	var out bls12381.G2Affine
	if _, err := out.MultiExp(affs, exps, multiExpConfig()); err != nil {
		return nil, &ArithmeticError{Op: "G2.MultiExp", Err: err}
	}
	return &G2{p: out}, nil
}

func (p *G2) Bytes() [G2Size]byte {
	return p.p.Bytes()
}

func (p *G2) MarshalBinary() ([]byte, error) {
	b := p.p.Bytes()
	return b[:], nil
}

func (p *G2) UnmarshalBinary(data []byte) error {
	if len(data) != G2Size {
		return &InvalidByteLengthError{Expected: G2Size, Got: len(data)}
	}
	var b [G2Size]byte
	copy(b[:], data)
	if _, err := p.p.SetBytes(b[:]); err != nil {
		return &ArithmeticError{Op: "G2.UnmarshalBinary", Err: err}
	}
	return nil
}

// HashToG2 hashes msg to a point of G2 under dst (§2 "hash-to-curve for
// G2"). This is the primitive behind the ciphertext header binding (§4.5
// step 5).
func HashToG2(msg, dst []byte) (*G2, error) {
	p, err := bls12381.HashToG2(msg, dst)
	if err != nil {
		return nil, &ArithmeticError{Op: "HashToG2", Err: err}
	}
	return &G2{p: p}, nil
}
