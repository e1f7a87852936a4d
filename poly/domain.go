package poly

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr/fft"

	"go.dedis.ch/tpke/pairing"
)

// Domain is the smallest power-of-two-order multiplicative subgroup of F_r
// containing at least n points (§3 "EvaluationDomain"). Its first n
// elements ω_0 .. ω_{n-1} are assigned to validators by share_index; the
// domain may be (and for non-power-of-two n, is) larger than n so the FFT
// can operate at its natural size (§9 "FFT evaluation domain size").
type Domain struct {
	fftDomain *fft.Domain
	n         int
}

// NewDomain builds the domain for n validators.
func NewDomain(n int) *Domain {
	return &Domain{fftDomain: fft.NewDomain(uint64(n)), n: n}
}

// Size returns n, the number of assigned validator points.
func (d *Domain) Size() int {
	return d.n
}

// Cardinality returns the full (padded, power-of-two) domain size used
// internally by the FFT.
func (d *Domain) Cardinality() int {
	return int(d.fftDomain.Cardinality)
}

// Point returns ω_i = generator^i, the domain point for share_index i.
// i must be in [0, n).
func (d *Domain) Point(i int) *pairing.Scalar {
	var w fr.Element
	w.Exp(d.fftDomain.Generator, big.NewInt(int64(i)))
	return pairing.NewScalarFromFieldElement(w)
}

// Points returns ω_0 .. ω_{n-1}, in validator share_index order.
func (d *Domain) Points() []*pairing.Scalar {
	out := make([]*pairing.Scalar, d.n)
	acc := fr.NewElement(1)
	for i := 0; i < d.n; i++ {
		out[i] = pairing.NewScalarFromFieldElement(acc)
		acc.Mul(&acc, &d.fftDomain.Generator)
	}
	return out
}

// EvalFieldPoly evaluates a field-valued (not group-valued) polynomial at
// every point of the full padded domain using gnark-crypto's native FFT.
// Coefficients beyond the polynomial's degree are treated as zero.
func (d *Domain) EvalFieldPoly(p *Polynomial) []*pairing.Scalar {
	padded := make(fr.Vector, d.Cardinality())
	for i, c := range p.Coeffs() {
		padded[i] = c.FieldElement()
	}
	d.fftDomain.FFT(padded, fft.DIF)
	fft.BitReverse(padded)
	out := make([]*pairing.Scalar, len(padded))
	for i, e := range padded {
		out[i] = pairing.NewScalarFromFieldElement(e)
	}
	return out
}
