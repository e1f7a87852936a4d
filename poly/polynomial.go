// Package poly implements the dense polynomial layer and the FFT
// evaluation domain the DKG session, PVSS transcripts and update
// transcripts are all built on (§2 "Polynomial layer", §3
// "EvaluationDomain").
package poly

import (
	"io"

	"go.dedis.ch/tpke/pairing"
)

// Polynomial is a dense univariate polynomial φ(x) = c0 + c1 x + ... + c_{d} x^d
// over the BLS12-381 scalar field.
type Polynomial struct {
	coeffs []*pairing.Scalar
}

// New wraps an existing coefficient slice; ownership of coeffs transfers
// to the returned Polynomial.
func New(coeffs []*pairing.Scalar) *Polynomial {
	return &Polynomial{coeffs: coeffs}
}

// Random builds a polynomial of threshold t (degree t-1) with the given
// constant term. If constant is nil a random one is drawn too (§4.1 step 1).
func Random(rnd io.Reader, t int, constant *pairing.Scalar) (*Polynomial, error) {
	coeffs := make([]*pairing.Scalar, t)
	if constant != nil {
		coeffs[0] = constant
	} else {
		c, err := pairing.RandomScalar(rnd)
		if err != nil {
			return nil, err
		}
		coeffs[0] = c
	}
	for i := 1; i < t; i++ {
		c, err := pairing.RandomScalar(rnd)
		if err != nil {
			return nil, err
		}
		coeffs[i] = c
	}
	return New(coeffs), nil
}

// RandomWithRoot builds a degree-(t-1) polynomial u such that u(root) = 0
// (§4.9 refresh: root = 0; §4.10 recovery: root = x_r). Coefficients
// a_1..a_{t-1} are drawn uniformly and a_0 is solved for afterwards so the
// root constraint holds exactly.
func RandomWithRoot(rnd io.Reader, t int, root *pairing.Scalar) (*Polynomial, error) {
	coeffs := make([]*pairing.Scalar, t)
	for i := 1; i < t; i++ {
		c, err := pairing.RandomScalar(rnd)
		if err != nil {
			return nil, err
		}
		coeffs[i] = c
	}

	acc := pairing.NewScalar()
	power := pairing.ScalarFromUint64(1)
	for k := 1; k < t; k++ {
		power = new(pairing.Scalar).Mul(power, root)
		term := new(pairing.Scalar).Mul(coeffs[k], power)
		acc.Add(acc, term)
	}
	coeffs[0] = new(pairing.Scalar).Sub(pairing.NewScalar(), acc)
	return New(coeffs), nil
}

// Threshold returns t = degree+1, the number of coefficients.
func (p *Polynomial) Threshold() int {
	return len(p.coeffs)
}

// Coeffs returns the coefficient slice (index 0 is the constant term).
// Callers must not mutate the returned slice's contents in place if the
// polynomial is still in use elsewhere.
func (p *Polynomial) Coeffs() []*pairing.Scalar {
	return p.coeffs
}

// Secret returns the constant term φ(0), the shared secret in §4.1.
func (p *Polynomial) Secret() *pairing.Scalar {
	return p.coeffs[0]
}

// Eval computes φ(x) via Horner's method.
func (p *Polynomial) Eval(x *pairing.Scalar) *pairing.Scalar {
	acc := pairing.NewScalar()
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		acc = new(pairing.Scalar).Mul(acc, x)
		acc.Add(acc, p.coeffs[i])
	}
	return acc
}

// Zeroize clears every coefficient. Called on every exit path of PVSS
// transcript creation and update-transcript creation, which both hold a
// secret-bearing polynomial transiently (§4.1, §9).
func (p *Polynomial) Zeroize() {
	for _, c := range p.coeffs {
		c.Zeroize()
	}
}
