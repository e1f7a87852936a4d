package pairing

import (
	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

func multiExpConfig() ecc.MultiExpConfig {
	return ecc.MultiExpConfig{}
}

// Pair computes e(a, b) ∈ GT.
func Pair(a *G1, b *G2) (*GT, error) {
	v, err := bls12381.Pair([]bls12381.G1Affine{a.p}, []bls12381.G2Affine{b.p})
	if err != nil {
		return nil, &ArithmeticError{Op: "Pair", Err: err}
	}
	return &GT{v: v}, nil
}

// PairingCheck reports whether Π e(lhs[i], rhs[i]) == 1 in GT, which is
// the O(1)-pairing-equations form every verification step in this module
// reduces to (optimistic verification §4.2, header binding §4.5, decryption
// share checksums §4.6).
func PairingCheck(lhs []*G1, rhs []*G2) (bool, error) {
	if len(lhs) != len(rhs) {
		return false, &ArithmeticError{Op: "PairingCheck", Err: errMismatchedLengths}
	}
	a := make([]bls12381.G1Affine, len(lhs))
	b := make([]bls12381.G2Affine, len(rhs))
	for i := range lhs {
		a[i] = lhs[i].p
		b[i] = rhs[i].p
	}
	ok, err := bls12381.PairingCheck(a, b)
	if err != nil {
		return false, &ArithmeticError{Op: "PairingCheck", Err: err}
	}
	return ok, nil
}

// PairEqual reports whether e(a1,b1) == e(a2,b2), the shape of nearly
// every verification equation in §4 (e.g. e(coeffs[0],h) == e(g,sigma)).
// It is computed as a single PairingCheck over (a1,b1),(-a2,b2) so it costs
// one pairing batch rather than two independent ones.
func PairEqual(a1 *G1, b1 *G2, a2 *G1, b2 *G2) (bool, error) {
	neg := a2.Clone()
	neg.p.Neg(&neg.p)
	return PairingCheck([]*G1{a1, neg}, []*G2{b1, b2})
}

var errMismatchedLengths = mismatchedLengthsError{}

type mismatchedLengthsError struct{}

func (mismatchedLengthsError) Error() string { return "pairing: mismatched slice lengths" }
