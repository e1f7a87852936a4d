package poly

import "go.dedis.ch/tpke/pairing"

// EvalG1At evaluates a G1-valued polynomial (coeffs[k] = g^{a_k}) at an
// arbitrary scalar x via Horner's method in the exponent. Unlike
// EvalG1Poly, x need not be a domain point; this is what the update
// transcript's root check (§4.9, §4.10: "Σ_k coeffs[k]·x_r^k == identity")
// evaluates at x = 0 or x = x_r.
func EvalG1At(coeffs []*pairing.G1, x *pairing.Scalar) *pairing.G1 {
	acc := pairing.G1Identity()
	for i := len(coeffs) - 1; i >= 0; i-- {
		acc = new(pairing.G1).ScalarMul(acc, x)
		acc = new(pairing.G1).Add(acc, coeffs[i])
	}
	return acc
}
