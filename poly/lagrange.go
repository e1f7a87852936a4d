package poly

import "go.dedis.ch/tpke/pairing"

// LagrangeAt0 computes λ_i(0) = Π_{j≠i} x_j/(x_j - x_i) for every point in
// points, evaluated with respect to that same point set. This is the
// weighting used by simple share combination (§4.7) and — computed for a
// single index — by the precomputed decryption-share variant (§4.6.2).
func LagrangeAt0(points []*pairing.Scalar) []*pairing.Scalar {
	n := len(points)
	out := make([]*pairing.Scalar, n)
	for i := 0; i < n; i++ {
		num := pairing.ScalarFromUint64(1)
		den := pairing.ScalarFromUint64(1)
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			num = new(pairing.Scalar).Mul(num, points[j])
			diff := new(pairing.Scalar).Sub(points[j], points[i])
			den = new(pairing.Scalar).Mul(den, diff)
		}
		invDen := new(pairing.Scalar).Inverse(den)
		out[i] = new(pairing.Scalar).Mul(num, invDen)
	}
	return out
}

// LagrangeCoefficientAt0 computes λ_i(0) for the point at index i within
// the selected set points (§4.6.2: decrypter i absorbs λ_i(0) into its own
// precomputed share).
func LagrangeCoefficientAt0(points []*pairing.Scalar, i int) *pairing.Scalar {
	return LagrangeAt0(points)[i]
}
