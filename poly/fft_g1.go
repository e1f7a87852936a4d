package poly

import "go.dedis.ch/tpke/pairing"

// EvalG1Poly evaluates a G1-valued (group, not field) polynomial — e.g. a
// vector of Feldman commitments coeffs[k] = g^{a_k} — at every point of
// the full padded domain (§4.3 step 2: "Recover share commitments A =
// FFT(coeffs extended with zeros to domain size)"). gnark-crypto's fft
// package only operates on field elements, so this radix-2 Cooley–Tukey
// FFT reimplements the same butterfly network with G1 scalar
// multiplication standing in for the field multiplication by twiddle
// factors (see DESIGN.md for why no pack library offers this directly).
func (d *Domain) EvalG1Poly(coeffs []*pairing.G1) []*pairing.G1 {
	size := d.Cardinality()
	padded := make([]*pairing.G1, size)
	for i := range padded {
		if i < len(coeffs) {
			padded[i] = coeffs[i]
		} else {
			padded[i] = pairing.G1Identity()
		}
	}
	root := pairing.NewScalarFromFieldElement(d.fftDomain.Generator)
	return fftG1(padded, root)
}

func fftG1(a []*pairing.G1, root *pairing.Scalar) []*pairing.G1 {
	n := len(a)
	if n == 1 {
		return []*pairing.G1{a[0]}
	}

	half := n / 2
	even := make([]*pairing.G1, half)
	odd := make([]*pairing.G1, half)
	for i := 0; i < half; i++ {
		even[i] = a[2*i]
		odd[i] = a[2*i+1]
	}

	rootSq := new(pairing.Scalar).Mul(root, root)
	fe := fftG1(even, rootSq)
	fo := fftG1(odd, rootSq)

	result := make([]*pairing.G1, n)
	w := pairing.ScalarFromUint64(1)
	for i := 0; i < half; i++ {
		t := new(pairing.G1).ScalarMul(fo[i], w)
		result[i] = new(pairing.G1).Add(fe[i], t)
		result[i+half] = new(pairing.G1).Sub(fe[i], t)
		w = new(pairing.Scalar).Mul(w, root)
	}
	return result
}
