// Package pvss implements the Publicly Verifiable Secret Sharing
// transcript: a dealer's Feldman-committed polynomial, its per-validator
// encrypted shares, and a proof of knowledge of the shared secret, along
// with the optimistic and full verification procedures any observer can
// run against it (§4.1–§4.3).
package pvss

import (
	"io"

	"go.dedis.ch/tpke/dkgsession"
	"go.dedis.ch/tpke/pairing"
	"go.dedis.ch/tpke/poly"
	"go.dedis.ch/tpke/wire"
)

// Transcript is one dealer's unaggregated PVSS contribution (§3
// "PvssTranscript").
type Transcript struct {
	// Coeffs are the Feldman commitments g^{a_0}..g^{a_{t-1}} to the
	// dealer's degree-(t-1) polynomial.
	Coeffs []*pairing.G1
	// Shares are the per-validator encrypted shares ek_i^{φ(ω_i)}.
	Shares []*pairing.G2
	// Sigma is the proof of knowledge h^{φ(0)}.
	Sigma *pairing.G2
}

// CreateTranscript deals secret across sess's validator set (§4.1). The
// polynomial sampled to carry secret, and secret itself (its constant
// term), are zeroized before this function returns on every exit path —
// callers must treat secret as consumed.
func CreateTranscript(rnd io.Reader, secret *pairing.Scalar, sess *dkgsession.Session) (*Transcript, error) {
	defer secret.Zeroize()
	n := sess.SharesNum()
	reg := sess.Registry()
	if reg.Size() < n {
		return nil, &InsufficientValidatorsError{Got: reg.Size(), Expected: n}
	}

	phi, err := poly.Random(rnd, sess.Threshold(), secret)
	if err != nil {
		return nil, err
	}
	defer phi.Zeroize()

	coeffs := make([]*pairing.G1, phi.Threshold())
	for k, a := range phi.Coeffs() {
		coeffs[k] = new(pairing.G1).ScalarMul(nil, a)
	}

	domain := sess.Domain()
	shares := make([]*pairing.G2, n)
	for i := 0; i < n; i++ {
		v, ok := reg.ByIndex(i)
		if !ok {
			return nil, &InsufficientValidatorsError{Got: reg.Size(), Expected: n}
		}
		y := phi.Eval(domain.Point(i))
		shares[i] = new(pairing.G2).ScalarMul(v.DkgPublicKey, y)
	}

	sigma := new(pairing.G2).ScalarMul(nil, phi.Secret())

	return &Transcript{Coeffs: coeffs, Shares: shares, Sigma: sigma}, nil
}

// VerifyOptimistic checks e(coeffs[0], h) == e(g, sigma) (§4.2): the
// O(1)-pairing proof of knowledge, cheap enough to run on every transcript
// at ingestion before the O(N) full check.
func (t *Transcript) VerifyOptimistic() (bool, error) {
	return pairing.PairEqual(t.Coeffs[0], pairing.G2Generator(), pairing.G1Generator(), t.Sigma)
}

// VerifyFull runs the optimistic check and then, for every validator i,
// checks e(g, shares[i]) == e(A_i, ek_i) where A_i is recovered from coeffs
// by evaluating the committed polynomial in G1 across the full FFT domain
// (§4.3). It rejects before doing any pairing work if sess's registry
// carries a duplicated share_index (§9 "never trust callers").
func (t *Transcript) VerifyFull(sess *dkgsession.Session) (bool, error) {
	ok, err := t.VerifyOptimistic()
	if err != nil || !ok {
		return ok, err
	}

	n := sess.SharesNum()
	if len(t.Shares) != n {
		return false, &InvalidShareIndexError{ShareIndex: uint32(len(t.Shares))}
	}

	reg := sess.Registry()
	seen := make(map[uint32]struct{}, n)
	for i := 0; i < n; i++ {
		v, ok := reg.ByIndex(i)
		if !ok {
			return false, &InvalidShareIndexError{ShareIndex: uint32(i)}
		}
		if _, dup := seen[v.ShareIndex]; dup {
			return false, &DuplicatedShareIndexError{ShareIndex: v.ShareIndex}
		}
		seen[v.ShareIndex] = struct{}{}
	}

	ok, err = t.VerifyOptimistic()
	if err != nil || !ok {
		return ok, err
	}

	commitments := sess.Domain().EvalG1Poly(t.Coeffs)

	lhsG1 := make([]*pairing.G1, 0, 2*n)
	rhsG2 := make([]*pairing.G2, 0, 2*n)
	for i := 0; i < n; i++ {
		v, _ := reg.ByIndex(i)
		lhsG1 = append(lhsG1, pairing.G1Generator(), new(pairing.G1).Neg(commitments[i]))
		rhsG2 = append(rhsG2, t.Shares[i], v.DkgPublicKey)
	}
	return pairing.PairingCheck(lhsG1, rhsG2)
}

// MarshalBinary encodes the transcript as
// coeffs_len:u32 || coeffs[...]:G1 || shares_len:u32 || shares[...]:G2 || sigma:G2 (§6).
func (t *Transcript) MarshalBinary() ([]byte, error) {
	buf, err := wire.AppendVector[*pairing.G1](nil, t.Coeffs)
	if err != nil {
		return nil, err
	}
	buf, err = wire.AppendVector[*pairing.G2](buf, t.Shares)
	if err != nil {
		return nil, err
	}
	return wire.AppendElement(buf, t.Sigma)
}

// UnmarshalBinary decodes the layout produced by MarshalBinary.
func (t *Transcript) UnmarshalBinary(data []byte) error {
	coeffs, rest, err := wire.ReadVector(data, pairing.G1Size, func() *pairing.G1 { return new(pairing.G1) })
	if err != nil {
		return err
	}
	shares, rest, err := wire.ReadVector(rest, pairing.G2Size, func() *pairing.G2 { return new(pairing.G2) })
	if err != nil {
		return err
	}
	sigma, rest, err := wire.ReadElement(rest, pairing.G2Size, func() *pairing.G2 { return new(pairing.G2) })
	if err != nil {
		return err
	}
	if err := wire.ExpectConsumed(rest); err != nil {
		return err
	}
	t.Coeffs, t.Shares, t.Sigma = coeffs, shares, sigma
	return nil
}
