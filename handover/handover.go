// Package handover implements the single-slot handover protocol: the
// re-blinding of one validator's share from an outgoing keypair to an
// incoming one, without ever reconstructing the underlying secret or
// requiring the incoming validator to learn the share value itself
// (§4.11, §3 "HandoverTranscript").
//
// The incoming validator's contribution (Create) only ever touches public
// values — the aggregate's current blinded share and its own private
// key — and is checked (Verify) against the share commitment recovered
// from the aggregate's own Feldman commitments, never trusting the
// incoming validator's claim about its own public key. Only the outgoing
// validator, who alone holds the old private key, can finalize the
// transfer by stripping its own blinding (Finalize).
package handover

import (
	"io"

	"go.dedis.ch/tpke/aggregate"
	"go.dedis.ch/tpke/dkgsession"
	"go.dedis.ch/tpke/pairing"
	"go.dedis.ch/tpke/wire"
)

const challengeDST = "tpke/handover/challenge"

// Transcript is the incoming validator's publicly verifiable proof that it
// correctly re-blinded slot ShareIndex's current value from the outgoing
// key to its own (§3). The proof is a Schnorr-style discrete-log
// consistency argument over the combined statement
// ek_new·D == (h·Y_i)^{dk_new}, which holds exactly when
// D == Y_i^{dk_new} for the same dk_new behind ek_new — see DESIGN.md for
// why ChallengeResponse is carried as a scalar rather than the G2 element
// the data model sketch names.
type Transcript struct {
	ShareIndex uint32
	// DoubleBlindedShare is D = Y_i^{dk_new}: the current aggregate share,
	// still blinded by the outgoing key, further blinded by the incoming
	// validator's own private key.
	DoubleBlindedShare *pairing.G2
	// OldBlindedShare is a self-contained copy of Y_i = agg.Shares[ShareIndex]
	// at the time the transcript was produced.
	OldBlindedShare *pairing.G2
	// NewBlindingCommitment is the Schnorr nonce commitment R = (h+Y_i)^k.
	NewBlindingCommitment *pairing.G2
	// ChallengeResponse is the Schnorr response s = k + c*dk_new.
	ChallengeResponse *pairing.Scalar
}

// Create produces a handover transcript for slot shareIndex, re-blinding
// oldBlindedShare (the aggregate's current Shares[shareIndex]) toward the
// incoming validator's own key pair (§4.11 step 1). newDk is never
// persisted beyond this call's stack.
func Create(rnd io.Reader, shareIndex uint32, oldBlindedShare *pairing.G2, newDk *pairing.Scalar) (*Transcript, error) {
	newEk := new(pairing.G2).ScalarMul(nil, newDk)
	d := new(pairing.G2).ScalarMul(oldBlindedShare, newDk)

	base := new(pairing.G2).Add(pairing.G2Generator(), oldBlindedShare)

	k, err := pairing.RandomScalar(rnd)
	if err != nil {
		return nil, err
	}
	defer k.Zeroize()
	r := new(pairing.G2).ScalarMul(base, k)

	c, err := challenge(shareIndex, newEk, d, r)
	if err != nil {
		return nil, err
	}

	s := new(pairing.Scalar).Mul(c, newDk)
	s.Add(s, k)

	return &Transcript{
		ShareIndex:            shareIndex,
		DoubleBlindedShare:    d,
		OldBlindedShare:       oldBlindedShare.Clone(),
		NewBlindingCommitment: r,
		ChallengeResponse:     s,
	}, nil
}

// Verify checks ht against sess, agg's recovered share commitment A_i, and
// both the outgoing and incoming public keys (§4.11 step 2):
//   - e(A_i, ek_old) == e(g, old_blinded_share) ties the embedded old share
//     to the share commitment and the outgoing validator's public key;
//   - the Schnorr equation ties double_blinded_share to the incoming
//     validator's public key ek_new.
func Verify(sess *dkgsession.Session, agg *aggregate.AggregatedTranscript, oldEk, newEk *pairing.G2, ht *Transcript) (bool, error) {
	n := sess.SharesNum()
	if int(ht.ShareIndex) >= n {
		return false, &InvalidShareIndexError{ShareIndex: ht.ShareIndex}
	}

	commitments := sess.Domain().EvalG1Poly(agg.Coeffs)
	shareCommitment := commitments[ht.ShareIndex]

	oldOK, err := pairing.PairEqual(shareCommitment, oldEk, pairing.G1Generator(), ht.OldBlindedShare)
	if err != nil {
		return false, err
	}
	if !oldOK {
		return false, nil
	}

	c, err := challenge(ht.ShareIndex, newEk, ht.DoubleBlindedShare, ht.NewBlindingCommitment)
	if err != nil {
		return false, err
	}

	base := new(pairing.G2).Add(pairing.G2Generator(), ht.OldBlindedShare)
	target := new(pairing.G2).Add(newEk, ht.DoubleBlindedShare)

	lhs := new(pairing.G2).ScalarMul(base, ht.ChallengeResponse)
	rhs := new(pairing.G2).Add(ht.NewBlindingCommitment, new(pairing.G2).ScalarMul(target, c))
	return lhs.Equal(rhs), nil
}

// Finalize is the outgoing validator's step (§4.11 step 3): it strips the
// outgoing key's blinding from ht.DoubleBlindedShare and returns the new,
// incoming-key-blinded share for slot ht.ShareIndex. declaredOldEk is the
// outgoing validator's public key as recorded in the registry; Finalize
// fails with ValidatorPublicKeyMismatchError if oldDk doesn't produce it,
// refusing to let any keypair finalize a handover it wasn't named in.
func Finalize(ht *Transcript, oldDk *pairing.Scalar, declaredOldEk *pairing.G2) (*pairing.G2, error) {
	derived := new(pairing.G2).ScalarMul(nil, oldDk)
	if !derived.Equal(declaredOldEk) {
		return nil, &ValidatorPublicKeyMismatchError{}
	}

	invOldDk := new(pairing.Scalar).Inverse(oldDk)
	defer invOldDk.Zeroize()

	return new(pairing.G2).ScalarMul(ht.DoubleBlindedShare, invOldDk), nil
}

// ApplyFinalized replaces agg's share at shareIndex with newShare, leaving
// Coeffs and Sigma untouched (§4.11 step 3: "the aggregate's shares[i] is
// replaced; coeffs unchanged").
func ApplyFinalized(agg *aggregate.AggregatedTranscript, shareIndex uint32, newShare *pairing.G2) (*aggregate.AggregatedTranscript, error) {
	if int(shareIndex) >= len(agg.Shares) {
		return nil, &InvalidShareIndexError{ShareIndex: shareIndex}
	}
	shares := make([]*pairing.G2, len(agg.Shares))
	for i, s := range agg.Shares {
		shares[i] = s.Clone()
	}
	shares[shareIndex] = newShare.Clone()

	coeffs := make([]*pairing.G1, len(agg.Coeffs))
	for k, c := range agg.Coeffs {
		coeffs[k] = c.Clone()
	}

	return &aggregate.AggregatedTranscript{Coeffs: coeffs, Shares: shares, Sigma: agg.Sigma.Clone()}, nil
}

func challenge(shareIndex uint32, newEk, d, r *pairing.G2) (*pairing.Scalar, error) {
	idxBytes := wire.AppendUint32(nil, shareIndex)
	ekBytes, err := newEk.MarshalBinary()
	if err != nil {
		return nil, err
	}
	dBytes, err := d.MarshalBinary()
	if err != nil {
		return nil, err
	}
	rBytes, err := r.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return pairing.HashToScalar(challengeDST, idxBytes, ekBytes, dBytes, rBytes)
}

// MarshalBinary encodes share_index:u32 || double_blinded_share:G2 ||
// old_blinded_share:G2 || new_blinding_commitment:G2 ||
// challenge_response:scalar (§6 "straightforward field-by-field canonical
// serialization").
func (ht *Transcript) MarshalBinary() ([]byte, error) {
	buf := wire.AppendUint32(nil, ht.ShareIndex)
	buf, err := wire.AppendElement(buf, ht.DoubleBlindedShare)
	if err != nil {
		return nil, err
	}
	buf, err = wire.AppendElement(buf, ht.OldBlindedShare)
	if err != nil {
		return nil, err
	}
	buf, err = wire.AppendElement(buf, ht.NewBlindingCommitment)
	if err != nil {
		return nil, err
	}
	return wire.AppendElement(buf, ht.ChallengeResponse)
}

// UnmarshalBinary decodes the layout produced by MarshalBinary.
func (ht *Transcript) UnmarshalBinary(data []byte) error {
	idx, rest, err := wire.ReadUint32(data)
	if err != nil {
		return err
	}
	d, rest, err := wire.ReadElement(rest, pairing.G2Size, func() *pairing.G2 { return new(pairing.G2) })
	if err != nil {
		return err
	}
	old, rest, err := wire.ReadElement(rest, pairing.G2Size, func() *pairing.G2 { return new(pairing.G2) })
	if err != nil {
		return err
	}
	r, rest, err := wire.ReadElement(rest, pairing.G2Size, func() *pairing.G2 { return new(pairing.G2) })
	if err != nil {
		return err
	}
	s, rest, err := wire.ReadElement(rest, pairing.ScalarSize, func() *pairing.Scalar { return new(pairing.Scalar) })
	if err != nil {
		return err
	}
	if err := wire.ExpectConsumed(rest); err != nil {
		return err
	}
	ht.ShareIndex, ht.DoubleBlindedShare, ht.OldBlindedShare, ht.NewBlindingCommitment, ht.ChallengeResponse = idx, d, old, r, s
	return nil
}
