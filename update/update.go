// Package update implements the share-update protocols: refresh (root =
// 0, rotates blinding without touching the shared secret) and recovery
// (root = x_r, reconstructs a share at an arbitrary point), both built on
// a dealer-produced UpdateTranscript whose validity any observer can
// check from the transcript and the session alone (§4.9, §4.10).
package update

import (
	"io"

	"go.dedis.ch/tpke/dkgsession"
	"go.dedis.ch/tpke/pairing"
	"go.dedis.ch/tpke/poly"
	"go.dedis.ch/tpke/wire"
)

// ShareUpdate is one dealer's contribution to a single target validator's
// refreshed or recovered share (§3).
type ShareUpdate struct {
	// Update is ek_j^{u(ω_j)}, the blinded update to be added to the
	// target's current blinded share.
	Update *pairing.G2
	// Commitment is g^{u(ω_j)}, checked against the dealer's Coeffs via
	// the evaluation-domain FFT.
	Commitment *pairing.G1
}

// Transcript is a dealer-produced bundle of updates for every target
// validator, plus the polynomial commitments proving they're all
// consistent with a single degree-(t-1) polynomial with the claimed root
// (§3 "UpdateTranscript").
type Transcript struct {
	Coeffs  []*pairing.G1
	Updates map[uint32]*ShareUpdate
}

// NewRefresh deals a refresh update transcript: the update polynomial's
// root is 0, so the secret each validator's share commits to is
// unchanged and only the blinding is re-randomized (§4.9).
func NewRefresh(rnd io.Reader, sess *dkgsession.Session) (*Transcript, error) {
	return create(rnd, sess, pairing.NewScalar())
}

// NewRecovery deals a recovery update transcript with root = xr != 0,
// enabling reconstruction of a share at xr from t such transcripts
// (§4.10). xr must not coincide with any validator's own domain point or
// the recovered share degenerates.
func NewRecovery(rnd io.Reader, sess *dkgsession.Session, xr *pairing.Scalar) (*Transcript, error) {
	if xr.IsZero() {
		return nil, &InvalidRootError{Reason: "recovery root must be nonzero; use NewRefresh for root 0"}
	}
	return create(rnd, sess, xr)
}

func create(rnd io.Reader, sess *dkgsession.Session, root *pairing.Scalar) (*Transcript, error) {
	t := sess.Threshold()
	u, err := poly.RandomWithRoot(rnd, t, root)
	if err != nil {
		return nil, err
	}
	defer u.Zeroize()

	coeffs := make([]*pairing.G1, t)
	for k, a := range u.Coeffs() {
		coeffs[k] = new(pairing.G1).ScalarMul(nil, a)
	}

	reg := sess.Registry()
	domain := sess.Domain()
	n := sess.SharesNum()
	updates := make(map[uint32]*ShareUpdate, n)
	for j := 0; j < n; j++ {
		v, ok := reg.ByIndex(j)
		if !ok {
			return nil, &InvalidShareUpdateError{Reason: "registry missing share_index in session range"}
		}
		y := u.Eval(domain.Point(j))
		updates[uint32(j)] = &ShareUpdate{
			Update:     new(pairing.G2).ScalarMul(v.DkgPublicKey, y),
			Commitment: new(pairing.G1).ScalarMul(nil, y),
		}
	}

	return &Transcript{Coeffs: coeffs, Updates: updates}, nil
}

// Verify checks ut against sess at the given root (§4.9, §4.10):
//   - for every target j, commitment_j == FFT_evaluation_in_G1(coeffs) at ω_j;
//   - e(g, update_j) == e(commitment_j, ek_j);
//   - Σ_k coeffs[k]·root^k == identity (root = 0 for refresh subsumes the
//     "coeffs[0] is the identity" check of §4.9 as a special case).
func Verify(sess *dkgsession.Session, root *pairing.Scalar, ut *Transcript) (bool, error) {
	reg := sess.Registry()
	n := sess.SharesNum()

	commitments := sess.Domain().EvalG1Poly(ut.Coeffs)

	for j := 0; j < n; j++ {
		su, ok := ut.Updates[uint32(j)]
		if !ok {
			continue
		}
		if !su.Commitment.Equal(commitments[j]) {
			return false, nil
		}
		v, ok := reg.ByIndex(j)
		if !ok {
			return false, &InvalidShareUpdateError{Reason: "target share_index outside session range"}
		}
		ok2, err := pairing.PairEqual(pairing.G1Generator(), su.Update, su.Commitment, v.DkgPublicKey)
		if err != nil {
			return false, err
		}
		if !ok2 {
			return false, nil
		}
	}

	rootEval := poly.EvalG1At(ut.Coeffs, root)
	return rootEval.IsIdentity(), nil
}

// MarshalBinary encodes coeffs_len:u32 || coeffs[...]:G1 || updates_len:u32
// || (share_index:u32 || update:G2 || commitment:G1)[updates_len], the
// targets sorted by share_index for a canonical encoding (§6).
func (ut *Transcript) MarshalBinary() ([]byte, error) {
	buf, err := wire.AppendVector[*pairing.G1](nil, ut.Coeffs)
	if err != nil {
		return nil, err
	}
	indices := sortedIndices(ut.Updates)
	buf = wire.AppendUint32(buf, uint32(len(indices)))
	for _, idx := range indices {
		su := ut.Updates[idx]
		buf = wire.AppendUint32(buf, idx)
		buf, err = wire.AppendElement(buf, su.Update)
		if err != nil {
			return nil, err
		}
		buf, err = wire.AppendElement(buf, su.Commitment)
		if err != nil {
			return nil, err
		}
	}
	return buf, nil
}

// UnmarshalBinary decodes the layout produced by MarshalBinary.
func (ut *Transcript) UnmarshalBinary(data []byte) error {
	coeffs, rest, err := wire.ReadVector(data, pairing.G1Size, func() *pairing.G1 { return new(pairing.G1) })
	if err != nil {
		return err
	}
	count, rest, err := wire.ReadUint32(rest)
	if err != nil {
		return err
	}
	updates := make(map[uint32]*ShareUpdate, count)
	for i := uint32(0); i < count; i++ {
		var idx uint32
		idx, rest, err = wire.ReadUint32(rest)
		if err != nil {
			return err
		}
		var upd *pairing.G2
		upd, rest, err = wire.ReadElement(rest, pairing.G2Size, func() *pairing.G2 { return new(pairing.G2) })
		if err != nil {
			return err
		}
		var com *pairing.G1
		com, rest, err = wire.ReadElement(rest, pairing.G1Size, func() *pairing.G1 { return new(pairing.G1) })
		if err != nil {
			return err
		}
		updates[idx] = &ShareUpdate{Update: upd, Commitment: com}
	}
	if err := wire.ExpectConsumed(rest); err != nil {
		return err
	}
	ut.Coeffs, ut.Updates = coeffs, updates
	return nil
}

func sortedIndices(m map[uint32]*ShareUpdate) []uint32 {
	out := make([]uint32, 0, len(m))
	for idx := range m {
		out = append(out, idx)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}
