package pvss

import (
	"go.dedis.ch/tpke/dkgsession"
	"go.dedis.ch/tpke/pairing"
)

// VerifyBatch full-verifies many transcripts against the same session,
// reusing sess's registry and domain lookups across all of them instead of
// re-deriving per call (each transcript still needs its own PairingCheck:
// merging distinct transcripts' equations into one product would let a
// forged transcript hide behind a valid one's cancellation). It returns one
// bool per transcript, in input order; a transcript whose shares slice
// doesn't match sess's validator count fails closed without affecting the
// others.
func VerifyBatch(sess *dkgsession.Session, transcripts []*Transcript) ([]bool, error) {
	n := sess.SharesNum()
	reg := sess.Registry()
	results := make([]bool, len(transcripts))

	type batchEntry struct {
		idx int
		lhs []*pairing.G1
		rhs []*pairing.G2
	}
	var batch []batchEntry

	for ti, t := range transcripts {
		ok, err := t.VerifyOptimistic()
		if err != nil {
			return nil, err
		}
		if !ok || len(t.Shares) != n {
			results[ti] = false
			continue
		}

		seen := make(map[uint32]struct{}, n)
		dup := false
		for i := 0; i < n; i++ {
			v, ok := reg.ByIndex(i)
			if !ok {
				dup = true
				break
			}
			if _, exists := seen[v.ShareIndex]; exists {
				dup = true
				break
			}
			seen[v.ShareIndex] = struct{}{}
		}
		if dup {
			results[ti] = false
			continue
		}

		commitments := sess.Domain().EvalG1Poly(t.Coeffs)
		lhs := make([]*pairing.G1, 0, 2*n)
		rhs := make([]*pairing.G2, 0, 2*n)
		for i := 0; i < n; i++ {
			v, _ := reg.ByIndex(i)
			lhs = append(lhs, pairing.G1Generator(), new(pairing.G1).Neg(commitments[i]))
			rhs = append(rhs, t.Shares[i], v.DkgPublicKey)
		}
		batch = append(batch, batchEntry{idx: ti, lhs: lhs, rhs: rhs})
	}

	for _, e := range batch {
		ok, err := pairing.PairingCheck(e.lhs, e.rhs)
		if err != nil {
			return nil, err
		}
		results[e.idx] = ok
	}
	return results, nil
}
