package update

import (
	"go.dedis.ch/tpke/aggregate"
	"go.dedis.ch/tpke/pairing"
)

// Apply replaces an aggregate's blinded shares with the sum of its
// existing shares and every target's contribution across transcripts,
// leaving Coeffs and Sigma untouched (§4.9 "Application": "the aggregate's
// coeffs are not changed ...; sigma is not changed. The set shares is
// replaced."). Callers are responsible for having verified every
// transcript in transcripts (via Verify) and for supplying at least
// threshold-many before relying on the result for recovery.
func Apply(agg *aggregate.AggregatedTranscript, transcripts []*Transcript) (*aggregate.AggregatedTranscript, error) {
	if len(transcripts) == 0 {
		return nil, &NoUpdateTranscriptsError{}
	}

	newShares := make([]*pairing.G2, len(agg.Shares))
	for i, s := range agg.Shares {
		newShares[i] = s.Clone()
	}

	for _, ut := range transcripts {
		for idx, su := range ut.Updates {
			if int(idx) >= len(newShares) {
				return nil, &InvalidShareUpdateError{Reason: "update targets a share_index outside the aggregate"}
			}
			newShares[idx] = new(pairing.G2).Add(newShares[idx], su.Update)
		}
	}

	coeffs := make([]*pairing.G1, len(agg.Coeffs))
	for k, c := range agg.Coeffs {
		coeffs[k] = c.Clone()
	}

	return &aggregate.AggregatedTranscript{
		Coeffs: coeffs,
		Shares: newShares,
		Sigma:  agg.Sigma.Clone(),
	}, nil
}
