// Package aggregate homomorphically combines PVSS transcripts from
// multiple dealers into a single long-lived aggregate (§4.4) and collects
// transcripts from an authenticated bulletin board on the way in.
package aggregate

import (
	"go.dedis.ch/tpke/dkgsession"
	"go.dedis.ch/tpke/pairing"
	"go.dedis.ch/tpke/pvss"
	"go.dedis.ch/tpke/wire"
)

// AggregatedTranscript is the elementwise sum of contributing PVSS
// transcripts (§3). Its shape mirrors pvss.Transcript; coeffs[0] is the
// group public key.
type AggregatedTranscript struct {
	Coeffs []*pairing.G1
	Shares []*pairing.G2
	Sigma  *pairing.G2
}

// Aggregate sums transcripts elementwise (§4.4). It fails with
// NoTranscriptsToAggregateError on empty input and with
// InvalidTranscriptAggregateError if the transcripts don't share a shape.
func Aggregate(transcripts []*pvss.Transcript) (*AggregatedTranscript, error) {
	if len(transcripts) == 0 {
		return nil, &NoTranscriptsToAggregateError{}
	}

	first := transcripts[0]
	coeffs := make([]*pairing.G1, len(first.Coeffs))
	for k, c := range first.Coeffs {
		coeffs[k] = c.Clone()
	}
	shares := make([]*pairing.G2, len(first.Shares))
	for i, s := range first.Shares {
		shares[i] = s.Clone()
	}
	sigma := first.Sigma.Clone()

	for _, t := range transcripts[1:] {
		if len(t.Coeffs) != len(coeffs) || len(t.Shares) != len(shares) {
			return nil, &InvalidTranscriptAggregateError{Reason: "contributing transcripts have mismatched shapes"}
		}
		for k := range coeffs {
			coeffs[k] = new(pairing.G1).Add(coeffs[k], t.Coeffs[k])
		}
		for i := range shares {
			shares[i] = new(pairing.G2).Add(shares[i], t.Shares[i])
		}
		sigma = new(pairing.G2).Add(sigma, t.Sigma)
	}

	return &AggregatedTranscript{Coeffs: coeffs, Shares: shares, Sigma: sigma}, nil
}

// PublicKey returns the derived group public key agg.coeffs[0] (§4.4).
func (agg *AggregatedTranscript) PublicKey() *DkgPublicKey {
	return &DkgPublicKey{pt: agg.Coeffs[0].Clone()}
}

// VerifyFull runs full PVSS verification (§4.3) against the aggregate,
// reusing the same check a single transcript undergoes since an aggregate
// has the identical Feldman shape.
func (agg *AggregatedTranscript) VerifyFull(sess *dkgsession.Session) (bool, error) {
	t := &pvss.Transcript{Coeffs: agg.Coeffs, Shares: agg.Shares, Sigma: agg.Sigma}
	return t.VerifyFull(sess)
}

// Validate checks an aggregate against a session and the set of
// transcripts it was purportedly built from (§4.4): the aggregate must
// fully verify, and Σ contributing[j].coeffs[0] must equal agg.coeffs[0].
func Validate(agg *AggregatedTranscript, sess *dkgsession.Session, contributing []*pvss.Transcript) error {
	ok, err := agg.VerifyFull(sess)
	if err != nil {
		return err
	}
	if !ok {
		return &InvalidTranscriptAggregateError{Reason: "aggregate fails full verification"}
	}

	sum := pairing.G1Identity()
	for _, t := range contributing {
		sum = new(pairing.G1).Add(sum, t.Coeffs[0])
	}
	if !sum.Equal(agg.Coeffs[0]) {
		return &InvalidTranscriptAggregateError{Reason: "sum of contributing coeffs[0] does not match aggregate"}
	}
	return nil
}

// MarshalBinary encodes the aggregate with the same layout as a
// pvss.Transcript (§6: "AggregatedTranscript: same layout").
func (agg *AggregatedTranscript) MarshalBinary() ([]byte, error) {
	t := &pvss.Transcript{Coeffs: agg.Coeffs, Shares: agg.Shares, Sigma: agg.Sigma}
	return t.MarshalBinary()
}

// UnmarshalBinary decodes the layout produced by MarshalBinary.
func (agg *AggregatedTranscript) UnmarshalBinary(data []byte) error {
	t := new(pvss.Transcript)
	if err := t.UnmarshalBinary(data); err != nil {
		return err
	}
	agg.Coeffs, agg.Shares, agg.Sigma = t.Coeffs, t.Shares, t.Sigma
	return nil
}

// DkgPublicKey is the group public key derived from an aggregate (§3, §6:
// "a single G1").
type DkgPublicKey struct {
	pt *pairing.G1
}

// Point returns the underlying G1 point.
func (k *DkgPublicKey) Point() *pairing.G1 { return k.pt }

func (k *DkgPublicKey) MarshalBinary() ([]byte, error) {
	return wire.AppendElement(nil, k.pt)
}

func (k *DkgPublicKey) UnmarshalBinary(data []byte) error {
	pt, rest, err := wire.ReadElement(data, pairing.G1Size, func() *pairing.G1 { return new(pairing.G1) })
	if err != nil {
		return err
	}
	if err := wire.ExpectConsumed(rest); err != nil {
		return err
	}
	k.pt = pt
	return nil
}
