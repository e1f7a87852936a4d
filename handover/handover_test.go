package handover

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"go.dedis.ch/tpke/aggregate"
	"go.dedis.ch/tpke/dkgsession"
	"go.dedis.ch/tpke/pairing"
	"go.dedis.ch/tpke/pvss"
	"go.dedis.ch/tpke/registry"
	"go.dedis.ch/tpke/tdec"
)

type fixture struct {
	sess *dkgsession.Session
	agg  *aggregate.AggregatedTranscript
	dk   []*pairing.Scalar
	ek   []*pairing.G2
}

func buildFixture(t *testing.T, n, threshold, dealers int) *fixture {
	t.Helper()
	dk := make([]*pairing.Scalar, n)
	ek := make([]*pairing.G2, n)
	validators := make([]*registry.Validator, n)
	for i := 0; i < n; i++ {
		id, err := registry.GenerateIdentityKeyPair(rand.Reader)
		require.NoError(t, err)
		d, err := pairing.RandomScalar(rand.Reader)
		require.NoError(t, err)
		dk[i] = d
		ek[i] = new(pairing.G2).ScalarMul(nil, d)
		validators[i] = &registry.Validator{
			Address:           id.Address(),
			IdentityPublicKey: id.PublicKey(),
			DkgPublicKey:      ek[i],
			ShareIndex:        uint32(i),
		}
	}
	reg, err := registry.NewRegistry(validators)
	require.NoError(t, err)
	sess, err := dkgsession.New(dkgsession.Params{Tau: 1, Threshold: threshold}, reg, nil)
	require.NoError(t, err)

	transcripts := make([]*pvss.Transcript, dealers)
	for i := 0; i < dealers; i++ {
		secret, err := pairing.RandomScalar(rand.Reader)
		require.NoError(t, err)
		tr, err := pvss.CreateTranscript(rand.Reader, secret, sess)
		require.NoError(t, err)
		transcripts[i] = tr
	}
	agg, err := aggregate.Aggregate(transcripts)
	require.NoError(t, err)

	return &fixture{sess: sess, agg: agg, dk: dk, ek: ek}
}

func decryptWith(t *testing.T, sess *dkgsession.Session, agg *aggregate.AggregatedTranscript, dk []*pairing.Scalar, ct *tdec.Ciphertext, aad []byte, indices []int) string {
	t.Helper()
	shares := make([]*tdec.DecryptionShareSimple, len(indices))
	points := make([]*pairing.Scalar, len(indices))
	for k, idx := range indices {
		s, err := tdec.CreateDecryptionShareSimple(ct, agg.Shares[idx], dk[idx])
		require.NoError(t, err)
		shares[k] = s
		points[k] = sess.Domain().Point(idx)
	}
	secret, err := tdec.CombineSimple(shares, points)
	require.NoError(t, err)
	pt, err := tdec.DecryptWithSharedSecret(ct, aad, secret)
	require.NoError(t, err)
	return string(pt)
}

// TestHandoverInvariance is scenario S6: N=4, t=3. Hand slot 2 over to a
// freshly generated keypair, then decrypt the pre-handover ciphertext
// using slots 0, 1 (original) and 2 (new keypair).
func TestHandoverInvariance(t *testing.T) {
	fx := buildFixture(t, 4, 3, 2)
	pk := fx.agg.PublicKey()
	ct, err := tdec.Encrypt(rand.Reader, []byte("abc"), []byte("my-aad"), pk)
	require.NoError(t, err)
	require.Equal(t, "abc", decryptWith(t, fx.sess, fx.agg, fx.dk, ct, []byte("my-aad"), []int{0, 1, 2}))

	newDk, err := pairing.RandomScalar(rand.Reader)
	require.NoError(t, err)
	newEk := new(pairing.G2).ScalarMul(nil, newDk)

	const slot = 2
	ht, err := Create(rand.Reader, slot, fx.agg.Shares[slot], newDk)
	require.NoError(t, err)

	ok, err := Verify(fx.sess, fx.agg, fx.ek[slot], newEk, ht)
	require.NoError(t, err)
	require.True(t, ok)

	newShare, err := Finalize(ht, fx.dk[slot], fx.ek[slot])
	require.NoError(t, err)

	newAgg, err := ApplyFinalized(fx.agg, slot, newShare)
	require.NoError(t, err)
	require.True(t, newAgg.Coeffs[0].Equal(fx.agg.Coeffs[0]))
	require.True(t, newAgg.Sigma.Equal(fx.agg.Sigma))

	newDks := append([]*pairing.Scalar(nil), fx.dk...)
	newDks[slot] = newDk
	require.Equal(t, "abc", decryptWith(t, fx.sess, newAgg, newDks, ct, []byte("my-aad"), []int{0, 1, slot}))
}

// TestFinalizeRejectsWrongKeypair attempts to finalize with the incoming
// keypair instead of the declared outgoing one.
func TestFinalizeRejectsWrongKeypair(t *testing.T) {
	fx := buildFixture(t, 4, 3, 2)
	const slot = 2
	newDk, err := pairing.RandomScalar(rand.Reader)
	require.NoError(t, err)

	ht, err := Create(rand.Reader, slot, fx.agg.Shares[slot], newDk)
	require.NoError(t, err)

	_, err = Finalize(ht, newDk, fx.ek[slot])
	require.Error(t, err)
	var mismatch *ValidatorPublicKeyMismatchError
	require.ErrorAs(t, err, &mismatch)
}

func TestVerifyRejectsTamperedChallengeResponse(t *testing.T) {
	fx := buildFixture(t, 4, 3, 2)
	const slot = 2
	newDk, err := pairing.RandomScalar(rand.Reader)
	require.NoError(t, err)
	newEk := new(pairing.G2).ScalarMul(nil, newDk)

	ht, err := Create(rand.Reader, slot, fx.agg.Shares[slot], newDk)
	require.NoError(t, err)

	stray, err := pairing.RandomScalar(rand.Reader)
	require.NoError(t, err)
	ht.ChallengeResponse = stray

	ok, err := Verify(fx.sess, fx.agg, fx.ek[slot], newEk, ht)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestVerifyRejectsWrongIncomingKey(t *testing.T) {
	fx := buildFixture(t, 4, 3, 2)
	const slot = 2
	newDk, err := pairing.RandomScalar(rand.Reader)
	require.NoError(t, err)

	ht, err := Create(rand.Reader, slot, fx.agg.Shares[slot], newDk)
	require.NoError(t, err)

	otherDk, err := pairing.RandomScalar(rand.Reader)
	require.NoError(t, err)
	otherEk := new(pairing.G2).ScalarMul(nil, otherDk)

	ok, err := Verify(fx.sess, fx.agg, fx.ek[slot], otherEk, ht)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestHandoverTranscriptRoundTrip(t *testing.T) {
	fx := buildFixture(t, 4, 3, 2)
	const slot = 1
	newDk, err := pairing.RandomScalar(rand.Reader)
	require.NoError(t, err)
	ht, err := Create(rand.Reader, slot, fx.agg.Shares[slot], newDk)
	require.NoError(t, err)

	b, err := ht.MarshalBinary()
	require.NoError(t, err)
	got := new(Transcript)
	require.NoError(t, got.UnmarshalBinary(b))

	require.Equal(t, ht.ShareIndex, got.ShareIndex)
	require.True(t, ht.DoubleBlindedShare.Equal(got.DoubleBlindedShare))
	require.True(t, ht.OldBlindedShare.Equal(got.OldBlindedShare))
	require.True(t, ht.NewBlindingCommitment.Equal(got.NewBlindingCommitment))
	require.True(t, ht.ChallengeResponse.Equal(got.ChallengeResponse))
}
