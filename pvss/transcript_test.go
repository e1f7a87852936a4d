package pvss

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"go.dedis.ch/tpke/dkgsession"
	"go.dedis.ch/tpke/pairing"
	"go.dedis.ch/tpke/registry"
)

type testParty struct {
	validator *registry.Validator
	dkgKey    *pairing.Scalar
}

func buildSession(t *testing.T, n, threshold int) (*dkgsession.Session, []testParty) {
	t.Helper()
	parties := make([]testParty, n)
	validators := make([]*registry.Validator, n)
	for i := 0; i < n; i++ {
		id, err := registry.GenerateIdentityKeyPair(rand.Reader)
		require.NoError(t, err)
		dk, err := pairing.RandomScalar(rand.Reader)
		require.NoError(t, err)
		v := &registry.Validator{
			Address:           id.Address(),
			IdentityPublicKey: id.PublicKey(),
			DkgPublicKey:      new(pairing.G2).ScalarMul(nil, dk),
			ShareIndex:        uint32(i),
		}
		parties[i] = testParty{validator: v, dkgKey: dk}
		validators[i] = v
	}
	reg, err := registry.NewRegistry(validators)
	require.NoError(t, err)
	sess, err := dkgsession.New(dkgsession.Params{Tau: 1, Threshold: threshold}, reg, nil)
	require.NoError(t, err)
	return sess, parties
}

func TestCreateAndVerifyTranscript(t *testing.T) {
	sess, _ := buildSession(t, 4, 3)
	secret, err := pairing.RandomScalar(rand.Reader)
	require.NoError(t, err)

	tr, err := CreateTranscript(rand.Reader, secret, sess)
	require.NoError(t, err)

	ok, err := tr.VerifyOptimistic()
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = tr.VerifyFull(sess)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestTamperedShareFailsFullNotOptimistic(t *testing.T) {
	sess, _ := buildSession(t, 4, 3)
	secret, err := pairing.RandomScalar(rand.Reader)
	require.NoError(t, err)
	tr, err := CreateTranscript(rand.Reader, secret, sess)
	require.NoError(t, err)

	// Shift shares[0] by h: still a valid G2 point (a flipped byte of its
	// compressed encoding would be rejected by the decoder), but no longer
	// ek_0^{φ(ω_0)}.
	tampered := new(pairing.G2).Add(tr.Shares[0], pairing.G2Generator())
	tr.Shares[0] = tampered

	ok, err := tr.VerifyOptimistic()
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = tr.VerifyFull(sess)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestTranscriptRoundTrip(t *testing.T) {
	sess, _ := buildSession(t, 4, 3)
	secret, err := pairing.RandomScalar(rand.Reader)
	require.NoError(t, err)
	tr, err := CreateTranscript(rand.Reader, secret, sess)
	require.NoError(t, err)

	b, err := tr.MarshalBinary()
	require.NoError(t, err)

	got := new(Transcript)
	require.NoError(t, got.UnmarshalBinary(b))

	require.Len(t, got.Coeffs, len(tr.Coeffs))
	for i := range tr.Coeffs {
		require.True(t, tr.Coeffs[i].Equal(got.Coeffs[i]))
	}
	require.Len(t, got.Shares, len(tr.Shares))
	for i := range tr.Shares {
		require.True(t, tr.Shares[i].Equal(got.Shares[i]))
	}
	require.True(t, tr.Sigma.Equal(got.Sigma))
}

func TestVerifyBatch(t *testing.T) {
	sess, _ := buildSession(t, 4, 3)
	transcripts := make([]*Transcript, 3)
	for i := range transcripts {
		secret, err := pairing.RandomScalar(rand.Reader)
		require.NoError(t, err)
		tr, err := CreateTranscript(rand.Reader, secret, sess)
		require.NoError(t, err)
		transcripts[i] = tr
	}
	tampered := new(pairing.G2).Add(transcripts[1].Shares[0], pairing.G2Generator())
	transcripts[1].Shares[0] = tampered

	results, err := VerifyBatch(sess, transcripts)
	require.NoError(t, err)
	require.Equal(t, []bool{true, false, true}, results)
}
