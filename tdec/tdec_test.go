package tdec

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"go.dedis.ch/tpke/aggregate"
	"go.dedis.ch/tpke/dkgsession"
	"go.dedis.ch/tpke/pairing"
	"go.dedis.ch/tpke/pvss"
	"go.dedis.ch/tpke/registry"
)

type fixture struct {
	sess *dkgsession.Session
	agg  *aggregate.AggregatedTranscript
	dk   []*pairing.Scalar // validator i's DKG private scalar
}

func buildFixture(t *testing.T, n, threshold, dealers int) *fixture {
	t.Helper()
	dk := make([]*pairing.Scalar, n)
	validators := make([]*registry.Validator, n)
	for i := 0; i < n; i++ {
		id, err := registry.GenerateIdentityKeyPair(rand.Reader)
		require.NoError(t, err)
		d, err := pairing.RandomScalar(rand.Reader)
		require.NoError(t, err)
		dk[i] = d
		validators[i] = &registry.Validator{
			Address:           id.Address(),
			IdentityPublicKey: id.PublicKey(),
			DkgPublicKey:      new(pairing.G2).ScalarMul(nil, d),
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

	return &fixture{sess: sess, agg: agg, dk: dk}
}

func TestEndToEndSimpleCombination(t *testing.T) {
	fx := buildFixture(t, 4, 3, 2)
	pk := fx.agg.PublicKey()

	ct, err := Encrypt(rand.Reader, []byte("abc"), []byte("my-aad"), pk)
	require.NoError(t, err)

	combine := func(indices []int) ([]byte, error) {
		shares := make([]*DecryptionShareSimple, len(indices))
		points := make([]*pairing.Scalar, len(indices))
		for k, idx := range indices {
			s, err := CreateDecryptionShareSimple(ct, fx.agg.Shares[idx], fx.dk[idx])
			require.NoError(t, err)
			shares[k] = s
			points[k] = fx.sess.Domain().Point(idx)
		}
		secret, err := CombineSimple(shares, points)
		require.NoError(t, err)
		return DecryptWithSharedSecret(ct, []byte("my-aad"), secret)
	}

	pt, err := combine([]int{0, 1, 2})
	require.NoError(t, err)
	require.Equal(t, "abc", string(pt))

	pt, err = combine([]int{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, "abc", string(pt))

	_, err = combine([]int{0, 1})
	require.Error(t, err)
	var symErr *SymmetricEncryptionError
	require.ErrorAs(t, err, &symErr)
}

func TestDecryptionShareSimpleVerify(t *testing.T) {
	fx := buildFixture(t, 4, 3, 2)
	pk := fx.agg.PublicKey()
	ct, err := Encrypt(rand.Reader, []byte("abc"), nil, pk)
	require.NoError(t, err)

	share, err := CreateDecryptionShareSimple(ct, fx.agg.Shares[0], fx.dk[0])
	require.NoError(t, err)

	v, _ := fx.sess.Registry().ByIndex(0)
	ok, err := share.Verify(ct, fx.agg.Shares[0], v.DkgPublicKey)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestPrecomputedCombinationMatchesSimple(t *testing.T) {
	fx := buildFixture(t, 7, 4, 2)
	pk := fx.agg.PublicKey()
	ct, err := Encrypt(rand.Reader, []byte("precomputed payload"), []byte("aad"), pk)
	require.NoError(t, err)

	selected := []uint32{1, 3, 5, 6}

	precomputed := make([]*DecryptionSharePrecomputed, len(selected))
	for k, idx := range selected {
		s, err := CreateDecryptionSharePrecomputed(ct, fx.agg.Shares[idx], fx.dk[idx], fx.sess.Domain(), selected, idx)
		require.NoError(t, err)
		precomputed[k] = s
	}
	secret, err := CombinePrecomputed(precomputed)
	require.NoError(t, err)
	pt, err := DecryptWithSharedSecret(ct, []byte("aad"), secret)
	require.NoError(t, err)
	require.Equal(t, "precomputed payload", string(pt))

	simpleIdx := []int{1, 3, 5, 6}
	simpleShares := make([]*DecryptionShareSimple, len(simpleIdx))
	points := make([]*pairing.Scalar, len(simpleIdx))
	for k, idx := range simpleIdx {
		s, err := CreateDecryptionShareSimple(ct, fx.agg.Shares[idx], fx.dk[idx])
		require.NoError(t, err)
		simpleShares[k] = s
		points[k] = fx.sess.Domain().Point(idx)
	}
	simpleSecret, err := CombineSimple(simpleShares, points)
	require.NoError(t, err)
	require.True(t, secret.Equal(simpleSecret))
}

func TestPrecomputedRejectsMixedSelectionSets(t *testing.T) {
	fx := buildFixture(t, 7, 4, 2)
	pk := fx.agg.PublicKey()
	ct, err := Encrypt(rand.Reader, []byte("m"), []byte("aad"), pk)
	require.NoError(t, err)

	setA := []uint32{1, 3, 5, 6}
	setB := []uint32{0, 3, 5, 6}

	var precomputed []*DecryptionSharePrecomputed
	for _, idx := range []uint32{1, 3, 5} {
		s, err := CreateDecryptionSharePrecomputed(ct, fx.agg.Shares[idx], fx.dk[idx], fx.sess.Domain(), setA, idx)
		require.NoError(t, err)
		precomputed = append(precomputed, s)
	}
	sFromOther, err := CreateDecryptionSharePrecomputed(ct, fx.agg.Shares[6], fx.dk[6], fx.sess.Domain(), setB, 6)
	require.NoError(t, err)
	precomputed = append(precomputed, sFromOther)

	secret, err := CombinePrecomputed(precomputed)
	require.NoError(t, err)
	_, err = DecryptWithSharedSecret(ct, []byte("aad"), secret)
	require.Error(t, err)
}

func TestCheckHeaderRejectsTamperedPayloadAndAad(t *testing.T) {
	fx := buildFixture(t, 4, 3, 1)
	pk := fx.agg.PublicKey()
	ct, err := Encrypt(rand.Reader, []byte("abc"), []byte("aad"), pk)
	require.NoError(t, err)

	tampered := *ct
	payload := append([]byte(nil), ct.Payload...)
	payload[0] ^= 0x01
	tampered.Payload = payload
	require.Error(t, CheckHeader(&tampered, []byte("aad")))

	require.Error(t, CheckHeader(ct, []byte("different-aad")))
	require.NoError(t, CheckHeader(ct, []byte("aad")))
}

func TestCiphertextRoundTrip(t *testing.T) {
	fx := buildFixture(t, 4, 3, 1)
	pk := fx.agg.PublicKey()
	ct, err := Encrypt(rand.Reader, []byte("abc"), []byte("aad"), pk)
	require.NoError(t, err)

	b, err := ct.MarshalBinary()
	require.NoError(t, err)
	got := new(Ciphertext)
	require.NoError(t, got.UnmarshalBinary(b))
	require.True(t, ct.Commitment.Equal(got.Commitment))
	require.True(t, ct.AuthTag.Equal(got.AuthTag))
	require.Equal(t, ct.Payload, got.Payload)
}
