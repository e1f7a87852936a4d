package pairing_test

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"go.dedis.ch/tpke/pairing"
)

func TestScalarRoundTrip(t *testing.T) {
	s, err := pairing.RandomScalar(rand.Reader)
	require.NoError(t, err)

	data, err := s.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, pairing.ScalarSize)

	back := pairing.NewScalar()
	require.NoError(t, back.UnmarshalBinary(data))
	require.True(t, s.Equal(back))
}

func TestG1G2RoundTrip(t *testing.T) {
	s, err := pairing.RandomScalar(rand.Reader)
	require.NoError(t, err)

	g1 := new(pairing.G1).ScalarMul(nil, s)
	data, err := g1.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, pairing.G1Size)
	back := new(pairing.G1)
	require.NoError(t, back.UnmarshalBinary(data))
	require.True(t, g1.Equal(back))

	g2 := new(pairing.G2).ScalarMul(nil, s)
	data2, err := g2.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data2, pairing.G2Size)
	back2 := new(pairing.G2)
	require.NoError(t, back2.UnmarshalBinary(data2))
	require.True(t, g2.Equal(back2))
}

func TestPairingBilinearity(t *testing.T) {
	a, err := pairing.RandomScalar(rand.Reader)
	require.NoError(t, err)
	b, err := pairing.RandomScalar(rand.Reader)
	require.NoError(t, err)

	ga := new(pairing.G1).ScalarMul(nil, a)
	hb := new(pairing.G2).ScalarMul(nil, b)

	left, err := pairing.Pair(ga, hb)
	require.NoError(t, err)

	ab := new(pairing.Scalar).Mul(a, b)
	gGen := pairing.G1Generator()
	hGen := pairing.G2Generator()
	gAB := new(pairing.G1).ScalarMul(gGen, ab)
	right, err := pairing.Pair(gAB, hGen)
	require.NoError(t, err)

	require.True(t, left.Equal(right))
}

func TestPairEqual(t *testing.T) {
	s, err := pairing.RandomScalar(rand.Reader)
	require.NoError(t, err)

	g := pairing.G1Generator()
	h := pairing.G2Generator()
	gs := new(pairing.G1).ScalarMul(g, s)
	hs := new(pairing.G2).ScalarMul(h, s)

	ok, err := pairing.PairEqual(gs, h, g, hs)
	require.NoError(t, err)
	require.True(t, ok)

	tampered := new(pairing.G2).Add(hs, h)
	ok, err = pairing.PairEqual(gs, h, g, tampered)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMultiExpG1MatchesSequential(t *testing.T) {
	const n = 5
	points := make([]*pairing.G1, n)
	scalars := make([]*pairing.Scalar, n)
	expected := pairing.G1Identity()
	g := pairing.G1Generator()
	for i := 0; i < n; i++ {
		sc, err := pairing.RandomScalar(rand.Reader)
		require.NoError(t, err)
		scalars[i] = sc
		pt, err := pairing.RandomScalar(rand.Reader)
		require.NoError(t, err)
		points[i] = new(pairing.G1).ScalarMul(g, pt)
		term := new(pairing.G1).ScalarMul(points[i], sc)
		expected.Add(expected, term)
	}
	got, err := pairing.MultiExpG1(points, scalars)
	require.NoError(t, err)
	require.True(t, expected.Equal(got))
}
