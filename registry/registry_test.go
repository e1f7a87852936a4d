package registry

import (
	"crypto/rand"
	"crypto/sha256"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"go.dedis.ch/tpke/pairing"
)

func newTestValidator(t *testing.T, idx uint32) *Validator {
	t.Helper()
	id, err := GenerateIdentityKeyPair(rand.Reader)
	require.NoError(t, err)
	dkgPriv, err := pairing.RandomScalar(rand.Reader)
	require.NoError(t, err)
	return &Validator{
		Address:           id.Address(),
		IdentityPublicKey: id.PublicKey(),
		DkgPublicKey:      new(pairing.G2).ScalarMul(nil, dkgPriv),
		ShareIndex:        idx,
	}
}

func TestIdentitySignAndVerify(t *testing.T) {
	id, err := GenerateIdentityKeyPair(rand.Reader)
	require.NoError(t, err)

	digest := sha256.Sum256([]byte("dealer bundle"))
	sig := id.Sign(digest)

	ok, err := VerifySignature(id.PublicKey(), digest, sig)
	require.NoError(t, err)
	require.True(t, ok)

	other := sha256.Sum256([]byte("tampered"))
	ok, err = VerifySignature(id.PublicKey(), other, sig)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestAddressIsDeterministic(t *testing.T) {
	id, err := GenerateIdentityKeyPair(rand.Reader)
	require.NoError(t, err)
	require.Equal(t, id.Address(), AddressFromPublicKey(id.PublicKey()))
}

func TestNewRegistryOrdersByShareIndex(t *testing.T) {
	v2 := newTestValidator(t, 2)
	v0 := newTestValidator(t, 0)
	v1 := newTestValidator(t, 1)

	reg, err := NewRegistry([]*Validator{v2, v0, v1})
	require.NoError(t, err)
	require.Equal(t, 3, reg.Size())

	got, ok := reg.ByIndex(0)
	require.True(t, ok)
	require.Equal(t, v0.Address, got.Address)

	got, ok = reg.ByIndex(2)
	require.True(t, ok)
	require.Equal(t, v2.Address, got.Address)
}

func TestNewRegistryRejectsDuplicateShareIndex(t *testing.T) {
	v0a := newTestValidator(t, 0)
	v0b := newTestValidator(t, 0)

	_, err := NewRegistry([]*Validator{v0a, v0b})
	require.Error(t, err)
	var dup *DuplicateShareIndexError
	require.ErrorAs(t, err, &dup)
}

func TestNewRegistryRejectsDuplicateAddress(t *testing.T) {
	v0 := newTestValidator(t, 0)
	v1 := *v0
	v1.ShareIndex = 1

	_, err := NewRegistry([]*Validator{v0, &v1})
	require.Error(t, err)
	var dup *DuplicateValidatorAddressError
	require.ErrorAs(t, err, &dup)
}

func TestNewRegistryRejectsGap(t *testing.T) {
	v0 := newTestValidator(t, 0)
	v2 := newTestValidator(t, 2)

	_, err := NewRegistry([]*Validator{v0, v2})
	require.Error(t, err)
	var gap *NonContiguousShareIndexError
	require.ErrorAs(t, err, &gap)
	require.Equal(t, uint32(1), gap.Missing)
}

func TestByAddressLookup(t *testing.T) {
	v0 := newTestValidator(t, 0)
	v1 := newTestValidator(t, 1)
	reg, err := NewRegistry([]*Validator{v0, v1})
	require.NoError(t, err)

	got, ok := reg.ByAddress(v1.Address)
	require.True(t, ok)
	require.Equal(t, uint32(1), got.ShareIndex)

	_, ok = reg.ByAddress(common.Address{0xff})
	require.False(t, ok)
}
