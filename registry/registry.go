package registry

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/ethereum/go-ethereum/common"

	"go.dedis.ch/tpke/pairing"
)

// Validator is one participant of a DKG session (§3).
type Validator struct {
	// Address is the validator's dealer-authentication identity.
	Address common.Address
	// IdentityPublicKey verifies signatures from Address.
	IdentityPublicKey *secp256k1.PublicKey
	// DkgPublicKey is the validator's BLS12-381 G2 public key (§2), used to
	// encrypt its PVSS share and to verify transcripts naming it.
	DkgPublicKey *pairing.G2
	// ShareIndex is this validator's position in the evaluation domain;
	// the full validator set must assign 0..N-1 exactly once (§3).
	ShareIndex uint32
}

// Registry is the ordered, share_index-indexed validator set a DKG session
// runs over. It is immutable once built: NewRegistry rejects duplicate
// addresses, duplicate share indices, and any gap in the 0..N-1 assignment
// before a Registry value ever exists (§9 "never trust callers").
type Registry struct {
	validators []*Validator
	byAddress  map[common.Address]*Validator
}

// NewRegistry validates and freezes a validator set.
func NewRegistry(validators []*Validator) (*Registry, error) {
	byIndex := make(map[uint32]*Validator, len(validators))
	byAddress := make(map[common.Address]*Validator, len(validators))
	for _, v := range validators {
		if _, exists := byIndex[v.ShareIndex]; exists {
			return nil, &DuplicateShareIndexError{ShareIndex: v.ShareIndex}
		}
		if _, exists := byAddress[v.Address]; exists {
			return nil, &DuplicateValidatorAddressError{Address: v.Address}
		}
		byIndex[v.ShareIndex] = v
		byAddress[v.Address] = v
	}

	ordered := make([]*Validator, len(validators))
	for i := 0; i < len(validators); i++ {
		v, ok := byIndex[uint32(i)]
		if !ok {
			return nil, &NonContiguousShareIndexError{SharesNum: len(validators), Missing: uint32(i)}
		}
		ordered[i] = v
	}

	return &Registry{validators: ordered, byAddress: byAddress}, nil
}

// Size returns N, the number of registered validators.
func (r *Registry) Size() int {
	return len(r.validators)
}

// ByIndex returns the validator assigned share_index i.
func (r *Registry) ByIndex(i int) (*Validator, bool) {
	if i < 0 || i >= len(r.validators) {
		return nil, false
	}
	return r.validators[i], true
}

// ByAddress looks a validator up by its dealer address.
func (r *Registry) ByAddress(addr common.Address) (*Validator, bool) {
	v, ok := r.byAddress[addr]
	return v, ok
}

// Validators returns the validator set in share_index order. The returned
// slice is a copy; callers may not mutate the registry through it.
func (r *Registry) Validators() []*Validator {
	return append([]*Validator(nil), r.validators...)
}
