package registry

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// DuplicateShareIndexError reports two validators claiming the same
// share_index (§3, §9 "never trust callers").
type DuplicateShareIndexError struct {
	ShareIndex uint32
}

func (e *DuplicateShareIndexError) Error() string {
	return fmt.Sprintf("registry: duplicate share_index %d", e.ShareIndex)
}

// DuplicateValidatorAddressError reports two validators sharing a dealer
// address.
type DuplicateValidatorAddressError struct {
	Address common.Address
}

func (e *DuplicateValidatorAddressError) Error() string {
	return fmt.Sprintf("registry: duplicate validator address %x", e.Address)
}

// NonContiguousShareIndexError reports a gap in the 0..N-1 share_index
// assignment the registry requires (§3).
type NonContiguousShareIndexError struct {
	SharesNum int
	Missing   uint32
}

func (e *NonContiguousShareIndexError) Error() string {
	return fmt.Sprintf("registry: share_index assignment for %d validators is missing index %d", e.SharesNum, e.Missing)
}

// UnknownDealerError reports a transcript or bundle from an address absent
// from the registry.
type UnknownDealerError struct {
	Address common.Address
}

func (e *UnknownDealerError) Error() string {
	return fmt.Sprintf("registry: unknown dealer %x", e.Address)
}
