package aggregate

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// NoTranscriptsToAggregateError reports an empty aggregation input (§4.4).
type NoTranscriptsToAggregateError struct{}

func (e *NoTranscriptsToAggregateError) Error() string {
	return "aggregate: no transcripts to aggregate"
}

// InvalidTranscriptAggregateError reports an aggregate that doesn't match
// its claimed inputs or fails full verification (§4.4, §7).
type InvalidTranscriptAggregateError struct {
	Reason string
}

func (e *InvalidTranscriptAggregateError) Error() string {
	return fmt.Sprintf("aggregate: invalid transcript aggregate: %s", e.Reason)
}

// UnknownDealerError reports a submission from an address not in the
// session's registry.
type UnknownDealerError struct {
	Address common.Address
}

func (e *UnknownDealerError) Error() string {
	return fmt.Sprintf("aggregate: unknown dealer %s", e.Address.Hex())
}

// DuplicateDealerError reports a second submission from a dealer already
// collected.
type DuplicateDealerError struct {
	Address common.Address
}

func (e *DuplicateDealerError) Error() string {
	return fmt.Sprintf("aggregate: duplicate dealer %s", e.Address.Hex())
}

// DuplicateTranscriptError reports byte-identical transcript content
// resubmitted under a (possibly different) dealer claim.
type DuplicateTranscriptError struct {
	Address common.Address
}

func (e *DuplicateTranscriptError) Error() string {
	return fmt.Sprintf("aggregate: duplicate transcript content from %s", e.Address.Hex())
}

// InvalidPvssTranscriptError reports a transcript that fails its
// optimistic proof of knowledge at ingestion.
type InvalidPvssTranscriptError struct {
	Address common.Address
}

func (e *InvalidPvssTranscriptError) Error() string {
	return fmt.Sprintf("aggregate: invalid PVSS transcript from %s", e.Address.Hex())
}

// InvalidDealerSignatureError reports a submission whose signature does not
// verify against the dealer's registered identity key.
type InvalidDealerSignatureError struct {
	Address common.Address
}

func (e *InvalidDealerSignatureError) Error() string {
	return fmt.Sprintf("aggregate: invalid dealer signature from %s", e.Address.Hex())
}

// InvalidAggregateVerificationParametersError reports a verification
// request naming more validators (Vn) than the session has members (M)
// (§7 `InvalidAggregateVerificationParameters(Vn, M)`).
type InvalidAggregateVerificationParametersError struct {
	Vn int
	M  int
}

func (e *InvalidAggregateVerificationParametersError) Error() string {
	return fmt.Sprintf("aggregate: invalid verification parameters: Vn=%d exceeds M=%d", e.Vn, e.M)
}
