package handover

import "fmt"

// InvalidShareIndexError reports a handover transcript naming a
// share_index outside the session or aggregate's range.
type InvalidShareIndexError struct {
	ShareIndex uint32
}

func (e *InvalidShareIndexError) Error() string {
	return fmt.Sprintf("handover: invalid share_index %d", e.ShareIndex)
}

// ValidatorPublicKeyMismatchError reports a Finalize call whose keypair
// does not match the declared outgoing validator (§4.11, §7
// `ValidatorPublicKeyMismatch`).
type ValidatorPublicKeyMismatchError struct{}

func (e *ValidatorPublicKeyMismatchError) Error() string {
	return "handover: finalizing keypair does not match the declared outgoing validator"
}
