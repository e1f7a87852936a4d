package pvss

import "fmt"

// InsufficientValidatorsError reports a session whose registry has fewer
// validators than its SharesNum declares (§4.1 "InsufficientValidators").
type InsufficientValidatorsError struct {
	Got      int
	Expected int
}

func (e *InsufficientValidatorsError) Error() string {
	return fmt.Sprintf("pvss: insufficient validators: got %d, expected %d", e.Got, e.Expected)
}

// DuplicatedShareIndexError reports two validators claiming the same
// share_index during full verification (§4.3, §9).
type DuplicatedShareIndexError struct {
	ShareIndex uint32
}

func (e *DuplicatedShareIndexError) Error() string {
	return fmt.Sprintf("pvss: duplicated share_index %d", e.ShareIndex)
}

// InvalidShareIndexError reports a share index out of the session's range.
type InvalidShareIndexError struct {
	ShareIndex uint32
}

func (e *InvalidShareIndexError) Error() string {
	return fmt.Sprintf("pvss: invalid share_index %d", e.ShareIndex)
}
