package dkgsession

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// InvalidParamsError reports a threshold outside (0, SharesNum].
type InvalidParamsError struct {
	Threshold int
	SharesNum int
}

func (e *InvalidParamsError) Error() string {
	return fmt.Sprintf("dkgsession: threshold %d invalid for %d validators", e.Threshold, e.SharesNum)
}

// UnknownSelfValidatorError reports a "self" validator absent from, or
// misindexed in, the session's registry.
type UnknownSelfValidatorError struct {
	Address common.Address
}

func (e *UnknownSelfValidatorError) Error() string {
	return fmt.Sprintf("dkgsession: self validator %x not found in registry at its claimed share_index", e.Address)
}
