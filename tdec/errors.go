package tdec

import "fmt"

// CiphertextVerificationFailedError reports a ciphertext header that does
// not self-verify (§4.5, §7).
type CiphertextVerificationFailedError struct{}

func (e *CiphertextVerificationFailedError) Error() string {
	return "tdec: ciphertext header verification failed"
}

// SymmetricEncryptionError reports an AEAD failure (bad key, tampered
// payload or aad) (§4.8, §7).
type SymmetricEncryptionError struct {
	Err error
}

func (e *SymmetricEncryptionError) Error() string {
	return fmt.Sprintf("tdec: symmetric decryption failed: %v", e.Err)
}

func (e *SymmetricEncryptionError) Unwrap() error { return e.Err }

// DecryptionShareVerificationFailedError reports a share failing its
// checksum proof (§7).
type DecryptionShareVerificationFailedError struct {
	DecrypterIndex uint32
}

func (e *DecryptionShareVerificationFailedError) Error() string {
	return fmt.Sprintf("tdec: decryption share %d failed verification", e.DecrypterIndex)
}

// EmptySelectedSetError reports a precomputed share request with no
// selected participants.
type EmptySelectedSetError struct{}

func (e *EmptySelectedSetError) Error() string {
	return "tdec: empty selected participant set"
}

// DuplicateSelectedIndexError reports a selected-participant set naming
// the same share_index twice.
type DuplicateSelectedIndexError struct {
	ShareIndex uint32
}

func (e *DuplicateSelectedIndexError) Error() string {
	return fmt.Sprintf("tdec: duplicate share_index %d in selected set", e.ShareIndex)
}

// NotInSelectedSetError reports a decrypter computing a precomputed share
// for a selected set it isn't a member of.
type NotInSelectedSetError struct {
	DecrypterIndex uint32
}

func (e *NotInSelectedSetError) Error() string {
	return fmt.Sprintf("tdec: decrypter %d is not a member of the selected set", e.DecrypterIndex)
}

// MismatchedShareCountError reports CombineSimple given unequal numbers of
// shares and domain points.
type MismatchedShareCountError struct {
	Shares int
	Points int
}

func (e *MismatchedShareCountError) Error() string {
	return fmt.Sprintf("tdec: %d shares but %d domain points", e.Shares, e.Points)
}

// NoSharesToCombineError reports an empty combination input.
type NoSharesToCombineError struct{}

func (e *NoSharesToCombineError) Error() string {
	return "tdec: no decryption shares to combine"
}

// DuplicateDecrypterIndexError reports two precomputed shares claiming the
// same decrypter_index.
type DuplicateDecrypterIndexError struct {
	DecrypterIndex uint32
}

func (e *DuplicateDecrypterIndexError) Error() string {
	return fmt.Sprintf("tdec: duplicate decrypter_index %d", e.DecrypterIndex)
}
