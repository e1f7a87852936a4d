package tdec

import (
	"go.dedis.ch/tpke/pairing"
	"go.dedis.ch/tpke/poly"
)

// CombineSimple recovers the shared secret from t simple decryption shares
// and their domain points by Lagrange-weighting each in the exponent and
// multiplying in GT (§4.7 "Simple"). The caller owns and must zeroize the
// returned secret.
func CombineSimple(shares []*DecryptionShareSimple, domainPoints []*pairing.Scalar) (*pairing.GT, error) {
	if len(shares) != len(domainPoints) {
		return nil, &MismatchedShareCountError{Shares: len(shares), Points: len(domainPoints)}
	}
	if len(shares) == 0 {
		return nil, &NoSharesToCombineError{}
	}

	weights := poly.LagrangeAt0(domainPoints)
	secret := pairing.GTIdentity()
	for i, s := range shares {
		term := new(pairing.GT).Exp(s.Share, weights[i])
		secret = new(pairing.GT).Mul(secret, term)
	}
	return secret, nil
}

// CombinePrecomputed recovers the shared secret from precomputed
// decryption shares by plain multiplication: the Lagrange weighting was
// already absorbed when each share was created (§4.7 "Precomputed").
func CombinePrecomputed(shares []*DecryptionSharePrecomputed) (*pairing.GT, error) {
	if len(shares) == 0 {
		return nil, &NoSharesToCombineError{}
	}

	seen := make(map[uint32]struct{}, len(shares))
	secret := pairing.GTIdentity()
	for _, s := range shares {
		if _, dup := seen[s.DecrypterIndex]; dup {
			return nil, &DuplicateDecrypterIndexError{DecrypterIndex: s.DecrypterIndex}
		}
		seen[s.DecrypterIndex] = struct{}{}
		secret = new(pairing.GT).Mul(secret, s.Share)
	}
	return secret, nil
}
