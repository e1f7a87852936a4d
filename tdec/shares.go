package tdec

import (
	"go.dedis.ch/tpke/pairing"
	"go.dedis.ch/tpke/poly"
	"go.dedis.ch/tpke/wire"
)

// DecryptionShareSimple is one validator's contribution to recovering the
// shared secret, unweighted by any Lagrange coefficient (§3, §4.6.1).
type DecryptionShareSimple struct {
	Share    *pairing.GT
	Checksum *pairing.G1
}

// CreateDecryptionShareSimple unblinds blindedShare (the aggregate's
// shares[i]) with dk and produces a checksum proving custody of dk
// (§4.6.1). dk is the validator's DKG private scalar, never persisted
// beyond this call's stack.
func CreateDecryptionShareSimple(ct *Ciphertext, blindedShare *pairing.G2, dk *pairing.Scalar) (*DecryptionShareSimple, error) {
	invDk := new(pairing.Scalar).Inverse(dk)
	defer invDk.Zeroize()

	unblinded := new(pairing.G2).ScalarMul(blindedShare, invDk)
	share, err := pairing.Pair(ct.Commitment, unblinded)
	if err != nil {
		return nil, err
	}
	checksum := new(pairing.G1).ScalarMul(ct.Commitment, invDk)
	return &DecryptionShareSimple{Share: share, Checksum: checksum}, nil
}

// Verify audits a simple decryption share against the aggregate's blinded
// share and the validator's public key (§4.6.1): share == e(checksum,
// blindedShare) and e(checksum, ek) == e(U, h).
func (d *DecryptionShareSimple) Verify(ct *Ciphertext, blindedShare, ek *pairing.G2) (bool, error) {
	lhs, err := pairing.Pair(d.Checksum, blindedShare)
	if err != nil {
		return false, err
	}
	if !d.Share.Equal(lhs) {
		return false, nil
	}
	return pairing.PairEqual(d.Checksum, ek, ct.Commitment, pairing.G2Generator())
}

func (d *DecryptionShareSimple) MarshalBinary() ([]byte, error) {
	buf, err := wire.AppendElement(nil, d.Share)
	if err != nil {
		return nil, err
	}
	return wire.AppendElement(buf, d.Checksum)
}

func (d *DecryptionShareSimple) UnmarshalBinary(data []byte) error {
	share, rest, err := wire.ReadElement(data, pairing.GTSize, func() *pairing.GT { return new(pairing.GT) })
	if err != nil {
		return err
	}
	checksum, rest, err := wire.ReadElement(rest, pairing.G1Size, func() *pairing.G1 { return new(pairing.G1) })
	if err != nil {
		return err
	}
	if err := wire.ExpectConsumed(rest); err != nil {
		return err
	}
	d.Share, d.Checksum = share, checksum
	return nil
}

// DecryptionSharePrecomputed is a decryption share with its Lagrange
// weighting (relative to a fixed selected-participant set) already
// absorbed multiplicatively, reducing client combination to a plain
// product (§3, §4.6.2).
type DecryptionSharePrecomputed struct {
	DecrypterIndex uint32
	Share          *pairing.GT
	Checksum       *pairing.G1
}

// CreateDecryptionSharePrecomputed is CreateDecryptionShareSimple with the
// Lagrange coefficient λ_i(0) — computed against domain, relative to the
// selected index set — absorbed into U before pairing. decrypterIndex
// must itself be a member of selected (§4.6.2, §9).
func CreateDecryptionSharePrecomputed(
	ct *Ciphertext,
	blindedShare *pairing.G2,
	dk *pairing.Scalar,
	domain *poly.Domain,
	selected []uint32,
	decrypterIndex uint32,
) (*DecryptionSharePrecomputed, error) {
	if len(selected) == 0 {
		return nil, &EmptySelectedSetError{}
	}

	points := make([]*pairing.Scalar, len(selected))
	myPos := -1
	seen := make(map[uint32]struct{}, len(selected))
	for i, idx := range selected {
		if _, dup := seen[idx]; dup {
			return nil, &DuplicateSelectedIndexError{ShareIndex: idx}
		}
		seen[idx] = struct{}{}
		points[i] = domain.Point(int(idx))
		if idx == decrypterIndex {
			myPos = i
		}
	}
	if myPos < 0 {
		return nil, &NotInSelectedSetError{DecrypterIndex: decrypterIndex}
	}

	lambda := poly.LagrangeCoefficientAt0(points, myPos)

	invDk := new(pairing.Scalar).Inverse(dk)
	defer invDk.Zeroize()

	unblinded := new(pairing.G2).ScalarMul(blindedShare, invDk)
	weightedU := new(pairing.G1).ScalarMul(ct.Commitment, lambda)
	share, err := pairing.Pair(weightedU, unblinded)
	if err != nil {
		return nil, err
	}
	checksum := new(pairing.G1).ScalarMul(ct.Commitment, invDk)

	return &DecryptionSharePrecomputed{DecrypterIndex: decrypterIndex, Share: share, Checksum: checksum}, nil
}

// Verify audits a precomputed decryption share the same way as the simple
// variant, with the same Lagrange coefficient folded into the expected
// value (§4.6.2).
func (d *DecryptionSharePrecomputed) Verify(ct *Ciphertext, blindedShare, ek *pairing.G2, lagrangeCoeff *pairing.Scalar) (bool, error) {
	base, err := pairing.Pair(d.Checksum, blindedShare)
	if err != nil {
		return false, err
	}
	expected := new(pairing.GT).Exp(base, lagrangeCoeff)
	if !d.Share.Equal(expected) {
		return false, nil
	}
	return pairing.PairEqual(d.Checksum, ek, ct.Commitment, pairing.G2Generator())
}

func (d *DecryptionSharePrecomputed) MarshalBinary() ([]byte, error) {
	buf := wire.AppendUint32(nil, d.DecrypterIndex)
	buf, err := wire.AppendElement(buf, d.Share)
	if err != nil {
		return nil, err
	}
	return wire.AppendElement(buf, d.Checksum)
}

func (d *DecryptionSharePrecomputed) UnmarshalBinary(data []byte) error {
	idx, rest, err := wire.ReadUint32(data)
	if err != nil {
		return err
	}
	share, rest, err := wire.ReadElement(rest, pairing.GTSize, func() *pairing.GT { return new(pairing.GT) })
	if err != nil {
		return err
	}
	checksum, rest, err := wire.ReadElement(rest, pairing.G1Size, func() *pairing.G1 { return new(pairing.G1) })
	if err != nil {
		return err
	}
	if err := wire.ExpectConsumed(rest); err != nil {
		return err
	}
	d.DecrypterIndex, d.Share, d.Checksum = idx, share, checksum
	return nil
}
