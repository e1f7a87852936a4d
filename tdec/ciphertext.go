// Package tdec implements the symmetric encryption layer bound to the
// pairing-derived group public key, the two decryption-share variants, and
// their combination into the shared secret that unlocks a ciphertext
// (§4.5–§4.8).
package tdec

import (
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"

	"go.dedis.ch/tpke/aggregate"
	"go.dedis.ch/tpke/pairing"
	"go.dedis.ch/tpke/wire"
)

const (
	kdfKeyDST   = "tpke/aead/key"
	kdfNonceDST = "tpke/aead/nonce"
	headerWDST  = "tpke/ciphertext/header-w"
)

// Ciphertext is a payload encrypted under a DKG group public key (§3).
type Ciphertext struct {
	// Commitment is U = g^r.
	Commitment *pairing.G1
	// AuthTag is W^r, binding the ciphertext to its payload and aad.
	AuthTag *pairing.G2
	Payload []byte
}

// Encrypt seals plaintext under pk with associated data aad (§4.5).
func Encrypt(rnd io.Reader, plaintext, aad []byte, pk *aggregate.DkgPublicKey) (*Ciphertext, error) {
	r, err := pairing.RandomScalar(rnd)
	if err != nil {
		return nil, err
	}
	defer r.Zeroize()

	U := new(pairing.G1).ScalarMul(nil, r)

	gtBase, err := pairing.Pair(pk.Point(), pairing.G2Generator())
	if err != nil {
		return nil, err
	}
	M := new(pairing.GT).Exp(gtBase, r)
	defer M.Zeroize()

	var key [32]byte
	pairing.KDF(M, kdfKeyDST, key[:])
	var nonce [chacha20poly1305.NonceSize]byte
	pairing.KDF(M, kdfNonceDST, nonce[:])

	aead, err := chacha20poly1305.New(key[:])
	if err != nil {
		return nil, fmt.Errorf("tdec: init AEAD: %w", err)
	}
	payload := aead.Seal(nil, nonce[:], plaintext, aad)

	W, err := hashHeader(U, payload, aad)
	if err != nil {
		return nil, err
	}
	authTag := new(pairing.G2).ScalarMul(W, r)

	return &Ciphertext{Commitment: U, AuthTag: authTag, Payload: payload}, nil
}

// CheckHeader recomputes W from (U, payload, aad) and verifies
// e(U, W) == e(g, auth_tag) (§4.5 "Header validity check"). Must be called
// before any secret-key operation on ct.
func CheckHeader(ct *Ciphertext, aad []byte) error {
	W, err := hashHeader(ct.Commitment, ct.Payload, aad)
	if err != nil {
		return err
	}
	ok, err := pairing.PairEqual(ct.Commitment, W, pairing.G1Generator(), ct.AuthTag)
	if err != nil {
		return err
	}
	if !ok {
		return &CiphertextVerificationFailedError{}
	}
	return nil
}

// DecryptWithSharedSecret validates ct's header, derives the AEAD key and
// nonce from secret, and opens the payload (§4.8). secret must equal the
// M = e(pk,h)^r a valid set of decryption shares recovers; the caller owns
// secret and should zeroize it once done.
func DecryptWithSharedSecret(ct *Ciphertext, aad []byte, secret *pairing.GT) ([]byte, error) {
	if err := CheckHeader(ct, aad); err != nil {
		return nil, err
	}

	var key [32]byte
	pairing.KDF(secret, kdfKeyDST, key[:])
	var nonce [chacha20poly1305.NonceSize]byte
	pairing.KDF(secret, kdfNonceDST, nonce[:])

	aead, err := chacha20poly1305.New(key[:])
	if err != nil {
		return nil, fmt.Errorf("tdec: init AEAD: %w", err)
	}
	pt, err := aead.Open(nil, nonce[:], ct.Payload, aad)
	if err != nil {
		return nil, &SymmetricEncryptionError{Err: err}
	}
	return pt, nil
}

// hashHeader hashes (U, payload, aad) to a point of G2 (§4.5 step 5).
func hashHeader(U *pairing.G1, payload, aad []byte) (*pairing.G2, error) {
	msg, err := wire.AppendElement(nil, U)
	if err != nil {
		return nil, err
	}
	msg = wire.AppendBytes(msg, payload)
	msg = wire.AppendBytes(msg, aad)
	return pairing.HashToG2(msg, []byte(headerWDST))
}

// MarshalBinary encodes commitment:G1 || auth_tag:G2 || payload_len:u32 ||
// payload[payload_len] (§6).
func (ct *Ciphertext) MarshalBinary() ([]byte, error) {
	buf, err := wire.AppendElement(nil, ct.Commitment)
	if err != nil {
		return nil, err
	}
	buf, err = wire.AppendElement(buf, ct.AuthTag)
	if err != nil {
		return nil, err
	}
	return wire.AppendBytes(buf, ct.Payload), nil
}

// UnmarshalBinary decodes the layout produced by MarshalBinary.
func (ct *Ciphertext) UnmarshalBinary(data []byte) error {
	commitment, rest, err := wire.ReadElement(data, pairing.G1Size, func() *pairing.G1 { return new(pairing.G1) })
	if err != nil {
		return err
	}
	authTag, rest, err := wire.ReadElement(rest, pairing.G2Size, func() *pairing.G2 { return new(pairing.G2) })
	if err != nil {
		return err
	}
	payload, rest, err := wire.ReadBytes(rest)
	if err != nil {
		return err
	}
	if err := wire.ExpectConsumed(rest); err != nil {
		return err
	}
	ct.Commitment, ct.AuthTag, ct.Payload = commitment, authTag, payload
	return nil
}
