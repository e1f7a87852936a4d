// Package registry holds the validator set a DKG session runs over: each
// validator's dealer-authentication identity (an Ethereum-style address and
// secp256k1 signing key, kept separate from its BLS12-381 DKG key, mirroring
// the dual-curve split the teacher DKG draws between its node-ID suite and
// its pairing suites) and its contiguous share_index assignment (§3).
package registry

import (
	"fmt"
	"io"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	secpecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// IdentityKeyPair authenticates dealer bundles and transcripts on the wire.
// It has nothing to do with the BLS12-381 DKG key material in package
// pairing; a validator's standing identity survives key refresh, recovery
// and handover, all of which rotate the DKG share instead.
type IdentityKeyPair struct {
	priv *secp256k1.PrivateKey
}

// GenerateIdentityKeyPair draws a fresh secp256k1 key pair from rnd.
func GenerateIdentityKeyPair(rnd io.Reader) (*IdentityKeyPair, error) {
	var buf [32]byte
	if _, err := io.ReadFull(rnd, buf[:]); err != nil {
		return nil, fmt.Errorf("registry: reading randomness: %w", err)
	}
	return &IdentityKeyPair{priv: secp256k1.PrivKeyFromBytes(buf[:])}, nil
}

// PublicKey returns the pair's public half.
func (k *IdentityKeyPair) PublicKey() *secp256k1.PublicKey {
	return k.priv.PubKey()
}

// Address derives this pair's Ethereum-style dealer address.
func (k *IdentityKeyPair) Address() common.Address {
	return AddressFromPublicKey(k.PublicKey())
}

// Sign produces a DER-encoded ECDSA signature over digest (a domain-bound
// hash of a dealer bundle or transcript, computed by the caller).
func (k *IdentityKeyPair) Sign(digest [32]byte) []byte {
	return secpecdsa.Sign(k.priv, digest[:]).Serialize()
}

// AddressFromPublicKey derives the 20-byte Ethereum-style address of a
// secp256k1 public key: the low 20 bytes of Keccak256 of its uncompressed
// encoding, sans the leading 0x04 tag.
func AddressFromPublicKey(pub *secp256k1.PublicKey) common.Address {
	uncompressed := pub.SerializeUncompressed()
	hash := crypto.Keccak256(uncompressed[1:])
	var addr common.Address
	copy(addr[:], hash[12:])
	return addr
}

// VerifySignature checks a DER-encoded ECDSA signature against pub.
func VerifySignature(pub *secp256k1.PublicKey, digest [32]byte, sigDER []byte) (bool, error) {
	sig, err := secpecdsa.ParseDERSignature(sigDER)
	if err != nil {
		return false, fmt.Errorf("registry: parse signature: %w", err)
	}
	return sig.Verify(digest[:], pub), nil
}
