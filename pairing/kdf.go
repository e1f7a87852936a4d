package pairing

import (
	"github.com/cloudflare/circl/xof/k12"
)

// KDF derives a fixed-length key from a GT-valued shared secret using a
// domain-separated extendable-output function (§4.5 step 3, §6) over the
// secret's GTSize-byte encoding from GT.Bytes. dst distinguishes independent uses of the same
// secret (e.g. "tpke/aead/key" vs "tpke/aead/nonce") the way hash-to-curve
// domain-separation tags do in pairing-based protocols generally.
func KDF(secret *GT, dst string, out []byte) {
	h := k12.NewDraft10([]byte(dst))
	b := secret.Bytes()
	_, _ = h.Write(b[:])
	_, _ = h.Read(out)
}

// HashToScalar derives a uniform element of F_r from the concatenation of
// parts under dst, via rejection sampling against the same XOF stream
// (§4.11's Fiat-Shamir challenges: deterministic given identical inputs,
// with no hidden per-call randomness).
func HashToScalar(dst string, parts ...[]byte) (*Scalar, error) {
	h := k12.NewDraft10([]byte(dst))
	for _, p := range parts {
		_, _ = h.Write(p)
	}
	return RandomScalar(h)
}
