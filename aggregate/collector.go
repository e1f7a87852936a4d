package aggregate

import (
	"crypto/sha256"

	"github.com/ethereum/go-ethereum/common"

	"go.dedis.ch/tpke/dkgsession"
	"go.dedis.ch/tpke/pvss"
	"go.dedis.ch/tpke/registry"
)

// Collector accumulates dealer-submitted transcripts off an external
// bulletin board into a single session's aggregate. It never trusts a
// caller's dealer claim: submissions are checked against the session's
// registry, deduplicated by both dealer address and transcript content, and
// optimistically verified before acceptance (§9 "never trust callers",
// §7 UnknownDealer/DuplicateDealer/DuplicateTranscript/InvalidPvssTranscript).
type Collector struct {
	sess            *dkgsession.Session
	seenDealers     map[common.Address]struct{}
	seenTranscripts map[[32]byte]struct{}
	transcripts     []*pvss.Transcript
}

// NewCollector starts an empty collector bound to sess.
func NewCollector(sess *dkgsession.Session) *Collector {
	return &Collector{
		sess:            sess,
		seenDealers:     make(map[common.Address]struct{}),
		seenTranscripts: make(map[[32]byte]struct{}),
	}
}

// Submit validates and records one dealer's transcript. sigDER is a
// DER-encoded secp256k1 signature, produced by the dealer's
// registry.IdentityKeyPair, over the SHA-256 digest of t's canonical
// encoding: the explicit sender-authentication mechanism the bulletin-board
// boundary needs for UnknownDealer/DuplicateDealer/DuplicateTranscript to
// mean anything (§7, and see DESIGN.md's aggregate entry).
func (c *Collector) Submit(dealer common.Address, t *pvss.Transcript, sigDER []byte) error {
	v, ok := c.sess.Registry().ByAddress(dealer)
	if !ok {
		return &UnknownDealerError{Address: dealer}
	}
	if _, dup := c.seenDealers[dealer]; dup {
		return &DuplicateDealerError{Address: dealer}
	}

	encoded, err := t.MarshalBinary()
	if err != nil {
		return err
	}
	digest := sha256.Sum256(encoded)

	sigOK, err := registry.VerifySignature(v.IdentityPublicKey, digest, sigDER)
	if err != nil {
		return &InvalidDealerSignatureError{Address: dealer}
	}
	if !sigOK {
		return &InvalidDealerSignatureError{Address: dealer}
	}

	if _, dup := c.seenTranscripts[digest]; dup {
		return &DuplicateTranscriptError{Address: dealer}
	}

	ok, err = t.VerifyOptimistic()
	if err != nil {
		return err
	}
	if !ok {
		return &InvalidPvssTranscriptError{Address: dealer}
	}

	c.seenDealers[dealer] = struct{}{}
	c.seenTranscripts[digest] = struct{}{}
	c.transcripts = append(c.transcripts, t)
	return nil
}

// Transcripts returns the accepted transcripts in submission order.
func (c *Collector) Transcripts() []*pvss.Transcript {
	return append([]*pvss.Transcript(nil), c.transcripts...)
}

// Aggregate sums every accepted transcript (§4.4).
func (c *Collector) Aggregate() (*AggregatedTranscript, error) {
	return Aggregate(c.transcripts)
}
