// Package dkgsession binds a DKG instance's immutable parameters — the
// session tag τ, the reconstruction threshold, the validator registry and
// the evaluation domain it implies — into the single value every other
// package (pvss, aggregate, tdec, update, handover) is handed to do its
// work (§3 "DkgSession").
package dkgsession

import (
	"go.dedis.ch/tpke/poly"
	"go.dedis.ch/tpke/registry"
)

// Params are the caller-supplied knobs of a DKG session.
type Params struct {
	// Tau distinguishes concurrent or successive sessions run by the same
	// validator set (e.g. an epoch or ritual identifier). The session
	// carries it and returns it from Session.Tau; no hash or signature in
	// this module includes it.
	Tau uint64
	// Threshold is t: t-of-N validators are required to reconstruct the
	// shared secret or to combine a decryption.
	Threshold int
}

// Session is one DKG instance: its parameters, its frozen validator
// registry, and the evaluation domain that registry implies. A Session is
// immutable once built; starting a new ritual over the same or a changed
// validator set means building a new Session, not mutating this one (§5).
type Session struct {
	params   Params
	registry *registry.Registry
	domain   *poly.Domain
	self     *registry.Validator
}

// New validates params against the registry and builds a Session. self, if
// non-nil, names which registered validator this process acts as; it must
// be a member of reg.
func New(params Params, reg *registry.Registry, self *registry.Validator) (*Session, error) {
	n := reg.Size()
	if params.Threshold <= 0 || params.Threshold > n {
		return nil, &InvalidParamsError{Threshold: params.Threshold, SharesNum: n}
	}
	if self != nil {
		if v, ok := reg.ByAddress(self.Address); !ok || v.ShareIndex != self.ShareIndex {
			return nil, &UnknownSelfValidatorError{Address: self.Address}
		}
	}
	return &Session{
		params:   params,
		registry: reg,
		domain:   poly.NewDomain(n),
		self:     self,
	}, nil
}

// Tau returns the session tag.
func (s *Session) Tau() uint64 { return s.params.Tau }

// Threshold returns t.
func (s *Session) Threshold() int { return s.params.Threshold }

// SharesNum returns N, the size of the validator registry.
func (s *Session) SharesNum() int { return s.registry.Size() }

// Registry returns the frozen validator set.
func (s *Session) Registry() *registry.Registry { return s.registry }

// Domain returns the evaluation domain ω_0..ω_{N-1} assigned by share_index.
func (s *Session) Domain() *poly.Domain { return s.domain }

// Self returns the validator this process acts as, or nil if this Session
// is held by an observer with no registered share.
func (s *Session) Self() *registry.Validator { return s.self }

// WithSelf returns a clone of s bound to a different (or no) local
// validator, leaving params, registry and domain untouched (§5: sessions
// are cloned, not mutated, when a process's role in them changes).
func (s *Session) WithSelf(self *registry.Validator) (*Session, error) {
	return New(s.params, s.registry, self)
}
