// Package session holds the mutable current-identity of one logical
// fileserver session.
package session

// DefaultIdentity is assumed until the first switch-user action.
const DefaultIdentity = "guest"

// Session is the process-wide identity state. One value, no history,
// no locking: every operation reads it, only SwitchUser writes it, and
// the execution model is single-caller.
type Session struct {
	identity string
}

// New creates a session with the given starting identity, falling back
// to DefaultIdentity when empty.
func New(identity string) *Session {
	if identity == "" {
		identity = DefaultIdentity
	}
	return &Session{identity: identity}
}

// Current returns the active identity.
func (s *Session) Current() string {
	return s.identity
}

// SwitchUser replaces the active identity. The name is taken verbatim;
// identities are declared, not authenticated.
func (s *Session) SwitchUser(identity string) {
	s.identity = identity
}
