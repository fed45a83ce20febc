package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultIdentity(t *testing.T) {
	s := New("")
	assert.Equal(t, "guest", s.Current())
}

func TestSwitchUser(t *testing.T) {
	s := New("guest")
	s.SwitchUser("admin")
	assert.Equal(t, "admin", s.Current())

	// Identities are declared, not validated.
	s.SwitchUser("anyone at all")
	assert.Equal(t, "anyone at all", s.Current())
}
