// Package access implements the metadata-based access control decision.
//
// Eligibility is decided purely from registry state: the owner always
// passes, anyone else passes only on the world-readable bit. The decision
// is computed once and never re-verified by callers; the delete protocol
// in the fileserver provider depends on exactly that.
package access

import (
	"time"

	"github.com/google/uuid"

	"github.com/sandboxfs/fileserver/internal/infrastructure/monitoring"
	"github.com/sandboxfs/fileserver/internal/registry"
)

// maxAuditEntries bounds the in-memory audit trail.
const maxAuditEntries = 1024

// AuditEntry records one access control decision.
type AuditEntry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Name      string    `json:"name"`
	Identity  string    `json:"identity"`
	Allowed   bool      `json:"allowed"`
	Reason    string    `json:"reason"`
}

// Checker decides read/delete eligibility from registry metadata.
type Checker struct {
	registry *registry.Registry
	metrics  *monitoring.Metrics
	audit    []AuditEntry
}

// NewChecker creates a checker over the given registry. Metrics may be
// nil.
func NewChecker(reg *registry.Registry, metrics *monitoring.Metrics) *Checker {
	return &Checker{
		registry: reg,
		metrics:  metrics,
	}
}

// CanAccess reports whether identity may operate on the named entry.
//
// Unknown names and soft-deleted entries are both refused; the caller
// cannot distinguish "not recognized" from "recognized but forbidden".
func (c *Checker) CanAccess(name, identity string) bool {
	allowed, reason := c.decide(name, identity)

	c.record(name, identity, allowed, reason)
	if c.metrics != nil {
		c.metrics.RecordAccessCheck(allowed)
	}
	return allowed
}

func (c *Checker) decide(name, identity string) (bool, string) {
	i, ok := c.registry.Find(name)
	if !ok {
		return false, "not in registry"
	}

	entry := c.registry.Get(i)
	if !entry.Exists {
		return false, "marked deleted"
	}
	if entry.Owner == identity {
		return true, "owner"
	}
	if entry.Perm&registry.WorldReadBit != 0 {
		return true, "world-readable"
	}
	return false, "not permitted"
}

// record appends to the audit trail, evicting the oldest entry at the
// bound. Observational only; it never influences decisions.
func (c *Checker) record(name, identity string, allowed bool, reason string) {
	if len(c.audit) >= maxAuditEntries {
		c.audit = c.audit[1:]
	}
	c.audit = append(c.audit, AuditEntry{
		ID:        uuid.NewString(),
		Timestamp: time.Now(),
		Name:      name,
		Identity:  identity,
		Allowed:   allowed,
		Reason:    reason,
	})
}

// Audit returns up to limit most recent decisions, newest last. A
// non-positive limit returns the whole trail.
func (c *Checker) Audit(limit int) []AuditEntry {
	if limit <= 0 || limit > len(c.audit) {
		limit = len(c.audit)
	}
	out := make([]AuditEntry, limit)
	copy(out, c.audit[len(c.audit)-limit:])
	return out
}
