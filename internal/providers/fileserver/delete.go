package fileserver

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/sandboxfs/fileserver/internal/shared/paths"
	"github.com/sandboxfs/fileserver/internal/types"
)

// The delete operation is a check-then-act protocol with a deliberately
// widened gap between decision and action. The path is computed once and
// reused textually in both phases; no file handle or identity token
// crosses the gap; the suspension is unconditional. Whatever object sits
// at the resolved path when the act phase runs is what gets removed,
// which is the subsystem's defining hazard and must stay observable.
//
// CheckDelete and CompleteDelete are the two phases, separately callable
// so a test can interleave a filesystem mutation deterministically.

// CheckDelete resolves the path once, verifies that something exists at
// it, and runs the metadata access check against the registry by name.
// It returns the resolved path for the act phase to reuse.
func (p *Provider) CheckDelete(name, identity string) (string, error) {
	path := paths.Resolve(p.root, name)

	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	if !p.checker.CanAccess(name, identity) {
		return "", fmt.Errorf("%w: %s", ErrPermissionDenied, name)
	}

	return path, nil
}

// CompleteDelete removes whatever currently exists at path — with no
// re-verification that it is the object the check phase saw — and on
// success soft-deletes the registry entry. The registry is unchanged on
// failure.
func (p *Provider) CompleteDelete(name, path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	p.registry.MarkNotExists(name)
	return nil
}

// delete composes the protocol: check, unconditional suspension, act.
func (p *Provider) delete(params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	start := time.Now()

	name, ok := params["name"].(string)
	if !ok || name == "" {
		return failure("name parameter required")
	}

	identity := p.identity(appCtx)

	path, err := p.CheckDelete(name, identity)
	if err != nil {
		p.observe("delete", "denied", start)
		p.logger.Info("Delete refused",
			zap.String("name", name),
			zap.String("identity", identity),
			zap.Error(err),
		)
		return failure(err.Error())
	}

	// The fixed delay between decision and action. Not skippable.
	time.Sleep(p.delay)

	if err := p.CompleteDelete(name, path); err != nil {
		p.observe("delete", "failure", start)
		p.logger.Warn("Delete failed", zap.String("name", name), zap.Error(err))
		return failure(fmt.Sprintf("delete failed: %v", err))
	}

	p.observe("delete", "success", start)
	p.logger.Info("File deleted",
		zap.String("name", name),
		zap.String("identity", identity),
	)
	return success(map[string]interface{}{
		"deleted": true,
		"name":    name,
		"message": "File securely deleted.",
	})
}
