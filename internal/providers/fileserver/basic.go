package fileserver

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/sandboxfs/fileserver/internal/shared/paths"
	"github.com/sandboxfs/fileserver/internal/types"
)

// maxLineBytes bounds a single line during reads.
const maxLineBytes = 4 * 1024 * 1024

// list renders the registry: all entries with Exists=true, in insertion
// order. Pure, no side effects.
func (p *Provider) list() (*types.Result, error) {
	entries := p.registry.List()

	rows := make([]map[string]interface{}, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, map[string]interface{}{
			"name":  e.Name,
			"owner": e.Owner,
			"perm":  fmt.Sprintf("%04o", e.Perm),
		})
	}

	return success(map[string]interface{}{
		"files": rows,
		"count": len(rows),
	})
}

// read returns the file's contents as lines. The registry and access
// control are not consulted: any name that resolves to an openable file
// is readable, whatever the registry says about it.
func (p *Provider) read(params map[string]interface{}) (*types.Result, error) {
	start := time.Now()

	name, ok := params["name"].(string)
	if !ok || name == "" {
		return failure("name parameter required")
	}

	path := paths.Resolve(p.root, name)

	f, err := os.Open(path)
	if err != nil {
		p.observe("read", "failure", start)
		p.logger.Warn("Read failed", zap.String("name", name), zap.Error(err))
		return failure(fmt.Sprintf("cannot open file: %v", err))
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		// A mid-read failure discards whatever was read so far; the
		// caller never sees a truncated stream.
		p.observe("read", "failure", start)
		return failure(fmt.Sprintf("read failed: %v", err))
	}

	p.observe("read", "success", start)
	return success(map[string]interface{}{
		"name":  name,
		"path":  path,
		"lines": lines,
		"count": len(lines),
	})
}

// write creates or truncates the target file, writes content verbatim,
// then registers the name under the acting identity. The registry is
// untouched when the underlying write fails, and a capacity overflow is
// absorbed silently: the caller still sees ordinary success.
func (p *Provider) write(params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	start := time.Now()

	name, ok := params["name"].(string)
	if !ok || name == "" {
		return failure("name parameter required")
	}
	content, ok := params["content"].(string)
	if !ok {
		return failure("content parameter required")
	}

	path := paths.Resolve(p.root, name)

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		p.observe("write", "failure", start)
		p.logger.Warn("Write failed", zap.String("name", name), zap.Error(err))
		return failure(fmt.Sprintf("cannot create file: %v", err))
	}

	owner := p.identity(appCtx)
	if !p.registry.MarkExists(name, owner, DefaultPerm) {
		p.logger.Debug("Registry at capacity, entry dropped",
			zap.String("name", name),
			zap.Int("capacity", p.registry.Capacity()),
		)
		if p.metrics != nil {
			p.metrics.RegistryDropped.Inc()
		}
	}

	p.observe("write", "success", start)
	p.logger.Info("File written",
		zap.String("name", name),
		zap.String("owner", owner),
		zap.Int("size", len(content)),
	)
	return success(map[string]interface{}{
		"written": true,
		"name":    name,
		"size":    len(content),
		"message": "File written successfully.",
	})
}

// switchUser changes the active session identity.
func (p *Provider) switchUser(params map[string]interface{}) (*types.Result, error) {
	username, ok := params["username"].(string)
	if !ok || username == "" {
		return failure("username parameter required")
	}

	p.session.SwitchUser(username)
	p.logger.Info("Identity switched", zap.String("user", username))

	return success(map[string]interface{}{
		"user":    username,
		"message": fmt.Sprintf("Switched to user: %s", username),
	})
}

// auditLog returns recent access control decisions.
func (p *Provider) auditLog(params map[string]interface{}) (*types.Result, error) {
	limit := 0
	if v, ok := params["limit"].(float64); ok {
		limit = int(v)
	}

	entries := p.checker.Audit(limit)
	return success(map[string]interface{}{
		"entries": entries,
		"count":   len(entries),
	})
}
