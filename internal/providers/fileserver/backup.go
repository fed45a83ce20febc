package fileserver

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/sandboxfs/fileserver/internal/shared/paths"
	"github.com/sandboxfs/fileserver/internal/types"
)

// backupTemplate is the fixed command line the name is substituted into.
// The name is not escaped, quoted, or validated before substitution;
// shell-significant characters in it participate in shell parsing of the
// resulting line. The only executor is the shell package's single
// /bin/sh -c call site.
const backupTemplate = "cp %s %s 2>/dev/null"

// BackupCommand returns the exact shell line backup runs for a name.
func (p *Provider) BackupCommand(name string) string {
	src := paths.Resolve(p.root, name)
	dst := paths.Resolve(p.root, paths.BackupName(name))
	return fmt.Sprintf(backupTemplate, src, dst)
}

// backup copies root/name to root/name.bak through the shell runner,
// blocking until the command finishes. Only the exit status is
// inspected; command output is not parsed.
func (p *Provider) backup(ctx context.Context, params map[string]interface{}) (*types.Result, error) {
	start := time.Now()

	name, ok := params["name"].(string)
	if !ok || name == "" {
		return failure("name parameter required")
	}

	line := p.BackupCommand(name)
	p.logger.Info("Creating backup", zap.String("name", name))

	if err := p.runner.RunLine(ctx, line); err != nil {
		p.observe("backup", "failure", start)
		return failure(fmt.Sprintf("backup failed: %v", err))
	}

	p.observe("backup", "success", start)
	return success(map[string]interface{}{
		"backed_up": true,
		"name":      name,
		"message":   "Backup complete.",
	})
}
