package fileserver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackupCommandSubstitutesVerbatim(t *testing.T) {
	f := newFixture(t)

	line := f.provider.BackupCommand("readme.txt")
	assert.Equal(t,
		"cp "+f.root+"/readme.txt "+f.root+"/readme.txt.bak 2>/dev/null",
		line)

	// No escaping or quoting: metacharacters land in the line as-is.
	line = f.provider.BackupCommand("x; touch pwned")
	assert.Equal(t,
		"cp "+f.root+"/x; touch pwned "+f.root+"/x; touch pwned.bak 2>/dev/null",
		line)
}

func TestBackupRunsConstructedLine(t *testing.T) {
	runner := &recordingRunner{}
	f := newFixture(t, WithRunner(runner))

	result, err := f.provider.Execute(context.Background(), "fileserver.backup",
		map[string]interface{}{"name": "readme.txt"}, nil)
	require.NoError(t, err)
	assert.True(t, result.Success)

	require.Len(t, runner.lines, 1)
	assert.Equal(t, f.provider.BackupCommand("readme.txt"), runner.lines[0])
}

func TestBackupReportsExecutorFailure(t *testing.T) {
	runner := &recordingRunner{err: errors.New("exit status 1")}
	f := newFixture(t, WithRunner(runner))

	result, _ := f.provider.Execute(context.Background(), "fileserver.backup",
		map[string]interface{}{"name": "readme.txt"}, nil)
	assert.False(t, result.Success)
	assert.Contains(t, *result.Error, "backup failed")
}

func TestBackupCreatesBakFile(t *testing.T) {
	f := newFixture(t) // real shell runner

	result, err := f.provider.Execute(context.Background(), "fileserver.backup",
		map[string]interface{}{"name": "readme.txt"}, nil)
	require.NoError(t, err)
	require.True(t, result.Success)

	data, err := os.ReadFile(filepath.Join(f.root, "readme.txt.bak"))
	require.NoError(t, err)
	assert.Equal(t, "Welcome to the file server!\n", string(data))
}

// TestBackupInjectedCommandExecutes confirms the unescaped substitution:
// a name carrying a shell metacharacter smuggles a second command into
// the line, and that command's side effect actually happens.
func TestBackupInjectedCommandExecutes(t *testing.T) {
	f := newFixture(t) // real shell runner

	marker := filepath.Join(f.root, "marker")
	name := "x; touch " + marker

	result, err := f.provider.Execute(context.Background(), "fileserver.backup",
		map[string]interface{}{"name": name}, nil)
	require.NoError(t, err)
	assert.True(t, result.Success)

	_, statErr := os.Stat(marker)
	assert.NoError(t, statErr, "injected touch should have run")
}
