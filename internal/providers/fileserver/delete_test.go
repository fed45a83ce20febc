package fileserver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteAccessibleFile(t *testing.T) {
	f := newFixture(t)

	result, err := f.provider.Execute(context.Background(), "fileserver.delete",
		map[string]interface{}{"name": "public.txt"}, nil)
	require.NoError(t, err)
	require.True(t, result.Success)

	// File gone, entry soft-deleted.
	_, statErr := os.Stat(filepath.Join(f.root, "public.txt"))
	assert.True(t, os.IsNotExist(statErr))

	i, ok := f.registry.Find("public.txt")
	require.True(t, ok)
	assert.False(t, f.registry.Get(i).Exists)
}

func TestDeleteMissingFile(t *testing.T) {
	f := newFixture(t)

	result, _ := f.provider.Execute(context.Background(), "fileserver.delete",
		map[string]interface{}{"name": "ghost.txt"}, nil)
	assert.False(t, result.Success)
	assert.Contains(t, *result.Error, "does not exist")
}

func TestSecondDeleteReportsDoesNotExist(t *testing.T) {
	f := newFixture(t)

	result, _ := f.provider.Execute(context.Background(), "fileserver.delete",
		map[string]interface{}{"name": "public.txt"}, nil)
	require.True(t, result.Success)

	result, _ = f.provider.Execute(context.Background(), "fileserver.delete",
		map[string]interface{}{"name": "public.txt"}, nil)
	assert.False(t, result.Success)
	assert.Contains(t, *result.Error, "does not exist")
}

func TestDeletePermissionDenied(t *testing.T) {
	f := newFixture(t)

	// secret.txt exists on disk, is owned by admin, and lacks the
	// world-readable bit; guest is refused before the act phase.
	result, _ := f.provider.Execute(context.Background(), "fileserver.delete",
		map[string]interface{}{"name": "secret.txt"}, nil)
	assert.False(t, result.Success)
	assert.Contains(t, *result.Error, "permission denied")

	// Neither the file nor the registry entry changed.
	_, statErr := os.Stat(filepath.Join(f.root, "secret.txt"))
	assert.NoError(t, statErr)

	i, _ := f.registry.Find("secret.txt")
	assert.True(t, f.registry.Get(i).Exists)
}

func TestDeleteExistenceCheckedBeforeAccess(t *testing.T) {
	f := newFixture(t)

	// Remove the backing file of a registered, owner-only entry: the
	// report is "does not exist", not "permission denied", because the
	// filesystem check runs first.
	require.NoError(t, os.Remove(filepath.Join(f.root, "secret.txt")))

	result, _ := f.provider.Execute(context.Background(), "fileserver.delete",
		map[string]interface{}{"name": "secret.txt"}, nil)
	assert.False(t, result.Success)
	assert.Contains(t, *result.Error, "does not exist")
}

func TestCheckDeletePhases(t *testing.T) {
	f := newFixture(t)

	path, err := f.provider.CheckDelete("public.txt", "guest")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(f.root, "public.txt"), path)

	_, err = f.provider.CheckDelete("ghost.txt", "guest")
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = f.provider.CheckDelete("secret.txt", "guest")
	assert.True(t, errors.Is(err, ErrPermissionDenied))
}

// TestDeleteRemovesObjectPresentAtActTime exercises the check-then-act
// gap deterministically: the object validated by the check phase is
// swapped out before the act phase, and the act removes whatever is
// present then, still reporting success.
func TestDeleteRemovesObjectPresentAtActTime(t *testing.T) {
	f := newFixture(t)

	path, err := f.provider.CheckDelete("public.txt", "guest")
	require.NoError(t, err)

	// Swap: replace the checked file with a different object at the
	// same path during the window between check and act.
	require.NoError(t, os.Remove(path))
	require.NoError(t, os.WriteFile(path, []byte("planted after the check\n"), 0o644))

	// The act phase removes the planted object without re-verifying
	// identity, and reports success.
	require.NoError(t, f.provider.CompleteDelete("public.txt", path))

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))

	i, _ := f.registry.Find("public.txt")
	assert.False(t, f.registry.Get(i).Exists)
}

func TestCompleteDeleteFailureLeavesRegistry(t *testing.T) {
	f := newFixture(t)

	path, err := f.provider.CheckDelete("public.txt", "guest")
	require.NoError(t, err)

	// Make the act phase fail by removing the object with nothing in
	// its place.
	require.NoError(t, os.Remove(path))

	err = f.provider.CompleteDelete("public.txt", path)
	assert.True(t, errors.Is(err, ErrIO))

	i, _ := f.registry.Find("public.txt")
	assert.True(t, f.registry.Get(i).Exists)
}

func TestDeleteDelayIsApplied(t *testing.T) {
	f := newFixture(t, WithDeleteDelay(50*time.Millisecond))

	start := time.Now()
	result, _ := f.provider.Execute(context.Background(), "fileserver.delete",
		map[string]interface{}{"name": "public.txt"}, nil)
	elapsed := time.Since(start)

	require.True(t, result.Success)
	assert.GreaterOrEqual(t, elapsed, 50*time.Millisecond)
}

func TestDeleteDelaySkippedOnRefusal(t *testing.T) {
	f := newFixture(t, WithDeleteDelay(200*time.Millisecond))

	// Refusals stop before the suspension; only the check-to-act gap
	// carries the delay.
	start := time.Now()
	result, _ := f.provider.Execute(context.Background(), "fileserver.delete",
		map[string]interface{}{"name": "ghost.txt"}, nil)
	elapsed := time.Since(start)

	assert.False(t, result.Success)
	assert.Less(t, elapsed, 100*time.Millisecond)
}
