package fileserver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandboxfs/fileserver/internal/access"
	"github.com/sandboxfs/fileserver/internal/registry"
	"github.com/sandboxfs/fileserver/internal/session"
	"github.com/sandboxfs/fileserver/internal/types"
)

func TestListSeededFiles(t *testing.T) {
	f := newFixture(t)

	result, err := f.provider.Execute(context.Background(), "fileserver.list", nil, nil)
	require.NoError(t, err)
	require.True(t, result.Success)

	files := result.Data["files"].([]map[string]interface{})
	require.Len(t, files, 3)
	assert.Equal(t, "readme.txt", files[0]["name"])
	assert.Equal(t, "admin", files[0]["owner"])
	assert.Equal(t, "0644", files[0]["perm"])
	assert.Equal(t, "secret.txt", files[1]["name"])
	assert.Equal(t, "0600", files[1]["perm"])
	assert.Equal(t, "public.txt", files[2]["name"])
}

func TestListOmitsSoftDeleted(t *testing.T) {
	f := newFixture(t)
	f.registry.MarkNotExists("readme.txt")

	result, _ := f.provider.Execute(context.Background(), "fileserver.list", nil, nil)
	assert.Equal(t, 2, result.Data["count"])
}

func TestReadBypassesRegistryAndAccessControl(t *testing.T) {
	f := newFixture(t)

	// secret.txt is owner-only in the registry, and the session identity
	// is guest: the read path never asks.
	result, err := f.provider.Execute(context.Background(), "fileserver.read",
		map[string]interface{}{"name": "secret.txt"}, nil)
	require.NoError(t, err)
	require.True(t, result.Success)

	lines := result.Data["lines"].([]string)
	require.Len(t, lines, 1)
	assert.Equal(t, "SECRET: The password is hunter2", lines[0])
}

func TestReadUnregisteredFileOnDisk(t *testing.T) {
	f := newFixture(t)

	// A file the registry has never heard of is still readable.
	require.NoError(t, os.WriteFile(filepath.Join(f.root, "stray.txt"), []byte("stray\n"), 0o644))

	result, _ := f.provider.Execute(context.Background(), "fileserver.read",
		map[string]interface{}{"name": "stray.txt"}, nil)
	require.True(t, result.Success)
	assert.Equal(t, []string{"stray"}, result.Data["lines"])
}

func TestReadTraversalEscapesSandbox(t *testing.T) {
	f := newFixture(t)

	outside := filepath.Join(filepath.Dir(f.root), "outside.txt")
	require.NoError(t, os.WriteFile(outside, []byte("escaped\n"), 0o644))

	result, _ := f.provider.Execute(context.Background(), "fileserver.read",
		map[string]interface{}{"name": "../outside.txt"}, nil)
	require.True(t, result.Success)
	assert.Equal(t, []string{"escaped"}, result.Data["lines"])
}

func TestReadMissingFile(t *testing.T) {
	f := newFixture(t)

	result, err := f.provider.Execute(context.Background(), "fileserver.read",
		map[string]interface{}{"name": "nope.txt"}, nil)
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, *result.Error, "cannot open file")
}

func TestReadRequiresName(t *testing.T) {
	f := newFixture(t)

	result, _ := f.provider.Execute(context.Background(), "fileserver.read",
		map[string]interface{}{}, nil)
	assert.False(t, result.Success)
}

func TestWriteNewNameRegistersEntry(t *testing.T) {
	f := newFixture(t)

	result, err := f.provider.Execute(context.Background(), "fileserver.write",
		map[string]interface{}{"name": "notes.txt", "content": "hello"}, nil)
	require.NoError(t, err)
	require.True(t, result.Success)

	data, err := os.ReadFile(filepath.Join(f.root, "notes.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data)) // verbatim, no trailing newline added

	i, ok := f.registry.Find("notes.txt")
	require.True(t, ok)
	e := f.registry.Get(i)
	assert.Equal(t, "guest", e.Owner) // current identity
	assert.Equal(t, DefaultPerm, e.Perm)
	assert.True(t, e.Exists)
}

func TestWriteSameNameDoesNotDuplicate(t *testing.T) {
	f := newFixture(t)
	before := f.registry.Len()

	for i := 0; i < 3; i++ {
		result, _ := f.provider.Execute(context.Background(), "fileserver.write",
			map[string]interface{}{"name": "notes.txt", "content": "v"}, nil)
		require.True(t, result.Success)
	}

	assert.Equal(t, before+1, f.registry.Len())
}

func TestWriteResurrectsSoftDeleted(t *testing.T) {
	f := newFixture(t)
	f.registry.MarkNotExists("readme.txt")

	result, _ := f.provider.Execute(context.Background(), "fileserver.write",
		map[string]interface{}{"name": "readme.txt", "content": "back"}, nil)
	require.True(t, result.Success)

	i, _ := f.registry.Find("readme.txt")
	e := f.registry.Get(i)
	assert.True(t, e.Exists)
	assert.Equal(t, "admin", e.Owner) // original slot, original owner
}

func TestWriteBeyondCapacityReportsSuccess(t *testing.T) {
	root := filepath.Join(t.TempDir(), "sandbox")
	reg := registry.New(3)
	require.NoError(t, registry.NewSeeder(reg, root, nil).Seed(registry.DefaultSeeds()))

	p := NewProvider(root, reg, access.NewChecker(reg, nil), session.New("guest"))

	// Registry is full; the write still reports ordinary success and
	// the entry is silently dropped.
	result, err := p.Execute(context.Background(), "fileserver.write",
		map[string]interface{}{"name": "overflow.txt", "content": "x"}, nil)
	require.NoError(t, err)
	assert.True(t, result.Success)

	assert.Equal(t, 3, reg.Len())
	_, ok := reg.Find("overflow.txt")
	assert.False(t, ok)

	// The file itself was written regardless.
	_, statErr := os.Stat(filepath.Join(root, "overflow.txt"))
	assert.NoError(t, statErr)
}

func TestWriteIOFailureLeavesRegistryUnchanged(t *testing.T) {
	f := newFixture(t)
	before := f.registry.Len()

	// A name resolving into a nonexistent subdirectory fails the create.
	result, _ := f.provider.Execute(context.Background(), "fileserver.write",
		map[string]interface{}{"name": "no/such/dir/x.txt", "content": "x"}, nil)
	assert.False(t, result.Success)
	assert.Equal(t, before, f.registry.Len())
}

func TestWriteHonorsContextIdentity(t *testing.T) {
	f := newFixture(t)
	identity := "alice"

	result, _ := f.provider.Execute(context.Background(), "fileserver.write",
		map[string]interface{}{"name": "alice.txt", "content": "hi"},
		&types.Context{Identity: &identity})
	require.True(t, result.Success)

	i, _ := f.registry.Find("alice.txt")
	assert.Equal(t, "alice", f.registry.Get(i).Owner)
}
