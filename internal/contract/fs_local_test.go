package contract

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		full := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	}
}

func TestEnumerateCollectsRustFiles(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"programs/amm/src/lib.rs":   "pub fn swap() {}",
		"programs/amm/src/state.rs": "pub struct Pool;",
		"programs/amm/Cargo.toml":   "[package]",
		"README.md":                 "# readme",
	})

	enum := NewLocalSourceEnumerator()
	files, skipped, err := enum.Enumerate(context.Background(), root, nil, nil)
	require.NoError(t, err)
	assert.Zero(t, skipped)
	require.Len(t, files, 2)

	paths := []string{files[0].Path, files[1].Path}
	assert.Contains(t, paths, "programs/amm/src/lib.rs")
	assert.Contains(t, paths, "programs/amm/src/state.rs")
	for _, f := range files {
		assert.NotEmpty(t, f.Text)
	}
}

func TestEnumerateHonorsExcludes(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"src/lib.rs":            "fn a() {}",
		"target/debug/build.rs": "fn b() {}",
		"tests/swap.rs":         "fn c() {}",
	})

	enum := NewLocalSourceEnumerator()
	files, _, err := enum.Enumerate(context.Background(), root, nil, []string{"target/", "tests/"})
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "src/lib.rs", files[0].Path)
}

func TestEnumerateHonorsAllowList(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"programs/amm/src/lib.rs":   "fn a() {}",
		"programs/vault/src/lib.rs": "fn b() {}",
	})

	enum := NewLocalSourceEnumerator()
	files, _, err := enum.Enumerate(context.Background(), root, []string{"programs/amm"}, nil)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "programs/amm/src/lib.rs", files[0].Path)
}

func TestEnumerateCancelledContext(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"src/lib.rs": "fn a() {}"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	enum := NewLocalSourceEnumerator()
	_, _, err := enum.Enumerate(ctx, root, nil, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
