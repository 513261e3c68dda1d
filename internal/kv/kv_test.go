package kv

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_GetSetDelete(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, err := m.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)
	assert.True(t, IsNotFound(err))

	require.NoError(t, m.Set(ctx, "k", "v"))
	got, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)

	require.NoError(t, m.Delete(ctx, "k"))
	_, err = m.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	// Deleting a missing key is not an error.
	require.NoError(t, m.Delete(ctx, "k"))
}

func TestFile_GetSetDelete(t *testing.T) {
	ctx := context.Background()
	f, err := NewFile(filepath.Join(t.TempDir(), "vault"))
	require.NoError(t, err)

	_, err = f.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, f.Set(ctx, "pocketbook.accounts", `[]`))
	got, err := f.Get(ctx, "pocketbook.accounts")
	require.NoError(t, err)
	assert.Equal(t, `[]`, got)

	require.NoError(t, f.Delete(ctx, "pocketbook.accounts"))
	_, err = f.Get(ctx, "pocketbook.accounts")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, f.Delete(ctx, "pocketbook.accounts"))
}

func TestFile_Overwrite(t *testing.T) {
	ctx := context.Background()
	f, err := NewFile(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, f.Set(ctx, "k", "first"))
	require.NoError(t, f.Set(ctx, "k", "second"))

	got, err := f.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "second", got)
}

func TestFile_SanitizesKeys(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	f, err := NewFile(dir)
	require.NoError(t, err)

	require.NoError(t, f.Set(ctx, "weird/key name", "v"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "weird_key_name.blob", entries[0].Name())

	got, err := f.Get(ctx, "weird/key name")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}

func TestFile_Permissions(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	f, err := NewFile(dir)
	require.NoError(t, err)

	require.NoError(t, f.Set(ctx, "k", "v"))

	info, err := os.Stat(filepath.Join(dir, "k.blob"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
