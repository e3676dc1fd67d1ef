package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopherlabs/suffixautomaton/automaton"
)

func TestLoadDefaultsToDenseBackend(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "samctl.toml")
	require.NoError(t, os.WriteFile(path, []byte(""), 0o644))

	c, err := Load(path)
	require.NoError(t, err)

	backend, err := c.ResolveBackend()
	require.NoError(t, err)
	assert.Equal(t, automaton.Dense, backend)
}

func TestLoadSparseBackend(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "samctl.toml")
	content := "backend = \"sparse\"\neager_index = true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.True(t, c.EagerIndex)

	backend, err := c.ResolveBackend()
	require.NoError(t, err)
	assert.Equal(t, automaton.Sparse, backend)
}

func TestResolveBackendRejectsUnknown(t *testing.T) {
	c := Config{Backend: "bogus"}
	_, err := c.ResolveBackend()
	assert.ErrorIs(t, err, ErrInvalidBackend)
}
