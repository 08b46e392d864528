package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "items.json"), []byte(`["a","b"]`), 0o644))

	var items []string
	ok, err := LoadJSON(dir, "items.json", &items)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, items)
}

func TestLoadJSON_MissingFileIsNotAnError(t *testing.T) {
	var items []string
	ok, err := LoadJSON(t.TempDir(), "absent.json", &items)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, items)
}

func TestLoadJSON_MalformedFileFails(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte(`{`), 0o644))

	var items []string
	_, err := LoadJSON(dir, "bad.json", &items)
	assert.Error(t, err)
}
