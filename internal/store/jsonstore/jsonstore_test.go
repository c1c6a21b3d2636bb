package jsonstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/dixit/internal/store/jsonstore"
)

func TestPutGetRoundTrip(t *testing.T) {
	s := jsonstore.New(t.TempDir())

	type record struct {
		Name string `json:"name"`
		N    int    `json:"n"`
	}
	require.NoError(t, s.Put("k", record{Name: "a", N: 2}))

	var out record
	require.True(t, s.Get("k", &out))
	assert.Equal(t, record{Name: "a", N: 2}, out)
}

func TestGetAbsentKey(t *testing.T) {
	s := jsonstore.New(t.TempDir())
	var out string
	assert.False(t, s.Get("missing", &out))
}

func TestGetCorruptValueReportsAbsent(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "k.json"), []byte("{not json"), 0o600))

	s := jsonstore.New(dir)
	var out map[string]any
	assert.False(t, s.Get("k", &out))
}

func TestPutCreatesRootLazily(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "root")
	s := jsonstore.New(dir)
	require.NoError(t, s.Put("k", "v"))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o700), info.Mode().Perm())
}

func TestPutWritesPrettyJSON(t *testing.T) {
	dir := t.TempDir()
	s := jsonstore.New(dir)
	require.NoError(t, s.Put("k", []string{"a", "b"}))

	b, err := os.ReadFile(filepath.Join(dir, "k.json"))
	require.NoError(t, err)
	assert.Equal(t, "[\n  \"a\",\n  \"b\"\n]", string(b))
}

func TestDeleteIsIdempotent(t *testing.T) {
	s := jsonstore.New(t.TempDir())
	require.NoError(t, s.Put("k", 1))
	require.NoError(t, s.Delete("k"))
	require.NoError(t, s.Delete("k"))

	var out int
	assert.False(t, s.Get("k", &out))
}

func TestDurableEnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DIXIT_DATA_DIR", dir)

	s, err := jsonstore.Durable("/elsewhere")
	require.NoError(t, err)
	require.NoError(t, s.Put("k", "v"))

	_, err = os.Stat(filepath.Join(dir, "k.json"))
	assert.NoError(t, err)
}

func TestSessionEnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DIXIT_SESSION_DIR", dir)

	s := jsonstore.Session()
	require.NoError(t, s.Put("k", "v"))

	_, err := os.Stat(filepath.Join(dir, "k.json"))
	assert.NoError(t, err)
}
