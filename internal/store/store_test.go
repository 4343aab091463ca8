package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thumbnail-matcher/phash"
)

func TestWriteSortsByFilename(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hashes.json")

	entries := []Entry{
		NewEntry("res010_no021.png", phash.Hash(42)),
		NewEntry("res001_no001.png", phash.Hash(0xffffffffffffffff)),
	}
	require.NoError(t, Write(path, entries))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t,
		`[{"filename":"res001_no001.png","phash":"18446744073709551615"},{"filename":"res010_no021.png","phash":"42"}]`,
		string(data))

	// Input order untouched
	assert.Equal(t, "res010_no021.png", entries[0].Filename)
}

func TestReadBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hashes.json")
	require.NoError(t, Write(path, []Entry{NewEntry("b.png", 7), NewEntry("a.png", 1<<63)}))

	entries, err := Read(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a.png", entries[0].Filename)

	h, err := entries[0].Hash()
	require.NoError(t, err)
	assert.Equal(t, phash.Hash(1<<63), h)
}

func TestReadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Read(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o644))
	_, err = Read(bad)
	assert.Error(t, err)
}
