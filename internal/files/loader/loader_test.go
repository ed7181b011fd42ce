package loader

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/nftmeta/internal/files/filesystem"
	"github.com/vvka-141/nftmeta/pkg/nftmeta"
)

func newTestLoader() (*Loader, *filesystem.MemoryFileSystem) {
	mfs := filesystem.NewMemoryFileSystem("/nfts")
	return NewLoaderWithFS(mfs), mfs
}

func TestNewLoaderWithFS_NilFilesystem(t *testing.T) {
	assert.Panics(t, func() { NewLoaderWithFS(nil) })
}

func TestReadFiles(t *testing.T) {
	l, mfs := newTestLoader()
	mfs.AddFile("nft1.json", `{"a":1}`)
	mfs.AddFile("nft2.json", `{"b":2}`)
	mfs.AddFile("readme.txt", "ignored")

	records, err := l.ReadFiles("/nfts", []string{"nft1.json", "nft2.json"})
	require.NoError(t, err)

	assert.Equal(t, []nftmeta.FileRecord{
		{Filename: "nft1.json", Filedata: map[string]any{"a": float64(1)}},
		{Filename: "nft2.json", Filedata: map[string]any{"b": float64(2)}},
	}, records)
}

func TestReadFiles_PreservesInputOrder(t *testing.T) {
	l, mfs := newTestLoader()
	mfs.AddFile("a.json", `"first"`)
	mfs.AddFile("b.json", `"second"`)

	records, err := l.ReadFiles("/nfts", []string{"b.json", "a.json", "b.json"})
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "b.json", records[0].Filename)
	assert.Equal(t, "second", records[0].Filedata)
	assert.Equal(t, "a.json", records[1].Filename)
	assert.Equal(t, "first", records[1].Filedata)
	assert.Equal(t, "b.json", records[2].Filename)
}

func TestReadFiles_AnyJSONValue(t *testing.T) {
	l, mfs := newTestLoader()
	mfs.AddFile("array.json", `[1, "two", null, true]`)
	mfs.AddFile("null.json", `null`)

	records, err := l.ReadFiles("/nfts", []string{"array.json", "null.json"})
	require.NoError(t, err)

	assert.Equal(t, []any{float64(1), "two", nil, true}, records[0].Filedata)
	assert.Nil(t, records[1].Filedata)
}

func TestReadFiles_EmptyList(t *testing.T) {
	l, _ := newTestLoader()

	records, err := l.ReadFiles("/nfts", nil)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestReadFiles_MissingFileFailsBatch(t *testing.T) {
	l, mfs := newTestLoader()
	mfs.AddFile("a.json", `{"a":1}`)

	records, err := l.ReadFiles("/nfts", []string{"a.json", "b.json"})
	require.Error(t, err)
	assert.Nil(t, records, "no partial records on failure")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Contains(t, err.Error(), "b.json")
	assert.Equal(t, nftmeta.ExitReadError, nftmeta.ExitCodeForError(err))
}

func TestReadFiles_InvalidJSONFailsBatch(t *testing.T) {
	l, mfs := newTestLoader()
	mfs.AddFile("good.json", `{"a":1}`)
	mfs.AddFile("bad.json", `{"a":`)
	mfs.AddFile("never.json", `{}`)

	records, err := l.ReadFiles("/nfts", []string{"good.json", "bad.json", "never.json"})
	require.Error(t, err)
	assert.Nil(t, records)

	var parseErr *nftmeta.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "bad.json", parseErr.Filename)
	assert.Equal(t, nftmeta.ExitParseError, nftmeta.ExitCodeForError(err))
}

func TestReadFiles_OSFileSystem(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nft1.json"), []byte(`{"name":"one"}`), 0644))

	records, err := NewLoader().ReadFiles(dir, []string{"nft1.json"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, map[string]any{"name": "one"}, records[0].Filedata)

	_, err = NewLoader().ReadFiles(dir, []string{"missing.json"})
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestReadFilesCollect(t *testing.T) {
	l, mfs := newTestLoader()
	mfs.AddFile("good.json", `{"a":1}`)
	mfs.AddFile("bad.json", `not json`)

	results := l.ReadFilesCollect("/nfts", []string{"good.json", "missing.json", "bad.json"})
	require.Len(t, results, 3)

	assert.Equal(t, "good.json", results[0].Filename)
	assert.True(t, results[0].OK())
	assert.Equal(t, map[string]any{"a": float64(1)}, results[0].Filedata)
	assert.Len(t, results[0].Checksum, 64)

	assert.Equal(t, "missing.json", results[1].Filename)
	assert.False(t, results[1].OK())
	assert.True(t, errors.Is(results[1].Err, fs.ErrNotExist))
	assert.Empty(t, results[1].Checksum)

	assert.Equal(t, "bad.json", results[2].Filename)
	var parseErr *nftmeta.ParseError
	assert.True(t, errors.As(results[2].Err, &parseErr))
	assert.Nil(t, results[2].Filedata)
}

func TestReadFilesCollect_ChecksumIsOfRawBytes(t *testing.T) {
	l, mfs := newTestLoader()
	mfs.AddFile("compact.json", `{"a":1}`)
	mfs.AddFile("spaced.json", `{ "a": 1 }`)

	results := l.ReadFilesCollect("/nfts", []string{"compact.json", "spaced.json"})
	require.Len(t, results, 2)

	assert.Equal(t, results[0].Filedata, results[1].Filedata)
	assert.NotEqual(t, results[0].Checksum, results[1].Checksum)
}
