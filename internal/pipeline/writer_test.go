package pipeline

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite_SortedWithTrailingNewline(t *testing.T) {
	urls := Set{}
	urls.Add("http://b.com")
	urls.Add("http://a.com")

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, urls))
	assert.Equal(t, "http://a.com\nhttp://b.com\n", buf.String())
}

func TestWrite_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Set{}))
	assert.Zero(t, buf.Len())
}

func TestWriteFile_Idempotent(t *testing.T) {
	urls := Set{}
	for _, u := range []string{"https://z.org/p", "ftp://files.local", "http://a.com/x", "http://A.com"} {
		urls.Add(u)
	}
	dir := t.TempDir()
	first := filepath.Join(dir, "first.txt")
	second := filepath.Join(dir, "second.txt")

	require.NoError(t, WriteFile(first, urls))
	require.NoError(t, WriteFile(second, urls))

	a := readOutput(t, first)
	assert.Equal(t, a, readOutput(t, second))
	assert.Equal(t, "ftp://files.local\nhttp://A.com\nhttp://a.com/x\nhttps://z.org/p\n", a)
}

func TestWriteFile_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale content that is longer\n"), 0o644))

	urls := Set{}
	urls.Add("http://x.com")
	require.NoError(t, WriteFile(path, urls))
	assert.Equal(t, "http://x.com\n", readOutput(t, path))
}

func TestWriteFile_BadDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.txt")
	assert.Error(t, WriteFile(path, Set{}))
}
