package filesystem

import (
	"io"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAferoFS_FileRoundTrip(t *testing.T) {
	fsys := NewAfero(afero.NewMemMapFs())

	require.NoError(t, fsys.MkdirAll("/dir/sub", 0755))
	require.NoError(t, fsys.WriteFile("/dir/sub/file.txt", []byte("hello"), 0644))

	data, err := fsys.ReadFile("/dir/sub/file.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	info, err := fsys.Stat("/dir/sub/file.txt")
	require.NoError(t, err)
	assert.Equal(t, int64(5), info.Size())
	assert.False(t, info.IsDir())
}

func TestAferoFS_OpenAndCreate(t *testing.T) {
	fsys := NewAfero(afero.NewMemMapFs())

	out, err := fsys.Create("/file.txt")
	require.NoError(t, err)
	_, err = out.Write([]byte("streamed"))
	require.NoError(t, err)
	require.NoError(t, out.Close())

	in, err := fsys.Open("/file.txt")
	require.NoError(t, err)
	data, err := io.ReadAll(in)
	require.NoError(t, err)
	require.NoError(t, in.Close())
	assert.Equal(t, "streamed", string(data))
}

func TestAferoFS_ReadDir(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/dir/b.txt", []byte("b"), 0644))
	require.NoError(t, afero.WriteFile(mem, "/dir/a.txt", []byte("a"), 0644))
	require.NoError(t, mem.MkdirAll("/dir/sub", 0755))

	entries, err := NewAfero(mem).ReadDir("/dir")
	require.NoError(t, err)
	require.Len(t, entries, 3)

	names := make(map[string]bool)
	for _, e := range entries {
		names[e.Name()] = e.IsDir()
	}
	assert.False(t, names["a.txt"])
	assert.False(t, names["b.txt"])
	assert.True(t, names["sub"])
}

func TestAferoFS_ReadFileOnDirectoryFails(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("/dir", 0755))

	_, err := NewAfero(mem).ReadFile("/dir")
	assert.Error(t, err)
}

func TestAferoFS_Chtimes(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/file.txt", []byte("x"), 0644))

	fsys := NewAfero(mem)
	mtime := time.Date(2022, 7, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, fsys.Chtimes("/file.txt", mtime, mtime))

	info, err := fsys.Stat("/file.txt")
	require.NoError(t, err)
	assert.Equal(t, mtime.Unix(), info.ModTime().Unix())
}

func TestNewOS(t *testing.T) {
	fsys := NewOS()

	dir := t.TempDir()
	require.NoError(t, fsys.WriteFile(dir+"/file.txt", []byte("on disk"), 0644))

	data, err := fsys.ReadFile(dir + "/file.txt")
	require.NoError(t, err)
	assert.Equal(t, "on disk", string(data))

	entries, err := fsys.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "file.txt", entries[0].Name())
}
