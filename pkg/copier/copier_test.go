package copier

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeharvest/harvest/pkg/errors"
	"github.com/codeharvest/harvest/pkg/filesystem"
	"github.com/codeharvest/harvest/pkg/types"
)

func record(rel, abs string) types.MatchRecord {
	return types.MatchRecord{RelPath: rel, AbsPath: abs}
}

func TestPlace_CopiesPreservingRelativePath(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/scan/a/keep_range.cpp", []byte("content"), 0644))

	c := New(filesystem.NewAfero(mem), "/out", Always())
	copied, err := c.Place(record("a/keep_range.cpp", "/scan/a/keep_range.cpp"))
	require.NoError(t, err)
	assert.True(t, copied)

	data, err := afero.ReadFile(mem, "/out/a/keep_range.cpp")
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
}

func TestPlace_DryRunSkips(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/scan/file.txt", []byte("content"), 0644))

	c := New(filesystem.NewAfero(mem), "/out", DryRun())
	copied, err := c.Place(record("file.txt", "/scan/file.txt"))
	require.NoError(t, err)
	assert.False(t, copied)

	exists, err := afero.Exists(mem, "/out/file.txt")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestPlace_RecopyOverwritesIdentically(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/scan/file.txt", []byte("fresh"), 0644))
	require.NoError(t, afero.WriteFile(mem, "/out/file.txt", []byte("stale and longer"), 0644))

	c := New(filesystem.NewAfero(mem), "/out", Always())
	copied, err := c.Place(record("file.txt", "/scan/file.txt"))
	require.NoError(t, err)
	assert.True(t, copied)

	data, err := afero.ReadFile(mem, "/out/file.txt")
	require.NoError(t, err)
	assert.Equal(t, "fresh", string(data))
}

func TestPlace_MissingSourceIsCopyError(t *testing.T) {
	mem := afero.NewMemMapFs()

	c := New(filesystem.NewAfero(mem), "/out", Always())
	copied, err := c.Place(record("gone.txt", "/scan/gone.txt"))
	require.Error(t, err)
	assert.False(t, copied)
	assert.Equal(t, errors.ErrFileCopy, errors.CodeOf(err))
}

func TestPlace_PreservesModTime(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/scan/file.txt", []byte("content"), 0644))
	mtime := time.Date(2023, 1, 2, 3, 4, 5, 0, time.Local)
	require.NoError(t, mem.Chtimes("/scan/file.txt", mtime, mtime))

	c := New(filesystem.NewAfero(mem), "/out", Always())
	_, err := c.Place(record("file.txt", "/scan/file.txt"))
	require.NoError(t, err)

	info, err := mem.Stat("/out/file.txt")
	require.NoError(t, err)
	assert.Equal(t, mtime.Unix(), info.ModTime().Unix())
}

func TestDispositions(t *testing.T) {
	rec := record("x", "/x")
	assert.Equal(t, types.DecisionCopy, Always()(rec))
	assert.Equal(t, types.DecisionSkip, DryRun()(rec))
}
