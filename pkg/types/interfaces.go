package types

import (
	"io"
	"io/fs"
	"time"
)

// FS abstracts filesystem operations for testing and flexibility
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	Open(name string) (io.ReadCloser, error)
	Create(name string) (io.WriteCloser, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	ReadDir(name string) ([]fs.DirEntry, error)
	MkdirAll(path string, perm fs.FileMode) error

	// Other operations
	Chtimes(name string, atime, mtime time.Time) error
}
