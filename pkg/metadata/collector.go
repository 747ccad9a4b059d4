// Package metadata builds the MatchRecord for each matched file.
package metadata

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/codeharvest/harvest/pkg/logging"
	"github.com/codeharvest/harvest/pkg/types"
)

// SentinelSHA256 is recorded when a file's content could not be read. It is
// a zero digest, unambiguous against any real SHA-256 value.
var SentinelSHA256 = strings.Repeat("0", 64)

// DisplayTimeFormat renders the modification time for the manifest's
// human-readable column.
const DisplayTimeFormat = "2006-01-02 15:04:05"

// Collector produces MatchRecords for matched files. Collection is
// best-effort: a file that disappears or turns unreadable mid-scan still
// yields a record, with zeroed metadata and the sentinel digest where
// needed, so the run never aborts over a single file.
type Collector struct {
	fs     types.FS
	logger zerolog.Logger
}

// New creates a Collector over the given filesystem.
func New(fsys types.FS) *Collector {
	return &Collector{
		fs:     fsys,
		logger: logging.GetLogger("metadata"),
	}
}

// Collect builds the MatchRecord for absPath. root is the scan root used to
// derive the relative path.
func (c *Collector) Collect(root, absPath string) types.MatchRecord {
	rec := types.MatchRecord{
		AbsPath: absPath,
		SHA256:  SentinelSHA256,
	}

	rel, err := filepath.Rel(root, absPath)
	if err != nil {
		rel = filepath.Base(absPath)
	}
	rec.RelPath = filepath.ToSlash(rel)

	info, err := c.fs.Stat(absPath)
	if err != nil {
		c.logger.Warn().Err(err).Str("file", absPath).Msg("Cannot stat matched file")
		return rec
	}
	rec.Size = info.Size()
	rec.Epoch = info.ModTime().Unix()
	rec.DisplayTime = info.ModTime().Format(DisplayTimeFormat)

	digest, err := c.hash(absPath)
	if err != nil {
		c.logger.Warn().Err(err).Str("file", absPath).Msg("Cannot hash matched file")
		return rec
	}
	rec.SHA256 = digest

	return rec
}

func (c *Collector) hash(absPath string) (string, error) {
	f, err := c.fs.Open(absPath)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
