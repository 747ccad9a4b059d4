// Package manifest writes the two run artifacts: the plain match list and
// the tab-separated manifest.
//
// Both files are truncated as soon as the writer is opened, before any
// scanning happens, so an interrupted run still leaves partial, valid
// artifacts. Every record is written through to the file immediately rather
// than buffered across the run.
package manifest

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/codeharvest/harvest/pkg/errors"
	"github.com/codeharvest/harvest/pkg/logging"
	"github.com/codeharvest/harvest/pkg/types"
)

// Artifact file names inside the output directory.
const (
	// MatchListName is the plain match list, one absolute path per line
	MatchListName = "matches.txt"

	// ManifestName is the tab-separated manifest
	ManifestName = "manifest.tsv"
)

// Writer appends records to the match list and manifest files.
type Writer struct {
	list     io.WriteCloser
	manifest io.WriteCloser
}

// NewWriter creates the output directory if needed and truncates both
// artifact files.
func NewWriter(fsys types.FS, outDir string) (*Writer, error) {
	if err := fsys.MkdirAll(outDir, 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirCreate,
			"cannot create output directory %s", outDir)
	}

	list, err := fsys.Create(filepath.Join(outDir, MatchListName))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrManifestWrite, "cannot create match list")
	}

	mf, err := fsys.Create(filepath.Join(outDir, ManifestName))
	if err != nil {
		_ = list.Close()
		return nil, errors.Wrap(err, errors.ErrManifestWrite, "cannot create manifest")
	}

	logger := logging.GetLogger("manifest")
	logger.Debug().Str("dir", outDir).Msg("Artifact files truncated")
	return &Writer{list: list, manifest: mf}, nil
}

// Append writes one record: the absolute path to the match list and the
// full tab-separated line to the manifest.
func (w *Writer) Append(rec types.MatchRecord) error {
	if _, err := fmt.Fprintf(w.list, "%s\n", rec.AbsPath); err != nil {
		return errors.Wrap(err, errors.ErrManifestWrite, "cannot append to match list")
	}
	_, err := fmt.Fprintf(w.manifest, "%s\t%d\t%d\t%s\t%s\t%s\n",
		rec.DisplayTime, rec.Epoch, rec.Size, rec.SHA256, rec.RelPath, rec.AbsPath)
	if err != nil {
		return errors.Wrap(err, errors.ErrManifestWrite, "cannot append to manifest")
	}
	return nil
}

// Close closes both artifact files.
func (w *Writer) Close() error {
	listErr := w.list.Close()
	mfErr := w.manifest.Close()
	if listErr != nil {
		return listErr
	}
	return mfErr
}
