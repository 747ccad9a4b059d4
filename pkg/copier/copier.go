// Package copier mirrors matched files into the output tree.
//
// Whether a given file is actually copied is decided by an injected
// disposition policy. Dry-run, interactive confirmation, and the default
// copy-everything behavior are all policies over the same copy routine, so
// the mode branching lives in one place.
package copier

import (
	"io"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"

	"github.com/codeharvest/harvest/pkg/errors"
	"github.com/codeharvest/harvest/pkg/logging"
	"github.com/codeharvest/harvest/pkg/types"
)

// Always is the default disposition: every matched file is copied.
func Always() types.Disposition {
	return func(types.MatchRecord) types.Decision {
		return types.DecisionCopy
	}
}

// DryRun skips every copy while leaving the manifest untouched.
func DryRun() types.Disposition {
	return func(types.MatchRecord) types.Decision {
		return types.DecisionSkip
	}
}

// Interactive prompts per file. A negative answer skips the copy; the
// manifest entry remains either way. Prompt failures (closed stdin) are
// treated as a decline.
func Interactive() types.Disposition {
	logger := logging.GetLogger("copier")
	return func(rec types.MatchRecord) types.Decision {
		ok, err := pterm.DefaultInteractiveConfirm.
			WithDefaultValue(true).
			Show("Copy " + rec.RelPath + "?")
		if err != nil {
			logger.Warn().Err(err).Str("file", rec.RelPath).Msg("Confirmation failed, skipping copy")
			return types.DecisionSkip
		}
		if !ok {
			return types.DecisionSkip
		}
		return types.DecisionCopy
	}
}

// Copier places matched files under the output root, preserving their path
// relative to the scan root.
type Copier struct {
	fs      types.FS
	outRoot string
	decide  types.Disposition
	logger  zerolog.Logger
}

// New creates a Copier writing under outRoot with the given disposition.
func New(fsys types.FS, outRoot string, decide types.Disposition) *Copier {
	return &Copier{
		fs:      fsys,
		outRoot: outRoot,
		decide:  decide,
		logger:  logging.GetLogger("copier"),
	}
}

// Place copies the record's file to <outRoot>/<RelPath> if the disposition
// says so, creating parent directories on demand. It reports whether the
// file was copied. Copy errors affect only this file; the caller is
// expected to warn and continue.
func (c *Copier) Place(rec types.MatchRecord) (bool, error) {
	if c.decide(rec) == types.DecisionSkip {
		c.logger.Debug().Str("file", rec.RelPath).Msg("Copy skipped by disposition")
		return false, nil
	}

	dst := filepath.Join(c.outRoot, filepath.FromSlash(rec.RelPath))
	if err := c.fs.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return false, errors.Wrapf(err, errors.ErrDirCreate,
			"cannot create directory for %s", rec.RelPath)
	}

	if err := c.copyContent(rec.AbsPath, dst); err != nil {
		return false, errors.Wrapf(err, errors.ErrFileCopy,
			"cannot copy %s", rec.RelPath)
	}

	// Preserving the modification time is best-effort only.
	if info, err := c.fs.Stat(rec.AbsPath); err == nil {
		if err := c.fs.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
			c.logger.Debug().Err(err).Str("file", dst).Msg("Cannot preserve mtime")
		}
	}

	c.logger.Debug().Str("src", rec.AbsPath).Str("dst", dst).Msg("File copied")
	return true, nil
}

func (c *Copier) copyContent(src, dst string) error {
	in, err := c.fs.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := c.fs.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
