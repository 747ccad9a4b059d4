// Package walker implements the pruning depth-first traversal that feeds
// the rest of the pipeline.
//
// Every directory is tested against the ignore rules before it is read; a
// matching directory is pruned structurally, so nothing beneath it is ever
// visited or stat'ed. Only regular files are yielded. Directories that
// cannot be read (typically permission problems on messy external trees)
// are skipped silently and traversal continues.
package walker

import (
	"path/filepath"
	"sort"

	"github.com/rs/zerolog"

	"github.com/codeharvest/harvest/pkg/errors"
	"github.com/codeharvest/harvest/pkg/ignore"
	"github.com/codeharvest/harvest/pkg/logging"
	"github.com/codeharvest/harvest/pkg/types"
)

// Walker traverses a directory tree, pruning ignored subtrees.
type Walker struct {
	fs     types.FS
	rules  *ignore.RuleSet
	logger zerolog.Logger
}

// New creates a Walker over the given filesystem and ignore rules.
func New(fsys types.FS, rules *ignore.RuleSet) *Walker {
	if rules == nil {
		rules = ignore.Empty()
	}
	return &Walker{
		fs:     fsys,
		rules:  rules,
		logger: logging.GetLogger("walker"),
	}
}

// Walk streams the absolute path of every regular file under root that is
// not inside a pruned subtree. Yield errors stop the traversal and are
// returned as-is. The filesystem-level visit order is unspecified; callers
// needing a deterministic order should use Collect.
func (w *Walker) Walk(root string, yield func(absPath string) error) error {
	abs, err := filepath.Abs(root)
	if err != nil {
		return errors.Wrapf(err, errors.ErrPathMissing, "cannot resolve scan root %s", root)
	}

	info, err := w.fs.Stat(abs)
	if err != nil {
		return errors.Wrapf(err, errors.ErrPathMissing, "scan root %s does not exist", root)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrPathMissing, "scan root %s is not a directory", root)
	}

	return w.walk(abs, "", yield)
}

// Collect runs Walk and returns the visited files sorted lexicographically
// by absolute path, giving deterministic downstream processing across runs
// and platforms.
func (w *Walker) Collect(root string) ([]string, error) {
	var files []string
	err := w.Walk(root, func(absPath string) error {
		files = append(files, absPath)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

func (w *Walker) walk(dir, rel string, yield func(string) error) error {
	entries, err := w.fs.ReadDir(dir)
	if err != nil {
		// Unreadable directories shrink the result set, they do not
		// fail the scan.
		w.logger.Debug().Err(err).Str("dir", dir).Msg("Skipping unreadable directory")
		return nil
	}

	for _, entry := range entries {
		childAbs := filepath.Join(dir, entry.Name())
		childRel := entry.Name()
		if rel != "" {
			childRel = rel + "/" + entry.Name()
		}

		if entry.IsDir() {
			if w.rules.MatchDir(childRel, filepath.ToSlash(childAbs)) {
				w.logger.Debug().Str("dir", childRel).Msg("Pruned ignored subtree")
				continue
			}
			if err := w.walk(childAbs, childRel, yield); err != nil {
				return err
			}
			continue
		}

		// Symlinks and other irregular entries are not followed.
		if !entry.Type().IsRegular() {
			continue
		}

		if err := yield(childAbs); err != nil {
			return err
		}
	}

	return nil
}
