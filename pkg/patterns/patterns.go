// Package patterns loads and normalizes the inclusion pattern set.
//
// Patterns come from exactly one source per run: an inline comma-separated
// list or a line-oriented file (one pattern per line, blank lines and lines
// starting with # ignored). Patterns are trimmed and lower-cased once at
// load time so the matcher can do cheap repeated comparisons.
package patterns

import (
	"strings"

	"github.com/codeharvest/harvest/pkg/errors"
	"github.com/codeharvest/harvest/pkg/logging"
	"github.com/codeharvest/harvest/pkg/types"
)

// Set is the normalized inclusion pattern set. Order is irrelevant and
// duplicates are harmless.
type Set struct {
	patterns []string
}

// Load builds a Set from an inline comma-separated list or a pattern file.
// Supplying both is a configuration error; ending up with zero usable
// patterns is as well.
func Load(fsys types.FS, inline, file string) (*Set, error) {
	logger := logging.GetLogger("patterns")

	if inline != "" && file != "" {
		return nil, errors.New(errors.ErrUsage,
			"inline patterns and a pattern file were both given; use one or the other")
	}

	var raw []string
	switch {
	case file != "":
		data, err := fsys.ReadFile(file)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrPathMissing,
				"cannot read pattern file %s", file)
		}
		// Comment lines are a file-format feature only; inline
		// patterns are taken as written.
		for _, line := range splitLines(string(data)) {
			if strings.HasPrefix(strings.TrimSpace(line), "#") {
				continue
			}
			raw = append(raw, line)
		}
		logger.Debug().Str("file", file).Int("lines", len(raw)).Msg("Loaded pattern file")
	case inline != "":
		raw = strings.Split(inline, ",")
	default:
		return nil, errors.New(errors.ErrNoPatterns,
			"no inclusion patterns given; use an inline list or a pattern file")
	}

	set := &Set{}
	for _, p := range raw {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		set.patterns = append(set.patterns, strings.ToLower(p))
	}

	if len(set.patterns) == 0 {
		return nil, errors.New(errors.ErrNoPatterns,
			"no usable patterns after parsing")
	}

	logger.Debug().Int("count", len(set.patterns)).Msg("Pattern set loaded")
	return set, nil
}

// Patterns returns the lower-cased patterns.
func (s *Set) Patterns() []string {
	return s.patterns
}

// Len returns the number of patterns in the set.
func (s *Set) Len() int {
	return len(s.patterns)
}

func splitLines(content string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	return strings.Split(content, "\n")
}
