// Package ignore parses exclusion rules and tests directory paths against
// them so the walker can prune whole subtrees before descending.
//
// A rule has one of three forms, resolved once at load time:
//
//   - a bare token ("vendor") matches any path whose segments contain the
//     token;
//   - a token with a trailing slash ("vendor/") is the same segment test,
//     written to make the subtree intent explicit;
//   - a token containing a mid-string slash or any glob metacharacter
//     ("build/*", "**/.cache", "/srv/data/vendor") is matched as a
//     shell-style glob against both the slash-separated path relative to
//     the scan root and the absolute path. A slash-free glob ("*.egg-info")
//     matches anywhere in the tree; slash-bearing globs stay anchored.
//
// Rules match paths only, never file contents.
package ignore

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/codeharvest/harvest/pkg/errors"
	"github.com/codeharvest/harvest/pkg/logging"
	"github.com/codeharvest/harvest/pkg/types"
)

// Kind tags the interpretation a rule was resolved to at load time.
type Kind int

const (
	// Segment matches a bare token against every path segment
	Segment Kind = iota
	// DirAnchor is a Segment rule written with a trailing slash
	DirAnchor
	// Glob is matched with shell-style glob semantics against the
	// root-relative path
	Glob
)

// Rule is a single parsed exclusion rule.
type Rule struct {
	// Raw is the rule text as written, kept for logging
	Raw string

	// Kind selects the matching strategy
	Kind Kind

	token string
}

// RuleSet holds the parsed exclusion rules for a run.
type RuleSet struct {
	rules []Rule
}

// Empty returns a RuleSet that matches nothing.
func Empty() *RuleSet {
	return &RuleSet{}
}

// Parse resolves rule lines into a RuleSet. Blank lines and lines starting
// with # are skipped.
func Parse(lines []string) *RuleSet {
	set := &RuleSet{}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		set.rules = append(set.rules, resolve(line))
	}
	return set
}

// LoadFile reads a line-oriented rule file and parses it.
func LoadFile(fsys types.FS, path string) (*RuleSet, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrPathMissing,
			"cannot read ignore file %s", path)
	}
	content := strings.ReplaceAll(string(data), "\r\n", "\n")
	set := Parse(strings.Split(content, "\n"))

	logger := logging.GetLogger("ignore")
	logger.Debug().
		Str("file", path).
		Int("rules", set.Len()).
		Msg("Loaded ignore rules")
	return set, nil
}

// Len returns the number of rules in the set.
func (s *RuleSet) Len() int {
	return len(s.rules)
}

// MatchDir reports whether a directory should be pruned. rel is the
// directory's slash-separated path relative to the scan root, abs its
// slash-separated absolute path.
func (s *RuleSet) MatchDir(rel, abs string) bool {
	if len(s.rules) == 0 || rel == "" || rel == "." {
		return false
	}
	for _, r := range s.rules {
		if r.match(rel, abs) {
			return true
		}
	}
	return false
}

func resolve(raw string) Rule {
	token := strings.ReplaceAll(raw, "\\", "/")

	if strings.ContainsAny(token, "*?[{") {
		return Rule{Raw: raw, Kind: Glob, token: strings.TrimSuffix(token, "/")}
	}
	if idx := strings.Index(token, "/"); idx >= 0 && idx != len(token)-1 {
		return Rule{Raw: raw, Kind: Glob, token: strings.TrimSuffix(token, "/")}
	}
	if strings.HasSuffix(token, "/") {
		return Rule{Raw: raw, Kind: DirAnchor, token: strings.TrimSuffix(token, "/")}
	}
	return Rule{Raw: raw, Kind: Segment, token: token}
}

func (r Rule) match(rel, abs string) bool {
	switch r.Kind {
	case Segment, DirAnchor:
		for _, seg := range strings.Split(rel, "/") {
			if seg == r.token {
				return true
			}
		}
		return false
	case Glob:
		if ok, err := doublestar.Match(r.token, rel); err == nil && ok {
			return true
		}
		if ok, err := doublestar.Match(r.token, abs); err == nil && ok {
			return true
		}
		// A slash-free pattern matches anywhere in the tree;
		// slash-bearing ones stay anchored where they were written.
		if !strings.Contains(r.token, "/") {
			if ok, err := doublestar.Match("**/"+r.token, rel); err == nil && ok {
				return true
			}
		}
		return false
	}
	return false
}
