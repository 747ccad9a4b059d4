// Package scan implements the harvest run: load configuration, validate,
// traverse with pruning, match, record, and copy.
package scan

import (
	"path/filepath"
	"time"

	"github.com/codeharvest/harvest/pkg/config"
	"github.com/codeharvest/harvest/pkg/copier"
	"github.com/codeharvest/harvest/pkg/errors"
	"github.com/codeharvest/harvest/pkg/filesystem"
	"github.com/codeharvest/harvest/pkg/ignore"
	"github.com/codeharvest/harvest/pkg/logging"
	"github.com/codeharvest/harvest/pkg/manifest"
	"github.com/codeharvest/harvest/pkg/matcher"
	"github.com/codeharvest/harvest/pkg/metadata"
	"github.com/codeharvest/harvest/pkg/paths"
	"github.com/codeharvest/harvest/pkg/patterns"
	"github.com/codeharvest/harvest/pkg/types"
	"github.com/codeharvest/harvest/pkg/walker"
)

// Options defines the options for the Run command.
type Options struct {
	// Root is the directory tree to scan. Required.
	Root string
	// OutputDir receives the artifacts and the mirrored tree.
	OutputDir string
	// Patterns is an inline comma-separated inclusion list.
	Patterns string
	// PatternsFile is a line-oriented inclusion pattern file.
	PatternsFile string
	// IgnoreFile is a line-oriented exclusion rule file.
	IgnoreFile string
	// ConfigFile names an explicit harvest.toml.
	ConfigFile string
	// DryRun suppresses copying; artifacts are still produced.
	DryRun bool
	// Interactive asks per-file confirmation before copying.
	Interactive bool
	// Disposition overrides the policy derived from DryRun/Interactive.
	// Used by tests; nil selects the derived policy.
	Disposition types.Disposition
	// FileSystem is the filesystem to operate on. Nil selects the OS.
	FileSystem types.FS
}

// Result summarizes a completed run.
type Result struct {
	// Scanned is the number of files visited after pruning
	Scanned int
	// Records holds the manifest records in their written order
	Records []types.MatchRecord
	// Copied is the number of files placed into the output tree
	Copied int
	// SkippedCopies counts matches not copied (dry-run or declined)
	SkippedCopies int
	// CopyFailures counts per-file copy errors (non-fatal)
	CopyFailures int
	// Elapsed is the wall-clock duration of the run
	Elapsed time.Duration
}

// DefaultOutputDir is used when neither flag nor config name one.
const DefaultOutputDir = "harvested"

// Run executes a full scan. Configuration problems return an error before
// any traversal; per-file problems are absorbed into the Result.
func Run(opts Options) (*Result, error) {
	log := logging.GetLogger("commands.scan")
	start := time.Now()

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	if opts.Root == "" {
		return nil, errors.New(errors.ErrUsage, "a scan root is required")
	}

	cfg, err := config.Load(fsys, opts.ConfigFile)
	if err != nil {
		return nil, err
	}
	applyConfig(&opts, cfg)

	set, err := loadPatterns(fsys, opts)
	if err != nil {
		return nil, err
	}

	rules, err := loadIgnoreRules(fsys, opts)
	if err != nil {
		return nil, err
	}

	root, err := filepath.Abs(opts.Root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrPathMissing, "cannot resolve scan root %s", opts.Root)
	}
	info, err := fsys.Stat(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrPathMissing, "scan root %s does not exist", opts.Root)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrPathMissing, "scan root %s is not a directory", opts.Root)
	}

	outDir := opts.OutputDir
	if outDir == "" {
		outDir = DefaultOutputDir
	}

	// Artifacts are truncated before traversal so an interrupted run
	// still leaves valid partial output.
	writer, err := manifest.NewWriter(fsys, outDir)
	if err != nil {
		return nil, err
	}
	defer func() { _ = writer.Close() }()

	files, err := walker.New(fsys, rules).Collect(root)
	if err != nil {
		return nil, err
	}

	match := matcher.New(set)
	collect := metadata.New(fsys)
	place := copier.New(fsys, outDir, disposition(opts))

	result := &Result{Scanned: len(files)}
	for _, absPath := range files {
		if !match.MatchBase(filepath.Base(absPath)) {
			continue
		}

		rec := collect.Collect(root, absPath)
		if err := writer.Append(rec); err != nil {
			return nil, err
		}
		result.Records = append(result.Records, rec)

		copied, err := place.Place(rec)
		switch {
		case err != nil:
			log.Warn().Err(err).Str("file", rec.RelPath).Msg("Copy failed")
			result.CopyFailures++
		case copied:
			result.Copied++
		default:
			result.SkippedCopies++
		}
	}

	result.Elapsed = time.Since(start)
	log.Info().
		Int("scanned", result.Scanned).
		Int("matched", len(result.Records)).
		Int("copied", result.Copied).
		Dur("elapsed", result.Elapsed).
		Msg("Scan finished")
	return result, nil
}

// applyConfig fills unset options from the config file; flags win.
func applyConfig(opts *Options, cfg *config.File) {
	if opts.OutputDir == "" {
		opts.OutputDir = cfg.Out
	}
	if opts.Patterns == "" && opts.PatternsFile == "" {
		opts.Patterns = cfg.Patterns
		opts.PatternsFile = cfg.PatternsFile
	}
	if opts.IgnoreFile == "" {
		opts.IgnoreFile = cfg.IgnoreFile
	}
}

func loadPatterns(fsys types.FS, opts Options) (*patterns.Set, error) {
	inline, file := opts.Patterns, opts.PatternsFile
	if inline == "" && file == "" {
		file = paths.FindDefault(fsys, paths.PatternsFileName)
	}
	return patterns.Load(fsys, inline, file)
}

func loadIgnoreRules(fsys types.FS, opts Options) (*ignore.RuleSet, error) {
	file := opts.IgnoreFile
	if file == "" {
		file = paths.FindDefault(fsys, paths.IgnoreFileName)
		if file == "" {
			return ignore.Empty(), nil
		}
	}
	return ignore.LoadFile(fsys, file)
}

func disposition(opts Options) types.Disposition {
	if opts.Disposition != nil {
		return opts.Disposition
	}
	switch {
	case opts.DryRun:
		return copier.DryRun()
	case opts.Interactive:
		return copier.Interactive()
	default:
		return copier.Always()
	}
}
