package main

import (
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/codeharvest/harvest/pkg/commands/scan"
	"github.com/codeharvest/harvest/pkg/errors"
)

var (
	scanOut         string
	scanPatterns    string
	scanPatternFile string
	scanIgnoreFile  string
	scanConfigFile  string
	scanDryRun      bool
	scanInteractive bool
)

var scanCmd = &cobra.Command{
	Use:   "scan <root>",
	Short: "Scan a tree and harvest matching files",
	Long: `Scan walks the given root directory, prunes subtrees matching the ignore
rules, and selects files whose base name contains any inclusion pattern as a
case-insensitive substring. Matches are recorded in the manifest and copied
into the output directory unless --dry-run is given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if scanInteractive && !isatty.IsTerminal(os.Stdin.Fd()) {
			return errors.New(errors.ErrUsage,
				"interactive mode needs a terminal on stdin")
		}

		result, err := scan.Run(scan.Options{
			Root:         args[0],
			OutputDir:    scanOut,
			Patterns:     scanPatterns,
			PatternsFile: scanPatternFile,
			IgnoreFile:   scanIgnoreFile,
			ConfigFile:   scanConfigFile,
			DryRun:       scanDryRun,
			Interactive:  scanInteractive,
		})
		if err != nil {
			return err
		}

		report(result)
		return nil
	},
}

func init() {
	scanCmd.Flags().StringVar(&scanOut, "out", "",
		"Output directory (default \"./"+scan.DefaultOutputDir+"\")")
	scanCmd.Flags().StringVar(&scanPatterns, "match", "",
		"Inline comma-separated inclusion patterns")
	scanCmd.Flags().StringVar(&scanPatternFile, "match-file", "",
		"Inclusion pattern file, one pattern per line")
	scanCmd.Flags().StringVar(&scanIgnoreFile, "ignore-file", "",
		"Exclusion rule file, one rule per line")
	scanCmd.Flags().StringVar(&scanConfigFile, "config", "",
		"Config file (default harvest.toml in cwd or beside the executable)")
	scanCmd.Flags().BoolVar(&scanDryRun, "dry-run", false,
		"Produce the manifest and match list without copying files")
	scanCmd.Flags().BoolVar(&scanInteractive, "interactive", false,
		"Ask before copying each file")
	scanCmd.MarkFlagsMutuallyExclusive("match", "match-file")
}

func report(result *scan.Result) {
	elapsed := result.Elapsed.Round(time.Millisecond)
	if len(result.Records) == 0 {
		pterm.Info.Printfln("No files matched (%d scanned in %s)",
			result.Scanned, elapsed)
		return
	}

	pterm.Success.Printfln("%d of %d scanned files matched in %s",
		len(result.Records), result.Scanned, elapsed)
	if scanDryRun {
		pterm.Info.Printfln("Dry run: %d copies suppressed", result.SkippedCopies)
	} else {
		pterm.Info.Printfln("Copied %d, skipped %d", result.Copied, result.SkippedCopies)
	}
	if result.CopyFailures > 0 {
		pterm.Warning.Printfln("%d files could not be copied, see the log", result.CopyFailures)
	}
}
