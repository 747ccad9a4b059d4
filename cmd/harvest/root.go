package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/codeharvest/harvest/pkg/logging"
)

var (
	verbosity int

	rootCmd = &cobra.Command{
		Use:   "harvest",
		Short: "Extract an auditable subset of a directory tree",
		Long: `harvest scans a directory tree, selects files whose name contains any
of a set of case-insensitive patterns, prunes ignored subtrees, and copies
the matches into an output directory while preserving relative paths. Every
run also produces a plain match list and a tab-separated manifest with
timestamps, sizes, and content hashes.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(versionCmd)
}
