package main

import (
	"fmt"
	"os"

	"github.com/codeharvest/harvest/pkg/errors"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "harvest: %v\n", err)
		os.Exit(errors.ExitCode(err))
	}
}
