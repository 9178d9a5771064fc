package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tally",
	Short: "Tally is a traceable arithmetic engine",
	Long: `Tally evaluates arithmetic expressions while recording how every result
was derived, and renders the derivation graph for inspection.

Expressions use the four operators with the usual precedence, parentheses,
and optional reason annotations attached with @:

  tally graph '1 + 2@"offset" * 3'
  tally eval '(40 - 40 * 0.25)@"spring sale"'`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", "info", "Log verbosity (debug, info, warn, error)")
}
