package main

import (
	"fmt"
	"os"

	"github.com/aretw0/tally/internal/compiler"
	"github.com/aretw0/tally/pkg/dump"
	"github.com/aretw0/tally/pkg/trace"
	"github.com/spf13/cobra"
)

// dumpCmd represents the dump command
var dumpCmd = &cobra.Command{
	Use:   "dump <expression>",
	Short: "Dump the raw nested derivation tree",
	Long: `Evaluates the expression and prints the nested {kind, value, reason?,
history?} document exactly as owned: no deduplication, no flattening. Meant
for inspection and diffing rather than visualization.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		format, _ := cmd.Flags().GetString("format")

		expr, err := compiler.Parse(args[0])
		if err != nil {
			fmt.Printf("Error parsing expression: %v\n", err)
			os.Exit(1)
		}

		root := expr.Build(trace.NewSession())

		var raw []byte
		switch format {
		case "json":
			raw, err = dump.JSON(root)
		case "yaml":
			raw, err = dump.YAML(root)
		default:
			fmt.Printf("Unknown format %q (want json or yaml)\n", format)
			os.Exit(1)
		}
		if err != nil {
			fmt.Printf("Error dumping tree: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(raw))
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
	dumpCmd.Flags().StringP("format", "f", "json", "Output format: json or yaml")
}
