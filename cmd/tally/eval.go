package main

import (
	"fmt"
	"os"

	"github.com/aretw0/tally/internal/compiler"
	"github.com/aretw0/tally/pkg/trace"
	"github.com/spf13/cobra"
)

// evalCmd represents the eval command
var evalCmd = &cobra.Command{
	Use:   "eval <expression>",
	Short: "Evaluate an expression and print its value",
	Long:  `Parses the expression, builds the traced computation, and prints the resulting value.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		expr, err := compiler.Parse(args[0])
		if err != nil {
			fmt.Printf("Error parsing expression: %v\n", err)
			os.Exit(1)
		}

		session := trace.NewSession()
		root := expr.Build(session)

		verbose, _ := cmd.Flags().GetBool("verbose")
		if verbose {
			fmt.Printf("%v (%d nodes)\n", root.Value(), session.Len())
			return
		}
		fmt.Println(root.Value())
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().BoolP("verbose", "v", false, "Also print the node count of the derivation graph")
}
