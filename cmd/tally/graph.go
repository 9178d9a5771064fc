package main

import (
	"fmt"
	"os"

	"github.com/aretw0/tally/internal/compiler"
	"github.com/aretw0/tally/pkg/graph"
	"github.com/aretw0/tally/pkg/trace"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <expression>",
	Short: "Export the derivation graph visualization",
	Long: `Evaluates the expression and outputs the deduplicated derivation graph in
Graphviz DOT (default), Mermaid, or as a shareable online-viewer URL.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		format, _ := cmd.Flags().GetString("format")

		expr, err := compiler.Parse(args[0])
		if err != nil {
			fmt.Printf("Error parsing expression: %v\n", err)
			os.Exit(1)
		}

		root := expr.Build(trace.NewSession())
		g, err := graph.Extract(root)
		if err != nil {
			fmt.Printf("Error extracting graph: %v\n", err)
			os.Exit(1)
		}

		switch format {
		case "dot":
			fmt.Print(graph.DOT(g))
		case "mermaid":
			fmt.Print(graph.Mermaid(g))
		case "url":
			fmt.Println(graph.ViewerURL(graph.DOT(g)))
		default:
			fmt.Printf("Unknown format %q (want dot, mermaid, or url)\n", format)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().StringP("format", "f", "dot", "Output format: dot, mermaid, or url")
}
