// Package main provides the CLI entrypoint for classdiag.
//
// classdiag is a class-diagram generator for Go codebases:
//   - Loads packages (go/types via go/packages) to build a symbol model
//   - Applies a configurable filter policy to suppress framework noise
//   - Renders deterministic Mermaid classDiagram text
package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "classdiag",
	Short:         "Render Mermaid class diagrams for Go packages",
	Long:          `classdiag analyzes Go packages and renders their static structure as a Mermaid class diagram`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().Bool("verbose", false, "print info-level analysis notes")

	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
