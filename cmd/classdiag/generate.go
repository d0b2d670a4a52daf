package main

import (
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"classdiag/internal/analyze"
	"classdiag/internal/diagnostic"
	"classdiag/internal/filter"
	"classdiag/internal/render"
)

var (
	generateOut       string
	generateConfig    string
	generateDumpModel bool
)

func init() {
	generateCmd.Flags().StringVarP(&generateOut, "out", "o", "", "write the diagram to a file instead of stdout")
	generateCmd.Flags().StringVar(&generateConfig, "config", "", "YAML filter policy file")
	generateCmd.Flags().BoolVar(&generateDumpModel, "dump-model", false, "dump the symbol model instead of rendering")
}

var generateCmd = &cobra.Command{
	Use:   "generate [packages...]",
	Short: "Analyze packages and render their class diagram",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		return runGenerate(args, verbose)
	},
}

func runGenerate(patterns []string, verbose bool) error {
	policy := filter.DefaultPolicy()

	if generateConfig != "" {
		loaded, err := filter.LoadFile(generateConfig)
		if err != nil {
			return err
		}

		policy = loaded
	}

	var diags diagnostic.Diagnostics

	diags.Merge(policy.Validate())
	if diags.HasErrors() {
		printDiagnostics(diags, verbose)
		return diags.Error()
	}

	analyzer := analyze.NewAnalyzer()

	model, err := analyzer.LoadPackages(patterns...)
	if err != nil {
		return err
	}

	diags.Merge(analyzer.Diagnostics())
	printDiagnostics(diags, verbose)

	if generateDumpModel {
		spew.Fdump(os.Stdout, model.Types())
		return nil
	}

	diagram := render.Render(model, policy)

	if generateOut != "" {
		return render.WriteFile(diagram, generateOut)
	}

	return render.Write(diagram, os.Stdout)
}

// printDiagnostics reports analysis notes on stderr so they never mix
// into diagram text on stdout.
func printDiagnostics(diags diagnostic.Diagnostics, verbose bool) {
	red := color.New(color.FgRed)
	for _, e := range diags.Errors {
		red.Fprintf(os.Stderr, "error: %s\n", e.String())
	}

	yellow := color.New(color.FgYellow)
	for _, w := range diags.Warnings {
		yellow.Fprintf(os.Stderr, "warning: %s\n", w.String())
	}

	if !verbose {
		return
	}

	for _, i := range diags.Infos {
		color.New(color.FgCyan).Fprintf(os.Stderr, "info: %s\n", i.String())
	}
}
