package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is stamped at build time via -ldflags.
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show classdiag version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("classdiag", version)
	},
}
