package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cjfreeze/stl/version"
)

var parserName string

var rootCmd = &cobra.Command{
	Use:   "stl",
	Short: "A CLI tool for inspecting and measuring ASCII STL files",
	Long: `stl is a command-line tool for analyzing ASCII STL (stereolithography) models.
A single streaming pass over a file yields the triangle count, bounding box
and surface area, and further measurements for edges and facets are derived
from the same parse.`,
	Version: version.GetFullVersion(),
}

func init() {
	rootCmd.PersistentFlags().StringVar(&parserName, "parser", "streaming",
		`Parser implementation to use ("streaming" or "grammar")`)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
