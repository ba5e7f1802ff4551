package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/cjfreeze/stl/pkg/analysis"
	"github.com/cjfreeze/stl/pkg/watcher"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch [file]...",
	Short: "Watch STL files and report measurements on change",
	Long:  "Re-parse the given files whenever they change and print updated statistics. Runs until interrupted.",
	Args:  cobra.MinimumNArgs(1),
	Run:   runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 500*time.Millisecond,
		"Quiet period before a change is reported")
}

func runWatch(cmd *cobra.Command, args []string) {
	fw, err := watcher.NewFileWatcher(watchDebounce)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating watcher: %v\n", err)
		os.Exit(1)
	}
	defer fw.Close()

	report := func(path string) {
		doc, err := loadDocument(path)
		if err != nil {
			slog.Error("parse failed", "file", path, "error", err)
			return
		}
		result := analysis.Analyze(doc)
		fmt.Printf("%s: %d triangles, surface area %.6f", path, result.TriangleCount, result.SurfaceArea)
		if result.Extremes != nil {
			fmt.Printf(", dimensions %s", analysis.FormatPoint(result.Dimensions))
		}
		fmt.Println()
	}

	if err := fw.Watch(args, report); err != nil {
		fmt.Fprintf(os.Stderr, "Error watching files: %v\n", err)
		os.Exit(1)
	}
	fw.Start()

	// Report each file once up front so the first output does not wait
	// for a change.
	for _, path := range args {
		report(path)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
}
