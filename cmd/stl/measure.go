package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cjfreeze/stl/pkg/analysis"
	"github.com/cjfreeze/stl/pkg/geometry"
)

var (
	point1X, point1Y, point1Z float64
	point2X, point2Y, point2Z float64
)

var measureCmd = &cobra.Command{
	Use:   "measure [file]",
	Short: "Measure distance between two points",
	Long: `Measure the straight-line distance between two 3D points.
The tool also reports the model vertices nearest to each point.`,
	Args: cobra.ExactArgs(1),
	Run:  runMeasure,
}

func init() {
	rootCmd.AddCommand(measureCmd)

	measureCmd.Flags().Float64Var(&point1X, "x1", 0.0, "X coordinate of first point")
	measureCmd.Flags().Float64Var(&point1Y, "y1", 0.0, "Y coordinate of first point")
	measureCmd.Flags().Float64Var(&point1Z, "z1", 0.0, "Z coordinate of first point")
	measureCmd.Flags().Float64Var(&point2X, "x2", 0.0, "X coordinate of second point")
	measureCmd.Flags().Float64Var(&point2Y, "y2", 0.0, "Y coordinate of second point")
	measureCmd.Flags().Float64Var(&point2Z, "z2", 0.0, "Z coordinate of second point")

	measureCmd.MarkFlagsRequiredTogether("x1", "y1", "z1", "x2", "y2", "z2")
}

func runMeasure(cmd *cobra.Command, args []string) {
	filename := args[0]

	p1 := geometry.NewPoint(point1X, point1Y, point1Z)
	p2 := geometry.NewPoint(point2X, point2Y, point2Z)

	doc, err := loadDocument(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing STL file: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Point-to-Point Measurement")
	fmt.Println("==========================")

	fmt.Printf("\nPoint 1: %s\n", analysis.FormatPoint(p1))
	fmt.Printf("Point 2: %s\n", analysis.FormatPoint(p2))

	distance := analysis.DistanceBetweenPoints(p1, p2)
	fmt.Printf("\nDirect distance: %.6f units\n", distance)

	if doc.TriangleCount() > 0 {
		nearest1, dist1 := analysis.NearestVertex(doc, p1)
		nearest2, dist2 := analysis.NearestVertex(doc, p2)

		fmt.Printf("\nNearest vertex to point 1: %s (distance: %.6f)\n", analysis.FormatPoint(nearest1), dist1)
		fmt.Printf("Nearest vertex to point 2: %s (distance: %.6f)\n", analysis.FormatPoint(nearest2), dist2)
		fmt.Printf("Distance between nearest vertices: %.6f units\n", analysis.DistanceBetweenPoints(nearest1, nearest2))
	}
}
