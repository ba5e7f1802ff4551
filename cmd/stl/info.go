package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cjfreeze/stl/pkg/analysis"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display general information about an STL file",
	Long:  "Show comprehensive information including triangle count, surface area, bounding box corners, dimensions, and edge statistics.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	doc, err := loadDocument(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing STL file: %v\n", err)
		os.Exit(1)
	}

	result := analysis.Analyze(doc)

	fmt.Println("STL File Information")
	fmt.Println("====================")
	if doc.Name != "" {
		fmt.Printf("Name: %s\n", doc.Name)
	}
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Model Statistics:")
	fmt.Printf("  Triangles: %d\n", result.TriangleCount)
	fmt.Printf("  Edges: %d\n", result.EdgeCount)
	fmt.Printf("  Surface Area: %.6f square units\n\n", result.SurfaceArea)

	if result.Extremes != nil {
		fmt.Println("Bounding Box:")
		fmt.Printf("  Min: %s\n", analysis.FormatPoint(result.Extremes.Min()))
		fmt.Printf("  Max: %s\n", analysis.FormatPoint(result.Extremes.Max()))
		fmt.Printf("  Center: %s\n", analysis.FormatPoint(result.Extremes.Center()))
		fmt.Println("  Corners:")
		for _, corner := range doc.BoundingBox() {
			fmt.Printf("    %s\n", analysis.FormatPoint(corner))
		}
		fmt.Println()

		fmt.Println("Dimensions:")
		fmt.Printf("  Width (X): %.6f units\n", result.Dimensions.X)
		fmt.Printf("  Depth (Y): %.6f units\n", result.Dimensions.Y)
		fmt.Printf("  Height (Z): %.6f units\n", result.Dimensions.Z)
		fmt.Printf("  Diagonal: %.6f units\n", result.Diagonal)
		fmt.Printf("  Volume: %.6f cubic units\n\n", result.Volume)
	} else {
		fmt.Println("Bounding Box: none (model has no facets)")
		fmt.Println()
	}

	fmt.Println("Edge Lengths:")
	fmt.Printf("  Minimum: %.6f units\n", result.MinEdgeLength)
	fmt.Printf("  Maximum: %.6f units\n", result.MaxEdgeLength)
	fmt.Printf("  Average: %.6f units\n", result.AvgEdgeLength)
}
