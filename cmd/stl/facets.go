package main

import (
	"fmt"
	"math"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/cjfreeze/stl/pkg/analysis"
)

var (
	facetsCount    int
	facetsLargest  bool
	facetsSmallest bool
)

type facetInfo struct {
	Index     int
	Area      float64
	Perimeter float64
	Vertices  string
}

var facetsCmd = &cobra.Command{
	Use:   "facets [file]",
	Short: "Analyze facets in an STL file",
	Long:  "Display information about facets including area, perimeter, and vertex positions.",
	Args:  cobra.ExactArgs(1),
	Run:   runFacets,
}

func init() {
	rootCmd.AddCommand(facetsCmd)

	facetsCmd.Flags().IntVarP(&facetsCount, "count", "n", 10, "Number of facets to display")
	facetsCmd.Flags().BoolVarP(&facetsLargest, "largest", "l", false, "Show largest facets by area")
	facetsCmd.Flags().BoolVarP(&facetsSmallest, "smallest", "s", false, "Show smallest facets by area")
}

func runFacets(cmd *cobra.Command, args []string) {
	filename := args[0]

	doc, err := loadDocument(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing STL file: %v\n", err)
		os.Exit(1)
	}

	facets := make([]facetInfo, 0, len(doc.Facets))
	minArea := math.MaxFloat64
	maxArea := 0.0

	for i, facet := range doc.Facets {
		area := facet.Area()
		facets = append(facets, facetInfo{
			Index:     i,
			Area:      area,
			Perimeter: facet.Perimeter(),
			Vertices: fmt.Sprintf("%s, %s, %s",
				analysis.FormatPoint(facet.Vertices[0]),
				analysis.FormatPoint(facet.Vertices[1]),
				analysis.FormatPoint(facet.Vertices[2])),
		})

		if area < minArea {
			minArea = area
		}
		if area > maxArea {
			maxArea = area
		}
	}
	if len(facets) == 0 {
		minArea = 0
	}

	if facetsLargest {
		sort.Slice(facets, func(i, j int) bool {
			return facets[i].Area > facets[j].Area
		})
	} else if facetsSmallest {
		sort.Slice(facets, func(i, j int) bool {
			return facets[i].Area < facets[j].Area
		})
	}

	var title string
	if facetsLargest {
		title = fmt.Sprintf("Top %d Largest Facets", facetsCount)
	} else if facetsSmallest {
		title = fmt.Sprintf("Top %d Smallest Facets", facetsCount)
	} else {
		title = fmt.Sprintf("First %d Facets", facetsCount)
	}

	fmt.Println(title)
	fmt.Println("====================")
	fmt.Printf("Total facets: %d\n", doc.TriangleCount())
	fmt.Printf("Total surface area: %.6f square units\n", doc.SurfaceArea())
	fmt.Printf("Min facet area: %.6f square units\n", minArea)
	fmt.Printf("Max facet area: %.6f square units\n", maxArea)
	if len(facets) > 0 {
		fmt.Printf("Avg facet area: %.6f square units\n", doc.SurfaceArea()/float64(len(facets)))
	}
	fmt.Println()

	if facetsCount > len(facets) {
		facetsCount = len(facets)
	}
	for i := 0; i < facetsCount; i++ {
		facet := facets[i]
		fmt.Printf("Facet #%d:\n", facet.Index)
		fmt.Printf("  Area: %.6f square units\n", facet.Area)
		fmt.Printf("  Perimeter: %.6f units\n", facet.Perimeter)
		fmt.Printf("  Vertices: %s\n\n", facet.Vertices)
	}
}
