// Package mapitems handles the line-item mapping command.
package mapitems

import (
	"gestfin/pgc-engine/cmd/root"
	"gestfin/pgc-engine/internal/container"
	"gestfin/pgc-engine/internal/csvio"
	"gestfin/pgc-engine/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the map command.
var Cmd = &cobra.Command{
	Use:   "map",
	Short: "Map line items to PGC-AO accounts",
	Long: `Map budget or document line items from a CSV file to PGC-AO
chart-of-accounts entries with confidence scores, and write the
mapping results as CSV.`,
	Run: mapFunc,
}

func mapFunc(cmd *cobra.Command, args []string) {
	if root.InputFile == "" || root.OutputFile == "" {
		root.Log.Fatal("Both --input and --output are required")
	}

	c, err := container.NewContainer(root.Cfg)
	if err != nil {
		root.Log.WithError(err).Fatal("Failed to initialize engine")
	}

	items, err := csvio.ReadLineItems(root.InputFile)
	if err != nil {
		root.Log.WithError(err).Fatal("Failed to read line items")
	}

	var stats models.MappingStats
	results := make([]models.MappingResult, 0, len(items))
	for _, item := range items {
		result := c.Mapper().MapLineItem(item)
		stats.Observe(result)
		results = append(results, result)
	}

	if err := csvio.WriteMappingResults(root.OutputFile, results); err != nil {
		root.Log.WithError(err).Fatal("Failed to write mapping results")
	}

	stats.LogSummary(root.Log, root.InputFile)
}
