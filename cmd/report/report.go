// Package report handles the aggregation and compliance report command.
package report

import (
	"encoding/json"
	"fmt"

	"gestfin/pgc-engine/cmd/root"
	"gestfin/pgc-engine/internal/container"
	"gestfin/pgc-engine/internal/csvio"
	"gestfin/pgc-engine/internal/fileutils"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Cmd represents the report command.
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Aggregate mapping results into a compliance report",
	Long: `Aggregate previously produced mapping results by account and PGC-AO
class, compute mapping statistics and evaluate compliance with
recommendations in Portuguese.`,
	Run: reportFunc,
}

func reportFunc(cmd *cobra.Command, args []string) {
	if root.InputFile == "" {
		root.Log.Fatal("--input is required")
	}

	c, err := container.NewContainer(root.Cfg)
	if err != nil {
		root.Log.WithError(err).Fatal("Failed to initialize engine")
	}

	results, err := csvio.ReadMappingResults(root.InputFile)
	if err != nil {
		root.Log.WithError(err).Fatal("Failed to read mapping results")
	}

	rep := c.Evaluator().Evaluate(results)

	var out []byte
	switch root.Cfg.Report.Format {
	case "json":
		out, err = json.MarshalIndent(rep, "", "  ")
	default:
		out, err = yaml.Marshal(rep)
	}
	if err != nil {
		root.Log.WithError(err).Fatal("Failed to render report")
	}

	if root.OutputFile == "" {
		fmt.Print(string(out))
		return
	}
	if err := fileutils.WriteFile(root.OutputFile, out, 0644); err != nil {
		root.Log.WithError(err).Fatal("Failed to write report")
	}
}
