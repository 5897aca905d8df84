// Package learn handles the classifier feedback command.
package learn

import (
	"fmt"
	"os"

	"gestfin/pgc-engine/cmd/root"
	"gestfin/pgc-engine/internal/container"
	"gestfin/pgc-engine/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the learn command.
var Cmd = &cobra.Command{
	Use:   "learn",
	Short: "Record a confirmed document type",
	Long: `Record a user-confirmed document type for extracted text. The
confirmation updates the statistical classifier store so later
classifications of similar documents improve.`,
	Run: learnFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Text, "text", "t", "", "Text of the confirmed document (alternative to --input)")
	Cmd.Flags().StringVarP(&root.Label, "label", "l", "", "Confirmed document type (incoming, outgoing, contract)")
	if err := Cmd.MarkFlagRequired("label"); err != nil {
		logging.GetLogger().WithError(err).Fatal("Failed to mark label flag as required")
	}
}

func learnFunc(cmd *cobra.Command, args []string) {
	text, err := readText()
	if err != nil {
		root.Log.WithError(err).Fatal("Failed to read input text")
	}

	c, err := container.NewContainer(root.Cfg)
	if err != nil {
		root.Log.WithError(err).Fatal("Failed to initialize engine")
	}

	if err := c.Classifier().Learn(text, root.Label); err != nil {
		root.Log.WithError(err).Fatal("Failed to persist classifier update")
	}

	root.Log.Info("Classifier updated",
		logging.Field{Key: logging.FieldDocumentType, Value: root.Label},
	)
}

func readText() (string, error) {
	if root.Text != "" {
		return root.Text, nil
	}
	if root.InputFile == "" {
		return "", fmt.Errorf("either --text or --input is required")
	}
	data, err := os.ReadFile(root.InputFile)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", root.InputFile, err)
	}
	return string(data), nil
}
