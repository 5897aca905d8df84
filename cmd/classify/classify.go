// Package classify handles the document classification command.
package classify

import (
	"fmt"
	"os"

	"gestfin/pgc-engine/cmd/root"
	"gestfin/pgc-engine/internal/container"
	"gestfin/pgc-engine/internal/logging"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Cmd represents the classify command.
var Cmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify extracted document text",
	Long: `Classify the text extracted from a scanned financial document as
incoming, outgoing, contract or unknown, with a confidence score.`,
	Run: classifyFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Text, "text", "t", "", "Text to classify (alternative to --input)")
}

func classifyFunc(cmd *cobra.Command, args []string) {
	text, err := readText()
	if err != nil {
		root.Log.WithError(err).Fatal("Failed to read input text")
	}

	c, err := container.NewContainer(root.Cfg)
	if err != nil {
		root.Log.WithError(err).Fatal("Failed to initialize engine")
	}

	result := c.Classifier().Classify(text)

	root.Log.Info("Document classified",
		logging.Field{Key: logging.FieldDocumentType, Value: string(result.DocumentType)},
		logging.Field{Key: logging.FieldConfidence, Value: result.Confidence},
	)

	out, err := yaml.Marshal(result)
	if err != nil {
		root.Log.WithError(err).Fatal("Failed to render classification")
	}
	fmt.Print(string(out))
}

// readText takes the classification input from --text or from --input.
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
