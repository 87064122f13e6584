package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"chartrisk/internal/analyze"
	"chartrisk/internal/extract"
	"chartrisk/internal/models"
	"chartrisk/internal/ocr"
)

var (
	decideImage string
	decideText  string
)

var decideCmd = &cobra.Command{
	Use:   "decide",
	Short: "Evaluate a chart screenshot against Fibonacci retracement zones",
	Long: `Decide scans recognized chart text for key levels (e.g. Fib 50%, 61.8%)
and reports whether the setup meets the entry criteria.

Input is either a chart image (sent to the configured OCR service) or a text
file with one recognized fragment per line.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := setup()
		if err != nil {
			return err
		}

		var lines []string
		switch {
		case decideText != "":
			data, err := os.ReadFile(decideText)
			if err != nil {
				return fmt.Errorf("reading text input: %w", err)
			}
			lines = strings.Split(strings.TrimRight(string(data), "\n"), "\n")

		case decideImage != "":
			if cfg.OCRServiceURL == "" {
				return errors.New("OCR_SERVICE_URL is not configured; use --text for pre-recognized input")
			}
			image, err := os.ReadFile(decideImage)
			if err != nil {
				return fmt.Errorf("reading image: %w", err)
			}

			var recognizer models.Recognizer = ocr.NewServiceClient(ocr.ClientOptions{
				BaseURL:        cfg.OCRServiceURL,
				RequestTimeout: time.Duration(cfg.RequestTimeout) * time.Second,
				RequestsPerSec: cfg.RequestsPerSec,
				MaxRetries:     uint64(cfg.MaxRetries),
			})
			lines, err = recognizer.Recognize(cmd.Context(), image)
			if err != nil {
				return fmt.Errorf("recognizing chart text: %w", err)
			}

		default:
			return errors.New("either --image or --text is required")
		}

		levels := extract.Prices(lines)
		verdict := analyze.Classify(levels)

		fmt.Printf("Trade Decision: %s\n", verdict.Decision)
		fmt.Println("Reasons:")
		for _, r := range verdict.Reasons {
			fmt.Printf("  - %s\n", r)
		}
		return nil
	},
}

func init() {
	decideCmd.Flags().StringVar(&decideImage, "image", "", "chart screenshot to analyze")
	decideCmd.Flags().StringVar(&decideText, "text", "", "file of pre-recognized text, one fragment per line")
	rootCmd.AddCommand(decideCmd)
}
