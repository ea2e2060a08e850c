package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "standards-extractor",
	Short: "AAOIFI Sharia standards PDF to JSON processor",
	Long: `standards-extractor converts the AAOIFI Sharia standard PDFs into
normalized JSON records using Gemini for text and structure extraction,
with resumable batch processing, then aggregates a combined index file.`,
}

func init() {
	cobra.OnInitialize(func() {
		// A local .env is a convenience, not a requirement.
		_ = godotenv.Load()
	})
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
