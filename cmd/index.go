package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aaoifi-tools/standards-extractor/internal/common"
	"github.com/aaoifi-tools/standards-extractor/internal/index"
)

var (
	indexDir  string
	indexOut  string
	indexXLSX string
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Aggregate the combined standards index",
	Long: `Index scans every produced JSON record and combines id, title, keywords,
and aliases into one index file. The index is fully regenerated on every
run; records that fail to parse are skipped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := common.LoadConfig()
		if indexDir != "" {
			cfg.Paths.JSONOutputDir = indexDir
		}
		if indexOut != "" {
			cfg.Paths.IndexFile = indexOut
		}

		logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))

		idx, err := index.Aggregate(cfg.Paths.JSONOutputDir, logger)
		if err != nil {
			return err
		}
		if err := index.WriteJSON(cfg.Paths.IndexFile, idx); err != nil {
			return err
		}
		if indexXLSX != "" {
			if err := index.WriteXLSX(indexXLSX, idx); err != nil {
				return err
			}
		}

		fmt.Printf("✓ تم حفظ %d معيار في %s\n", idx.TotalStandards, cfg.Paths.IndexFile)
		fmt.Printf("  Saved %d standards to %s\n", idx.TotalStandards, cfg.Paths.IndexFile)
		return nil
	},
}

func init() {
	indexCmd.Flags().StringVar(&indexDir, "dir", "", "directory of JSON records (default from JSON_OUTPUT_DIR)")
	indexCmd.Flags().StringVar(&indexOut, "out", "", "index file path (default from INDEX_FILE)")
	indexCmd.Flags().StringVar(&indexXLSX, "xlsx", "", "also write the index as an XLSX workbook at this path")
	rootCmd.AddCommand(indexCmd)
}
