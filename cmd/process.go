package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aaoifi-tools/standards-extractor/internal/batch"
	"github.com/aaoifi-tools/standards-extractor/internal/common"
	"github.com/aaoifi-tools/standards-extractor/internal/llm"
	"github.com/aaoifi-tools/standards-extractor/internal/llm/gemini"
	"github.com/aaoifi-tools/standards-extractor/internal/progress"
)

var (
	processDir      string
	processOut      string
	processNoResume bool
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Process the standard PDFs into JSON records",
	Long: `Process enumerates the input PDFs, derives each standard number from its
filename, extracts structured content through Gemini, validates it, and
persists one JSON record per standard. Progress is saved after every
completed standard so an interrupted run resumes where it stopped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := common.LoadConfig()
		if processDir != "" {
			cfg.Paths.PDFInputDir = processDir
		}
		if processOut != "" {
			cfg.Paths.JSONOutputDir = processOut
		}
		if processNoResume {
			cfg.Batch.Resume = false
		}

		logger, logPath, err := common.NewRunLogger(cfg.Paths.LogsDir)
		if err != nil {
			return err
		}
		logger.Info("starting AAOIFI standards processor",
			"input_dir", cfg.Paths.PDFInputDir,
			"output_dir", cfg.Paths.JSONOutputDir,
			"resume", cfg.Batch.Resume,
		)

		// Missing credential halts before any file is touched. Reported, not
		// raised as a crash.
		if err := cfg.Validate(); err != nil {
			if errors.Is(err, common.ErrMissingCredential) {
				fmt.Println("تحذير: مفتاح GEMINI_API_KEY غير موجود!")
				fmt.Println("Warning: GEMINI_API_KEY is not set!")
				fmt.Println("Please add GEMINI_API_KEY to your environment secrets.")
				logger.Warn("GEMINI_API_KEY is not configured, processing cannot continue")
				return nil
			}
			return err
		}

		if err := cfg.EnsureDirs(); err != nil {
			return err
		}

		ctx := context.Background()
		extractor, err := gemini.NewClient(ctx, gemini.Config{
			APIKey:             cfg.LLM.APIKey,
			Model:              cfg.LLM.Model,
			MaxInlineSizeMB:    cfg.LLM.MaxInlineSizeMB,
			UploadPollInterval: cfg.LLM.UploadPollInterval,
			Timeout:            cfg.LLM.Timeout,
		}, llm.RetryPolicy{
			MaxAttempts: cfg.LLM.MaxRetries,
			BaseDelay:   cfg.LLM.RetryDelay,
		}, logger)
		if err != nil {
			return err
		}

		store := progress.NewStore(cfg.Paths.ProgressFile, logger)
		runner := batch.NewRunner(logger, extractor, store, cfg.Paths.JSONOutputDir, cfg.Batch.Resume)

		summary, err := runner.Run(ctx, cfg.Paths.PDFInputDir)
		if err != nil {
			return err
		}
		if summary.Total == 0 {
			batch.PrintNoInput(os.Stdout, cfg.Paths.PDFInputDir)
			return nil
		}

		batch.PrintSummary(os.Stdout, summary)
		logger.Info("processing completed", "log_file", logPath)
		return nil
	},
}

func init() {
	processCmd.Flags().StringVar(&processDir, "dir", "", "input directory of standard PDFs (default from PDF_INPUT_DIR)")
	processCmd.Flags().StringVar(&processOut, "out", "", "output directory for JSON records (default from JSON_OUTPUT_DIR)")
	processCmd.Flags().BoolVar(&processNoResume, "no-resume", false, "ignore recorded progress and reprocess every standard")
	rootCmd.AddCommand(processCmd)
}
