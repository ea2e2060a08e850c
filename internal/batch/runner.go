// Package batch orchestrates one resumable pass over the input directory:
// discover, skip completed, extract, build, validate, persist, record
// progress. Files are processed strictly one at a time.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/aaoifi-tools/standards-extractor/internal/ingest"
	"github.com/aaoifi-tools/standards-extractor/internal/llm"
	"github.com/aaoifi-tools/standards-extractor/internal/progress"
	"github.com/aaoifi-tools/standards-extractor/internal/record"
)

// FailedStandard is one per-file failure with its best-known number
// (0 when the filename itself was unidentifiable).
type FailedStandard struct {
	Number int
	Reason string
}

// Summary is the terminal report for one run.
type Summary struct {
	Total          int
	Skipped        int
	NewlyProcessed int
	Successful     []int // previously completed plus newly processed
	Failed         []FailedStandard
	OutputDir      string
}

// Runner drives the batch. All collaborators are injected; the extractor is
// an interface so tests can run the full state machine without a network.
type Runner struct {
	logger    *slog.Logger
	extractor llm.StandardExtractor
	store     *progress.Store
	outputDir string
	resume    bool
}

func NewRunner(logger *slog.Logger, extractor llm.StandardExtractor, store *progress.Store, outputDir string, resume bool) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		logger:    logger,
		extractor: extractor,
		store:     store,
		outputDir: outputDir,
		resume:    resume,
	}
}

// Run processes every PDF under inputDir in ascending standard-number order.
// A file's failure never aborts the batch; the only returned error is a
// failure to enumerate the input directory.
func (r *Runner) Run(ctx context.Context, inputDir string) (*Summary, error) {
	files, err := ingest.DiscoverPDFs(inputDir)
	if err != nil {
		return nil, fmt.Errorf("discover pdfs: %w", err)
	}

	summary := &Summary{Total: len(files), OutputDir: r.outputDir}
	if len(files) == 0 {
		r.logger.Warn("batch.no_input", "dir", inputDir)
		return summary, nil
	}
	r.logger.Info("batch.start", "files", len(files), "dir", inputDir, "resume", r.resume)

	completed := make(map[int]struct{})
	if r.resume {
		completed = r.store.Load()
		if len(completed) > 0 {
			r.logger.Info("batch.resuming", "already_completed", len(completed))
		}
	}
	for n := range completed {
		summary.Successful = append(summary.Successful, n)
	}

	for _, path := range files {
		number := ingest.ExtractStandardNumber(filepath.Base(path))

		if _, done := completed[number]; done {
			r.logger.Info("batch.skip_completed", "standard", number, "file", filepath.Base(path))
			summary.Skipped++
			continue
		}

		ok, message, num := r.processOne(ctx, path)
		if ok {
			summary.Successful = append(summary.Successful, num)
			summary.NewlyProcessed++
			completed[num] = struct{}{}
			if err := r.store.Save(completed); err != nil {
				r.logger.Error("batch.progress_save_failed", "standard", num, "error", err)
			}
			r.logger.Info("batch.standard_done", "standard", num)
		} else {
			summary.Failed = append(summary.Failed, FailedStandard{Number: num, Reason: message})
			r.logger.Error("batch.standard_failed", "standard", num, "reason", message)
		}
	}

	r.logger.Info("batch.finished",
		"total", summary.Total,
		"skipped", summary.Skipped,
		"newly_processed", summary.NewlyProcessed,
		"failed", len(summary.Failed),
	)
	return summary, nil
}

// processOne runs the full per-file pipeline and converts every failure into
// a (ok, message, number) outcome at the file boundary.
func (r *Runner) processOne(ctx context.Context, path string) (bool, string, int) {
	name := filepath.Base(path)

	number := ingest.ExtractStandardNumber(name)
	if number == 0 {
		return false, fmt.Sprintf("could not extract standard number from: %s", name), 0
	}

	r.logger.Info("batch.processing", "standard", number, "file", name)

	payload, err := r.extractor.ExtractStandard(ctx, path, number)
	if err != nil {
		return false, fmt.Sprintf("failed to extract data from: %s: %v", name, err), number
	}

	rec, err := record.Build(number, payload)
	if err != nil {
		return false, fmt.Sprintf("invalid payload shape for: %s: %v", name, err), number
	}

	if err := rec.Validate(); err != nil {
		return false, fmt.Sprintf("invalid JSON structure for: %s: %v", name, err), number
	}

	outPath, err := record.Save(r.outputDir, rec)
	if err != nil {
		return false, fmt.Sprintf("failed to save JSON for: %s: %v", name, err), number
	}

	r.logger.Info("batch.saved", "standard", number, "path", outPath)
	return true, outPath, number
}
