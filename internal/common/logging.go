package common

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// NewRunLogger builds the logger used for a single batch run: structured JSON
// mirrored to stdout and to a uniquely timestamped file under logsDir.
// The log file path is returned so the summary can point operators at it.
func NewRunLogger(logsDir string) (*slog.Logger, string, error) {
	if err := os.MkdirAll(logsDir, 0o755); err != nil {
		return nil, "", WrapError(err, "create logs directory")
	}

	name := "processing_" + time.Now().Format("20060102_150405") + ".log"
	path := filepath.Join(logsDir, name)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, "", WrapError(err, "open log file")
	}

	logger := slog.New(slog.NewJSONHandler(io.MultiWriter(os.Stdout, f), &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	return logger, path, nil
}
