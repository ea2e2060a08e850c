package gemini

import (
	"os"
	"time"
)

// Config for the Gemini client.
type Config struct {
	APIKey             string        // if empty, falls back to env GEMINI_API_KEY
	Model              string        // e.g., "gemini-2.5-flash"
	MaxInlineSizeMB    int64         // above this, files go through the Files API
	UploadPollInterval time.Duration // sleep between upload-state polls
	Timeout            time.Duration // per-attempt guard
}

func (cfg Config) withDefaults() Config {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-2.5-flash"
	}
	if cfg.MaxInlineSizeMB <= 0 {
		cfg.MaxInlineSizeMB = 10
	}
	if cfg.UploadPollInterval <= 0 {
		cfg.UploadPollInterval = 2 * time.Second
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Minute
	}
	return cfg
}
