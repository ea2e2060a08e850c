package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Paths Paths
	LLM   LLMConfig
	Batch BatchConfig
}

// Paths holds the working-directory layout
type Paths struct {
	PDFInputDir   string
	JSONOutputDir string
	LogsDir       string
	ProgressFile  string
	IndexFile     string
}

// LLMConfig holds Gemini-related configuration
type LLMConfig struct {
	APIKey             string
	Model              string
	MaxInlineSizeMB    int64
	MaxRetries         int
	RetryDelay         time.Duration
	UploadPollInterval time.Duration
	Timeout            time.Duration
}

// BatchConfig holds batch-runner configuration
type BatchConfig struct {
	Resume bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Paths: Paths{
			PDFInputDir:   getEnv("PDF_INPUT_DIR", "AAOIFI_Standards_Complete"),
			JSONOutputDir: getEnv("JSON_OUTPUT_DIR", "json_standards"),
			LogsDir:       getEnv("LOGS_DIR", "logs"),
			ProgressFile:  getEnv("PROGRESS_FILE", "processing_progress.json"),
			IndexFile:     getEnv("INDEX_FILE", "standards_index.json"),
		},
		LLM: LLMConfig{
			APIKey:             getEnv("GEMINI_API_KEY", ""),
			Model:              getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			MaxInlineSizeMB:    getEnvAsInt64("MAX_INLINE_SIZE_MB", 10),
			MaxRetries:         getEnvAsInt("MAX_RETRIES", 3),
			RetryDelay:         getEnvAsDuration("RETRY_DELAY", 5*time.Second),
			UploadPollInterval: getEnvAsDuration("UPLOAD_POLL_INTERVAL", 2*time.Second),
			Timeout:            getEnvAsDuration("GEMINI_TIMEOUT", 5*time.Minute),
		},
		Batch: BatchConfig{
			Resume: getEnvAsBool("RESUME", true),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.LLM.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "GEMINI_API_KEY is required", ErrMissingCredential)
	}
	if c.Paths.PDFInputDir == "" {
		return NewAppError("CONFIG_ERROR", "PDF_INPUT_DIR is required", ErrInvalidInput)
	}
	if c.Paths.JSONOutputDir == "" {
		return NewAppError("CONFIG_ERROR", "JSON_OUTPUT_DIR is required", ErrInvalidInput)
	}
	return nil
}

// EnsureDirs creates the input, output, and logs directories if missing.
func (c *Config) EnsureDirs() error {
	for _, dir := range []string{c.Paths.PDFInputDir, c.Paths.JSONOutputDir, c.Paths.LogsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return WrapError(err, "create directory "+dir)
		}
	}
	return nil
}
