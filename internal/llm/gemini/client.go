package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"google.golang.org/genai"

	"github.com/aaoifi-tools/standards-extractor/internal/llm"
)

const pdfMIMEType = "application/pdf"

// Client implements llm.StandardExtractor against the Gemini API. Files above
// the inline threshold are uploaded through the Files API and referenced by
// URI; everything else is sent inline with the request.
type Client struct {
	cfg    Config
	client *genai.Client
	retry  llm.RetryPolicy
	logger *slog.Logger
}

// NewClient creates a Gemini-backed extractor.
func NewClient(ctx context.Context, cfg Config, retry llm.RetryPolicy, logger *slog.Logger) (*Client, error) {
	cfg = cfg.withDefaults()
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if retry.MaxAttempts == 0 {
		retry = llm.DefaultRetryPolicy()
	}
	return &Client{cfg: cfg, client: gc, retry: retry, logger: logger}, nil
}

// ExtractStandard sends the PDF plus the fixed extraction prompt and returns
// the model's raw JSON payload. Transient failures (upload errors, empty or
// non-JSON responses, network errors) are retried per the client's policy;
// the error returned after exhaustion is definitive.
func (c *Client) ExtractStandard(ctx context.Context, filePath string, number int) ([]byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	st, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("stat pdf: %w", err)
	}
	inline := st.Size() <= c.cfg.MaxInlineSizeMB*1024*1024

	c.logger.Info("llm.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"standard", number,
		"file", filepath.Base(filePath),
		"size_bytes", st.Size(),
		"inline", inline,
	)

	var payload []byte
	err = c.retry.Do(ctx, c.logger.With("req_id", rid, "file", filepath.Base(filePath)), "extract_standard", func(ctx context.Context) error {
		attemptCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()

		out, err := c.extractOnce(attemptCtx, filePath, number, inline)
		if err != nil {
			return err
		}
		payload = out
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.logger.Info("llm.extract.ok",
		"req_id", rid,
		"standard", number,
		"payload_bytes", len(payload),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return payload, nil
}

// extractOnce performs a single attempt: build parts, call generateContent,
// and require a JSON-parseable, non-empty response.
func (c *Client) extractOnce(ctx context.Context, filePath string, number int, inline bool) ([]byte, error) {
	var filePart *genai.Part
	if inline {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("read pdf: %w", err)
		}
		filePart = genai.NewPartFromBytes(data, pdfMIMEType)
	} else {
		uploaded, err := c.uploadFile(ctx, filePath)
		if err != nil {
			return nil, err
		}
		filePart = genai.NewPartFromURI(uploaded.URI, pdfMIMEType)
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			filePart,
			genai.NewPartFromText(llm.BuildExtractionPrompt(number)),
		}, genai.RoleUser),
	}

	schema := llm.BuildPayloadJSONSchema()
	resp, err := c.client.Models.GenerateContent(ctx, c.cfg.Model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType:   "application/json",
		ResponseJsonSchema: schema,
	})
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return nil, fmt.Errorf("empty response from gemini")
	}
	raw := []byte(text)
	if !json.Valid(raw) {
		return nil, fmt.Errorf("response is not valid json")
	}
	// The schema is advisory on the wire; verify locally before handing the
	// payload to the record builder.
	if err := llm.ValidateJSONAgainstSchema(schema, raw); err != nil {
		return nil, fmt.Errorf("payload schema: %w", err)
	}
	return raw, nil
}

// uploadFile pushes the PDF through the Files API and polls until it leaves
// the processing state. A terminal FAILED state is an upload error.
func (c *Client) uploadFile(ctx context.Context, filePath string) (*genai.File, error) {
	c.logger.Info("llm.upload.start", "file", filepath.Base(filePath))

	uploaded, err := c.client.Files.UploadFromPath(ctx, filePath, &genai.UploadFileConfig{
		MIMEType: pdfMIMEType,
	})
	if err != nil {
		return nil, fmt.Errorf("upload file: %w", err)
	}

	for uploaded.State == genai.FileStateProcessing {
		select {
		case <-time.After(c.cfg.UploadPollInterval):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		if uploaded.Name == "" {
			break
		}
		uploaded, err = c.client.Files.Get(ctx, uploaded.Name, nil)
		if err != nil {
			return nil, fmt.Errorf("poll uploaded file: %w", err)
		}
	}

	if uploaded.State == genai.FileStateFailed {
		return nil, fmt.Errorf("file upload failed: %s", filepath.Base(filePath))
	}
	if uploaded.URI == "" {
		return nil, fmt.Errorf("uploaded file has no uri: %s", filepath.Base(filePath))
	}

	c.logger.Info("llm.upload.ok", "file", filepath.Base(filePath), "name", uploaded.Name)
	return uploaded, nil
}
