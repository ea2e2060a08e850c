package llm

import "context"

// StandardExtractor is the interface the batch runner depends on. The payload
// is the backend's raw JSON for one standard: title, text, sections, keywords,
// aliases, pages. Implementations own transport, retries, and the guarantee
// that a returned payload is JSON-parseable.
type StandardExtractor interface {
	ExtractStandard(ctx context.Context, filePath string, number int) ([]byte, error)
}
