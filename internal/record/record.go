// Package record maps raw extraction payloads into the canonical persisted
// standard shape and validates that shape before anything touches disk.
package record

import (
	"encoding/json"
	"fmt"
)

// IDPrefix is the fixed two-letter prefix for standard IDs (SS01, SS02, ...).
const IDPrefix = "SS"

// Section is one heading-level unit of a standard, in document order.
type Section struct {
	SecID   string `json:"sec_id"`
	Heading string `json:"heading"`
	Text    string `json:"text"`
}

// StandardRecord is the canonical persisted unit for one standard.
type StandardRecord struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Text     string    `json:"text"`
	Sections []Section `json:"sections"`
	Keywords []string  `json:"keywords"`
	Aliases  []string  `json:"aliases"`
	Pages    []string  `json:"pages"`
}

// FormatStandardID renders the canonical zero-padded ID, e.g. 7 -> "SS07".
func FormatStandardID(number int) string {
	return fmt.Sprintf("%s%02d", IDPrefix, number)
}

// payloadSection uses pointers so absent sub-fields are distinguishable and
// can be backfilled to "".
type payloadSection struct {
	SecID   *string `json:"sec_id"`
	Heading *string `json:"heading"`
	Text    *string `json:"text"`
}

type payload struct {
	Title    string           `json:"title"`
	Text     string           `json:"text"`
	Sections []payloadSection `json:"sections"`
	Keywords []string         `json:"keywords"`
	Aliases  []string         `json:"aliases"`
	Pages    []string         `json:"pages"`
}

// Build maps a raw extraction payload onto a StandardRecord. Missing scalar
// fields default to "", missing list fields to empty sequences, and each
// section entry's missing sec_id/heading/text is backfilled to "". Supplied
// values pass through verbatim: no deduplication, no re-ordering. A payload
// whose top-level shape does not decode is a build error.
func Build(number int, raw []byte) (*StandardRecord, error) {
	var p payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}

	rec := &StandardRecord{
		ID:       FormatStandardID(number),
		Title:    p.Title,
		Text:     p.Text,
		Sections: make([]Section, 0, len(p.Sections)),
		Keywords: p.Keywords,
		Aliases:  p.Aliases,
		Pages:    p.Pages,
	}
	for _, s := range p.Sections {
		rec.Sections = append(rec.Sections, Section{
			SecID:   deref(s.SecID),
			Heading: deref(s.Heading),
			Text:    deref(s.Text),
		})
	}

	// nil slices would persist as JSON null; the contract is empty sequences.
	if rec.Keywords == nil {
		rec.Keywords = []string{}
	}
	if rec.Aliases == nil {
		rec.Aliases = []string{}
	}
	if rec.Pages == nil {
		rec.Pages = []string{}
	}
	return rec, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
