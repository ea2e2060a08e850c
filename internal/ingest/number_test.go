package ingest

import "testing"

func TestExtractStandardNumber(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     int
	}{
		{"keyword with parentheses", "معيار (7) المتاجرة في العملات.pdf", 7},
		{"keyword with parentheses no space", "معيار(12) الإجارة.pdf", 12},
		{"keyword with dash", "معيار-3 بطاقة الحسم.pdf", 3},
		{"keyword with en dash", "معيار–15 الجعالة.pdf", 15},
		{"numbered standard phrase", "المعيار-الشرعي-رقم-21.pdf", 21},
		{"parentheses anywhere", "الشريعة (9) نسخة نهائية.pdf", 9},
		{"raqm with dash", "رقم-30 التورق.pdf", 30},
		{"bare digits fallback", "standard 44 final.pdf", 44},
		{"first digit run wins", "scan 2 of 5.pdf", 2},
		{"no digits", "معيار المتاجرة في العملات.pdf", 0},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractStandardNumber(tt.filename); got != tt.want {
				t.Errorf("ExtractStandardNumber(%q) = %d, want %d", tt.filename, got, tt.want)
			}
		})
	}
}

func TestExtractStandardNumberEasternDigits(t *testing.T) {
	// A filename written with Eastern Arabic-Indic digits must yield the same
	// number as its Western-digit equivalent.
	eastern := "معيار (١٢) الإجارة.pdf"
	western := "معيار (12) الإجارة.pdf"

	got := ExtractStandardNumber(eastern)
	want := ExtractStandardNumber(western)
	if got != want || got != 12 {
		t.Fatalf("eastern=%d western=%d, want both 12", got, want)
	}

	if got := ExtractStandardNumber("٤٥.pdf"); got != 45 {
		t.Errorf("bare eastern digits = %d, want 45", got)
	}
}

func TestExtractStandardNumberCascadePriority(t *testing.T) {
	// The labeled number must win over other digit runs in the title.
	got := ExtractStandardNumber("معيار (3) طبعة 2017.pdf")
	if got != 3 {
		t.Errorf("labeled number lost to embedded year: got %d, want 3", got)
	}
}
