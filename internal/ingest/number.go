package ingest

import (
	"regexp"
	"strconv"
	"strings"
)

// easternDigits folds Eastern Arabic-Indic numerals onto Western digits so a
// single set of patterns can match filenames written either way.
var easternDigits = strings.NewReplacer(
	"٠", "0", "١", "1", "٢", "2", "٣", "3", "٤", "4",
	"٥", "5", "٦", "6", "٧", "7", "٨", "8", "٩", "9",
)

// The cascade is ordered most-specific to least-specific. Filenames are
// human-authored and inconsistent; the specific forms go first so that a
// price or date buried in the title does not win over the labeled number.
// The bare-digits fallback can still bind to an unintended number; there is
// no cross-check against document content.
var numberPatterns = []*regexp.Regexp{
	regexp.MustCompile(`معيار\s*\((\d+)\)`),
	regexp.MustCompile(`معيار[–-](\d+)`),
	regexp.MustCompile(`المعيار[–-]الشرعي[–-]رقم[–-](\d+)`),
	regexp.MustCompile(`\((\d+)\)`),
	regexp.MustCompile(`رقم[–-](\d+)`),
	regexp.MustCompile(`(\d+)`),
}

// ExtractStandardNumber derives the standard number from a filename.
// It is total: 0 means no number could be found, and callers must treat 0 as
// unidentifiable rather than format an ID from it.
func ExtractStandardNumber(filename string) int {
	normalized := easternDigits.Replace(filename)

	for _, re := range numberPatterns {
		m := re.FindStringSubmatch(normalized)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			// Digit runs long enough to overflow int are not standard numbers.
			continue
		}
		return n
	}
	return 0
}
