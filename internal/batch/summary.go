package batch

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aaoifi-tools/standards-extractor/internal/record"
)

var (
	// headerStyle for the summary title
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	// successStyle for successful standards
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// errorStyle for failed standards
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	// boxStyle wraps the counts block
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 1)
)

// PrintSummary renders the bilingual terminal report for one run.
func PrintSummary(w io.Writer, s *Summary) {
	var counts strings.Builder
	counts.WriteString(headerStyle.Render("ملخص المعالجة - Processing Summary") + "\n")
	counts.WriteString(fmt.Sprintf("إجمالي الملفات المعالجة: %d\n", s.Total))
	counts.WriteString(fmt.Sprintf("الملفات الناجحة: %d\n", len(s.Successful)))
	counts.WriteString(fmt.Sprintf("الملفات الفاشلة: %d\n", len(s.Failed)))
	counts.WriteString(fmt.Sprintf("مجلد الإخراج: %s", s.OutputDir))
	fmt.Fprintln(w, boxStyle.Render(counts.String()))

	if s.Skipped > 0 {
		fmt.Fprintf(w, "→ تم تخطي %d معيار (معالجة سابقة)\n", s.Skipped)
		fmt.Fprintf(w, "  Skipped %d previously processed standards\n", s.Skipped)
	}
	if s.NewlyProcessed > 0 {
		fmt.Fprintf(w, "→ تم معالجة %d معيار جديد في هذه الجلسة\n", s.NewlyProcessed)
		fmt.Fprintf(w, "  Processed %d new standards in this session\n", s.NewlyProcessed)
	}

	if len(s.Successful) > 0 {
		fmt.Fprintln(w, "\nالمعايير المعالجة بنجاح:")
		nums := append([]int(nil), s.Successful...)
		sort.Ints(nums)
		for _, n := range nums {
			fmt.Fprintln(w, successStyle.Render("  - "+record.FormatStandardID(n)))
		}
	}

	if len(s.Failed) > 0 {
		fmt.Fprintln(w, "\nالمعايير الفاشلة:")
		for _, f := range s.Failed {
			if f.Number > 0 {
				fmt.Fprintln(w, errorStyle.Render(fmt.Sprintf("  - %s: %s", record.FormatStandardID(f.Number), f.Reason)))
			} else {
				fmt.Fprintln(w, errorStyle.Render("  - "+f.Reason))
			}
		}
	}
}

// PrintNoInput renders the bilingual "nothing to do" report.
func PrintNoInput(w io.Writer, inputDir string) {
	fmt.Fprintln(w, errorStyle.Render("لا توجد ملفات PDF في المجلد!"))
	fmt.Fprintln(w, errorStyle.Render("No PDF files found in the input directory!"))
	fmt.Fprintf(w, "Please add PDF files to: %s\n\n", inputDir)
	fmt.Fprintln(w, "Expected file naming format:")
	fmt.Fprintln(w, "  معيار (1) المتاجرة في العملات.pdf")
	fmt.Fprintln(w, "  معيار (2) ....pdf")
	fmt.Fprintln(w, "  ...")
	fmt.Fprintln(w, "  معيار (61) ....pdf")
}
