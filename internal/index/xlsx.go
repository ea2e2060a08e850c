package index

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// WriteXLSX renders the index as a single-sheet workbook for reviewers who
// work in spreadsheets rather than JSON. List fields are comma-joined.
func WriteXLSX(path string, f *File) error {
	wb := excelize.NewFile()
	const sheet = "Standards"
	if index, _ := wb.GetSheetIndex(sheet); index == -1 {
		if _, err := wb.NewSheet(sheet); err != nil {
			return err
		}
	}
	// Drop the default sheet so the workbook opens on Standards.
	if index, _ := wb.GetSheetIndex("Sheet1"); index != -1 {
		_ = wb.DeleteSheet("Sheet1")
	}
	activeIndex, _ := wb.GetSheetIndex(sheet)
	wb.SetActiveSheet(activeIndex)

	headers := []string{"ID", "Title", "Keywords", "Aliases"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = wb.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, e := range f.Standards {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = wb.SetCellValue(sheet, cell, v)
		}
		write(1, e.ID)
		write(2, e.Title)
		write(3, strings.Join(e.Keywords, ", "))
		write(4, strings.Join(e.Aliases, ", "))
		row++
	}

	return wb.SaveAs(path)
}
