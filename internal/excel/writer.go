package excel

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/timegridapp/timegrid-backend/internal/timetable"
)

const (
	maxSheetNameLen = 30

	firstColumnWidth = 25
	slotColumnWidth  = 22
)

// WriteWorkbook renders the ordered day matrices into a styled workbook:
// one worksheet per day, a banner line in A1, the header row at row 2 and
// entity rows below it. The caller supplies at least one sheet.
func WriteWorkbook(sheets []timetable.DaySheet, banner string) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	bannerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 11, Bold: true, Italic: true, Color: "555555"},
	})
	if err != nil {
		return nil, fmt.Errorf("banner style: %w", err)
	}

	thin := []excelize.Border{
		{Type: "left", Style: 1, Color: "000000"},
		{Type: "right", Style: 1, Color: "000000"},
		{Type: "top", Style: 1, Color: "000000"},
		{Type: "bottom", Style: 1, Color: "000000"},
	}
	cellStyle, err := f.NewStyle(&excelize.Style{
		Border:    thin,
		Font:      &excelize.Font{Size: 11, Family: "Calibri"},
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top", Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("cell style: %w", err)
	}
	entityStyle, err := f.NewStyle(&excelize.Style{
		Border:    thin,
		Font:      &excelize.Font{Size: 14, Bold: true, Family: "Calibri"},
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "center", Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("entity style: %w", err)
	}

	used := make(map[string]struct{})
	for _, ds := range sheets {
		name := sheetName(ds.Day, used)
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("sheet %s: %w", name, err)
		}
		if err := writeDaySheet(f, name, ds.Matrix, banner, bannerStyle, cellStyle, entityStyle); err != nil {
			return nil, fmt.Errorf("sheet %s: %w", name, err)
		}
	}

	if len(sheets) > 0 {
		f.DeleteSheet("Sheet1")
		first, _ := f.GetSheetIndex(sheetNameOf(sheets[0].Day))
		f.SetActiveSheet(first)
	}

	return f.WriteToBuffer()
}

func writeDaySheet(f *excelize.File, name string, m timetable.DayMatrix, banner string, bannerStyle, cellStyle, entityStyle int) error {
	if err := f.SetCellValue(name, "A1", banner); err != nil {
		return err
	}
	if err := f.MergeCell(name, "A1", "D1"); err != nil {
		return err
	}
	if err := f.SetCellStyle(name, "A1", "A1", bannerStyle); err != nil {
		return err
	}

	// Header row at sheet row 2.
	header := append([]string{m.Primary}, m.Slots...)
	for c, v := range header {
		cell, err := excelize.CoordinatesToCellName(c+1, 2)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(name, cell, v); err != nil {
			return err
		}
	}

	for r, row := range m.Rows {
		cell, err := excelize.CoordinatesToCellName(1, r+3)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(name, cell, row.Entity); err != nil {
			return err
		}
		for c, text := range row.Cells {
			if text == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+2, r+3)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(name, cell, text); err != nil {
				return err
			}
		}
	}

	lastRow := 2 + len(m.Rows)
	lastCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(name, "A2", fmt.Sprintf("%s%d", lastCol, lastRow), cellStyle); err != nil {
		return err
	}
	if err := f.SetCellStyle(name, "A2", fmt.Sprintf("A%d", lastRow), entityStyle); err != nil {
		return err
	}

	if err := f.SetColWidth(name, "A", "A", firstColumnWidth); err != nil {
		return err
	}
	return f.SetColWidth(name, "B", lastCol, slotColumnWidth)
}

// sheetName derives a worksheet name from a day label: first whitespace
// token, uppercased, truncated. Duplicate names get a numeric suffix since
// worksheet names must be unique.
func sheetName(day string, used map[string]struct{}) string {
	name := sheetNameOf(day)
	base := name
	for n := 2; ; n++ {
		if _, taken := used[name]; !taken {
			break
		}
		name = fmt.Sprintf("%s%d", base, n)
	}
	used[name] = struct{}{}
	return name
}

func sheetNameOf(day string) string {
	fields := strings.Fields(day)
	name := "SHEET"
	if len(fields) > 0 {
		name = strings.ToUpper(fields[0])
	}
	if runes := []rune(name); len(runes) > maxSheetNameLen {
		name = string(runes[:maxSheetNameLen])
	}
	return name
}
