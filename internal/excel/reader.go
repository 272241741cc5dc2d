// Package excel handles workbook I/O around the timetable core: parsing the
// uploaded export into raw tables and rendering day matrices back into a
// styled report workbook.
package excel

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/timegridapp/timegrid-backend/internal/timetable"
)

// headerRowOffset is the zero-based header row of the source export; the
// rows above it are banner rows.
const headerRowOffset = 3

// ReadWorkbook parses an uploaded spreadsheet into one RawTable per sheet.
// Sheets too short to contain the header row are skipped. Returns a
// *timetable.InputFormatError when the payload is not a readable workbook.
func ReadWorkbook(r io.Reader) ([]timetable.RawTable, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &timetable.InputFormatError{Err: err}
	}
	defer f.Close()

	var tables []timetable.RawTable
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, &timetable.InputFormatError{Err: fmt.Errorf("sheet %s: %w", sheet, err)}
		}
		if len(rows) <= headerRowOffset {
			continue
		}

		columns, indexes := headerColumns(rows[headerRowOffset])
		if len(columns) == 0 {
			continue
		}

		table := timetable.RawTable{Name: sheet, Columns: columns}
		for _, cells := range rows[headerRowOffset+1:] {
			row := make([]string, len(columns))
			for i, ci := range indexes {
				if ci < len(cells) {
					row[i] = cells[ci]
				}
			}
			table.Rows = append(table.Rows, row)
		}
		tables = append(tables, table)
	}
	return tables, nil
}

// headerColumns extracts the non-empty header cells with their positions,
// suffixing repeated names (DAY, DAY.1, DAY.2) so the normalizer's
// duplicate-day reconciliation has something to reconcile.
func headerColumns(header []string) (names []string, indexes []int) {
	counts := make(map[string]int)
	for i, cell := range header {
		name := strings.TrimSpace(cell)
		if name == "" {
			continue
		}
		if n := counts[name]; n > 0 {
			names = append(names, fmt.Sprintf("%s.%d", name, n))
		} else {
			names = append(names, name)
		}
		counts[name]++
		indexes = append(indexes, i)
	}
	return names, indexes
}
