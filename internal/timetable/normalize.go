package timetable

import (
	"strings"
	"time"
)

// Canonical column names after case normalization.
const (
	columnDay          = "DAY"
	columnDayDuplicate = "DAY.1"
	columnStartTime    = "START TIME"
	columnSubject      = "SUBJECT"
	columnTeacher      = "TEACHER"
	columnRoom         = "ROOM"
	columnGroup        = "GROUP"
	columnIntake       = "INTAKE"
)

// permissiveTimeLayouts are tried, in order, when the merged start-time
// column is not uniformly HH:MM:SS. Spreadsheet readers hand back times in
// several shapes depending on the source cell format.
var permissiveTimeLayouts = []string{
	"15:04:05",
	"15:04",
	"3:04:05 PM",
	"3:04 PM",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"01-02-06 15:04",
}

// Normalize merges the raw sheets into one canonical record collection.
// Column names are matched case- and whitespace-insensitively; a duplicate
// DAY.1 column (multi-sheet export artifact) supersedes DAY. Rows whose
// start time cannot be parsed are dropped; every other field degrades to an
// empty string rather than failing. Returns a *SchemaError when no
// start-time column exists anywhere in the merged input.
func Normalize(tables []RawTable) ([]ClassRecord, error) {
	merged, columns := mergeTables(tables)

	if _, ok := columns[columnStartTime]; !ok {
		return nil, &SchemaError{Found: columnList(tables)}
	}

	starts := parseStartTimes(merged)

	records := make([]ClassRecord, 0, len(merged))
	for i, row := range merged {
		if starts[i] == "" {
			continue
		}
		rec := ClassRecord{
			Day:       strings.TrimSpace(row[columnDay]),
			StartTime: starts[i],
			Subject:   strings.TrimSpace(row[columnSubject]),
			Teacher:   strings.TrimSpace(row[columnTeacher]),
			Room:      strings.TrimSpace(row[columnRoom]),
			Group:     strings.TrimSpace(row[columnGroup]),
			Intake:    strings.TrimSpace(row[columnIntake]),
		}
		rec.IntakeGroup = rec.Intake + " " + rec.Group
		records = append(records, rec)
	}
	return records, nil
}

// mergeTables concatenates all sheets into one logical row set keyed by
// normalized column name, applying the DAY.1 reconciliation per table.
func mergeTables(tables []RawTable) ([]map[string]string, map[string]struct{}) {
	columns := make(map[string]struct{})
	var merged []map[string]string

	for _, t := range tables {
		norm := make([]string, len(t.Columns))
		hasDup := false
		for i, c := range t.Columns {
			norm[i] = strings.ToUpper(strings.TrimSpace(c))
			if norm[i] == columnDayDuplicate {
				hasDup = true
			}
		}
		if hasDup {
			for i, name := range norm {
				switch name {
				case columnDay:
					norm[i] = "" // superseded by DAY.1
				case columnDayDuplicate:
					norm[i] = columnDay
				}
			}
		}

		for _, name := range norm {
			if name != "" {
				columns[name] = struct{}{}
			}
		}

		for _, cells := range t.Rows {
			row := make(map[string]string, len(norm))
			for i, name := range norm {
				if name == "" || i >= len(cells) {
					continue
				}
				if _, exists := row[name]; !exists {
					row[name] = cells[i]
				}
			}
			merged = append(merged, row)
		}
	}
	return merged, columns
}

// parseStartTimes normalizes the start-time column to HH:MM:SS. A strict
// pass runs first; if any value is not already HH:MM:SS the whole column is
// re-parsed permissively and unparsable values coerce to "" (row dropped by
// the caller).
func parseStartTimes(rows []map[string]string) []string {
	starts := make([]string, len(rows))
	strict := true
	for i, row := range rows {
		v := strings.TrimSpace(row[columnStartTime])
		t, err := time.Parse(slotLayout, v)
		if err != nil {
			strict = false
			break
		}
		starts[i] = t.Format(slotLayout)
	}
	if strict {
		return starts
	}

	for i, row := range rows {
		starts[i] = parsePermissiveTime(strings.TrimSpace(row[columnStartTime]))
	}
	return starts
}

func parsePermissiveTime(v string) string {
	if v == "" {
		return ""
	}
	for _, layout := range permissiveTimeLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t.Format(slotLayout)
		}
	}
	return ""
}

// columnList reports the normalized columns actually found, in
// first-encounter order, for SchemaError messages.
func columnList(tables []RawTable) []string {
	seen := make(map[string]struct{})
	var found []string
	for _, t := range tables {
		for _, c := range t.Columns {
			name := strings.ToUpper(strings.TrimSpace(c))
			if name == "" {
				continue
			}
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			found = append(found, name)
		}
	}
	return found
}
