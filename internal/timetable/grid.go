package timetable

import (
	"sort"
	"strings"
)

// CellSeparator delimits colliding contributions within one grid cell. The
// grid is a reporting surface, not a conflict detector: writes into an
// occupied cell append after this separator instead of overwriting.
const CellSeparator = "\n---\n"

// excludedPrimary filters unset or corrupted source cells out of the row
// axis. "nan" is the textual residue of a missing cell in the upstream
// export.
func excludedPrimary(v string) bool {
	return v == "" || v == "nan"
}

// dayRank orders weekday labels, abbreviated or full. Unrecognized labels
// rank after every weekday, keeping their first-encounter order among
// themselves.
var dayRank = map[string]int{
	"MON": 0, "MONDAY": 0,
	"TUE": 1, "TUESDAY": 1,
	"WED": 2, "WEDNESDAY": 2,
	"THU": 3, "THURSDAY": 3,
	"FRI": 4, "FRIDAY": 4,
	"SAT": 5, "SATURDAY": 5,
	"SUN": 6, "SUNDAY": 6,
}

const unknownDayRank = 99

func rankOfDay(day string) int {
	if r, ok := dayRank[strings.ToUpper(strings.TrimSpace(day))]; ok {
		return r
	}
	return unknownDayRank
}

// Build projects the canonical records onto one occupancy matrix per day.
// Records are grouped and deduplicated into occupancy entries, days ordered
// by weekday rank, and each entry written into its start slot plus the
// following slot (fixed-duration spillover). Degenerate input produces
// fewer or smaller matrices, never an error.
func Build(records []ClassRecord, view View, axis Axis) []DaySheet {
	entries := groupRecords(records)

	var sheets []DaySheet
	for _, day := range orderDays(entries) {
		var dayEntries []OccupancyEntry
		for _, e := range entries {
			if e.Day == day {
				dayEntries = append(dayEntries, e)
			}
		}
		if m, ok := buildDayMatrix(dayEntries, view, axis); ok {
			sheets = append(sheets, DaySheet{Day: day, Matrix: m})
		}
	}
	return sheets
}

type groupKey struct {
	day, start, subject, teacher, room string
}

type groupAccum struct {
	labels []string
	seen   map[string]struct{}
}

// groupRecords partitions records by (day, start, subject, teacher, room)
// and collapses their intake/group labels into a unique, first-seen-ordered
// newline-joined list. Entries come back in first-appearance order of their
// key, which keeps every downstream write order deterministic.
func groupRecords(records []ClassRecord) []OccupancyEntry {
	groups := make(map[groupKey]*groupAccum)
	var order []groupKey

	for _, r := range records {
		key := groupKey{r.Day, r.StartTime, r.Subject, r.Teacher, r.Room}
		acc, ok := groups[key]
		if !ok {
			acc = &groupAccum{seen: make(map[string]struct{})}
			groups[key] = acc
			order = append(order, key)
		}
		if _, dup := acc.seen[r.IntakeGroup]; !dup {
			acc.seen[r.IntakeGroup] = struct{}{}
			acc.labels = append(acc.labels, r.IntakeGroup)
		}
	}

	entries := make([]OccupancyEntry, 0, len(order))
	for _, key := range order {
		entries = append(entries, OccupancyEntry{
			Day:          key.day,
			StartTime:    key.start,
			Subject:      key.subject,
			Teacher:      key.teacher,
			Room:         key.room,
			IntakeGroups: strings.Join(groups[key].labels, "\n"),
		})
	}
	return entries
}

// orderDays returns the distinct day labels sorted by weekday rank, ties
// (including all unrecognized labels) in encounter order.
func orderDays(entries []OccupancyEntry) []string {
	seen := make(map[string]struct{})
	var days []string
	for _, e := range entries {
		if _, ok := seen[e.Day]; ok {
			continue
		}
		seen[e.Day] = struct{}{}
		days = append(days, e.Day)
	}
	sort.SliceStable(days, func(i, j int) bool {
		return rankOfDay(days[i]) < rankOfDay(days[j])
	})
	return days
}

func primaryValue(e OccupancyEntry, view View) string {
	if view == ViewTeacher {
		return e.Teacher
	}
	return e.Room
}

// displayText composes the cell text for an entry: room view shows
// teacher/subject/groups, teacher view shows room/subject/groups.
func displayText(e OccupancyEntry, view View) string {
	if view == ViewTeacher {
		return strings.Join([]string{e.Room, e.Subject, e.IntakeGroups}, "\n")
	}
	return strings.Join([]string{e.Teacher, e.Subject, e.IntakeGroups}, "\n")
}

// buildDayMatrix fills one day's grid. Returns ok=false when filtering
// leaves no valid entity rows, in which case the day is skipped entirely.
func buildDayMatrix(entries []OccupancyEntry, view View, axis Axis) (DayMatrix, bool) {
	rowIndex := make(map[string]int)
	var primaries []string
	for _, e := range entries {
		pv := primaryValue(e, view)
		if excludedPrimary(pv) {
			continue
		}
		if _, ok := rowIndex[pv]; !ok {
			rowIndex[pv] = 0
			primaries = append(primaries, pv)
		}
	}
	if len(primaries) == 0 {
		return DayMatrix{}, false
	}
	sort.Strings(primaries)
	for i, p := range primaries {
		rowIndex[p] = i
	}

	// Per-cell accumulators, folded to text once all writes are done.
	cells := make([][][]string, len(primaries))
	for i := range cells {
		cells[i] = make([][]string, axis.Len())
	}

	for _, e := range entries {
		pv := primaryValue(e, view)
		ri, ok := rowIndex[pv]
		if !ok {
			continue
		}
		ci, ok := axis.Index(e.StartTime)
		if !ok {
			continue // off-axis start time, never placed
		}
		text := displayText(e, view)
		cells[ri][ci] = append(cells[ri][ci], text)
		if ci+1 < axis.Len() {
			cells[ri][ci+1] = append(cells[ri][ci+1], text)
		}
	}

	rows := make([]MatrixRow, len(primaries))
	for i, p := range primaries {
		row := MatrixRow{Entity: p, Cells: make([]string, axis.Len())}
		for j, contributions := range cells[i] {
			row.Cells[j] = strings.Join(contributions, CellSeparator)
		}
		rows[i] = row
	}

	return DayMatrix{
		Primary: view.Primary(),
		Slots:   axis.Slots(),
		Rows:    rows,
	}, true
}
