package extract

import (
	"strconv"
	"strings"

	"github.com/teflaherty67/DataQuery/internal/model"
)

// Row labels resolved from the area schedule.
const (
	livingRowLabel = "Living"
	totalRowLabel  = "Total Covered"
)

// Areas holds the two figures read from the area-schedule table.
type Areas struct {
	Living int // square feet
	Total  int // square feet
}

// ParseAreaTable resolves the living and total-covered areas from a
// schedule table. A nil table (report not present in the model) resolves
// both figures to zero; missing rows and unparsable cells do the same.
func ParseAreaTable(table *model.ScheduleTable) Areas {
	if table == nil {
		return Areas{}
	}
	return Areas{
		Living: lookupLivingArea(table),
		Total:  lookupDirectArea(table, totalRowLabel),
	}
}

// lookupLivingArea finds the "Living" row. A populated area cell is used
// directly. When the row is a group header with a blank area cell, the real
// value lives in an indented sub-row beneath it: scan forward, skipping
// sub-floor rows (labels containing "Floor"), until the first blank-labeled
// row with a populated area cell. Any other non-blank label ends the group.
func lookupLivingArea(table *model.ScheduleTable) int {
	for i := range table.Rows {
		if !strings.EqualFold(table.Label(i), livingRowLabel) {
			continue
		}

		if text := table.AreaText(i); text != "" {
			return parseAreaCell(text)
		}

		for j := i + 1; j < len(table.Rows); j++ {
			label := table.Label(j)
			if label != "" {
				if strings.Contains(strings.ToLower(label), "floor") {
					continue
				}
				break
			}
			if text := table.AreaText(j); text != "" {
				return parseAreaCell(text)
			}
		}
		return 0
	}
	return 0
}

// lookupDirectArea returns the area cell of the row with the given label,
// without any group fallback.
func lookupDirectArea(table *model.ScheduleTable, label string) int {
	for i := range table.Rows {
		if strings.EqualFold(table.Label(i), label) {
			return parseAreaCell(table.AreaText(i))
		}
	}
	return 0
}

// parseAreaCell strips the trailing unit suffix ("SF") and parses the rest
// as an integer. Empty or unparsable text yields zero.
func parseAreaCell(text string) int {
	text = strings.TrimSpace(text)
	if upper := strings.ToUpper(text); strings.HasSuffix(upper, "SF") {
		text = strings.TrimSpace(text[:len(text)-2])
	}
	value, err := strconv.Atoi(text)
	if err != nil || value < 0 {
		return 0
	}
	return value
}
