package snapshot

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/teflaherty67/DataQuery/internal/model"
)

// LoadWorkbookSchedule reads an area-schedule workbook (xlsx) and converts
// the sheet whose name matches reportName (case-insensitive) into a
// ScheduleTable. A workbook without a matching sheet returns (nil, nil):
// the report is simply absent, which downstream resolves to zero areas.
// An unreadable workbook is a fatal precondition failure, because the file
// was explicitly configured.
func LoadWorkbookSchedule(path, reportName string) (*model.ScheduleTable, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open schedule workbook %s: %w", path, err)
	}
	defer f.Close()

	sheetName := ""
	for _, name := range f.GetSheetList() {
		if strings.EqualFold(strings.TrimSpace(name), strings.TrimSpace(reportName)) {
			sheetName = name
			break
		}
	}
	if sheetName == "" {
		return nil, nil
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheetName, err)
	}

	return &model.ScheduleTable{
		Name: sheetName,
		Rows: padRows(rows),
	}, nil
}

// padRows normalizes the ragged rows returned by GetRows, which trims
// trailing empty cells. A header row whose area cell is blank would
// otherwise come back as a single cell, and the last-column area lookup
// would read the row label instead of an empty area cell. Every row is
// padded to the sheet's widest row, and at least to two columns (label and
// area).
func padRows(rows [][]string) [][]string {
	maxCols := 2
	for _, row := range rows {
		if len(row) > maxCols {
			maxCols = len(row)
		}
	}
	for i, row := range rows {
		if len(row) < maxCols {
			padded := make([]string, maxCols)
			copy(padded, row)
			rows[i] = padded
		}
	}
	return rows
}
