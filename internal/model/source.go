package model

import "strings"

// Point3 is a point in model coordinates (decimal feet).
type Point3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// LinearExtent is the axis-aligned bounding volume of a wall-like element.
// The union of all extents in a model yields the footprint envelope.
type LinearExtent struct {
	Min Point3 `json:"min"`
	Max Point3 `json:"max"`
}

// LevelMarker is a named floor reference in the model.
type LevelMarker struct {
	Name string `json:"name"`
}

// SpatialZone is a named, area-bearing enclosed region (a room).
// Zones with zero area are unplaced placeholders.
type SpatialZone struct {
	Name string  `json:"name"`
	Area float64 `json:"area"` // square feet
}

// ProjectAttributes are the directly-read project-level string attributes.
type ProjectAttributes struct {
	PlanName      string `json:"planName"`
	SpecLevel     string `json:"specLevel"`
	Client        string `json:"client"`
	Division      string `json:"division"`
	Subdivision   string `json:"subdivision"`
	GarageLoading string `json:"garageLoading"`
}

// ScheduleTable is a rectangular grid report. The first column of each row
// holds a label (a category name, a sub-floor label, or blank for a
// continuation row); the last column holds area text such as "1800 SF".
type ScheduleTable struct {
	Name string     `json:"name"`
	Rows [][]string `json:"rows"`
}

// Label returns the trimmed first-column label of row i, or "" when the
// row has no cells.
func (t *ScheduleTable) Label(i int) string {
	if i < 0 || i >= len(t.Rows) || len(t.Rows[i]) == 0 {
		return ""
	}
	return strings.TrimSpace(t.Rows[i][0])
}

// AreaText returns the trimmed last-column cell of row i, or "" when the
// row has no cells.
func (t *ScheduleTable) AreaText(i int) string {
	if i < 0 || i >= len(t.Rows) || len(t.Rows[i]) == 0 {
		return ""
	}
	return strings.TrimSpace(t.Rows[i][len(t.Rows[i])-1])
}
