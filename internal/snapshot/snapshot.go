// Package snapshot reads the model snapshot exported from the host
// modeling application: a JSON document carrying project attributes, wall
// bounding volumes, level markers, spatial zones, and optionally one or
// more embedded schedule reports.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/teflaherty67/DataQuery/internal/model"
)

// Snapshot is a read-only view of one exported model.
type Snapshot struct {
	Attrs     model.ProjectAttributes `json:"attributes"`
	Walls     []model.LinearExtent    `json:"walls"`
	Levels    []model.LevelMarker     `json:"levels"`
	Rooms     []model.SpatialZone     `json:"rooms"`
	Schedules []model.ScheduleTable   `json:"schedules"`

	// override, when set, is returned by Schedule regardless of the
	// embedded schedules (an xlsx export takes precedence).
	override *model.ScheduleTable
}

// Load reads and parses a snapshot file. A missing or malformed file is a
// fatal precondition failure for the run.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model snapshot %s: %w", path, err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse model snapshot %s: %w", path, err)
	}

	return &snap, nil
}

// Attributes returns the project-level string attributes.
func (s *Snapshot) Attributes() model.ProjectAttributes {
	return s.Attrs
}

// WallExtents returns the bounding volumes of all wall-like elements.
func (s *Snapshot) WallExtents() []model.LinearExtent {
	return s.Walls
}

// LevelMarkers returns the model's level markers.
func (s *Snapshot) LevelMarkers() []model.LevelMarker {
	return s.Levels
}

// SpatialZones returns the model's rooms.
func (s *Snapshot) SpatialZones() []model.SpatialZone {
	return s.Rooms
}

// Schedule looks up an embedded schedule report by name (case-insensitive).
// A nil return means the report is not present in the model, which resolves
// downstream to zero areas rather than an error.
func (s *Snapshot) Schedule(reportName string) *model.ScheduleTable {
	if s.override != nil {
		return s.override
	}
	for i := range s.Schedules {
		if strings.EqualFold(strings.TrimSpace(s.Schedules[i].Name), strings.TrimSpace(reportName)) {
			return &s.Schedules[i]
		}
	}
	return nil
}

// AttachSchedule installs an externally-loaded schedule table (typically an
// xlsx export) that takes precedence over the snapshot's embedded reports.
func (s *Snapshot) AttachSchedule(table *model.ScheduleTable) {
	s.override = table
}
