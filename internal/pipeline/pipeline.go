// Package pipeline runs the extraction-and-sync sequence: read the model
// snapshot, derive the plan metrics, assemble the canonical record, and
// synchronize it to the remote store. Control is strictly sequential and
// synchronous; the only suspension points are the two network calls inside
// the store's upsert.
package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/teflaherty67/DataQuery/internal/extract"
	"github.com/teflaherty67/DataQuery/internal/model"
	"github.com/teflaherty67/DataQuery/internal/remote"
)

// ModelSource supplies the read-only source entities of one model
// (for test mocking).
type ModelSource interface {
	Attributes() model.ProjectAttributes
	WallExtents() []model.LinearExtent
	LevelMarkers() []model.LevelMarker
	SpatialZones() []model.SpatialZone
	Schedule(reportName string) *model.ScheduleTable
}

// RecordStore writes assembled records to the remote store
// (for test mocking).
type RecordStore interface {
	Upsert(ctx context.Context, rec *model.PlanRecord) (remote.SyncResult, error)
}

// Pipeline wires one model source to one record store.
type Pipeline struct {
	source         ModelSource
	store          RecordStore
	scheduleReport string
	logger         *zap.Logger
}

// New creates a pipeline. store may be nil for extraction-only runs.
func New(source ModelSource, store RecordStore, scheduleReport string, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		source:         source,
		store:          store,
		scheduleReport: scheduleReport,
		logger:         logger,
	}
}

// Extract derives all plan metrics from the model source and assembles the
// canonical record. Extraction shortfalls (missing schedule, zero matching
// elements, unparsable cells) resolve to zero values; the only failure is
// an unusable attribute set.
func (p *Pipeline) Extract() (*model.PlanRecord, error) {
	return p.extract(p.logger)
}

// extract is the shared extraction step; log carries the run-scoped fields
// of whichever entry point invoked it.
func (p *Pipeline) extract(log *zap.Logger) (*model.PlanRecord, error) {
	footprint := extract.MeasureFootprint(p.source.WallExtents())
	stories := extract.CountStories(p.source.LevelMarkers())
	rooms := extract.ClassifyRooms(p.source.SpatialZones())

	table := p.source.Schedule(p.scheduleReport)
	if table == nil {
		log.Warn("Area schedule not found in model, areas default to zero",
			zap.String("report", p.scheduleReport),
		)
	}
	areas := extract.ParseAreaTable(table)

	rec, err := extract.AssemblePlanRecord(p.source.Attributes(), footprint, stories, rooms, areas)
	if err != nil {
		return nil, fmt.Errorf("extraction failed: %w", err)
	}

	log.Info("Assembled plan record",
		zap.String("plan_name", rec.PlanName),
		zap.String("spec_level", rec.SpecLevel),
		zap.String("subdivision", rec.Subdivision),
		zap.String("overall_width", rec.OverallWidth),
		zap.String("overall_depth", rec.OverallDepth),
		zap.Int("stories", rec.Stories),
		zap.Int("bedrooms", rec.Bedrooms),
		zap.Float64("bathrooms", rec.Bathrooms),
		zap.Int("garage_bays", rec.GarageBays),
		zap.Int("living_area", rec.LivingArea),
		zap.Int("total_area", rec.TotalArea),
	)

	return rec, nil
}

// Run executes the full pipeline: extract, assemble, and synchronize. The
// record is consumed exactly once; the remote store holds the durable copy.
func (p *Pipeline) Run(ctx context.Context) (*model.PlanRecord, error) {
	runID := uuid.NewString()
	log := p.logger.With(zap.String("run_id", runID))

	rec, err := p.extract(log)
	if err != nil {
		return nil, err
	}

	if p.store == nil {
		return nil, fmt.Errorf("no record store configured")
	}

	result, err := p.store.Upsert(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("sync failed: %w", err)
	}

	action := "updated"
	if result.Created {
		action = "created"
	}
	log.Info("Plan record synchronized",
		zap.String("plan_name", rec.PlanName),
		zap.String("record_id", result.RecordID),
		zap.String("action", action),
	)

	return rec, nil
}
