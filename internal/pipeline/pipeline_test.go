package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/teflaherty67/DataQuery/internal/model"
	"github.com/teflaherty67/DataQuery/internal/remote"
)

// MockModelSource is a mock implementation of ModelSource
type MockModelSource struct {
	mock.Mock
}

func (m *MockModelSource) Attributes() model.ProjectAttributes {
	args := m.Called()
	return args.Get(0).(model.ProjectAttributes)
}

func (m *MockModelSource) WallExtents() []model.LinearExtent {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.LinearExtent)
}

func (m *MockModelSource) LevelMarkers() []model.LevelMarker {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.LevelMarker)
}

func (m *MockModelSource) SpatialZones() []model.SpatialZone {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.SpatialZone)
}

func (m *MockModelSource) Schedule(reportName string) *model.ScheduleTable {
	args := m.Called(reportName)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*model.ScheduleTable)
}

// MockRecordStore is a mock implementation of RecordStore
type MockRecordStore struct {
	mock.Mock
}

func (m *MockRecordStore) Upsert(ctx context.Context, rec *model.PlanRecord) (remote.SyncResult, error) {
	args := m.Called(ctx, rec)
	return args.Get(0).(remote.SyncResult), args.Error(1)
}

func setupSource() *MockModelSource {
	source := new(MockModelSource)
	source.On("Attributes").Return(model.ProjectAttributes{
		PlanName:      "Plan A",
		SpecLevel:     "Elite",
		Client:        "Acme Homes",
		Division:      "Central",
		Subdivision:   "North",
		GarageLoading: "Front",
	})
	source.On("WallExtents").Return([]model.LinearExtent{
		{Min: model.Point3{X: 0, Y: 0}, Max: model.Point3{X: 42.5, Y: 30}},
	})
	source.On("LevelMarkers").Return([]model.LevelMarker{
		{Name: "Level 1"},
		{Name: "Second Floor"},
		{Name: "Roof"},
	})
	source.On("SpatialZones").Return([]model.SpatialZone{
		{Name: "Bedroom 1", Area: 150},
		{Name: "Bedroom 2", Area: 140},
		{Name: "Full Bath", Area: 60},
		{Name: "Powder Room Bath", Area: 25},
		{Name: "Garage - Two Car", Area: 420},
	})
	source.On("Schedule", "Area Schedule").Return(&model.ScheduleTable{
		Name: "Area Schedule",
		Rows: [][]string{
			{"Living", ""},
			{"", "1800 SF"},
			{"Total Covered", "2400 SF"},
		},
	})
	return source
}

func TestExtract(t *testing.T) {
	source := setupSource()
	p := New(source, nil, "Area Schedule", zap.NewNop())

	rec, err := p.Extract()

	require.NoError(t, err)
	assert.Equal(t, "Plan A", rec.PlanName)
	assert.Equal(t, `42'-6"`, rec.OverallWidth)
	assert.Equal(t, `30'-0"`, rec.OverallDepth)
	assert.Equal(t, 2, rec.Stories)
	assert.Equal(t, 2, rec.Bedrooms)
	assert.Equal(t, 1.5, rec.Bathrooms)
	assert.Equal(t, 2, rec.GarageBays)
	assert.Equal(t, 1800, rec.LivingArea)
	assert.Equal(t, 2400, rec.TotalArea)
	source.AssertExpectations(t)
}

func TestExtract_MissingScheduleYieldsZeroAreas(t *testing.T) {
	source := new(MockModelSource)
	source.On("Attributes").Return(model.ProjectAttributes{PlanName: "Plan B"})
	source.On("WallExtents").Return(nil)
	source.On("LevelMarkers").Return(nil)
	source.On("SpatialZones").Return(nil)
	source.On("Schedule", "Area Schedule").Return(nil)

	p := New(source, nil, "Area Schedule", zap.NewNop())

	rec, err := p.Extract()

	require.NoError(t, err)
	assert.Equal(t, 0, rec.LivingArea)
	assert.Equal(t, 0, rec.TotalArea)
	assert.Equal(t, `0'-0"`, rec.OverallWidth)
}

func TestExtract_BlankAttributesFail(t *testing.T) {
	source := new(MockModelSource)
	source.On("Attributes").Return(model.ProjectAttributes{})
	source.On("WallExtents").Return(nil)
	source.On("LevelMarkers").Return(nil)
	source.On("SpatialZones").Return(nil)
	source.On("Schedule", "Area Schedule").Return(nil)

	p := New(source, nil, "Area Schedule", zap.NewNop())

	rec, err := p.Extract()

	assert.Nil(t, rec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "extraction failed")
}

func TestRun_SyncsAssembledRecord(t *testing.T) {
	source := setupSource()
	store := new(MockRecordStore)
	store.On("Upsert", mock.Anything, mock.AnythingOfType("*model.PlanRecord")).
		Return(remote.SyncResult{RecordID: "rec123", Created: true}, nil)

	p := New(source, store, "Area Schedule", zap.NewNop())

	rec, err := p.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Plan A", rec.PlanName)
	store.AssertExpectations(t)
	store.AssertNumberOfCalls(t, "Upsert", 1)
}

func TestRun_AllLogLinesCarryRunID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	source := setupSource()
	store := new(MockRecordStore)
	store.On("Upsert", mock.Anything, mock.Anything).
		Return(remote.SyncResult{RecordID: "rec123", Created: true}, nil)

	p := New(source, store, "Area Schedule", zap.New(core))

	_, err := p.Run(context.Background())
	require.NoError(t, err)

	entries := logs.All()
	require.NotEmpty(t, entries)

	var runID string
	for _, entry := range entries {
		fields := entry.ContextMap()
		id, ok := fields["run_id"].(string)
		require.True(t, ok, "log line %q is missing run_id", entry.Message)
		assert.NotEmpty(t, id)
		if runID == "" {
			runID = id
		}
		assert.Equal(t, runID, id, "log line %q has a different run_id", entry.Message)
	}
}

func TestRun_SyncFailurePropagates(t *testing.T) {
	source := setupSource()
	store := new(MockRecordStore)
	store.On("Upsert", mock.Anything, mock.Anything).
		Return(remote.SyncResult{}, errors.New("remote store lookup returned 503"))

	p := New(source, store, "Area Schedule", zap.NewNop())

	rec, err := p.Run(context.Background())

	assert.Nil(t, rec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sync failed")
}

func TestRun_ExtractionFailureStopsBeforeNetwork(t *testing.T) {
	source := new(MockModelSource)
	source.On("Attributes").Return(model.ProjectAttributes{})
	source.On("WallExtents").Return(nil)
	source.On("LevelMarkers").Return(nil)
	source.On("SpatialZones").Return(nil)
	source.On("Schedule", "Area Schedule").Return(nil)

	store := new(MockRecordStore)

	p := New(source, store, "Area Schedule", zap.NewNop())

	_, err := p.Run(context.Background())

	require.Error(t, err)
	store.AssertNotCalled(t, "Upsert")
}
