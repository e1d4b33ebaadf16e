package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/teflaherty67/DataQuery/internal/model"
)

func TestClassifyRooms(t *testing.T) {
	zones := []model.SpatialZone{
		{Name: "Bedroom 1", Area: 150},
		{Name: "Bedroom 2", Area: 140},
		{Name: "Full Bath", Area: 60},
		{Name: "Powder Room Bath", Area: 25},
		{Name: "Garage - Two Car", Area: 420},
	}

	tally := ClassifyRooms(zones)

	assert.Equal(t, 2, tally.Bedrooms)
	assert.Equal(t, 1.5, tally.Bathrooms)
	assert.Equal(t, 2, tally.GarageBays)
}

func TestClassifyRooms_ZeroAreaZonesExcluded(t *testing.T) {
	zones := []model.SpatialZone{
		{Name: "Bedroom 3", Area: 0},
		{Name: "Half Bath", Area: 0},
		{Name: "Garage - Three Car", Area: 0},
	}

	tally := ClassifyRooms(zones)

	assert.Equal(t, 0, tally.Bedrooms)
	assert.Equal(t, 0.0, tally.Bathrooms)
	assert.Equal(t, 0, tally.GarageBays)
}

func TestClassifyRooms_MultiCategoryZone(t *testing.T) {
	// A single zone may match more than one category; matching is
	// independent per category.
	zones := []model.SpatialZone{
		{Name: "Bedroom/Bath", Area: 180},
	}

	tally := ClassifyRooms(zones)

	assert.Equal(t, 1, tally.Bedrooms)
	assert.Equal(t, 1.0, tally.Bathrooms)
}

func TestClassifyRooms_GarageCardinalPriority(t *testing.T) {
	tests := []struct {
		name string
		zone string
		bays int
	}{
		{"three beats two", "Garage Three or Two Car", 3},
		{"two car", "Two Car Garage", 2},
		{"one car", "Garage - One Car", 1},
		{"no cardinal keyword", "Garage", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tally := ClassifyRooms([]model.SpatialZone{{Name: tt.zone, Area: 400}})
			assert.Equal(t, tt.bays, tally.GarageBays)
		})
	}
}

func TestClassifyRooms_BedroomNotDoubleCounted(t *testing.T) {
	// "bedroom" contains "bed"; one zone still counts once.
	tally := ClassifyRooms([]model.SpatialZone{{Name: "Master Bedroom", Area: 200}})
	assert.Equal(t, 1, tally.Bedrooms)
}
