package extract

import (
	"math"

	"github.com/teflaherty67/DataQuery/internal/model"
)

// Footprint is the overall envelope of the plan, measured in decimal feet.
// Width is the X span, Depth the Y span.
type Footprint struct {
	Width float64
	Depth float64
}

// MeasureFootprint unions the bounding volumes of all wall-like elements
// into one envelope. An empty element set yields zero spans.
func MeasureFootprint(walls []model.LinearExtent) Footprint {
	if len(walls) == 0 {
		return Footprint{}
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)

	for _, wall := range walls {
		minX = math.Min(minX, wall.Min.X)
		minY = math.Min(minY, wall.Min.Y)
		maxX = math.Max(maxX, wall.Max.X)
		maxY = math.Max(maxY, wall.Max.Y)
	}

	return Footprint{
		Width: maxX - minX,
		Depth: maxY - minY,
	}
}
