package extract

import (
	"fmt"
	"strings"

	"github.com/teflaherty67/DataQuery/internal/model"
)

// AssemblePlanRecord composes the project attributes and the extracted
// metrics into one canonical PlanRecord. Pure field composition; the only
// failure mode is an unusable attribute set (blank plan name), which aborts
// the run before any network I/O.
func AssemblePlanRecord(
	attrs model.ProjectAttributes,
	footprint Footprint,
	stories int,
	rooms RoomTally,
	areas Areas,
) (*model.PlanRecord, error) {
	if strings.TrimSpace(attrs.PlanName) == "" {
		return nil, fmt.Errorf("project attributes are unusable: plan name is blank")
	}

	return &model.PlanRecord{
		PlanName:      attrs.PlanName,
		SpecLevel:     attrs.SpecLevel,
		Subdivision:   attrs.Subdivision,
		Client:        attrs.Client,
		Division:      attrs.Division,
		GarageLoading: attrs.GarageLoading,
		OverallWidth:  FormatFeetInches(footprint.Width),
		OverallDepth:  FormatFeetInches(footprint.Depth),
		Stories:       stories,
		Bedrooms:      rooms.Bedrooms,
		Bathrooms:     rooms.Bathrooms,
		GarageBays:    rooms.GarageBays,
		LivingArea:    areas.Living,
		TotalArea:     areas.Total,
	}, nil
}
