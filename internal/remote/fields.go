package remote

import "github.com/teflaherty67/DataQuery/internal/model"

// recordFields maps a PlanRecord onto the remote store's column names.
func recordFields(rec *model.PlanRecord) map[string]any {
	return map[string]any{
		"Plan Name":          rec.PlanName,
		"Spec Level":         rec.SpecLevel,
		"Client Name":        rec.Client,
		"Client Division":    rec.Division,
		"Client Subdivision": rec.Subdivision,
		"Overall Width":      rec.OverallWidth,
		"Overall Depth":      rec.OverallDepth,
		"Stories":            rec.Stories,
		"Bedrooms":           rec.Bedrooms,
		"Bathrooms":          rec.Bathrooms,
		"Garage Bays":        rec.GarageBays,
		"Garage Loading":     rec.GarageLoading,
		"Living Area":        rec.LivingArea,
		"Total Area":         rec.TotalArea,
	}
}
