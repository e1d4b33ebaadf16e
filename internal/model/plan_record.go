package model

// IdentityKey is the composite natural key that identifies a plan in the
// remote store. Two records with the same key are the same plan.
type IdentityKey struct {
	PlanName    string
	SpecLevel   string
	Subdivision string
}

// PlanRecord is the canonical plan entity assembled from the model snapshot.
// It is built once per run and never mutated after assembly; the remote
// store holds the durable copy.
type PlanRecord struct {
	// Identity fields (composite natural key)
	PlanName    string `json:"plan_name"`
	SpecLevel   string `json:"spec_level"`
	Subdivision string `json:"subdivision"`

	// Descriptive fields
	Client        string `json:"client"`
	Division      string `json:"division"`
	GarageLoading string `json:"garage_loading"`

	// Derived fields
	OverallWidth string  `json:"overall_width"` // formatted feet/inches
	OverallDepth string  `json:"overall_depth"` // formatted feet/inches
	Stories      int     `json:"stories"`
	Bedrooms     int     `json:"bedrooms"`
	Bathrooms    float64 `json:"bathrooms"` // multiples of 0.5
	GarageBays   int     `json:"garage_bays"`
	LivingArea   int     `json:"living_area"` // square feet
	TotalArea    int     `json:"total_area"`  // square feet
}

// Key returns the record's identity key.
func (r *PlanRecord) Key() IdentityKey {
	return IdentityKey{
		PlanName:    r.PlanName,
		SpecLevel:   r.SpecLevel,
		Subdivision: r.Subdivision,
	}
}
