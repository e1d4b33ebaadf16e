package extract

import (
	"strings"

	"github.com/teflaherty67/DataQuery/internal/model"
)

// RoomTally is the aggregate room classification for a model.
type RoomTally struct {
	Bedrooms   int
	Bathrooms  float64 // full baths count 1.0, half/powder baths 0.5
	GarageBays int
}

// Classification keyword tables. Each category is evaluated independently
// per zone, so a single zone may contribute to more than one tally
// ("Bedroom/Bath" counts toward both).
var (
	bedroomKeywords  = []string{"bedroom", "bed"}
	halfBathKeywords = []string{"powder", "half"}

	// garageBayWords are checked in priority order; the first match wins
	// and bay counts do not stack.
	garageBayWords = []struct {
		Word string
		Bays int
	}{
		{"three", 3},
		{"two", 2},
		{"one", 1},
	}
)

// ClassifyRooms tallies bedrooms, bathrooms, and garage bays from the
// model's spatial zones. Zero-area zones are unplaced placeholders and are
// skipped regardless of name.
func ClassifyRooms(zones []model.SpatialZone) RoomTally {
	var tally RoomTally
	fullBaths := 0
	halfBaths := 0

	for _, zone := range zones {
		if zone.Area <= 0 {
			continue
		}
		name := strings.ToLower(zone.Name)

		if containsAny(name, bedroomKeywords) {
			tally.Bedrooms++
		}

		if strings.Contains(name, "bath") {
			if containsAny(name, halfBathKeywords) {
				halfBaths++
			} else {
				fullBaths++
			}
		}

		if strings.Contains(name, "garage") {
			for _, rule := range garageBayWords {
				if strings.Contains(name, rule.Word) {
					tally.GarageBays += rule.Bays
					break
				}
			}
		}
	}

	tally.Bathrooms = float64(fullBaths) + 0.5*float64(halfBaths)
	return tally
}

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}
