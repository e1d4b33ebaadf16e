package extract

import (
	"strings"

	"github.com/teflaherty67/DataQuery/internal/model"
)

// storyExclusions lists name fragments that mark a level as non-habitable.
// Matching is case-insensitive substring, not whole-word.
var storyExclusions = []string{"roof", "foundation", "base", "plate"}

// CountStories counts the level markers that represent habitable stories.
func CountStories(levels []model.LevelMarker) int {
	count := 0
	for _, level := range levels {
		if !isExcludedLevel(level.Name) {
			count++
		}
	}
	return count
}

func isExcludedLevel(name string) bool {
	lower := strings.ToLower(name)
	for _, keyword := range storyExclusions {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
