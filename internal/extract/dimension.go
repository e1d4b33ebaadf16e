package extract

import (
	"fmt"
	"math"
)

// FormatFeetInches converts a length in decimal feet into a feet and
// fractional-inches string with nearest-half-inch rounding.
// Rules for the leftover inch remainder r:
//   - r >= 0.75        -> round up to the next whole inch
//   - 0.25 <= r < 0.75 -> append a half-inch marker
//   - r < 0.25         -> drop the remainder
//
// A rounded-up inch value of 12 carries into the feet figure.
// Example outputs: `42'-6"`, `30'-0 1/2"`, `0'-0"`.
func FormatFeetInches(length float64) string {
	feet := int(math.Floor(length))
	rawInches := (length - float64(feet)) * 12.0
	inches := int(math.Floor(rawInches))
	remainder := rawInches - float64(inches)

	half := false
	switch {
	case remainder >= 0.75:
		inches++
	case remainder >= 0.25:
		half = true
	}

	if inches >= 12 {
		feet++
		inches -= 12
	}

	if half {
		return fmt.Sprintf("%d'-%d 1/2\"", feet, inches)
	}
	return fmt.Sprintf("%d'-%d\"", feet, inches)
}
