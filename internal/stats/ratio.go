package stats

import (
	"gopkg.in/guregu/null.v3"
)

// YellowCardRatio derives yellow cards per match played. The division is
// undefined when matches played is null or zero, or when the card count is
// null; those cases yield 0 rather than an error.
func YellowCardRatio(yellows, matches null.Int) float64 {
	if !yellows.Valid || !matches.Valid || matches.Int64 == 0 {
		return 0
	}
	return float64(yellows.Int64) / float64(matches.Int64)
}
