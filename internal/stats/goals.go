package stats

import (
	"gopkg.in/guregu/null.v3"

	"seasonsite/pkg/contracts/domain"
)

// ResolveTeamGoals maps a fixture's home/away scores onto (goals for, goals
// against) from the team's perspective using the side indicator. Null scores
// count as zero. An unrecognized side is a defined no-op contributing (0, 0);
// it is not an error.
func ResolveTeamGoals(side domain.Side, home, away null.Int) (goalsFor, goalsAgainst int) {
	h := int(home.ValueOrZero())
	a := int(away.ValueOrZero())

	switch side {
	case domain.SideHome:
		return h, a
	case domain.SideAway:
		return a, h
	default:
		return 0, 0
	}
}
