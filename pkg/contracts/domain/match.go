package domain

import (
	"gopkg.in/guregu/null.v3"
)

// Side indicates where the team played a fixture. The values mirror the
// source sheet verbatim; anything else is treated as unknown and contributes
// nothing to goal totals.
type Side string

const (
	SideHome Side = "Local"
	SideAway Side = "Visitant"
)

// Result is the fixture outcome from the team's perspective.
type Result string

const (
	ResultWin  Result = "Victòria"
	ResultDraw Result = "Empat"
	ResultLoss Result = "Derrota"
)

// Match represents one cleaned fixture row. Fixture is the validity
// discriminator; the loader never emits a Match with a null Fixture. Null
// scores are legal and count as zero in every aggregation.
type Match struct {
	Fixture   null.Int `json:"fixture"`
	Opponent  string   `json:"opponent"`
	Side      Side     `json:"side"`
	Result    Result   `json:"result"`
	HomeScore null.Int `json:"home_score"`
	AwayScore null.Int `json:"away_score"`
}

// Points returns the league points awarded for the match result: 3 for a win,
// 1 for a draw, 0 for anything else.
func (m Match) Points() int {
	switch m.Result {
	case ResultWin:
		return 3
	case ResultDraw:
		return 1
	default:
		return 0
	}
}
