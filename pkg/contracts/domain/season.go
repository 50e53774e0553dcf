package domain

// SeasonStats holds the season-level aggregate produced by a single pass over
// the clean match set. An empty match set yields the zero value.
type SeasonStats struct {
	Played       int `json:"played"`
	Wins         int `json:"wins"`
	Draws        int `json:"draws"`
	Losses       int `json:"losses"`
	GoalsFor     int `json:"goals_for"`
	GoalsAgainst int `json:"goals_against"`
}

// SeriesPoint is one element of the cumulative season series, ordered by
// fixture index ascending. Points, GoalsFor and GoalsAgainst are running
// totals and are monotonically non-decreasing across the series.
type SeriesPoint struct {
	Opponent     string `json:"opponent"`
	Result       Result `json:"result"`
	Points       int    `json:"points"`
	GoalsFor     int    `json:"goals_for"`
	GoalsAgainst int    `json:"goals_against"`
}
