package domain

// LeaderboardEntry is one highlighted statistic on the season summary page.
// Name doubles as the link reference back to the source player record; the
// rendering layer derives the page URL from it. Value is already formatted
// for display (suffixes and percentage conversion applied by the selector).
type LeaderboardEntry struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Label string `json:"label"`
}
