package exporter

import (
	"strconv"

	"seasonsite/pkg/contracts/domain"
)

// Export file names inside the output data directory.
const (
	PlayersCSV = "players.csv"
	MatchesCSV = "matches.csv"
	SeriesCSV  = "series.csv"
	SeasonJSON = "season.json"
)

// WritePlayers exports the clean roster in input order.
func (w *CSVWriter) WritePlayers(players []domain.Player) error {
	headers := []string{
		"name", "matches", "goals", "assists", "yellows", "reds", "expulsions",
		"win_rate", "draw_rate", "loss_rate",
		"goals_per_match", "assists_per_match",
		"clean_sheet_minutes", "goals_conceded", "goals_conceded_per_match", "goals_conceded_per_minute",
	}

	records := make([][]string, 0, len(players))
	for _, p := range players {
		records = append(records, []string{
			p.Name,
			formatNullInt(p.Matches),
			formatNullInt(p.Goals),
			formatNullInt(p.Assists),
			formatNullInt(p.Yellows),
			formatNullInt(p.Reds),
			formatNullInt(p.Expulsions),
			formatNullFloat(p.WinRate),
			formatNullFloat(p.DrawRate),
			formatNullFloat(p.LossRate),
			formatNullFloat(p.GoalsPerMatch),
			formatNullFloat(p.AssistsPerMatch),
			strconv.FormatInt(p.CleanSheetMinutes, 10),
			formatNullInt(p.GoalsConceded),
			formatNullFloat(p.GoalsConcededPerMatch),
			formatNullFloat(p.GoalsConcededPerMinute),
		})
	}

	return w.Write(PlayersCSV, headers, records)
}

// WriteMatches exports the clean match log, post-filter but otherwise in
// input order; consumers that need fixture order sort for themselves.
func (w *CSVWriter) WriteMatches(matches []domain.Match) error {
	headers := []string{"fixture", "opponent", "side", "result", "home_score", "away_score"}

	records := make([][]string, 0, len(matches))
	for _, m := range matches {
		records = append(records, []string{
			formatNullInt(m.Fixture),
			m.Opponent,
			string(m.Side),
			string(m.Result),
			formatNullInt(m.HomeScore),
			formatNullInt(m.AwayScore),
		})
	}

	return w.Write(MatchesCSV, headers, records)
}

// WriteSeries exports the cumulative series, one row per fixture in
// ascending fixture order, ready for chart tooling.
func (w *CSVWriter) WriteSeries(series []domain.SeriesPoint) error {
	headers := []string{"opponent", "result", "points", "goals_for", "goals_against"}

	records := make([][]string, 0, len(series))
	for _, pt := range series {
		records = append(records, []string{
			pt.Opponent,
			string(pt.Result),
			formatInt(pt.Points),
			formatInt(pt.GoalsFor),
			formatInt(pt.GoalsAgainst),
		})
	}

	return w.Write(SeriesCSV, headers, records)
}
