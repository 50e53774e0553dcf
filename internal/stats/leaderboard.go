package stats

import (
	"fmt"
	"strconv"

	"seasonsite/pkg/contracts/domain"
)

// Leaderboard metric labels as shown on the season summary page.
const (
	LabelTopScorer       = "Màxim Golejador"
	LabelGoalsPerMatch   = "Gols / Partit"
	LabelTopAssistant    = "Màxim Assistent"
	LabelAssistsPerMatch = "Ass. / Partit"
	LabelBestKeeper      = "Millor Porter (Minuts imbatut)"
	LabelBestWinRate     = "Major % Victòria"
	LabelYellowRatio     = "Major % Grogues/Partit"
	LabelMostReds        = "Més Targetes Vermelles"
)

// metric is one leaderboard slot: an eligibility-aware value extractor plus
// a display formatter. A player with ok=false is excluded from the slot
// entirely, not treated as zero.
type metric struct {
	label  string
	value  func(domain.Player) (float64, bool)
	format func(float64) string
}

// Leaderboard selects at most one entry per metric, in fixed priority order.
// Selection is maximum-value-wins; ties go to the player that appears first
// in the roster input order, which keeps the output deterministic for equal
// maxima. A metric with no eligible player is skipped, so the result holds
// between zero and eight entries.
func Leaderboard(players []domain.Player) []domain.LeaderboardEntry {
	metrics := []metric{
		{
			label:  LabelTopScorer,
			value:  func(p domain.Player) (float64, bool) { return float64(p.Goals.Int64), p.Goals.Valid },
			format: formatCount,
		},
		{
			label:  LabelGoalsPerMatch,
			value:  func(p domain.Player) (float64, bool) { return p.GoalsPerMatch.Float64, p.GoalsPerMatch.Valid },
			format: formatRate,
		},
		{
			label:  LabelTopAssistant,
			value:  func(p domain.Player) (float64, bool) { return float64(p.Assists.Int64), p.Assists.Valid },
			format: formatCount,
		},
		{
			label:  LabelAssistsPerMatch,
			value:  func(p domain.Player) (float64, bool) { return p.AssistsPerMatch.Float64, p.AssistsPerMatch.Valid },
			format: formatRate,
		},
		{
			label:  LabelBestKeeper,
			value:  func(p domain.Player) (float64, bool) { return float64(p.CleanSheetMinutes), true },
			format: func(v float64) string { return formatCount(v) + "'" },
		},
		{
			label:  LabelBestWinRate,
			value:  func(p domain.Player) (float64, bool) { return p.WinRate.Float64, p.WinRate.Valid },
			format: func(v float64) string { return fmt.Sprintf("%.2f%%", v*100) },
		},
		{
			// The ratio derivation folds undefined divisions to 0, and a true
			// zero is excluded here as well: it is a valid value, just not a
			// noteworthy one.
			label: LabelYellowRatio,
			value: func(p domain.Player) (float64, bool) {
				r := YellowCardRatio(p.Yellows, p.Matches)
				return r, r > 0
			},
			format: func(v float64) string { return fmt.Sprintf("%.2f", v) },
		},
		{
			label: LabelMostReds,
			value: func(p domain.Player) (float64, bool) {
				return float64(p.Reds.Int64), p.Reds.Valid && p.Reds.Int64 > 0
			},
			format: formatCount,
		},
	}

	board := make([]domain.LeaderboardEntry, 0, len(metrics))
	for _, m := range metrics {
		if entry, ok := selectTop(players, m); ok {
			board = append(board, entry)
		}
	}
	return board
}

// selectTop scans the roster once, keeping the first player holding the
// maximum eligible value.
func selectTop(players []domain.Player, m metric) (domain.LeaderboardEntry, bool) {
	var (
		best  domain.Player
		bestV float64
		found bool
	)
	for _, p := range players {
		v, ok := m.value(p)
		if !ok {
			continue
		}
		if !found || v > bestV {
			best, bestV, found = p, v, true
		}
	}
	if !found {
		return domain.LeaderboardEntry{}, false
	}
	return domain.LeaderboardEntry{
		Name:  best.Name,
		Value: m.format(bestV),
		Label: m.label,
	}, true
}

// formatCount renders an integral metric value without decimals.
func formatCount(v float64) string {
	return strconv.FormatInt(int64(v), 10)
}

// formatRate renders an already-rounded rate the way the sheet shows it,
// without trailing zeros (0.5, 0.75).
func formatRate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
