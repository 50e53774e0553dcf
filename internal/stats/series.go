package stats

import (
	"sort"

	"seasonsite/pkg/contracts/domain"
)

// CumulativeSeries walks the season fixture by fixture and emits one point
// per match carrying running point and goal totals. Input order is not
// trusted: the scan sorts its own copy by fixture index ascending, and the
// output order is exactly that. Chart rendering depends on this ordering.
func CumulativeSeries(matches []domain.Match) []domain.SeriesPoint {
	if len(matches) == 0 {
		return nil
	}

	ordered := make([]domain.Match, len(matches))
	copy(ordered, matches)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Fixture.ValueOrZero() < ordered[j].Fixture.ValueOrZero()
	})

	series := make([]domain.SeriesPoint, 0, len(ordered))
	var points, goalsFor, goalsAgainst int

	for _, m := range ordered {
		points += m.Points()

		gf, ga := ResolveTeamGoals(m.Side, m.HomeScore, m.AwayScore)
		goalsFor += gf
		goalsAgainst += ga

		series = append(series, domain.SeriesPoint{
			Opponent:     m.Opponent,
			Result:       m.Result,
			Points:       points,
			GoalsFor:     goalsFor,
			GoalsAgainst: goalsAgainst,
		})
	}

	return series
}
