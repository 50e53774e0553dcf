package stats

import (
	"seasonsite/pkg/contracts/domain"
)

// Season produces the season aggregate in a single pass over the clean match
// set. The input is consumed read-only and in any order.
func Season(matches []domain.Match) domain.SeasonStats {
	s := domain.SeasonStats{Played: len(matches)}

	for _, m := range matches {
		switch m.Result {
		case domain.ResultWin:
			s.Wins++
		case domain.ResultDraw:
			s.Draws++
		case domain.ResultLoss:
			s.Losses++
		}

		gf, ga := ResolveTeamGoals(m.Side, m.HomeScore, m.AwayScore)
		s.GoalsFor += gf
		s.GoalsAgainst += ga
	}

	return s
}
