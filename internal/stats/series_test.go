package stats

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seasonsite/pkg/contracts/domain"
)

func TestCumulativeSeries(t *testing.T) {
	t.Run("sorts by fixture before scanning", func(t *testing.T) {
		// Fixture 2 arrives first: away 1-3 win. Fixture 1: home 1-1 draw.
		matches := []domain.Match{
			match(2, domain.SideAway, domain.ResultWin, 1, 3),
			match(1, domain.SideHome, domain.ResultDraw, 1, 1),
		}

		series := CumulativeSeries(matches)
		require.Len(t, series, 2)
		assert.Equal(t, []int{1, 4}, []int{series[0].Points, series[1].Points})
		assert.Equal(t, []int{1, 4}, []int{series[0].GoalsFor, series[1].GoalsFor})
		assert.Equal(t, []int{1, 2}, []int{series[0].GoalsAgainst, series[1].GoalsAgainst})
	})

	t.Run("carries opponent and result labels", func(t *testing.T) {
		m := match(1, domain.SideHome, domain.ResultLoss, 0, 2)
		m.Opponent = "FC Martinenc"

		series := CumulativeSeries([]domain.Match{m})
		require.Len(t, series, 1)
		assert.Equal(t, "FC Martinenc", series[0].Opponent)
		assert.Equal(t, domain.ResultLoss, series[0].Result)
		assert.Equal(t, 0, series[0].Points)
	})

	t.Run("empty input yields empty series", func(t *testing.T) {
		assert.Empty(t, CumulativeSeries(nil))
	})

	t.Run("does not mutate the input slice", func(t *testing.T) {
		matches := []domain.Match{
			match(2, domain.SideHome, domain.ResultWin, 1, 0),
			match(1, domain.SideHome, domain.ResultWin, 2, 0),
		}

		CumulativeSeries(matches)
		assert.Equal(t, int64(2), matches[0].Fixture.Int64, "caller's ordering is preserved")
	})
}

// Running totals must be monotonically non-decreasing and consistent with the
// season aggregate for any input order.
func TestCumulativeSeriesProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	sides := []domain.Side{domain.SideHome, domain.SideAway}
	results := []domain.Result{domain.ResultWin, domain.ResultDraw, domain.ResultLoss}

	for trial := 0; trial < 50; trial++ {
		n := 1 + rng.Intn(25)
		matches := make([]domain.Match, n)
		for i := range matches {
			matches[i] = match(
				int64(i+1),
				sides[rng.Intn(len(sides))],
				results[rng.Intn(len(results))],
				int64(rng.Intn(6)),
				int64(rng.Intn(6)),
			)
		}
		rng.Shuffle(n, func(i, j int) { matches[i], matches[j] = matches[j], matches[i] })

		series := CumulativeSeries(matches)
		require.Len(t, series, n, "one point per clean match")

		for i := 1; i < len(series); i++ {
			assert.GreaterOrEqual(t, series[i].Points, series[i-1].Points)
			assert.GreaterOrEqual(t, series[i].GoalsFor, series[i-1].GoalsFor)
			assert.GreaterOrEqual(t, series[i].GoalsAgainst, series[i-1].GoalsAgainst)
		}

		season := Season(matches)
		last := series[len(series)-1]
		assert.Equal(t, season.GoalsFor, last.GoalsFor)
		assert.Equal(t, season.GoalsAgainst, last.GoalsAgainst)
		assert.Equal(t, season.Wins*3+season.Draws, last.Points)
	}
}
