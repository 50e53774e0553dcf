package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rosterTable(rows ...Row) *Table {
	return &Table{
		Columns: []string{
			ColPlayer, ColMatches, ColGoals, ColAssists, ColYellows, ColReds,
			ColWinRate, ColGoalsPerMatch, ColAssistsPerMatch, ColCleanSheetMinutes,
			ColGoalsConceded, ColConcededPerMatch, ColConcededPerMinute,
		},
		Rows: rows,
	}
}

func TestBuildPlayers(t *testing.T) {
	t.Run("typed fields and rounding", func(t *testing.T) {
		players := BuildPlayers(rosterTable(Row{
			ColPlayer:          "GARCIA PUIG, MARC",
			ColMatches:         "10",
			ColGoals:           "7",
			ColAssists:         "3",
			ColYellows:         "2",
			ColWinRate:         "0,666666",
			ColGoalsPerMatch:   "0,7",
			ColAssistsPerMatch: "0.333333",
		}))

		require.Len(t, players, 1)
		p := players[0]
		assert.Equal(t, "GARCIA PUIG, MARC", p.Name)
		assert.Equal(t, int64(10), p.Matches.Int64)
		assert.Equal(t, int64(7), p.Goals.Int64)
		assert.Equal(t, 0.67, p.WinRate.Float64, "float columns are rounded to 2 decimals on load")
		assert.Equal(t, 0.7, p.GoalsPerMatch.Float64)
		assert.Equal(t, 0.33, p.AssistsPerMatch.Float64)
		assert.False(t, p.Reds.Valid, "missing cells stay null")
	})

	t.Run("division error token becomes null", func(t *testing.T) {
		players := BuildPlayers(rosterTable(Row{
			ColPlayer:        "SOLER VILA, JAN",
			ColMatches:       "4",
			ColGoals:         "#DIV/0!",
			ColGoalsPerMatch: "#DIV/0!",
		}))

		require.Len(t, players, 1)
		assert.False(t, players[0].Goals.Valid)
		assert.False(t, players[0].GoalsPerMatch.Valid)
	})

	t.Run("clean sheet minutes is zero-filled, never null", func(t *testing.T) {
		players := BuildPlayers(rosterTable(
			Row{ColPlayer: "SANCHEZ LAYA, PAU", ColMatches: "8", ColCleanSheetMinutes: "120,0"},
			Row{ColPlayer: "GISBERT PEREZ, ORIOL", ColMatches: "5"},
			Row{ColPlayer: "RAS JIMENEZ, BLAI", ColMatches: "3", ColCleanSheetMinutes: "#DIV/0!"},
		))

		require.Len(t, players, 3)
		assert.Equal(t, int64(120), players[0].CleanSheetMinutes)
		assert.Equal(t, int64(0), players[1].CleanSheetMinutes)
		assert.Equal(t, int64(0), players[2].CleanSheetMinutes)
	})

	t.Run("goals conceded stays an integer count", func(t *testing.T) {
		players := BuildPlayers(rosterTable(
			Row{ColPlayer: "SANCHEZ LAYA, PAU", ColMatches: "8", ColGoalsConceded: "11", ColConcededPerMatch: "1,375"},
			Row{ColPlayer: "GISBERT PEREZ, ORIOL", ColMatches: "5", ColGoalsConceded: "#DIV/0!"},
			Row{ColPlayer: "MARTI FONT, ROC", ColMatches: "6"},
		))

		require.Len(t, players, 3)
		assert.Equal(t, int64(11), players[0].GoalsConceded.Int64)
		assert.Equal(t, 1.38, players[0].GoalsConcededPerMatch.Float64)
		assert.False(t, players[1].GoalsConceded.Valid)
		assert.False(t, players[2].GoalsConceded.Valid)
	})

	t.Run("rows without a valid matches cell are dropped after coercion", func(t *testing.T) {
		players := BuildPlayers(rosterTable(
			Row{ColPlayer: "KEPT", ColMatches: "1"},
			Row{ColPlayer: "NO MATCHES CELL"},
			Row{ColPlayer: "GARBAGE MATCHES", ColMatches: "??"},
			Row{ColPlayer: "", ColMatches: "9"},
		))

		require.Len(t, players, 1)
		assert.Equal(t, "KEPT", players[0].Name)
	})

	t.Run("input order is preserved", func(t *testing.T) {
		players := BuildPlayers(rosterTable(
			Row{ColPlayer: "B", ColMatches: "1"},
			Row{ColPlayer: "A", ColMatches: "2"},
			Row{ColPlayer: "C", ColMatches: "3"},
		))

		require.Len(t, players, 3)
		assert.Equal(t, "B", players[0].Name)
		assert.Equal(t, "A", players[1].Name)
		assert.Equal(t, "C", players[2].Name)
	})

	t.Run("nil and empty tables", func(t *testing.T) {
		assert.Empty(t, BuildPlayers(nil))
		assert.Empty(t, BuildPlayers(rosterTable()))
	})
}
