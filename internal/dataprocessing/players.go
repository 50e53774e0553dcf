package dataprocessing

import (
	"fmt"
	"log/slog"

	"seasonsite/pkg/contracts/domain"
)

// Roster column names, verbatim from the exported sheet.
const (
	ColPlayer              = "Jugador"
	ColMatches             = "Partits"
	ColGoals               = "Gols"
	ColAssists             = "Assistències"
	ColYellows             = "Grogues"
	ColReds                = "Vermelles"
	ColExpulsions          = "Expulsions"
	ColGoalsOpenPlay       = "Normal"
	ColGoalsFarPost        = "Segon Pal"
	ColGoalsPenalty        = "Penalti"
	ColGoalsPenaltyRebound = "D. Penalti"
	ColGoalsFreeKick       = "Tir Lliure (falta)"
	ColWinRate             = "Win Rate"
	ColDrawRate            = "Draw Rate"
	ColLossRate            = "Loss Rate"
	ColGoalsPerMatch       = "Gols x partit"
	ColMatchesPerGoal      = "Partits per gol"
	// The sheet carries this header with the typo; keep it as-is.
	ColAssistsPerMatch   = "Assitències x partit"
	ColCleanSheetMinutes = "Minuts sense gols (porter)"
	ColGoalsConceded     = "Gols en contra"
	ColConcededPerMatch  = "Gols x partit en contra"
	ColConcededPerMinute = "Gols x minut en contra"
)

// BuildPlayers converts a raw roster table into clean player records,
// preserving input order. Rows with no name or with a matches-played cell
// that fails coercion are dropped; everything else is kept with nulls where
// individual cells could not be typed.
func BuildPlayers(table *Table) []domain.Player {
	if table == nil {
		return nil
	}

	players := make([]domain.Player, 0, len(table.Rows))
	dropped := 0

	for _, row := range table.Rows {
		name := row.Get(ColPlayer)
		if name == "" {
			dropped++
			continue
		}

		p := domain.Player{
			Name:       name,
			Matches:    coerceInt(row.Get(ColMatches)),
			Goals:      coerceInt(row.Get(ColGoals)),
			Assists:    coerceInt(row.Get(ColAssists)),
			Yellows:    coerceInt(row.Get(ColYellows)),
			Reds:       coerceInt(row.Get(ColReds)),
			Expulsions: coerceInt(row.Get(ColExpulsions)),

			GoalsOpenPlay:       coerceInt(row.Get(ColGoalsOpenPlay)),
			GoalsFarPost:        coerceInt(row.Get(ColGoalsFarPost)),
			GoalsPenalty:        coerceInt(row.Get(ColGoalsPenalty)),
			GoalsPenaltyRebound: coerceInt(row.Get(ColGoalsPenaltyRebound)),
			GoalsFreeKick:       coerceInt(row.Get(ColGoalsFreeKick)),

			WinRate:         round2Null(coerceFloat(row.Get(ColWinRate))),
			DrawRate:        round2Null(coerceFloat(row.Get(ColDrawRate))),
			LossRate:        round2Null(coerceFloat(row.Get(ColLossRate))),
			GoalsPerMatch:   round2Null(coerceFloat(row.Get(ColGoalsPerMatch))),
			MatchesPerGoal:  round2Null(coerceFloat(row.Get(ColMatchesPerGoal))),
			AssistsPerMatch: round2Null(coerceFloat(row.Get(ColAssistsPerMatch))),

			GoalsConceded:          coerceInt(row.Get(ColGoalsConceded)),
			GoalsConcededPerMatch:  round2Null(coerceFloat(row.Get(ColConcededPerMatch))),
			GoalsConcededPerMinute: round2Null(coerceFloat(row.Get(ColConcededPerMinute))),
		}

		// Clean-sheet minutes comes out of the sheet as a comma-decimal float
		// and must never be null downstream: zero-fill, then truncate.
		if minutes := coerceFloat(row.Get(ColCleanSheetMinutes)); minutes.Valid {
			p.CleanSheetMinutes = int64(minutes.Float64)
		}

		// Validity filter runs after coercion: a garbage matches-played cell
		// invalidates the whole row.
		if !p.Matches.Valid {
			dropped++
			continue
		}

		players = append(players, p)
	}

	if dropped > 0 {
		slog.Info("dropped invalid roster rows", slog.Int("count", dropped))
	}

	return players
}

// LoadPlayers reads and cleans the roster table at path. A total read
// failure is returned to the caller to log; it is not fatal to the pipeline,
// which proceeds with an empty roster.
func LoadPlayers(path string) ([]domain.Player, error) {
	table, err := ReadTable(path)
	if err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}
	players := BuildPlayers(table)
	slog.Info("roster loaded", slog.String("path", path), slog.Int("players", len(players)))
	return players, nil
}
