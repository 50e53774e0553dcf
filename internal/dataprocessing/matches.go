package dataprocessing

import (
	"fmt"
	"log/slog"

	"seasonsite/pkg/contracts/domain"
)

// Match log column names, verbatim from the exported sheet.
const (
	ColFixture   = "Jornada"
	ColOpponent  = "vs."
	ColSide      = "Posició"
	ColResult    = "Resultat"
	ColHomeScore = "Marcador Local"
	ColAwayScore = "Marcador Visitant"
)

// BuildMatches converts a raw match log table into clean match records,
// preserving input order. The fixture index is the validity discriminator;
// null scores survive the filter and count as zero later.
func BuildMatches(table *Table) []domain.Match {
	if table == nil {
		return nil
	}

	matches := make([]domain.Match, 0, len(table.Rows))
	dropped := 0

	for _, row := range table.Rows {
		m := domain.Match{
			Fixture:   coerceInt(row.Get(ColFixture)),
			Opponent:  row.Get(ColOpponent),
			Side:      domain.Side(row.Get(ColSide)),
			Result:    domain.Result(row.Get(ColResult)),
			HomeScore: coerceInt(row.Get(ColHomeScore)),
			AwayScore: coerceInt(row.Get(ColAwayScore)),
		}

		if !m.Fixture.Valid {
			dropped++
			continue
		}

		matches = append(matches, m)
	}

	if dropped > 0 {
		slog.Info("dropped invalid match rows", slog.Int("count", dropped))
	}

	return matches
}

// LoadMatches reads and cleans the match log table at path. Like LoadPlayers,
// a total read failure surfaces to the caller and the pipeline continues with
// an empty match set.
func LoadMatches(path string) ([]domain.Match, error) {
	table, err := ReadTable(path)
	if err != nil {
		return nil, fmt.Errorf("load match log: %w", err)
	}
	matches := BuildMatches(table)
	slog.Info("match log loaded", slog.String("path", path), slog.Int("matches", len(matches)))
	return matches, nil
}
