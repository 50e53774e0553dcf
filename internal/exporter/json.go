package exporter

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"seasonsite/internal/config"
	"seasonsite/pkg/contracts/domain"
)

// SeasonSnapshot is the JSON artifact written next to the CSV exports. The
// preview server serves it on its stats endpoint.
type SeasonSnapshot struct {
	Team        string                    `json:"team"`
	BuildID     string                    `json:"build_id"`
	GeneratedAt time.Time                 `json:"generated_at"`
	Stats       domain.SeasonStats        `json:"stats"`
	Leaderboard []domain.LeaderboardEntry `json:"leaderboard"`
	Series      []domain.SeriesPoint      `json:"series"`
}

// WriteSeasonJSON writes the season snapshot into the export directory.
func WriteSeasonJSON(paths *config.Paths, snapshot SeasonSnapshot) error {
	fullPath := paths.ExportPath(SeasonJSON)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal season snapshot: %w", err)
	}
	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		return fmt.Errorf("write season snapshot: %w", err)
	}

	slog.Info("season snapshot written", slog.String("path", fullPath))
	return nil
}

// ReadSeasonJSON loads a previously written snapshot. Used by the preview
// server; a missing file surfaces as an error for the caller to report.
func ReadSeasonJSON(path string) (*SeasonSnapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read season snapshot: %w", err)
	}
	var snapshot SeasonSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("parse season snapshot: %w", err)
	}
	return &snapshot, nil
}
