package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"seasonsite/internal/config"
	"seasonsite/internal/dataprocessing"
	"seasonsite/internal/exporter"
	"seasonsite/internal/files"
	"seasonsite/internal/infrastructure"
	"seasonsite/internal/renderer"
	"seasonsite/internal/stats"
)

func main() {
	configFile := flag.String("config", "seasonsite.yml", "optional YAML config file")
	baseDir := flag.String("base", ".", "base directory for inputs, assets and output")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	_, closeLog, err := infrastructure.InitLogger(cfg.Logging)
	if err != nil {
		slog.Error("failed to initialize logger", "error", err)
		os.Exit(1)
	}
	defer closeLog()

	if err := run(context.Background(), cfg, *baseDir); err != nil {
		slog.Error("build failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, baseDir string) error {
	buildID := uuid.NewString()
	started := time.Now()
	logger := slog.Default().With(slog.String("build_id", buildID))

	logger.Info("starting site build", slog.String("team", cfg.Team.Name))

	paths := config.NewPaths(baseDir, cfg)

	// Load both tables. A table that cannot be read at all is reported and
	// replaced by an empty record set; every downstream stage copes with
	// empty inputs, so one broken export never kills the whole build.
	players, err := dataprocessing.LoadPlayers(paths.PlayersPath(cfg.Inputs.PlayersFile))
	if err != nil {
		logger.Warn("roster unavailable, continuing with empty set", "error", err)
		players = nil
	}
	matches, err := dataprocessing.LoadMatches(paths.MatchesPath(cfg.Inputs.MatchesFile))
	if err != nil {
		logger.Warn("match log unavailable, continuing with empty set", "error", err)
		matches = nil
	}

	season := stats.Season(matches)
	series := stats.CumulativeSeries(matches)
	board := stats.Leaderboard(players)

	logger.Info("season computed",
		slog.Int("players", len(players)),
		slog.Int("matches", season.Played),
		slog.Int("wins", season.Wins),
		slog.Int("goals_for", season.GoalsFor),
		slog.Int("leaderboard_entries", len(board)))

	manager := files.NewManager(paths)
	if err := manager.CleanOutput(); err != nil {
		return err
	}
	if err := manager.CopyAssets(); err != nil {
		return err
	}

	r, err := renderer.New(paths, manager, cfg.IsGoalkeeper)
	if err != nil {
		return err
	}
	if err := r.Render(ctx, renderer.Input{
		Team:        cfg.Team.Name,
		Players:     players,
		Matches:     matches,
		Stats:       season,
		Series:      series,
		Leaderboard: board,
	}); err != nil {
		return err
	}

	csvWriter := exporter.NewCSVWriter(paths)
	if err := csvWriter.WritePlayers(players); err != nil {
		return err
	}
	if err := csvWriter.WriteMatches(matches); err != nil {
		return err
	}
	if err := csvWriter.WriteSeries(series); err != nil {
		return err
	}
	if err := exporter.WriteSeasonJSON(paths, exporter.SeasonSnapshot{
		Team:        cfg.Team.Name,
		BuildID:     buildID,
		GeneratedAt: time.Now().UTC(),
		Stats:       season,
		Leaderboard: board,
		Series:      series,
	}); err != nil {
		return err
	}

	logger.Info("site build complete",
		slog.String("output", paths.OutputDir),
		slog.Duration("elapsed", time.Since(started)))
	return nil
}
