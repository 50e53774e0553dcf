// Package renderer turns the computed season records into static HTML pages.
// It consumes only plain data from the stats and dataprocessing layers and
// writes into the staged output directory.
package renderer

import (
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"

	"seasonsite/internal/config"
	"seasonsite/internal/slug"
	"seasonsite/pkg/contracts/domain"
)

// recentMatchCount is how many fixtures the summary page lists, newest first.
const recentMatchCount = 5

// playerPageWorkers bounds the parallel player page renders.
const playerPageWorkers = 4

// ImageFinder locates a player portrait by slug. Implemented by the files
// manager; a separate interface keeps the renderer off the filesystem layout.
type ImageFinder interface {
	FindPlayerImage(playerSlug string) (string, bool)
}

// Input is everything the rendering step consumes, handed over as plain data
// by the pipeline.
type Input struct {
	Team        string
	Players     []domain.Player
	Matches     []domain.Match
	Stats       domain.SeasonStats
	Series      []domain.SeriesPoint
	Leaderboard []domain.LeaderboardEntry
}

// PlayerView decorates a player record with the linking attributes the
// templates need: slug, page URL and portrait path.
type PlayerView struct {
	domain.Player
	Slug         string
	URL          string
	ImagePath    string
	IsGoalkeeper bool
}

// EntryView decorates a leaderboard entry with the link to the player page.
type EntryView struct {
	domain.LeaderboardEntry
	URL string
}

// Renderer renders the site pages from embedded templates.
type Renderer struct {
	tpl         *template.Template
	paths       *config.Paths
	images      ImageFinder
	goalkeepers func(name string) bool
}

// New parses the embedded templates and returns a renderer. isGoalkeeper
// comes from configuration; goalkeeper status is never inferred from data.
func New(paths *config.Paths, images ImageFinder, isGoalkeeper func(name string) bool) (*Renderer, error) {
	funcs := template.FuncMap{
		"mulf": func(a, b float64) float64 { return a * b },
	}
	tpl, err := template.New("site").Funcs(funcs).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{
		tpl:         tpl,
		paths:       paths,
		images:      images,
		goalkeepers: isGoalkeeper,
	}, nil
}

// Render writes every site page: summary, players directory, match log,
// charts, and one detail page per player. Player pages render concurrently;
// each page is independent.
func (r *Renderer) Render(ctx context.Context, in Input) error {
	players := r.playerViews(in.Players)

	goalkeepers := make([]PlayerView, 0)
	for _, p := range players {
		if p.IsGoalkeeper {
			goalkeepers = append(goalkeepers, p)
		}
	}

	board := make([]EntryView, 0, len(in.Leaderboard))
	for _, e := range in.Leaderboard {
		board = append(board, EntryView{
			LeaderboardEntry: e,
			URL:              playerURL(slug.Make(e.Name)),
		})
	}

	chartJSON, err := chartPayload(in.Series)
	if err != nil {
		return err
	}

	pages := []struct {
		file string
		tpl  string
		data any
	}{
		{"index.html", "index.html", map[string]any{
			"Team":        in.Team,
			"Stats":       in.Stats,
			"Recent":      recentMatches(in.Matches),
			"Leaderboard": board,
		}},
		{"players.html", "players.html", map[string]any{
			"Team":        in.Team,
			"Players":     players,
			"Goalkeepers": goalkeepers,
		}},
		{"weeks.html", "weeks.html", map[string]any{
			"Team":    in.Team,
			"Matches": in.Matches,
		}},
		{"charts.html", "charts.html", map[string]any{
			"Team":      in.Team,
			"ChartData": chartJSON,
		}},
	}

	for _, page := range pages {
		if err := r.renderPage(page.file, page.tpl, page.data); err != nil {
			return err
		}
	}

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(playerPageWorkers)
	for _, p := range players {
		g.Go(func() error {
			return r.renderPage(p.URL, "player_detail.html", map[string]any{"Player": p})
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	slog.Info("site rendered",
		slog.Int("pages", len(pages)+len(players)),
		slog.Int("players", len(players)))
	return nil
}

func (r *Renderer) playerViews(players []domain.Player) []PlayerView {
	views := make([]PlayerView, 0, len(players))
	for _, p := range players {
		s := slug.Make(p.Name)
		view := PlayerView{
			Player:       p,
			Slug:         s,
			URL:          playerURL(s),
			IsGoalkeeper: r.goalkeepers(p.Name),
		}
		if img, ok := r.images.FindPlayerImage(s); ok {
			view.ImagePath = img
		}
		views = append(views, view)
	}
	return views
}

func (r *Renderer) renderPage(filename, templateName string, data any) error {
	file, err := os.Create(r.paths.OutputPath(filename))
	if err != nil {
		return fmt.Errorf("create page %s: %w", filename, err)
	}
	defer file.Close()

	if err := r.tpl.ExecuteTemplate(file, templateName, data); err != nil {
		return fmt.Errorf("render page %s: %w", filename, err)
	}
	return nil
}

// recentMatches returns up to the last recentMatchCount fixtures of the
// match log in reverse input order (most recent first).
func recentMatches(matches []domain.Match) []domain.Match {
	if len(matches) == 0 {
		return nil
	}
	start := len(matches) - recentMatchCount
	if start < 0 {
		start = 0
	}
	tail := matches[start:]
	recent := make([]domain.Match, len(tail))
	for i, m := range tail {
		recent[len(tail)-1-i] = m
	}
	return recent
}

// chartPayload marshals the cumulative series into the shape the chart
// script expects: parallel arrays aligned by fixture order.
func chartPayload(series []domain.SeriesPoint) (template.JS, error) {
	payload := struct {
		Labels       []string `json:"labels"`
		Results      []string `json:"results"`
		Points       []int    `json:"points"`
		GoalsFor     []int    `json:"goals_for"`
		GoalsAgainst []int    `json:"goals_against"`
	}{
		Labels:       make([]string, 0, len(series)),
		Results:      make([]string, 0, len(series)),
		Points:       make([]int, 0, len(series)),
		GoalsFor:     make([]int, 0, len(series)),
		GoalsAgainst: make([]int, 0, len(series)),
	}
	for _, pt := range series {
		payload.Labels = append(payload.Labels, pt.Opponent)
		payload.Results = append(payload.Results, string(pt.Result))
		payload.Points = append(payload.Points, pt.Points)
		payload.GoalsFor = append(payload.GoalsFor, pt.GoalsFor)
		payload.GoalsAgainst = append(payload.GoalsAgainst, pt.GoalsAgainst)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal chart data: %w", err)
	}
	return template.JS(data), nil
}

func playerURL(playerSlug string) string {
	return "player_" + playerSlug + ".html"
}
