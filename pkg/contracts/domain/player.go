package domain

import (
	"gopkg.in/guregu/null.v3"
)

// Player represents one cleaned roster row. Counter and rate fields keep their
// nullability from the source table: a null means the cell was empty, carried
// the division-error token, or failed coercion. Matches is the validity
// discriminator; the loader never emits a Player with a null Matches.
type Player struct {
	Name       string   `json:"name" validate:"required"`
	Matches    null.Int `json:"matches"`
	Goals      null.Int `json:"goals"`
	Assists    null.Int `json:"assists"`
	Yellows    null.Int `json:"yellows"`
	Reds       null.Int `json:"reds"`
	Expulsions null.Int `json:"expulsions"`

	// Goal placement breakdown.
	GoalsOpenPlay       null.Int `json:"goals_open_play"`
	GoalsFarPost        null.Int `json:"goals_far_post"`
	GoalsPenalty        null.Int `json:"goals_penalty"`
	GoalsPenaltyRebound null.Int `json:"goals_penalty_rebound"`
	GoalsFreeKick       null.Int `json:"goals_free_kick"`

	// Rates, pre-computed in the source sheet, rounded to 2 decimals by the loader.
	WinRate         null.Float `json:"win_rate"`
	DrawRate        null.Float `json:"draw_rate"`
	LossRate        null.Float `json:"loss_rate"`
	GoalsPerMatch   null.Float `json:"goals_per_match"`
	MatchesPerGoal  null.Float `json:"matches_per_goal"`
	AssistsPerMatch null.Float `json:"assists_per_match"`

	// Goalkeeper fields. CleanSheetMinutes is zero-filled on load and is the
	// one numeric field guaranteed non-null downstream.
	CleanSheetMinutes      int64      `json:"clean_sheet_minutes"`
	GoalsConceded          null.Int   `json:"goals_conceded"`
	GoalsConcededPerMatch  null.Float `json:"goals_conceded_per_match"`
	GoalsConcededPerMinute null.Float `json:"goals_conceded_per_minute"`
}
