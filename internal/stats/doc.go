// Package stats contains the pure aggregation layer of the site build: the
// season totals pass, the cumulative series scan and the leaderboard
// selection. Every function here is side-effect free and operates on the
// immutable record sets produced by dataprocessing.
package stats
