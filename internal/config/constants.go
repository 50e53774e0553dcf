package config

// Application defaults for the season site builder.
const (
	AppName = "seasonsite"

	// Input files as exported from the club's sheet.
	DefaultPlayersFile = "LaMasia 25_26 - Jugadors.csv"
	DefaultMatchesFile = "Còpia de LaMasia 25_26 - Jornades.csv"

	// Directory layout.
	DefaultDataDir   = "data"
	DefaultOutputDir = "docs"
	DefaultAssetsDir = "assets"

	// Subdirectory of the assets tree holding player portraits, keyed by slug.
	PlayerImagesDir = "players"

	// Subdirectory of the output tree receiving CSV/JSON exports.
	ExportsDir = "data"
)

// DefaultGoalkeepers is the fallback goalkeeper identity list. Goalkeeper
// status is configuration, not something inferred from the table.
var DefaultGoalkeepers = []string{
	"SANCHEZ LAYA, PAU",
	"GISBERT PEREZ, ORIOL",
	"RAS JIMENEZ, BLAI",
}
