package schema

// Custom string types for type safety.
type (
	// Conference represents one side of the league's two-way partition.
	Conference string

	// OutputMode represents the format of the output.
	OutputMode string

	// StatCategory represents a player leaderboard category.
	StatCategory string

	// DatabaseBackend represents the database backend for result storage.
	DatabaseBackend string

	// InputFormat represents the on-disk format of a season dataset.
	InputFormat string
)

// All conferences supported.
const (
	EastConference Conference = "east"
	WestConference Conference = "west"
	AllConferences Conference = "all" // both tables, east first
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All leaderboard categories supported.
const (
	PointsCategory   StatCategory = "points" // default
	AssistsCategory  StatCategory = "assists"
	ReboundsCategory StatCategory = "rebounds"
	ThreesCategory   StatCategory = "threes"
	StealsCategory   StatCategory = "steals"
)

// All store backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// All dataset input formats supported. AutoFormat resolves by file extension.
const (
	AutoFormat    InputFormat = "auto" // default
	CSVFormat     InputFormat = "csv"
	ParquetFormat InputFormat = "parquet"
	SQLiteFormat  InputFormat = "sqlite"
)

// AllStatCategories returns a list of all supported leaderboard categories.
var AllStatCategories = []StatCategory{PointsCategory, AssistsCategory, ReboundsCategory, ThreesCategory, StealsCategory}

// ValidConferences lists all valid conference selectors.
var ValidConferences = map[Conference]struct{}{
	EastConference: {},
	WestConference: {},
	AllConferences: {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:  {},
	TextOut: {},
	JSONOut: {},
}

// ValidStatCategories lists all valid leaderboard categories.
var ValidStatCategories = map[StatCategory]struct{}{
	PointsCategory:   {},
	AssistsCategory:  {},
	ReboundsCategory: {},
	ThreesCategory:   {},
	StealsCategory:   {},
}

// ValidDatabaseBackends lists all valid store backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// ValidInputFormats lists all valid dataset input formats.
var ValidInputFormats = map[InputFormat]struct{}{
	AutoFormat:    {},
	CSVFormat:     {},
	ParquetFormat: {},
	SQLiteFormat:  {},
}

// RequiredColumns lists the dataset columns every source must provide.
// team_id is optional and only used for logo URL construction.
var RequiredColumns = []string{"team", "conference", "wins", "losses", "ppg", "oppg"}
