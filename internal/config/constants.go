package config

// Default paths for the converter
const (
	// DefaultDatabasePath is the default path for the local journal database
	DefaultDatabasePath = "./daylio-journal.db"

	// DefaultDateFormat is the Go layout Daylio uses for the full_date column
	DefaultDateFormat = "2006-01-02"

	// DefaultActivityDelimiter separates activities inside one CSV cell
	DefaultActivityDelimiter = "|"
)
