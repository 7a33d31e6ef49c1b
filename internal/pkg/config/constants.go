package config

// Log level constants
const (
	LogLevelInfo     = "info"
	LogLevelDebug    = "debug"
	LogLevelError    = "error"
	LogLevelWarning  = "warning"
	LogLevelCritical = "critical"
)

// Log type constants
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

// Database type constants
const (
	PostgresDbType = "postgres"
	SqliteDbType   = "sqlite"
)

// Environment constants
const (
	EnvDevelopment = "development"
	EnvTesting     = "testing"
	EnvProduction  = "production"
)

// Supported conversation languages
const (
	LanguageEnglish = "en"
	LanguageHindi   = "hi"
)

// DefaultLanguage is used when a request carries no language hint.
const DefaultLanguage = LanguageEnglish

// DefaultState is the state assumed when a record carries none.
const DefaultState = "Jharkhand"

// Pagination defaults
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)
