//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestInitializeRestConfig_Defaults(t *testing.T) {
	cfg, err := InitializeRestConfig("")
	require.NoError(t, err)

	require.Equal(t, "8000", cfg.Port)
	require.Equal(t, EnvDevelopment, cfg.Environment)
	require.Equal(t, SqliteDbType, cfg.Database.Type)
	require.Equal(t, LogTypeConsole, cfg.Logger.LogType)
	require.Equal(t, "Ranchi", cfg.Weather.DefaultLocation)
	require.Equal(t, 15*time.Minute, cfg.Weather.FreshnessTTL)
	require.False(t, cfg.LLM.Enabled())
}

func TestInitializeRestConfig_FromFile(t *testing.T) {
	content := `
port: "9090"
environment: production
database:
  type: postgres
  dsn: "host=localhost user=cropgpt password=secret sslmode=disable"
  name: cropgpt
logger:
  log_level: warning
  log_type: console
llm:
  base_url: "http://localhost:8080/v1"
  model: cropgpt-llama2-7b
`
	path := filepath.Join(t.TempDir(), "rest-app.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := InitializeRestConfig(path)
	require.NoError(t, err)

	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, EnvProduction, cfg.Environment)
	require.Equal(t, PostgresDbType, cfg.Database.Type)
	require.Equal(t, "cropgpt", cfg.Database.Name)
	require.Equal(t, LogLevelWarning, cfg.Logger.LogLevel)
	require.True(t, cfg.LLM.Enabled())
}

func TestInitializeRestConfig_InvalidEnvironment(t *testing.T) {
	content := `
environment: staging
`
	path := filepath.Join(t.TempDir(), "rest-app.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	_, err := InitializeRestConfig(path)
	require.Error(t, err)
}

func TestInitializeRestConfig_MissingFile(t *testing.T) {
	_, err := InitializeRestConfig("/nonexistent/rest-app.yaml")
	require.Error(t, err)
}

func TestDatabaseSettings_Validate(t *testing.T) {
	tests := []struct {
		name      string
		settings  DatabaseSettings
		shouldErr bool
	}{
		{"Valid sqlite", DatabaseSettings{Type: SqliteDbType, DSN: ":memory:"}, false},
		{"Sqlite without dsn", DatabaseSettings{Type: SqliteDbType}, false},
		{"Valid postgres", DatabaseSettings{Type: PostgresDbType, DSN: "host=localhost"}, false},
		{"Postgres without dsn", DatabaseSettings{Type: PostgresDbType}, true},
		{"Unknown type", DatabaseSettings{Type: "oracle", DSN: "x"}, true},
		{"Empty type", DatabaseSettings{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.shouldErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestLoggerSettings_Validate(t *testing.T) {
	tests := []struct {
		name      string
		settings  LoggerSettings
		shouldErr bool
	}{
		{"Valid console", LoggerSettings{LogLevel: LogLevelInfo, LogType: LogTypeConsole}, false},
		{"Valid file", LoggerSettings{LogLevel: LogLevelDebug, LogType: LogTypeFile, FilePath: "app.log", MaxSize: 10, MaxBackups: 3, MaxAge: 30}, false},
		{"File without path", LoggerSettings{LogLevel: LogLevelInfo, LogType: LogTypeFile}, true},
		{"File with bad max size", LoggerSettings{LogLevel: LogLevelInfo, LogType: LogTypeFile, FilePath: "app.log", MaxSize: 0, MaxBackups: 3, MaxAge: 30}, true},
		{"Unknown level", LoggerSettings{LogLevel: "verbose", LogType: LogTypeConsole}, true},
		{"Unknown type", LoggerSettings{LogLevel: LogLevelInfo, LogType: "syslog"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.shouldErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
