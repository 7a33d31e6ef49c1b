package commands

import (
	"fmt"

	"github.com/manavaditya8-pixel/cropGPT/internal/infrastructure/persistence"
	"github.com/manavaditya8-pixel/cropGPT/internal/pkg/config"
	"github.com/manavaditya8-pixel/cropGPT/internal/pkg/logger"

	"gorm.io/gorm"
)

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: "info",
		LogType:  "console",
		FilePath: "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// setupDatabase opens the sqlite database at dbPath and migrates the schema.
func setupDatabase(dbPath string) (*gorm.DB, error) {
	settings := config.DatabaseSettings{
		Type: config.SqliteDbType,
		DSN:  dbPath,
	}

	db, err := persistence.NewDBConnection(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	if err := persistence.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return db, nil
}
