package storage

import (
	"fmt"
	"go.uber.org/zap"
	"schedule_poll_bot/configs"
	"schedule_poll_bot/internal/db"
)

// Open builds the store selected by config.Driver.
func Open(config configs.Storage, dbConfig configs.DB, logger *zap.SugaredLogger) (Store, error) {
	switch config.Driver {
	case configs.StorageDriverFile:
		return NewFileStore(config.Dir, config.Retention(), logger)
	case configs.StorageDriverPostgres:
		database, err := db.StartDB(dbConfig, logger)
		if err != nil {
			return nil, fmt.Errorf("start db: %w", err)
		}
		return NewPostgresStore(database, config.Retention(), logger), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", config.Driver)
	}
}
