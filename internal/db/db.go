package db

import (
	"context"
	"fmt"
	"github.com/go-pg/migrations/v8"
	"github.com/go-pg/pg/v10"
	"go.uber.org/zap"
	"schedule_poll_bot/configs"
)

type queryLogger struct {
	logger *zap.SugaredLogger
}

func (l queryLogger) BeforeQuery(c context.Context, q *pg.QueryEvent) (context.Context, error) {
	query, err := q.FormattedQuery()
	if err != nil {
		return c, nil
	}

	l.logger.Debugw("executing query", "query", string(query))
	return c, nil
}

func (l queryLogger) AfterQuery(c context.Context, q *pg.QueryEvent) error {
	if q.Err != nil {
		l.logger.Warnw("query failed", "error", q.Err)
	}
	return nil
}

// StartDB connects to Postgres and applies the SQL migrations found in config.MigrationsDir.
func StartDB(config configs.DB, logger *zap.SugaredLogger) (*pg.DB, error) {
	options, err := pg.ParseURL(config.URL)
	if err != nil {
		return nil, fmt.Errorf("parse db url: %w", err)
	}

	db := pg.Connect(options)
	db.AddQueryHook(queryLogger{logger})

	if err := db.Ping(context.Background()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	if err := migrate(db, config.MigrationsDir, logger); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

func migrate(db *pg.DB, dir string, logger *zap.SugaredLogger) error {
	collection := migrations.NewCollection()

	if err := collection.DiscoverSQLMigrations(dir); err != nil {
		return fmt.Errorf("discover migrations: %w", err)
	}
	logger.Infow("migrations discovered", "dir", dir)

	if _, _, err := collection.Run(db, "init"); err != nil {
		return fmt.Errorf("init migrations: %w", err)
	}

	oldVersion, newVersion, err := collection.Run(db, "up")
	if err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	if newVersion != oldVersion {
		logger.Infow("migrated", "from", oldVersion, "to", newVersion)
	} else {
		logger.Infow("schema up to date", "version", oldVersion)
	}

	return nil
}
