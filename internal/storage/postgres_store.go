package storage

import (
	"context"
	"fmt"
	"github.com/go-pg/pg/v10"
	"go.uber.org/zap"
	"schedule_poll_bot/internal/db/models"
	"schedule_poll_bot/internal/db/repositories"
	"schedule_poll_bot/internal/gateway"
	"schedule_poll_bot/internal/poll"
	"time"
)

// PostgresStore keeps the record in the single poll_records row.
type PostgresStore struct {
	repository repositories.PollRecordRepository
	retention  time.Duration
	now        func() time.Time
	logger     *zap.SugaredLogger
	db         *pg.DB
}

func NewPostgresStore(db *pg.DB, retention time.Duration, logger *zap.SugaredLogger) *PostgresStore {
	store := newPostgresStore(repositories.NewPollRecordRepository(db), retention, logger)
	store.db = db
	return store
}

func newPostgresStore(repository repositories.PollRecordRepository, retention time.Duration, logger *zap.SugaredLogger) *PostgresStore {
	return &PostgresStore{
		repository: repository,
		retention:  retention,
		now:        time.Now,
		logger:     logger,
	}
}

func (s *PostgresStore) Save(ctx context.Context, record *poll.Record) error {
	if err := s.repository.Upsert(ctx, toModel(record)); err != nil {
		return fmt.Errorf("upsert poll record: %w", err)
	}
	return nil
}

func (s *PostgresStore) Load(ctx context.Context) (*poll.Record, error) {
	model, err := s.repository.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get poll record: %w", err)
	}
	if model == nil {
		return nil, nil
	}

	return fromModel(model), nil
}

func (s *PostgresStore) Snapshot(ctx context.Context) error {
	if err := s.repository.CreateSnapshot(ctx); err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}

	pruned, err := s.repository.DeleteSnapshotsBefore(ctx, s.now().Add(-s.retention))
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	if pruned > 0 {
		s.logger.Infow("pruned snapshots", "count", pruned)
	}

	return nil
}

func (s *PostgresStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func toModel(record *poll.Record) *models.PollRecord {
	return &models.PollRecord{
		ID:              models.PollRecordID,
		Version:         record.Version,
		PollID:          record.PollID,
		Location:        record.Location,
		ChannelID:       record.MessageHandle.ChannelID,
		MessageID:       record.MessageHandle.MessageID,
		Options:         record.Options,
		Votes:           record.Votes,
		CreatedAt:       record.CreatedAt,
		ReminderEnabled: record.ReminderEnabled,
		AutoBumpEnabled: record.AutoBumpEnabled,
		LastReminder:    record.LastReminder,
		LastBump:        record.LastBump,
		LastRepost:      record.LastRepost,
		LastRotation:    record.LastRotation,
		LastHealth:      record.LastHealth,
		LastSavedAt:     record.LastSavedAt,
	}
}

func fromModel(model *models.PollRecord) *poll.Record {
	return &poll.Record{
		Version:         model.Version,
		PollID:          model.PollID,
		Location:        model.Location,
		MessageHandle:   gateway.Handle{ChannelID: model.ChannelID, MessageID: model.MessageID},
		Options:         model.Options,
		Votes:           model.Votes,
		CreatedAt:       model.CreatedAt,
		ReminderEnabled: model.ReminderEnabled,
		AutoBumpEnabled: model.AutoBumpEnabled,
		LastReminder:    model.LastReminder,
		LastBump:        model.LastBump,
		LastRepost:      model.LastRepost,
		LastRotation:    model.LastRotation,
		LastHealth:      model.LastHealth,
		LastSavedAt:     model.LastSavedAt,
	}
}
