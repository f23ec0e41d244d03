package repositories

import (
	"context"
	"errors"
	"github.com/go-pg/pg/v10"
	"schedule_poll_bot/internal/db/models"
	"time"
)

type pollRecordRepository struct {
	repository
}

type PollRecordRepository interface {
	Upsert(ctx context.Context, record *models.PollRecord) error
	Get(ctx context.Context) (*models.PollRecord, error)
	CreateSnapshot(ctx context.Context) error
	DeleteSnapshotsBefore(ctx context.Context, before time.Time) (int, error)
}

func NewPollRecordRepository(db *pg.DB) PollRecordRepository {
	return &pollRecordRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *pollRecordRepository) Upsert(ctx context.Context, record *models.PollRecord) error {
	record.ID = models.PollRecordID

	_, err := r.db.ModelContext(ctx, record).
		OnConflict("(id) DO UPDATE").
		Insert()

	return err
}

// Get returns nil without error when no record has been saved yet.
func (r *pollRecordRepository) Get(ctx context.Context) (*models.PollRecord, error) {
	record := &models.PollRecord{}

	err := r.db.ModelContext(ctx, record).
		Where("id = ?", models.PollRecordID).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	}

	return record, err
}

func (r *pollRecordRepository) CreateSnapshot(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO poll_snapshots (record, created_at)
SELECT to_jsonb(r), now() FROM poll_records r WHERE r.id = ?`,
		models.PollRecordID,
	)

	return err
}

func (r *pollRecordRepository) DeleteSnapshotsBefore(ctx context.Context, before time.Time) (int, error) {
	result, err := r.db.ModelContext(ctx, (*models.PollSnapshot)(nil)).
		Where("created_at < ?", before).
		Delete()
	if err != nil {
		return 0, err
	}

	return result.RowsAffected(), nil
}
