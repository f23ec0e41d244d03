package storage

import (
	"context"
	"errors"
	"schedule_poll_bot/internal/poll"
)

// ErrCorrupted is returned by Load when the stored record cannot be decoded.
var ErrCorrupted = errors.New("stored poll record is corrupted")

// Store persists the single poll record and its archival snapshots.
type Store interface {
	// Save overwrites the stored record.
	Save(ctx context.Context, record *poll.Record) error
	// Load returns nil and no error when nothing has been stored.
	Load(ctx context.Context) (*poll.Record, error)
	// Snapshot archives the stored record and prunes archives past retention.
	Snapshot(ctx context.Context) error
	Close() error
}
