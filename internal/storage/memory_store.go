package storage

import (
	"context"
	"schedule_poll_bot/internal/poll"
	"sync"
)

// MemoryStore keeps the record in process memory only. Snapshots are no-ops.
type MemoryStore struct {
	mu     sync.Mutex
	record *poll.Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Save(_ context.Context, record *poll.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.record = record
	return nil
}

func (s *MemoryStore) Load(context.Context) (*poll.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.record, nil
}

func (s *MemoryStore) Snapshot(context.Context) error {
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
