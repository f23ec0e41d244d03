package storage

import (
	"context"
	"errors"
	"fmt"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
	"io/fs"
	"os"
	"path/filepath"
	"schedule_poll_bot/internal/poll"
	"strings"
	"time"
)

const (
	stateFileName    = "poll_state.json"
	backupDirName    = "backups"
	backupPrefix     = "poll_state_"
	backupSuffix     = ".json"
	backupTimeLayout = "20060102_150405"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// FileStore keeps the record as a JSON file, replaced atomically on every save.
type FileStore struct {
	dir       string
	retention time.Duration
	now       func() time.Time
	logger    *zap.SugaredLogger
}

func NewFileStore(dir string, retention time.Duration, logger *zap.SugaredLogger) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Join(dir, backupDirName), 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}

	return &FileStore{
		dir:       dir,
		retention: retention,
		now:       time.Now,
		logger:    logger,
	}, nil
}

func (s *FileStore) Save(ctx context.Context, record *poll.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("encode poll record: %w", err)
	}

	return writeAtomic(s.statePath(), data)
}

func (s *FileStore) Load(ctx context.Context) (*poll.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.statePath())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read poll record: %w", err)
	}

	record := &poll.Record{}
	if err := json.Unmarshal(data, record); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupted, err)
	}

	return record, nil
}

func (s *FileStore) Snapshot(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	now := s.now()

	data, err := os.ReadFile(s.statePath())
	switch {
	case errors.Is(err, fs.ErrNotExist):
		s.logger.Debugw("nothing to snapshot", "path", s.statePath())
	case err != nil:
		return fmt.Errorf("read poll record: %w", err)
	default:
		name := backupPrefix + now.Format(backupTimeLayout) + backupSuffix
		if err := writeAtomic(filepath.Join(s.backupDir(), name), data); err != nil {
			return fmt.Errorf("write snapshot: %w", err)
		}
	}

	pruned, err := s.prune(now.Add(-s.retention))
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	if pruned > 0 {
		s.logger.Infow("pruned snapshots", "count", pruned)
	}

	return nil
}

func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) prune(before time.Time) (int, error) {
	entries, err := os.ReadDir(s.backupDir())
	if err != nil {
		return 0, err
	}

	pruned := 0
	for _, entry := range entries {
		takenAt, ok := snapshotTime(entry.Name(), before.Location())
		if !ok || !takenAt.Before(before) {
			continue
		}

		if err := os.Remove(filepath.Join(s.backupDir(), entry.Name())); err != nil {
			s.logger.Warnw("failed to remove snapshot", "name", entry.Name(), "error", err)
			continue
		}
		pruned++
	}

	return pruned, nil
}

func (s *FileStore) statePath() string {
	return filepath.Join(s.dir, stateFileName)
}

func (s *FileStore) backupDir() string {
	return filepath.Join(s.dir, backupDirName)
}

func snapshotTime(name string, loc *time.Location) (time.Time, bool) {
	if !strings.HasPrefix(name, backupPrefix) || !strings.HasSuffix(name, backupSuffix) {
		return time.Time{}, false
	}

	stamp := strings.TrimSuffix(strings.TrimPrefix(name, backupPrefix), backupSuffix)
	takenAt, err := time.ParseInLocation(backupTimeLayout, stamp, loc)
	if err != nil {
		return time.Time{}, false
	}

	return takenAt, true
}

// writeAtomic writes data next to path and renames it into place.
func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
