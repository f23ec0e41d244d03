package configs

import "time"

const (
	StorageDriverFile     = "file"
	StorageDriverPostgres = "postgres"
)

type Storage struct {
	Driver        string `env:"STORAGE_DRIVER" envDefault:"file"`
	Dir           string `env:"STORAGE_DIR" envDefault:"data"`
	RetentionDays int    `env:"SNAPSHOT_RETENTION_DAYS" envDefault:"7"`
}

func (c Storage) Retention() time.Duration {
	return time.Duration(c.RetentionDays) * 24 * time.Hour
}
