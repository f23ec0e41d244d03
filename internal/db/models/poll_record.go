package models

import (
	"encoding/json"
	"schedule_poll_bot/internal/poll"
	"time"
)

// PollRecordID is the primary key of the only poll_records row.
const PollRecordID = 1

type PollRecord struct {
	tableName struct{} `pg:"poll_records"`

	ID              int              `json:"id" pg:",pk"`
	Version         int              `json:"version" pg:",notnull,use_zero"`
	PollID          string           `json:"poll_id"`
	Location        string           `json:"location"`
	ChannelID       string           `json:"channel_id"`
	MessageID       string           `json:"message_id"`
	Options         []poll.Option    `json:"options" pg:"type:jsonb"`
	Votes           map[string][]int `json:"votes" pg:"type:jsonb"`
	CreatedAt       time.Time        `json:"created_at"`
	ReminderEnabled bool             `json:"reminder_enabled" pg:",notnull,use_zero"`
	AutoBumpEnabled bool             `json:"auto_bump_enabled" pg:",notnull,use_zero"`
	LastReminder    time.Time        `json:"last_reminder"`
	LastBump        time.Time        `json:"last_bump"`
	LastRepost      time.Time        `json:"last_repost"`
	LastRotation    time.Time        `json:"last_rotation"`
	LastHealth      time.Time        `json:"last_health"`
	LastSavedAt     time.Time        `json:"last_saved_at"`
}

type PollSnapshot struct {
	tableName struct{} `pg:"poll_snapshots"`

	ID        int64           `json:"id" pg:",pk"`
	Record    json.RawMessage `json:"record" pg:"type:jsonb,notnull"`
	CreatedAt time.Time       `json:"created_at" pg:"default:now()"`
}
