package poll

import (
	"errors"
	"fmt"
	"schedule_poll_bot/internal/gateway"
	"time"
)

const RecordVersion = 1

var ErrUnsupportedVersion = errors.New("unsupported record version")

// Record is the persisted form of the active poll. Only one record exists at a time.
type Record struct {
	Version         int              `json:"version"`
	PollID          string           `json:"poll_id"`
	Location        string           `json:"location"`
	MessageHandle   gateway.Handle   `json:"message_handle"`
	Options         []Option         `json:"options"`
	Votes           map[string][]int `json:"votes"`
	CreatedAt       time.Time        `json:"created_at"`
	ReminderEnabled bool             `json:"reminder_enabled"`
	AutoBumpEnabled bool             `json:"auto_bump_enabled"`
	LastReminder    time.Time        `json:"last_reminder"`
	LastBump        time.Time        `json:"last_bump"`
	LastRepost      time.Time        `json:"last_repost"`
	LastRotation    time.Time        `json:"last_rotation"`
	LastHealth      time.Time        `json:"last_health"`
	LastSavedAt     time.Time        `json:"last_saved_at"`
}

func NewRecord(state *State, ledger *Ledger, scheduling Scheduling, savedAt time.Time) *Record {
	record := &Record{
		Version:         RecordVersion,
		Votes:           make(map[string][]int),
		ReminderEnabled: scheduling.ReminderEnabled,
		AutoBumpEnabled: scheduling.AutoBumpEnabled,
		LastReminder:    scheduling.LastReminder,
		LastBump:        scheduling.LastBump,
		LastRepost:      scheduling.LastRepost,
		LastRotation:    scheduling.LastRotation,
		LastHealth:      scheduling.LastHealth,
		LastSavedAt:     savedAt,
	}

	if state != nil {
		record.PollID = state.ID
		record.Location = state.Location
		record.MessageHandle = state.Message
		record.Options = append([]Option(nil), state.Options...)
		record.CreatedAt = state.CreatedAt
	}

	if ledger != nil {
		for _, entry := range ledger.Entries() {
			record.Votes[entry.Participant] = entry.Options
		}
	}

	return record
}

// HasPoll reports whether the record describes an active poll or only scheduling state.
func (r *Record) HasPoll() bool {
	return r != nil && r.PollID != ""
}

// Restore rebuilds the in-memory aggregate. Votes referencing unknown options are dropped.
func (r *Record) Restore() (*State, *Ledger, Scheduling, error) {
	scheduling := Scheduling{
		LastReminder:    r.LastReminder,
		LastBump:        r.LastBump,
		LastRepost:      r.LastRepost,
		LastRotation:    r.LastRotation,
		LastHealth:      r.LastHealth,
		ReminderEnabled: r.ReminderEnabled,
		AutoBumpEnabled: r.AutoBumpEnabled,
	}

	if r.Version != RecordVersion {
		return nil, nil, scheduling, fmt.Errorf("%w: %d", ErrUnsupportedVersion, r.Version)
	}

	if !r.HasPoll() {
		return nil, NewLedger(DaysPerWeek), scheduling, nil
	}

	if err := validOptions(r.Options); err != nil {
		return nil, nil, scheduling, fmt.Errorf("invalid poll options: %w", err)
	}

	state := &State{
		ID:        r.PollID,
		Location:  r.Location,
		Message:   r.MessageHandle,
		Options:   append([]Option(nil), r.Options...),
		CreatedAt: r.CreatedAt,
	}

	entries := make([]Entry, 0, len(r.Votes))
	for participant, options := range r.Votes {
		entries = append(entries, Entry{Participant: participant, Options: options})
	}

	return state, ReplayLedger(len(state.Options), entries), scheduling, nil
}
