package poll

import (
	"github.com/google/uuid"
	"schedule_poll_bot/internal/gateway"
	"time"
)

// State identifies the single active poll.
type State struct {
	ID        string
	Location  string
	Message   gateway.Handle
	Options   []Option
	CreatedAt time.Time
}

func NewState(location string, monday, now time.Time) *State {
	return &State{
		ID:        uuid.NewString(),
		Location:  location,
		Options:   WeekOptions(monday),
		CreatedAt: now,
	}
}

func (s *State) HasMessage() bool {
	return s != nil && !s.Message.IsZero()
}

func (s *State) IsCurrentMessage(handle gateway.Handle) bool {
	return s.HasMessage() && s.Message.MessageID == handle.MessageID
}

func (s *State) WeekOf() time.Time {
	if s == nil || len(s.Options) == 0 {
		return time.Time{}
	}
	return s.Options[0].Date
}

type Cadence int

const (
	CadenceReminder Cadence = iota
	CadenceBump
	CadenceRepost
	CadenceRotation
	CadenceHealth
)

func (c Cadence) String() string {
	switch c {
	case CadenceReminder:
		return "reminder"
	case CadenceBump:
		return "bump"
	case CadenceRepost:
		return "repost"
	case CadenceRotation:
		return "rotation"
	case CadenceHealth:
		return "health"
	default:
		return "unknown"
	}
}

// Scheduling holds the last time each cadence fired plus the operator toggles.
type Scheduling struct {
	LastReminder    time.Time
	LastBump        time.Time
	LastRepost      time.Time
	LastRotation    time.Time
	LastHealth      time.Time
	ReminderEnabled bool
	AutoBumpEnabled bool
}

// ResetCadences marks the message-related cadences as just fired so a fresh poll is left alone.
func (s *Scheduling) ResetCadences(now time.Time) {
	s.LastReminder = now
	s.LastBump = now
	s.LastRepost = now
}
