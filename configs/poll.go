package configs

import (
	"fmt"
	"strings"
	"time"
)

type Poll struct {
	Timezone               string        `env:"POLL_TIMEZONE" envDefault:"Asia/Tokyo"`
	ReminderInterval       time.Duration `env:"POLL_REMINDER_INTERVAL" envDefault:"6h"`
	BumpInterval           time.Duration `env:"POLL_BUMP_INTERVAL" envDefault:"3h"`
	RepostInterval         time.Duration `env:"POLL_REPOST_INTERVAL" envDefault:"24h"`
	RotationCheckInterval  time.Duration `env:"POLL_ROTATION_CHECK_INTERVAL" envDefault:"10m"`
	HealthInterval         time.Duration `env:"POLL_HEALTH_INTERVAL" envDefault:"1h"`
	RotationWeekday        string        `env:"POLL_ROTATION_WEEKDAY" envDefault:"sunday"`
	RotationStartHour      int           `env:"POLL_ROTATION_START_HOUR" envDefault:"8"`
	RotationEndHour        int           `env:"POLL_ROTATION_END_HOUR" envDefault:"11"`
	LowEngagementThreshold int           `env:"POLL_LOW_ENGAGEMENT_THRESHOLD" envDefault:"5"`
	ReminderEnabled        bool          `env:"POLL_REMINDER_ENABLED" envDefault:"true"`
	AutoBumpEnabled        bool          `env:"POLL_AUTO_BUMP_ENABLED" envDefault:"true"`
	ReactionDelay          time.Duration `env:"POLL_REACTION_DELAY" envDefault:"400ms"`
	RestoreTimeout         time.Duration `env:"POLL_RESTORE_TIMEOUT" envDefault:"2m"`
}

func (c Poll) Location() (*time.Location, error) {
	location, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", c.Timezone, err)
	}
	return location, nil
}

func (c Poll) Weekday() (time.Weekday, error) {
	for day := time.Sunday; day <= time.Saturday; day++ {
		if strings.EqualFold(day.String(), c.RotationWeekday) {
			return day, nil
		}
	}
	return time.Sunday, fmt.Errorf("unknown rotation weekday %q", c.RotationWeekday)
}
