package poll

import "time"

// Policy answers whether a cadence should fire. Every method is a pure function of its arguments.
type Policy struct {
	ReminderInterval       time.Duration
	BumpInterval           time.Duration
	RepostInterval         time.Duration
	HealthInterval         time.Duration
	RotationWeekday        time.Weekday
	RotationStartHour      int
	RotationEndHour        int
	LowEngagementThreshold int
	Location               *time.Location
}

func (p Policy) ShouldRemind(now time.Time, scheduling Scheduling, state *State, participants int) bool {
	return state != nil &&
		scheduling.ReminderEnabled &&
		participants < p.LowEngagementThreshold &&
		elapsed(now, scheduling.LastReminder, p.ReminderInterval)
}

func (p Policy) ShouldBump(now time.Time, scheduling Scheduling, state *State) bool {
	return state.HasMessage() &&
		scheduling.AutoBumpEnabled &&
		elapsed(now, scheduling.LastBump, p.BumpInterval)
}

// ShouldRepost holds off on the rotation day unless the poll has no message to show.
func (p Policy) ShouldRepost(now time.Time, scheduling Scheduling, state *State) bool {
	return state != nil &&
		(!state.HasMessage() || !p.IsRotationDay(now)) &&
		elapsed(now, scheduling.LastRepost, p.RepostInterval)
}

func (p Policy) ShouldRotate(now time.Time, scheduling Scheduling, state *State) bool {
	if state == nil || !p.IsRotationDay(now) {
		return false
	}

	local := p.local(now)
	if local.Hour() < p.RotationStartHour || local.Hour() >= p.RotationEndHour {
		return false
	}

	return p.local(scheduling.LastRotation).Before(startOfDay(local))
}

func (p Policy) ShouldSnapshot(now time.Time, scheduling Scheduling) bool {
	return elapsed(now, scheduling.LastHealth, p.HealthInterval)
}

func (p Policy) IsRotationDay(now time.Time) bool {
	return p.local(now).Weekday() == p.RotationWeekday
}

func (p Policy) local(t time.Time) time.Time {
	if p.Location == nil {
		return t
	}
	return t.In(p.Location)
}

// cadenceSlack lets a tick that lands slightly early still count as a full interval.
// It never exceeds a tenth of the interval.
const cadenceSlack = time.Minute

func elapsed(now, last time.Time, interval time.Duration) bool {
	if last.IsZero() {
		return true
	}

	slack := cadenceSlack
	if slack > interval/10 {
		slack = interval / 10
	}
	return now.Sub(last) >= interval-slack
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
