package metrics

import "expvar"

const (
	PermissionDenied   = "permission_denied"
	NotFound           = "not_found"
	TransientFailure   = "transient_failure"
	PersistenceFailure = "persistence_failure"
)

// ReactionIgnored counts reactions that are not votes on the current poll. It is an event, not a failure.
const ReactionIgnored = "reaction_ignored"

var (
	failures = expvar.NewMap("poll_failures")
	events   = expvar.NewMap("poll_events")
)

// Failure counts one failure of the given kind.
func Failure(kind string) {
	failures.Add(kind, 1)
}

// Event counts one lifecycle event such as "repost" or "reaction_added".
func Event(name string) {
	events.Add(name, 1)
}

func FailureCount(kind string) int64 {
	return count(failures, kind)
}

func EventCount(name string) int64 {
	return count(events, name)
}

// Failures returns every failure counter keyed by kind.
func Failures() map[string]int64 {
	result := make(map[string]int64)
	failures.Do(func(kv expvar.KeyValue) {
		if v, ok := kv.Value.(*expvar.Int); ok {
			result[kv.Key] = v.Value()
		}
	})
	return result
}

func count(m *expvar.Map, key string) int64 {
	if v, ok := m.Get(key).(*expvar.Int); ok {
		return v.Value()
	}
	return 0
}
