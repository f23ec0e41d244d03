package lifecycle

import (
	"context"
	"errors"
	"github.com/looplab/fsm"
	"go.uber.org/zap"
)

const (
	StateNoActivePoll = "no_active_poll"
	StatePollOpen     = "poll_open"
	// StatePollClosing only exists while a repost or rotation tears the old message down.
	StatePollClosing = "poll_closing"

	eventStart      = "start"
	eventBeginClose = "begin_close"
	eventReopen     = "reopen"
	eventShutdown   = "shutdown"
)

type machine struct {
	fsm *fsm.FSM
}

func newMachine(logger *zap.SugaredLogger) *machine {
	return &machine{
		fsm: fsm.NewFSM(
			StateNoActivePoll,
			fsm.Events{
				{Name: eventStart, Src: []string{StateNoActivePoll}, Dst: StatePollOpen},
				{Name: eventBeginClose, Src: []string{StatePollOpen}, Dst: StatePollClosing},
				{Name: eventReopen, Src: []string{StatePollClosing}, Dst: StatePollOpen},
				{Name: eventShutdown, Src: []string{StateNoActivePoll, StatePollOpen, StatePollClosing}, Dst: StateNoActivePoll},
			},
			fsm.Callbacks{
				"enter_state": func(_ context.Context, e *fsm.Event) {
					logger.Debugw("poll state changed", "event", e.Event, "from", e.Src, "to", e.Dst)
				},
			},
		),
	}
}

// fire applies event. Transitions are in-memory bookkeeping, so they never observe a caller's cancellation.
func (m *machine) fire(event string) error {
	err := m.fsm.Event(context.Background(), event)

	var noTransition fsm.NoTransitionError
	if errors.As(err, &noTransition) {
		return nil
	}
	return err
}

func (m *machine) restoreOpen() {
	m.fsm.SetState(StatePollOpen)
}

func (m *machine) current() string {
	return m.fsm.Current()
}

func (m *machine) is(state string) bool {
	return m.fsm.Is(state)
}
