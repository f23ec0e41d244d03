package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"schedule_poll_bot/internal/gateway"
	mock_gateway "schedule_poll_bot/internal/gateway/mocks"
	"schedule_poll_bot/internal/metrics"
	"schedule_poll_bot/internal/poll"
	mock_storage "schedule_poll_bot/internal/storage/mocks"
	"sync"
	"testing"
	"time"
)

var (
	jst         = time.FixedZone("JST", 9*60*60)
	wednesday   = time.Date(2025, time.June, 4, 12, 0, 0, 0, jst)
	pollHandle  = gateway.Handle{ChannelID: "channel", MessageID: "poll-1"}
	pollHandle2 = gateway.Handle{ChannelID: "channel", MessageID: "poll-2"}
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type fakeNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (n *fakeNotifier) Notify(_ context.Context, text string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, text)
	return nil
}

func (n *fakeNotifier) Messages() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.messages...)
}

type symbolLog struct {
	mu      sync.Mutex
	symbols []string
}

func (l *symbolLog) add(symbol string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.symbols = append(l.symbols, symbol)
}

func (l *symbolLog) all() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.symbols...)
}

type fixture struct {
	controller *Controller
	gateway    *mock_gateway.MockGateway
	store      *mock_storage.MockStore
	clock      *clock
	notifier   *fakeNotifier

	mu        sync.Mutex
	lastSaved *poll.Record
}

func testOptions(c *clock) Options {
	return Options{
		Policy: poll.Policy{
			ReminderInterval:       6 * time.Hour,
			BumpInterval:           3 * time.Hour,
			RepostInterval:         24 * time.Hour,
			HealthInterval:         time.Hour,
			RotationWeekday:        time.Sunday,
			RotationStartHour:      8,
			RotationEndHour:        11,
			LowEngagementThreshold: 5,
			Location:               jst,
		},
		ReminderEnabled: true,
		AutoBumpEnabled: true,
		RestoreTimeout:  time.Minute,
		SelfID:          "bot",
		Now:             c.Now,
	}
}

func newFixture(t *testing.T, now time.Time, configure ...func(*Options)) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		gateway:  mock_gateway.NewMockGateway(ctrl),
		store:    mock_storage.NewMockStore(ctrl),
		clock:    &clock{now: now},
		notifier: &fakeNotifier{},
	}

	options := testOptions(f.clock)
	for _, fn := range configure {
		fn(&options)
	}

	f.store.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, record *poll.Record) error {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.lastSaved = record
		return nil
	}).AnyTimes()

	f.controller = New(f.gateway, f.store, f.notifier, zap.NewNop().Sugar(), options)
	return f
}

func (f *fixture) start(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	go f.controller.Run(ctx)

	t.Cleanup(func() {
		cancel()
		<-f.controller.done
	})
}

func (f *fixture) saved() *poll.Record {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastSaved
}

// expectPublish expects a poll message to be created, pinned and seeded with reactions.
func (f *fixture) expectPublish(handle gateway.Handle) *symbolLog {
	log := &symbolLog{}
	f.gateway.EXPECT().CreateMessage(gomock.Any(), "channel", gomock.Any()).Return(handle, nil)
	f.gateway.EXPECT().PinMessage(gomock.Any(), handle).Return(nil)
	f.gateway.EXPECT().AddReaction(gomock.Any(), handle, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ gateway.Handle, symbol string) error {
			log.add(symbol)
			return nil
		}).Times(poll.DaysPerWeek)
	return log
}

func (f *fixture) startPoll(t *testing.T) {
	f.expectPublish(pollHandle)
	require.NoError(t, f.controller.StartPoll(context.Background(), "channel"))
	awaitRestoration(t, f.controller)
}

func (f *fixture) vote(t *testing.T, added bool, participant, symbol string) {
	require.NoError(t, f.controller.HandleReaction(context.Background(), Reaction{
		Added:       added,
		Message:     pollHandle,
		Participant: participant,
		Symbol:      symbol,
	}))
}

func (f *fixture) status(t *testing.T) Status {
	status, err := f.controller.Status(context.Background())
	require.NoError(t, err)
	return status
}

func awaitRestoration(t *testing.T, c *Controller) {
	t.Helper()
	require.NoError(t, c.call(context.Background(), func(context.Context) error {
		if c.restoration != nil {
			<-c.restoration.done
		}
		return nil
	}))
}

func entries(t *testing.T, f *fixture) []poll.Entry {
	var result []poll.Entry
	require.NoError(t, f.controller.call(context.Background(), func(context.Context) error {
		result = f.controller.ledger.Entries()
		return nil
	}))
	return result
}

func TestStartPoll_PublishesCurrentWeek(t *testing.T) {
	f := newFixture(t, wednesday)
	f.start(t)

	seeded := f.expectPublish(pollHandle)
	require.NoError(t, f.controller.StartPoll(context.Background(), "channel"))
	awaitRestoration(t, f.controller)

	assert.Equal(t, poll.Symbols[:], seeded.all())

	status := f.status(t)
	assert.Equal(t, StatePollOpen, status.State)
	assert.Equal(t, pollHandle, status.Message)
	assert.Equal(t, time.Date(2025, time.June, 2, 0, 0, 0, 0, jst), status.WeekOf)
	assert.Equal(t, wednesday, status.Scheduling.LastRepost)
	assert.False(t, status.Restoring)

	saved := f.saved()
	require.NotNil(t, saved)
	assert.Equal(t, status.PollID, saved.PollID)
	assert.Equal(t, pollHandle, saved.MessageHandle)
}

func TestStartPoll_CreateFailureLeavesPollRetryable(t *testing.T) {
	f := newFixture(t, wednesday)
	f.start(t)

	f.gateway.EXPECT().CreateMessage(gomock.Any(), "channel", gomock.Any()).Return(gateway.Handle{}, errors.New("gateway timeout"))
	err := f.controller.StartPoll(context.Background(), "channel")
	require.Error(t, err)

	status := f.status(t)
	assert.Equal(t, StatePollOpen, status.State)
	assert.True(t, status.Message.IsZero())
	assert.True(t, status.Scheduling.LastRepost.IsZero())

	f.expectPublish(pollHandle)
	require.NoError(t, f.controller.Tick(context.Background(), poll.CadenceRepost))
	awaitRestoration(t, f.controller)

	assert.Equal(t, pollHandle, f.status(t).Message)
}

func TestHandleReaction_TogglesLedger(t *testing.T) {
	f := newFixture(t, wednesday)
	f.start(t)
	f.startPoll(t)

	f.gateway.EXPECT().EditMessage(gomock.Any(), pollHandle, gomock.Any()).Return(nil).Times(4)
	f.vote(t, true, "A", "1️⃣")
	f.vote(t, true, "A", "3️⃣")
	f.vote(t, true, "B", "3️⃣")

	counts, err := f.controller.Results(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "6/4(Wed)", counts[0].Option.Label)
	assert.Equal(t, []string{"A", "B"}, counts[0].Participants)
	assert.Equal(t, "6/2(Mon)", counts[1].Option.Label)
	assert.Equal(t, []string{"A"}, counts[1].Participants)

	f.vote(t, false, "A", "3️⃣")

	assert.Equal(t, []poll.Entry{
		{Participant: "A", Options: []int{0}},
		{Participant: "B", Options: []int{2}},
	}, entries(t, f))
	assert.Equal(t, map[string][]int{"A": {0}, "B": {2}}, f.saved().Votes)
}

func TestHandleReaction_IgnoresForeignEvents(t *testing.T) {
	f := newFixture(t, wednesday)
	f.start(t)
	f.startPoll(t)

	before := metrics.EventCount(metrics.ReactionIgnored)

	f.vote(t, true, "bot", "1️⃣")
	f.vote(t, true, "A", "👍")
	f.vote(t, false, "A", "2️⃣")
	require.NoError(t, f.controller.HandleReaction(context.Background(), Reaction{
		Added:       true,
		Message:     gateway.Handle{ChannelID: "channel", MessageID: "stale"},
		Participant: "A",
		Symbol:      "1️⃣",
	}))

	assert.Empty(t, entries(t, f))
	assert.Equal(t, before+3, metrics.EventCount(metrics.ReactionIgnored))
	assert.NotContains(t, f.status(t).Failures, metrics.ReactionIgnored)
}

func TestHandleReaction_DuplicateAddIsIdempotent(t *testing.T) {
	f := newFixture(t, wednesday)
	f.start(t)
	f.startPoll(t)

	f.gateway.EXPECT().EditMessage(gomock.Any(), pollHandle, gomock.Any()).Return(nil).Times(1)
	f.vote(t, true, "A", "2️⃣")
	f.vote(t, true, "A", "2️⃣")

	assert.Equal(t, []poll.Entry{{Participant: "A", Options: []int{1}}}, entries(t, f))
}

func TestHandleReaction_BeforeStartIgnored(t *testing.T) {
	f := newFixture(t, wednesday)
	f.start(t)

	f.vote(t, true, "A", "1️⃣")

	assert.Equal(t, StateNoActivePoll, f.status(t).State)
	assert.Empty(t, entries(t, f))
}

func TestRepost_RestoresVotesOntoNewMessage(t *testing.T) {
	f := newFixture(t, wednesday)
	f.start(t)
	f.startPoll(t)

	f.gateway.EXPECT().EditMessage(gomock.Any(), pollHandle, gomock.Any()).Return(nil).AnyTimes()
	f.vote(t, true, "B", "3️⃣")
	f.vote(t, true, "A", "3️⃣")
	f.vote(t, true, "A", "1️⃣")
	before := entries(t, f)

	f.clock.Advance(24 * time.Hour)
	f.gateway.EXPECT().UnpinMessage(gomock.Any(), pollHandle).Return(nil)
	f.gateway.EXPECT().DeleteMessage(gomock.Any(), pollHandle).Return(nil)
	restored := f.expectPublish(pollHandle2)

	require.NoError(t, f.controller.Repost(context.Background()))
	awaitRestoration(t, f.controller)

	assert.Equal(t, []string{"1️⃣", "3️⃣", "2️⃣", "4️⃣", "5️⃣", "6️⃣", "7️⃣"}, restored.all())
	assert.Equal(t, before, entries(t, f))

	status := f.status(t)
	assert.Equal(t, pollHandle2, status.Message)
	assert.Equal(t, wednesday.Add(24*time.Hour), status.Scheduling.LastRepost)
	assert.Equal(t, pollHandle2, f.saved().MessageHandle)
}

func TestRepost_ParticipantFailureDoesNotBlockOthers(t *testing.T) {
	f := newFixture(t, wednesday)
	f.start(t)
	f.startPoll(t)

	f.gateway.EXPECT().EditMessage(gomock.Any(), pollHandle, gomock.Any()).Return(nil).AnyTimes()
	f.vote(t, true, "A", "1️⃣")
	f.vote(t, true, "A", "2️⃣")
	f.vote(t, true, "B", "5️⃣")

	f.gateway.EXPECT().UnpinMessage(gomock.Any(), pollHandle).Return(gateway.ErrNotFound)
	f.gateway.EXPECT().DeleteMessage(gomock.Any(), pollHandle).Return(gateway.ErrNotFound)
	f.gateway.EXPECT().CreateMessage(gomock.Any(), "channel", gomock.Any()).Return(pollHandle2, nil)
	f.gateway.EXPECT().PinMessage(gomock.Any(), pollHandle2).Return(nil)

	log := &symbolLog{}
	f.gateway.EXPECT().AddReaction(gomock.Any(), pollHandle2, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ gateway.Handle, symbol string) error {
			log.add(symbol)
			if symbol == "1️⃣" && len(log.all()) == 1 {
				return errors.New("rate limited")
			}
			return nil
		}).AnyTimes()

	require.NoError(t, f.controller.Repost(context.Background()))
	awaitRestoration(t, f.controller)

	// A fails on its first symbol and is skipped; B still restores, seeding fills the gaps.
	assert.Equal(t, []string{"1️⃣", "5️⃣", "1️⃣", "2️⃣", "3️⃣", "4️⃣", "6️⃣", "7️⃣"}, log.all())
	assert.Len(t, entries(t, f), 2)
}

func TestRepost_CreateFailureRetriesOnNextTick(t *testing.T) {
	f := newFixture(t, wednesday)
	f.start(t)
	f.startPoll(t)

	f.gateway.EXPECT().UnpinMessage(gomock.Any(), pollHandle).Return(nil)
	f.gateway.EXPECT().DeleteMessage(gomock.Any(), pollHandle).Return(nil)
	f.gateway.EXPECT().CreateMessage(gomock.Any(), "channel", gomock.Any()).Return(gateway.Handle{}, errors.New("bad gateway"))

	require.Error(t, f.controller.Repost(context.Background()))

	status := f.status(t)
	assert.Equal(t, StatePollOpen, status.State)
	assert.True(t, status.Message.IsZero())
	assert.True(t, status.Scheduling.LastRepost.IsZero())

	f.expectPublish(pollHandle2)
	require.NoError(t, f.controller.Tick(context.Background(), poll.CadenceRepost))
	awaitRestoration(t, f.controller)

	assert.Equal(t, pollHandle2, f.status(t).Message)
}

func TestRotate_ClearsLedgerAndMovesToNextWeek(t *testing.T) {
	f := newFixture(t, wednesday)
	f.start(t)
	f.startPoll(t)

	f.gateway.EXPECT().EditMessage(gomock.Any(), pollHandle, gomock.Any()).Return(nil).Times(2)
	f.vote(t, true, "A", "1️⃣")
	previous := f.status(t).PollID

	f.gateway.EXPECT().UnpinMessage(gomock.Any(), pollHandle).Return(nil)
	f.expectPublish(pollHandle2)

	require.NoError(t, f.controller.Rotate(context.Background()))
	awaitRestoration(t, f.controller)

	status := f.status(t)
	assert.NotEqual(t, previous, status.PollID)
	assert.Equal(t, time.Date(2025, time.June, 9, 0, 0, 0, 0, jst), status.WeekOf)
	assert.Equal(t, 0, status.Participants)
	assert.Equal(t, wednesday, status.Scheduling.LastRotation)
	assert.Empty(t, f.saved().Votes)
}

func TestRotate_ClosingFailureDoesNotBlock(t *testing.T) {
	f := newFixture(t, wednesday)
	f.start(t)
	f.startPoll(t)

	f.gateway.EXPECT().EditMessage(gomock.Any(), pollHandle, gomock.Any()).Return(gateway.ErrNotFound)
	f.gateway.EXPECT().UnpinMessage(gomock.Any(), pollHandle).Return(gateway.ErrNotFound)
	f.expectPublish(pollHandle2)

	require.NoError(t, f.controller.Rotate(context.Background()))
	awaitRestoration(t, f.controller)

	assert.Equal(t, pollHandle2, f.status(t).Message)
}

func TestTickRotation_OncePerDay(t *testing.T) {
	sunday := time.Date(2025, time.June, 8, 8, 5, 0, 0, jst)
	f := newFixture(t, sunday)
	f.start(t)
	f.startPoll(t)

	f.gateway.EXPECT().EditMessage(gomock.Any(), pollHandle, gomock.Any()).Return(nil)
	f.gateway.EXPECT().UnpinMessage(gomock.Any(), pollHandle).Return(nil)
	f.expectPublish(pollHandle2)

	for i := 0; i < 6; i++ {
		require.NoError(t, f.controller.Tick(context.Background(), poll.CadenceRotation))
		awaitRestoration(t, f.controller)
		f.clock.Advance(10 * time.Minute)
	}

	status := f.status(t)
	assert.Equal(t, time.Date(2025, time.June, 9, 0, 0, 0, 0, jst), status.WeekOf)
	assert.Equal(t, sunday, status.Scheduling.LastRotation)
}

func TestTickRotation_RetriesPostAfterCreateFailure(t *testing.T) {
	sunday := time.Date(2025, time.June, 8, 8, 5, 0, 0, jst)
	f := newFixture(t, sunday)
	f.start(t)
	f.startPoll(t)

	f.gateway.EXPECT().EditMessage(gomock.Any(), pollHandle, gomock.Any()).Return(nil)
	f.gateway.EXPECT().UnpinMessage(gomock.Any(), pollHandle).Return(nil)
	f.gateway.EXPECT().CreateMessage(gomock.Any(), "channel", gomock.Any()).Return(gateway.Handle{}, errors.New("bad gateway"))

	require.NoError(t, f.controller.Tick(context.Background(), poll.CadenceRotation))

	status := f.status(t)
	assert.True(t, status.Message.IsZero())
	assert.True(t, status.Scheduling.LastRotation.IsZero())

	f.clock.Advance(10 * time.Minute)
	f.expectPublish(pollHandle2)

	for i := 0; i < 6; i++ {
		require.NoError(t, f.controller.Tick(context.Background(), poll.CadenceRotation))
		require.NoError(t, f.controller.Tick(context.Background(), poll.CadenceRepost))
		awaitRestoration(t, f.controller)
		f.clock.Advance(10 * time.Minute)
	}

	status = f.status(t)
	assert.Equal(t, pollHandle2, status.Message)
	assert.Equal(t, time.Date(2025, time.June, 9, 0, 0, 0, 0, jst), status.WeekOf)
	assert.Equal(t, sunday.Add(10*time.Minute), status.Scheduling.LastRotation)
	assert.Equal(t, pollHandle2, f.saved().MessageHandle)
}

func TestTickRepost_RecreatesMissingMessageOnRotationDay(t *testing.T) {
	sunday := time.Date(2025, time.June, 8, 8, 5, 0, 0, jst)
	f := newFixture(t, sunday)
	f.start(t)
	f.startPoll(t)

	f.gateway.EXPECT().EditMessage(gomock.Any(), pollHandle, gomock.Any()).Return(nil)
	f.gateway.EXPECT().UnpinMessage(gomock.Any(), pollHandle).Return(nil)
	f.gateway.EXPECT().CreateMessage(gomock.Any(), "channel", gomock.Any()).Return(gateway.Handle{}, errors.New("bad gateway"))
	require.Error(t, f.controller.Rotate(context.Background()))

	f.clock.Advance(3*time.Hour + 25*time.Minute)
	f.expectPublish(pollHandle2)
	require.NoError(t, f.controller.Tick(context.Background(), poll.CadenceRepost))
	awaitRestoration(t, f.controller)

	status := f.status(t)
	assert.Equal(t, pollHandle2, status.Message)
	assert.Equal(t, time.Date(2025, time.June, 9, 0, 0, 0, 0, jst), status.WeekOf)
}

func TestTickRotation_SkipsWhenAlreadyNextWeek(t *testing.T) {
	saturday := time.Date(2025, time.June, 7, 20, 0, 0, 0, jst)
	f := newFixture(t, saturday)
	f.start(t)
	f.startPoll(t)

	f.gateway.EXPECT().EditMessage(gomock.Any(), pollHandle, gomock.Any()).Return(nil)
	f.gateway.EXPECT().UnpinMessage(gomock.Any(), pollHandle).Return(nil)
	f.expectPublish(pollHandle2)
	require.NoError(t, f.controller.Rotate(context.Background()))
	awaitRestoration(t, f.controller)

	f.clock.Advance(12 * time.Hour)
	require.NoError(t, f.controller.Tick(context.Background(), poll.CadenceRotation))

	status := f.status(t)
	assert.Equal(t, pollHandle2, status.Message)
	assert.Equal(t, saturday.Add(12*time.Hour), status.Scheduling.LastRotation)
}

func TestTickRepost_SuppressedOnRotationDay(t *testing.T) {
	saturday := time.Date(2025, time.June, 7, 10, 0, 0, 0, jst)
	f := newFixture(t, saturday)
	f.start(t)
	f.startPoll(t)

	f.clock.Advance(26 * time.Hour)
	require.NoError(t, f.controller.Tick(context.Background(), poll.CadenceRepost))

	status := f.status(t)
	assert.Equal(t, pollHandle, status.Message)
	assert.Equal(t, saturday, status.Scheduling.LastRepost)
}

func TestTickReminder_OnlyWhileEngagementIsLow(t *testing.T) {
	f := newFixture(t, wednesday)
	f.start(t)
	f.startPoll(t)

	f.clock.Advance(6 * time.Hour)
	f.gateway.EXPECT().CreateMessage(gomock.Any(), "channel", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, content gateway.Content) (gateway.Handle, error) {
			assert.Equal(t, pollHandle, content.Reference)
			return gateway.Handle{ChannelID: "channel", MessageID: "reminder"}, nil
		})
	require.NoError(t, f.controller.Tick(context.Background(), poll.CadenceReminder))
	assert.Equal(t, wednesday.Add(6*time.Hour), f.status(t).Scheduling.LastReminder)

	f.gateway.EXPECT().EditMessage(gomock.Any(), pollHandle, gomock.Any()).Return(nil).Times(5)
	for i := 0; i < 5; i++ {
		f.vote(t, true, fmt.Sprintf("user-%d", i), "1️⃣")
	}

	f.clock.Advance(12 * time.Hour)
	require.NoError(t, f.controller.Tick(context.Background(), poll.CadenceReminder))
	assert.Equal(t, wednesday.Add(6*time.Hour), f.status(t).Scheduling.LastReminder)
}

func TestTickReminder_EarlyTickStillFires(t *testing.T) {
	f := newFixture(t, wednesday)
	f.start(t)
	f.startPoll(t)

	reminder := gateway.Handle{ChannelID: "channel", MessageID: "reminder"}
	f.gateway.EXPECT().CreateMessage(gomock.Any(), "channel", gomock.Any()).Return(reminder, nil).Times(2)

	f.clock.Advance(6*time.Hour + 5*time.Millisecond)
	require.NoError(t, f.controller.Tick(context.Background(), poll.CadenceReminder))
	first := f.status(t).Scheduling.LastReminder

	f.clock.Advance(6*time.Hour - 8*time.Millisecond)
	require.NoError(t, f.controller.Tick(context.Background(), poll.CadenceReminder))

	assert.Equal(t, first.Add(6*time.Hour-8*time.Millisecond), f.status(t).Scheduling.LastReminder)
}

func TestTickReminder_Disabled(t *testing.T) {
	f := newFixture(t, wednesday)
	f.start(t)
	f.startPoll(t)

	require.NoError(t, f.controller.SetReminderEnabled(context.Background(), false))
	f.clock.Advance(24 * time.Hour / 2)
	require.NoError(t, f.controller.Tick(context.Background(), poll.CadenceReminder))

	status := f.status(t)
	assert.False(t, status.Scheduling.ReminderEnabled)
	assert.Equal(t, wednesday, status.Scheduling.LastReminder)
	assert.False(t, f.saved().ReminderEnabled)
}

func TestTickBump_DeletesPreviousBump(t *testing.T) {
	f := newFixture(t, wednesday)
	f.start(t)
	f.startPoll(t)

	bump1 := gateway.Handle{ChannelID: "channel", MessageID: "bump-1"}
	bump2 := gateway.Handle{ChannelID: "channel", MessageID: "bump-2"}

	gomock.InOrder(
		f.gateway.EXPECT().CreateMessage(gomock.Any(), "channel", gomock.Any()).Return(bump1, nil),
		f.gateway.EXPECT().CreateMessage(gomock.Any(), "channel", gomock.Any()).Return(bump2, nil),
		f.gateway.EXPECT().DeleteMessage(gomock.Any(), bump1).Return(nil),
	)

	f.clock.Advance(3 * time.Hour)
	require.NoError(t, f.controller.Tick(context.Background(), poll.CadenceBump))
	f.clock.Advance(time.Hour)
	require.NoError(t, f.controller.Tick(context.Background(), poll.CadenceBump))
	f.clock.Advance(2 * time.Hour)
	require.NoError(t, f.controller.Tick(context.Background(), poll.CadenceBump))

	assert.Equal(t, wednesday.Add(6*time.Hour), f.status(t).Scheduling.LastBump)
}

func TestTickHealth_Snapshots(t *testing.T) {
	f := newFixture(t, wednesday)
	f.start(t)

	f.store.EXPECT().Snapshot(gomock.Any()).Return(nil).Times(1)
	require.NoError(t, f.controller.Tick(context.Background(), poll.CadenceHealth))
	require.NoError(t, f.controller.Tick(context.Background(), poll.CadenceHealth))

	assert.Equal(t, wednesday, f.status(t).Scheduling.LastHealth)
}

func TestPermissionDenied_NotifiesAndContinues(t *testing.T) {
	f := newFixture(t, wednesday)
	f.start(t)
	before := metrics.FailureCount(metrics.PermissionDenied)

	f.gateway.EXPECT().CreateMessage(gomock.Any(), "channel", gomock.Any()).Return(pollHandle, nil)
	f.gateway.EXPECT().PinMessage(gomock.Any(), pollHandle).Return(fmt.Errorf("pin message: %w", gateway.ErrPermissionDenied))
	f.gateway.EXPECT().AddReaction(gomock.Any(), pollHandle, gomock.Any()).Return(nil).Times(poll.DaysPerWeek)

	require.NoError(t, f.controller.StartPoll(context.Background(), "channel"))
	awaitRestoration(t, f.controller)

	assert.Equal(t, StatePollOpen, f.status(t).State)
	assert.Equal(t, before+1, metrics.FailureCount(metrics.PermissionDenied))
	require.Len(t, f.notifier.Messages(), 1)
	assert.Contains(t, f.notifier.Messages()[0], "pin poll message")
}

func TestPersistenceFailure_KeepsOperating(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mock_gateway.NewMockGateway(ctrl)
	store := mock_storage.NewMockStore(ctrl)
	c := &clock{now: wednesday}
	controller := New(gw, store, nil, zap.NewNop().Sugar(), testOptions(c))

	ctx, cancel := context.WithCancel(context.Background())
	go controller.Run(ctx)
	t.Cleanup(func() {
		cancel()
		<-controller.done
	})

	before := metrics.FailureCount(metrics.PersistenceFailure)
	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("read-only file system")).AnyTimes()
	gw.EXPECT().CreateMessage(gomock.Any(), "channel", gomock.Any()).Return(pollHandle, nil)
	gw.EXPECT().PinMessage(gomock.Any(), pollHandle).Return(nil)
	gw.EXPECT().AddReaction(gomock.Any(), pollHandle, gomock.Any()).Return(nil).Times(poll.DaysPerWeek)
	gw.EXPECT().EditMessage(gomock.Any(), pollHandle, gomock.Any()).Return(nil)

	require.NoError(t, controller.StartPoll(context.Background(), "channel"))
	awaitRestoration(t, controller)
	require.NoError(t, controller.HandleReaction(context.Background(), Reaction{Added: true, Message: pollHandle, Participant: "A", Symbol: "1️⃣"}))

	status, err := controller.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, status.Participants)
	assert.GreaterOrEqual(t, metrics.FailureCount(metrics.PersistenceFailure), before+2)
}

func TestRestore_ResumesSavedPoll(t *testing.T) {
	f := newFixture(t, wednesday)

	state := poll.NewState("channel", time.Date(2025, time.June, 2, 0, 0, 0, 0, jst), wednesday.Add(-48*time.Hour))
	state.Message = pollHandle
	ledger := poll.NewLedger(poll.DaysPerWeek)
	ledger.Toggle("A", 0)
	ledger.Toggle("A", 2)
	ledger.Toggle("B", 2)
	record := poll.NewRecord(state, ledger, poll.Scheduling{LastRepost: wednesday.Add(-time.Hour), AutoBumpEnabled: true}, wednesday)

	f.store.EXPECT().Load(gomock.Any()).Return(record, nil)
	f.gateway.EXPECT().FetchMessage(gomock.Any(), pollHandle).Return(gateway.Content{}, nil)

	require.NoError(t, f.controller.Restore(context.Background()))
	f.start(t)

	status := f.status(t)
	assert.Equal(t, StatePollOpen, status.State)
	assert.Equal(t, state.ID, status.PollID)
	assert.Equal(t, pollHandle, status.Message)
	assert.Equal(t, 2, status.Participants)
	assert.False(t, status.Scheduling.ReminderEnabled)
	assert.True(t, status.Scheduling.AutoBumpEnabled)
	assert.Equal(t, wednesday.Add(-time.Hour), status.Scheduling.LastRepost)
}

func TestRestore_MissingMessageIsRecreatedByRepost(t *testing.T) {
	f := newFixture(t, wednesday)

	state := poll.NewState("channel", time.Date(2025, time.June, 2, 0, 0, 0, 0, jst), wednesday)
	state.Message = pollHandle
	record := poll.NewRecord(state, poll.NewLedger(poll.DaysPerWeek), poll.Scheduling{LastRepost: wednesday}, wednesday)

	f.store.EXPECT().Load(gomock.Any()).Return(record, nil)
	f.gateway.EXPECT().FetchMessage(gomock.Any(), pollHandle).Return(gateway.Content{}, fmt.Errorf("fetch message: %w", gateway.ErrNotFound))

	require.NoError(t, f.controller.Restore(context.Background()))
	f.start(t)

	status := f.status(t)
	assert.True(t, status.Message.IsZero())
	assert.True(t, status.Scheduling.LastRepost.IsZero())

	f.expectPublish(pollHandle2)
	require.NoError(t, f.controller.Tick(context.Background(), poll.CadenceRepost))
	awaitRestoration(t, f.controller)

	assert.Equal(t, pollHandle2, f.status(t).Message)
}

func TestRestore_NothingSaved(t *testing.T) {
	f := newFixture(t, wednesday)
	f.store.EXPECT().Load(gomock.Any()).Return(nil, nil)

	require.NoError(t, f.controller.Restore(context.Background()))
	f.start(t)

	assert.Equal(t, StateNoActivePoll, f.status(t).State)
}

func TestRestore_LoadFailure(t *testing.T) {
	f := newFixture(t, wednesday)
	f.store.EXPECT().Load(gomock.Any()).Return(nil, errors.New("permission denied"))

	assert.Error(t, f.controller.Restore(context.Background()))
	assert.Equal(t, StateNoActivePoll, f.controller.machine.current())
}

func TestShutdown_PersistsAndStops(t *testing.T) {
	f := newFixture(t, wednesday)
	f.start(t)
	f.startPoll(t)

	f.store.EXPECT().Snapshot(gomock.Any()).Return(nil)
	require.NoError(t, f.controller.Shutdown(context.Background()))

	assert.Equal(t, pollHandle, f.saved().MessageHandle)
	assert.Equal(t, StateNoActivePoll, f.controller.machine.current())
	assert.True(t, errors.Is(f.controller.StartPoll(context.Background(), "channel"), ErrStopped))
	assert.True(t, errors.Is(f.controller.Repost(context.Background()), ErrStopped))
}

func TestShutdown_CancelsRestoration(t *testing.T) {
	f := newFixture(t, wednesday, func(options *Options) {
		options.ReactionDelay = time.Hour
	})
	f.start(t)

	f.gateway.EXPECT().CreateMessage(gomock.Any(), "channel", gomock.Any()).Return(pollHandle, nil)
	f.gateway.EXPECT().PinMessage(gomock.Any(), pollHandle).Return(nil)
	f.gateway.EXPECT().AddReaction(gomock.Any(), pollHandle, "1️⃣").Return(nil).MaxTimes(1)
	require.NoError(t, f.controller.StartPoll(context.Background(), "channel"))

	f.store.EXPECT().Snapshot(gomock.Any()).Return(nil)
	require.NoError(t, f.controller.Shutdown(context.Background()))
	assert.False(t, f.controller.restoring.Load())
}

func TestRestoration_BoundedByTimeout(t *testing.T) {
	f := newFixture(t, wednesday, func(options *Options) {
		options.ReactionDelay = time.Hour
		options.RestoreTimeout = 20 * time.Millisecond
	})
	f.start(t)

	f.gateway.EXPECT().CreateMessage(gomock.Any(), "channel", gomock.Any()).Return(pollHandle, nil)
	f.gateway.EXPECT().PinMessage(gomock.Any(), pollHandle).Return(nil)
	f.gateway.EXPECT().AddReaction(gomock.Any(), pollHandle, "1️⃣").Return(nil).MaxTimes(1)
	require.NoError(t, f.controller.StartPoll(context.Background(), "channel"))
	awaitRestoration(t, f.controller)

	assert.False(t, f.status(t).Restoring)
}

func TestResults_NoActivePoll(t *testing.T) {
	f := newFixture(t, wednesday)
	f.start(t)

	_, err := f.controller.Results(context.Background())

	assert.True(t, errors.Is(err, ErrNoActivePoll))
}

func TestStartPoll_ReplacesActivePoll(t *testing.T) {
	f := newFixture(t, wednesday)
	f.start(t)
	f.startPoll(t)

	f.gateway.EXPECT().EditMessage(gomock.Any(), pollHandle, gomock.Any()).Return(nil).Times(2)
	f.vote(t, true, "A", "1️⃣")

	f.gateway.EXPECT().UnpinMessage(gomock.Any(), pollHandle).Return(nil)
	f.expectPublish(pollHandle2)
	require.NoError(t, f.controller.StartPoll(context.Background(), "channel"))
	awaitRestoration(t, f.controller)

	status := f.status(t)
	assert.Equal(t, pollHandle2, status.Message)
	assert.Equal(t, time.Date(2025, time.June, 2, 0, 0, 0, 0, jst), status.WeekOf)
	assert.Equal(t, 0, status.Participants)
}
