package reminder

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agenda/pkg/store"
)

type shownNote struct {
	id, title, body string
}

// fakeNotifier records notifications instead of raising them.
type fakeNotifier struct {
	mu         sync.Mutex
	permission bool
	grant      bool
	requested  int
	shown      []shownNote
}

func (f *fakeNotifier) HasPermission() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.permission
}

func (f *fakeNotifier) RequestPermission(ctx context.Context) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requested++
	if f.grant {
		f.permission = true
	}
	return f.grant, nil
}

func (f *fakeNotifier) Show(id, title, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.shown = append(f.shown, shownNote{id, title, body})
	return nil
}

func (f *fakeNotifier) shownNotes() []shownNote {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]shownNote(nil), f.shown...)
}

type armCall struct {
	delay time.Duration
	fn    func()
}

// armRecorder captures armed timers so tests trigger the firing themselves.
// Arming can happen from the permission goroutine, hence the mutex.
type armRecorder struct {
	mu    sync.Mutex
	calls []armCall
}

func (r *armRecorder) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func (r *armRecorder) at(i int) armCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls[i]
}

// testScheduler wires a scheduler to a fixed clock and the recorder.
func testScheduler(notifier Notifier, now time.Time) (*Scheduler, *armRecorder) {
	s := NewScheduler(notifier)
	s.now = func() time.Time { return now }

	rec := &armRecorder{}
	s.afterFunc = func(d time.Duration, f func()) *time.Timer {
		rec.mu.Lock()
		rec.calls = append(rec.calls, armCall{d, f})
		rec.mu.Unlock()
		t := time.AfterFunc(time.Hour, func() {})
		t.Stop()
		return t
	}
	return s, rec
}

func eventAt(id string, reminder store.Reminder) store.Event {
	return store.Event{
		ID:       id,
		Title:    "dentist",
		Date:     time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local),
		Time:     "09:00",
		Reminder: reminder,
	}
}

func TestFireAt(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)

	tests := []struct {
		name   string
		event  store.Event
		want   time.Time
		wantOK bool
	}{
		{"none", eventAt("e", store.ReminderNone), time.Time{}, false},
		{"15min", eventAt("e", store.Reminder15Min), start.Add(-15 * time.Minute), true},
		{"30min", eventAt("e", store.Reminder30Min), start.Add(-30 * time.Minute), true},
		{"1h", eventAt("e", store.ReminderHour), start.Add(-time.Hour), true},
		{"1d", eventAt("e", store.ReminderDay), start.Add(-24 * time.Hour), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FireAt(tt.event)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.True(t, got.Equal(tt.want), "got %v want %v", got, tt.want)
			}
		})
	}
}

func TestFireAtCustomOffsetsSubtractIndependently(t *testing.T) {
	event := eventAt("e", store.ReminderCustom)
	event.CustomReminder = store.CustomReminder{Days: 1, Hours: 2, Minutes: 30}

	got, ok := FireAt(event)
	require.True(t, ok)
	want := time.Date(2025, 3, 9, 6, 30, 0, 0, time.Local)
	assert.True(t, got.Equal(want), "got %v want %v", got, want)
}

func TestScheduleArmsFutureReminder(t *testing.T) {
	notifier := &fakeNotifier{permission: true}
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.Local)
	s, calls := testScheduler(notifier, now)

	event := eventAt("ev-1", store.Reminder15Min)
	event.Description = "bring the referral"
	s.Schedule(event)

	require.Equal(t, 1, calls.len())
	assert.Equal(t, 45*time.Minute, calls.at(0).delay)

	calls.at(0).fn()
	notes := notifier.shownNotes()
	require.Len(t, notes, 1)
	assert.Equal(t, shownNote{"ev-1", "dentist", "bring the referral"}, notes[0])
}

func TestScheduleFallbackBody(t *testing.T) {
	notifier := &fakeNotifier{permission: true}
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.Local)
	s, calls := testScheduler(notifier, now)

	s.Schedule(eventAt("ev-1", store.Reminder15Min))

	require.Equal(t, 1, calls.len())
	calls.at(0).fn()
	notes := notifier.shownNotes()
	require.Len(t, notes, 1)
	assert.Equal(t, "Don't forget your event!", notes[0].body)
}

func TestSchedulePastFireTimeDropped(t *testing.T) {
	notifier := &fakeNotifier{permission: true}
	now := time.Date(2025, 3, 10, 8, 50, 0, 0, time.Local)
	s, calls := testScheduler(notifier, now)

	// 15 minutes before 09:00 is 08:45, already behind the clock.
	s.Schedule(eventAt("ev-1", store.Reminder15Min))

	assert.Zero(t, calls.len())
	assert.Empty(t, notifier.shownNotes())
}

func TestScheduleWithoutReminderDoesNothing(t *testing.T) {
	notifier := &fakeNotifier{permission: true}
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local)
	s, calls := testScheduler(notifier, now)

	s.Schedule(eventAt("ev-1", store.ReminderNone))

	assert.Zero(t, calls.len())
}

func TestRescheduleRetractsPreviousTimer(t *testing.T) {
	notifier := &fakeNotifier{permission: true}
	now := time.Date(2025, 3, 10, 7, 0, 0, 0, time.Local)
	s, calls := testScheduler(notifier, now)

	s.Schedule(eventAt("ev-1", store.Reminder15Min))
	s.Schedule(eventAt("ev-1", store.ReminderHour))
	require.Equal(t, 2, calls.len())

	// The first arming belongs to a retracted generation and must not show.
	calls.at(0).fn()
	assert.Empty(t, notifier.shownNotes())

	calls.at(1).fn()
	assert.Len(t, notifier.shownNotes(), 1)
}

func TestCancelDropsPendingFiring(t *testing.T) {
	notifier := &fakeNotifier{permission: true}
	now := time.Date(2025, 3, 10, 7, 0, 0, 0, time.Local)
	s, calls := testScheduler(notifier, now)

	s.Schedule(eventAt("ev-1", store.Reminder15Min))
	require.Equal(t, 1, calls.len())

	s.Cancel("ev-1")
	calls.at(0).fn()

	assert.Empty(t, notifier.shownNotes())
}

func TestCancelUnknownIDIsSafe(t *testing.T) {
	notifier := &fakeNotifier{permission: true}
	s, _ := testScheduler(notifier, time.Now())

	s.Cancel("never-scheduled")
}

func TestScheduleRequestsPermissionWhenMissing(t *testing.T) {
	notifier := &fakeNotifier{permission: false, grant: true}
	now := time.Date(2025, 3, 10, 7, 0, 0, 0, time.Local)
	s, calls := testScheduler(notifier, now)

	s.Schedule(eventAt("ev-1", store.Reminder15Min))

	assert.Eventually(t, func() bool {
		return calls.len() == 1
	}, time.Second, 10*time.Millisecond)
}

func TestScheduleDropsReminderWhenPermissionDenied(t *testing.T) {
	notifier := &fakeNotifier{permission: false, grant: false}
	now := time.Date(2025, 3, 10, 7, 0, 0, 0, time.Local)
	s, calls := testScheduler(notifier, now)

	s.Schedule(eventAt("ev-1", store.Reminder15Min))

	assert.Eventually(t, func() bool {
		notifier.mu.Lock()
		defer notifier.mu.Unlock()
		return notifier.requested == 1
	}, time.Second, 10*time.Millisecond)
	assert.Zero(t, calls.len())
}
