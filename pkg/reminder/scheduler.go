package reminder

import (
	"context"
	"sync"
	"time"

	"agenda/pkg/store"
	"agenda/pkg/utils"
)

// Notifier is the external capability for raising notifications. The
// scheduler only decides when to fire; asking for permission and drawing
// the notification belong to the implementation behind this interface.
type Notifier interface {
	HasPermission() bool
	RequestPermission(ctx context.Context) (bool, error)
	Show(id, title, body string) error
}

const fallbackBody = "Don't forget your event!"

// Scheduler arms one-shot notifications for events with a reminder set.
// Arming is best-effort within the running session: a fire time already in
// the past is dropped, and nothing survives process exit.
type Scheduler struct {
	notifier Notifier

	mu    sync.Mutex
	armed map[string]*armedReminder

	// Injection points for tests.
	now       func() time.Time
	afterFunc func(d time.Duration, f func()) *time.Timer
}

// armedReminder tracks one pending notification. The generation counter
// lets a stale firing recognise that its event was edited or deleted after
// arming.
type armedReminder struct {
	generation uint64
	timer      *time.Timer
}

// NewScheduler creates a scheduler backed by the given notifier.
func NewScheduler(notifier Notifier) *Scheduler {
	return &Scheduler{
		notifier:  notifier,
		armed:     make(map[string]*armedReminder),
		now:       time.Now,
		afterFunc: time.AfterFunc,
	}
}

// FireAt computes the absolute time the notification for event should
// appear. The second return value is false when the event has no reminder.
func FireAt(event store.Event) (time.Time, bool) {
	start := event.StartAt()

	switch event.Reminder {
	case store.Reminder15Min:
		return start.Add(-15 * time.Minute), true
	case store.Reminder30Min:
		return start.Add(-30 * time.Minute), true
	case store.ReminderHour:
		return start.Add(-time.Hour), true
	case store.ReminderDay:
		return start.Add(-24 * time.Hour), true
	case store.ReminderCustom:
		c := event.CustomReminder
		fireAt := start.Add(-time.Duration(c.Days) * 24 * time.Hour)
		fireAt = fireAt.Add(-time.Duration(c.Hours) * time.Hour)
		fireAt = fireAt.Add(-time.Duration(c.Minutes) * time.Minute)
		return fireAt, true
	default:
		return time.Time{}, false
	}
}

// Schedule arms a one-shot notification for the event. Any reminder already
// armed for the same event id is retracted first, so calling Schedule after
// an update replaces the old fire time. Fire times in the past are dropped
// silently. When notification permission has not been granted yet it is
// requested asynchronously and the reminder is only armed if granted.
func (s *Scheduler) Schedule(event store.Event) {
	gen := s.retract(event.ID)

	fireAt, ok := FireAt(event)
	if !ok {
		return
	}
	if !fireAt.After(s.now()) {
		utils.Log("Reminder for event %s already in the past, dropped", event.ID)
		return
	}

	if s.notifier.HasPermission() {
		s.arm(event, fireAt, gen)
		return
	}

	go func() {
		granted, err := s.notifier.RequestPermission(context.Background())
		if err != nil || !granted {
			utils.Log("Notification permission denied, reminder for event %s dropped", event.ID)
			return
		}
		if !fireAt.After(s.now()) {
			return
		}
		s.arm(event, fireAt, gen)
	}()
}

// Cancel retracts any armed reminder for the event id. Safe to call for ids
// that were never scheduled.
func (s *Scheduler) Cancel(id string) {
	s.retract(id)
}

// retract stops the current timer for id, bumps the generation, and returns
// the new generation to arm against.
func (s *Scheduler) retract(id string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.armed[id]
	if !ok {
		entry = &armedReminder{}
		s.armed[id] = entry
	}
	if entry.timer != nil {
		entry.timer.Stop()
		entry.timer = nil
	}
	entry.generation++
	return entry.generation
}

func (s *Scheduler) arm(event store.Event, fireAt time.Time, gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := s.armed[event.ID]
	if entry == nil || entry.generation != gen {
		return // retracted while permission was pending
	}

	delay := fireAt.Sub(s.now())
	entry.timer = s.afterFunc(delay, func() {
		s.fire(event, gen)
	})
	utils.Log("Armed reminder for event %s at %s", event.ID, fireAt.Format("2006-01-02 15:04"))
}

func (s *Scheduler) fire(event store.Event, gen uint64) {
	s.mu.Lock()
	entry := s.armed[event.ID]
	stale := entry == nil || entry.generation != gen
	if !stale {
		entry.timer = nil
	}
	s.mu.Unlock()

	if stale {
		utils.Log("Dropped stale reminder firing for event %s", event.ID)
		return
	}

	body := event.Description
	if body == "" {
		body = fallbackBody
	}
	if err := s.notifier.Show(event.ID, event.Title, body); err != nil {
		utils.Log("Error showing notification for event %s: %v", event.ID, err)
	}
}
