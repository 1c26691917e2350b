package store

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Priority represents the severity level of an event.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Valid reports whether p is one of the known priority levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Reminder selects when a notification fires relative to the event start.
type Reminder string

const (
	ReminderNone   Reminder = "none"
	Reminder15Min  Reminder = "15min"
	Reminder30Min  Reminder = "30min"
	ReminderHour   Reminder = "1h"
	ReminderDay    Reminder = "1d"
	ReminderCustom Reminder = "custom"
)

// Valid reports whether r is one of the known reminder options.
func (r Reminder) Valid() bool {
	switch r {
	case ReminderNone, Reminder15Min, Reminder30Min, ReminderHour, ReminderDay, ReminderCustom:
		return true
	}
	return false
}

// CustomReminder is an offset before the event start, applied when the
// reminder option is "custom". The three components are subtracted
// independently, not normalized into each other.
type CustomReminder struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

// Event is a dated, titled calendar item. ID is assigned by the repository
// at creation and never changes afterwards.
type Event struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	Date           time.Time      `json:"date"` // calendar day, local midnight
	Time           string         `json:"time"` // HH:MM, 24-hour
	Description    string         `json:"description,omitempty"`
	Color          string         `json:"color"`
	Priority       Priority       `json:"priority"`
	Reminder       Reminder       `json:"reminder"`
	CustomReminder CustomReminder `json:"customReminder,omitempty"`
}

// Draft carries every event field except the ID. Create and Update take a
// draft and produce the stored event.
type Draft struct {
	Title          string
	Date           time.Time
	Time           string
	Description    string
	Color          string
	Priority       Priority
	Reminder       Reminder
	CustomReminder CustomReminder
}

var (
	// ErrEmptyTitle is returned when a draft's title is empty after trimming.
	ErrEmptyTitle = errors.New("event title cannot be empty")
	// ErrNotFound is returned when no event with the given id exists.
	ErrNotFound = errors.New("event not found")
)

// StartAt resolves the event's date and HH:MM time to a point in time in the
// local zone, with seconds zeroed.
func (e Event) StartAt() time.Time {
	hour, min := parseClock(e.Time)
	return time.Date(e.Date.Year(), e.Date.Month(), e.Date.Day(), hour, min, 0, 0, time.Local)
}

func parseClock(s string) (hour, min int) {
	if len(s) < 5 || s[2] != ':' {
		return 0, 0
	}
	hour = int(s[0]-'0')*10 + int(s[1]-'0')
	min = int(s[3]-'0')*10 + int(s[4]-'0')
	if hour < 0 || hour > 23 || min < 0 || min > 59 {
		return 0, 0
	}
	return hour, min
}

// validate trims the draft's title in place and rejects empty titles.
func (d *Draft) validate() error {
	d.Title = strings.TrimSpace(d.Title)
	if d.Title == "" {
		return ErrEmptyTitle
	}
	return nil
}

// normalizeDate truncates a timestamp to local midnight so that the stored
// date always names a calendar day.
func normalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// newID returns a fresh event id. UUIDv7 combines a time-ordered component
// with a random component, so collisions are negligible.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
