package store

import "time"

// View selects the top-level display mode.
type View string

const (
	ViewCalendar View = "calendar"
	ViewList     View = "list"
)

// FormState names the phase of the create/edit session.
type FormState int

const (
	FormClosed FormState = iota
	FormCreating
	FormEditing
)

// Session is the ephemeral UI-interaction state: which date is selected,
// which event is loaded into the edit form, and whether the form is open.
// It is never persisted and resets fully whenever the form closes.
type Session struct {
	state        FormState
	selectedDate time.Time
	editing      *Event
	currentView  View
}

// NewSession starts with the form closed and the calendar view active.
func NewSession() *Session {
	return &Session{currentView: ViewCalendar}
}

// OpenCreate opens the form in create mode for the given date. A zero date
// defaults to today.
func (s *Session) OpenCreate(date time.Time) {
	if date.IsZero() {
		date = time.Now()
	}
	s.state = FormCreating
	s.selectedDate = normalizeDate(date)
	s.editing = nil
}

// OpenEdit loads an event into the form. Re-entrant: selecting another
// event while already editing replaces the target.
func (s *Session) OpenEdit(event Event) {
	s.state = FormEditing
	s.editing = &event
	s.selectedDate = time.Time{}
}

// Close resets the session to its initial empty state. The active view is
// left alone.
func (s *Session) Close() {
	s.state = FormClosed
	s.selectedDate = time.Time{}
	s.editing = nil
}

// FormOpen reports whether a create or edit session is active.
func (s *Session) FormOpen() bool {
	return s.state != FormClosed
}

// State returns the current form phase.
func (s *Session) State() FormState {
	return s.state
}

// SelectedDate returns the date under interaction, zero when none.
func (s *Session) SelectedDate() time.Time {
	return s.selectedDate
}

// Editing returns the event loaded into the edit form, nil in create mode
// or when the form is closed.
func (s *Session) Editing() *Event {
	if s.editing == nil {
		return nil
	}
	event := *s.editing
	return &event
}

// CurrentView returns the active display mode.
func (s *Session) CurrentView() View {
	return s.currentView
}

// SetView switches the top-level display mode.
func (s *Session) SetView(v View) {
	s.currentView = v
}
