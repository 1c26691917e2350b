package store

import (
	"sync"

	"agenda/pkg/utils"
)

// Repository is the authoritative in-memory collection of events. Every
// mutation swaps in a fresh slice, so snapshots handed out by Events are
// never modified afterwards. The mutex covers the swap: the reminder timer
// goroutine reads the repository outside the UI loop.
type Repository struct {
	mu     sync.RWMutex
	events []Event
}

// NewRepository creates an empty repository.
func NewRepository() *Repository {
	return &Repository{}
}

// Create validates the draft, assigns a fresh id, and appends the new event.
func (r *Repository) Create(draft Draft) (Event, error) {
	if err := draft.validate(); err != nil {
		return Event{}, err
	}

	event := Event{
		ID:             newID(),
		Title:          draft.Title,
		Date:           normalizeDate(draft.Date),
		Time:           draft.Time,
		Description:    draft.Description,
		Color:          draft.Color,
		Priority:       draft.Priority,
		Reminder:       draft.Reminder,
		CustomReminder: draft.CustomReminder,
	}

	r.mu.Lock()
	next := make([]Event, len(r.events), len(r.events)+1)
	copy(next, r.events)
	r.events = append(next, event)
	r.mu.Unlock()

	utils.Log("Created event %s (%s)", event.ID, event.Title)
	return event, nil
}

// Update replaces every field of the event with the given id, preserving the
// id itself. Unknown ids return ErrNotFound.
func (r *Repository) Update(id string, draft Draft) (Event, error) {
	if err := draft.validate(); err != nil {
		return Event{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.events {
		if existing.ID != id {
			continue
		}
		event := Event{
			ID:             id,
			Title:          draft.Title,
			Date:           normalizeDate(draft.Date),
			Time:           draft.Time,
			Description:    draft.Description,
			Color:          draft.Color,
			Priority:       draft.Priority,
			Reminder:       draft.Reminder,
			CustomReminder: draft.CustomReminder,
		}
		next := make([]Event, len(r.events))
		copy(next, r.events)
		next[i] = event
		r.events = next

		utils.Log("Updated event %s (%s)", id, event.Title)
		return event, nil
	}

	return Event{}, ErrNotFound
}

// Delete removes the event with the given id. Unknown ids return
// ErrNotFound; callers reaching a stale entry may treat that as success.
func (r *Repository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.events {
		if existing.ID != id {
			continue
		}
		next := make([]Event, 0, len(r.events)-1)
		next = append(next, r.events[:i]...)
		next = append(next, r.events[i+1:]...)
		r.events = next

		utils.Log("Deleted event %s", id)
		return nil
	}

	return ErrNotFound
}

// Get returns the event with the given id.
func (r *Repository) Get(id string) (Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, event := range r.events {
		if event.ID == id {
			return event, nil
		}
	}
	return Event{}, ErrNotFound
}

// Events returns a read-only snapshot of all events.
func (r *Repository) Events() []Event {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]Event, len(r.events))
	copy(snapshot, r.events)
	return snapshot
}

// Len reports the number of stored events.
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.events)
}
