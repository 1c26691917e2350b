package store

import (
	"sort"
	"time"
)

// DefaultUpcomingLimit caps the upcoming-events list when no limit is given.
const DefaultUpcomingLimit = 5

// SameDay reports whether two timestamps fall on the same local calendar
// day. Time of day is not considered.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// EventsOn returns every event whose date falls on the same calendar day as
// date. The scan is O(n); at planner scale no index is needed. Order follows
// insertion order, callers sort as they see fit.
func (r *Repository) EventsOn(date time.Time) []Event {
	var matches []Event
	for _, event := range r.Events() {
		if SameDay(event.Date, date) {
			matches = append(matches, event)
		}
	}
	return matches
}

// Upcoming returns the next events from the start of the current local day
// onwards, soonest first, at most limit entries. Events dated today count as
// upcoming even when their time of day has already passed. A limit of zero
// or less yields nothing.
func (r *Repository) Upcoming(limit int) []Event {
	return r.upcomingAt(time.Now(), limit)
}

func (r *Repository) upcomingAt(now time.Time, limit int) []Event {
	if limit <= 0 {
		return nil
	}

	today := normalizeDate(now)
	var matches []Event
	for _, event := range r.Events() {
		if !event.Date.Before(today) {
			matches = append(matches, event)
		}
	}

	sortByStart(matches)
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// Sorted returns all events ordered by (date, time). When max is positive
// the result is truncated after sorting and the second return value reports
// how many events were omitted.
func (r *Repository) Sorted(max int) ([]Event, int) {
	events := r.Events()
	sortByStart(events)

	if max > 0 && len(events) > max {
		return events[:max], len(events) - max
	}
	return events, 0
}

// sortByStart orders events by date, then by their HH:MM time field. The
// zero-padded 24-hour format sorts lexicographically the same as
// chronologically.
func sortByStart(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		if !events[i].Date.Equal(events[j].Date) {
			return events[i].Date.Before(events[j].Date)
		}
		return events[i].Time < events[j].Time
	})
}
