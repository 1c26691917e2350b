package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, repo *Repository, title string, date time.Time, clock string) Event {
	t.Helper()
	event, err := repo.Create(draftOn(title, date, clock))
	require.NoError(t, err)
	return event
}

func TestSameDay(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)

	tests := []struct {
		name string
		a, b time.Time
		want bool
	}{
		{"identical", day, day, true},
		{"different times same day", day, day.Add(23*time.Hour + 59*time.Minute), true},
		{"next day", day, day.AddDate(0, 0, 1), false},
		{"same day next month", day, day.AddDate(0, 1, 0), false},
		{"same day next year", day, day.AddDate(1, 0, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SameDay(tt.a, tt.b))
			assert.Equal(t, tt.want, SameDay(tt.b, tt.a))
		})
	}
}

func TestEventsOn(t *testing.T) {
	repo := NewRepository()
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)

	seed(t, repo, "breakfast", day, "08:00")
	seed(t, repo, "dinner", day, "19:00")
	seed(t, repo, "tomorrow", day.AddDate(0, 0, 1), "08:00")

	// Any time of day resolves to the same calendar day.
	matches := repo.EventsOn(day.Add(15 * time.Hour))
	require.Len(t, matches, 2)
	titles := []string{matches[0].Title, matches[1].Title}
	assert.ElementsMatch(t, []string{"breakfast", "dinner"}, titles)

	assert.Empty(t, repo.EventsOn(day.AddDate(0, 0, -1)))
}

func TestUpcomingOrderingAndLimit(t *testing.T) {
	repo := NewRepository()
	now := time.Date(2025, 3, 10, 16, 0, 0, 0, time.Local)
	today := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)

	seed(t, repo, "past", today.AddDate(0, 0, -1), "09:00")
	seed(t, repo, "later today", today, "20:00")
	// Today's morning event is kept even though 09:00 has passed by now.
	seed(t, repo, "this morning", today, "09:00")
	seed(t, repo, "next week", today.AddDate(0, 0, 7), "09:00")
	seed(t, repo, "tomorrow", today.AddDate(0, 0, 1), "09:00")

	got := repo.upcomingAt(now, 10)
	require.Len(t, got, 4)
	assert.Equal(t, "this morning", got[0].Title)
	assert.Equal(t, "later today", got[1].Title)
	assert.Equal(t, "tomorrow", got[2].Title)
	assert.Equal(t, "next week", got[3].Title)

	limited := repo.upcomingAt(now, 2)
	require.Len(t, limited, 2)
	assert.Equal(t, "this morning", limited[0].Title)
	assert.Equal(t, "later today", limited[1].Title)

	assert.Nil(t, repo.upcomingAt(now, 0))
	assert.Nil(t, repo.upcomingAt(now, -1))
}

func TestSorted(t *testing.T) {
	repo := NewRepository()
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)

	seed(t, repo, "c", day.AddDate(0, 0, 2), "08:00")
	seed(t, repo, "b", day, "14:30")
	seed(t, repo, "a", day, "09:15")

	all, omitted := repo.Sorted(0)
	require.Len(t, all, 3)
	assert.Zero(t, omitted)
	assert.Equal(t, "a", all[0].Title)
	assert.Equal(t, "b", all[1].Title)
	assert.Equal(t, "c", all[2].Title)

	capped, omitted := repo.Sorted(2)
	require.Len(t, capped, 2)
	assert.Equal(t, 1, omitted)
	assert.Equal(t, "a", capped[0].Title)
}
