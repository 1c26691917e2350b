package commands

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agenda/pkg/store"
)

func TestHandleAddEventSeedsRepository(t *testing.T) {
	repo := store.NewRepository()

	HandleAddEvent(repo, "Dentist", "2025-03-10", "14:30", "#3b82f6")

	events := repo.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "Dentist", events[0].Title)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local), events[0].Date)
	assert.Equal(t, "14:30", events[0].Time)
	assert.Equal(t, "#3b82f6", events[0].Color)
	assert.Equal(t, store.PriorityMedium, events[0].Priority)
	assert.Equal(t, store.ReminderNone, events[0].Reminder)
}

func TestHandleAddEventDefaultsTime(t *testing.T) {
	repo := store.NewRepository()

	HandleAddEvent(repo, "Standup", "", "", "")

	events := repo.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "09:00", events[0].Time)
	assert.True(t, store.SameDay(events[0].Date, time.Now()))
}
