package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func draftOn(title string, date time.Time, clock string) Draft {
	return Draft{
		Title:    title,
		Date:     date,
		Time:     clock,
		Color:    "#3b82f6",
		Priority: PriorityMedium,
		Reminder: ReminderNone,
	}
}

func TestCreateAssignsUniqueIDs(t *testing.T) {
	repo := NewRepository()
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		event, err := repo.Create(draftOn("meeting", date, "09:00"))
		require.NoError(t, err)
		require.NotEmpty(t, event.ID)
		assert.False(t, seen[event.ID], "duplicate id %s", event.ID)
		seen[event.ID] = true
	}
	assert.Equal(t, 50, repo.Len())
}

func TestCreateRejectsEmptyTitle(t *testing.T) {
	repo := NewRepository()
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)

	for _, title := range []string{"", "   ", "\t\n"} {
		_, err := repo.Create(draftOn(title, date, "09:00"))
		assert.ErrorIs(t, err, ErrEmptyTitle)
	}
	assert.Equal(t, 0, repo.Len())
}

func TestCreateTrimsTitleAndNormalizesDate(t *testing.T) {
	repo := NewRepository()
	afternoon := time.Date(2025, 3, 10, 16, 45, 30, 0, time.Local)

	event, err := repo.Create(draftOn("  dentist  ", afternoon, "09:00"))
	require.NoError(t, err)

	assert.Equal(t, "dentist", event.Title)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local), event.Date)
}

func TestUpdateReplacesAllFieldsPreservingID(t *testing.T) {
	repo := NewRepository()
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)

	created, err := repo.Create(Draft{
		Title:       "standup",
		Date:        date,
		Time:        "09:00",
		Description: "daily sync",
		Color:       "#ff0000",
		Priority:    PriorityHigh,
		Reminder:    Reminder15Min,
	})
	require.NoError(t, err)

	updated, err := repo.Update(created.ID, draftOn("retro", date.AddDate(0, 0, 1), "14:00"))
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "retro", updated.Title)
	assert.Equal(t, "14:00", updated.Time)
	// Full replacement: fields absent from the draft are cleared, not kept.
	assert.Empty(t, updated.Description)
	assert.Equal(t, ReminderNone, updated.Reminder)

	stored, err := repo.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, stored)
	assert.Equal(t, 1, repo.Len())
}

func TestUpdateUnknownID(t *testing.T) {
	repo := NewRepository()
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)

	_, err := repo.Update("missing", draftOn("x", date, "09:00"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	repo := NewRepository()
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)

	keep, err := repo.Create(draftOn("keep", date, "09:00"))
	require.NoError(t, err)
	gone, err := repo.Create(draftOn("gone", date, "10:00"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(gone.ID))
	assert.Equal(t, 1, repo.Len())

	_, err = repo.Get(gone.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.Get(keep.ID)
	assert.NoError(t, err)

	// Deleting twice reports the miss.
	assert.ErrorIs(t, repo.Delete(gone.ID), ErrNotFound)
}

func TestEventsReturnsIsolatedSnapshot(t *testing.T) {
	repo := NewRepository()
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)

	_, err := repo.Create(draftOn("original", date, "09:00"))
	require.NoError(t, err)

	snapshot := repo.Events()
	require.Len(t, snapshot, 1)
	snapshot[0].Title = "tampered"

	fresh := repo.Events()
	assert.Equal(t, "original", fresh[0].Title)
}
