package commands

import (
	"fmt"
	"os"
	"time"

	"agenda/pkg/store"
)

// HandleAddEvent processes the --add command, seeding a single event into
// the session store before the UI starts.
func HandleAddEvent(repo *store.Repository, title, dateStr, timeStr, color string) {
	date := time.Now()
	if dateStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil {
			fmt.Printf("Error parsing date: %v\n", err)
			os.Exit(1)
		}
		date = parsed
	}

	if timeStr == "" {
		timeStr = "09:00"
	}
	if _, err := time.Parse("15:04", timeStr); err != nil {
		fmt.Printf("Error parsing time: %v\n", err)
		os.Exit(1)
	}

	event, err := repo.Create(store.Draft{
		Title:    title,
		Date:     date,
		Time:     timeStr,
		Color:    color,
		Priority: store.PriorityMedium,
		Reminder: store.ReminderNone,
	})
	if err != nil {
		fmt.Printf("Error adding event: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Event added: %s (%s %s)\n", event.Title, event.Date.Format("2006-01-02"), event.Time)
}
