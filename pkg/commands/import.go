package commands

import (
	"fmt"
	"os"

	ics "github.com/arran4/golang-ical"

	"agenda/pkg/store"
	"agenda/pkg/utils"
)

// HandleImportCommand processes --import commands, seeding the session
// store from an ICS file before the UI starts.
func HandleImportCommand(repo *store.Repository, filename string) {
	count, err := ImportEvents(repo, filename)
	if err != nil {
		fmt.Printf("Error importing events: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Successfully imported %d event(s) from %s\n", count, filename)
}

// ImportEvents reads an ICS file and creates an event per VEVENT. Entries
// without a summary or start time are skipped, not fatal.
func ImportEvents(repo *store.Repository, filename string) (int, error) {
	f, err := os.Open(filename)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	cal, err := ics.ParseCalendar(f)
	if err != nil {
		return 0, fmt.Errorf("parse calendar: %w", err)
	}

	count := 0
	for _, ve := range cal.Events() {
		summary := ve.GetProperty(ics.ComponentPropertySummary)
		if summary == nil || summary.Value == "" {
			utils.Log("Skipping VEVENT %s: no summary", ve.Id())
			continue
		}

		start, err := ve.GetStartAt()
		if err != nil {
			utils.Log("Skipping VEVENT %s: no start time: %v", ve.Id(), err)
			continue
		}
		start = start.Local()

		draft := store.Draft{
			Title:    summary.Value,
			Date:     start,
			Time:     start.Format("15:04"),
			Priority: store.PriorityMedium,
			Reminder: store.ReminderNone,
		}
		if desc := ve.GetProperty(ics.ComponentPropertyDescription); desc != nil {
			draft.Description = desc.Value
		}
		if color := ve.GetProperty(ics.ComponentPropertyColor); color != nil {
			draft.Color = color.Value
		}

		if _, err := repo.Create(draft); err != nil {
			utils.Log("Skipping VEVENT %s: %v", ve.Id(), err)
			continue
		}
		count++
	}

	return count, nil
}
