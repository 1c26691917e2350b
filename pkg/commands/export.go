package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"agenda/pkg/reminder"
	"agenda/pkg/store"
)

// HandleExportCommand processes --export commands
func HandleExportCommand(repo *store.Repository, filename, exportType string) {
	count, err := ExportEvents(repo, filename, exportType)
	if err != nil {
		fmt.Printf("Error exporting events: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Successfully exported %d event(s) to %s\n", count, filename)
}

// ExportEvents writes all stored events to filename. Supported types are
// "ics" and "json"; an empty type is inferred from the file extension.
func ExportEvents(repo *store.Repository, filename, exportType string) (int, error) {
	events, _ := repo.Sorted(0)

	if exportType == "" {
		exportType = strings.TrimPrefix(filepath.Ext(filename), ".")
	}

	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, err
	}

	var content []byte
	switch exportType {
	case "json":
		data, err := json.MarshalIndent(events, "", "  ")
		if err != nil {
			return 0, err
		}
		content = data
	case "ics":
		content = []byte(BuildCalendar(events).Serialize())
	default:
		return 0, fmt.Errorf("unknown export type: %s", exportType)
	}

	if err := os.WriteFile(filename, content, 0644); err != nil {
		return 0, err
	}
	return len(events), nil
}

// BuildCalendar renders events as an iCalendar object, carrying reminders
// over as display alarms.
func BuildCalendar(events []store.Event) *ics.Calendar {
	cal := ics.NewCalendar()
	cal.SetProductId("-//agenda//Event Export//EN")
	cal.SetMethod(ics.MethodPublish)

	for _, event := range events {
		ve := cal.AddEvent(event.ID)
		ve.SetSummary(event.Title)
		ve.SetDtStampTime(time.Now())
		ve.SetStartAt(event.StartAt())
		if event.Description != "" {
			ve.SetDescription(event.Description)
		}
		if event.Color != "" {
			ve.SetColor(event.Color)
		}
		ve.SetPriority(icalPriority(event.Priority))

		if trigger, ok := alarmTrigger(event); ok {
			alarm := ve.AddAlarm()
			alarm.SetAction(ics.ActionDisplay)
			alarm.SetDescription(event.Title)
			alarm.SetTrigger(trigger)
		}
	}
	return cal
}

// icalPriority maps the four-level priority onto RFC 5545's 1..9 scale.
func icalPriority(p store.Priority) int {
	switch p {
	case store.PriorityUrgent:
		return 1
	case store.PriorityHigh:
		return 3
	case store.PriorityMedium:
		return 5
	case store.PriorityLow:
		return 7
	default:
		return 0
	}
}

// alarmTrigger renders the event's reminder offset as an ISO 8601 negative
// duration (e.g. -PT15M, -P1DT2H30M).
func alarmTrigger(event store.Event) (string, bool) {
	fireAt, ok := reminder.FireAt(event)
	if !ok {
		return "", false
	}

	offset := event.StartAt().Sub(fireAt)
	if offset <= 0 {
		return "-PT0M", true
	}

	days := int(offset / (24 * time.Hour))
	offset -= time.Duration(days) * 24 * time.Hour
	hours := int(offset / time.Hour)
	offset -= time.Duration(hours) * time.Hour
	minutes := int(offset / time.Minute)

	var sb strings.Builder
	sb.WriteString("-P")
	if days > 0 {
		fmt.Fprintf(&sb, "%dD", days)
	}
	if hours > 0 || minutes > 0 {
		sb.WriteString("T")
		if hours > 0 {
			fmt.Fprintf(&sb, "%dH", hours)
		}
		if minutes > 0 {
			fmt.Fprintf(&sb, "%dM", minutes)
		}
	}
	if days == 0 && hours == 0 && minutes == 0 {
		sb.WriteString("T0M")
	}
	return sb.String(), true
}
