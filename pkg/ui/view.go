package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"agenda/pkg/store"
)

// View renders the UI based on the current mode
func (m Model) View() string {
	var sb strings.Builder

	switch m.mode {
	case NormalMode:
		titleBar := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(m.styles.SelectedTextColor)).
			Background(lipgloss.Color(m.styles.AccentColor)).
			Padding(0, 1).
			Render(" Agenda ")
		sb.WriteString(titleBar)
		sb.WriteString("\n\n")

		switch m.session.CurrentView() {
		case store.ViewCalendar:
			sb.WriteString(m.renderCalendar())
		default:
			sb.WriteString(m.renderList())
		}

	case AddMode:
		sb.WriteString(lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(m.styles.SelectedTextColor)).
			Background(lipgloss.Color(m.styles.AccentColor)).
			Padding(0, 1).
			Render(" New Event "))
		sb.WriteString("\n\n")
		sb.WriteString(m.renderForm())

	case EditMode:
		sb.WriteString(lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(m.styles.SelectedTextColor)).
			Background(lipgloss.Color(m.styles.AccentColor)).
			Padding(0, 1).
			Render(" Edit Event "))
		sb.WriteString("\n\n")
		sb.WriteString(m.renderForm())

	case DeleteConfirmMode:
		sb.WriteString(lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(m.styles.SelectedTextColor)).
			Background(lipgloss.Color(m.styles.ErrorColor)).
			Padding(0, 1).
			Render(" Delete Event "))
		sb.WriteString("\n\n")

		if m.deletingEvent != nil {
			sb.WriteString("Are you sure you want to delete this event?\n\n")
			sb.WriteString(fmt.Sprintf("Title: %s\n", m.deletingEvent.Title))
			sb.WriteString(fmt.Sprintf("Date: %s %s\n", m.deletingEvent.Date.Format("2006-01-02"), m.deletingEvent.Time))
			if m.deletingEvent.Description != "" {
				sb.WriteString(fmt.Sprintf("Description: %s\n", m.deletingEvent.Description))
			}
			sb.WriteString("\n")
			sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Press Y to confirm, N to cancel"))
		}

	case HelpViewMode:
		// Fullscreen commands view
		sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Available Commands"))
		sb.WriteString("\n\n")

		keyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.styles.AccentColor)).
			Bold(true)
		descStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.styles.NormalTextColor))

		addCommand := func(binding key.Binding) {
			sb.WriteString(fmt.Sprintf("%s: %s\n",
				descStyle.Render(binding.Help().Desc),
				keyStyle.Render(binding.Help().Key)))
		}

		addCommand(m.keyMap.QuitApp)
		addCommand(m.keyMap.ShowHelp)
		addCommand(m.keyMap.AddEvent)
		addCommand(m.keyMap.EditEvent)
		addCommand(m.keyMap.DeleteEvent)
		addCommand(m.keyMap.ToggleView)

		sb.WriteString("\n")
		sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Calendar Commands"))
		sb.WriteString("\n\n")
		addCommand(m.keyMap.CalendarLeft)
		addCommand(m.keyMap.CalendarRight)
		addCommand(m.keyMap.CalendarUp)
		addCommand(m.keyMap.CalendarDown)
		addCommand(m.keyMap.CalendarSelect)
		addCommand(m.keyMap.PrevMonth)
		addCommand(m.keyMap.NextMonth)
		addCommand(m.keyMap.JumpToToday)
	}

	// Error message if any
	if m.err != nil {
		sb.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.styles.ErrorColor)).
			Render(fmt.Sprintf("\n\nError: %v", m.err)))
	}

	sb.WriteString("\n")
	sb.WriteString(m.helpBar())

	return sb.String()
}

// renderList renders the all-events list with the upcoming sidebar beneath.
func (m Model) renderList() string {
	var sb strings.Builder

	sb.WriteString(m.table.View())
	sb.WriteString("\n")

	info := fmt.Sprintf("Showing all %d event(s)", len(m.listEvents))
	if m.omitted > 0 {
		info += fmt.Sprintf(" (%d more omitted)", m.omitted)
	}
	sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.NormalTextColor)).Render(info))
	sb.WriteString("\n\n")
	sb.WriteString(m.renderUpcoming())

	return sb.String()
}

// renderUpcoming renders the next-events summary block.
func (m Model) renderUpcoming() string {
	var sb strings.Builder

	header := lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.Color(m.styles.AccentColor)).
		Render("Upcoming Events")
	sb.WriteString(header)
	sb.WriteString("\n")

	upcoming := m.repo.Upcoming(m.config.UpcomingLimit)
	if len(upcoming) == 0 {
		sb.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.styles.NormalTextColor)).
			Render("No upcoming events"))
		return sb.String()
	}

	for _, event := range upcoming {
		sb.WriteString(fmt.Sprintf("  %s %s  %s\n",
			event.Date.Format("Jan 02"), event.Time, event.Title))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// helpBar renders a sleek status bar with available actions
func (m Model) helpBar() string {
	var actions []string

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.AccentColor)).
		Bold(true)
	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.NormalTextColor))
	separatorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.BorderColor))

	separator := separatorStyle.Render(" • ")

	addAction := func(k, desc string) {
		actions = append(actions, fmt.Sprintf("%s %s", keyStyle.Render(k), descStyle.Render(desc)))
	}

	switch m.mode {
	case NormalMode:
		if m.session.CurrentView() == store.ViewCalendar {
			addAction("←↑↓→", "nav")
			addAction("enter", "new event")
			addAction("e", "edit")
			addAction("d", "del")
			addAction("h", "today")
			addAction("ctrl+v", "list")
		} else {
			addAction("a", "add")
			addAction("e", "edit")
			addAction("d", "del")
			addAction("ctrl+v", "calendar")
		}
		addAction("ctrl+b", "help")
		addAction("q", "quit")

	case AddMode, EditMode:
		addAction("tab", "next field")
		addAction("←/→", "change option")
		addAction("enter", "save")
		addAction("esc", "cancel")

	case DeleteConfirmMode:
		addAction("y", "confirm")
		addAction("n", "cancel")

	case HelpViewMode:
		addAction("ctrl+b/esc", "back")
		addAction("q", "quit")
	}

	return strings.Join(actions, separator)
}

// renderForm renders the input form for adding/editing events
func (m Model) renderForm() string {
	var sb strings.Builder

	sb.WriteString("Title:\n")
	sb.WriteString(m.inputs[fieldTitle].View())
	sb.WriteString("\n\n")

	sb.WriteString("Date (YYYY-MM-DD):\n")
	sb.WriteString(m.inputs[fieldDate].View())
	sb.WriteString("\n\n")

	sb.WriteString("Time (HH:MM):\n")
	sb.WriteString(m.inputs[fieldTime].View())
	sb.WriteString("\n\n")

	sb.WriteString("Description:\n")
	sb.WriteString(m.inputs[fieldDescription].View())
	sb.WriteString("\n\n")

	sb.WriteString("Color:\n")
	sb.WriteString(m.inputs[fieldColor].View())
	sb.WriteString("\n\n")

	sb.WriteString("Priority: ")
	sb.WriteString(m.renderSelector(fieldPriority))
	sb.WriteString("\n\n")

	sb.WriteString("Reminder: ")
	sb.WriteString(m.renderSelector(fieldReminder))
	sb.WriteString("\n")

	if m.customVisible() {
		sb.WriteString("\nRemind before - days / hours / minutes:\n")
		sb.WriteString(m.inputs[fieldCustomDays].View())
		sb.WriteString("  ")
		sb.WriteString(m.inputs[fieldCustomHours].View())
		sb.WriteString("  ")
		sb.WriteString(m.inputs[fieldCustomMinutes].View())
		sb.WriteString("\n")
	}

	return sb.String()
}

// renderSelector renders a cycled option field with the current choice
// highlighted when the field is active.
func (m Model) renderSelector(field int) string {
	var value string
	switch field {
	case fieldPriority:
		value = string(priorityOptions[m.priorityIdx])
	case fieldReminder:
		value = string(reminderOptions[m.reminderIdx])
	}

	style := lipgloss.NewStyle()
	if m.activeInput == field {
		style = style.Bold(true).
			Foreground(lipgloss.Color(m.styles.SelectedTextColor)).
			Background(lipgloss.Color(m.styles.SelectedBgColor))
		return style.Render(fmt.Sprintf("◀ %s ▶", value))
	}
	return style.Render(value)
}

// renderCalendar renders the month calendar view
func (m Model) renderCalendar() string {
	var sb strings.Builder

	firstDay := m.calendarMonth
	firstWeekday := int(firstDay.Weekday())
	daysInMonth := lastDayOf(firstDay)

	monthYearHeader := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(m.styles.SelectedTextColor)).
		Background(lipgloss.Color(m.styles.AccentColor)).
		Padding(0, 1).
		Render(" " + firstDay.Format("January 2006") + " ")
	sb.WriteString(monthYearHeader)
	sb.WriteString("\n\n")

	weekdays := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	weekdayRow := ""
	for _, day := range weekdays {
		weekdayRow += fmt.Sprintf("%-4s", day)
	}
	sb.WriteString(lipgloss.NewStyle().Bold(true).Render(weekdayRow))
	sb.WriteString("\n")

	// Days in this month that have events
	daysWithEvents := make(map[int]bool)
	for _, event := range m.repo.Events() {
		if event.Date.Year() == firstDay.Year() && event.Date.Month() == firstDay.Month() {
			daysWithEvents[event.Date.Day()] = true
		}
	}

	today := time.Now()
	currentDay := 1

	for week := 0; week < 6; week++ {
		if currentDay > daysInMonth {
			break
		}

		row := ""
		for weekday := 0; weekday < 7; weekday++ {
			if week == 0 && weekday < firstWeekday {
				row += "    "
			} else if currentDay <= daysInMonth {
				dayStyle := lipgloss.NewStyle()

				isSelected := currentDay == m.calendarSelectedDay
				isToday := today.Year() == firstDay.Year() &&
					today.Month() == firstDay.Month() &&
					today.Day() == currentDay
				hasEvent := daysWithEvents[currentDay]

				if isSelected {
					dayStyle = dayStyle.Background(lipgloss.Color(m.styles.AccentColor)).
						Foreground(lipgloss.Color(m.styles.SelectedTextColor)).Bold(true)
				} else if isToday {
					dayStyle = dayStyle.Background(lipgloss.Color(m.styles.SelectedBgColor)).
						Foreground(lipgloss.Color(m.styles.SelectedTextColor))
				} else if hasEvent {
					dayStyle = dayStyle.Foreground(lipgloss.Color(m.styles.AccentColor)).Bold(true)
				}

				row += dayStyle.Render(fmt.Sprintf("%-4d", currentDay))
				currentDay++
			} else {
				row += "    "
			}
		}

		sb.WriteString(row)
		sb.WriteString("\n")
	}

	// Events on the selected day
	sb.WriteString("\n")
	selected := m.calendarDate()
	dayEvents := m.repo.EventsOn(selected)
	header := lipgloss.NewStyle().Bold(true).
		Render(fmt.Sprintf("Events on %s:", selected.Format("2006-01-02")))
	sb.WriteString(header)
	sb.WriteString("\n")
	if len(dayEvents) == 0 {
		sb.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.styles.NormalTextColor)).
			Render("  (none)"))
		sb.WriteString("\n")
	} else {
		for _, event := range dayEvents {
			sb.WriteString("  " + m.eventRowText(event) + "\n")
		}
	}

	return sb.String()
}
