package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"agenda/pkg/store"
	"agenda/pkg/utils"
)

// loadEvents refreshes the list view from the store, sorted by (date, time).
func (m *Model) loadEvents() {
	m.listEvents, m.omitted = m.repo.Sorted(0)

	tableRows := []table.Row{}
	for _, event := range m.listEvents {
		tableRows = append(tableRows, table.Row{m.eventRowText(event)})
	}
	m.table.SetRows(tableRows)
	if cursor := m.table.Cursor(); cursor >= len(tableRows) && len(tableRows) > 0 {
		m.table.SetCursor(len(tableRows) - 1)
	}
}

// eventRowText renders one list line: date, time, priority badge, title.
func (m *Model) eventRowText(event store.Event) string {
	badge := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.priorityColor(event.Priority))).
		Bold(true).
		Render(fmt.Sprintf("[%s]", event.Priority))

	line := fmt.Sprintf("%s %s  %s %s",
		event.Date.Format("2006-01-02"), event.Time, badge, event.Title)
	if event.Reminder != store.ReminderNone {
		line += lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.styles.NormalTextColor)).
			Render(" (reminder)")
	}
	return line
}

func (m *Model) priorityColor(p store.Priority) string {
	switch p {
	case store.PriorityUrgent:
		return m.styles.PriorityUrgentColor
	case store.PriorityHigh:
		return m.styles.PriorityHighColor
	case store.PriorityMedium:
		return m.styles.PriorityMediumColor
	default:
		return m.styles.PriorityLowColor
	}
}

// selectedEvent returns the event under the list cursor, nil when the list
// is empty.
func (m *Model) selectedEvent() *store.Event {
	if len(m.listEvents) == 0 || m.table.Cursor() >= len(m.listEvents) {
		return nil
	}
	event := m.listEvents[m.table.Cursor()]
	return &event
}

// calendarDate resolves the currently selected calendar cell to a date.
func (m *Model) calendarDate() time.Time {
	return time.Date(m.calendarMonth.Year(), m.calendarMonth.Month(),
		m.calendarSelectedDay, 0, 0, 0, 0, m.calendarMonth.Location())
}

// resetInputs loads the form with defaults for create mode.
func (m *Model) resetInputs() {
	for i := range m.inputs {
		m.inputs[i].Reset()
		m.inputs[i].Blur()
	}

	date := m.session.SelectedDate()
	if date.IsZero() {
		date = time.Now()
	}
	m.inputs[fieldDate].SetValue(date.Format("2006-01-02"))
	m.inputs[fieldTime].SetValue("09:00")
	m.inputs[fieldColor].SetValue(m.config.DefaultColor)

	m.priorityIdx = indexOfPriority(store.PriorityMedium)
	m.reminderIdx = indexOfReminder(store.Reminder(m.config.DefaultReminder))

	m.activeInput = fieldTitle
	m.inputs[fieldTitle].Focus()
}

// populateInputs loads the form from an existing event for edit mode.
func (m *Model) populateInputs(event store.Event) {
	m.resetInputs()
	m.inputs[fieldTitle].SetValue(event.Title)
	m.inputs[fieldDate].SetValue(event.Date.Format("2006-01-02"))
	m.inputs[fieldTime].SetValue(event.Time)
	m.inputs[fieldDescription].SetValue(event.Description)
	m.inputs[fieldColor].SetValue(event.Color)
	m.priorityIdx = indexOfPriority(event.Priority)
	m.reminderIdx = indexOfReminder(event.Reminder)
	if event.Reminder == store.ReminderCustom {
		m.inputs[fieldCustomDays].SetValue(strconv.Itoa(event.CustomReminder.Days))
		m.inputs[fieldCustomHours].SetValue(strconv.Itoa(event.CustomReminder.Hours))
		m.inputs[fieldCustomMinutes].SetValue(strconv.Itoa(event.CustomReminder.Minutes))
	}
}

func indexOfPriority(p store.Priority) int {
	for i, option := range priorityOptions {
		if option == p {
			return i
		}
	}
	return 1 // medium
}

func indexOfReminder(r store.Reminder) int {
	for i, option := range reminderOptions {
		if option == r {
			return i
		}
	}
	return 0 // none
}

// customVisible reports whether the custom offset fields are active.
func (m *Model) customVisible() bool {
	return reminderOptions[m.reminderIdx] == store.ReminderCustom
}

// lastField returns the final form field given the reminder selection.
func (m *Model) lastField() int {
	if m.customVisible() {
		return fieldCustomMinutes
	}
	return fieldReminder
}

// focusNextInput cycles forward through the form fields
func (m *Model) focusNextInput() {
	m.setActiveInput(m.nextField(m.activeInput, 1))
}

// focusPreviousInput cycles backward through the form fields
func (m *Model) focusPreviousInput() {
	m.setActiveInput(m.nextField(m.activeInput, -1))
}

func (m *Model) nextField(from, dir int) int {
	last := m.lastField()
	next := from + dir
	if next > last {
		next = fieldTitle
	}
	if next < fieldTitle {
		next = last
	}
	return next
}

func (m *Model) setActiveInput(field int) {
	m.activeInput = field
	for i := range m.inputs {
		if i == field && isTextField(field) {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

func isTextField(field int) bool {
	return field != fieldPriority && field != fieldReminder
}

// cycleSelector moves the priority/reminder selector under the cursor.
func (m *Model) cycleSelector(dir int) {
	switch m.activeInput {
	case fieldPriority:
		m.priorityIdx = (m.priorityIdx + dir + len(priorityOptions)) % len(priorityOptions)
	case fieldReminder:
		m.reminderIdx = (m.reminderIdx + dir + len(reminderOptions)) % len(reminderOptions)
	}
}

// buildDraft assembles a store draft from the current form values.
func (m *Model) buildDraft() (store.Draft, error) {
	dateStr := strings.TrimSpace(m.inputs[fieldDate].Value())
	date, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		return store.Draft{}, fmt.Errorf("invalid date format: use YYYY-MM-DD")
	}

	timeStr := strings.TrimSpace(m.inputs[fieldTime].Value())
	if _, err := time.Parse("15:04", timeStr); err != nil {
		return store.Draft{}, fmt.Errorf("invalid time format: use HH:MM")
	}

	draft := store.Draft{
		Title:       m.inputs[fieldTitle].Value(),
		Date:        date,
		Time:        timeStr,
		Description: strings.TrimSpace(m.inputs[fieldDescription].Value()),
		Color:       strings.TrimSpace(m.inputs[fieldColor].Value()),
		Priority:    priorityOptions[m.priorityIdx],
		Reminder:    reminderOptions[m.reminderIdx],
	}
	if draft.Color == "" {
		draft.Color = m.config.DefaultColor
	}

	if draft.Reminder == store.ReminderCustom {
		draft.CustomReminder = store.CustomReminder{
			Days:    parseOffset(m.inputs[fieldCustomDays].Value()),
			Hours:   parseOffset(m.inputs[fieldCustomHours].Value()),
			Minutes: parseOffset(m.inputs[fieldCustomMinutes].Value()),
		}
	}

	return draft, nil
}

// parseOffset reads a non-negative integer, treating blanks and junk as 0.
func parseOffset(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// submitForm processes the form data based on the current mode
func (m *Model) submitForm() {
	if !m.session.FormOpen() {
		return // defensive; submit intents only arrive while the form is open
	}

	draft, err := m.buildDraft()
	if err != nil {
		m.err = err
		return
	}

	var event store.Event
	switch m.mode {
	case AddMode:
		event, err = m.repo.Create(draft)
	case EditMode:
		editing := m.session.Editing()
		if editing == nil {
			return
		}
		event, err = m.repo.Update(editing.ID, draft)
	default:
		return
	}
	if err != nil {
		m.err = err
		return
	}

	m.scheduler.Schedule(event)

	m.err = nil
	m.closeForm()
	m.loadEvents()
}

// deleteEvent removes the delete target and retracts its reminder. An event
// already gone via stale UI state counts as deleted.
func (m *Model) deleteEvent() {
	if m.deletingEvent == nil {
		return
	}

	err := m.repo.Delete(m.deletingEvent.ID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		m.err = err
		return
	}
	m.scheduler.Cancel(m.deletingEvent.ID)
	utils.Log("Deleted event via UI: %s", m.deletingEvent.ID)

	m.err = nil
	m.deletingEvent = nil
	m.loadEvents()
}

// closeForm resets the session and returns to normal mode.
func (m *Model) closeForm() {
	m.session.Close()
	m.mode = NormalMode
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
}
