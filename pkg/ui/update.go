package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"agenda/pkg/store"
	"agenda/pkg/utils"
)

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case NormalMode:
			switch {
			case key.Matches(msg, m.keyMap.ShowHelp):
				m.mode = HelpViewMode

			case key.Matches(msg, m.keyMap.QuitApp):
				return m, tea.Quit

			case key.Matches(msg, m.keyMap.ToggleView):
				if m.session.CurrentView() == store.ViewCalendar {
					m.session.SetView(store.ViewList)
				} else {
					m.session.SetView(store.ViewCalendar)
				}
				m.loadEvents()

			case key.Matches(msg, m.keyMap.JumpToToday):
				now := time.Now()
				m.calendarMonth = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
				m.calendarSelectedDay = now.Day()

			case key.Matches(msg, m.keyMap.AddEvent):
				if m.session.CurrentView() == store.ViewCalendar {
					m.session.OpenCreate(m.calendarDate())
				} else {
					m.session.OpenCreate(time.Time{})
				}
				m.mode = AddMode
				m.resetInputs()

			case key.Matches(msg, m.keyMap.EditEvent):
				if target := m.editTarget(); target != nil {
					m.session.OpenEdit(*target)
					m.mode = EditMode
					m.populateInputs(*target)
				}

			case key.Matches(msg, m.keyMap.DeleteEvent):
				if target := m.editTarget(); target != nil {
					m.mode = DeleteConfirmMode
					m.deletingEvent = target
				}

			case key.Matches(msg, m.keyMap.PrevMonth):
				if m.session.CurrentView() == store.ViewCalendar {
					m.calendarMonth = m.calendarMonth.AddDate(0, -1, 0)
					m.clampSelectedDay()
				}

			case key.Matches(msg, m.keyMap.NextMonth):
				if m.session.CurrentView() == store.ViewCalendar {
					m.calendarMonth = m.calendarMonth.AddDate(0, 1, 0)
					m.clampSelectedDay()
				}

			// Calendar navigation (only when in calendar view)
			case key.Matches(msg, m.keyMap.CalendarLeft) && m.session.CurrentView() == store.ViewCalendar:
				if m.calendarSelectedDay > 1 {
					m.calendarSelectedDay--
				} else {
					// Move to previous month and set to last day
					m.calendarMonth = m.calendarMonth.AddDate(0, -1, 0)
					m.calendarSelectedDay = lastDayOf(m.calendarMonth)
				}

			case key.Matches(msg, m.keyMap.CalendarRight) && m.session.CurrentView() == store.ViewCalendar:
				if m.calendarSelectedDay < lastDayOf(m.calendarMonth) {
					m.calendarSelectedDay++
				} else {
					// Move to next month and set to first day
					m.calendarMonth = m.calendarMonth.AddDate(0, 1, 0)
					m.calendarSelectedDay = 1
				}

			case key.Matches(msg, m.keyMap.CalendarUp) && m.session.CurrentView() == store.ViewCalendar:
				newDay := m.calendarSelectedDay - 7
				if newDay < 1 {
					m.calendarMonth = m.calendarMonth.AddDate(0, -1, 0)
					m.calendarSelectedDay = lastDayOf(m.calendarMonth) + newDay
					if m.calendarSelectedDay < 1 {
						m.calendarSelectedDay = 1
					}
				} else {
					m.calendarSelectedDay = newDay
				}

			case key.Matches(msg, m.keyMap.CalendarDown) && m.session.CurrentView() == store.ViewCalendar:
				lastDay := lastDayOf(m.calendarMonth)
				newDay := m.calendarSelectedDay + 7
				if newDay > lastDay {
					m.calendarMonth = m.calendarMonth.AddDate(0, 1, 0)
					m.calendarSelectedDay = newDay - lastDay
				} else {
					m.calendarSelectedDay = newDay
				}

			case key.Matches(msg, m.keyMap.CalendarSelect) && m.session.CurrentView() == store.ViewCalendar:
				// Open the create form pre-filled with the selected day
				m.session.OpenCreate(m.calendarDate())
				m.mode = AddMode
				m.resetInputs()
			}

		case AddMode, EditMode:
			switch msg.String() {
			case "esc":
				m.err = nil
				m.closeForm()

			case "tab":
				m.focusNextInput()

			case "shift+tab":
				m.focusPreviousInput()

			case "left":
				if !isTextField(m.activeInput) {
					m.cycleSelector(-1)
				}

			case "right":
				if !isTextField(m.activeInput) {
					m.cycleSelector(1)
				}

			case "enter":
				if m.activeInput == m.lastField() {
					m.submitForm()
				} else {
					m.focusNextInput()
				}
			}

			// Handle input updates for the active text field
			if m.mode != NormalMode && isTextField(m.activeInput) {
				m.inputs[m.activeInput], cmd = m.inputs[m.activeInput].Update(msg)
				cmds = append(cmds, cmd)
			}

		case DeleteConfirmMode:
			// Handle delete confirmation
			switch msg.String() {
			case "y", "Y":
				m.deleteEvent()
				m.mode = NormalMode

			case "n", "N", "esc":
				m.mode = NormalMode
				m.deletingEvent = nil
			}

		case HelpViewMode:
			switch msg.String() {
			case "esc", "ctrl+b":
				m.mode = NormalMode
			}
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table.SetWidth(msg.Width - 4)
		m.table.SetHeight(msg.Height - 8)
	}

	// Only update the table while browsing the list
	if m.mode == NormalMode && m.session.CurrentView() == store.ViewList {
		m.table, cmd = m.table.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// editTarget picks the event an edit/delete intent refers to: the list
// cursor in list view, the first event on the selected day in calendar view.
func (m *Model) editTarget() *store.Event {
	if m.session.CurrentView() == store.ViewList {
		return m.selectedEvent()
	}
	events := m.repo.EventsOn(m.calendarDate())
	if len(events) == 0 {
		return nil
	}
	utils.Log("Calendar edit target: %s", events[0].ID)
	return &events[0]
}

// clampSelectedDay keeps the selection inside the month after month jumps.
func (m *Model) clampSelectedDay() {
	if last := lastDayOf(m.calendarMonth); m.calendarSelectedDay > last {
		m.calendarSelectedDay = last
	}
}

// lastDayOf returns the number of days in the month containing t.
func lastDayOf(month time.Time) int {
	return time.Date(month.Year(), month.Month()+1, 0, 0, 0, 0, 0, month.Location()).Day()
}
