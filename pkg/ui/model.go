package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"agenda/pkg/config"
	"agenda/pkg/keymaps"
	"agenda/pkg/reminder"
	"agenda/pkg/store"
)

// InputMode represents the current input mode
type InputMode int

const (
	NormalMode InputMode = iota
	AddMode
	EditMode
	DeleteConfirmMode
	HelpViewMode
)

// Form field order. Priority and reminder are cycled selectors, the rest
// are text inputs. The custom offset fields only participate when the
// reminder selector sits on "custom".
const (
	fieldTitle = iota
	fieldDate
	fieldTime
	fieldDescription
	fieldColor
	fieldPriority
	fieldReminder
	fieldCustomDays
	fieldCustomHours
	fieldCustomMinutes
	fieldCount
)

var priorityOptions = []store.Priority{
	store.PriorityLow,
	store.PriorityMedium,
	store.PriorityHigh,
	store.PriorityUrgent,
}

var reminderOptions = []store.Reminder{
	store.ReminderNone,
	store.Reminder15Min,
	store.Reminder30Min,
	store.ReminderHour,
	store.ReminderDay,
	store.ReminderCustom,
}

// Model represents the application state
type Model struct {
	repo      *store.Repository
	session   *store.Session
	scheduler *reminder.Scheduler

	table         table.Model
	listEvents    []store.Event
	omitted       int
	width, height int
	err           error

	// Configuration
	config config.Config
	styles config.Styles
	keyMap keymaps.KeyMap

	// Form state
	mode        InputMode
	inputs      []textinput.Model
	activeInput int
	priorityIdx int
	reminderIdx int

	// Delete state
	deletingEvent *store.Event

	calendarMonth       time.Time
	calendarSelectedDay int // Selected day in calendar view (1-31)
}

// NewModel creates a new UI model around the session store
func NewModel(repo *store.Repository, scheduler *reminder.Scheduler, cfg config.Config, styles config.Styles) Model {
	columns := []table.Column{
		{Title: "", Width: 70},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.HiddenBorder()).
		BorderBottom(false).
		Bold(false).
		Foreground(lipgloss.NoColor{})
	s.Selected = s.Selected.
		Foreground(lipgloss.Color(styles.SelectedTextColor)).
		Background(lipgloss.Color(styles.SelectedBgColor)).
		Bold(true)
	t.SetStyles(s)

	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}
	inputs[fieldTitle].Placeholder = "Title"
	inputs[fieldDate].Placeholder = "Date (YYYY-MM-DD)"
	inputs[fieldTime].Placeholder = "Time (HH:MM)"
	inputs[fieldDescription].Placeholder = "Description (optional)"
	inputs[fieldColor].Placeholder = "Color"
	inputs[fieldCustomDays].Placeholder = "0"
	inputs[fieldCustomDays].Width = 6
	inputs[fieldCustomHours].Placeholder = "0"
	inputs[fieldCustomHours].Width = 6
	inputs[fieldCustomMinutes].Placeholder = "0"
	inputs[fieldCustomMinutes].Width = 6

	now := time.Now()
	m := Model{
		repo:                repo,
		session:             store.NewSession(),
		scheduler:           scheduler,
		table:               t,
		config:              cfg,
		styles:              styles,
		keyMap:              keymaps.BuildKeyMap(cfg.KeyMap),
		mode:                NormalMode,
		inputs:              inputs,
		calendarMonth:       time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()),
		calendarSelectedDay: now.Day(),
	}

	// Load initial data
	m.loadEvents()

	return m
}

// Init initializes the model (required by Bubble Tea Model interface)
func (m Model) Init() tea.Cmd {
	return nil
}
