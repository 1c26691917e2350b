package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"agenda/pkg/cli"
	"agenda/pkg/config"
	"agenda/pkg/notify"
	"agenda/pkg/reminder"
	"agenda/pkg/store"
	"agenda/pkg/ui"
	"agenda/pkg/utils"
)

func main() {
	// Parse command line arguments
	args := cli.ParseArgs()

	// Load configuration
	cfg, styles, err := config.Load(args.ConfigPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	utils.InitLogger(args.Verbose)
	utils.Log("Starting agenda")

	repo := store.NewRepository()

	// Handle one-shot CLI commands; seeding commands fall through to the UI
	if cli.HandleCommands(repo, args, cfg.DefaultColor) {
		return
	}

	notifier := notify.NewDesktop("agenda")
	scheduler := reminder.NewScheduler(notifier)
	for _, event := range repo.Events() {
		scheduler.Schedule(event)
	}

	// Create and run the Bubble Tea program
	p := tea.NewProgram(ui.NewModel(repo, scheduler, cfg, styles), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
