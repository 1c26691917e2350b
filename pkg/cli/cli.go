package cli

import (
	"flag"

	"agenda/pkg/commands"
	"agenda/pkg/store"
)

// Args represents parsed command line arguments
type Args struct {
	ConfigPath string
	Verbose    bool

	// Event operations
	AddEvent string
	DateFlag string
	TimeFlag string

	// Import/Export operations
	ImportFile string
	ExportFile string
	TypeFlag   string
}

// ParseArgs parses command line arguments and returns Args struct
func ParseArgs() *Args {
	args := &Args{}

	flag.StringVar(&args.ConfigPath, "config", "", "Path to configuration file")
	flag.BoolVar(&args.Verbose, "verbose", false, "Enable verbose logging")

	// Event operations
	flag.StringVar(&args.AddEvent, "add", "", "Add a new event for this session")
	flag.StringVar(&args.DateFlag, "date", "", "Date for event (YYYY-MM-DD format)")
	flag.StringVar(&args.TimeFlag, "time", "", "Time for event (HH:MM format)")

	// Import/Export operations
	flag.StringVar(&args.ImportFile, "import", "", "Import events from an ICS file")
	flag.StringVar(&args.ExportFile, "export", "", "Export events to file")
	flag.StringVar(&args.TypeFlag, "type", "", "Export file type (ics, json)")

	flag.Parse()
	return args
}

// HandleCommands processes one-shot CLI commands against the session store.
// It returns true when a command consumed the invocation and the UI should
// not start. Seeding commands (add, import) return false so the UI opens
// with the seeded events.
func HandleCommands(repo *store.Repository, args *Args, defaultColor string) bool {
	if args.AddEvent != "" {
		commands.HandleAddEvent(repo, args.AddEvent, args.DateFlag, args.TimeFlag, defaultColor)
	}

	if args.ImportFile != "" {
		commands.HandleImportCommand(repo, args.ImportFile)
	}

	if args.ExportFile != "" {
		commands.HandleExportCommand(repo, args.ExportFile, args.TypeFlag)
		return true
	}

	return false
}
