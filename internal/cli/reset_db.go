package cli

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aqardash/aqardash/internal/config"
	"github.com/aqardash/aqardash/internal/database"
)

// ResetDBCommand drops and recreates every table, wiping all tenant data.
type ResetDBCommand struct {
	DatabasePath string
	Yes          bool
}

// NewResetDBCommand creates a new ResetDBCommand
func NewResetDBCommand() *ResetDBCommand {
	return &ResetDBCommand{}
}

// ParseFlags parses command line flags
func (cmd *ResetDBCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("reset-db", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file")
	fs.BoolVar(&cmd.Yes, "yes", false, "Skip the confirmation prompt")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s reset-db [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Drop and recreate all tables. THIS DESTROYS ALL DATA,\n")
		fmt.Fprintf(os.Stderr, "including admin accounts, properties, buyers, and marketers.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

// Run executes the reset-db command
func (cmd *ResetDBCommand) Run() error {
	absPath, err := filepath.Abs(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for database: %w", err)
	}

	if !cmd.Yes {
		fmt.Printf("This will DELETE ALL DATA in %s. Type 'yes' to continue: ", absPath)
		var answer string
		fmt.Scanln(&answer)
		if answer != "yes" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	db, err := database.Open(absPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.Recreate(); err != nil {
		return fmt.Errorf("failed to reset database: %w", err)
	}

	fmt.Printf("Database reset at %s\n", absPath)
	return nil
}
