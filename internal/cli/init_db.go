package cli

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aqardash/aqardash/internal/config"
	"github.com/aqardash/aqardash/internal/database"
)

// InitDBCommand creates the database schema without starting the server.
type InitDBCommand struct {
	DatabasePath string
}

// NewInitDBCommand creates a new InitDBCommand
func NewInitDBCommand() *InitDBCommand {
	return &InitDBCommand{}
}

// ParseFlags parses command line flags
func (cmd *InitDBCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("init-db", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s init-db [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Create the database file and all tables. Safe to run on an\n")
		fmt.Fprintf(os.Stderr, "existing database; tables that already exist are left alone.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

// Run executes the init-db command
func (cmd *InitDBCommand) Run() error {
	absPath, err := filepath.Abs(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for database: %w", err)
	}

	db, err := database.NewDatabase(absPath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	fmt.Printf("Database initialized at %s\n", absPath)
	return nil
}
