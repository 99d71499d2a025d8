package database

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/aqardash/aqardash/internal/entities"
)

type Database struct {
	DB *gorm.DB
}

// NewDatabase opens the SQLite store at dbPath and ensures the schema exists.
// Initialize is idempotent, so calling this on every process start is safe.
func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	database := &Database{DB: db}

	if err := database.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return database, nil
}

// Open connects to the store without touching the schema. Used by the reset
// flow and by callers that manage migration themselves.
func Open(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return &Database{DB: db}, nil
}

// Initialize creates the six tables and their constraints if absent.
func (d *Database) Initialize() error {
	err := d.DB.AutoMigrate(
		&entities.Admin{},
		&entities.Marketer{},
		&entities.Property{},
		&entities.Buyer{},
		&entities.PropertyMarketerLink{},
		&entities.PropertyBuyerLink{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// Recreate drops all tables in dependency order (children before parents) and
// rebuilds the schema. Destructive; reachable only from the reset-db command,
// never from a request path.
func (d *Database) Recreate() error {
	migrator := d.DB.Migrator()
	tables := []any{
		&entities.PropertyBuyerLink{},
		&entities.PropertyMarketerLink{},
		&entities.Buyer{},
		&entities.Property{},
		&entities.Marketer{},
		&entities.Admin{},
	}
	for _, table := range tables {
		if err := migrator.DropTable(table); err != nil {
			return fmt.Errorf("failed to drop table: %w", err)
		}
	}
	return d.Initialize()
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
