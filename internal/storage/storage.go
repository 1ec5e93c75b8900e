package storage

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/tursodatabase/libsql-client-go/libsql"

	"github.com/dmarinho0/androsim/internal/config"
)

// Storage is the repository collaborator: load/save of regimens, compounds,
// blends and lab samples by identifier. The engine never sees it directly,
// only the ReferenceTable lookups it satisfies.
type Storage struct {
	DB *sql.DB
}

// NewStorage opens the database named by the config file, the
// ANDROSIM_DATABASE_URL environment variable, or the local default, in that
// order of precedence for the override.
func NewStorage() (*Storage, error) {
	// A missing .env is fine, the config file carries the default.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	url := cfg.DB.ConnectionString
	if env := os.Getenv("ANDROSIM_DATABASE_URL"); env != "" {
		url = env
	}

	db, err := sql.Open("libsql", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open db %s: %w", url, err)
	}

	if err := InitializeDB(db); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &Storage{DB: db}, nil
}

// InitializeDB creates the schema when absent.
func InitializeDB(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS compounds (
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL UNIQUE,
            class TEXT NOT NULL,
            ester TEXT,
            half_life_days REAL NOT NULL
        );

        CREATE TABLE IF NOT EXISTS compound_routes (
            compound_id TEXT NOT NULL,
            route TEXT NOT NULL,
            bioavailability REAL NOT NULL,
            absorption_rate REAL NOT NULL,
            PRIMARY KEY (compound_id, route),
            FOREIGN KEY (compound_id) REFERENCES compounds(id) ON DELETE CASCADE
        );

        CREATE TABLE IF NOT EXISTS blends (
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL UNIQUE
        );

        CREATE TABLE IF NOT EXISTS blend_components (
            blend_id TEXT NOT NULL,
            compound_id TEXT NOT NULL,
            concentration_mg_ml REAL NOT NULL,
            PRIMARY KEY (blend_id, compound_id),
            FOREIGN KEY (blend_id) REFERENCES blends(id) ON DELETE CASCADE,
            FOREIGN KEY (compound_id) REFERENCES compounds(id)
        );

        CREATE TABLE IF NOT EXISTS regimens (
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL UNIQUE,
            kind TEXT NOT NULL,
            start TEXT NOT NULL,
            notes TEXT,
            created_at TEXT NOT NULL,
            target_kind TEXT,
            target_ref TEXT,
            dose_mg REAL,
            frequency_days REAL,
            route TEXT,
            total_weeks INTEGER
        );

        CREATE TABLE IF NOT EXISTS stages (
            id TEXT PRIMARY KEY,
            regimen_id TEXT NOT NULL,
            position INTEGER NOT NULL,
            start_week INTEGER NOT NULL,
            duration_weeks INTEGER NOT NULL,
            FOREIGN KEY (regimen_id) REFERENCES regimens(id) ON DELETE CASCADE
        );

        CREATE TABLE IF NOT EXISTS stage_doses (
            id TEXT PRIMARY KEY,
            stage_id TEXT NOT NULL,
            target_kind TEXT NOT NULL,
            target_ref TEXT NOT NULL,
            dose_mg REAL NOT NULL,
            frequency_days REAL NOT NULL,
            route TEXT NOT NULL,
            FOREIGN KEY (stage_id) REFERENCES stages(id) ON DELETE CASCADE
        );

        CREATE TABLE IF NOT EXISTS lab_samples (
            id TEXT PRIMARY KEY,
            regimen_id TEXT NOT NULL,
            taken_at TEXT NOT NULL,
            value REAL NOT NULL,
            unit TEXT,
            FOREIGN KEY (regimen_id) REFERENCES regimens(id) ON DELETE CASCADE
        );
    `)
	return err
}
