package storage

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	_ "github.com/tursodatabase/libsql-client-go/libsql"

	"github.com/calistheniq/calistheniq/internal/config"
)

type Storage struct {
	DB *sql.DB
}

func NewStorage() *Storage {
	_ = godotenv.Load()

	url := os.Getenv("TURSO_DATABASE_URL")
	if url == "" {
		if cfg, err := config.LoadConfig(); err == nil {
			url = cfg.DB.ConnectionString
		}
	}
	if url == "" {
		fmt.Fprintln(os.Stderr, "No database configured: set TURSO_DATABASE_URL or database.connection_string in config.toml")
		os.Exit(1)
	}

	db, err := sql.Open("libsql", url)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open db %s: %s", url, err)
		os.Exit(1)
	}

	if err := InitializeDB(db); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize database: %v", err)
		os.Exit(1)
	}

	logrus.WithField("url", url).Debug("storage ready")
	return &Storage{DB: db}
}

func InitializeDB(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS users (
            id TEXT PRIMARY KEY,
            push_level INTEGER NOT NULL DEFAULT 1,
            pull_level INTEGER NOT NULL DEFAULT 1,
            squat_level INTEGER NOT NULL DEFAULT 1,
            created_at TEXT NOT NULL
        );

        CREATE TABLE IF NOT EXISTS workout_sessions (
            id TEXT PRIMARY KEY,
            date TEXT NOT NULL,
            category TEXT NOT NULL,
            level INTEGER NOT NULL,
            notes TEXT
        );

        CREATE TABLE IF NOT EXISTS session_entries (
            id TEXT PRIMARY KEY,
            session_id TEXT NOT NULL,
            position INTEGER NOT NULL,
            exercise_id TEXT NOT NULL,
            target_sets INTEGER NOT NULL,
            target_reps INTEGER NOT NULL,
            checked_sets TEXT NOT NULL,
            actual_reps TEXT NOT NULL,
            actual_hold_seconds TEXT,
            hit_target INTEGER NOT NULL,
            FOREIGN KEY (session_id) REFERENCES workout_sessions(id) ON DELETE CASCADE
        );

        CREATE TABLE IF NOT EXISTS gate_progress (
            category TEXT NOT NULL,
            level INTEGER NOT NULL,
            status TEXT NOT NULL,
            consecutive_passes INTEGER NOT NULL DEFAULT 0,
            last_session_date TEXT,
            PRIMARY KEY (category, level)
        );

        CREATE TABLE IF NOT EXISTS week_progress (
            week_start TEXT PRIMARY KEY,
            push_done INTEGER NOT NULL DEFAULT 0,
            pull_done INTEGER NOT NULL DEFAULT 0,
            squat_done INTEGER NOT NULL DEFAULT 0
        );

        CREATE TABLE IF NOT EXISTS gate_criteria (
            category TEXT NOT NULL,
            level INTEGER NOT NULL,
            required_passes INTEGER NOT NULL,
            PRIMARY KEY (category, level)
        );

        CREATE TABLE IF NOT EXISTS gate_criteria_exercises (
            id TEXT PRIMARY KEY,
            category TEXT NOT NULL,
            level INTEGER NOT NULL,
            position INTEGER NOT NULL,
            exercise_id TEXT NOT NULL,
            target_sets INTEGER NOT NULL,
            metric_kind TEXT NOT NULL,
            metric_value INTEGER NOT NULL,
            FOREIGN KEY (category, level) REFERENCES gate_criteria(category, level) ON DELETE CASCADE
        );
    `)
	return err
}
