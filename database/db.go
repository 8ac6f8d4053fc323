package database

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/crypto/bcrypt"

	"github.com/howardchatman/chatmaninc/logging"
)

var DB *sql.DB

// InitDB opens the sqlite store, creates missing tables and seeds the
// bootstrap rows. Safe to call on an existing database.
func InitDB(path, adminUser, adminPassword string) error {
	var err error
	DB, err = sql.Open("sqlite3", path)
	if err != nil {
		return err
	}

	if err := createTables(); err != nil {
		return err
	}
	return seedData(adminUser, adminPassword)
}

func createTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'STAFF'
		);`,
		`CREATE TABLE IF NOT EXISTS settings (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			company_name TEXT DEFAULT 'Chatman Inc',
			contact_email TEXT DEFAULT '',
			timezone TEXT DEFAULT 'America/New_York',
			booking_duration_min INTEGER DEFAULT 30
		);`,
		`CREATE TABLE IF NOT EXISTS leads (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL,
			phone TEXT DEFAULT '',
			company TEXT DEFAULT '',
			industry TEXT DEFAULT '',
			status TEXT NOT NULL DEFAULT 'warm',
			source TEXT NOT NULL DEFAULT 'manual',
			interest TEXT DEFAULT '',
			notes TEXT DEFAULT '',
			score INTEGER NOT NULL DEFAULT 50,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS quotes (
			id TEXT PRIMARY KEY,
			company_name TEXT NOT NULL DEFAULT '',
			industry TEXT DEFAULT '',
			employee_count TEXT DEFAULT '',
			recommended_tier TEXT NOT NULL,
			monthly_total REAL NOT NULL,
			setup_fee REAL NOT NULL,
			annual_total REAL NOT NULL,
			input_json TEXT NOT NULL,
			output_json TEXT NOT NULL,
			lead_id INTEGER,
			created_by TEXT DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS invoices (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			lead_id INTEGER,
			number TEXT NOT NULL,
			total REAL NOT NULL DEFAULT 0,
			status TEXT NOT NULL DEFAULT 'pending',
			due_date TEXT DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS bookings (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			lead_id INTEGER,
			name TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL DEFAULT '',
			start_time DATETIME NOT NULL,
			end_time DATETIME NOT NULL,
			status TEXT NOT NULL DEFAULT 'confirmed',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
	}

	for _, query := range queries {
		if _, err := DB.Exec(query); err != nil {
			logging.Log.Errorw("create table failed", "error", err)
			return err
		}
	}
	return nil
}

func seedData(adminUser, adminPassword string) error {
	// Singleton settings row
	if _, err := DB.Exec("INSERT OR IGNORE INTO settings (id) VALUES (1)"); err != nil {
		return err
	}

	// Bootstrap admin on first run only
	var userCount int
	if err := DB.QueryRow("SELECT count(*) FROM users").Scan(&userCount); err != nil {
		return err
	}
	if userCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		if _, err := DB.Exec("INSERT INTO users (username, password_hash, role) VALUES (?, ?, 'ADMIN')", adminUser, string(hash)); err != nil {
			return err
		}
		logging.Log.Infow("seeded admin user", "username", adminUser)
	}
	return nil
}
