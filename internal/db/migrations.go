package db

import (
	"fmt"

	"gorm.io/gorm"
)

// Schema matches the original data file layout: opaque string keys, no
// declared foreign keys (clients are never deleted, so no cascade policy).
var migrationStatements = []string{
	`CREATE TABLE IF NOT EXISTS clients (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		phone TEXT,
		address TEXT,
		price_fardo REAL DEFAULT 0,
		price_botellon REAL DEFAULT 0,
		created_at DATETIME NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS visits (
		id TEXT PRIMARY KEY,
		client_id TEXT NOT NULL,
		date TEXT NOT NULL,
		qty_fardo INTEGER DEFAULT 0,
		qty_botellon INTEGER DEFAULT 0,
		unit_price_fardo REAL DEFAULT 0,
		unit_price_botellon REAL DEFAULT 0,
		subtotal REAL DEFAULT 0,
		vacios_recogidos INTEGER DEFAULT 0,
		note TEXT,
		created_at DATETIME NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS idx_visits_date ON visits (date);`,
	`CREATE INDEX IF NOT EXISTS idx_visits_client_id ON visits (client_id);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
