package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/lib/pq"
)

var DB *sql.DB

const schema = `
CREATE TABLE IF NOT EXISTS stock_entry (
	id       BIGSERIAL PRIMARY KEY,
	date     DATE        NOT NULL,
	fruit    VARCHAR(16) NOT NULL,
	quantity INTEGER     NOT NULL CHECK (quantity >= 0),
	UNIQUE (date, fruit)
);
CREATE INDEX IF NOT EXISTS stock_entry_date_idx ON stock_entry (date);
`

func Connect(connStr string) error {
	if connStr == "" {
		slog.Warn("DATABASE_URL environment variable is not set")
	}

	var err error
	DB, err = sql.Open("postgres", connStr)
	if err != nil {
		return err
	}

	DB.SetMaxOpenConns(25)
	DB.SetMaxIdleConns(25)
	DB.SetConnMaxLifetime(5 * time.Minute)

	return DB.Ping()
}

// EnsureSchema creates the stock_entry table when it is missing.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

func Close() {
	if DB != nil {
		DB.Close()
	}
}
