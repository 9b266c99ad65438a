package store

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// SQLite stores values in a single key/value table.
type SQLite struct {
	conn *sqlx.DB
}

// OpenSQLite opens or creates the database at path.
func OpenSQLite(path string) (*SQLite, error) {
	// modernc applies _pragma to every pooled connection.
	conn, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	db := &SQLite{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	slog.Info("store opened", "backend", "sqlite", "path", path)
	return db, nil
}

func (db *SQLite) migrate() error {
	_, err := db.conn.Exec(`
	CREATE TABLE IF NOT EXISTS sand_kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`)
	return err
}

func (db *SQLite) Get(key string) (string, error) {
	var value string
	err := db.conn.Get(&value, "SELECT value FROM sand_kv WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	return value, err
}

func (db *SQLite) Set(key, value string) error {
	_, err := db.conn.Exec("INSERT OR REPLACE INTO sand_kv (key, value) VALUES (?, ?)", key, value)
	return err
}

func (db *SQLite) Delete(key string) error {
	_, err := db.conn.Exec("DELETE FROM sand_kv WHERE key = ?", key)
	return err
}

// Close closes the database connection.
func (db *SQLite) Close() error {
	return db.conn.Close()
}
