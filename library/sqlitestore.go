package library

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore keeps the catalog snapshot in a single SQLite table. It honors
// the same contract as JSONStore: every save rewrites the snapshot in full,
// so the table always mirrors exactly one catalog state.
type SQLiteStore struct {
	db *sqlx.DB
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS books (
    position  INTEGER PRIMARY KEY,
    title     TEXT NOT NULL,
    author    TEXT NOT NULL,
    isbn      TEXT NOT NULL UNIQUE,
    genre     TEXT NOT NULL DEFAULT 'General',
    available BOOLEAN NOT NULL DEFAULT 1,
    loaned_at TIMESTAMP,
    due_at    TIMESTAMP,
    borrower  TEXT
);`

// NewSQLiteStore opens (or creates) the database at dbPath and ensures the
// schema exists.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	// Ensure the directory exists so first-run succeeds.
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000", dbPath)
	db, err := sqlx.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error { return s.db.Close() }

// Save replaces the stored snapshot with books, preserving their order.
func (s *SQLiteStore) Save(books []*Book) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM books`); err != nil {
		return fmt.Errorf("clear snapshot: %w", err)
	}

	const insertBook = `INSERT INTO books
        (position, title, author, isbn, genre, available, loaned_at, due_at, borrower)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for i, b := range books {
		if _, err := tx.Exec(insertBook,
			i+1, b.Title, b.Author, b.ISBN, b.Genre, b.Available,
			b.LoanedAt, b.DueAt, b.Borrower); err != nil {
			return fmt.Errorf("insert %q: %w", b.ISBN, err)
		}
	}
	return tx.Commit()
}

// Load reads the snapshot back in insertion order, applying the same record
// validity rules as the JSON store.
func (s *SQLiteStore) Load() ([]*Book, error) {
	books := []*Book{}
	const selectBooks = `SELECT title, author, isbn, genre, available, loaned_at, due_at, borrower
        FROM books ORDER BY position`
	if err := s.db.Select(&books, selectBooks); err != nil {
		return nil, fmt.Errorf("load snapshot: %v: %w", err, ErrCorruptData)
	}
	for _, b := range books {
		if err := b.validate(); err != nil {
			return nil, err
		}
	}
	return books, nil
}
