package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/taxbridge/taxbridge/dto"
)

const schema = `
CREATE TABLE IF NOT EXISTS transactions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	statement_id TEXT NOT NULL,
	date TEXT,
	description TEXT NOT NULL,
	amount REAL NOT NULL,
	category TEXT,
	gst_rate INTEGER NOT NULL DEFAULT 0,
	gst_input REAL NOT NULL DEFAULT 0,
	deductible INTEGER NOT NULL DEFAULT 0,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_transactions_statement ON transactions(statement_id);
`

// Store is the append-only persistence collaborator. The pipeline writes
// classified record sets into it and never reads them back.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at dbPath.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &Store{db: db}, nil
}

// Init creates tables if they don't exist.
func (s *Store) Init() error {
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveTransactions appends one statement's classified records under a
// shared statement identifier. The insert is transactional: a statement is
// persisted whole or not at all.
func (s *Store) SaveTransactions(statementID string, records []dto.Transaction) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO transactions (
			statement_id, date, description, amount, category, gst_rate, gst_input, deductible
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		deductible := 0
		if rec.Deductible {
			deductible = 1
		}
		if _, err := stmt.Exec(
			statementID, rec.Date, rec.Description, rec.Amount,
			rec.Category, rec.GSTRate, rec.GSTInput, deductible,
		); err != nil {
			return fmt.Errorf("insert transaction: %w", err)
		}
	}
	return tx.Commit()
}

// CountTransactions returns the number of stored rows for a statement.
func (s *Store) CountTransactions(statementID string) (int, error) {
	var n int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM transactions WHERE statement_id = ?`, statementID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count transactions: %w", err)
	}
	return n, nil
}
