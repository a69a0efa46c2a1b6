// Package store provides a SQLite-backed cache for parsed statement files,
// so unchanged exports are never re-parsed.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite" // register sqlite driver

	"finplan/internal/model"
)

const dateLayout = "2006-01-02"

// Cache provides SQLite-backed transaction caching.
type Cache struct {
	db *sql.DB
}

// Open opens or creates the cache database at the given path.
func Open(dbPath string) (*Cache, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening cache db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Cache{db: db}, nil
}

// Close closes the cache database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// FileInfo holds the tracked mtime and size for a statement file.
type FileInfo struct {
	Bank      string
	MtimeNs   int64
	SizeBytes int64
}

// GetTrackedFiles returns file_path -> FileInfo for all tracked statements.
func (c *Cache) GetTrackedFiles() (map[string]FileInfo, error) {
	rows, err := c.db.Query("SELECT file_path, bank, mtime_ns, size_bytes FROM file_tracker")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	result := make(map[string]FileInfo)
	for rows.Next() {
		var path string
		var fi FileInfo
		if err := rows.Scan(&path, &fi.Bank, &fi.MtimeNs, &fi.SizeBytes); err != nil {
			return nil, err
		}
		result[path] = fi
	}
	return result, rows.Err()
}

// SaveFile replaces the cached transactions for one statement file and
// updates its tracking info.
func (c *Cache) SaveFile(path, bank string, mtimeNs, sizeBytes int64, txs []model.Transaction) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM transactions WHERE file_path = ?", path); err != nil {
		return err
	}

	for _, t := range txs {
		date := ""
		if !t.Date.IsZero() {
			date = t.Date.Format(dateLayout)
		}
		_, err := tx.Exec(`INSERT OR REPLACE INTO transactions
			(tx_id, file_path, bank, booking_date, description, amount, balance, currency, status, category)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			t.ID, path, t.Bank, date, t.Description,
			t.Amount.String(), t.Balance.String(), t.Currency, t.Status, t.Category,
		)
		if err != nil {
			return err
		}
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = tx.Exec(`INSERT OR REPLACE INTO file_tracker (file_path, bank, mtime_ns, size_bytes, parsed_at)
		VALUES (?, ?, ?, ?, ?)`, path, bank, mtimeNs, sizeBytes, now)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// DeleteFile drops a statement file and its transactions from the cache.
func (c *Cache) DeleteFile(path string) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM transactions WHERE file_path = ?", path); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM file_tracker WHERE file_path = ?", path); err != nil {
		return err
	}
	return tx.Commit()
}

// LoadFiles reads the cached transactions for the given statement files.
func (c *Cache) LoadFiles(paths []string) ([]model.Transaction, error) {
	var txs []model.Transaction
	for _, path := range paths {
		rows, err := c.db.Query(`SELECT tx_id, bank, booking_date, description, amount, balance, currency, status, category
			FROM transactions WHERE file_path = ?`, path)
		if err != nil {
			return nil, err
		}

		for rows.Next() {
			var t model.Transaction
			var date, amount string
			var balance, currency, category sql.NullString

			if err := rows.Scan(&t.ID, &t.Bank, &date, &t.Description, &amount, &balance, &currency, &t.Status, &category); err != nil {
				_ = rows.Close()
				return nil, err
			}
			if date != "" {
				t.Date, _ = time.Parse(dateLayout, date)
			}
			t.Amount, err = decimal.NewFromString(amount)
			if err != nil {
				_ = rows.Close()
				return nil, fmt.Errorf("corrupt cached amount %q: %w", amount, err)
			}
			if balance.Valid && balance.String != "" {
				t.Balance, _ = decimal.NewFromString(balance.String)
			}
			t.Currency = currency.String
			t.Category = category.String
			txs = append(txs, t)
		}
		if err := rows.Err(); err != nil {
			_ = rows.Close()
			return nil, err
		}
		_ = rows.Close()
	}
	return txs, nil
}
