// Package sqlite provides a SQLite-backed seed database implementing
// storage.SeedSource and storage.SeedSink.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/zaryabali001/roommate/internal/models"
	"github.com/zaryabali001/roommate/internal/storage"
)

var (
	_ storage.SeedSource = (*SQLiteStore)(nil)
	_ storage.SeedSink   = (*SQLiteStore)(nil)
)

const metaCurrentUser = "current_user_id"

// SQLiteStore stores one seed in a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Open database with pure Go driver
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// Run migrations
	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// LoadSeed reads the stored seed. An empty database yields an empty seed.
func (s *SQLiteStore) LoadSeed(ctx context.Context) (*models.Seed, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	seed := &models.Seed{}

	err = tx.QueryRowContext(ctx, "SELECT value FROM meta WHERE key = ?", metaCurrentUser).Scan(&seed.CurrentUserID)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}

	if seed.Users, err = loadUsers(ctx, tx); err != nil {
		return nil, err
	}
	if seed.Group, err = loadGroup(ctx, tx); err != nil {
		return nil, err
	}
	if seed.Todos, err = loadTodos(ctx, tx); err != nil {
		return nil, err
	}
	if seed.Expenses, err = loadExpenses(ctx, tx); err != nil {
		return nil, err
	}
	if seed.ShoppingItems, err = loadShoppingItems(ctx, tx); err != nil {
		return nil, err
	}
	if seed.CleaningDuty, err = loadCleaningDuty(ctx, tx); err != nil {
		return nil, err
	}
	if seed.LostAndFound, err = loadLostAndFound(ctx, tx); err != nil {
		return nil, err
	}
	if seed.Notices, err = loadNotices(ctx, tx); err != nil {
		return nil, err
	}
	if seed.Documents, err = loadDocuments(ctx, tx); err != nil {
		return nil, err
	}
	if seed.BillReminders, err = loadBillReminders(ctx, tx); err != nil {
		return nil, err
	}

	return seed, nil
}

// SaveSeed replaces the stored seed with seed in a single transaction.
func (s *SQLiteStore) SaveSeed(ctx context.Context, seed *models.Seed) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range seedTables {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	if seed.CurrentUserID != "" {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO meta (key, value) VALUES (?, ?)",
			metaCurrentUser, seed.CurrentUserID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert current user: %w", err)
		}
	}

	if err := saveUsers(ctx, tx, seed.Users); err != nil {
		return err
	}
	if err := saveGroup(ctx, tx, seed.Group); err != nil {
		return err
	}
	if err := saveTodos(ctx, tx, seed.Todos); err != nil {
		return err
	}
	if err := saveExpenses(ctx, tx, seed.Expenses); err != nil {
		return err
	}
	if err := saveShoppingItems(ctx, tx, seed.ShoppingItems); err != nil {
		return err
	}
	if err := saveCleaningDuty(ctx, tx, seed.CleaningDuty); err != nil {
		return err
	}
	if err := saveBoard(ctx, tx, seed); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// queryAll runs query and scans every row with scan.
func queryAll[T any](ctx context.Context, q querier, what, query string, scan func(*sql.Rows) (T, error), args ...any) ([]T, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", what, err)
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", what, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s: %w", what, err)
	}
	return out, nil
}

func toUnix(t time.Time) int64 {
	return t.Unix()
}

func fromUnix(v int64) time.Time {
	return time.Unix(v, 0).UTC()
}

func toNullUnix(t *time.Time) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: t.Unix(), Valid: true}
}

func fromNullUnix(v sql.NullInt64) *time.Time {
	if !v.Valid {
		return nil
	}
	t := fromUnix(v.Int64)
	return &t
}
