package subscribers

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when no subscriber matches a lookup.
var ErrNotFound = sql.ErrNoRows

// Store wraps the subscriber SQLite database.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the database at path, ensures the data
// directory exists, and runs schema migrations.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open subscriber db: %w", err)
	}
	// WAL for concurrent read/write, busy_timeout so writers wait
	// instead of failing with SQLITE_BUSY. synchronous=NORMAL is safe
	// under WAL and skips the per-transaction fsync.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS subscribers (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			email TEXT NOT NULL UNIQUE,
			status TEXT NOT NULL DEFAULT 'pending',
			token TEXT NOT NULL UNIQUE,
			source TEXT NOT NULL DEFAULT '',
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_subscribers_status ON subscribers(status);
		CREATE INDEX IF NOT EXISTS idx_subscribers_token ON subscribers(token);

		CREATE TABLE IF NOT EXISTS images (
			filename TEXT PRIMARY KEY,
			original_name TEXT NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			size_bytes INTEGER NOT NULL,
			uploaded_at TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	return err
}

// currentSchemaVersion is the latest schema version. Increment when
// adding migrations.
const currentSchemaVersion = 1

func (s *Store) migrate() error {
	verStr, err := s.GetSetting("schema_version")
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	version := 0
	if verStr != "" {
		version, err = strconv.Atoi(verStr)
		if err != nil {
			return fmt.Errorf("parse schema version %q: %w", verStr, err)
		}
	}
	if version < currentSchemaVersion {
		version = currentSchemaVersion
	}
	return s.SetSetting("schema_version", strconv.Itoa(version))
}

// GetSetting returns the value for key, or "" when unset.
func (s *Store) GetSetting(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// SetSetting upserts a settings key.
func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)`, key, value)
	return err
}

// Subscribe records a signup for email. A new address is inserted as
// pending with a fresh token. An address that is already pending or
// confirmed comes back unchanged, signing up twice is not an error. An
// unsubscribed or bounced address is reactivated as pending under a new
// token so the old unsubscribe link cannot flip it back.
func (s *Store) Subscribe(rawEmail, source string) (Subscriber, error) {
	email, err := NormalizeEmail(rawEmail)
	if err != nil {
		return Subscriber{}, err
	}
	existing, err := s.GetByEmail(email)
	if err != nil && err != ErrNotFound {
		return Subscriber{}, err
	}
	now := time.Now().UTC()
	if err == ErrNotFound {
		token := uuid.NewString()
		res, err := s.db.Exec(
			`INSERT INTO subscribers (email, status, token, source, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
			email, StatusPending, token, source, now, now)
		if err != nil {
			return Subscriber{}, fmt.Errorf("insert subscriber: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return Subscriber{}, err
		}
		return Subscriber{ID: id, Email: email, Status: StatusPending, Token: token, Source: source, CreatedAt: now, UpdatedAt: now}, nil
	}
	switch existing.Status {
	case StatusPending, StatusConfirmed:
		return existing, nil
	default:
		token := uuid.NewString()
		_, err := s.db.Exec(
			`UPDATE subscribers SET status = ?, token = ?, source = ?, updated_at = ? WHERE id = ?`,
			StatusPending, token, source, now, existing.ID)
		if err != nil {
			return Subscriber{}, fmt.Errorf("reactivate subscriber: %w", err)
		}
		existing.Status = StatusPending
		existing.Token = token
		existing.Source = source
		existing.UpdatedAt = now
		return existing, nil
	}
}

const subscriberColumns = `id, email, status, token, source, created_at, updated_at`

func scanSubscriber(row *sql.Row) (Subscriber, error) {
	var sub Subscriber
	err := row.Scan(&sub.ID, &sub.Email, &sub.Status, &sub.Token, &sub.Source, &sub.CreatedAt, &sub.UpdatedAt)
	if err != nil {
		return Subscriber{}, err
	}
	return sub, nil
}

// GetByEmail returns the subscriber for a normalized email address.
func (s *Store) GetByEmail(email string) (Subscriber, error) {
	return scanSubscriber(s.db.QueryRow(
		`SELECT `+subscriberColumns+` FROM subscribers WHERE email = ?`, email))
}

// GetByToken returns the subscriber owning a confirm/unsubscribe token.
func (s *Store) GetByToken(token string) (Subscriber, error) {
	return scanSubscriber(s.db.QueryRow(
		`SELECT `+subscriberColumns+` FROM subscribers WHERE token = ?`, token))
}

// GetByID returns the subscriber with the given row id.
func (s *Store) GetByID(id int64) (Subscriber, error) {
	return scanSubscriber(s.db.QueryRow(
		`SELECT `+subscriberColumns+` FROM subscribers WHERE id = ?`, id))
}

// Confirm flips the token's subscriber from pending to confirmed.
// Confirming twice is a no-op; a token whose subscriber has since
// unsubscribed or bounced comes back unchanged so the caller can show
// the right message.
func (s *Store) Confirm(token string) (Subscriber, error) {
	sub, err := s.GetByToken(token)
	if err != nil {
		return Subscriber{}, err
	}
	if sub.Status != StatusPending {
		return sub, nil
	}
	return s.setStatus(sub, StatusConfirmed)
}

// Unsubscribe marks the token's subscriber unsubscribed. The row is
// kept as a suppression record.
func (s *Store) Unsubscribe(token string) (Subscriber, error) {
	sub, err := s.GetByToken(token)
	if err != nil {
		return Subscriber{}, err
	}
	if sub.Status == StatusUnsubscribed {
		return sub, nil
	}
	return s.setStatus(sub, StatusUnsubscribed)
}

// UpdateStatus sets a subscriber's status from the ops dashboard.
func (s *Store) UpdateStatus(id int64, status string) (Subscriber, error) {
	if !ValidStatus(status) {
		return Subscriber{}, fmt.Errorf("subscribers: invalid status %q", status)
	}
	sub, err := s.GetByID(id)
	if err != nil {
		return Subscriber{}, err
	}
	return s.setStatus(sub, status)
}

func (s *Store) setStatus(sub Subscriber, status string) (Subscriber, error) {
	now := time.Now().UTC()
	_, err := s.db.Exec(`UPDATE subscribers SET status = ?, updated_at = ? WHERE id = ?`, status, now, sub.ID)
	if err != nil {
		return Subscriber{}, fmt.Errorf("update status: %w", err)
	}
	sub.Status = status
	sub.UpdatedAt = now
	return sub, nil
}

// Delete removes a subscriber row entirely. Ops-only; normal
// unsubscribes keep the row for suppression.
func (s *Store) Delete(id int64) error {
	res, err := s.db.Exec(`DELETE FROM subscribers WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Filter narrows List results. Zero values mean no constraint; Limit
// falls back to a server-side default.
type Filter struct {
	Status string
	Query  string
	Limit  int
}

const (
	defaultListLimit = 200
	maxListLimit     = 1000
)

// List returns subscribers newest first, optionally filtered by status
// and an email substring.
func (s *Store) List(f Filter) ([]Subscriber, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	where := []string{}
	args := []interface{}{}
	if f.Status != "" {
		if !ValidStatus(f.Status) {
			return nil, fmt.Errorf("subscribers: invalid status %q", f.Status)
		}
		where = append(where, "status = ?")
		args = append(args, f.Status)
	}
	if f.Query != "" {
		where = append(where, "email LIKE ? ESCAPE '\\'")
		args = append(args, "%"+escapeLike(f.Query)+"%")
	}
	query := `SELECT ` + subscriberColumns + ` FROM subscribers`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC, id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []Subscriber
	for rows.Next() {
		var sub Subscriber
		if err := rows.Scan(&sub.ID, &sub.Email, &sub.Status, &sub.Token, &sub.Source, &sub.CreatedAt, &sub.UpdatedAt); err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

func escapeLike(q string) string {
	q = strings.ReplaceAll(q, `\`, `\\`)
	q = strings.ReplaceAll(q, `%`, `\%`)
	return strings.ReplaceAll(q, `_`, `\_`)
}

// Count returns the number of subscribers with the given status, or
// all subscribers when status is empty.
func (s *Store) Count(status string) (int, error) {
	var n int
	var err error
	if status == "" {
		err = s.db.QueryRow(`SELECT COUNT(*) FROM subscribers`).Scan(&n)
	} else {
		err = s.db.QueryRow(`SELECT COUNT(*) FROM subscribers WHERE status = ?`, status).Scan(&n)
	}
	return n, err
}

// CountByStatus returns subscriber counts keyed by status for the ops
// dashboard header.
func (s *Store) CountByStatus() (map[string]int, error) {
	rows, err := s.db.Query(`SELECT status, COUNT(*) FROM subscribers GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[status] = n
	}
	return counts, rows.Err()
}
