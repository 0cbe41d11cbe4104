// Package store persists terminal settings and archived contact messages in
// SQLite.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/termfolio/termfolio/internal/portfolio"
	"github.com/termfolio/termfolio/internal/terminal"
)

var ErrNotFound = errors.New("not found")

const timeLayout = "2006-01-02T15:04:05.000Z"

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// For returns the settings scoped to one client. Different clients never
// see each other's values.
func (s *Store) For(clientID string) *ClientSettings {
	return &ClientSettings{db: s.db, clientID: clientID}
}

// ClientSettings implements terminal.Settings for a single client.
type ClientSettings struct {
	db       *sql.DB
	clientID string
}

var _ terminal.Settings = (*ClientSettings)(nil)

func (c *ClientSettings) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := c.db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE client_id = ? AND key = ?`,
		c.clientID, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading setting %q: %w", key, err)
	}
	return value, true, nil
}

func (c *ClientSettings) Set(ctx context.Context, key, value string) error {
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO settings (client_id, key, value)
		VALUES (?, ?, ?)
		ON CONFLICT (client_id, key) DO UPDATE SET
			value = excluded.value,
			updated_at = strftime('%Y-%m-%dT%H:%M:%fZ', 'now')
	`, c.clientID, key, value)
	if err != nil {
		return fmt.Errorf("writing setting %q: %w", key, err)
	}
	return nil
}

// ArchivedMessage is a contact submission as stored locally. DeliveredAt is
// nil until the message reached the contact endpoint.
type ArchivedMessage struct {
	ID string
	portfolio.ContactMessage
	CreatedAt   time.Time
	DeliveredAt *time.Time
}

// Record archives msg and returns its ID.
func (s *Store) Record(ctx context.Context, msg portfolio.ContactMessage) (string, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO contact_messages (id, name, email, message) VALUES (?, ?, ?, ?)`,
		id, msg.Name, msg.Email, msg.Message,
	)
	if err != nil {
		return "", fmt.Errorf("archiving contact message: %w", err)
	}
	return id, nil
}

func (s *Store) MarkDelivered(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE contact_messages SET delivered_at = strftime('%Y-%m-%dT%H:%M:%fZ', 'now') WHERE id = ?`,
		id,
	)
	if err != nil {
		return fmt.Errorf("marking message delivered: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Messages returns archived messages, newest first.
func (s *Store) Messages(ctx context.Context) ([]ArchivedMessage, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email, message, created_at, delivered_at
		FROM contact_messages
		ORDER BY created_at DESC, rowid DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("listing contact messages: %w", err)
	}
	defer rows.Close()

	var out []ArchivedMessage
	for rows.Next() {
		var (
			m         ArchivedMessage
			created   string
			delivered sql.NullString
		)
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &created, &delivered); err != nil {
			return nil, fmt.Errorf("scanning contact message: %w", err)
		}
		if m.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		if delivered.Valid {
			t, err := time.Parse(timeLayout, delivered.String)
			if err != nil {
				return nil, fmt.Errorf("parsing delivered_at: %w", err)
			}
			m.DeliveredAt = &t
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
