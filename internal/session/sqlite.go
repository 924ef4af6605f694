package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/livinggrainco/site/internal/wizard"
)

const timeLayout = "2006-01-02T15:04:05.000Z"

// SQLiteStore keeps one JSONB document per session in the wizard_sessions
// table. The schema comes from the migrations package.
type SQLiteStore struct {
	db  *sql.DB
	ttl time.Duration
	now func() time.Time
}

func NewSQLiteStore(db *sql.DB, ttl time.Duration) *SQLiteStore {
	return &SQLiteStore{db: db, ttl: ttl, now: time.Now}
}

func (s *SQLiteStore) Get(ctx context.Context, id string) (*wizard.Session, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT json(data) FROM wizard_sessions WHERE id = ? AND expires_at > ?`,
		id, s.stamp(s.now()),
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}

	var sess wizard.Session
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, fmt.Errorf("decoding session: %w", err)
	}
	return &sess, nil
}

func (s *SQLiteStore) Save(ctx context.Context, sess *wizard.Session) error {
	now := s.now()
	sess.UpdatedAt = now.UTC()

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO wizard_sessions (id, data, expires_at) VALUES (?, jsonb(?), ?)
		 ON CONFLICT(id) DO UPDATE SET data = excluded.data, expires_at = excluded.expires_at`,
		sess.ID, string(data), s.stamp(now.Add(s.ttl)),
	)
	if err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM wizard_sessions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

// Sweep deletes expired rows and reports how many were removed.
func (s *SQLiteStore) Sweep(ctx context.Context) (int, error) {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM wizard_sessions WHERE expires_at <= ?`, s.stamp(s.now()),
	)
	if err != nil {
		return 0, fmt.Errorf("sweeping sessions: %w", err)
	}
	n, _ := result.RowsAffected()
	return int(n), nil
}

func (s *SQLiteStore) Check(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLiteStore) stamp(t time.Time) string {
	return t.UTC().Format(timeLayout)
}
