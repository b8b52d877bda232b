package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/portalesuite/portale-client/internal/dbx"
	"github.com/portalesuite/portale-client/internal/logging"
)

// SQLiteStore keeps the session in the local sqlite database, in the
// key/value `session` table. It satisfies both Store and the api package's
// TokenSource.
type SQLiteStore struct {
	db  *sql.DB
	log logging.Logger
}

func NewSQLiteStore(db *sql.DB, log logging.Logger) *SQLiteStore {
	if log == nil {
		log = logging.Nop{}
	}
	return &SQLiteStore{db: db, log: log}
}

// Save persists the composed credential and the serialized profile in one
// transaction, replacing any prior session. Failures are logged and
// swallowed.
func (s *SQLiteStore) Save(ctx context.Context, sess Session) {
	profile, err := json.Marshal(sess.User)
	if err != nil {
		s.log.Warn(ctx, "session profile not serializable", "error", err)
		return
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := set(ctx, tx, keyToken, []byte(sess.Credential.HeaderValue())); err != nil {
			return err
		}
		return set(ctx, tx, keyUser, profile)
	})
	if err != nil {
		s.log.Warn(ctx, "session save failed", "error", err)
	}
}

// Token returns the header-ready Authorization value, or "" when absent or
// unreadable.
func (s *SQLiteStore) Token(ctx context.Context) string {
	v, err := s.get(ctx, keyToken)
	if err != nil {
		s.log.Warn(ctx, "session token read failed", "error", err)
		return ""
	}
	return string(v)
}

// User returns the stored profile snapshot, or nil when absent or
// undecodable.
func (s *SQLiteStore) User(ctx context.Context) *User {
	v, err := s.get(ctx, keyUser)
	if err != nil {
		s.log.Warn(ctx, "session profile read failed", "error", err)
		return nil
	}
	if v == nil {
		return nil
	}
	var u User
	if err := json.Unmarshal(v, &u); err != nil {
		s.log.Warn(ctx, "session profile not decodable", "error", err)
		return nil
	}
	return &u
}

// Clear removes both session keys. Failures are logged and swallowed so
// logout never leaves the UI stuck.
func (s *SQLiteStore) Clear(ctx context.Context) {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM session WHERE key IN (?, ?)`, keyToken, keyUser); err != nil {
		s.log.Warn(ctx, "session clear failed", "error", err)
	}
}

// Logout ends the session locally.
func (s *SQLiteStore) Logout(ctx context.Context) {
	s.Clear(ctx)
}

func (s *SQLiteStore) get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func set(ctx context.Context, tx dbx.DBTX, key string, value []byte) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}
