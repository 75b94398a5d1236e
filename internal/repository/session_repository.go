package repository // repository defines data access for client sessions

import (
	"context"      // context allows query cancellation and timeouts
	"database/sql" // sql provides DB primitives
	"errors"

	"github.com/myacars/myacars/internal/model"
)

// SessionRepo provides methods to work with sessions in the database.
// One session row corresponds to one logged-in flight client; a fresh
// login simply adds a row, renewal replaces one.
type SessionRepo struct {
	db *sql.DB
}

// NewSessionRepo constructs a SessionRepo with the given DB handle.
func NewSessionRepo(db *sql.DB) *SessionRepo {
	return &SessionRepo{db: db}
}

// Create inserts a session row for the given token. On success the
// session's ID is populated.
func (r *SessionRepo) Create(ctx context.Context, token string) (*model.Session, error) {
	const q = `INSERT INTO sessions (sessionid) VALUES (?)`
	res, err := r.db.ExecContext(ctx, q, token)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &model.Session{ID: id, SessionID: token}, nil
}

// FindByToken retrieves the session holding the given token.
func (r *SessionRepo) FindByToken(ctx context.Context, token string) (*model.Session, error) {
	const q = `SELECT id, sessionid, timestamp FROM sessions WHERE sessionid = ? LIMIT 1`
	var s model.Session
	err := r.db.QueryRowContext(ctx, q, token).Scan(&s.ID, &s.SessionID, &s.Timestamp)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Renew atomically replaces the session holding oldToken with a new row
// holding newToken. When no row matches oldToken nothing is written and
// ErrSessionNotFound is returned; the delete and the insert otherwise
// commit together so a failed renewal never strands the client without
// a valid session.
func (r *SessionRepo) Renew(ctx context.Context, oldToken, newToken string) (*model.Session, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `DELETE FROM sessions WHERE sessionid = ?`, oldToken)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrSessionNotFound
	}

	ins, err := tx.ExecContext(ctx, `INSERT INTO sessions (sessionid) VALUES (?)`, newToken)
	if err != nil {
		return nil, err
	}
	id, err := ins.LastInsertId()
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &model.Session{ID: id, SessionID: newToken}, nil
}

// List returns all session rows, oldest first. Used by the admin
// back-office rather than the protocol.
func (r *SessionRepo) List(ctx context.Context) ([]model.Session, error) {
	const q = `SELECT id, sessionid, timestamp FROM sessions ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Session
	for rows.Next() {
		var s model.Session
		if err := rows.Scan(&s.ID, &s.SessionID, &s.Timestamp); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
