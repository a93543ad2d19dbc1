package repos

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
)

// SessionRepo tracks admin sessions by sid cookie value.
type SessionRepo struct{ db *sqlx.DB }

func NewSessionRepo(db *sqlx.DB) *SessionRepo { return &SessionRepo{db: db} }

func (r *SessionRepo) Create(sid string) error {
	_, err := r.db.Exec(`INSERT INTO sessions(id) VALUES(?) ON CONFLICT(id) DO NOTHING`, sid)
	return err
}

func (r *SessionRepo) Delete(sid string) error {
	_, err := r.db.Exec(`DELETE FROM sessions WHERE id = ?`, sid)
	return err
}

// Exists reports whether sid names a live admin session and touches last_seen.
func (r *SessionRepo) Exists(sid string) (bool, error) {
	var id string
	if err := r.db.Get(&id, `SELECT id FROM sessions WHERE id = ?`, sid); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	_, _ = r.db.Exec(`UPDATE sessions SET last_seen = CURRENT_TIMESTAMP WHERE id = ?`, sid)
	return true, nil
}
