package repos

import (
	"database/sql"
	"encoding/json"

	"github.com/jmoiron/sqlx"
)

// StateRepo is the key-value persistence collaborator: one JSON-serializable
// value per fixed key. Everything above it works with decoded Go values.
type StateRepo struct{ db *sqlx.DB }

func NewStateRepo(db *sqlx.DB) *StateRepo { return &StateRepo{db: db} }

// Get decodes the value under key into dest and reports whether the key
// existed. A missing key leaves dest untouched.
func (r *StateRepo) Get(key string, dest any) (bool, error) {
	var raw string
	if err := r.db.Get(&raw, `SELECT value FROM state WHERE key = ?`, key); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, err
	}
	return true, nil
}

func (r *StateRepo) Set(key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(`
		INSERT INTO state(key, value, updated_at) VALUES(?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, string(b))
	return err
}

func (r *StateRepo) Delete(key string) error {
	_, err := r.db.Exec(`DELETE FROM state WHERE key = ?`, key)
	return err
}
