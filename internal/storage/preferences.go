package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
)

const prefMuted = "muted"

// SetPreference stores a key/value preference, replacing any previous value.
func (s *Store) SetPreference(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO preferences (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save preference %s: %w", key, err)
	}
	return nil
}

// Preference returns a stored preference. ok is false if it was never set.
func (s *Store) Preference(key string) (value string, ok bool, err error) {
	err = s.db.QueryRow("SELECT value FROM preferences WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot read preference %s: %w", key, err)
	}
	return value, true, nil
}

// SetMuted stores the narration mute flag.
func (s *Store) SetMuted(muted bool) error {
	return s.SetPreference(prefMuted, strconv.FormatBool(muted))
}

// Muted returns the stored mute flag, false if never set.
func (s *Store) Muted() (bool, error) {
	v, ok, err := s.Preference(prefMuted)
	if err != nil || !ok {
		return false, err
	}
	muted, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("storage: bad muted preference %q: %w", v, err)
	}
	return muted, nil
}
