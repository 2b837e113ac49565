package storage

import (
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
)

// Round is one played word.
type Round struct {
	ID        int64
	SessionID string
	GameID    string
	Lesson    string
	Word      string
	Won       bool
	Mistakes  int
	Score     int
	CreatedAt time.Time
}

// WordStat aggregates all rounds played on one word.
type WordStat struct {
	Word     string
	Attempts int
	Wins     int
	Mistakes int
}

// NewSessionID returns a new play-session id. ULIDs sort by creation time,
// so rounds of later sessions sort after earlier ones.
func NewSessionID() string {
	return ulid.Make().String()
}

// SaveRound records a played word. The session id must be a ULID.
func (s *Store) SaveRound(r Round) (int64, error) {
	if _, err := ulid.ParseStrict(r.SessionID); err != nil {
		return 0, fmt.Errorf("storage: invalid session id %q: %w", r.SessionID, err)
	}

	result, err := s.db.Exec(
		`INSERT INTO rounds (session_id, game_id, lesson, word, won, mistakes, score)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.SessionID, r.GameID, r.Lesson, r.Word, r.Won, r.Mistakes, r.Score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// SessionRounds returns the rounds of one session in play order.
func (s *Store) SessionRounds(sessionID string) ([]Round, error) {
	rows, err := s.db.Query(
		`SELECT id, session_id, game_id, lesson, word, won, mistakes, score, created_at
		 FROM rounds
		 WHERE session_id = ?
		 ORDER BY id ASC`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var out []Round
	for rows.Next() {
		var r Round
		var createdAt any
		if err := rows.Scan(&r.ID, &r.SessionID, &r.GameID, &r.Lesson, &r.Word,
			&r.Won, &r.Mistakes, &r.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		out = append(out, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// WordStats returns per-word results for a game, hardest words first.
func (s *Store) WordStats(gameID string, limit int) ([]WordStat, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT word, COUNT(*), SUM(won), SUM(mistakes)
		 FROM rounds
		 WHERE game_id = ?
		 GROUP BY word
		 ORDER BY SUM(mistakes) DESC, COUNT(*) - SUM(won) DESC, word ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query word stats: %w", err)
	}
	defer rows.Close()

	var out []WordStat
	for rows.Next() {
		var w WordStat
		if err := rows.Scan(&w.Word, &w.Attempts, &w.Wins, &w.Mistakes); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		out = append(out, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}
