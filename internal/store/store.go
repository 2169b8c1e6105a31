// internal/store/store.go
//
// Results history for finished sessions.
//
// Only summaries of finished games are kept (score, words found, timing);
// a game in progress is never stored and can never be resumed.
// Implementations: in-memory (memory.go) and SQLite (sqlite.go).

package store

import (
	"context"
	"sort"
	"time"
)

// Result summarizes one finished session.
type Result struct {
	SessionID  string    // random UUID
	Date       string    // daily date key (YYYY-MM-DD), empty for free play
	Key        string    // key letter
	Letters    string    // allowed letters, sorted
	Score      int       // sum of lengths of distinct correct words
	Found      int       // distinct correct words
	Total      int       // size of the solution set
	Guesses    int       // submitted guesses including repeats
	Hints      int       // hints shown
	Solved     bool      // every solution was found
	StartedAt  time.Time // session start (UTC)
	FinishedAt time.Time // session end (UTC)
}

// Elapsed is the session duration.
func (r Result) Elapsed() time.Duration { return r.FinishedAt.Sub(r.StartedAt) }

// Store defines the persistence interface for results.
type Store interface {
	// Save records a finished session. Saving the same SessionID twice keeps the first.
	Save(ctx context.Context, r Result) error

	// Recent returns up to limit results, newest first.
	Recent(ctx context.Context, limit int) ([]Result, error)

	// Leaderboard returns up to limit results for a daily date key,
	// ordered by score desc, then words found desc, then elapsed time asc.
	Leaderboard(ctx context.Context, date string, limit int) ([]Result, error)

	Close() error
}

const defaultLimit = 20

func normLimit(limit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	return limit
}

// rank sorts results into leaderboard order.
func rank(rs []Result) {
	sort.SliceStable(rs, func(i, j int) bool {
		a, b := rs[i], rs[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Found != b.Found {
			return a.Found > b.Found
		}
		return a.Elapsed() < b.Elapsed()
	})
}
