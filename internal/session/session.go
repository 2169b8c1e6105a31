// internal/session/session.go
//
// Session wraps one Game for a front end.
// Responsibilities:
//   - Count guesses and hints for the results history.
//   - Log and record metrics for every engine call.
//   - Turn a finished game into a store.Result and save it.
//
// Front ends talk to the Session; the Game stays the single source of truth
// for guesses and score.

package session

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kbseah/spelling-wasp/internal/game"
	"github.com/kbseah/spelling-wasp/internal/metrics"
	"github.com/kbseah/spelling-wasp/internal/store"
)

// Session is one play-through. Not safe for concurrent use.
type Session struct {
	ID   string
	Date string // daily date key, empty for free play

	game    *game.Game
	metrics *metrics.Metrics
	log     zerolog.Logger
	now     func() time.Time

	started time.Time
	guesses int
	hints   int
}

// Option customizes a Session.
type Option func(*Session)

// WithDate marks the session as the daily puzzle for date.
func WithDate(date string) Option { return func(s *Session) { s.Date = date } }

// WithMetrics records engine activity on m.
func WithMetrics(m *metrics.Metrics) Option { return func(s *Session) { s.metrics = m } }

// WithClock replaces time.Now (tests).
func WithClock(now func() time.Time) Option { return func(s *Session) { s.now = now } }

// New starts a session around g.
func New(g *game.Game, opts ...Option) *Session {
	s := &Session{
		ID:   uuid.NewString(),
		game: g,
		now:  time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	s.started = s.now().UTC()
	s.log = log.With().Str("session", s.ID).Logger()
	return s
}

// Game exposes the underlying engine for read-only use.
func (s *Session) Game() *game.Game { return s.game }

// Guess submits one word.
func (s *Session) Guess(word string) game.Result {
	res := s.game.SubmitGuess(word)
	s.guesses++
	if s.metrics != nil {
		s.metrics.ObserveGuess(res)
	}
	s.log.Debug().
		Str("word", res.Word).
		Str("class", string(res.Class)).
		Int("count", res.Count).
		Int("remaining", res.Remaining).
		Msg("guess")
	return res
}

// Hint asks the engine for a hint. game.ErrNoHint is passed through.
func (s *Session) Hint() (string, error) {
	h, err := s.game.Hint()
	if s.metrics != nil {
		s.metrics.ObserveHint(err == nil)
	}
	if err != nil {
		if !errors.Is(err, game.ErrNoHint) {
			s.log.Warn().Err(err).Msg("hint")
		}
		return "", err
	}
	s.hints++
	return h, nil
}

// Shuffle reorders the allowed letters.
func (s *Session) Shuffle() []byte {
	if s.metrics != nil {
		s.metrics.Shuffles.Inc()
	}
	return s.game.Shuffle()
}

// Result summarizes the session as it stands now.
func (s *Session) Result() store.Result {
	st := s.game.Status()
	letters := slices.Clone(st.Allowed)
	slices.Sort(letters)
	return store.Result{
		SessionID:  s.ID,
		Date:       s.Date,
		Key:        string(st.Key),
		Letters:    string(letters),
		Score:      st.Score,
		Found:      len(st.Correct),
		Total:      st.Total,
		Guesses:    s.guesses,
		Hints:      s.hints,
		Solved:     st.Remaining == 0,
		StartedAt:  s.started,
		FinishedAt: s.now().UTC(),
	}
}

// Finish saves the session summary to st (if not nil) and returns it.
// Storage failures are returned but the summary is always valid.
func (s *Session) Finish(ctx context.Context, st store.Store) (store.Result, error) {
	r := s.Result()
	if s.metrics != nil {
		s.metrics.FinalScore.Set(float64(r.Score))
	}
	s.log.Info().
		Int("score", r.Score).
		Int("found", r.Found).
		Int("total", r.Total).
		Int("wrong", s.game.Incorrect().Len()).
		Int("hints", r.Hints).
		Bool("solved", r.Solved).
		Dur("elapsed", r.Elapsed()).
		Msg("session finished")
	if st == nil {
		return r, nil
	}
	return r, st.Save(ctx, r)
}
