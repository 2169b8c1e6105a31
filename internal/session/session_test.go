package session

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/kbseah/spelling-wasp/internal/game"
	"github.com/kbseah/spelling-wasp/internal/metrics"
	"github.com/kbseah/spelling-wasp/internal/puzzle"
	"github.com/kbseah/spelling-wasp/internal/store"
)

func newSession(opts ...Option) *Session {
	p := puzzle.Puzzle{Key: 'G', Allowed: []byte("TRENLA"), Solutions: []string{"ANGEL", "LARGE"}}
	return New(game.New(p, rand.New(rand.NewPCG(1, 2)), nil), opts...)
}

func fakeClock(start time.Time, step time.Duration) func() time.Time {
	t := start
	return func() time.Time {
		cur := t
		t = t.Add(step)
		return cur
	}
}

func TestSessionFinish(t *testing.T) {
	start := time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC)
	m := metrics.New()
	s := newSession(WithDate("2026-10-18"), WithMetrics(m), WithClock(fakeClock(start, time.Minute)))

	s.Guess("large")
	s.Guess("large")
	s.Guess("zebra")
	if _, err := s.Hint(); err != nil {
		t.Fatalf("Hint: %v", err)
	}
	s.Shuffle()

	st := store.NewMemoryStore()
	r, err := s.Finish(context.Background(), st)
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}

	want := store.Result{
		SessionID:  s.ID,
		Date:       "2026-10-18",
		Key:        "G",
		Letters:    "AELNRT",
		Score:      5,
		Found:      1,
		Total:      2,
		Guesses:    3,
		Hints:      1,
		Solved:     false,
		StartedAt:  start,
		FinishedAt: start.Add(time.Minute),
	}
	if diff := cmp.Diff(want, r); diff != "" {
		t.Errorf("Result mismatch (-want +got):\n%s", diff)
	}

	saved, err := st.Recent(context.Background(), 10)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]store.Result{r}, saved); diff != "" {
		t.Errorf("saved mismatch (-want +got):\n%s", diff)
	}

	if got := testutil.ToFloat64(m.Guesses.WithLabelValues(string(game.AlreadyCorrect))); got != 1 {
		t.Errorf("already-correct guesses = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.FinalScore); got != 5 {
		t.Errorf("final score = %v, want 5", got)
	}
	if got := testutil.ToFloat64(m.Shuffles); got != 1 {
		t.Errorf("shuffles = %v, want 1", got)
	}
}

func TestSessionHintExhausted(t *testing.T) {
	s := newSession()
	s.Guess("angel")
	s.Guess("large")
	if _, err := s.Hint(); !errors.Is(err, game.ErrNoHint) {
		t.Fatalf("err = %v, want ErrNoHint", err)
	}
	r := s.Result()
	if r.Hints != 0 || !r.Solved {
		t.Errorf("got hints=%d solved=%v, want 0 and true", r.Hints, r.Solved)
	}
}

func TestSessionFinishWithoutStore(t *testing.T) {
	s := newSession()
	r, err := s.Finish(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if r.SessionID == "" || r.SessionID != s.ID {
		t.Errorf("session id = %q", r.SessionID)
	}
	if diff := cmp.Diff(store.Result{Key: "G", Letters: "AELNRT", Total: 2}, r,
		cmpopts.IgnoreFields(store.Result{}, "SessionID", "StartedAt", "FinishedAt")); diff != "" {
		t.Errorf("Result mismatch (-want +got):\n%s", diff)
	}
}
