package game

import (
	"errors"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kbseah/spelling-wasp/internal/puzzle"
	"github.com/kbseah/spelling-wasp/internal/words"
)

type fixedPhrases struct{}

func (fixedPhrases) Encouragement(*rand.Rand) string  { return "yay" }
func (fixedPhrases) Discouragement(*rand.Rand) string { return "boo" }

// examplePuzzle is key G, allowed AELNRT over {LARGE, ANGEL, RATE}, min length 5.
func examplePuzzle() puzzle.Puzzle {
	dict := words.New([]string{"LARGE", "ANGEL", "RATE"})
	allowed := []byte("AELNRT")
	return puzzle.Puzzle{Key: 'G', Allowed: allowed, Solutions: puzzle.Solve('G', allowed, 5, dict)}
}

func newTestGame() *Game {
	return New(examplePuzzle(), rand.New(rand.NewPCG(1, 2)), fixedPhrases{})
}

func TestSubmitGuessExample(t *testing.T) {
	g := newTestGame()

	steps := []struct {
		guess     string
		class     Classification
		count     int
		remaining int
		score     int
		message   string
	}{
		{"large", NewCorrect, 1, 1, 5, "yay"},
		{"LARGE", AlreadyCorrect, 2, 1, 5, "Correct, but you have already played that word 1 time"},
		{"zebra", NewIncorrect, 1, 1, 5, "boo"},
		{"Zebra", AlreadyIncorrect, 2, 1, 5, "Word not in dictionary, and you have already tried it 1 time"},
		{"zebra", AlreadyIncorrect, 3, 1, 5, "Word not in dictionary, and you have already tried it 2 times"},
		{"angel", NewCorrect, 1, 0, 10, "yay"},
	}
	for _, st := range steps {
		res := g.SubmitGuess(st.guess)
		if res.Word != strings.ToUpper(st.guess) {
			t.Errorf("%s: word = %q", st.guess, res.Word)
		}
		if res.Class != st.class || res.Count != st.count || res.Remaining != st.remaining {
			t.Fatalf("%s: got (%s, %d, %d), want (%s, %d, %d)",
				st.guess, res.Class, res.Count, res.Remaining, st.class, st.count, st.remaining)
		}
		if res.Message != st.message {
			t.Errorf("%s: message = %q, want %q", st.guess, res.Message, st.message)
		}
		if g.Score() != st.score {
			t.Errorf("%s: score = %d, want %d", st.guess, g.Score(), st.score)
		}
	}
	if !g.Solved() {
		t.Error("expected puzzle to be solved")
	}
	if len(g.Unplayed()) != 0 {
		t.Errorf("unplayed = %v, want none", g.Unplayed())
	}
}

func TestKeylessGuessIsIncorrect(t *testing.T) {
	g := newTestGame()
	res := g.SubmitGuess("rate")
	if res.Class != NewIncorrect {
		t.Fatalf("class = %s, want %s", res.Class, NewIncorrect)
	}
	if res.Remaining != 2 {
		t.Errorf("remaining = %d, want 2", res.Remaining)
	}
}

func TestNonAlphabeticGuessIsIncorrect(t *testing.T) {
	g := newTestGame()
	if res := g.SubmitGuess("l4rge!"); res.Class != NewIncorrect {
		t.Errorf("class = %s, want %s", res.Class, NewIncorrect)
	}
}

func TestClassificationSticky(t *testing.T) {
	g := newTestGame()
	guesses := []string{"large", "zebra", "large", "angel", "zebra", "large", "nope", "angel"}
	first := map[string]bool{}
	prevScore := 0
	for _, w := range guesses {
		res := g.SubmitGuess(w)
		if c, seen := first[res.Word]; seen && c != res.Class.Correct() {
			t.Fatalf("%s changed classification", res.Word)
		}
		first[res.Word] = res.Class.Correct()

		if g.Score() < prevScore {
			t.Fatalf("score decreased from %d to %d", prevScore, g.Score())
		}
		prevScore = g.Score()

		want := 0
		for _, cw := range g.Correct().Words() {
			want += len(cw)
		}
		if g.Score() != want {
			t.Fatalf("score = %d, want %d", g.Score(), want)
		}
		for cw := range g.Correct() {
			if g.Incorrect().Has(cw) {
				t.Fatalf("%s in both tallies", cw)
			}
		}
	}
	if got := g.Correct().Count("LARGE"); got != 3 {
		t.Errorf("LARGE count = %d, want 3", got)
	}
	if got := g.Incorrect().Count("ZEBRA"); got != 2 {
		t.Errorf("ZEBRA count = %d, want 2", got)
	}
}

func TestShufflePreservesLetters(t *testing.T) {
	g := newTestGame()
	want := g.Allowed()
	slices.Sort(want)
	for i := 0; i < 20; i++ {
		got := g.Shuffle()
		if diff := cmp.Diff(got, g.Allowed()); diff != "" {
			t.Fatalf("Shuffle result differs from Allowed (-shuffle +allowed):\n%s", diff)
		}
		slices.Sort(got)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("Shuffle changed letters (-want +got):\n%s", diff)
		}
	}
	if g.Key() != 'G' {
		t.Errorf("key changed to %c", g.Key())
	}
}

func TestShuffleDeterministic(t *testing.T) {
	a := New(examplePuzzle(), rand.New(rand.NewPCG(9, 9)), nil)
	b := New(examplePuzzle(), rand.New(rand.NewPCG(9, 9)), nil)
	if diff := cmp.Diff(a.Shuffle(), b.Shuffle()); diff != "" {
		t.Errorf("same seed, different shuffle:\n%s", diff)
	}
}

func TestHint(t *testing.T) {
	g := newTestGame()
	g.SubmitGuess("large")

	for i := 0; i < 10; i++ {
		h, err := g.Hint()
		if err != nil {
			t.Fatalf("Hint: %v", err)
		}
		if len(h) != len("ANGEL") {
			t.Fatalf("hint %q has wrong length", h)
		}
		blanks := strings.Count(h, string(HintBlank))
		if blanks != len("ANGEL")/3 {
			t.Errorf("hint %q has %d blanks, want %d", h, blanks, len("ANGEL")/3)
		}
		for j := range h {
			if h[j] != HintBlank && h[j] != "ANGEL"[j] {
				t.Errorf("hint %q does not match ANGEL at %d", h, j)
			}
		}
	}
}

func TestHintShortWordHasNoBlanks(t *testing.T) {
	p := puzzle.Puzzle{Key: 'A', Allowed: []byte("T"), Solutions: []string{"AT"}}
	g := New(p, rand.New(rand.NewPCG(1, 1)), nil)
	h, err := g.Hint()
	if err != nil {
		t.Fatal(err)
	}
	if h != "AT" {
		t.Errorf("hint = %q, want AT", h)
	}
}

func TestHintExhausted(t *testing.T) {
	g := newTestGame()
	g.SubmitGuess("large")
	g.SubmitGuess("angel")
	h, err := g.Hint()
	if !errors.Is(err, ErrNoHint) {
		t.Fatalf("err = %v, want ErrNoHint", err)
	}
	if h != "" {
		t.Errorf("hint = %q, want empty", h)
	}
}

func TestStatusSnapshot(t *testing.T) {
	g := newTestGame()
	g.SubmitGuess("large")
	g.SubmitGuess("zebra")

	st := g.Status()
	want := Status{
		Key:       'G',
		Allowed:   []byte("AELNRT"),
		Correct:   []string{"LARGE"},
		Score:     5,
		Remaining: 1,
		Total:     2,
	}
	if diff := cmp.Diff(want, st); diff != "" {
		t.Errorf("Status mismatch (-want +got):\n%s", diff)
	}

	st.Allowed[0] = 'Z'
	st.Correct[0] = "MUTATED"
	if g.Allowed()[0] != 'A' || g.Correct().Words()[0] != "LARGE" {
		t.Error("Status shares memory with the game")
	}
}

func TestNewDeduplicatesSolutions(t *testing.T) {
	p := puzzle.Puzzle{Key: 'G', Allowed: []byte("AELNRT"), Solutions: []string{"LARGE", "ANGEL", "LARGE"}}
	g := New(p, rand.New(rand.NewPCG(1, 1)), nil)
	if g.Total() != 2 {
		t.Fatalf("Total = %d, want 2", g.Total())
	}
	g.SubmitGuess("large")
	if res := g.SubmitGuess("angel"); res.Remaining != 0 {
		t.Errorf("remaining = %d, want 0", res.Remaining)
	}
	if diff := cmp.Diff([]string{"ANGEL", "LARGE"}, g.Correct().Words()); diff != "" {
		t.Errorf("Correct words mismatch:\n%s", diff)
	}
}

func TestTally(t *testing.T) {
	tl := Tally{}
	if tl.Has("A") || tl.Count("A") != 0 {
		t.Fatal("empty tally reports A")
	}
	if n := tl.Increment("A"); n != 1 {
		t.Errorf("first Increment = %d, want 1", n)
	}
	if n := tl.Increment("A"); n != 2 {
		t.Errorf("second Increment = %d, want 2", n)
	}
	tl.Increment("B")
	if tl.Len() != 2 {
		t.Errorf("Len = %d, want 2", tl.Len())
	}
	if diff := cmp.Diff([]string{"A", "B"}, tl.Words()); diff != "" {
		t.Errorf("Words mismatch:\n%s", diff)
	}
}
