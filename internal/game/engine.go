// internal/game/engine.go
//
// Guess engine for a single Spelling Wasp session.
// Responsibilities:
//   - Classify guesses against the puzzle's solution set (first
//     classification of a word is sticky, repeats only bump its count).
//   - Score: total letters of distinct correct words.
//   - Shuffle the display order of the allowed letters.
//   - Hint: a partially masked unguessed solution.
//
// A Game is owned by one front end and is not safe for concurrent use.
// All randomness comes from the *rand.Rand passed to New.

package game

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/kbseah/spelling-wasp/internal/puzzle"
)

// HintBlank replaces masked letters in hints.
const HintBlank = '_'

// ErrNoHint is returned by Hint once every solution has been found.
var ErrNoHint = errors.New("no hint available: every word has been found")

// Game holds the state of one session.
type Game struct {
	key       byte
	allowed   []byte
	solutions []string
	solSet    map[string]struct{}

	correct   Tally
	incorrect Tally

	rng     *rand.Rand
	phrases Phrases
}

// New wraps a generated puzzle in a fresh session.
func New(p puzzle.Puzzle, rng *rand.Rand, phrases Phrases) *Game {
	g := &Game{
		key:       p.Key,
		allowed:   append([]byte(nil), p.Allowed...),
		solutions: append([]string(nil), p.Solutions...),
		solSet:    make(map[string]struct{}, len(p.Solutions)),
		correct:   Tally{},
		incorrect: Tally{},
		rng:       rng,
		phrases:   phrases,
	}
	slices.Sort(g.solutions)
	g.solutions = slices.Compact(g.solutions)
	for _, w := range g.solutions {
		g.solSet[w] = struct{}{}
	}
	if g.phrases == nil {
		g.phrases = plainPhrases{}
	}
	return g
}

// plainPhrases is used when no provider is given.
type plainPhrases struct{}

func (plainPhrases) Encouragement(*rand.Rand) string  { return "Yes!" }
func (plainPhrases) Discouragement(*rand.Rand) string { return "Nope" }

// SubmitGuess classifies raw and records it.
//
// The engine does not validate characters: anything that is not a solution,
// including words without the key letter, is simply incorrect.
func (g *Game) SubmitGuess(raw string) Result {
	w := strings.ToUpper(raw)
	res := Result{Word: w}

	switch {
	case g.correct.Has(w):
		res.Class = AlreadyCorrect
		res.Message = fmt.Sprintf("Correct, but you have already played that word %s", times(g.correct.Count(w)))
		res.Count = g.correct.Increment(w)
	case g.incorrect.Has(w):
		res.Class = AlreadyIncorrect
		res.Message = fmt.Sprintf("Word not in dictionary, and you have already tried it %s", times(g.incorrect.Count(w)))
		res.Count = g.incorrect.Increment(w)
	case g.isSolution(w):
		res.Class = NewCorrect
		res.Count = g.correct.Increment(w)
		res.Message = g.phrases.Encouragement(g.rng)
	default:
		res.Class = NewIncorrect
		res.Count = g.incorrect.Increment(w)
		res.Message = g.phrases.Discouragement(g.rng)
	}
	res.Remaining = g.Remaining()
	return res
}

func (g *Game) isSolution(w string) bool {
	_, ok := g.solSet[w]
	return ok
}

func times(n int) string {
	if n == 1 {
		return "1 time"
	}
	return fmt.Sprintf("%d times", n)
}

// Remaining is the number of solutions not yet found.
func (g *Game) Remaining() int {
	return len(g.solutions) - g.correct.Len()
}

// Solved reports whether every solution has been found.
func (g *Game) Solved() bool { return g.Remaining() == 0 }

// Score sums the lengths of distinct correct words.
func (g *Game) Score() int {
	score := 0
	for w := range g.correct {
		score += len(w)
	}
	return score
}

// Shuffle permutes the display order of the allowed letters and returns it.
func (g *Game) Shuffle() []byte {
	g.rng.Shuffle(len(g.allowed), func(i, j int) {
		g.allowed[i], g.allowed[j] = g.allowed[j], g.allowed[i]
	})
	return g.Allowed()
}

// Hint picks a random unfound solution and blanks floor(len/3) of its letters.
func (g *Game) Hint() (string, error) {
	open := g.Unplayed()
	if len(open) == 0 {
		return "", ErrNoHint
	}
	word := []byte(open[g.rng.IntN(len(open))])
	for _, i := range g.rng.Perm(len(word))[:len(word)/3] {
		word[i] = HintBlank
	}
	return string(word), nil
}

// Unplayed returns the solutions not yet found, sorted.
func (g *Game) Unplayed() []string {
	out := make([]string, 0, g.Remaining())
	for _, w := range g.solutions {
		if !g.correct.Has(w) {
			out = append(out, w)
		}
	}
	return out
}

// Key returns the mandatory letter.
func (g *Game) Key() byte { return g.key }

// Allowed returns a copy of the allowed letters in display order.
func (g *Game) Allowed() []byte { return append([]byte(nil), g.allowed...) }

// Total is the size of the solution set.
func (g *Game) Total() int { return len(g.solutions) }

// Correct returns a copy of the correct-guess tally.
func (g *Game) Correct() Tally { return copyTally(g.correct) }

// Incorrect returns a copy of the incorrect-guess tally.
func (g *Game) Incorrect() Tally { return copyTally(g.incorrect) }

// Status returns a rendering snapshot.
func (g *Game) Status() Status {
	return Status{
		Key:       g.key,
		Allowed:   g.Allowed(),
		Correct:   g.correct.Words(),
		Score:     g.Score(),
		Remaining: g.Remaining(),
		Total:     len(g.solutions),
	}
}

func copyTally(t Tally) Tally {
	out := make(Tally, len(t))
	for w, n := range t {
		out[w] = n
	}
	return out
}
