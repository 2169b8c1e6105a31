// internal/game/types.go
//
// Core type definitions for the guess engine.
// Defines:
//   - Classification: outcome of one submitted guess.
//   - Result: what SubmitGuess reports back to a front end.
//   - Tally: word → repeat count, with insert-at-zero-then-increment semantics.
//   - Status: read-only snapshot used for rendering.

package game

import (
	"math/rand/v2"
	"sort"
)

// Classification is the evaluation of a single guess.
// Possible values:
//   - "correct_new":    first time this solution was found.
//   - "correct_played": solution already found earlier.
//   - "wrong_new":      first time this non-solution was tried.
//   - "wrong_played":   non-solution already tried earlier.
type Classification string

const (
	NewCorrect       Classification = "correct_new"
	AlreadyCorrect   Classification = "correct_played"
	NewIncorrect     Classification = "wrong_new"
	AlreadyIncorrect Classification = "wrong_played"
)

// Correct reports whether the guess is a solution.
func (c Classification) Correct() bool { return c == NewCorrect || c == AlreadyCorrect }

// New reports whether this was the first submission of the word.
func (c Classification) New() bool { return c == NewCorrect || c == NewIncorrect }

// Result is returned by SubmitGuess.
type Result struct {
	Word      string         // normalized (uppercase) guess
	Class     Classification // outcome
	Count     int            // times this word has now been submitted
	Remaining int            // solutions not yet found; 0 means the puzzle is solved
	Message   string         // flavor text for display
}

// Phrases supplies flavor text. Implementations pick from their own lists
// using the engine's random source.
type Phrases interface {
	Encouragement(r *rand.Rand) string
	Discouragement(r *rand.Rand) string
}

// Tally counts how many times each word was submitted.
type Tally map[string]int

// Increment adds one to word's count (starting from zero) and returns the new count.
func (t Tally) Increment(word string) int {
	t[word]++
	return t[word]
}

// Count returns word's count, 0 if never seen.
func (t Tally) Count(word string) int { return t[word] }

// Has reports whether word was ever counted.
func (t Tally) Has(word string) bool {
	_, ok := t[word]
	return ok
}

// Len returns the number of distinct words.
func (t Tally) Len() int { return len(t) }

// Words returns the distinct words, sorted.
func (t Tally) Words() []string {
	out := make([]string, 0, len(t))
	for w := range t {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Status is a snapshot of a game for rendering. It shares no memory with the Game.
type Status struct {
	Key       byte
	Allowed   []byte   // current display order
	Correct   []string // sorted
	Score     int
	Remaining int
	Total     int
}
