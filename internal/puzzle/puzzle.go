// internal/puzzle/puzzle.go
//
// Puzzle generation: pick a key letter plus allowed letters whose solution
// set is rich enough to be worth playing.
//
// Algorithm (Generate):
//  1. Sample LetterCount distinct letters A–Z without replacement; the first
//     is the key, the rest are allowed.
//  2. Collect dictionary words that contain the key, use only puzzle letters
//     and are at least MinWordLength long.
//  3. Too few solutions → resample.
//
// Step 3 has no natural end when the parameters are infeasible for the
// dictionary (e.g. MinSolutions larger than any letter combination can
// reach). The loop is bounded by Params.MaxAttempts when positive and by
// ctx in every case; with MaxAttempts == 0 only ctx stops it.

package puzzle

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"

	"github.com/kbseah/spelling-wasp/internal/words"
)

var (
	// ErrInvalidConfig matches every *ConfigError.
	ErrInvalidConfig = errors.New("invalid puzzle configuration")
	// ErrAttemptsExhausted is returned when MaxAttempts combinations were
	// tried without reaching MinSolutions.
	ErrAttemptsExhausted = errors.New("no letter combination met the solution threshold")
)

// ConfigError reports a generation parameter that can never produce a puzzle.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("puzzle: %s %s", e.Field, e.Reason)
}

func (e *ConfigError) Is(target error) bool { return target == ErrInvalidConfig }

// Params controls Generate.
type Params struct {
	LetterCount   int // total letters including the key, 2..26
	MinSolutions  int // minimum accepted solution count, >= 0
	MinWordLength int // shortest accepted word, >= 1
	MaxAttempts   int // combinations to try before giving up; 0 = until ctx ends
}

// Validate checks p against a dictionary before any sampling happens.
func (p Params) Validate(dict *words.Dictionary) error {
	switch {
	case p.LetterCount < 2:
		return &ConfigError{Field: "letter count", Reason: "must be at least 2"}
	case p.LetterCount > len(words.Alphabet):
		return &ConfigError{Field: "letter count", Reason: fmt.Sprintf("must be at most %d", len(words.Alphabet))}
	case p.MinSolutions < 0:
		return &ConfigError{Field: "minimum solutions", Reason: "must not be negative"}
	case p.MinWordLength < 1:
		return &ConfigError{Field: "minimum word length", Reason: "must be at least 1"}
	case p.MaxAttempts < 0:
		return &ConfigError{Field: "max attempts", Reason: "must not be negative"}
	case dict == nil || dict.Len() == 0:
		return &ConfigError{Field: "dictionary", Reason: "is empty"}
	}
	return nil
}

// Puzzle is an accepted letter combination and its solutions.
type Puzzle struct {
	Key       byte     // mandatory letter
	Allowed   []byte   // other letters, in sampled order
	Solutions []string // sorted, unique, uppercase
	Attempts  int      // combinations tried to find this one
}

// Letters returns the key plus allowed letters as a set.
func (p Puzzle) Letters() words.LetterSet {
	return words.SetOf(p.Key) | words.SetOf(p.Allowed...)
}

// Solve returns the sorted solution set for a fixed key and allowed letters.
func Solve(key byte, allowed []byte, minLen int, dict *words.Dictionary) []string {
	sols := dict.Matching(key, words.SetOf(allowed...), minLen)
	sort.Strings(sols)
	return sols
}

// Generate samples letter combinations from rng until one has at least
// p.MinSolutions solutions.
func Generate(ctx context.Context, rng *rand.Rand, p Params, dict *words.Dictionary) (Puzzle, error) {
	if err := p.Validate(dict); err != nil {
		return Puzzle{}, err
	}

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return Puzzle{}, fmt.Errorf("puzzle: gave up after %d attempts: %w", attempt-1, err)
		}
		if p.MaxAttempts > 0 && attempt > p.MaxAttempts {
			return Puzzle{}, fmt.Errorf("puzzle: %d attempts: %w", p.MaxAttempts, ErrAttemptsExhausted)
		}

		key, allowed := sampleLetters(rng, p.LetterCount)
		sols := Solve(key, allowed, p.MinWordLength, dict)
		if len(sols) >= p.MinSolutions {
			return Puzzle{Key: key, Allowed: allowed, Solutions: sols, Attempts: attempt}, nil
		}
	}
}

// sampleLetters draws n distinct letters; the first one is the key.
func sampleLetters(rng *rand.Rand, n int) (byte, []byte) {
	perm := rng.Perm(len(words.Alphabet))
	allowed := make([]byte, n-1)
	for i := range allowed {
		allowed[i] = words.Alphabet[perm[i+1]]
	}
	return words.Alphabet[perm[0]], allowed
}
