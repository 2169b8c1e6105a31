// internal/words/letters.go
//
// LetterSet is a bitmask over the uppercase alphabet A–Z (bit i = 'A'+i).
// Word validity is a set-membership test on masks: a word fits a puzzle when
// its mask contains the key letter and is a subset of the puzzle's letters.
// Repeated letters collapse to one bit, so repetition is never limited.

package words

import (
	"math/bits"
	"strings"
)

// Alphabet is the set of letters puzzles draw from.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

type LetterSet uint32

// MaskOf returns the set of letters used in word.
// ok is false if word contains anything outside A–Z.
func MaskOf(word string) (set LetterSet, ok bool) {
	for i := 0; i < len(word); i++ {
		c := word[i]
		if c < 'A' || c > 'Z' {
			return 0, false
		}
		set |= 1 << (c - 'A')
	}
	return set, true
}

// SetOf builds a LetterSet from the given uppercase letters, ignoring anything else.
func SetOf(letters ...byte) LetterSet {
	var set LetterSet
	for _, c := range letters {
		if c >= 'A' && c <= 'Z' {
			set |= 1 << (c - 'A')
		}
	}
	return set
}

// Has reports whether the uppercase letter c is in the set.
func (s LetterSet) Has(c byte) bool {
	if c < 'A' || c > 'Z' {
		return false
	}
	return s&(1<<(c-'A')) != 0
}

// Covers reports whether every letter of o is also in s.
func (s LetterSet) Covers(o LetterSet) bool { return s&o == o }

// Len returns the number of letters in the set.
func (s LetterSet) Len() int { return bits.OnesCount32(uint32(s)) }

// String lists the letters in alphabetical order.
func (s LetterSet) String() string {
	var b strings.Builder
	for i := 0; i < len(Alphabet); i++ {
		if s&(1<<i) != 0 {
			b.WriteByte(Alphabet[i])
		}
	}
	return b.String()
}
