// internal/words/words.go
//
// Dictionary loading and lookup for puzzle generation.
//
// Responsibilities:
//   - Read a word list (one word per line, any case) from a file or the
//     embedded fallback in the assets package.
//   - Normalize to uppercase, drop blanks, duplicates and words with
//     characters outside A–Z (they can never be solutions).
//   - Keep a per-letter bitset index so that filtering a dictionary for a
//     letter combination is a handful of bitset operations instead of a scan
//     over every word's characters.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bits-and-blooms/bitset"

	"github.com/kbseah/spelling-wasp/assets"
)

// ErrEmpty is returned when a word source yields no usable words.
var ErrEmpty = errors.New("words: dictionary is empty")

// Dictionary is an immutable, normalized word list.
type Dictionary struct {
	words []string
	// index[i] has bit n set when words[n] contains 'A'+i.
	index [len(Alphabet)]*bitset.BitSet
}

// New builds a Dictionary from raw words. Input order is kept (first
// occurrence wins for duplicates).
func New(list []string) *Dictionary {
	d := &Dictionary{}
	var masks []LetterSet
	seen := make(map[string]struct{}, len(list))
	for _, raw := range list {
		w := strings.ToUpper(strings.TrimSpace(raw))
		if w == "" {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		mask, ok := MaskOf(w)
		if !ok {
			continue
		}
		seen[w] = struct{}{}
		d.words = append(d.words, w)
		masks = append(masks, mask)
	}

	n := uint(len(d.words))
	for i := range d.index {
		d.index[i] = bitset.New(n)
	}
	for n, mask := range masks {
		for i := range d.index {
			if mask&(1<<i) != 0 {
				d.index[i].Set(uint(n))
			}
		}
	}
	return d
}

// Read parses one word per line from r.
func Read(r io.Reader) (*Dictionary, error) {
	var list []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		list = append(list, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read words: %w", err)
	}
	d := New(list)
	if d.Len() == 0 {
		return nil, ErrEmpty
	}
	return d, nil
}

// Load reads a dictionary file.
func Load(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	d, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Default returns the small dictionary embedded in the binary.
func Default() (*Dictionary, error) {
	list, err := assets.WordList()
	if err != nil {
		return nil, fmt.Errorf("embedded words: %w", err)
	}
	d := New(list)
	if d.Len() == 0 {
		return nil, ErrEmpty
	}
	return d, nil
}

// Len returns the number of distinct usable words.
func (d *Dictionary) Len() int { return len(d.words) }

// Matching returns, in dictionary order, every word that contains key, uses
// only letters from letters (key is always allowed) and is at least minLen
// long.
func (d *Dictionary) Matching(key byte, letters LetterSet, minLen int) []string {
	if key < 'A' || key > 'Z' || len(d.words) == 0 {
		return nil
	}
	letters |= SetOf(key)

	cand := d.index[key-'A'].Clone()
	for i := range d.index {
		if letters&(1<<i) == 0 {
			cand.InPlaceDifference(d.index[i])
		}
	}

	var out []string
	for n, ok := cand.NextSet(0); ok; n, ok = cand.NextSet(n + 1) {
		if w := d.words[n]; len(w) >= minLen {
			out = append(out, w)
		}
	}
	return out
}
