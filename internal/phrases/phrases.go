// Package phrases provides the flavor text shown by the game: cheers for new
// words, jeers for misses and the wasp facts shown on request.
//
// Text is read from YAML (see assets/phrases.yaml for the layout). Any list
// left empty in a custom file falls back to the embedded defaults.
package phrases

import (
	"fmt"
	"math/rand/v2"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kbseah/spelling-wasp/assets"
)

// Set is a phrase provider. It satisfies game.Phrases.
type Set struct {
	Encouragements  []string `yaml:"encouragement"`
	Discouragements []string `yaml:"discouragement"`
	Facts           []string `yaml:"facts"`
}

// Default returns the embedded phrase set.
func Default() (*Set, error) {
	raw, err := assets.Phrases()
	if err != nil {
		return nil, fmt.Errorf("embedded phrases: %w", err)
	}
	return Parse(raw)
}

// Parse decodes a YAML phrase file.
func Parse(raw []byte) (*Set, error) {
	var s Set
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("parse phrases: %w", err)
	}
	return &s, nil
}

// Load reads a YAML phrase file from path and fills empty lists from the
// embedded defaults. An empty path returns the defaults.
func Load(path string) (*Set, error) {
	def, err := Default()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return def, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(s.Encouragements) == 0 {
		s.Encouragements = def.Encouragements
	}
	if len(s.Discouragements) == 0 {
		s.Discouragements = def.Discouragements
	}
	if len(s.Facts) == 0 {
		s.Facts = def.Facts
	}
	return s, nil
}

// Encouragement picks a random cheer.
func (s *Set) Encouragement(r *rand.Rand) string { return pick(r, s.Encouragements, "Yes!") }

// Discouragement picks a random jeer.
func (s *Set) Discouragement(r *rand.Rand) string { return pick(r, s.Discouragements, "Nope") }

// Fact picks a random wasp fact.
func (s *Set) Fact(r *rand.Rand) string { return pick(r, s.Facts, "Wasps are insects.") }

func pick(r *rand.Rand, list []string, fallback string) string {
	if len(list) == 0 {
		return fallback
	}
	return list[r.IntN(len(list))]
}
