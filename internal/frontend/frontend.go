// Package frontend holds the interchangeable ways to play a session: a
// line-oriented prompt (RunCLI) and a keystroke-driven full screen
// (RunFullscreen). Both only use the session API, so either can be swapped
// for another renderer without touching the engine.
package frontend

import (
	"fmt"
	"strings"
	"time"

	"github.com/mitchellh/go-wordwrap"

	"github.com/kbseah/spelling-wasp/internal/game"
	"github.com/kbseah/spelling-wasp/internal/session"
)

const (
	title     = " - - - - - S P E L L I N G  *  W A S P - - - - - "
	width     = 50
	separator = "--------------------------------------------------------------"
)

// Options tunes the front ends.
type Options struct {
	// Fact returns a random wasp fact for the help key; nil disables facts.
	Fact func() string
	// SkipSplash skips the animated splash screen in full-screen mode.
	SkipSplash bool
	// Sleep pauses the splash animation; defaults to time.Sleep.
	Sleep func(time.Duration)
}

func (o Options) sleep(d time.Duration) {
	if o.Sleep != nil {
		o.Sleep(d)
		return
	}
	time.Sleep(d)
}

func (o Options) fact() string {
	if o.Fact == nil {
		return "Wasps are insects."
	}
	return o.Fact()
}

// lettersLine renders "*** G *** A E L N R T".
func lettersLine(st game.Status) string {
	spaced := make([]string, len(st.Allowed))
	for i, c := range st.Allowed {
		spaced[i] = string(c)
	}
	return fmt.Sprintf("*** %c *** %s", st.Key, strings.Join(spaced, " "))
}

// isWord reports whether s is a non-empty run of ASCII letters.
func isWord(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z') {
			return false
		}
	}
	return true
}

// wrap breaks text into lines of at most n columns at spaces. Words longer
// than n get a line of their own.
func wrap(text string, n int) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return strings.Split(wordwrap.WrapString(text, uint(n)), "\n")
}

// won reports whether res was the guess that found the last word. A puzzle
// with no solutions is never won.
func won(s *session.Session, res game.Result) bool {
	return res.Class == game.NewCorrect && s.Game().Solved()
}
