package frontend

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kbseah/spelling-wasp/internal/game"
	"github.com/kbseah/spelling-wasp/internal/session"
)

const cliPrompt = "... Try a word / [Space] shuffle / [!] hint / [?] help / [Enter] quit >>> "

// RunCLI plays s on a line-oriented terminal until the player enters an
// empty line, input ends, or every word is found.
func RunCLI(in io.Reader, out io.Writer, s *session.Session, opts Options) error {
	w := bufio.NewWriter(out)
	defer w.Flush()

	fmt.Fprintln(w, separator)
	fmt.Fprintln(w, "Bzz! Welcome to Spelling Wasp!")
	fmt.Fprintln(w, "Unlike a Spelling Bee, we can sting you multiple times in a day")
	printStatus(w, s.Game().Status())

	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(w, cliPrompt)
		if err := w.Flush(); err != nil {
			return err
		}
		if !sc.Scan() {
			fmt.Fprintln(w)
			break
		}
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			break
		}

		switch tok := strings.TrimSpace(line); {
		case tok == "":
			s.Shuffle()
			printStatus(w, s.Game().Status())
		case tok == "?":
			printHelp(w, s.Game().Key(), opts)
		case tok == "!":
			fmt.Fprintln(w, separator)
			if h, err := s.Hint(); errors.Is(err, game.ErrNoHint) {
				fmt.Fprintln(w, "No hints left: you found every word!")
			} else {
				fmt.Fprintln(w, "Hint: "+h)
			}
		case !isWord(tok):
			fmt.Fprintln(w, separator)
			fmt.Fprintln(w, "Letters only, one word at a time")
		default:
			res := s.Guess(tok)
			fmt.Fprintln(w, separator)
			fmt.Fprintln(w, res.Message)
			if res.Class.New() {
				printStatus(w, s.Game().Status())
			}
			if won(s, res) {
				fmt.Fprintln(w, separator)
				fmt.Fprintln(w, "bzzzz bzzzz bzzzz YOU GUESSED ALL THE WORDS! bzzz bzzz bzzz")
				return sayGoodbye(w, s)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return sayGoodbye(w, s)
}

func printStatus(w io.Writer, st game.Status) {
	fmt.Fprintln(w, separator)
	fmt.Fprintln(w, "Letters: "+lettersLine(st))
	fmt.Fprintln(w, "Correct: "+strings.Join(st.Correct, " "))
	fmt.Fprintf(w, "Score: %d | unguessed: %d\n", st.Score, st.Remaining)
}

func printHelp(w io.Writer, key byte, opts Options) {
	fmt.Fprintln(w, separator)
	fmt.Fprintln(w, "Form a word from the allowed letters.")
	fmt.Fprintf(w, "The word must contain the highlighted key letter %c\n", key)
	fmt.Fprintln(w, "Letters may be repeated.")
	fmt.Fprintln(w, "You may type the word in upper or lower case")
	fmt.Fprintln(w, "Type ? to see this help message again.")
	fmt.Fprintln(w, "Type ! for a hint")
	fmt.Fprintln(w, "Type Space to shuffle the letters around")
	fmt.Fprintln(w, "Type Enter only to end the game and see the solutions")
	if opts.Fact != nil {
		fmt.Fprintln(w, "Wasp fact: "+opts.fact())
	}
}

func sayGoodbye(w *bufio.Writer, s *session.Session) error {
	fmt.Fprintln(w, separator)
	fmt.Fprintln(w, "Thank you for playing Spelling Wasp")
	g := s.Game()
	fmt.Fprintf(w, "Final score: %d\n", g.Score())
	fmt.Fprintf(w, "Words found: %d of %d\n", g.Correct().Len(), g.Total())
	if missed := g.Unplayed(); len(missed) > 0 {
		fmt.Fprintln(w, "Words that you missed:")
		fmt.Fprintln(w, strings.Join(missed, " "))
	}
	fmt.Fprintln(w, separator)
	return w.Flush()
}
