package frontend

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/kbseah/spelling-wasp/internal/game"
	"github.com/kbseah/spelling-wasp/internal/session"
)

// Control bytes as delivered by a terminal in raw mode.
const (
	keyCtrlC   = 3
	keyEnter   = '\r'
	keyNewline = '\n'
	keyEscape  = 27
)

const clearScreen = "\x1b[2J\x1b[H"

// RawMode puts f into raw mode when it is a terminal and returns a function
// restoring the previous state. On a non-terminal it is a no-op.
func RawMode(f *os.File) (restore func(), err error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return func() {}, nil
	}
	old, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("raw mode: %w", err)
	}
	return func() { _ = term.Restore(fd, old) }, nil
}

// screen redraws the whole display on every keystroke.
type screen struct {
	in   *bufio.Reader
	out  io.Writer
	s    *session.Session
	opts Options

	buf     []byte // word being typed
	message string // line under the prompt
}

// RunFullscreen plays s one keystroke at a time. in should be a terminal in
// raw mode (see RawMode); lines are terminated with CRLF for that reason.
func RunFullscreen(in io.Reader, out io.Writer, s *session.Session, opts Options) error {
	sc := &screen{in: bufio.NewReader(in), out: out, s: s, opts: opts}

	if !opts.SkipSplash {
		if err := sc.splash(); err != nil {
			return sc.endOnEOF(err)
		}
	}
	if err := sc.draw(); err != nil {
		return err
	}

	for {
		c, err := sc.in.ReadByte()
		if err != nil {
			return sc.endOnEOF(err)
		}
		sc.message = ""

		switch {
		case c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z':
			sc.buf = append(sc.buf, c)
		case c == '?':
			sc.message = sc.opts.fact()
		case c == '!':
			if h, err := sc.s.Hint(); errors.Is(err, game.ErrNoHint) {
				sc.message = "No hints left"
			} else {
				sc.message = "Hint: " + h
			}
		case c == ' ':
			sc.s.Shuffle()
			sc.message = "[shuffle]"
		case c == keyEnter || c == keyNewline:
			if len(sc.buf) == 0 {
				return sc.exitReport(true)
			}
			res := sc.s.Guess(string(sc.buf))
			sc.buf = sc.buf[:0]
			sc.message = res.Message
			if won(sc.s, res) {
				return sc.winScreen()
			}
		case c == keyCtrlC:
			return sc.exitReport(false)
		case c == keyEscape:
			sc.skipEscape()
			sc.buf = sc.buf[:0]
		default:
			// Backspace, Delete and any other key cancel the word.
			sc.buf = sc.buf[:0]
		}
		if err := sc.draw(); err != nil {
			return err
		}
	}
}

// skipEscape drops the rest of an escape sequence such as an arrow key.
func (sc *screen) skipEscape() {
	if sc.in.Buffered() == 0 {
		return
	}
	if b, _ := sc.in.ReadByte(); b != '[' || sc.in.Buffered() == 0 {
		return
	}
	_, _ = sc.in.ReadByte()
}

// endOnEOF shows the exit report when input simply ran out.
func (sc *screen) endOnEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return sc.exitReport(false)
	}
	return fmt.Errorf("read key: %w", err)
}

func (sc *screen) write(lines []string) error {
	_, err := io.WriteString(sc.out, clearScreen+strings.Join(lines, "\r\n")+"\r\n")
	return err
}

func titleLines() []string {
	rule := strings.Repeat("-", width)
	return []string{rule, title, rule}
}

func (sc *screen) splash() error {
	lines := titleLines()
	steps := []string{"...Loading dictionary...", "...Gesticulating spines...", "...Recomporting buzzwords..."}
	if err := sc.write(lines); err != nil {
		return err
	}
	for _, step := range steps {
		sc.opts.sleep(500 * time.Millisecond)
		lines = append(lines, step)
		if err := sc.write(lines); err != nil {
			return err
		}
	}
	lines = append(lines, "")
	for i := 1; i <= width; i++ {
		sc.opts.sleep(20 * time.Millisecond)
		lines[len(lines)-1] = strings.Repeat("-", i)
		if err := sc.write(lines); err != nil {
			return err
		}
	}
	lines = append(lines,
		"Bzz! Welcome to Spelling Wasp!",
		"Unlike a Spelling Bee, we can sting you multiple",
		"times in a day",
		" >>> Press any key to start playing <<<",
	)
	if err := sc.write(lines); err != nil {
		return err
	}
	_, err := sc.in.ReadByte()
	return err
}

func statusLines(st game.Status) []string {
	rule := strings.Repeat("-", width)
	lines := []string{
		rule,
		"letters: " + lettersLine(st),
		fmt.Sprintf("score: %d | unguessed: %d", st.Score, st.Remaining),
		rule,
		"correct guesses: ",
	}
	return append(lines, wrap(strings.Join(st.Correct, " "), width)...)
}

func (sc *screen) draw() error {
	lines := titleLines()
	lines = append(lines,
		"Type word then [Enter] to submit",
		"[Backspace] cancel word / [!] hint",
		"[?] wasp fact / [Space] shuffle letters",
		"[Enter] without letters - quit",
		strings.Repeat("-", width),
		">>> "+string(sc.buf),
		sc.message,
	)
	lines = append(lines, statusLines(sc.s.Game().Status())...)
	return sc.write(lines)
}

func (sc *screen) winScreen() error {
	lines := []string{
		"",
		"bzzzz bzzzz bzzzz YOU GUESSED ALL THE WORDS! bzzz bzzz bzzz",
		"Press any key to exit",
	}
	lines = append(lines, statusLines(sc.s.Game().Status())...)
	if err := sc.write(lines); err != nil {
		return err
	}
	_, _ = sc.in.ReadByte()
	return nil
}

// exitReport lists the unguessed words; wait controls whether it waits for a key.
func (sc *screen) exitReport(wait bool) error {
	rule := strings.Repeat("-", width)
	g := sc.s.Game()
	lines := titleLines()
	lines = append(lines,
		"Thank you for playing Spelling Wasp",
		"Press any key to exit",
		rule,
		fmt.Sprintf("final score: %d", g.Score()),
		fmt.Sprintf("words found: %d of %d", g.Correct().Len(), g.Total()),
		rule,
		"These are the words you didn't guess:",
	)
	lines = append(lines, wrap(strings.Join(g.Unplayed(), " "), width)...)
	if err := sc.write(lines); err != nil {
		return err
	}
	if wait {
		_, _ = sc.in.ReadByte()
	}
	return nil
}
