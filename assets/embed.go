// assets/embed.go
//
// Embedded fallbacks so the game runs without any files on disk:
//   - words.txt:    a small dictionary, one word per line ('#' lines are comments).
//   - phrases.yaml: default flavor text (encouragement, discouragement, facts).

package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed words.txt phrases.yaml
var FS embed.FS

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// WordList returns the embedded dictionary lines as stored (arbitrary case).
func WordList() ([]string, error) {
	return readLines("words.txt")
}

// Phrases returns the raw embedded phrase file.
func Phrases() ([]byte, error) {
	return FS.ReadFile("phrases.yaml")
}
