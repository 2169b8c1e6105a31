package words

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMaskOf(t *testing.T) {
	tests := []struct {
		name   string
		word   string
		want   string
		wantOK bool
	}{
		{"simple", "LARGE", "AEGLR", true},
		{"repeated letters", "GENERAL", "AEGLNR", true},
		{"empty", "", "", true},
		{"lowercase rejected", "large", "", false},
		{"apostrophe rejected", "DON'T", "", false},
		{"digit rejected", "A1", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MaskOf(tt.word)
			if ok != tt.wantOK {
				t.Fatalf("MaskOf(%q) ok = %v, want %v", tt.word, ok, tt.wantOK)
			}
			if got.String() != tt.want {
				t.Errorf("MaskOf(%q) = %s, want %s", tt.word, got, tt.want)
			}
		})
	}
}

func TestLetterSet(t *testing.T) {
	s := SetOf('G', 'A', 'E', 'L', 'N', 'R', 'T', 'a', '!')
	if s.Len() != 7 {
		t.Fatalf("Len = %d, want 7", s.Len())
	}
	if !s.Has('G') || s.Has('Z') || s.Has('a') {
		t.Errorf("Has gave wrong answers for %s", s)
	}
	large, _ := MaskOf("LARGE")
	zebra, _ := MaskOf("ZEBRA")
	if !s.Covers(large) {
		t.Errorf("%s should cover LARGE", s)
	}
	if s.Covers(zebra) {
		t.Errorf("%s should not cover ZEBRA", s)
	}
}

func TestNewNormalizes(t *testing.T) {
	d := New([]string{" large ", "Angel", "LARGE", "", "don't", "café", "rate"})
	want := []string{"LARGE", "ANGEL", "RATE"}
	if diff := cmp.Diff(want, d.words); diff != "" {
		t.Errorf("words mismatch (-want +got):\n%s", diff)
	}
	if d.Len() != 3 {
		t.Errorf("Len = %d, want 3", d.Len())
	}
}

func TestMatching(t *testing.T) {
	d := New([]string{"large", "angel", "rate", "zebra", "gent", "general", "eagle", "gaggle", "tree"})
	allowed := SetOf('A', 'E', 'L', 'N', 'R', 'T')

	tests := []struct {
		name   string
		minLen int
		want   []string
	}{
		{"min five", 5, []string{"LARGE", "ANGEL", "GENERAL", "EAGLE", "GAGGLE"}},
		{"min four", 4, []string{"LARGE", "ANGEL", "GENT", "GENERAL", "EAGLE", "GAGGLE"}},
		{"min seven", 7, []string{"GENERAL"}},
		{"too long", 20, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := d.Matching('G', allowed, tt.minLen)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Matching mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMatchingBadKey(t *testing.T) {
	d := New([]string{"large"})
	if got := d.Matching('g', SetOf('L', 'A', 'R', 'E'), 1); got != nil {
		t.Errorf("lowercase key matched %v", got)
	}
}

func TestRead(t *testing.T) {
	d, err := Read(strings.NewReader("Large\nangel\n\n  rate  \n"))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if diff := cmp.Diff([]string{"LARGE", "ANGEL", "RATE"}, d.words); diff != "" {
		t.Errorf("Read mismatch (-want +got):\n%s", diff)
	}

	if _, err := Read(strings.NewReader("\n\n123\n")); err != ErrEmpty {
		t.Errorf("Read(empty) err = %v, want ErrEmpty", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dict.txt")
	if err := os.WriteFile(path, []byte("garden\nGrand\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d.Len() != 2 {
		t.Errorf("Len = %d, want 2", d.Len())
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDefault(t *testing.T) {
	d, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if d.Len() < 100 {
		t.Errorf("embedded dictionary has %d words, want at least 100", d.Len())
	}
	for _, w := range d.words {
		if w != strings.ToUpper(w) {
			t.Fatalf("word %q not uppercase", w)
		}
	}
}
