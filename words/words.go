package words

import (
	"bufio"
	"os"
	"strings"
)

// Dictionary holds the set of known words, loaded once at startup and
// read-only afterwards.
type Dictionary struct {
	words map[string]struct{}
}

func New(list []string) *Dictionary {
	d := &Dictionary{words: make(map[string]struct{}, len(list))}

	for _, w := range list {
		w = strings.TrimSpace(strings.ToLower(w))
		if w != "" && isAlpha(w) {
			d.words[w] = struct{}{}
		}
	}

	return d
}

// Load reads a newline-delimited word list, one word per line. Words are
// trimmed and lowercased; lines with non-alphabetic characters are skipped.
func Load(path string) (*Dictionary, error) {
	f, err := os.Open(path)

	if err != nil {
		return nil, err
	}

	defer f.Close()

	d := &Dictionary{words: make(map[string]struct{})}

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if w != "" && isAlpha(w) {
			d.words[w] = struct{}{}
		}
	}

	if err := sc.Err(); err != nil {
		return nil, err
	}

	return d, nil
}

// Contains reports whether word is in the dictionary, case-insensitively.
// An empty dictionary is treated as permissive: every word is contained.
// Validation degrades to letter-feasibility only when no list was loaded.
func (d *Dictionary) Contains(word string) bool {
	if len(d.words) == 0 {
		return true
	}

	_, ok := d.words[strings.ToLower(word)]
	return ok
}

func (d *Dictionary) Len() int {
	return len(d.words)
}

func (d *Dictionary) Empty() bool {
	return len(d.words) == 0
}

// CanFormFromLetters reports whether word can be spelled from letters,
// treating letters as a multiset: each tile may be used at most once.
// Comparison is case-insensitive.
func CanFormFromLetters(word string, letters []string) bool {
	available := make(map[rune]int, len(letters))

	for _, l := range letters {
		for _, r := range strings.ToLower(l) {
			available[r]++
		}
	}

	for _, r := range strings.ToLower(word) {
		if available[r] == 0 {
			return false
		}
		available[r]--
	}

	return true
}

func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
