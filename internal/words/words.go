// internal/words/words.go
//
// Provides word list management for the Boggle engine.
//
// Responsibilities:
//   - Load the playable word list from an environment-provided file or fall
//     back to the embedded default.
//   - Normalize entries (uppercase, minimum three letters, A–Z only, deduped).
//   - Supply utility functions like List and Stats.
//
// Initialization behavior (Init):
//   1. If BOGGLE_WORDS_FILE is set, load words from that file.
//   2. Otherwise, fall back to the embedded default list from `words.txt`.
//
// Environment variables:
//   BOGGLE_WORDS_FILE=/path/to/words.txt
//
// Constraints:
//   • Words must be at least 3 letters; the dice model cannot produce
//     shorter submissions.
//   • Lists are normalized to uppercase (the engine's internal casing).
//   • Initialization is run once (sync.Once).

package words

import (
	"bufio"
	"errors"
	"os"
	"strings"
	"sync"

	"github.com/samber/lo"

	"github.com/lettergrid/boggle/assets"
)

const minWordLen = 3

var (
	initOnce   sync.Once
	list       []string // normalized playable words
	initialErr error
)

// Init loads the word list exactly once.
// Returns an error if the resulting list is empty.
func Init() error {
	initOnce.Do(func() {
		var raw []string
		var err error

		if path := os.Getenv("BOGGLE_WORDS_FILE"); path != "" {
			raw, err = readWordFile(path)
		} else {
			raw, err = assets.WordList()
		}
		if err != nil {
			initialErr = err
			return
		}

		list = normalize(raw)
		if len(list) == 0 {
			initialErr = errors.New("words: word list is empty")
		}
	})
	return initialErr
}

// readWordFile loads one word per line from a file.
// Blank lines and #-comments are skipped; normalization happens later.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		out = append(out, w)
	}
	return out, sc.Err()
}

// normalize uppercases entries, drops anything shorter than three letters or
// containing a character outside A–Z, and removes duplicates.
func normalize(raw []string) []string {
	upper := lo.Map(raw, func(w string, _ int) string {
		return strings.ToUpper(strings.TrimSpace(w))
	})
	valid := lo.Filter(upper, func(w string, _ int) bool {
		return len(w) >= minWordLen && isAlpha(w)
	})
	return lo.Uniq(valid)
}

// isAlpha reports whether s is all uppercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// List returns the normalized playable word list (all uppercase).
func List() ([]string, error) {
	if err := Init(); err != nil {
		return nil, err
	}
	return list, nil
}

// Stats returns the count of loaded words.
func Stats() int {
	return len(list)
}
