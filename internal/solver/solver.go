// internal/solver/solver.go
//
// Exhaustive word finder for a Boggle board.
// Responsibilities:
//   - FindAllWords: enumerate every dictionary word of length >= 3 that some
//     legal path on the board spells, deduplicated and sorted.
//   - CanFormWord: word-first search used to validate a typed word against
//     the board without enumerating everything.
//
// Algorithm:
//   Depth-first search launched from every cell. The per-path visited state
//   is a 64-bit mask (one bit per cell, boards are capped at 8x8) passed by
//   value through the recursion, so backtracking allocates nothing. Before
//   recursing, the accumulated word plus the candidate tile's glyph is
//   checked with Dictionary.IsPrefix; a false result prunes the whole
//   branch, which is what keeps the nominal 8-way branching tractable.
//   A two-character tile ("QU") extends the candidate atomically: both
//   characters are accepted or pruned together.
//
// The dictionary and board are read-only here, so FindAllWords is safe to
// run on a background goroutine while a session keeps playing against the
// same board.

package solver

import (
	"sort"
	"strings"

	"github.com/lettergrid/boggle/internal/board"
	"github.com/lettergrid/boggle/internal/dict"
)

// minWordLen is the shortest submittable word.
const minWordLen = 3

var offsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// FindAllWords returns every word of length >= 3 that the board can produce,
// without duplicates, sorted alphabetically.
func FindAllWords(b *board.Board, d *dict.Dictionary) []string {
	found := make(map[string]struct{})
	size := b.Size()
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			p := board.Position{Row: r, Col: c}
			tile, _ := b.At(p)
			w := string(tile)
			if !d.IsPrefix(w) {
				continue
			}
			search(b, d, p, w, 1<<uint(r*size+c), found)
		}
	}

	out := make([]string, 0, len(found))
	for w := range found {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// search extends word at position p, whose cell bit is already set in
// visited. word is known to be a live prefix on entry.
func search(b *board.Board, d *dict.Dictionary, p board.Position, word string, visited uint64, found map[string]struct{}) {
	if len(word) >= minWordLen && d.IsWord(word) {
		// Keep going: a terminal node may still prefix a longer word.
		found[word] = struct{}{}
	}

	size := b.Size()
	for _, off := range offsets {
		q := board.Position{Row: p.Row + off[0], Col: p.Col + off[1]}
		tile, ok := b.At(q)
		if !ok {
			continue
		}
		bit := uint64(1) << uint(q.Row*size+q.Col)
		if visited&bit != 0 {
			continue
		}
		next := word + string(tile)
		if !d.IsPrefix(next) {
			continue
		}
		search(b, d, q, next, visited|bit, found)
	}
}

// CanFormWord reports whether some legal path on the board spells word.
// It descends the board matching one target character at a time (two for a
// digraph tile, atomically); the target is fixed, so no dictionary pruning
// is involved.
func CanFormWord(b *board.Board, word string) bool {
	target := strings.ToUpper(word)
	if target == "" {
		return false
	}
	size := b.Size()
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			p := board.Position{Row: r, Col: c}
			if match(b, p, target, 1<<uint(r*size+c)) {
				return true
			}
		}
	}
	return false
}

// match tries to consume a prefix of target with the tile at p (whose bit is
// already set in visited) and recurses into neighbors for the rest.
func match(b *board.Board, p board.Position, target string, visited uint64) bool {
	tile, _ := b.At(p)
	glyph := string(tile)
	if len(glyph) > len(target) || target[:len(glyph)] != glyph {
		return false
	}
	rest := target[len(glyph):]
	if rest == "" {
		return true
	}

	size := b.Size()
	for _, off := range offsets {
		q := board.Position{Row: p.Row + off[0], Col: p.Col + off[1]}
		if _, ok := b.At(q); !ok {
			continue
		}
		bit := uint64(1) << uint(q.Row*size+q.Col)
		if visited&bit != 0 {
			continue
		}
		if match(b, q, rest, visited|bit) {
			return true
		}
	}
	return false
}
