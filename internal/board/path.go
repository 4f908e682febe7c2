// internal/board/path.go
//
// Path legality and word projection for drag/tap selections.
// A legal path visits distinct cells where each step is one king-move
// (8-directional adjacency); the word it spells is the concatenation of
// tile glyphs, so a "QU" tile contributes two characters.

package board

import "strings"

// IsValidPath reports whether path is a legal selection: non-empty, every
// consecutive pair 8-directionally adjacent, and no position repeated.
// A single-position path is valid (the state right after the first touch)
// though not submittable on its own.
func IsValidPath(path []Position) bool {
	if len(path) == 0 {
		return false
	}
	seen := make(map[Position]struct{}, len(path))
	for i, p := range path {
		if _, dup := seen[p]; dup {
			return false
		}
		seen[p] = struct{}{}
		if i > 0 && !path[i-1].Adjacent(p) {
			return false
		}
	}
	return true
}

// WordFromPath concatenates the tile glyphs along path, uppercased.
// Pure projection: no legality or bounds validation beyond skipping
// positions that fall off the board, so call IsValidPath first when
// correctness matters.
func WordFromPath(b *Board, path []Position) string {
	var sb strings.Builder
	for _, p := range path {
		if t, ok := b.At(p); ok {
			sb.WriteString(string(t))
		}
	}
	return sb.String()
}
