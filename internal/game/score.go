// internal/game/score.go
//
// Word scoring. Points depend on word length only, using the official
// tiered Boggle table. Length counts characters, so a "QU" tile
// contributes two toward a word's length.

package game

import "github.com/samber/lo"

// Score returns the point value of a word:
// length <3 → 0; 3–4 → 1; 5 → 2; 6 → 3; 7 → 5; 8+ → 11.
func Score(word string) int {
	switch n := len(word); {
	case n < 3:
		return 0
	case n <= 4:
		return 1
	case n == 5:
		return 2
	case n == 6:
		return 3
	case n == 7:
		return 5
	default:
		return 11
	}
}

// TotalScore sums Score over words; 0 for an empty collection.
func TotalScore(words []string) int {
	return lo.SumBy(words, Score)
}
