// internal/board/board.go
//
// Board model and dice-based generator for the Boggle engine.
// Defines:
//   - Tile: a 1–2 character uppercase glyph (the "QU" die face is a single
//     tile contributing two characters to a word).
//   - Position: (row, col) grid coordinate.
//   - Board: immutable square grid of tiles.
//
// Generation draws size*size dice from the classic 16-die set (cycling when
// the grid is larger), shuffles the dice-to-cell assignment uniformly, then
// rolls each die's six faces uniformly. Boards are intentionally
// non-deterministic; GenerateSeeded exists for daily boards and tests.

package board

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"strings"
)

// Tile is the glyph shown on one grid cell, always uppercase.
type Tile string

// Position is a grid coordinate, 0 <= Row,Col < size.
type Position struct {
	Row int
	Col int
}

// Adjacent reports whether q is one king-move away from p: both deltas in
// {-1,0,1} and not both zero.
func (p Position) Adjacent(q Position) bool {
	dr, dc := q.Row-p.Row, q.Col-p.Col
	if dr < -1 || dr > 1 || dc < -1 || dc > 1 {
		return false
	}
	return dr != 0 || dc != 0
}

// Board is a square grid of tiles, immutable once generated.
type Board struct {
	size int
	grid [][]Tile
}

// dice is the classic 16-die face set. Letter multiplicities across the
// faces encode English letter-frequency balance; the Q die carries the
// "QU" digraph face.
var dice = [][]string{
	{"A", "A", "E", "E", "G", "N"},
	{"A", "B", "B", "J", "O", "O"},
	{"A", "C", "H", "O", "P", "S"},
	{"A", "F", "F", "K", "P", "S"},
	{"A", "O", "O", "T", "T", "W"},
	{"C", "I", "M", "O", "T", "U"},
	{"D", "E", "I", "L", "R", "X"},
	{"D", "E", "L", "R", "V", "Y"},
	{"D", "I", "S", "T", "T", "Y"},
	{"E", "E", "G", "H", "N", "W"},
	{"E", "E", "I", "N", "S", "U"},
	{"E", "H", "R", "T", "V", "W"},
	{"E", "I", "O", "S", "S", "T"},
	{"E", "L", "R", "T", "T", "Y"},
	{"H", "I", "M", "N", "QU", "U"},
	{"H", "L", "N", "N", "R", "Z"},
}

const (
	// MinSize and MaxSize bound Generate. The upper bound keeps the
	// solver's per-path visited state in a single 64-bit mask.
	MinSize = 2
	MaxSize = 8
)

// Generate produces a fresh random size×size board. Two calls produce
// different boards; the PCG source is seeded from crypto/rand.
func Generate(size int) (*Board, error) {
	var seed [16]byte
	if _, err := crand.Read(seed[:]); err != nil {
		return nil, fmt.Errorf("board: seeding generator: %w", err)
	}
	rng := rand.New(rand.NewPCG(
		binary.BigEndian.Uint64(seed[:8]),
		binary.BigEndian.Uint64(seed[8:]),
	))
	return generate(size, rng)
}

// GenerateSeeded produces a size×size board deterministically from seed.
// The same seed and size always yield the same board.
func GenerateSeeded(size int, seed uint64) (*Board, error) {
	return generate(size, rand.New(rand.NewPCG(seed, 0)))
}

func generate(size int, rng *rand.Rand) (*Board, error) {
	if size < MinSize || size > MaxSize {
		return nil, fmt.Errorf("board: unsupported size %d (want %d..%d)", size, MinSize, MaxSize)
	}

	// Assign a die to every cell, cycling the set for big grids, then
	// shuffle the assignment so each permutation is equally likely.
	cells := size * size
	assign := make([]int, cells)
	for i := range assign {
		assign[i] = i % len(dice)
	}
	rng.Shuffle(cells, func(i, j int) {
		assign[i], assign[j] = assign[j], assign[i]
	})

	grid := make([][]Tile, size)
	for r := 0; r < size; r++ {
		grid[r] = make([]Tile, size)
		for c := 0; c < size; c++ {
			die := dice[assign[r*size+c]]
			grid[r][c] = Tile(die[rng.IntN(len(die))])
		}
	}
	return &Board{size: size, grid: grid}, nil
}

// FromRows builds a board directly from rows of tiles, for fixed layouts
// (tests, replayed boards received from a peer). Every row must have
// exactly len(rows) entries and every glyph must be 1–2 letters.
func FromRows(rows [][]Tile) (*Board, error) {
	size := len(rows)
	if size == 0 {
		return nil, fmt.Errorf("board: no rows")
	}
	grid := make([][]Tile, size)
	for r, row := range rows {
		if len(row) != size {
			return nil, fmt.Errorf("board: row %d has %d tiles, want %d", r, len(row), size)
		}
		grid[r] = make([]Tile, size)
		for c, t := range row {
			up := Tile(strings.ToUpper(string(t)))
			if len(up) < 1 || len(up) > 2 {
				return nil, fmt.Errorf("board: tile %q at (%d,%d) must be 1-2 letters", t, r, c)
			}
			grid[r][c] = up
		}
	}
	return &Board{size: size, grid: grid}, nil
}

// Size returns the side length of the board.
func (b *Board) Size() int { return b.size }

// At is a bounds-checked accessor. It returns false instead of failing for
// out-of-range positions so callers can probe neighbors freely.
func (b *Board) At(p Position) (Tile, bool) {
	if p.Row < 0 || p.Row >= b.size || p.Col < 0 || p.Col >= b.size {
		return "", false
	}
	return b.grid[p.Row][p.Col], true
}

// Rows returns a copy of the grid, row-major. Mutating the copy does not
// affect the board.
func (b *Board) Rows() [][]Tile {
	out := make([][]Tile, b.size)
	for r := range b.grid {
		out[r] = append([]Tile(nil), b.grid[r]...)
	}
	return out
}

// String renders the grid one row per line, tiles space-separated.
func (b *Board) String() string {
	var sb strings.Builder
	for r, row := range b.grid {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c, t := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(string(t))
		}
	}
	return sb.String()
}
