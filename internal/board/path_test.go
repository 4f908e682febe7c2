package board

import "testing"

func mustBoard(t *testing.T, rows [][]Tile) *Board {
	t.Helper()
	b, err := FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	return b
}

func TestIsValidPath(t *testing.T) {
	tests := []struct {
		name string
		path []Position
		want bool
	}{
		{"empty", nil, false},
		{"single", []Position{{0, 0}}, true},
		{"horizontal", []Position{{0, 0}, {0, 1}, {0, 2}}, true},
		{"diagonal", []Position{{0, 0}, {1, 1}, {2, 2}}, true},
		{"king moves mixed", []Position{{1, 1}, {0, 0}, {0, 1}, {1, 2}}, true},
		{"gap", []Position{{0, 0}, {0, 2}}, false},
		{"knight move", []Position{{0, 0}, {1, 2}}, false},
		{"same cell twice in a row", []Position{{0, 0}, {0, 0}}, false},
		{"revisit", []Position{{0, 0}, {0, 1}, {0, 0}}, false},
		{"revisit later", []Position{{0, 0}, {1, 1}, {2, 2}, {1, 1}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidPath(tt.path); got != tt.want {
				t.Errorf("IsValidPath(%v) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

// Every consecutive pair in a valid path must be exactly one king-move
// apart, and no position may repeat.
func TestValidPathInvariants(t *testing.T) {
	path := []Position{{0, 0}, {1, 1}, {1, 2}, {0, 2}, {0, 1}}
	if !IsValidPath(path) {
		t.Fatal("expected valid path")
	}
	seen := make(map[Position]struct{})
	for i, p := range path {
		if _, dup := seen[p]; dup {
			t.Errorf("position %v repeats", p)
		}
		seen[p] = struct{}{}
		if i == 0 {
			continue
		}
		if !path[i-1].Adjacent(p) {
			t.Errorf("step %d: %v not adjacent to %v", i, path[i-1], p)
		}
	}
}

func TestWordFromPath(t *testing.T) {
	b := mustBoard(t, [][]Tile{
		{"QU", "I", "T"},
		{"C", "A", "T"},
		{"R", "A", "T"},
	})

	tests := []struct {
		name string
		path []Position
		want string
	}{
		{"empty", nil, ""},
		{"digraph start", []Position{{0, 0}, {0, 1}, {0, 2}}, "QUIT"},
		{"plain word", []Position{{1, 0}, {1, 1}, {1, 2}}, "CAT"},
		{"off-board skipped", []Position{{1, 0}, {9, 9}}, "C"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WordFromPath(b, tt.path); got != tt.want {
				t.Errorf("WordFromPath = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAdjacent(t *testing.T) {
	p := Position{2, 2}
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			q := Position{p.Row + dr, p.Col + dc}
			want := dr != 0 || dc != 0
			if got := p.Adjacent(q); got != want {
				t.Errorf("Adjacent(%v, %v) = %v, want %v", p, q, got, want)
			}
		}
	}
	if p.Adjacent(Position{2, 4}) || p.Adjacent(Position{0, 2}) {
		t.Error("positions two cells away reported adjacent")
	}
}
