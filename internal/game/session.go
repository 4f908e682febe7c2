// internal/game/session.go
//
// Core session engine for a single Boggle round.
// Responsibilities:
//   - Track the round lifecycle: idle → loading → active → over
//     (over → loading when a new round starts).
//   - Maintain the interactive selection path with the rewind/restart
//     gestures expected from drag input.
//   - Validate and score submissions, by path or by typed text.
//
// Notes:
//   - The timer that ends a round lives outside the engine; hosts call End.
//   - The session does no locking. Its mutable fields are owned by one
//     logical caller; hosts driving it from several input sources must
//     serialize the calls themselves. The board and dictionary are
//     read-only, so a background solver can run against them concurrently.

package game

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/lettergrid/boggle/internal/board"
	"github.com/lettergrid/boggle/internal/dict"
	"github.com/lettergrid/boggle/internal/solver"
)

// minWordLen is the shortest submittable word.
const minWordLen = 3

// Session holds the mutable state of one player's round.
type Session struct {
	ID    string // unique session identifier
	dict  *dict.Dictionary
	state State
	board *board.Board
	path  []board.Position
	words []string            // found words, insertion order kept for display
	found map[string]struct{} // duplicate check
	score int
}

// NewSession constructs an idle session bound to a loaded dictionary.
func NewSession(d *dict.Dictionary) *Session {
	return &Session{
		ID:    uuid.NewString(),
		dict:  d,
		state: StateIdle,
	}
}

// Begin moves the session into the loading phase while the host prepares a
// board. Legal from idle or over only.
func (s *Session) Begin() error {
	if s.state != StateIdle && s.state != StateOver {
		return errors.New("game: round already in progress")
	}
	s.state = StateLoading
	return nil
}

// Start activates a round on b, resetting path, found words, and score.
// Legal from loading only.
func (s *Session) Start(b *board.Board) error {
	if s.state != StateLoading {
		return errors.New("game: session is not loading")
	}
	s.board = b
	s.path = nil
	s.words = nil
	s.found = make(map[string]struct{})
	s.score = 0
	s.state = StateActive
	return nil
}

// End forces the round over: the in-progress path is discarded and the
// found words and score freeze. Idempotent.
func (s *Session) End() {
	s.path = nil
	s.state = StateOver
}

// SelectTile applies one touch/drag step to the current path:
//   - Touching the last tile again is a no-op (submission is the host's
//     explicit SubmitWord call, not a path mutation).
//   - Touching a tile that occurs earlier in the path rewinds the path back
//     to and including that tile.
//   - Touching a tile not adjacent to the path's end starts a brand-new
//     single-tile path; the old path is discarded.
//   - Otherwise the tile is appended.
//
// Returns RoundNotActive outside an active round and InvalidPath for
// positions off the board.
func (s *Session) SelectTile(p board.Position) Reason {
	if s.state != StateActive {
		return RoundNotActive
	}
	if _, ok := s.board.At(p); !ok {
		return InvalidPath
	}

	n := len(s.path)
	if n > 0 && s.path[n-1] == p {
		return OK
	}
	for i, q := range s.path[:max(n-1, 0)] {
		if q == p {
			s.path = s.path[:i+1]
			return OK
		}
	}
	if n > 0 && !s.path[n-1].Adjacent(p) {
		s.path = []board.Position{p}
		return OK
	}
	s.path = append(s.path, p)
	return OK
}

// SubmitWord resolves the current path to a word and scores it.
//
// Validation rules, in order:
//   - Round must be active.
//   - Path must be a legal selection (adjacent steps, no reuse).
//   - Resolved word must be at least 3 characters.
//   - Word must be in the dictionary and not already found.
//
// The path is cleared on every outcome except RoundNotActive; score and
// found words change only on success. Returns the resolved word, the points
// awarded, and a Reason.
func (s *Session) SubmitWord() (string, int, Reason) {
	if s.state != StateActive {
		return "", 0, RoundNotActive
	}
	path := s.path
	s.path = nil

	if !board.IsValidPath(path) {
		return "", 0, InvalidPath
	}
	word := board.WordFromPath(s.board, path)
	if len(word) < minWordLen {
		return word, 0, PathTooShort
	}
	return s.accept(word, true)
}

// SubmitWordText scores a typed word: same dictionary and duplicate checks
// as SubmitWord, plus the word must be formable on the board by some legal
// path. The drag path, if any, is left alone.
func (s *Session) SubmitWordText(candidate string) (string, int, Reason) {
	if s.state != StateActive {
		return "", 0, RoundNotActive
	}
	word := strings.ToUpper(strings.TrimSpace(candidate))
	if len(word) < minWordLen {
		return word, 0, PathTooShort
	}
	return s.accept(word, false)
}

// accept runs the shared dictionary/duplicate/board checks and records the
// word on success. onBoard is true when the word came from a validated path.
func (s *Session) accept(word string, onBoard bool) (string, int, Reason) {
	if !s.dict.IsWord(word) {
		return word, 0, NotInDictionary
	}
	if _, dup := s.found[word]; dup {
		return word, 0, AlreadyFound
	}
	if !onBoard && !solver.CanFormWord(s.board, word) {
		return word, 0, NotOnBoard
	}
	s.found[word] = struct{}{}
	s.words = append(s.words, word)
	pts := Score(word)
	s.score += pts
	return word, pts, OK
}

// State reports the current lifecycle phase.
func (s *Session) State() State { return s.state }

// Board returns the active board (nil before the first Start).
func (s *Session) Board() *board.Board { return s.board }

// CurrentPath returns a copy of the in-progress selection path.
func (s *Session) CurrentPath() []board.Position {
	return append([]board.Position(nil), s.path...)
}

// CurrentWord returns the word the in-progress path spells, for display.
func (s *Session) CurrentWord() string {
	if s.board == nil {
		return ""
	}
	return board.WordFromPath(s.board, s.path)
}

// Words returns a copy of the found words in submission order.
func (s *Session) Words() []string {
	return append([]string(nil), s.words...)
}

// Score returns the accumulated round score.
func (s *Session) Score() int { return s.score }
