// internal/game/types.go
//
// Core type definitions for the Boggle game engine.
// Defines:
//   - State: round lifecycle phase (idle/loading/active/over).
//   - Reason: outcome code for selection and submission calls.

package game

// State represents the round lifecycle phase.
// Transitions are one-directional (idle → loading → active → over) except
// that a finished round may be restarted (over → loading).
type State string

const (
	StateIdle    State = "idle"
	StateLoading       = "loading"
	StateActive        = "active"
	StateOver          = "over"
)

// Reason is the outcome code returned by mutating session calls. Every
// failure here is an expected user-input condition, not a systemic error,
// so these are plain codes rather than Go errors.
type Reason string

const (
	// OK marks a successful call.
	OK Reason = "ok"
	// PathTooShort: the resolved word has fewer than 3 characters.
	PathTooShort Reason = "path_too_short"
	// InvalidPath: non-adjacent step or repeated tile in the path.
	InvalidPath Reason = "invalid_path"
	// NotInDictionary: the resolved word is not a dictionary word.
	NotInDictionary Reason = "not_in_dictionary"
	// AlreadyFound: the word was already submitted this round.
	AlreadyFound Reason = "already_found"
	// NotOnBoard: no legal path on the board spells the typed word.
	NotOnBoard Reason = "not_on_board"
	// RoundNotActive: a mutating call arrived outside the active state.
	RoundNotActive Reason = "round_not_active"
)
