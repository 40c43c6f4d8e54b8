// internal/solver/letter.go
//
// Letter-level value types for the helper core.
// Defines:
//   - LetterState: feedback state for one guess position.
//   - Letter: a single lowercase a–z character paired with a state.
//
// Letters are immutable values; all validation happens in the constructors.

package solver

import (
	"errors"
	"fmt"
)

// LetterState represents the feedback for a single letter in a guess.
// Possible values:
//   - "unknown":   no feedback entered yet (UI placeholder only).
//   - "correct":   letter is in the word at this exact position.
//   - "misplaced": letter is in the word but at a different position.
//   - "absent":    letter has no unconsumed occurrence in the word.
type LetterState string

const (
	StateUnknown   LetterState = "unknown"
	StateCorrect   LetterState = "correct"
	StateMisplaced LetterState = "misplaced"
	StateAbsent    LetterState = "absent"
)

// Validation errors surfaced by the constructors in this package.
var (
	ErrInvalidWord   = errors.New("invalid word")
	ErrInvalidLetter = errors.New("invalid letter")
	ErrInvalidState  = errors.New("invalid letter state")
)

// ParseLetterState maps a wire label onto a LetterState.
// Unrecognized labels are an error, never coerced to StateUnknown.
func ParseLetterState(label string) (LetterState, error) {
	switch LetterState(label) {
	case StateUnknown, StateCorrect, StateMisplaced, StateAbsent:
		return LetterState(label), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidState, label)
}

// Finalized reports whether s is allowed in a submitted guess.
func (s LetterState) Finalized() bool {
	return s == StateCorrect || s == StateMisplaced || s == StateAbsent
}

// Letter is one character of a guess together with its feedback state.
type Letter struct {
	Char  byte
	State LetterState
}

// NewLetter builds a Letter from a single-character string and a state.
// The character is case-normalized; anything that is not exactly one
// ASCII letter is rejected.
func NewLetter(char string, state LetterState) (Letter, error) {
	if len(char) != 1 {
		return Letter{}, fmt.Errorf("%w: %q is not a single character", ErrInvalidLetter, char)
	}
	c := lower(char[0])
	if c < 'a' || c > 'z' {
		return Letter{}, fmt.Errorf("%w: %q is not alphabetic", ErrInvalidLetter, char)
	}
	return Letter{Char: c, State: state}, nil
}

// lower folds an ASCII uppercase letter to lowercase; other bytes pass through.
func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
