// internal/solver/convert.go
//
// Conversion boundary between untyped wire input and validated core types.
// This is the only place free-form strings and state labels are accepted;
// everything past here assumes validated values. Bad input is rejected with
// a typed error, never defaulted.

package solver

import "fmt"

// LetterInput is the wire form of one guess position.
type LetterInput struct {
	Character string `json:"character"`
	State     string `json:"state"`
}

// ParseGuess validates a full guess from wire form.
// Errors:
//   - ErrInvalidWord:   wrong number of positions.
//   - ErrInvalidLetter: a character that is not exactly one ASCII letter.
//   - ErrInvalidState:  an unrecognized label, or "unknown" on a finalized guess.
func ParseGuess(letters []LetterInput) (Guess, error) {
	if len(letters) != WordLen {
		return Guess{}, fmt.Errorf("%w: guess has %d positions, want %d", ErrInvalidWord, len(letters), WordLen)
	}
	var parsed [WordLen]Letter
	for i, in := range letters {
		state, err := ParseLetterState(in.State)
		if err != nil {
			return Guess{}, fmt.Errorf("position %d: %w", i, err)
		}
		l, err := NewLetter(in.Character, state)
		if err != nil {
			return Guess{}, fmt.Errorf("position %d: %w", i, err)
		}
		parsed[i] = l
	}
	return GuessFromLetters(parsed)
}

// ParseHistory converts a list of wire guesses in entry order.
func ParseHistory(guesses [][]LetterInput) ([]Guess, error) {
	out := make([]Guess, 0, len(guesses))
	for i, g := range guesses {
		parsed, err := ParseGuess(g)
		if err != nil {
			return nil, fmt.Errorf("guess %d: %w", i, err)
		}
		out = append(out, parsed)
	}
	return out, nil
}
