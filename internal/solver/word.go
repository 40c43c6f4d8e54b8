// internal/solver/word.go
//
// Word is the fixed-length letter sequence shared by dictionary entries and
// guesses. A Word is always exactly WordLen lowercase ASCII letters; the
// constructor is the only way to obtain one from external input.

package solver

import "fmt"

// WordLen is the single supported word length.
const WordLen = 5

// Word is a validated, case-normalized 5-letter word.
type Word string

// NewWord validates and normalizes s into a Word.
// Fails with ErrInvalidWord on wrong length or non-alphabetic content.
func NewWord(s string) (Word, error) {
	if len(s) != WordLen {
		return "", fmt.Errorf("%w: %q has length %d, want %d", ErrInvalidWord, s, len(s), WordLen)
	}
	b := make([]byte, WordLen)
	for i := 0; i < WordLen; i++ {
		c := lower(s[i])
		if c < 'a' || c > 'z' {
			return "", fmt.Errorf("%w: %q contains non-alphabetic character", ErrInvalidWord, s)
		}
		b[i] = c
	}
	return Word(b), nil
}

func (w Word) String() string { return string(w) }
