// internal/solver/guess.go
//
// Guess representation and the feedback matcher.
// Responsibilities:
//   - Guess: a played word plus the per-position feedback the player recorded.
//   - Feedback: the classic two-pass Wordle scoring of a guess against a word.
//   - Matches: whether a candidate word could have produced a guess's feedback.
//
// The two-pass scoring is the load-bearing piece: exact-position matches
// consume candidate letters first, then misplaced matches consume what is
// left strictly left to right. Matching is done by recomputing that canonical
// feedback and comparing, never by per-letter containment checks, so
// duplicate letters behave exactly as in the official game.

package solver

import "fmt"

// Guess is one finalized round of feedback: the word that was played and the
// state the player recorded for each position. Immutable once constructed.
type Guess struct {
	Word   Word
	States [WordLen]LetterState
}

// NewGuess pairs a word with finalized per-position states.
// Any StateUnknown (or unrecognized) state is rejected: a guess is only
// eligible for filtering once every position has real feedback.
func NewGuess(w Word, states [WordLen]LetterState) (Guess, error) {
	for i, s := range states {
		if !s.Finalized() {
			return Guess{}, fmt.Errorf("%w: position %d has state %q, want correct/misplaced/absent", ErrInvalidState, i, s)
		}
	}
	return Guess{Word: w, States: states}, nil
}

// GuessFromLetters assembles a Guess from boundary-validated letters.
func GuessFromLetters(letters [WordLen]Letter) (Guess, error) {
	var b [WordLen]byte
	var states [WordLen]LetterState
	for i, l := range letters {
		b[i] = l.Char
		states[i] = l.State
	}
	return NewGuess(Word(b[:]), states)
}

// Feedback scores guess played against answer using the standard two-pass
// Wordle algorithm.
//
// Pass 1:
//   - Mark exact matches Correct.
//   - Count the remaining (non-matched) answer letters.
//
// Pass 2:
//   - For each unresolved position, left to right: if the answer still has an
//     unconsumed occurrence of the guessed letter, mark Misplaced and consume
//     it; otherwise mark Absent.
//
// With a repeated guess letter and a single occurrence in the answer, at most
// one of the repeats scores Correct or Misplaced and the rest come out Absent,
// exact positions taking priority over misplaced ones.
func Feedback(answer, guess Word) [WordLen]LetterState {
	var out [WordLen]LetterState

	// Letter frequency for the non-matched answer positions (a–z).
	var counts [26]int

	for i := 0; i < WordLen; i++ {
		if guess[i] == answer[i] {
			out[i] = StateCorrect
		} else {
			counts[answer[i]-'a']++
		}
	}

	for i := 0; i < WordLen; i++ {
		if out[i] == StateCorrect {
			continue
		}
		j := guess[i] - 'a'
		if counts[j] > 0 {
			out[i] = StateMisplaced
			counts[j]--
		} else {
			out[i] = StateAbsent
		}
	}
	return out
}

// Matches reports whether candidate, had it been the secret word, would have
// produced exactly the feedback recorded in g. Pure and total over validated
// inputs.
func Matches(candidate Word, g Guess) bool {
	return Feedback(candidate, g.Word) == g.States
}
