package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// states builds a state array from a compact 5-char code:
// c=correct, m=misplaced, x=absent, u=unknown.
func states(t *testing.T, code string) [WordLen]LetterState {
	t.Helper()
	require.Len(t, code, WordLen)
	var out [WordLen]LetterState
	for i := 0; i < WordLen; i++ {
		switch code[i] {
		case 'c':
			out[i] = StateCorrect
		case 'm':
			out[i] = StateMisplaced
		case 'x':
			out[i] = StateAbsent
		case 'u':
			out[i] = StateUnknown
		default:
			t.Fatalf("bad state code %q", code)
		}
	}
	return out
}

// guess builds a finalized Guess or fails the test.
func guess(t *testing.T, word, code string) Guess {
	t.Helper()
	w, err := NewWord(word)
	require.NoError(t, err)
	g, err := NewGuess(w, states(t, code))
	require.NoError(t, err)
	return g
}

func TestFeedback(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		guess  string
		want   string
	}{
		{name: "all correct", answer: "chart", guess: "chart", want: "ccccc"},
		{name: "all absent", answer: "chart", guess: "wound", want: "xxxxx"},
		{name: "all misplaced anagram", answer: "smart", guess: "tarms", want: "mmmmm"},
		{name: "two misplaced one exhausted", answer: "paint", guess: "apple", want: "mmxxx"},
		{name: "repeated guess letter single occurrence", answer: "plane", guess: "happy", want: "xmmxx"},
		{name: "exact match outranks misplaced", answer: "paper", guess: "happy", want: "xccmx"},
		{name: "repeated answer letter both found", answer: "speed", guess: "erase", want: "mxxmm"},
		{name: "no letters shared", answer: "fuzzy", guess: "train", want: "xxxxx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answer, err := NewWord(tt.answer)
			require.NoError(t, err)
			gw, err := NewWord(tt.guess)
			require.NoError(t, err)
			assert.Equal(t, states(t, tt.want), Feedback(answer, gw))
		})
	}
}

func TestMatches(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		guessWord string
		code      string
		want      bool
	}{
		{name: "all correct matches itself", candidate: "chart", guessWord: "chart", code: "ccccc", want: true},
		{name: "all correct rejects one-off word", candidate: "charm", guessWord: "chart", code: "ccccc", want: false},
		{name: "all absent disjoint letters", candidate: "chart", guessWord: "wound", code: "xxxxx", want: true},
		{name: "all absent rejects shared letter", candidate: "chart", guessWord: "wrath", code: "xxxxx", want: false},
		{name: "all misplaced anagram", candidate: "smart", guessWord: "tarms", code: "mmmmm", want: true},
		{name: "all misplaced rejects fixed point", candidate: "smart", guessWord: "strap", code: "mmmmm", want: false},
		{name: "happy vs paper canonical", candidate: "paper", guessWord: "happy", code: "xccmx", want: true},
		{name: "happy vs paper second p not absent", candidate: "paper", guessWord: "happy", code: "xccxx", want: false},
		{name: "double misplaced needs two occurrences", candidate: "plane", guessWord: "happy", code: "xmmmx", want: false},
		{name: "single occurrence consumed once", candidate: "plane", guessWord: "happy", code: "xmmxx", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cand, err := NewWord(tt.candidate)
			require.NoError(t, err)
			assert.Equal(t, tt.want, Matches(cand, guess(t, tt.guessWord, tt.code)))
		})
	}
}

func TestNewGuess_RejectsUnfinalizedStates(t *testing.T) {
	w, err := NewWord("paint")
	require.NoError(t, err)

	_, err = NewGuess(w, states(t, "ccuxm"))
	assert.ErrorIs(t, err, ErrInvalidState)

	_, err = NewGuess(w, [WordLen]LetterState{StateCorrect, StateCorrect, "", StateAbsent, StateAbsent})
	assert.ErrorIs(t, err, ErrInvalidState)
}
