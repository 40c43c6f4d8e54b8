package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func letters(pairs ...[2]string) []LetterInput {
	out := make([]LetterInput, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, LetterInput{Character: p[0], State: p[1]})
	}
	return out
}

func TestParseGuess(t *testing.T) {
	valid := letters(
		[2]string{"h", "absent"},
		[2]string{"a", "correct"},
		[2]string{"p", "correct"},
		[2]string{"p", "misplaced"},
		[2]string{"y", "absent"},
	)

	g, err := ParseGuess(valid)
	require.NoError(t, err)
	assert.Equal(t, Word("happy"), g.Word)
	assert.Equal(t, [WordLen]LetterState{StateAbsent, StateCorrect, StateCorrect, StateMisplaced, StateAbsent}, g.States)
}

func TestParseGuess_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		input   []LetterInput
		wantErr error
	}{
		{
			name:    "too few positions",
			input:   letters([2]string{"h", "correct"}, [2]string{"i", "correct"}),
			wantErr: ErrInvalidWord,
		},
		{
			name:    "too many positions",
			input:   letters([2]string{"a", "absent"}, [2]string{"b", "absent"}, [2]string{"c", "absent"}, [2]string{"d", "absent"}, [2]string{"e", "absent"}, [2]string{"f", "absent"}),
			wantErr: ErrInvalidWord,
		},
		{
			name: "empty character",
			input: letters([2]string{"", "absent"}, [2]string{"b", "absent"}, [2]string{"c", "absent"},
				[2]string{"d", "absent"}, [2]string{"e", "absent"}),
			wantErr: ErrInvalidLetter,
		},
		{
			name: "multi-character position",
			input: letters([2]string{"ab", "absent"}, [2]string{"b", "absent"}, [2]string{"c", "absent"},
				[2]string{"d", "absent"}, [2]string{"e", "absent"}),
			wantErr: ErrInvalidLetter,
		},
		{
			name: "non-alphabetic character",
			input: letters([2]string{"1", "absent"}, [2]string{"b", "absent"}, [2]string{"c", "absent"},
				[2]string{"d", "absent"}, [2]string{"e", "absent"}),
			wantErr: ErrInvalidLetter,
		},
		{
			name: "unrecognized state label",
			input: letters([2]string{"a", "green"}, [2]string{"b", "absent"}, [2]string{"c", "absent"},
				[2]string{"d", "absent"}, [2]string{"e", "absent"}),
			wantErr: ErrInvalidState,
		},
		{
			name: "unknown state on finalized guess",
			input: letters([2]string{"a", "unknown"}, [2]string{"b", "absent"}, [2]string{"c", "absent"},
				[2]string{"d", "absent"}, [2]string{"e", "absent"}),
			wantErr: ErrInvalidState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseGuess(tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseHistory(t *testing.T) {
	one := letters(
		[2]string{"C", "correct"},
		[2]string{"r", "misplaced"},
		[2]string{"a", "absent"},
		[2]string{"n", "absent"},
		[2]string{"e", "correct"},
	)

	history, err := ParseHistory([][]LetterInput{one, one})
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, Word("crane"), history[0].Word)

	_, err = ParseHistory([][]LetterInput{one, letters([2]string{"a", "unknown"})})
	assert.Error(t, err)
}
