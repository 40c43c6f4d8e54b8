package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dict(t *testing.T, words ...string) []Word {
	t.Helper()
	out := make([]Word, 0, len(words))
	for _, s := range words {
		w, err := NewWord(s)
		require.NoError(t, err)
		out = append(out, w)
	}
	return out
}

func TestFilter_EmptyHistoryIsIdentity(t *testing.T) {
	d := dict(t, "paint", "taint", "saint", "print")
	got := Filter(d, nil)
	assert.ElementsMatch(t, d, got)
}

func TestFilter_SingleGuess(t *testing.T) {
	d := dict(t, "paint", "taint", "saint", "print")

	// "paint" played, first two letters confirmed in place, rest absent
	// relative to the candidate only if the candidate really scores that way.
	g := guess(t, "paint", "ccccc")
	got := Filter(d, []Guess{g})
	assert.Equal(t, dict(t, "paint"), got)
}

func TestFilter_IntersectsAcrossHistory(t *testing.T) {
	d := dict(t, "crane", "trace", "farce", "grace", "cider")

	history := []Guess{
		// 't' absent, 'r' and 'a' elsewhere, "ce" tail confirmed.
		guess(t, "trace", "xmmcc"),
	}
	got := Filter(d, history)
	assert.Equal(t, dict(t, "farce"), got)
	for _, w := range got {
		assert.True(t, Matches(w, history[0]), "word %s should match history", w)
	}
}

func TestFilter_Idempotent(t *testing.T) {
	d := dict(t, "crane", "trace", "brace", "grace", "slate", "cider")
	history := []Guess{guess(t, "slate", "xxmxm")}

	once := Filter(d, history)
	twice := Filter(once, history)
	assert.Equal(t, once, twice)
}

func TestFilter_MonotoneUnderAppendedGuess(t *testing.T) {
	d := dict(t, "crane", "trace", "brace", "grace", "slate", "cider", "paint")
	h1 := []Guess{guess(t, "cider", "mxxmm")}
	h2 := append(append([]Guess{}, h1...), guess(t, "trace", "xcccc"))

	before := Filter(d, h1)
	after := Filter(d, h2)

	require.Len(t, before, 3)
	require.Len(t, after, 2)
	assert.LessOrEqual(t, len(after), len(before))
	for _, w := range after {
		assert.Contains(t, before, w)
	}
}

func TestFilter_DoesNotMutateInputs(t *testing.T) {
	d := dict(t, "crane", "trace", "brace")
	orig := append([]Word{}, d...)
	history := []Guess{guess(t, "slate", "xxxxx")}

	_ = Filter(d, history)
	assert.Equal(t, orig, d)
}

func TestFilter_PreservesDictionaryOrder(t *testing.T) {
	d := dict(t, "grace", "brace", "trace")
	history := []Guess{guess(t, "place", "xxccc")}

	got := Filter(d, history)
	assert.Len(t, got, 3)
	for _, w := range got {
		assert.True(t, Matches(w, history[0]))
	}
	// Survivors appear in the same relative order as the dictionary.
	last := -1
	for _, w := range got {
		idx := indexOf(d, w)
		assert.Greater(t, idx, last)
		last = idx
	}
}

func indexOf(ws []Word, w Word) int {
	for i, x := range ws {
		if x == w {
			return i
		}
	}
	return -1
}
