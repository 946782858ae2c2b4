package sprechpass

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

var buildCorpus = []string{
	"banane", "bananen", "regen", "regal", "lagune",
	"tomate", "tomaten", "salat", "salate", "gurke",
}

func TestBuildTableBudgetIsGlobal(t *testing.T) {
	pairs := []Pair{
		{Count: 9, A: "a", B: "t", Kind: KindEnd},
		{Count: 8, A: "a", B: "nd", Kind: KindEnd},
		{Count: 7, A: "e", B: "r", Kind: KindEnd},
		{Count: 6, A: "e", B: "n", Kind: KindEnd},
		{Count: 5, A: "i", B: "g", Kind: KindEnd},
	}

	table, err := buildTable(pairs, StageVowelEnd, nil, 3)
	require.NoError(t, err)
	// The ceiling applies to total entries, not entries per key: "a" takes
	// two slots and "e" gets only one, "i" none.
	require.Equal(t, ChainTable{"a": {"t", "nd"}, "e": {"r"}}, table)
	require.Equal(t, 3, table.Len())
}

func TestBuildTableBudgetLaw(t *testing.T) {
	pairs := CountPairs(slices.Values(buildCorpus), DefaultVowels)
	matching := 0
	for _, p := range pairs {
		if p.Kind == KindEnd {
			matching++
		}
	}
	require.Greater(t, matching, 2)

	for _, cutoff := range []int{1, 2, matching, matching + 50} {
		table, err := buildTable(pairs, StageVowelEnd, nil, cutoff)
		require.NoError(t, err)
		require.Equal(t, min(cutoff, matching), table.Len(), "cutoff %d", cutoff)
	}
}

func TestBuildTableSkipsKindAndAllowSet(t *testing.T) {
	pairs := []Pair{
		{Count: 9, A: "n", B: "e", Kind: KindConsonantVowel},
		{Count: 8, A: "n", B: "a", Kind: KindConsonantVowel},
		{Count: 7, A: "b", B: "a", Kind: KindStart},
	}
	allow := map[string]struct{}{"a": {}}

	table, err := buildTable(pairs, StageConsonantVowel, allow, 10)
	require.NoError(t, err)
	// "e" is not allowed downstream and the start pair has the wrong kind.
	require.Equal(t, ChainTable{"n": {"a"}}, table)
}

func TestBuildModelChainsConsistently(t *testing.T) {
	b := NewBuilder(30)
	m, strength, err := b.Build(slices.Values(buildCorpus))
	require.NoError(t, err)
	require.Equal(t, Strength(m), strength)

	stages := []struct {
		from ChainTable
		to   ChainTable
	}{
		{m.StartVowel, m.VowelConsonant},
		{m.VowelConsonant, m.ConsonantVowel},
		{m.ConsonantVowel, m.VowelEnd},
	}
	for _, s := range stages {
		for key, successors := range s.from {
			for _, v := range successors {
				_, ok := s.to[v]
				require.True(t, ok, "value %q of key %q missing downstream", v, key)
			}
		}
	}
}

func TestBuildModelDeterministic(t *testing.T) {
	first, s1, err := NewBuilder(25).Build(slices.Values(buildCorpus))
	require.NoError(t, err)
	second, s2, err := NewBuilder(25).Build(slices.Values(buildCorpus))
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, s1, s2)
}

func TestBuildEmptyCorpus(t *testing.T) {
	_, _, err := NewBuilder(10).Build(slices.Values([]string{}))
	require.ErrorIs(t, err, ErrEmptyCorpus)

	_, _, err = NewBuilder(10).Build(slices.Values([]string{"bcd", "krz"}))
	require.ErrorIs(t, err, ErrEmptyCorpus)
}

func TestBuildReportsEmptyStage(t *testing.T) {
	// Words with a single vowel group have start and end pairs but no
	// interior transitions, so the interior stages come up empty.
	_, _, err := NewBuilder(10).Build(slices.Values([]string{"ba", "bad", "rad"}))
	var emptyErr *EmptyTableError
	require.ErrorAs(t, err, &emptyErr)
	require.Equal(t, StageConsonantVowel, emptyErr.Stage)
}
