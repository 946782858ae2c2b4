package sprechpass

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSegmentAlternatesFromConsonant(t *testing.T) {
	got := Segment("schmied", DefaultVowels)
	want := []Group{
		{Text: "sch", Start: true},
		{Text: "ie", Vowel: true},
		{Text: "d", End: true},
	}
	require.Equal(t, want, got)
}

func TestSegmentVowelInitialAndFinal(t *testing.T) {
	got := Segment("auto", DefaultVowels)
	want := []Group{
		{Text: "", Start: true},
		{Text: "au", Vowel: true},
		{Text: "t"},
		{Text: "o", Vowel: true},
		{Text: "", End: true},
	}
	require.Equal(t, want, got)
}

func TestSegmentNoVowels(t *testing.T) {
	got := Segment("bcd", DefaultVowels)
	require.Equal(t, []Group{{Text: "bcd", Start: true, End: true}}, got)
}

func TestSegmentEmptyWord(t *testing.T) {
	got := Segment("", DefaultVowels)
	require.Equal(t, []Group{{Text: "", Start: true, End: true}}, got)
}

func TestSegmentKeepsUnknownCharacters(t *testing.T) {
	// Characters outside the vowel alphabet count as consonants, whatever
	// they are.
	got := Segment("e-mail", DefaultVowels)
	want := []Group{
		{Text: "", Start: true},
		{Text: "e", Vowel: true},
		{Text: "-m"},
		{Text: "ai", Vowel: true},
		{Text: "l", End: true},
	}
	require.Equal(t, want, got)
}
