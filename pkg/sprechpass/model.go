// Package sprechpass derives phonotactic chain models from word corpora and
// generates human-pronounceable random passwords from them.
//
// A model holds four chained lookup tables built from the most common
// vowel/consonant group transitions of a language. A password is assembled
// by a five-step random walk across the tables: prefix, vowel, consonant,
// vowel, final consonant, optionally followed by digits.
package sprechpass

import "sort"

// Stage identifies one of the four chain tables, in generation order.
type Stage int

const (
	StageStartVowel     Stage = iota // word prefix -> first vowel run
	StageVowelConsonant              // vowel run -> interior consonant run
	StageConsonantVowel              // consonant run -> next vowel run
	StageVowelEnd                    // vowel run -> word-final consonant run
)

func (s Stage) String() string {
	switch s {
	case StageStartVowel:
		return "start_vowel"
	case StageVowelConsonant:
		return "vowel_consonant"
	case StageConsonantVowel:
		return "consonant_vowel"
	case StageVowelEnd:
		return "vowel_end"
	}
	return "unknown"
}

// ChainTable maps a group's text to the ordered list of successor groups
// that survived the ranked cutoff for one stage. The empty string is a
// legitimate key ("no prefix") and a legitimate value ("no suffix").
type ChainTable map[string][]string

// Keys returns the table's keys in ascending order.
func (t ChainTable) Keys() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the total number of (key, value) entries in the table.
func (t ChainTable) Len() int {
	n := 0
	for _, vs := range t {
		n += len(vs)
	}
	return n
}

func (t ChainTable) keySet() map[string]struct{} {
	set := make(map[string]struct{}, len(t))
	for k := range t {
		set[k] = struct{}{}
	}
	return set
}

// Model is a complete set of chain tables plus the two alphabets consumed
// at generation time. Models are immutable once built: they may be shared
// freely between concurrent generators as long as nobody writes to them.
type Model struct {
	StartVowel     ChainTable
	VowelConsonant ChainTable
	ConsonantVowel ChainTable
	VowelEnd       ChainTable

	// Vowels is the alphabet used to split words into groups.
	Vowels string
	// Digits is the alphabet used for the optional numeric suffix.
	Digits string
}

// Chain returns the four tables in generation order: StartVowel,
// VowelConsonant, ConsonantVowel, VowelEnd.
func (m *Model) Chain() []ChainTable {
	return []ChainTable{m.StartVowel, m.VowelConsonant, m.ConsonantVowel, m.VowelEnd}
}

// Table returns the chain table for the given stage.
func (m *Model) Table(s Stage) ChainTable {
	switch s {
	case StageStartVowel:
		return m.StartVowel
	case StageVowelConsonant:
		return m.VowelConsonant
	case StageConsonantVowel:
		return m.ConsonantVowel
	case StageVowelEnd:
		return m.VowelEnd
	}
	return nil
}
