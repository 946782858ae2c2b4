package sprechpass

import "iter"

// Defaults used by NewBuilder. The digit alphabet leaves out 0 and 1, which
// read as O and I in many fonts.
const (
	DefaultVowels = "aeiouy"
	DefaultDigits = "23456789"
	DefaultCutoff = 100
)

// Builder derives a fresh Model from a corpus of lowercase words.
type Builder struct {
	// Vowels is the alphabet used to split words into groups.
	Vowels string
	// Digits becomes the built model's digit alphabet.
	Digits string
	// Cutoff is the total entry budget per chain table. It caps the number
	// of (key, value) entries across the whole table, not per key.
	Cutoff int
}

// NewBuilder returns a Builder with the default alphabets. A cutoff of zero
// or less selects DefaultCutoff.
func NewBuilder(cutoff int) *Builder {
	if cutoff <= 0 {
		cutoff = DefaultCutoff
	}
	return &Builder{Vowels: DefaultVowels, Digits: DefaultDigits, Cutoff: cutoff}
}

// Build counts group transitions across the corpus and assembles the four
// chain tables. It returns the model and its strength estimate.
//
// The tables are built in reverse generation order because each table may
// only reference successor groups that already exist as keys one stage
// downstream: VowelEnd first, then ConsonantVowel restricted to VowelEnd's
// keys, VowelConsonant restricted to ConsonantVowel's keys, and finally
// StartVowel restricted to VowelConsonant's keys. A corpus that leaves any
// stage empty is rejected here rather than producing a model that fails at
// generation time.
func (b *Builder) Build(words iter.Seq[string]) (*Model, int, error) {
	pairs := CountPairs(words, b.Vowels)
	if len(pairs) == 0 {
		return nil, 0, ErrEmptyCorpus
	}

	vowelEnd, err := buildTable(pairs, StageVowelEnd, nil, b.Cutoff)
	if err != nil {
		return nil, 0, err
	}
	consonantVowel, err := buildTable(pairs, StageConsonantVowel, vowelEnd.keySet(), b.Cutoff)
	if err != nil {
		return nil, 0, err
	}
	vowelConsonant, err := buildTable(pairs, StageVowelConsonant, consonantVowel.keySet(), b.Cutoff)
	if err != nil {
		return nil, 0, err
	}
	startVowel, err := buildTable(pairs, StageStartVowel, vowelConsonant.keySet(), b.Cutoff)
	if err != nil {
		return nil, 0, err
	}

	m := &Model{
		StartVowel:     startVowel,
		VowelConsonant: vowelConsonant,
		ConsonantVowel: consonantVowel,
		VowelEnd:       vowelEnd,
		Vowels:         b.Vowels,
		Digits:         b.Digits,
	}
	return m, Strength(m), nil
}

// buildTable walks the ranked pair list and greedily keeps the
// highest-frequency pairs of the wanted kind, skipping successors that are
// not in allow (when allow is non-nil), until the entry budget is spent.
// Keys ranked late may end up with few or no successors; that is the
// intended pruning policy.
func buildTable(pairs []Pair, stage Stage, allow map[string]struct{}, budget int) (ChainTable, error) {
	kind := kindFor(stage)
	table := make(ChainTable)
	for _, p := range pairs {
		if p.Kind != kind {
			continue
		}
		if allow != nil {
			if _, ok := allow[p.B]; !ok {
				continue
			}
		}
		table[p.A] = append(table[p.A], p.B)
		budget--
		if budget == 0 {
			break
		}
	}
	if len(table) == 0 {
		return nil, &EmptyTableError{Stage: stage}
	}
	return table, nil
}

func kindFor(stage Stage) PairKind {
	switch stage {
	case StageStartVowel:
		return KindStart
	case StageVowelConsonant:
		return KindVowelConsonant
	case StageConsonantVowel:
		return KindConsonantVowel
	default:
		return KindEnd
	}
}
