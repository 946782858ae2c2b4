package sprechpass

import (
	"iter"
	"sort"
)

// PairKind classifies an adjacent group pair by its position in the word.
type PairKind int

const (
	// KindStart pairs the (possibly empty) word-initial consonant run with
	// the first vowel run.
	KindStart PairKind = iota
	// KindVowelConsonant pairs an interior vowel run with the consonant run
	// that follows it.
	KindVowelConsonant
	// KindConsonantVowel pairs an interior consonant run with the vowel run
	// that follows it.
	KindConsonantVowel
	// KindEnd pairs the last vowel run with the (possibly empty) word-final
	// consonant run.
	KindEnd
)

// Pair is an ordered pair of textually adjacent group texts with its
// accumulated frequency across the corpus.
type Pair struct {
	Count int
	A, B  string
	Kind  PairKind
}

// CountPairs segments every word and counts each ordered pair of adjacent
// groups, keeping pairs that touch a word boundary apart from interior ones.
// The result is ranked by count descending; ties are broken by (A, B)
// ascending, so the ranking is reproducible for a given corpus.
func CountPairs(words iter.Seq[string], vowels string) []Pair {
	type pairKey struct {
		a, b string
		kind PairKind
	}
	counts := make(map[pairKey]int)
	for word := range words {
		groups := Segment(word, vowels)
		for i := 0; i+1 < len(groups); i++ {
			a, b := groups[i], groups[i+1]
			counts[pairKey{a: a.Text, b: b.Text, kind: classify(a, b)}]++
		}
	}

	pairs := make([]Pair, 0, len(counts))
	for k, n := range counts {
		pairs = append(pairs, Pair{Count: n, A: k.a, B: k.b, Kind: k.kind})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Count != pairs[j].Count {
			return pairs[i].Count > pairs[j].Count
		}
		if pairs[i].A != pairs[j].A {
			return pairs[i].A < pairs[j].A
		}
		return pairs[i].B < pairs[j].B
	})
	return pairs
}

func classify(a, b Group) PairKind {
	switch {
	case a.Start:
		return KindStart
	case b.End:
		return KindEnd
	case a.Vowel:
		return KindVowelConsonant
	default:
		return KindConsonantVowel
	}
}
