package sprechpass

import "slices"

// Strength estimates the number of distinct outputs reachable through the
// model's four-stage chain. It counts the key chains that are mutually
// compatible across all four tables; each qualifying chain contributes
// exactly one, independent of how many successor values the StartVowel
// table offers for it. Published password-space figures are calibrated
// against this exact count.
func Strength(m *Model) int {
	return chainCount(m.Chain(), "", false)
}

// StrengthFor is Strength restricted to chains whose VowelEnd table offers
// the given final group. The empty string is a valid final group, so the
// filter is a separate argument rather than a sentinel value.
func StrengthFor(m *Model, final string) int {
	return chainCount(m.Chain(), final, true)
}

// chainCount recurses from the deepest table backward: every key whose
// successor list admits the active filter value contributes the count of
// the remaining tables with that key as the new filter, or one when no
// tables remain.
func chainCount(tables []ChainTable, want string, fixed bool) int {
	last := tables[len(tables)-1]
	rest := tables[:len(tables)-1]
	total := 0
	for key, successors := range last {
		if fixed && !slices.Contains(successors, want) {
			continue
		}
		if len(rest) == 0 {
			total++
			continue
		}
		total += chainCount(rest, key, true)
	}
	return total
}
