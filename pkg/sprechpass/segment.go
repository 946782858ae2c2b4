package sprechpass

import "strings"

// Group is a maximal run of same-class characters within one word.
type Group struct {
	Text  string
	Vowel bool
	Start bool // directly follows the start of the word
	End   bool // directly precedes the end of the word
}

// Segment splits word into alternating consonant and vowel runs, scanning
// left to right and consuming a maximal consonant run first. The sequence
// always begins and ends with a consonant-class group, which is empty when
// the word begins or ends with a vowel; interior groups are never empty.
// A word without any vowels yields a single group flagged both Start and
// End. Characters outside [a-z] are not rejected; anything missing from the
// vowel alphabet counts as a consonant.
func Segment(word, vowels string) []Group {
	var groups []Group
	i := 0
	for {
		start := i
		for i < len(word) && strings.IndexByte(vowels, word[i]) < 0 {
			i++
		}
		groups = append(groups, Group{Text: word[start:i]})
		if i >= len(word) {
			break
		}
		start = i
		for i < len(word) && strings.IndexByte(vowels, word[i]) >= 0 {
			i++
		}
		groups = append(groups, Group{Text: word[start:i], Vowel: true})
	}
	groups[0].Start = true
	groups[len(groups)-1].End = true
	return groups
}
