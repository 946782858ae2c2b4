// Package corpus provides word sources for rebuilding phonotactic models:
// line-oriented word lists, free text, web articles, and Japanese text
// romanized through a morphological analyzer.
package corpus

import (
	"bufio"
	"io"
	"iter"
	"strings"
	"unicode"
)

// ScanWords yields one lowercase word per line of r, trimmed of surrounding
// whitespace; blank lines are skipped. The sequence is lazy, single-use, and
// ends early if reading fails.
func ScanWords(r io.Reader) iter.Seq[string] {
	return func(yield func(string) bool) {
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			word := strings.ToLower(strings.TrimSpace(sc.Text()))
			if word == "" {
				continue
			}
			if !yield(word) {
				return
			}
		}
	}
}

// ExtractWords yields every maximal run of letters in text, lowercased.
// Punctuation, digits and whitespace separate words. Non-ASCII letters are
// kept as-is; whether they count as vowels is up to the model's vowel
// alphabet.
func ExtractWords(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		var word strings.Builder
		for _, r := range text {
			if unicode.IsLetter(r) {
				word.WriteRune(unicode.ToLower(r))
				continue
			}
			if word.Len() > 0 {
				if !yield(word.String()) {
					return
				}
				word.Reset()
			}
		}
		if word.Len() > 0 {
			yield(word.String())
		}
	}
}
