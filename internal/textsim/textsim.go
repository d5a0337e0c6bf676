// Package textsim holds the text primitives every engine component shares:
// normalization, word extraction and the Jaccard similarity used for all
// "find similar" lookups, so rankings stay consistent across components.
package textsim

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MinTokenLen is the minimum rune length of a word that takes part in
// similarity comparisons.
const MinTokenLen = 3

// Normalize lowercases s, replaces every rune that is not a letter, digit,
// underscore or space with a space and collapses runs of whitespace.
func Normalize(s string) string {
	mapped := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '_':
			return unicode.ToLower(r)
		case unicode.IsSpace(r):
			return ' '
		}
		return ' '
	}, s)
	return strings.Join(strings.Fields(mapped), " ")
}

// Tokens returns the set of normalized words of s with at least
// MinTokenLen runes.
func Tokens(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(Normalize(s)) {
		if utf8.RuneCountInString(w) >= MinTokenLen {
			set[w] = struct{}{}
		}
	}
	return set
}

// Similarity is the Jaccard index of the token sets of a and b. It is 0 when
// either side has no qualifying words.
func Similarity(a, b string) float64 {
	ta, tb := Tokens(a), Tokens(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}
	inter := 0
	for w := range ta {
		if _, ok := tb[w]; ok {
			inter++
		}
	}
	union := len(ta) + len(tb) - inter
	return float64(inter) / float64(union)
}

// Words splits the lowercased s on whitespace and keeps words with at least
// minRunes runes. Punctuation is left attached.
func Words(s string, minRunes int) []string {
	var out []string
	for _, w := range strings.Fields(strings.ToLower(s)) {
		if utf8.RuneCountInString(w) >= minRunes {
			out = append(out, w)
		}
	}
	return out
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Union appends the items of each list to dst, skipping values already
// present. First-seen order is preserved.
func Union(dst []string, lists ...[]string) []string {
	seen := make(map[string]bool, len(dst))
	for _, v := range dst {
		seen[v] = true
	}
	for _, list := range lists {
		for _, v := range list {
			if seen[v] {
				continue
			}
			seen[v] = true
			dst = append(dst, v)
		}
	}
	return dst
}
