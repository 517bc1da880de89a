// Package similarity implements the string-matching primitives behind the
// password checks: a substring-aware fuzzy edit distance and longest common
// substring detection.
package similarity

import (
	"strings"
	"unicode/utf8"
)

// FuzzySubstring returns the minimum edit distance between needle and the
// best-aligned substring of haystack. Comparison is case-insensitive.
//
// The scan is a rolling-row Levenshtein dynamic program whose first row is
// seeded with zeros, so the alignment window may begin anywhere in the
// haystack. Seeding the row with increasing costs instead would anchor the
// match at position 0 and compute plain whole-string Levenshtein distance.
//
// A single-rune needle only matches verbatim: the result is 0 when the rune
// occurs in haystack and -1 (no match) otherwise. An empty haystack costs
// the full length of the needle.
func FuzzySubstring(needle, haystack string) int {
	n := []rune(strings.ToLower(needle))
	h := []rune(strings.ToLower(haystack))

	if len(n) == 1 {
		for _, r := range h {
			if r == n[0] {
				return 0
			}
		}
		return -1
	}
	if len(h) == 0 {
		return len(n)
	}

	prev := make([]int, len(h)+1)
	cur := make([]int, len(h)+1)
	for i := 0; i < len(n); i++ {
		cur[0] = i + 1
		for j := 0; j < len(h); j++ {
			cost := 0
			if n[i] != h[j] {
				cost = 1
			}
			cur[j+1] = min(prev[j+1]+1, cur[j]+1, prev[j]+cost)
		}
		prev, cur = cur, prev
	}

	best := prev[0]
	for _, d := range prev[1:] {
		if d < best {
			best = d
		}
	}
	return best
}

// Score converts the fuzzy distance between needle and haystack into a
// similarity ratio: (longest - distance) / longest, where longest is the
// rune length of the longer input. The no-match sentinel from FuzzySubstring
// maps to 0. Two empty strings have no meaningful alignment and score 1,
// so a degenerate empty reference always reads as maximally similar.
func Score(needle, haystack string) float64 {
	distance := FuzzySubstring(needle, haystack)
	if distance < 0 {
		return 0
	}
	longest := max(utf8.RuneCountInString(needle), utf8.RuneCountInString(haystack))
	if longest == 0 {
		return 1
	}
	return float64(longest-distance) / float64(longest)
}

// LongestCommonSubstring returns the longest contiguous run of runes shared
// by a and b, taken as a slice of a. Unlike FuzzySubstring the comparison is
// case-sensitive. Ties go to the first maximal run found in row-major scan
// order, which keeps the result deterministic.
func LongestCommonSubstring(a, b string) string {
	ar, br := []rune(a), []rune(b)

	m := make([][]int, len(ar)+1)
	for i := range m {
		m[i] = make([]int, len(br)+1)
	}

	longest, end := 0, 0
	for x := 1; x <= len(ar); x++ {
		for y := 1; y <= len(br); y++ {
			if ar[x-1] != br[y-1] {
				continue
			}
			m[x][y] = m[x-1][y-1] + 1
			if m[x][y] > longest {
				longest = m[x][y]
				end = x
			}
		}
	}
	return string(ar[end-longest : end])
}
