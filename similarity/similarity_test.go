package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// levenshtein is a naive full-matrix whole-string edit distance, used to pin
// down how FuzzySubstring differs from plain Levenshtein: the zero-seeded
// first row lets the match window start anywhere in the haystack.
func levenshtein(a, b string) int {
	ar, br := []rune(a), []rune(b)
	m := make([][]int, len(ar)+1)
	for i := range m {
		m[i] = make([]int, len(br)+1)
		m[i][0] = i
	}
	for j := 0; j <= len(br); j++ {
		m[0][j] = j
	}
	for i := 1; i <= len(ar); i++ {
		for j := 1; j <= len(br); j++ {
			cost := 0
			if ar[i-1] != br[j-1] {
				cost = 1
			}
			m[i][j] = min(m[i-1][j]+1, m[i][j-1]+1, m[i-1][j-1]+cost)
		}
	}
	return m[len(ar)][len(br)]
}

func TestFuzzySubstringSelfMatch(t *testing.T) {
	for _, s := range []string{"password", "Tr0ub4dor&3", "ab", "naïveté"} {
		assert.Equal(t, 0, FuzzySubstring(s, s), "self-match for %q", s)
	}
}

func TestFuzzySubstringCaseInsensitive(t *testing.T) {
	assert.Equal(t, FuzzySubstring("pass", "PASSWORD"), FuzzySubstring("Pass", "password"))
	assert.Equal(t, 0, FuzzySubstring("PASS", "password"))
}

func TestFuzzySubstringFreeStartAlignment(t *testing.T) {
	// "word" sits at the end of "crossword": the substring-aware scan finds
	// it for free while whole-string Levenshtein pays for the skipped prefix.
	assert.Equal(t, 0, FuzzySubstring("word", "crossword"))
	assert.Equal(t, 5, levenshtein("word", "crossword"))

	assert.Equal(t, 1, FuzzySubstring("wird", "crossword"))
}

func TestFuzzySubstringAgreesWithLevenshteinOnSharedStart(t *testing.T) {
	// With the match anchored at position 0 both algorithms coincide.
	assert.Equal(t, levenshtein("abcdefgi", "abcdefgh"), FuzzySubstring("abcdefgi", "abcdefgh"))
}

func TestFuzzySubstringSingleRune(t *testing.T) {
	assert.Equal(t, 0, FuzzySubstring("a", "banana"))
	assert.Equal(t, -1, FuzzySubstring("z", "banana"))
	assert.Equal(t, -1, FuzzySubstring("a", ""))
}

func TestFuzzySubstringEmptyInputs(t *testing.T) {
	assert.Equal(t, 6, FuzzySubstring("needle", ""))
	assert.Equal(t, 0, FuzzySubstring("", "haystack"))
	assert.Equal(t, 0, FuzzySubstring("", ""))
}

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		needle   string
		haystack string
		want     float64
	}{
		{"identical", "password", "password", 1.0},
		{"one substitution", "abcdefgi", "abcdefgh", 0.875},
		{"contained scores as identical", "word", "crossword", 1.0},
		{"single rune no match", "z", "banana", 0},
		{"both empty", "", "", 1.0},
		{"empty needle", "", "abc", 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Score(tt.needle, tt.haystack), 1e-9)
		})
	}
}

func TestScoreDeterministic(t *testing.T) {
	first := Score("Tr0ub4dor&3", "qwertyuiopasdfghjklzxcvbnm")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Score("Tr0ub4dor&3", "qwertyuiopasdfghjklzxcvbnm"))
	}
}

func TestLongestCommonSubstring(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want string
	}{
		{"identical", "password", "password", "password"},
		{"case sensitive", "abc", "ABC", ""},
		{"contained word", "myelephant99", "elephant", "elephant"},
		{"partial overlap", "abcxyz", "zzzabcq", "abc"},
		{"no overlap", "abc", "def", ""},
		{"empty a", "", "abc", ""},
		{"empty b", "abc", "", ""},
		{"multibyte runes", "naïveté", "naïve", "naïve"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LongestCommonSubstring(tt.a, tt.b))
		})
	}
}

func TestLongestCommonSubstringTieTakesFirst(t *testing.T) {
	// "ab" and "cd" are both maximal; row-major scan over a reaches "ab" first.
	assert.Equal(t, "ab", LongestCommonSubstring("xxabyycd", "abcd"))
}
