package validator

import (
	"strings"
	"unicode"

	"github.com/passguard/passguard/policy"
)

// The 32 ASCII punctuation characters.
const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// checkComplexity buckets every character of the candidate into exactly one
// class and compares the number of distinct characters per class (and the
// number of unique whitespace-delimited words) against the configured
// minimums. Repeated characters count once. With no minimums configured the
// check always passes.
func checkComplexity(candidate string, p *policy.Policy) Result {
	if !p.ComplexityEnabled() {
		return Result{}
	}

	upper := make(map[rune]struct{})
	lower := make(map[rune]struct{})
	digits := make(map[rune]struct{})
	punctuation := make(map[rune]struct{})
	nonASCII := make(map[rune]struct{})

	for _, r := range candidate {
		switch {
		case r >= 128:
			nonASCII[r] = struct{}{}
		case unicode.IsUpper(r):
			upper[r] = struct{}{}
		case unicode.IsLower(r):
			lower[r] = struct{}{}
		case unicode.IsDigit(r):
			digits[r] = struct{}{}
		case strings.ContainsRune(asciiPunctuation, r):
			punctuation[r] = struct{}{}
		default:
			// Whitespace and control characters land in the symbol bucket.
			nonASCII[r] = struct{}{}
		}
	}

	words := make(map[string]struct{})
	for _, w := range strings.Fields(candidate) {
		words[w] = struct{}{}
	}

	classCounts := []struct {
		class policy.CharClass
		count int
		code  Code
	}{
		{policy.Upper, len(upper), CodeInsufficientUppercase},
		{policy.Lower, len(lower), CodeInsufficientLowercase},
		{policy.Digits, len(digits), CodeInsufficientDigits},
		{policy.Punctuation, len(punctuation), CodeInsufficientPunctuation},
		{policy.NonASCII, len(nonASCII), CodeInsufficientSymbols},
		{policy.Words, len(words), CodeInsufficientUniqueWords},
	}
	for _, c := range classCounts {
		if c.count < p.ComplexityMinimum(c.class) {
			return Result{Code: c.code, Class: c.class}
		}
	}
	return Result{}
}
