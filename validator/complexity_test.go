package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passguard/passguard/policy"
)

func complexityPolicy(t *testing.T, minimums map[policy.CharClass]int) *policy.Policy {
	t.Helper()
	p, err := policy.Build(policy.Options{
		ComplexityMinimums: minimums,
		CommonSequences:    []string{},
	})
	require.NoError(t, err)
	return p
}

func TestComplexityCountsDistinctCharacters(t *testing.T) {
	// Four digit occurrences but only one distinct digit.
	p := complexityPolicy(t, map[policy.CharClass]int{policy.Digits: 4})
	result := checkComplexity("aaaa1111", p)
	assert.Equal(t, CodeInsufficientDigits, result.Code)
	assert.Equal(t, policy.Digits, result.Class)

	p = complexityPolicy(t, map[policy.CharClass]int{policy.Digits: 4})
	assert.True(t, checkComplexity("aaaa1234", p).Valid())
}

func TestComplexityClassBuckets(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		minimums  map[policy.CharClass]int
		want      Code
	}{
		{"uppercase met", "AbC", map[policy.CharClass]int{policy.Upper: 2}, ""},
		{"uppercase deficient", "Abc", map[policy.CharClass]int{policy.Upper: 2}, CodeInsufficientUppercase},
		{"lowercase deficient", "ABCd", map[policy.CharClass]int{policy.Lower: 2}, CodeInsufficientLowercase},
		{"punctuation met", "a!b?", map[policy.CharClass]int{policy.Punctuation: 2}, ""},
		{"punctuation deficient", "a!b!", map[policy.CharClass]int{policy.Punctuation: 2}, CodeInsufficientPunctuation},
		{"non-ascii met", "héllö", map[policy.CharClass]int{policy.NonASCII: 2}, ""},
		{"non-ascii deficient", "héllo", map[policy.CharClass]int{policy.NonASCII: 2}, CodeInsufficientSymbols},
		{"whitespace lands in symbol bucket", "a b", map[policy.CharClass]int{policy.NonASCII: 1}, ""},
		{"unique words met", "correct horse battery", map[policy.CharClass]int{policy.Words: 3}, ""},
		{"duplicate words collapse", "horse horse battery", map[policy.CharClass]int{policy.Words: 3}, CodeInsufficientUniqueWords},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := complexityPolicy(t, tt.minimums)
			assert.Equal(t, tt.want, checkComplexity(tt.candidate, p).Code)
		})
	}
}

func TestComplexityEvaluationOrder(t *testing.T) {
	// Deficient in several classes at once; uppercase is reported because the
	// scan short-circuits in class order.
	p := complexityPolicy(t, map[policy.CharClass]int{
		policy.Upper:  1,
		policy.Digits: 1,
		policy.Words:  2,
	})
	assert.Equal(t, CodeInsufficientUppercase, checkComplexity("abc", p).Code)
}

func TestComplexityDisabledAlwaysPasses(t *testing.T) {
	p, err := policy.Build(policy.Options{CommonSequences: []string{}})
	require.NoError(t, err)
	assert.True(t, checkComplexity("", p).Valid())
	assert.True(t, checkComplexity("anything", p).Valid())
}

func TestComplexityZeroMinimumNeverFails(t *testing.T) {
	p := complexityPolicy(t, map[policy.CharClass]int{policy.Upper: 0})
	assert.True(t, checkComplexity("no uppercase here", p).Valid())
}
