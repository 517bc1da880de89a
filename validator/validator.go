// Package validator runs the ordered password checks against candidate
// strings. Every check is a pure function of the candidate and the policy,
// so one Validator may serve any number of concurrent callers.
package validator

import (
	"unicode/utf8"

	"github.com/passguard/passguard/policy"
	"github.com/passguard/passguard/similarity"
)

// Validator evaluates candidates against a single immutable policy.
type Validator struct {
	policy *policy.Policy
}

// New returns a Validator bound to p.
func New(p *policy.Policy) *Validator {
	return &Validator{policy: p}
}

// Validate runs the checks in fixed order (length, sequence similarity,
// dictionary similarity, complexity, common substring) and returns the first
// failure. The remaining checks are skipped so the caller always sees one
// specific reason.
func (v *Validator) Validate(candidate string) Result {
	if r := checkLength(candidate, v.policy); !r.Valid() {
		return r
	}
	threshold := v.policy.SimilarityThreshold()
	if r := checkSimilarity(candidate, v.policy.CommonSequences(), threshold, CodeSimilarToSequence); !r.Valid() {
		return r
	}
	if r := checkSimilarity(candidate, v.policy.DictionaryWords(), threshold, CodeSimilarToDictionaryWord); !r.Valid() {
		return r
	}
	if r := checkComplexity(candidate, v.policy); !r.Valid() {
		return r
	}
	if r := checkCommonSubstring(candidate, v.policy); !r.Valid() {
		return r
	}
	return Result{}
}

// checkSimilarity rejects the candidate on the first reference string it
// scores at or above the threshold against, in configured order.
func checkSimilarity(candidate string, references []string, threshold float64, code Code) Result {
	for _, reference := range references {
		if similarity.Score(candidate, reference) >= threshold {
			return Result{Code: code, Matched: reference}
		}
	}
	return Result{}
}

// checkCommonSubstring rejects the candidate when it shares a contiguous run
// of at least the configured length with any common sequence or dictionary
// word. A zero limit disables the check.
func checkCommonSubstring(candidate string, p *policy.Policy) Result {
	limit := p.MaxCommonSubstringLength()
	if limit <= 0 {
		return Result{}
	}
	for _, reference := range p.CommonSequences() {
		if r := sharedRun(candidate, reference, limit); !r.Valid() {
			return r
		}
	}
	for _, reference := range p.DictionaryWords() {
		if r := sharedRun(candidate, reference, limit); !r.Valid() {
			return r
		}
	}
	return Result{}
}

func sharedRun(candidate, reference string, limit int) Result {
	run := similarity.LongestCommonSubstring(candidate, reference)
	if utf8.RuneCountInString(run) >= limit {
		return Result{Code: CodeCommonSubstring, Substring: run, Matched: reference}
	}
	return Result{}
}
