package validator

import "github.com/passguard/passguard/policy"

// Code identifies why a candidate was rejected.
type Code string

const (
	CodeTooShort                Code = "too_short"
	CodeTooLong                 Code = "too_long"
	CodeInsufficientUppercase   Code = "insufficient_uppercase"
	CodeInsufficientLowercase   Code = "insufficient_lowercase"
	CodeInsufficientDigits      Code = "insufficient_digits"
	CodeInsufficientPunctuation Code = "insufficient_punctuation"
	CodeInsufficientSymbols     Code = "insufficient_symbols"
	CodeInsufficientUniqueWords Code = "insufficient_unique_words"
	CodeSimilarToSequence       Code = "similar_to_sequence"
	CodeSimilarToDictionaryWord Code = "similar_to_dictionary_word"
	CodeCommonSubstring         Code = "common_substring"
)

// Result is the outcome of validating one candidate. The zero value is a
// pass; a failure carries the code of the first check that rejected the
// candidate plus whatever structured detail that check produces. Mapping a
// Result to user-facing message text is the caller's concern.
type Result struct {
	Code Code

	// Matched is the reference string that triggered a similarity or
	// common-substring failure.
	Matched string

	// Substring is the shared run for a common-substring failure.
	Substring string

	// Class is the deficient bucket for a complexity failure.
	Class policy.CharClass
}

// Valid reports whether the candidate passed every check.
func (r Result) Valid() bool { return r.Code == "" }
