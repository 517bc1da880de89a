package validator

import (
	"unicode/utf8"

	"github.com/passguard/passguard/policy"
)

// checkLength bounds the candidate's length, measured in code points rather
// than bytes so multi-byte characters count once.
func checkLength(candidate string, p *policy.Policy) Result {
	length := utf8.RuneCountInString(candidate)
	if minimum, ok := p.MinLength(); ok && length < minimum {
		return Result{Code: CodeTooShort}
	}
	if maximum, ok := p.MaxLength(); ok && length > maximum {
		return Result{Code: CodeTooLong}
	}
	return Result{}
}
