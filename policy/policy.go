// Package policy defines the immutable configuration that governs password
// acceptance: length bounds, the similarity threshold, per-class complexity
// minimums and the reference data candidates are compared against.
package policy

import (
	"errors"
	"fmt"
)

// CharClass identifies one complexity bucket.
type CharClass string

const (
	Upper       CharClass = "UPPER"
	Lower       CharClass = "LOWER"
	Digits      CharClass = "DIGITS"
	Punctuation CharClass = "PUNCTUATION"
	NonASCII    CharClass = "NON_ASCII"
	Words       CharClass = "WORDS"
)

var knownClasses = map[CharClass]bool{
	Upper:       true,
	Lower:       true,
	Digits:      true,
	Punctuation: true,
	NonASCII:    true,
	Words:       true,
}

// ErrConfig is wrapped by every policy construction failure.
var ErrConfig = errors.New("invalid policy configuration")

const (
	// DefaultSimilarityThreshold is the similarity ratio at or above which a
	// candidate is rejected when no threshold is configured.
	DefaultSimilarityThreshold = 0.9
	// DefaultMaxCommonSubstringLength is the shared-run length at or above
	// which a candidate is rejected when no limit is configured.
	DefaultMaxCommonSubstringLength = 4
)

// Options carries the host-supplied settings consumed by Build. Nil pointer
// fields take defaults (or leave the bound unset where no default applies).
type Options struct {
	// MinLength and MaxLength bound the candidate length in code points.
	// Nil means unbounded.
	MinLength *int
	MaxLength *int

	// SimilarityThreshold is the ratio in [0,1] at or above which a candidate
	// counts as too similar to a reference string. Nil means 0.9.
	SimilarityThreshold *float64

	// MaxCommonSubstringLength rejects candidates sharing a contiguous run of
	// at least this many runes with a reference string. Nil means 4; zero
	// disables the check.
	MaxCommonSubstringLength *int

	// ComplexityMinimums maps character classes to the number of distinct
	// characters (or unique words) required. Nil disables complexity checking.
	ComplexityMinimums map[CharClass]int

	// CommonSequences overrides the built-in keyboard/alphabet sequence table
	// when non-nil.
	CommonSequences []string

	// DictionaryPath names a file with one reference word per line.
	// DictionaryWords are appended after the file's entries.
	DictionaryPath  string
	DictionaryWords []string
}

// Policy is the validated, immutable form of Options. A single Policy may be
// shared by any number of concurrent validation calls.
type Policy struct {
	minLength    int
	hasMinLength bool
	maxLength    int
	hasMaxLength bool

	similarityThreshold      float64
	maxCommonSubstringLength int

	complexityMinimums map[CharClass]int
	commonSequences    []string
	dictionaryWords    []string
}

// Build validates opts, loads any configured dictionary and returns the
// resulting Policy. Malformed values fail with an error wrapping ErrConfig
// rather than being clamped, so every later validation call is safe.
func Build(opts Options) (*Policy, error) {
	p := &Policy{
		similarityThreshold:      DefaultSimilarityThreshold,
		maxCommonSubstringLength: DefaultMaxCommonSubstringLength,
	}

	if opts.MinLength != nil {
		if *opts.MinLength < 0 {
			return nil, fmt.Errorf("%w: min length %d is negative", ErrConfig, *opts.MinLength)
		}
		p.minLength, p.hasMinLength = *opts.MinLength, true
	}
	if opts.MaxLength != nil {
		if *opts.MaxLength < 0 {
			return nil, fmt.Errorf("%w: max length %d is negative", ErrConfig, *opts.MaxLength)
		}
		p.maxLength, p.hasMaxLength = *opts.MaxLength, true
	}
	if p.hasMinLength && p.hasMaxLength && p.minLength > p.maxLength {
		return nil, fmt.Errorf("%w: min length %d exceeds max length %d", ErrConfig, p.minLength, p.maxLength)
	}

	if opts.SimilarityThreshold != nil {
		t := *opts.SimilarityThreshold
		if t < 0 || t > 1 {
			return nil, fmt.Errorf("%w: similarity threshold %v is outside [0,1]", ErrConfig, t)
		}
		p.similarityThreshold = t
	}

	if opts.MaxCommonSubstringLength != nil {
		if *opts.MaxCommonSubstringLength < 0 {
			return nil, fmt.Errorf("%w: max common substring length %d is negative", ErrConfig, *opts.MaxCommonSubstringLength)
		}
		p.maxCommonSubstringLength = *opts.MaxCommonSubstringLength
	}

	if opts.ComplexityMinimums != nil {
		p.complexityMinimums = make(map[CharClass]int, len(opts.ComplexityMinimums))
		for class, minimum := range opts.ComplexityMinimums {
			if !knownClasses[class] {
				return nil, fmt.Errorf("%w: unknown character class %q", ErrConfig, class)
			}
			if minimum < 0 {
				return nil, fmt.Errorf("%w: minimum %d for class %q is negative", ErrConfig, minimum, class)
			}
			p.complexityMinimums[class] = minimum
		}
	}

	if opts.CommonSequences != nil {
		p.commonSequences = make([]string, len(opts.CommonSequences))
		copy(p.commonSequences, opts.CommonSequences)
	} else {
		p.commonSequences = DefaultSequences()
	}

	words, err := buildDictionary(opts.DictionaryPath, opts.DictionaryWords)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	p.dictionaryWords = words

	return p, nil
}

// MinLength returns the minimum length bound and whether one is set.
func (p *Policy) MinLength() (int, bool) { return p.minLength, p.hasMinLength }

// MaxLength returns the maximum length bound and whether one is set.
func (p *Policy) MaxLength() (int, bool) { return p.maxLength, p.hasMaxLength }

// SimilarityThreshold returns the configured similarity rejection threshold.
func (p *Policy) SimilarityThreshold() float64 { return p.similarityThreshold }

// MaxCommonSubstringLength returns the shared-run rejection length.
// Zero means the common-substring check is disabled.
func (p *Policy) MaxCommonSubstringLength() int { return p.maxCommonSubstringLength }

// ComplexityEnabled reports whether any complexity minimums are configured.
func (p *Policy) ComplexityEnabled() bool { return p.complexityMinimums != nil }

// ComplexityMinimum returns the required distinct count for class.
// Unconfigured classes require nothing.
func (p *Policy) ComplexityMinimum(class CharClass) int { return p.complexityMinimums[class] }

// CommonSequences returns the reference sequences in configured order.
// Callers must not modify the returned slice.
func (p *Policy) CommonSequences() []string { return p.commonSequences }

// DictionaryWords returns the loaded dictionary in source order.
// Callers must not modify the returned slice.
func (p *Policy) DictionaryWords() []string { return p.dictionaryWords }
