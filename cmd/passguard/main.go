package main

import (
	"bufio"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/passguard/passguard/internal/config"
	"github.com/passguard/passguard/internal/logger"
	"github.com/passguard/passguard/policy"
	"github.com/passguard/passguard/validator"
)

var rootCmd = &cobra.Command{
	Use:   "passguard",
	Short: "Password policy checker",
}

var checkCmd = &cobra.Command{
	Use:   "check [candidate...]",
	Short: "Validate candidate passwords against the configured policy",
	Long: "Validates each candidate against the configured policy and prints the " +
		"first failing rule. With no arguments, candidates are read from stdin, " +
		"one per line.",
	RunE:         runCheck,
	SilenceUsage: true,
}

var policyCmd = &cobra.Command{
	Use:   "policy",
	Short: "Show the effective policy",
	RunE:  runPolicy,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(policyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setup loads configuration, builds the policy and returns a validator bound
// to it. Any configuration problem is fatal here, before candidates are read.
func setup() (*validator.Validator, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Format).WithComponent("passguard")

	pol, err := policy.Build(cfg.Policy.Options())
	if err != nil {
		return nil, nil, err
	}

	return validator.New(pol), log, nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	v, log, err := setup()
	if err != nil {
		return err
	}

	candidates := args
	if len(candidates) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			candidates = append(candidates, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read candidates: %w", err)
		}
	}

	rejected := 0
	for _, candidate := range candidates {
		result := v.Validate(candidate)
		log.Verdict(utf8.RuneCountInString(candidate), string(result.Code))
		if result.Valid() {
			fmt.Println("ok")
			continue
		}
		rejected++
		fmt.Printf("rejected: %s\n", reasonMessage(result))
	}

	if rejected > 0 {
		return fmt.Errorf("%d of %d candidates rejected", rejected, len(candidates))
	}
	return nil
}

func runPolicy(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	pol, err := policy.Build(cfg.Policy.Options())
	if err != nil {
		return err
	}

	if minimum, ok := pol.MinLength(); ok {
		fmt.Printf("min length:                  %d\n", minimum)
	} else {
		fmt.Println("min length:                  unbounded")
	}
	if maximum, ok := pol.MaxLength(); ok {
		fmt.Printf("max length:                  %d\n", maximum)
	} else {
		fmt.Println("max length:                  unbounded")
	}
	fmt.Printf("similarity threshold:        %.2f\n", pol.SimilarityThreshold())
	fmt.Printf("max common substring length: %d\n", pol.MaxCommonSubstringLength())
	fmt.Printf("common sequences:            %d\n", len(pol.CommonSequences()))
	fmt.Printf("dictionary words:            %d\n", len(pol.DictionaryWords()))
	if pol.ComplexityEnabled() {
		for _, class := range []policy.CharClass{
			policy.Upper, policy.Lower, policy.Digits,
			policy.Punctuation, policy.NonASCII, policy.Words,
		} {
			fmt.Printf("complexity %-17s %d\n", string(class)+":", pol.ComplexityMinimum(class))
		}
	} else {
		fmt.Println("complexity:                  disabled")
	}
	return nil
}

// reasonMessage maps a structured rejection onto human-readable text.
func reasonMessage(r validator.Result) string {
	switch r.Code {
	case validator.CodeTooShort:
		return "password is too short"
	case validator.CodeTooLong:
		return "password is too long"
	case validator.CodeInsufficientUppercase:
		return "password needs more distinct uppercase characters"
	case validator.CodeInsufficientLowercase:
		return "password needs more distinct lowercase characters"
	case validator.CodeInsufficientDigits:
		return "password needs more distinct digits"
	case validator.CodeInsufficientPunctuation:
		return "password needs more distinct punctuation characters"
	case validator.CodeInsufficientSymbols:
		return "password needs more distinct symbol characters"
	case validator.CodeInsufficientUniqueWords:
		return "password needs more unique words"
	case validator.CodeSimilarToSequence:
		return fmt.Sprintf("password is too similar to the common sequence %q", r.Matched)
	case validator.CodeSimilarToDictionaryWord:
		return fmt.Sprintf("password is based on the dictionary word %q", r.Matched)
	case validator.CodeCommonSubstring:
		return fmt.Sprintf("password shares the substring %q with %q", r.Substring, r.Matched)
	default:
		return string(r.Code)
	}
}
