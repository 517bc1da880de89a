package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/passguard/passguard/policy"
)

// Config holds all configuration for the passguard CLI
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Policy PolicyConfig `mapstructure:"policy"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// PolicyConfig holds the password policy settings
type PolicyConfig struct {
	MinLength                int              `mapstructure:"min_length"`
	MaxLength                int              `mapstructure:"max_length"`
	SimilarityThreshold      float64          `mapstructure:"similarity_threshold"`
	MaxCommonSubstringLength int              `mapstructure:"max_common_substring_length"`
	Complexity               ComplexityConfig `mapstructure:"complexity"`
	CommonSequences          []string         `mapstructure:"common_sequences"`
	DictionaryPath           string           `mapstructure:"dictionary_path"`
	DictionaryWords          []string         `mapstructure:"dictionary_words"`
}

// ComplexityConfig holds the per-class distinct-character minimums.
// Complexity checking is off unless Enabled is set.
type ComplexityConfig struct {
	Enabled     bool `mapstructure:"enabled"`
	Upper       int  `mapstructure:"upper"`
	Lower       int  `mapstructure:"lower"`
	Digits      int  `mapstructure:"digits"`
	Punctuation int  `mapstructure:"punctuation"`
	Symbols     int  `mapstructure:"symbols"`
	Words       int  `mapstructure:"words"`
}

// Options maps the loaded settings onto policy.Options. Zero-valued length
// bounds mean unbounded; a zero threshold falls back to the policy default.
func (c PolicyConfig) Options() policy.Options {
	opts := policy.Options{
		CommonSequences: c.CommonSequences,
		DictionaryPath:  c.DictionaryPath,
		DictionaryWords: c.DictionaryWords,
	}
	if c.MinLength > 0 {
		opts.MinLength = &c.MinLength
	}
	if c.MaxLength > 0 {
		opts.MaxLength = &c.MaxLength
	}
	if c.SimilarityThreshold > 0 {
		opts.SimilarityThreshold = &c.SimilarityThreshold
	}
	opts.MaxCommonSubstringLength = &c.MaxCommonSubstringLength
	if c.Complexity.Enabled {
		opts.ComplexityMinimums = map[policy.CharClass]int{
			policy.Upper:       c.Complexity.Upper,
			policy.Lower:       c.Complexity.Lower,
			policy.Digits:      c.Complexity.Digits,
			policy.Punctuation: c.Complexity.Punctuation,
			policy.NonASCII:    c.Complexity.Symbols,
			policy.Words:       c.Complexity.Words,
		}
	}
	return opts
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/passguard")

	// Set defaults
	setDefaults(v)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	// Bind environment variables
	v.SetEnvPrefix("PASSGUARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unmarshal config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	// Policy defaults
	v.SetDefault("policy.min_length", 6)
	v.SetDefault("policy.max_length", 0)
	v.SetDefault("policy.similarity_threshold", policy.DefaultSimilarityThreshold)
	v.SetDefault("policy.max_common_substring_length", policy.DefaultMaxCommonSubstringLength)
	v.SetDefault("policy.dictionary_path", "")

	// Complexity defaults (checking is opt-in)
	v.SetDefault("policy.complexity.enabled", false)
	v.SetDefault("policy.complexity.upper", 0)
	v.SetDefault("policy.complexity.lower", 0)
	v.SetDefault("policy.complexity.digits", 0)
	v.SetDefault("policy.complexity.punctuation", 0)
	v.SetDefault("policy.complexity.symbols", 0)
	v.SetDefault("policy.complexity.words", 0)
}
