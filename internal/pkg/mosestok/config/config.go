package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"mosestok/internal/pkg/mosestok/engine"
	"mosestok/internal/pkg/mosestok/lang"
)

// ErrHelp is returned by Parse after the usage text has been printed.
var ErrHelp = pflag.ErrHelp

type Config struct {
	Mode     string `mapstructure:"mode"`
	Language string `mapstructure:"lang"`

	NoEscape             bool     `mapstructure:"no_escape"`
	AggressiveDashSplits bool     `mapstructure:"aggressive_dash_splits"`
	Protect              []string `mapstructure:"protect"`

	Penn                   bool `mapstructure:"penn"`
	NormQuoteCommas        bool `mapstructure:"norm_quote_commas"`
	NormNumbers            bool `mapstructure:"norm_numbers"`
	PreReplaceUnicodePunct bool `mapstructure:"pre_replace_unicode_punct"`
	PostRemoveControlChars bool `mapstructure:"post_remove_control_chars"`
	NFC                    bool `mapstructure:"nfc"`

	Text      string `mapstructure:"text"`
	File      string `mapstructure:"file"`
	Output    string `mapstructure:"output"`
	LogLevel  string `mapstructure:"log_level"`
	LogFile   string `mapstructure:"log_file"`
	ListModes bool   `mapstructure:"list_modes"`

	// Args are the positional arguments, processed as one line of text.
	Args []string `mapstructure:"-"`
}

// LoadAndParse parses the process arguments.
func LoadAndParse() (*Config, error) {
	return Parse(os.Args[1:], os.Stderr)
}

// Parse resolves the configuration from args, the config file and MOSESTOK_
// environment variables, in decreasing order of precedence. Usage is written
// to usage when -h is given.
func Parse(args []string, usage io.Writer) (*Config, error) {
	defaults := engine.DefaultConfig()

	v := viper.New()
	v.SetDefault("mode", "tokenize")
	v.SetDefault("lang", defaults.Language)
	v.SetDefault("no_escape", !defaults.Escape)
	v.SetDefault("aggressive_dash_splits", defaults.AggressiveDashSplits)
	v.SetDefault("protect", []string{})
	v.SetDefault("penn", defaults.Penn)
	v.SetDefault("norm_quote_commas", defaults.NormQuoteCommas)
	v.SetDefault("norm_numbers", defaults.NormNumbers)
	v.SetDefault("pre_replace_unicode_punct", defaults.PreReplaceUnicodePunct)
	v.SetDefault("post_remove_control_chars", defaults.PostRemoveControlChars)
	v.SetDefault("nfc", defaults.NFC)
	v.SetDefault("text", "")
	v.SetDefault("file", "")
	v.SetDefault("output", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
	v.SetDefault("list_modes", false)

	flagSet := pflag.NewFlagSet("mosestok", pflag.ContinueOnError)
	flagSet.SetOutput(usage)
	configFile := flagSet.StringP("config", "c", "", "Path to config file")
	flagSet.StringP("mode", "m", "tokenize", "Processing mode (tokenize, penn, normalize)")
	flagSet.StringP("lang", "l", defaults.Language, "Language tag")
	flagSet.Bool("no-escape", false, "Do not XML-escape tokens (tokenize mode)")
	flagSet.Bool("aggressive-dash-splits", true, "Split hyphens between alphanumerics into @-@")
	flagSet.StringSlice("protect", nil, "Regular expression whose matches are kept as one token (repeatable)")
	flagSet.Bool("penn", true, "Apply Penn quote substitutions (normalize mode)")
	flagSet.Bool("norm-quote-commas", true, "Move commas and periods around closing quotes (normalize mode)")
	flagSet.Bool("norm-numbers", true, "Join digit groups split by a non-breaking space (normalize mode)")
	flagSet.Bool("pre-replace-unicode-punct", true, "Map fullwidth and CJK punctuation to ASCII first (normalize mode)")
	flagSet.Bool("post-remove-control-chars", false, "Strip Unicode control characters last (normalize mode)")
	flagSet.Bool("nfc", false, "Apply Unicode NFC composition first (normalize mode)")
	flagSet.StringP("text", "t", "", "Text to process (use '-' to read from stdin)")
	flagSet.StringP("file", "f", "", "Read text from file, one sentence per line")
	flagSet.StringP("output", "o", "", "Output file (default stdout)")
	flagSet.String("log-level", "", "Log level (debug, info, warn, error)")
	flagSet.String("log-file", "", "Log file path")
	flagSet.Bool("list-modes", false, "List available modes and exit")
	helpFlag := flagSet.BoolP("help", "h", false, "Show help message")

	if err := flagSet.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if *helpFlag {
		fmt.Fprintf(usage, "Usage: mosestok [options] [text]\n\nOptions:\n")
		flagSet.PrintDefaults()
		return nil, ErrHelp
	}

	bindings := map[string]string{
		"mode":                      "mode",
		"lang":                      "lang",
		"no_escape":                 "no-escape",
		"aggressive_dash_splits":    "aggressive-dash-splits",
		"protect":                   "protect",
		"penn":                      "penn",
		"norm_quote_commas":         "norm-quote-commas",
		"norm_numbers":              "norm-numbers",
		"pre_replace_unicode_punct": "pre-replace-unicode-punct",
		"post_remove_control_chars": "post-remove-control-chars",
		"nfc":                       "nfc",
		"text":                      "text",
		"file":                      "file",
		"output":                    "output",
		"log_level":                 "log-level",
		"log_file":                  "log-file",
		"list_modes":                "list-modes",
	}
	for key, name := range bindings {
		if err := v.BindPFlag(key, flagSet.Lookup(name)); err != nil {
			return nil, err
		}
	}

	if *configFile != "" {
		v.SetConfigFile(*configFile)
	} else {
		v.SetConfigName("mosestok.cfg")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		v.AddConfigPath("configs")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "mosestok"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if *configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	v.SetEnvPrefix("MOSESTOK")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Args = flagSet.Args()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if _, err := lang.ParseLanguage(c.Language); err != nil {
		return fmt.Errorf("invalid lang: %w", err)
	}
	if c.Text != "" && c.File != "" {
		return fmt.Errorf("--text and --file are mutually exclusive")
	}
	if c.Text != "" && len(c.Args) > 0 {
		return fmt.Errorf("--text cannot be combined with positional text")
	}
	return nil
}

// Engine converts the CLI configuration into an engine configuration.
func (c *Config) Engine() engine.Config {
	return engine.Config{
		Mode:                   c.Mode,
		Language:               c.Language,
		Escape:                 !c.NoEscape,
		AggressiveDashSplits:   c.AggressiveDashSplits,
		ProtectedPatterns:      c.Protect,
		Penn:                   c.Penn,
		NormQuoteCommas:        c.NormQuoteCommas,
		NormNumbers:            c.NormNumbers,
		PreReplaceUnicodePunct: c.PreReplaceUnicodePunct,
		PostRemoveControlChars: c.PostRemoveControlChars,
		NFC:                    c.NFC,
	}
}
