package moses

import (
	"fmt"
	"regexp"

	"mosestok/internal/pkg/mosestok/engine"
	"mosestok/internal/pkg/mosestok/lang"
	"mosestok/internal/pkg/mosestok/normalizer"
	"mosestok/internal/pkg/mosestok/tokenizer"
)

const (
	ModeTokenize  = "tokenize"
	ModePenn      = "penn"
	ModeNormalize = "normalize"
)

func init() {
	engine.Register(ModeTokenize, NewTokenizeEngine)
	engine.Register(ModePenn, NewPennEngine)
	engine.Register(ModeNormalize, NewNormalizeEngine)
}

type TokenizeEngine struct {
	cfg       engine.Config
	tokenizer *tokenizer.Tokenizer
}

func NewTokenizeEngine(cfg engine.Config) (engine.Processor, error) {
	tok, err := newTokenizer(cfg)
	if err != nil {
		return nil, err
	}
	return &TokenizeEngine{cfg: cfg, tokenizer: tok}, nil
}

func (e *TokenizeEngine) Process(line string) string {
	return e.tokenizer.TokenizeEscape(line, e.cfg.Escape).String()
}

func (e *TokenizeEngine) Info() engine.Info {
	return engine.Info{
		Mode:     ModeTokenize,
		Language: e.tokenizer.Language().String(),
		Options: map[string]bool{
			"escape":                 e.cfg.Escape,
			"aggressive_dash_splits": e.cfg.AggressiveDashSplits,
			"protected_patterns":     len(e.cfg.ProtectedPatterns) > 0,
		},
	}
}

type PennEngine struct {
	tokenizer *tokenizer.Tokenizer
}

func NewPennEngine(cfg engine.Config) (engine.Processor, error) {
	tok, err := newTokenizer(cfg)
	if err != nil {
		return nil, err
	}
	return &PennEngine{tokenizer: tok}, nil
}

func (e *PennEngine) Process(line string) string {
	return e.tokenizer.PennTokenize(line).String()
}

func (e *PennEngine) Info() engine.Info {
	return engine.Info{
		Mode:     ModePenn,
		Language: e.tokenizer.Language().String(),
		Options:  map[string]bool{"escape": true},
	}
}

type NormalizeEngine struct {
	normalizer *normalizer.PunctNormalizer
}

func NewNormalizeEngine(cfg engine.Config) (engine.Processor, error) {
	l, err := lang.ParseLanguage(cfg.Language)
	if err != nil {
		return nil, fmt.Errorf("normalize: %w", err)
	}
	n := normalizer.NewForLanguage(l,
		normalizer.WithPenn(cfg.Penn),
		normalizer.WithNormQuoteCommas(cfg.NormQuoteCommas),
		normalizer.WithNormNumbers(cfg.NormNumbers),
		normalizer.WithPreReplaceUnicodePunct(cfg.PreReplaceUnicodePunct),
		normalizer.WithPostRemoveControlChars(cfg.PostRemoveControlChars),
		normalizer.WithNFC(cfg.NFC),
	)
	return &NormalizeEngine{normalizer: n}, nil
}

func (e *NormalizeEngine) Process(line string) string {
	return e.normalizer.Normalize(line)
}

func (e *NormalizeEngine) Info() engine.Info {
	o := e.normalizer.Options()
	return engine.Info{
		Mode:     ModeNormalize,
		Language: e.normalizer.Language().String(),
		Options: map[string]bool{
			"penn":                      o.Penn,
			"norm_quote_commas":         o.NormQuoteCommas,
			"norm_numbers":              o.NormNumbers,
			"pre_replace_unicode_punct": o.PreReplaceUnicodePunct,
			"post_remove_control_chars": o.PostRemoveControlChars,
			"nfc":                       o.NFC,
		},
	}
}

func newTokenizer(cfg engine.Config) (*tokenizer.Tokenizer, error) {
	l, err := lang.ParseLanguage(cfg.Language)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.Mode, err)
	}

	patterns := make([]*regexp.Regexp, 0, len(cfg.ProtectedPatterns))
	for _, p := range cfg.ProtectedPatterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid protected pattern %q: %w", cfg.Mode, p, err)
		}
		patterns = append(patterns, re)
	}

	return tokenizer.NewForLanguage(l,
		tokenizer.WithAggressiveDashSplits(cfg.AggressiveDashSplits),
		tokenizer.WithProtectedPatterns(patterns...),
	), nil
}
