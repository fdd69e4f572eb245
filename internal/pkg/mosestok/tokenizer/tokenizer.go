// Package tokenizer implements the Moses word tokenizer and its Penn
// Treebank variant.
//
// A Tokenizer compiles every pattern it needs in New and never modifies them
// afterwards, so one instance can serve any number of goroutines.
package tokenizer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dlclark/regexp2"

	"mosestok/internal/pkg/mosestok/lang"
	"mosestok/internal/pkg/mosestok/resources"
	"mosestok/internal/pkg/mosestok/rewrite"
)

const protectedMarker = "THISISPROTECTED"

type options struct {
	aggressiveDashSplits bool
	protected            []*regexp.Regexp
}

type Option func(*options)

// WithAggressiveDashSplits turns "foo-bar" into "foo @-@ bar". Enabled by
// default.
func WithAggressiveDashSplits(v bool) Option {
	return func(o *options) { o.aggressiveDashSplits = v }
}

// WithProtectedPatterns keeps every span matched by one of patterns as a
// single token, e.g. URLs or XML tags.
func WithProtectedPatterns(patterns ...*regexp.Regexp) Option {
	return func(o *options) { o.protected = append(o.protected, patterns...) }
}

type Tokenizer struct {
	lang   lang.Language
	opts   options
	bundle *resources.Bundle

	prefixes    map[string]struct{}
	numericOnly map[string]struct{}

	whitespace  *regexp.Regexp
	asciiJunk   *regexp.Regexp
	padNotAlnum *regexp.Regexp
	hyphenSplit *regexp2.Regexp
	slashSplit  *regexp2.Regexp
	commas      rewrite.Table
	apostrophes rewrite.Table
	dotQuote    *regexp.Regexp
	multidot    multidotPatterns
	penn        pennTables
}

// New parses tag and builds a tokenizer for it. An unknown tag is the only
// error.
func New(tag string, opts ...Option) (*Tokenizer, error) {
	l, err := lang.ParseLanguage(tag)
	if err != nil {
		return nil, err
	}
	return NewForLanguage(l, opts...), nil
}

// NewForLanguage builds a tokenizer for an already parsed language.
func NewForLanguage(l lang.Language, opts ...Option) *Tokenizer {
	o := options{aggressiveDashSplits: true}
	for _, apply := range opts {
		apply(&o)
	}

	b := resources.Load(l)
	alnum := resources.Class(b.TokenAlnum)
	alpha := resources.Class(b.Alpha)
	num := resources.Class(b.Numeric)
	ws := resources.Whitespace

	t := &Tokenizer{
		lang:        l,
		opts:        o,
		bundle:      b,
		prefixes:    toSet(b.Prefixes),
		numericOnly: toSet(b.NumericOnlyPrefixes),
		whitespace:  regexp.MustCompile(`[` + ws + `]+`),
		asciiJunk:   regexp.MustCompile(`[\x00-\x1F]`),
		padNotAlnum: regexp.MustCompile(`([^` + alnum + ws + `.'` + "`" + `,\-])`),
		hyphenSplit: regexp2.MustCompile(`([`+alnum+`])\-(?=[`+alnum+`])`, regexp2.None),
		slashSplit:  regexp2.MustCompile(`([`+alnum+`])/(?=[`+alnum+`])`, regexp2.None),
		commas: rewrite.Compile(
			rewrite.Spec{Pattern: `([^` + num + `])[,]`, Replacement: "$1 , "},
			rewrite.Spec{Pattern: `[,]([^` + num + `])`, Replacement: " , $1"},
			rewrite.Spec{Pattern: `([` + num + `])[,]$`, Replacement: "$1 , "},
		),
		dotQuote: regexp.MustCompile(`\.' ?$`),
		multidot: compileMultidot(),
		penn:     compilePenn(b),
	}

	switch l {
	case lang.En:
		t.apostrophes = rewrite.Compile(
			rewrite.Spec{Pattern: `([^` + alpha + `])'([^` + alpha + `])`, Replacement: "$1 ' $2"},
			rewrite.Spec{Pattern: `([^` + alpha + num + `])'([` + alpha + `])`, Replacement: "$1 ' $2"},
			rewrite.Spec{Pattern: `([` + alpha + `])'([^` + alpha + `])`, Replacement: "$1 ' $2"},
			rewrite.Spec{Pattern: `([` + alpha + `])'([` + alpha + `])`, Replacement: "$1 '$2"},
			rewrite.Spec{Pattern: `([` + num + `])'([s])`, Replacement: "$1 '$2"},
		)
	case lang.Fr, lang.It:
		t.apostrophes = rewrite.Compile(
			rewrite.Spec{Pattern: `([^` + alpha + `])'([^` + alpha + `])`, Replacement: "$1 ' $2"},
			rewrite.Spec{Pattern: `([^` + alpha + `])'([` + alpha + `])`, Replacement: "$1 ' $2"},
			rewrite.Spec{Pattern: `([` + alpha + `])'([^` + alpha + `])`, Replacement: "$1 ' $2"},
			rewrite.Spec{Pattern: `([` + alpha + `])'([` + alpha + `])`, Replacement: "$1' $2"},
		)
	}

	return t
}

func (t *Tokenizer) Language() lang.Language {
	return t.lang
}

// Tokenize splits text into Moses tokens with XML escaping enabled.
func (t *Tokenizer) Tokenize(text string) Tokens {
	return t.TokenizeEscape(text, true)
}

// TokenizeEscape splits text into Moses tokens. When escape is false the
// XML-special characters are left as they are.
func (t *Tokenizer) TokenizeEscape(text string, escape bool) Tokens {
	text = t.clean(text)

	text, protected := t.protect(text)

	text = t.padNotAlnum.ReplaceAllString(text, " $1 ")
	if t.opts.aggressiveDashSplits {
		text = replace2(t.hyphenSplit, text, "$1 @-@ ")
	}

	text = t.protectMultidots(text)
	text = t.commas.Apply(text)
	text = t.apostrophes.Apply(text)
	text = t.resolveNonbreaking(text)

	text = t.collapse(text)
	text = t.dotQuote.ReplaceAllString(text, " . ' ")

	text = restoreProtected(text, protected)
	text = t.restoreMultidots(text)

	if escape {
		text = EscapeXML(text)
	}
	return Tokens{text: t.collapse(text)}
}

func (t *Tokenizer) clean(text string) string {
	text = t.whitespace.ReplaceAllString(text, " ")
	text = t.asciiJunk.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

func (t *Tokenizer) collapse(text string) string {
	return strings.TrimSpace(t.whitespace.ReplaceAllString(text, " "))
}

// protect swaps every protected span for a numbered marker made of
// alphanumerics only, which no later rule splits.
func (t *Tokenizer) protect(text string) (string, []string) {
	if len(t.opts.protected) == 0 {
		return text, nil
	}

	var spans []string
	for _, re := range t.opts.protected {
		spans = append(spans, re.FindAllString(text, -1)...)
	}
	for i, span := range spans {
		if span == "" {
			continue
		}
		text = strings.ReplaceAll(text, span, fmt.Sprintf("%s%03d", protectedMarker, i))
	}
	return text, spans
}

func restoreProtected(text string, spans []string) string {
	// Highest index first, so that marker 1 never eats into marker 10.
	for i := len(spans) - 1; i >= 0; i-- {
		if spans[i] == "" {
			continue
		}
		text = strings.ReplaceAll(text, fmt.Sprintf("%s%03d", protectedMarker, i), spans[i])
	}
	return text
}

// replace2 runs a lookaround rule. regexp2 only fails on a match timeout,
// which is never set here, so the input is returned untouched in that case.
func replace2(re *regexp2.Regexp, text, replacement string) string {
	out, err := re.Replace(text, replacement, -1, -1)
	if err != nil {
		return text
	}
	return out
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}
