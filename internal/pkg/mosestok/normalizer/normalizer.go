// Package normalizer rewrites punctuation variants (curly and CJK quotes,
// dashes, fullwidth forms, non-breaking spaces, decimal separators) into the
// canonical forms expected by the Moses tokenizer.
package normalizer

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"mosestok/internal/pkg/mosestok/lang"
	"mosestok/internal/pkg/mosestok/resources"
	"mosestok/internal/pkg/mosestok/rewrite"
)

// Options is the effective configuration of a PunctNormalizer.
type Options struct {
	Penn                   bool
	NormQuoteCommas        bool
	NormNumbers            bool
	PreReplaceUnicodePunct bool
	PostRemoveControlChars bool
	// NFC composes the input before any rule runs.
	NFC bool
}

func defaultOptions() Options {
	return Options{
		Penn:                   true,
		NormQuoteCommas:        true,
		NormNumbers:            true,
		PreReplaceUnicodePunct: true,
	}
}

type Option func(*Options)

func WithPenn(v bool) Option {
	return func(o *Options) { o.Penn = v }
}

func WithNormQuoteCommas(v bool) Option {
	return func(o *Options) { o.NormQuoteCommas = v }
}

func WithNormNumbers(v bool) Option {
	return func(o *Options) { o.NormNumbers = v }
}

func WithPreReplaceUnicodePunct(v bool) Option {
	return func(o *Options) { o.PreReplaceUnicodePunct = v }
}

func WithPostRemoveControlChars(v bool) Option {
	return func(o *Options) { o.PostRemoveControlChars = v }
}

// WithNFC applies Unicode canonical composition before normalizing, so that
// decomposed accents do not interfere with the character rules.
func WithNFC(v bool) Option {
	return func(o *Options) { o.NFC = v }
}

// PunctNormalizer is immutable once built and safe for concurrent use.
type PunctNormalizer struct {
	lang lang.Language
	opts Options

	unicodePunct     *strings.Replacer
	unicodeStops     rewrite.Table
	extraWhitespace  rewrite.Table
	penn             rewrite.Table
	normalizeUnicode rewrite.Table
	frenchQuotes     rewrite.Table
	pseudoSpaces     rewrite.Table
	quoteCommas      rewrite.Table
	numbers          rewrite.Table
	controlChars     rewrite.Table
}

// New parses tag and builds a normalizer for it.
func New(tag string, opts ...Option) (*PunctNormalizer, error) {
	l, err := lang.ParseLanguage(tag)
	if err != nil {
		return nil, err
	}
	return NewForLanguage(l, opts...), nil
}

// NewForLanguage builds a normalizer for an already parsed language.
func NewForLanguage(l lang.Language, opts ...Option) *PunctNormalizer {
	o := defaultOptions()
	for _, apply := range opts {
		apply(&o)
	}

	n := &PunctNormalizer{
		lang:             l,
		opts:             o,
		unicodePunct:     strings.NewReplacer(unicodePunctPairs...),
		unicodeStops:     rewrite.Compile(unicodeStopRules...),
		extraWhitespace:  rewrite.Compile(extraWhitespaceRules...),
		penn:             rewrite.Compile(pennRules...),
		normalizeUnicode: rewrite.Compile(normalizeUnicodeRules...),
		frenchQuotes:     rewrite.Compile(frenchQuoteRules...),
		pseudoSpaces:     rewrite.Compile(pseudoSpaceRules...),
		controlChars:     rewrite.Compile(rewrite.Spec{Pattern: `\p{C}`, Replacement: ""}),
	}

	switch l {
	case lang.En:
		n.quoteCommas = rewrite.Compile(englishQuoteCommaRules...)
	case lang.De, lang.Es, lang.Fr:
		n.quoteCommas = rewrite.Compile(continentalQuoteCommaRules...)
	}

	if l.UsesDecimalComma() {
		n.numbers = rewrite.Compile(rewrite.Spec{Pattern: `(\p{Nd})\x{A0}(\p{Nd})`, Replacement: "$1,$2"})
	} else {
		n.numbers = rewrite.Compile(rewrite.Spec{Pattern: `(\p{Nd})\x{A0}(\p{Nd})`, Replacement: "$1.$2"})
	}

	return n
}

func (n *PunctNormalizer) Language() lang.Language {
	return n.lang
}

func (n *PunctNormalizer) Options() Options {
	return n.opts
}

// Normalize runs the full rule pipeline over text. It never fails.
func (n *PunctNormalizer) Normalize(text string) string {
	if n.opts.NFC {
		text = norm.NFC.String(text)
	}
	if n.opts.PreReplaceUnicodePunct {
		text = n.unicodePunct.Replace(text)
		text = n.unicodeStops.Apply(text)
	}

	text = n.extraWhitespace.Apply(text)

	if n.opts.Penn {
		text = n.penn.Apply(text)
	}

	text = n.normalizeUnicode.Apply(text)
	text = n.frenchQuotes.Apply(text)
	text = n.pseudoSpaces.Apply(text)

	if n.opts.Penn {
		text = n.penn.Apply(text)
	}
	if n.opts.NormQuoteCommas {
		text = n.quoteCommas.Apply(text)
	}
	if n.opts.NormNumbers {
		text = n.numbers.Apply(text)
	}
	if n.opts.PostRemoveControlChars {
		text = n.controlChars.Apply(text)
	}
	return text
}

var unicodePunctPairs = []string{
	"，", ",",
	"、", ",",
	"”", `"`,
	"“", `"`,
	"∶", ":",
	"：", ":",
	"？", "?",
	"《", `"`,
	"》", `"`,
	"）", ")",
	"！", "!",
	"（", "(",
	"；", ";",
	"」", `"`,
	"「", `"`,
	"０", "0",
	"１", "1",
	"２", "2",
	"３", "3",
	"４", "4",
	"５", "5",
	"６", "6",
	"７", "7",
	"８", "8",
	"９", "9",
	"～", "~",
	"’", "'",
	"…", "...",
	"━", "-",
	"〈", "<",
	"〉", ">",
	"【", "[",
	"】", "]",
	"％", "%",
}

var unicodeStopRules = []rewrite.Spec{
	{Pattern: `。[` + resources.Whitespace + `]*`, Replacement: ". "},
	{Pattern: `．[` + resources.Whitespace + `]*`, Replacement: ". "},
}

var extraWhitespaceRules = []rewrite.Spec{
	{Pattern: `\r`, Replacement: ""},
	{Pattern: `\(`, Replacement: " ("},
	{Pattern: `\)`, Replacement: ") "},
	{Pattern: ` +`, Replacement: " "},
	{Pattern: `\) ([.!:?;,])`, Replacement: ")$1"},
	{Pattern: `\( `, Replacement: "("},
	{Pattern: ` \)`, Replacement: ")"},
	{Pattern: `(\p{Nd}) %`, Replacement: "${1}%"},
	{Pattern: ` :`, Replacement: ":"},
	{Pattern: ` ;`, Replacement: ";"},
}

var pennRules = []rewrite.Spec{
	{Pattern: "`", Replacement: "'"},
	{Pattern: `''`, Replacement: ` " `},
}

var normalizeUnicodeRules = []rewrite.Spec{
	{Pattern: `„`, Replacement: `"`},
	{Pattern: `“`, Replacement: `"`},
	{Pattern: `”`, Replacement: `"`},
	{Pattern: `–`, Replacement: "-"},
	{Pattern: `—`, Replacement: " - "},
	{Pattern: ` +`, Replacement: " "},
	{Pattern: `´`, Replacement: "'"},
	{Pattern: `([a-zA-Z])‘([a-zA-Z])`, Replacement: "$1'$2"},
	{Pattern: `([a-zA-Z])’([a-zA-Z])`, Replacement: "$1'$2"},
	{Pattern: `‘`, Replacement: "'"},
	{Pattern: `‚`, Replacement: "'"},
	{Pattern: `’`, Replacement: "'"},
	{Pattern: `''`, Replacement: `"`},
	{Pattern: `´´`, Replacement: `"`},
	{Pattern: `…`, Replacement: "..."},
}

var frenchQuoteRules = []rewrite.Spec{
	{Pattern: `\x{A0}«\x{A0}`, Replacement: `"`},
	{Pattern: `«\x{A0}`, Replacement: `"`},
	{Pattern: `«`, Replacement: `"`},
	{Pattern: `\x{A0}»\x{A0}`, Replacement: `"`},
	{Pattern: `\x{A0}»`, Replacement: `"`},
	{Pattern: `»`, Replacement: `"`},
}

var pseudoSpaceRules = []rewrite.Spec{
	{Pattern: `\x{A0}%`, Replacement: "%"},
	{Pattern: `nº\x{A0}`, Replacement: "nº "},
	{Pattern: `\x{A0}:`, Replacement: ":"},
	{Pattern: `\x{A0}ºC`, Replacement: " ºC"},
	{Pattern: `\x{A0}cm`, Replacement: " cm"},
	{Pattern: `\x{A0}\?`, Replacement: "?"},
	{Pattern: `\x{A0}!`, Replacement: "!"},
	{Pattern: `\x{A0};`, Replacement: ";"},
	{Pattern: `,\x{A0}`, Replacement: ", "},
	{Pattern: ` +`, Replacement: " "},
}

var englishQuoteCommaRules = []rewrite.Spec{
	{Pattern: `"([,.]+)`, Replacement: `$1"`},
}

var continentalQuoteCommaRules = []rewrite.Spec{
	{Pattern: `,"`, Replacement: `",`},
	{Pattern: `(\.+)"([` + resources.Whitespace + `]*[^<])`, Replacement: `"$1$2`},
}
