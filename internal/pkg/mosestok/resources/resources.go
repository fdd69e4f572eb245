// Package resources supplies the per-language data the tokenizer and the
// punctuation normalizer are built from: nonbreaking prefix lists embedded in
// the binary and Unicode character classes derived from the standard tables.
//
// Languages without a bundled prefix list get an empty one. That only makes
// the period heuristic more eager to split; it is never an error.
package resources

import (
	"embed"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/rangetable"

	"mosestok/internal/pkg/mosestok/lang"
)

//go:embed nonbreaking_prefixes
var prefixFS embed.FS

// NumericOnlyMarker tags prefix lines that only hold before a number.
const NumericOnlyMarker = "#NUMERIC_ONLY#"

var numericOnlyRe = regexp.MustCompile(`\s+` + NumericOnlyMarker)

type entry struct {
	prefixFile string
	scripts    []*unicode.RangeTable
}

// bundles maps each language to its resources. Languages missing from the
// table tokenize with the base classes and no prefixes.
var bundles = map[lang.Language]entry{
	lang.Ca:  {prefixFile: "nonbreaking_prefix.ca"},
	lang.Cjk: {scripts: []*unicode.RangeTable{unicode.Hangul, unicode.Han, unicode.Hiragana, unicode.Katakana}},
	lang.Cs:  {prefixFile: "nonbreaking_prefix.cs"},
	lang.De:  {prefixFile: "nonbreaking_prefix.de"},
	lang.El:  {prefixFile: "nonbreaking_prefix.el"},
	lang.En:  {prefixFile: "nonbreaking_prefix.en"},
	lang.Es:  {prefixFile: "nonbreaking_prefix.es"},
	lang.Fi:  {prefixFile: "nonbreaking_prefix.fi"},
	lang.Fr:  {prefixFile: "nonbreaking_prefix.fr"},
	lang.It:  {prefixFile: "nonbreaking_prefix.it"},
	lang.Ja:  {scripts: []*unicode.RangeTable{unicode.Hiragana, unicode.Katakana, unicode.Han}},
	lang.Ko:  {scripts: []*unicode.RangeTable{unicode.Hangul}},
	lang.Nl:  {prefixFile: "nonbreaking_prefix.nl"},
	lang.Pl:  {prefixFile: "nonbreaking_prefix.pl"},
	lang.Pt:  {prefixFile: "nonbreaking_prefix.pt"},
	lang.Ro:  {prefixFile: "nonbreaking_prefix.ro"},
	lang.Ru:  {prefixFile: "nonbreaking_prefix.ru"},
	lang.Sk:  {prefixFile: "nonbreaking_prefix.sk"},
	lang.Sl:  {prefixFile: "nonbreaking_prefix.sl"},
	lang.Sv:  {prefixFile: "nonbreaking_prefix.sv"},
	lang.Zh:  {scripts: []*unicode.RangeTable{unicode.Han}},
}

// Bundle holds everything a tokenizer needs for one language. It is never
// modified after Load returns.
type Bundle struct {
	Language            lang.Language
	Prefixes            []string
	NumericOnlyPrefixes []string

	Alpha       *unicode.RangeTable
	Numeric     *unicode.RangeTable
	Lower       *unicode.RangeTable
	Currency    *unicode.RangeTable
	OtherSymbol *unicode.RangeTable

	// TokenAlnum extends IsAlnum with viramas, nuktas and, for CJK
	// languages, the relevant scripts.
	TokenAlnum *unicode.RangeTable
}

// Load assembles the bundle for l.
func Load(l lang.Language) *Bundle {
	e := bundles[l]
	prefixes := loadPrefixes(e.prefixFile)

	alnum := append([]*unicode.RangeTable{IsAlnum, Viramas, Nuktas}, e.scripts...)

	return &Bundle{
		Language:            l,
		Prefixes:            prefixes,
		NumericOnlyPrefixes: NumericOnly(prefixes),
		Alpha:               IsAlpha,
		Numeric:             IsN,
		Lower:               IsLower,
		Currency:            IsSc,
		OtherSymbol:         IsSo,
		TokenAlnum:          rangetable.Merge(alnum...),
	}
}

// IsAllLower reports whether every rune of s is lowercase.
func (b *Bundle) IsAllLower(s string) bool {
	for _, r := range s {
		if !unicode.Is(b.Lower, r) {
			return false
		}
	}
	return true
}

// HasAlpha reports whether s contains at least one alphabetic rune.
func (b *Bundle) HasAlpha(s string) bool {
	for _, r := range s {
		if unicode.Is(b.Alpha, r) {
			return true
		}
	}
	return false
}

func loadPrefixes(name string) []string {
	if name == "" {
		return nil
	}
	raw, err := prefixFS.ReadFile("nonbreaking_prefixes/" + name)
	if err != nil {
		return nil
	}
	return ParsePrefixes(string(raw))
}

// ParsePrefixes returns the trimmed, non-blank, non-comment lines of raw.
func ParsePrefixes(raw string) []string {
	var prefixes []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		prefixes = append(prefixes, line)
	}
	return prefixes
}

// NumericOnly extracts the prefix word of every line marked as numeric-only.
// "No #NUMERIC_ONLY#" yields "No".
func NumericOnly(prefixes []string) []string {
	var out []string
	for _, p := range prefixes {
		if !numericOnlyRe.MatchString(p) {
			continue
		}
		out = append(out, strings.Fields(p)[0])
	}
	return out
}
