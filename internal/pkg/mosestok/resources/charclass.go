package resources

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Viramas are the combining killers of the Brahmic scripts. Unicode does not
// list them as Alphabetic, yet a word must not be split around them.
var Viramas = rangetable.New(
	0x094D, 0x09CD, 0x0A4D, 0x0ACD, 0x0B4D, 0x0BCD, 0x0C4D, 0x0CCD, 0x0D3B, 0x0D3C,
	0x0D4D, 0x0DCA, 0x0EBA, 0x1039, 0x1714, 0x1BAB, 0xA8C4, 0xA8F3, 0xA8F4, 0xA953,
	0xAAF6, 0x10A3F, 0x11046, 0x110B9, 0x11133, 0x111C0, 0x11235, 0x112EA, 0x1134D,
	0x11442, 0x114C2, 0x115BF, 0x1163F, 0x116B6, 0x11839, 0x119E0, 0x11A34, 0x11C3F,
	0x11D45, 0x11D97,
)

// Nuktas are the consonant-modifying dots of the Brahmic scripts.
var Nuktas = rangetable.New(
	0x093C, 0x09BC, 0x0A3C, 0x0ABC, 0x0AFD, 0x0AFE, 0x0AFF, 0x0B3C, 0x0CBC, 0x1C37,
	0x110BA, 0x11173, 0x111CA, 0x11236, 0x112E9, 0x1133C, 0x11446, 0x114C3, 0x115C0,
	0x116B7, 0x1183A, 0x11D42, 0x1E94A,
)

// Base character classes, equivalent to the Perl Unicode properties the
// Moses scripts are written against.
var (
	IsAlpha = rangetable.Merge(unicode.L, unicode.Nl, unicode.Other_Alphabetic)
	IsAlnum = rangetable.Merge(IsAlpha, unicode.Nd)
	IsN     = unicode.N
	IsLower = rangetable.Merge(unicode.Ll, unicode.Other_Lowercase)
	IsSc    = unicode.Sc
	IsSo    = unicode.So
)

// Class renders the union of tables as the body of a bracket expression,
// e.g. "A-Za-z". Runes are written literally so that the result is valid in
// both regexp and regexp2 syntax.
func Class(tables ...*unicode.RangeTable) string {
	t := rangetable.Merge(tables...)

	var b strings.Builder
	for _, r := range t.R16 {
		writeRange(&b, rune(r.Lo), rune(r.Hi), rune(r.Stride))
	}
	for _, r := range t.R32 {
		writeRange(&b, rune(r.Lo), rune(r.Hi), rune(r.Stride))
	}
	return b.String()
}

func writeRange(b *strings.Builder, lo, hi, stride rune) {
	if stride != 1 {
		for r := lo; r <= hi; r += stride {
			writeClassRune(b, r)
		}
		return
	}
	writeClassRune(b, lo)
	if hi == lo {
		return
	}
	if hi > lo+1 {
		b.WriteByte('-')
	}
	writeClassRune(b, hi)
}

func writeClassRune(b *strings.Builder, r rune) {
	switch r {
	case '\\', '[', ']', '^', '-':
		b.WriteByte('\\')
	}
	b.WriteRune(r)
}

// Whitespace is the bracket body matching Unicode White_Space, which Go's \s
// does not cover.
const Whitespace = `\t\n\v\f\r \x{85}\p{Z}`
