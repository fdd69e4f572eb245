package tokenizer

import (
	"strings"

	"mosestok/internal/pkg/mosestok/resources"
	"mosestok/internal/pkg/mosestok/rewrite"
)

const ellipsisMarker = "_ELLIPSIS_"

type pennTables struct {
	quotes     rewrite.Table
	separators rewrite.Table
	finalDot   rewrite.Table
	brackets   rewrite.Table
	quotesEnd  rewrite.Table
}

func compilePenn(b *resources.Bundle) pennTables {
	num := resources.Class(b.Numeric)
	symbols := resources.Class(b.Currency, b.OtherSymbol)

	return pennTables{
		quotes: rewrite.Compile(
			rewrite.Spec{Pattern: "^``", Replacement: "`` "},
			rewrite.Spec{Pattern: `^"`, Replacement: "`` "},
			rewrite.Spec{Pattern: "^`([^`])", Replacement: "` $1"},
			rewrite.Spec{Pattern: `^'`, Replacement: "`  "},
			rewrite.Spec{Pattern: `([ (\[{<])"`, Replacement: "$1 `` "},
			rewrite.Spec{Pattern: "([ (\\[{<])``", Replacement: "$1 `` "},
			rewrite.Spec{Pattern: "([ (\\[{<])`([^`])", Replacement: "$1 ` $2"},
			rewrite.Spec{Pattern: `([ (\[{<])'`, Replacement: "$1 ` "},
			rewrite.Spec{Pattern: `\.\.\.`, Replacement: " " + ellipsisMarker + " "},
		),
		// Matches cannot overlap, so the letter-letter rule runs a second
		// time to reach the comma after a one-character token ("a,b,c").
		separators: rewrite.Compile(
			rewrite.Spec{Pattern: `([^` + num + `]),([^` + num + `])`, Replacement: "$1 , $2"},
			rewrite.Spec{Pattern: `([` + num + `]),([^` + num + `])`, Replacement: "$1 , $2"},
			rewrite.Spec{Pattern: `([^` + num + `]),([^` + num + `])`, Replacement: "$1 , $2"},
			rewrite.Spec{Pattern: `([^` + num + `]),([` + num + `])`, Replacement: "$1 , $2"},
			rewrite.Spec{Pattern: `([;:@#\$%&` + symbols + `])`, Replacement: " $1 "},
		),
		finalDot: rewrite.Compile(
			rewrite.Spec{Pattern: `([^.])([.])([\])}>"']*) ?$`, Replacement: "$1 $2$3"},
			rewrite.Spec{Pattern: `([?!])`, Replacement: " $1 "},
			rewrite.Spec{Pattern: `([\]\[(){}<>])`, Replacement: " $1 "},
		),
		brackets: rewrite.Compile(
			rewrite.Spec{Pattern: `\(`, Replacement: "-LRB-"},
			rewrite.Spec{Pattern: `\)`, Replacement: "-RRB-"},
			rewrite.Spec{Pattern: `\[`, Replacement: "-LSB-"},
			rewrite.Spec{Pattern: `\]`, Replacement: "-RSB-"},
			rewrite.Spec{Pattern: `\{`, Replacement: "-LCB-"},
			rewrite.Spec{Pattern: `\}`, Replacement: "-RCB-"},
			rewrite.Spec{Pattern: `--`, Replacement: " -- "},
		),
		quotesEnd: rewrite.Compile(
			rewrite.Spec{Pattern: `"`, Replacement: " '' "},
			rewrite.Spec{Pattern: `([^'])' `, Replacement: "$1 ' "},
			rewrite.Spec{Pattern: `'([sSmMdD]) `, Replacement: " '$1 "},
			rewrite.Spec{Pattern: `'ll `, Replacement: " 'll "},
			rewrite.Spec{Pattern: `'re `, Replacement: " 're "},
			rewrite.Spec{Pattern: `'ve `, Replacement: " 've "},
			rewrite.Spec{Pattern: `n't `, Replacement: " n't "},
			rewrite.Spec{Pattern: `'LL `, Replacement: " 'LL "},
			rewrite.Spec{Pattern: `'RE `, Replacement: " 'RE "},
			rewrite.Spec{Pattern: `'VE `, Replacement: " 'VE "},
			rewrite.Spec{Pattern: `N'T `, Replacement: " N'T "},
			rewrite.Spec{Pattern: ` ([Cc])annot `, Replacement: " ${1}an not "},
			rewrite.Spec{Pattern: ` ([Dd])'ye `, Replacement: " ${1}' ye "},
			rewrite.Spec{Pattern: ` ([Gg])imme `, Replacement: " ${1}im me "},
			rewrite.Spec{Pattern: ` ([Gg])onna `, Replacement: " ${1}on na "},
			rewrite.Spec{Pattern: ` ([Gg])otta `, Replacement: " ${1}ot ta "},
			rewrite.Spec{Pattern: ` ([Ll])emme `, Replacement: " ${1}em me "},
			rewrite.Spec{Pattern: ` ([Mm])ore'n `, Replacement: " ${1}ore 'n "},
			rewrite.Spec{Pattern: ` '([Tt])is `, Replacement: " '${1} is "},
			rewrite.Spec{Pattern: ` '([Tt])was `, Replacement: " '${1} was "},
			rewrite.Spec{Pattern: ` ([Ww])anna `, Replacement: " ${1}an na "},
		),
	}
}

// PennTokenize splits text following the Penn Treebank conventions: brackets
// become -LRB- style tokens, contractions are split and double quotes become
// `` and ''. The result is always XML-escaped.
func (t *Tokenizer) PennTokenize(text string) Tokens {
	text = t.clean(text)

	text = t.penn.quotes.Apply(text)
	text = t.penn.separators.Apply(text)
	text = replace2(t.slashSplit, text, "$1 @/@ ")
	text = t.penn.finalDot.Apply(text)
	text = t.penn.brackets.Apply(text)

	text = " " + text + " "
	text = t.penn.quotesEnd.Apply(text)

	text = t.resolveNonbreaking(text)
	text = strings.ReplaceAll(text, ellipsisMarker, "...")

	return Tokens{text: t.collapse(EscapeXML(t.collapse(text)))}
}
