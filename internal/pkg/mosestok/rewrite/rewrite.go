// Package rewrite holds ordered tables of regular-expression substitutions.
package rewrite

import "regexp"

// Spec is the source form of a rule. Replacement uses regexp.Expand syntax.
type Spec struct {
	Pattern     string
	Replacement string
}

type Rule struct {
	Re          *regexp.Regexp
	Replacement string
}

// Table is an ordered list of rules. The zero value is an empty table.
type Table []Rule

// Compile builds a Table from specs. Patterns are program constants, so an
// invalid one panics.
func Compile(specs ...Spec) Table {
	t := make(Table, 0, len(specs))
	for _, s := range specs {
		t = append(t, Rule{
			Re:          regexp.MustCompile(s.Pattern),
			Replacement: s.Replacement,
		})
	}
	return t
}

// Apply runs every rule over text in order, each one seeing the output of the
// previous rule.
func (t Table) Apply(text string) string {
	for _, r := range t {
		text = r.Re.ReplaceAllString(text, r.Replacement)
	}
	return text
}
