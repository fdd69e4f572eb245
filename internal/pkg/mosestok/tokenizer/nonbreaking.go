package tokenizer

import "strings"

// resolveNonbreaking decides, for every token ending in a period, whether the
// period belongs to the token or is a sentence end that becomes its own
// token. Token order is preserved.
func (t *Tokenizer) resolveNonbreaking(text string) string {
	tokens := strings.Fields(text)
	for i, token := range tokens {
		prefix, ok := strings.CutSuffix(token, ".")
		if !ok || prefix == "" {
			continue
		}
		if t.keepsPeriod(tokens, i, prefix) {
			continue
		}
		tokens[i] = prefix + " ."
	}
	return strings.Join(tokens, " ")
}

func (t *Tokenizer) keepsPeriod(tokens []string, i int, prefix string) bool {
	last := i == len(tokens)-1
	_, general := t.prefixes[prefix]
	_, numeric := t.numericOnly[prefix]

	switch {
	case strings.Contains(prefix, ".") && t.bundle.HasAlpha(prefix):
		// a.m. e.g.
		return true
	case general && numeric:
		return true
	case !last && t.bundle.IsAllLower(tokens[i+1]):
		return true
	case numeric && !last && startsWithDigits(tokens[i]):
		return true
	}
	return false
}

func startsWithDigits(s string) bool {
	return s != "" && s[0] >= '0' && s[0] <= '9'
}
