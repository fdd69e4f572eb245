package tokenizer

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokens(t *testing.T) {
	tokens := Tokens{text: "a bb ccc"}

	assert.Equal(t, "a bb ccc", tokens.String())
	assert.Equal(t, []string{"a", "bb", "ccc"}, tokens.Slice())

	first := slices.Collect(tokens.All())
	second := slices.Collect(tokens.All())
	assert.Equal(t, first, second)
	assert.Equal(t, tokens.Slice(), first)
}

func TestTokens_StopEarly(t *testing.T) {
	tokens := Tokens{text: "one two three four"}

	var seen []string
	for token := range tokens.All() {
		seen = append(seen, token)
		if len(seen) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"one", "two"}, seen)
}

func TestTokens_Zero(t *testing.T) {
	var tokens Tokens
	assert.Empty(t, tokens.String())
	assert.Empty(t, tokens.Slice())
}
