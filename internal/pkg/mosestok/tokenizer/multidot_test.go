package tokenizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"mosestok/internal/pkg/mosestok/lang"
)

func TestProtectMultidots(t *testing.T) {
	tok := NewForLanguage(lang.En)

	tests := []struct {
		input string
		want  string
	}{
		{input: "no dots", want: "no dots"},
		{input: "one.", want: "one."},
		{input: "two..", want: "two DOTDOTMULTI"},
		{input: "three...", want: "three DOTDOTDOTMULTI"},
		{input: "a...b", want: "a DOTDOTDOTMULTI b"},
		{input: "x.... y", want: "x DOTDOTDOTDOTMULTI  y"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := tok.protectMultidots(tt.input)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, "..")
		})
	}
}

func TestMultidots_RoundTrip(t *testing.T) {
	tok := NewForLanguage(lang.En)

	inputs := []string{
		"",
		"...",
		"a..b...c....d",
		"end.....",
		". .. ... ....",
		"U.S.A... and more",
		strings.Repeat(".", 40),
	}

	for _, input := range inputs {
		restored := tok.restoreMultidots(tok.protectMultidots(input))
		assert.Equal(t, stripSpaces(input), stripSpaces(restored), input)
	}
}

func stripSpaces(s string) string {
	return strings.ReplaceAll(s, " ", "")
}
