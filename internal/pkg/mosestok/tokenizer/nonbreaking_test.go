package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mosestok/internal/pkg/mosestok/lang"
)

func TestResolveNonbreaking(t *testing.T) {
	tok := NewForLanguage(lang.En)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "sentence end", input: "He left.", want: "He left ."},
		{name: "internal period", input: "at 9 a.m. Monday", want: "at 9 a.m. Monday"},
		{name: "initials", input: "U.S. Army", want: "U.S. Army"},
		{name: "digits with internal period", input: "version 1.2. Next", want: "version 1.2 . Next"},
		{name: "lowercase follower", input: "Vol. one", want: "Vol. one"},
		{name: "uppercase follower", input: "Dr. Who", want: "Dr . Who"},
		{name: "last token", input: "the etc.", want: "the etc ."},
		{name: "lone period", input: "end .", want: "end ."},
		{name: "no period", input: "a b c", want: "a b c"},
		{name: "whitespace normalized", input: "  a   b.  ", want: "a b ."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tok.resolveNonbreaking(tt.input))
		})
	}
}

func TestResolveNonbreaking_PrefixLists(t *testing.T) {
	tok := NewForLanguage(lang.En)
	tok.prefixes = toSet([]string{"Nr"})
	tok.numericOnly = toSet([]string{"Nr", "12", "Art"})

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "in both lists", input: "Nr. Foo", want: "Nr. Foo"},
		{name: "in both lists at end", input: "see Nr.", want: "see Nr."},
		{name: "numeric only starting with digits", input: "12. Foo", want: "12. Foo"},
		{name: "numeric only starting with digits at end", input: "page 12.", want: "page 12 ."},
		{name: "numeric only without digits", input: "Art. Foo", want: "Art . Foo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tok.resolveNonbreaking(tt.input))
		})
	}
}
