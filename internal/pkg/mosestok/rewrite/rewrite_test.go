package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable_Apply(t *testing.T) {
	tests := []struct {
		name  string
		specs []Spec
		input string
		want  string
	}{
		{
			name:  "empty table",
			input: "unchanged",
			want:  "unchanged",
		},
		{
			name:  "single rule",
			specs: []Spec{{Pattern: ` +`, Replacement: " "}},
			input: "a    b  c",
			want:  "a b c",
		},
		{
			name: "rules see previous output",
			specs: []Spec{
				{Pattern: `a`, Replacement: "b"},
				{Pattern: `b`, Replacement: "c"},
			},
			input: "ab",
			want:  "cc",
		},
		{
			name:  "braced group",
			specs: []Spec{{Pattern: ` ([Cc])annot `, Replacement: " ${1}an not "}},
			input: " Cannot ",
			want:  " Can not ",
		},
		{
			name:  "numbered groups",
			specs: []Spec{{Pattern: `(\p{Nd})\x{A0}(\p{Nd})`, Replacement: "$1.$2"}},
			input: "1\u00a0000",
			want:  "1.000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := Compile(tt.specs...)
			assert.Equal(t, tt.want, table.Apply(tt.input))
		})
	}
}

func TestCompile_InvalidPanics(t *testing.T) {
	assert.Panics(t, func() {
		Compile(Spec{Pattern: `(`, Replacement: ""})
	})
}

func TestTable_ZeroValue(t *testing.T) {
	var table Table
	assert.Equal(t, "x", table.Apply("x"))
}
