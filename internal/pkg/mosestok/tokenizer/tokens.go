package tokenizer

import (
	"iter"
	"strings"
)

// Tokens is the result of a tokenization: the normalized text and a view of
// its whitespace-separated tokens. It is immutable.
type Tokens struct {
	text string
}

// String returns the tokens joined by single spaces.
func (t Tokens) String() string {
	return t.text
}

// Slice returns the tokens as a new slice.
func (t Tokens) Slice() []string {
	return strings.Fields(t.text)
}

// All yields the tokens in order without allocating a slice. The sequence
// can be ranged over any number of times.
func (t Tokens) All() iter.Seq[string] {
	return strings.FieldsSeq(t.text)
}
