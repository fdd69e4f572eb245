package lang

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		want Language
	}{
		{name: "lower", tag: "en", want: En},
		{name: "upper", tag: "EN", want: En},
		{name: "mixed", tag: "Fr", want: Fr},
		{name: "three letters", tag: "MNI", want: Mni},
		{name: "pseudo locale", tag: "cjk", want: Cjk},
		{name: "surrounding space", tag: " de ", want: De},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLanguage(tt.tag)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLanguage_Unknown(t *testing.T) {
	for _, tag := range []string{"", "xx", "english", "e n"} {
		_, err := ParseLanguage(tag)
		require.Error(t, err, "tag %q", tag)
		assert.True(t, errors.Is(err, ErrUnknownLanguage))
	}
}

func TestAll(t *testing.T) {
	all := All()
	assert.Len(t, all, 41)
	assert.Contains(t, all, Yue)

	all[0] = "zz"
	assert.Equal(t, As, All()[0], "All must return a copy")
}

func TestFamilies(t *testing.T) {
	for _, l := range []Language{De, Es, Fr, Cs, Cz} {
		assert.True(t, l.UsesDecimalComma(), l.String())
	}
	assert.False(t, En.UsesDecimalComma())
	assert.False(t, It.UsesDecimalComma())
}
