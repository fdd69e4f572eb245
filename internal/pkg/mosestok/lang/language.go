package lang

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownLanguage is returned when a tag is not part of the supported set.
var ErrUnknownLanguage = errors.New("unknown language")

// Language is a locale tag from the closed set understood by the tokenizer
// and the punctuation normalizer.
type Language string

const (
	As  Language = "as"
	Bn  Language = "bn"
	Ca  Language = "ca"
	Cjk Language = "cjk"
	Cs  Language = "cs"
	Cz  Language = "cz"
	De  Language = "de"
	El  Language = "el"
	En  Language = "en"
	Es  Language = "es"
	Et  Language = "et"
	Fi  Language = "fi"
	Fr  Language = "fr"
	Ga  Language = "ga"
	Gu  Language = "gu"
	Hi  Language = "hi"
	Hu  Language = "hu"
	Is  Language = "is"
	It  Language = "it"
	Ja  Language = "ja"
	Kn  Language = "kn"
	Ko  Language = "ko"
	Lt  Language = "lt"
	Lv  Language = "lv"
	Ml  Language = "ml"
	Mni Language = "mni"
	Mr  Language = "mr"
	Nl  Language = "nl"
	Or  Language = "or"
	Pa  Language = "pa"
	Pl  Language = "pl"
	Pt  Language = "pt"
	Ro  Language = "ro"
	Ru  Language = "ru"
	Sk  Language = "sk"
	Sl  Language = "sl"
	Sv  Language = "sv"
	Ta  Language = "ta"
	Te  Language = "te"
	Yue Language = "yue"
	Zh  Language = "zh"
)

var languages = []Language{
	As, Bn, Ca, Cjk, Cs, Cz, De, El, En, Es, Et, Fi, Fr, Ga, Gu, Hi, Hu, Is, It, Ja,
	Kn, Ko, Lt, Lv, Ml, Mni, Mr, Nl, Or, Pa, Pl, Pt, Ro, Ru, Sk, Sl, Sv, Ta, Te, Yue, Zh,
}

var byTag = func() map[string]Language {
	m := make(map[string]Language, len(languages))
	for _, l := range languages {
		m[string(l)] = l
	}
	return m
}()

// ParseLanguage matches tag case-insensitively against the supported set.
func ParseLanguage(tag string) (Language, error) {
	l, ok := byTag[strings.ToLower(strings.TrimSpace(tag))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, tag)
	}
	return l, nil
}

// All returns every supported language in a stable order.
func All() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}

func (l Language) String() string {
	return string(l)
}

// UsesDecimalComma reports whether digits grouped by a non-breaking space
// are joined with a comma rather than a point.
func (l Language) UsesDecimalComma() bool {
	switch l {
	case De, Es, Fr, Cs, Cz:
		return true
	}
	return false
}
