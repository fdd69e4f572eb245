package tokenizer

import (
	"regexp"
	"strings"
)

const (
	dotMulti    = "DOTMULTI"
	dotDotMulti = "DOTDOTMULTI"
)

type multidotPatterns struct {
	run      *regexp.Regexp
	nextWord *regexp.Regexp
}

func compileMultidot() multidotPatterns {
	return multidotPatterns{
		run:      regexp.MustCompile(`\.(\.+)`),
		nextWord: regexp.MustCompile(`DOTMULTI\.([^.])`),
	}
}

// protectMultidots hides runs of two or more dots behind sentinels so the
// comma, apostrophe and period rules cannot split them. "..." becomes
// " DOTDOTDOTMULTI": one DOT per dot in the run.
//
// Every pass turns each "DOTMULTI." into "DOTDOTMULTI", consuming one bare
// dot behind a sentinel, so the loop ends after at most as many passes as the
// longest run has dots.
func (t *Tokenizer) protectMultidots(text string) string {
	text = t.multidot.run.ReplaceAllString(text, " "+dotMulti+"$1")
	for strings.Contains(text, dotMulti+".") {
		text = t.multidot.nextWord.ReplaceAllString(text, dotDotMulti+" $1")
		text = strings.ReplaceAll(text, dotMulti+".", dotDotMulti)
	}
	return text
}

// restoreMultidots is the inverse of protectMultidots. Each pass peels one
// DOT layer off every sentinel.
func (t *Tokenizer) restoreMultidots(text string) string {
	for strings.Contains(text, dotDotMulti) {
		text = strings.ReplaceAll(text, dotDotMulti, dotMulti+".")
	}
	return strings.ReplaceAll(text, dotMulti, ".")
}
