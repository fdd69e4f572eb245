package tokenizer

import "strings"

// xmlEscaper works in a single pass: an entity it emits is never rescanned.
var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"|", "&#124;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
	"[", "&#91;",
	"]", "&#93;",
)

// EscapeXML escapes the characters that are special to XML and to the Moses
// toolkit's factored token format.
func EscapeXML(text string) string {
	return xmlEscaper.Replace(text)
}
