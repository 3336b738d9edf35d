package display

import (
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const DefaultWidth = 80

// Wrap word-wraps text to DefaultWidth, preserving ANSI escape sequences.
func Wrap(text string) string {
	return wordwrap.String(text, DefaultWidth)
}

// Title renders a display name in title case for prompts and status
// lines. Casers are not safe for concurrent reuse, so build one per call.
func Title(s string) string {
	return cases.Title(language.English).String(s)
}
