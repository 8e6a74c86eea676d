// Package tui provides the Bubble Tea configuration editor.
package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// wrapText word-wraps plain text to the given display width. Words
// wider than the width are split mid-word. Existing newlines are kept.
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}
	var out strings.Builder
	for i, paragraph := range strings.Split(text, "\n") {
		if i > 0 {
			out.WriteRune('\n')
		}
		out.WriteString(wrapParagraph(paragraph, width))
	}
	return out.String()
}

func wrapParagraph(paragraph string, width int) string {
	words := strings.Fields(paragraph)
	if len(words) == 0 {
		return ""
	}
	var out strings.Builder
	lineWidth := 0
	for _, word := range words {
		wordWidth := runewidth.StringWidth(word)
		switch {
		case lineWidth == 0:
		case lineWidth+1+wordWidth <= width:
			out.WriteRune(' ')
			lineWidth++
		default:
			out.WriteRune('\n')
			lineWidth = 0
		}
		if wordWidth > width {
			lineWidth = writeSplitWord(&out, word, width, lineWidth)
			continue
		}
		out.WriteString(word)
		lineWidth += wordWidth
	}
	return out.String()
}

func writeSplitWord(out *strings.Builder, word string, width, lineWidth int) int {
	for _, r := range word {
		w := runewidth.RuneWidth(r)
		if lineWidth+w > width && lineWidth > 0 {
			out.WriteRune('\n')
			lineWidth = 0
		}
		out.WriteRune(r)
		lineWidth += w
	}
	return lineWidth
}
