package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// WrapWords splits text into lines at word boundaries so each line's
// display width does not exceed width. A single word wider than width is
// placed on its own line unbroken.
func WrapWords(text string, width int) []string {
	words := strings.Split(text, " ")
	var lines []string
	var current []string
	currentWidth := 0

	for _, word := range words {
		wordWidth := runewidth.StringWidth(word)
		extra := 0
		if len(current) > 0 {
			extra = 1
		}
		if len(current) > 0 && currentWidth+extra+wordWidth > width {
			lines = append(lines, strings.Join(current, " "))
			current = []string{word}
			currentWidth = wordWidth
			continue
		}
		current = append(current, word)
		currentWidth += extra + wordWidth
	}
	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}
	return lines
}
