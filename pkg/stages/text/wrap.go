// Package text implements the text layers of a meme: greedy word wrap and
// vertical stacking of the headline, event info, description, URL and credit.
package text

import "strings"

// MeasureFunc returns the rendered width of s in the active font.
type MeasureFunc func(s string) float64

// Wrap breaks text into lines no wider than maxWidth using greedy line filling.
//
// Text is split on single spaces. Each candidate line is the previous line
// plus the next token and a trailing space, so every returned line keeps its
// trailing space. A token is moved to a new line only when the candidate is
// too wide and it is not the first token; a single token wider than maxWidth
// stays on its own line unsplit. The final line is always returned, even when
// it is empty, so Wrap never returns an empty slice.
func Wrap(text string, maxWidth float64, measure MeasureFunc) []string {
	words := strings.Split(text, " ")
	lines := make([]string, 0, 1)
	line := ""

	for n, word := range words {
		candidate := line + word + " "
		if measure(candidate) > maxWidth && n > 0 {
			lines = append(lines, line)
			line = word + " "
		} else {
			line = candidate
		}
	}

	return append(lines, line)
}
