package parser

import "strings"

// SplitLines splits manually entered text into one value per line.
// Blank and whitespace-only lines are discarded; everything else is kept
// verbatim for the normalizer to pick through.
func SplitLines(text string) []string {
	var values []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		values = append(values, line)
	}
	return values
}
