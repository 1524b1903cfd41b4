package ui

import (
	"fmt"
	"os"
	"strings"

	"scrollwatch/internal/ui/views"
)

// LoadDocument reads a text file into display lines
func LoadDocument(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return SplitLines(string(data)), nil
}

// SplitLines splits text into lines with tabs expanded
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = views.ExpandTabs(l)
	}
	return lines
}

// SampleDocument generates n numbered lines of varying width, enough to
// scroll both ways
func SampleDocument(n int) []string {
	lines := make([]string, n)
	for i := range lines {
		word := fmt.Sprintf("line %d · ", i+1)
		lines[i] = fmt.Sprintf("%4d │ %s", i+1, strings.Repeat(word, 1+i%12))
	}
	return lines
}
