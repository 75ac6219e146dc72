// Package textwrap reflows text to fit a pixel width for a given font.
package textwrap

import (
	"strings"

	"github.com/inkforge/fable/render"
)

// Wrap splits text into lines no wider than maxWidth pixels when rendered
// with the given font. Words are kept whole where possible; a single word
// wider than maxWidth is split at the last rune that still fits.
func Wrap(fnt render.Font, text string, maxWidth float64) []string {
	if text == "" {
		return nil
	}
	if maxWidth <= 0 {
		return []string{text}
	}

	var lines []string
	var currentLine string

	for _, word := range strings.Fields(text) {
		candidate := word
		if currentLine != "" {
			candidate = currentLine + " " + word
		}

		if w, _ := fnt.MeasureText(candidate); w <= maxWidth {
			currentLine = candidate
			continue
		}

		if currentLine != "" {
			lines = append(lines, currentLine)
			currentLine = ""
		}

		// Word alone fits on a fresh line
		if w, _ := fnt.MeasureText(word); w <= maxWidth {
			currentLine = word
			continue
		}

		// Word is wider than the line; split it rune by rune
		for _, chunk := range splitWord(fnt, word, maxWidth) {
			lines = append(lines, chunk)
		}
		if len(lines) > 0 {
			// The final chunk stays open so following words can join it
			currentLine = lines[len(lines)-1]
			lines = lines[:len(lines)-1]
		}
	}

	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return lines
}

// splitWord breaks a single over-wide word into chunks that each fit maxWidth.
func splitWord(fnt render.Font, word string, maxWidth float64) []string {
	var chunks []string
	runes := []rune(word)

	start := 0
	for start < len(runes) {
		end := start + 1
		for end < len(runes) {
			w, _ := fnt.MeasureText(string(runes[start : end+1]))
			if w > maxWidth {
				break
			}
			end++
		}
		chunks = append(chunks, string(runes[start:end]))
		start = end
	}

	return chunks
}
