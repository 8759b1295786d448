// Package sanitize provides text sanitization utilities for user-provided input.
package sanitize

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	// htmlTagRegex matches HTML tags
	htmlTagRegex = regexp.MustCompile(`<[^>]*>`)
	// whitespaceRegex matches runs of spaces and tabs
	whitespaceRegex = regexp.MustCompile(`[ \t]+`)
)

// StripHTML removes all HTML tags from a string, making it safe for text-only display.
func StripHTML(s string) string {
	result := htmlTagRegex.ReplaceAllString(s, "")
	result = strings.ReplaceAll(result, "&lt;", "<")
	result = strings.ReplaceAll(result, "&gt;", ">")
	result = strings.ReplaceAll(result, "&amp;", "&")
	result = strings.ReplaceAll(result, "&quot;", "\"")
	result = strings.ReplaceAll(result, "&#39;", "'")
	// Re-strip after entity decode to catch encoded tags
	result = htmlTagRegex.ReplaceAllString(result, "")
	return strings.TrimSpace(result)
}

// Text sanitizes a string for safe text use by stripping HTML
// and normalizing whitespace.
func Text(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(StripHTML(s), " "))
}

// PromptInput prepares free text for embedding in a language-model prompt:
// HTML and control characters are removed and the result is cut to maxRunes.
func PromptInput(s string, maxRunes int) string {
	var sb strings.Builder
	for _, r := range Text(s) {
		if unicode.IsControl(r) && r != '\n' {
			continue
		}
		sb.WriteRune(r)
	}

	result := []rune(sb.String())
	if maxRunes > 0 && len(result) > maxRunes {
		return string(result[:maxRunes]) + "... [afgekapt]"
	}
	return string(result)
}
