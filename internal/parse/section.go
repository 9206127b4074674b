package parse

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const headingMaxLen = 50

var bulletLineRe = regexp.MustCompile(`^[•\-*]|^\d+\.`)

// FormatSection reflows a section body into a bulleted layout keyed against
// the subsection labels the prompt asked for. The output always begins with
// fallbackTitle. This is a heuristic cosmetic pass over free-form model
// output, not a structured parse; it tolerates any input without failing.
func FormatSection(content string, knownLabels []string, fallbackTitle string) string {
	content = strings.TrimSpace(content)
	if content == "" {
		return fallbackTitle
	}

	// Content that already carries the first expected label is treated as
	// pre-structured and passed through unchanged.
	if len(knownLabels) > 0 && strings.Contains(content, knownLabels[0]) {
		return fallbackTitle + "\n" + content
	}

	var formatted []string
	currentSection := ""

	for _, rawLine := range strings.Split(content, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}

		isBullet := bulletLineRe.MatchString(line)

		if label := matchLabel(line, knownLabels); label != "" || isHeadingLine(line) {
			if label == "" {
				label = line
			}
			currentSection = label
			formatted = append(formatted, "• **"+currentSection+"**:")
			continue
		}

		switch {
		case isBullet && currentSection != "":
			formatted = append(formatted, "  "+line)
		case currentSection != "":
			formatted = append(formatted, "  "+line)
		default:
			formatted = append(formatted, line)
		}
	}

	return fallbackTitle + "\n" + strings.Join(formatted, "\n")
}

// matchLabel reports which known label the line mentions, tolerating
// underscore/space variants, or "" when none match.
func matchLabel(line string, knownLabels []string) string {
	upper := strings.ToUpper(line)
	for _, label := range knownLabels {
		if strings.Contains(upper, label) || strings.Contains(upper, strings.ReplaceAll(label, "_", " ")) {
			return label
		}
	}
	return ""
}

// isHeadingLine treats short all-uppercase lines as subsection headings.
func isHeadingLine(line string) bool {
	if utf8.RuneCountInString(line) >= headingMaxLen {
		return false
	}
	if line != strings.ToUpper(line) {
		return false
	}
	// Require at least one letter so bare bullets or numbers don't become
	// headings.
	return strings.IndexFunc(line, func(r rune) bool {
		return r >= 'A' && r <= 'Z'
	}) >= 0
}
