// Package typing simulates token-by-token delivery of an already-complete
// chatbot reply. A finished response is normalized, segmented into display
// chunks along its structural markers, and replayed to a caller-supplied
// sink with per-chunk delays. The sink always receives the complete
// text-so-far, never a diff, so concatenating the chunks reproduces the
// normalized text exactly.
package typing

import (
	"regexp"
	"strings"
)

var (
	tripleNewlineRe = regexp.MustCompile(`\n{3,}`)
	looseStarRe     = regexp.MustCompile(`(?m)^(\s*)\*([^*])`)
	leadingDashRe   = regexp.MustCompile(`(?m)^- `)
	colonLeadRe     = regexp.MustCompile(`(?m)^([^•\n]+):\n([^•*\n])`)
	tightParaRe     = regexp.MustCompile(`([.!?])[ \t]*\n\n([A-Z])`)
	boldRunOnRe     = regexp.MustCompile(`(\*\*[^*\n]+\*\*)([^\n*])`)
	bulletGapRe     = regexp.MustCompile(`• ([^\n]*)\n\n`)
	multiSpaceRe    = regexp.MustCompile(`[ \t]{2,}`)
)

// Normalize cleans up markdown-ish completion output before replay: bullet
// glyphs are canonicalized, heuristically-detected duplicate lines are
// collapsed, and spacing around headings and bullets is tightened. It is a
// best-effort cosmetic pass; the result is what the sink ultimately
// receives in full.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	t := tripleNewlineRe.ReplaceAllString(text, "\n\n")

	// Stray single asterisks and leading dashes become the canonical bullet
	// glyph. Double asterisks (bold markers) are left alone.
	t = looseStarRe.ReplaceAllString(t, "$1• $2")
	t = leadingDashRe.ReplaceAllString(t, "• ")

	t = collapseDuplicateLines(t)

	// A heading ending in a colon gets a bullet in front of its first
	// content line.
	t = colonLeadRe.ReplaceAllString(t, "$1:\n• $2")

	// Tighten the gap after sentence-ending paragraphs.
	t = tightParaRe.ReplaceAllString(t, "$1\n$2")

	// Headings get their own line.
	t = boldRunOnRe.ReplaceAllString(t, "$1\n$2")

	// Single blank line after bullet items.
	t = bulletGapRe.ReplaceAllString(t, "• $1\n")

	t = multiSpaceRe.ReplaceAllString(t, " ")

	return t
}

// collapseDuplicateLines removes consecutive duplicate lines: repeated
// headings, repeated plain lines differing only by a trailing colon (the
// colon-bearing variant wins), and a bullet line followed by its own bare
// text. Models occasionally emit these echoes; dropping them is cosmetic
// and can misfire on legitimately repeated short phrases.
func collapseDuplicateLines(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))

	for i := 0; i < len(lines); i++ {
		cur := strings.TrimSpace(lines[i])
		if cur == "" {
			out = append(out, "")
			continue
		}

		next := ""
		if i+1 < len(lines) {
			next = strings.TrimSpace(lines[i+1])
		}

		curBase := strings.TrimSuffix(cur, ":")
		nextBase := strings.TrimSuffix(next, ":")

		switch {
		case next != "" && curBase == nextBase:
			if !strings.HasSuffix(cur, ":") && strings.HasSuffix(next, ":") {
				out = append(out, next)
			} else {
				out = append(out, cur)
			}
			i++
		case strings.HasPrefix(cur, "• ") && next != "" && !strings.HasPrefix(next, "• ") &&
			strings.TrimSpace(strings.TrimPrefix(cur, "• ")) == next:
			out = append(out, cur)
			i++
		default:
			out = append(out, lines[i])
		}
	}

	return strings.Join(out, "\n")
}
