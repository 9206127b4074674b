package typing

import (
	"regexp"
	"sort"
	"unicode/utf8"
)

const (
	// Texts under shortTextLimit are split into 2-3 roughly equal pieces
	// instead of structural chunks.
	shortTextLimit = 300

	// minShortChunk is the smallest piece a short text is split into.
	minShortChunk = 50

	// fixedChunkSize is used when the text has no structure at all.
	fixedChunkSize = 120

	// gapSplitLimit is the longest stretch of plain text between structural
	// spans emitted as a single chunk; longer gaps split at their midpoint.
	gapSplitLimit = 150
)

var (
	headingSpanRe = regexp.MustCompile(`\*\*[^*\n]+\*\*`)
	bulletSpanRe  = regexp.MustCompile(`\n[•\-*] [^\n]*`)
	paraSpanRe    = regexp.MustCompile(`\n\n[^\n]*`)
)

// Segment splits text into ordered display chunks. Structural spans (bold
// headings, bullet lines, paragraph leads) are kept atomic; the plain text
// between them becomes one or two chunks depending on length. The chunks
// concatenate back to the input exactly.
func Segment(text string) []string {
	if text == "" {
		return nil
	}

	if len(text) < shortTextLimit {
		return splitEven(text)
	}

	spans := structuralSpans(text)
	if len(spans) == 0 {
		return splitFixed(text, fixedChunkSize)
	}

	var chunks []string
	last := 0
	for _, s := range spans {
		if s.start < last {
			// Overlapping span (a bullet inside a paragraph lead, say);
			// its text is already covered.
			continue
		}
		if s.start > last {
			chunks = append(chunks, splitGap(text[last:s.start])...)
		}
		chunks = append(chunks, text[s.start:s.end])
		last = s.end
	}
	if last < len(text) {
		chunks = append(chunks, splitGap(text[last:])...)
	}

	return chunks
}

type span struct {
	start, end int
}

// structuralSpans locates headings, bullet lines, and paragraph leads,
// ordered by position.
func structuralSpans(text string) []span {
	var spans []span
	for _, re := range []*regexp.Regexp{headingSpanRe, bulletSpanRe, paraSpanRe} {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			spans = append(spans, span{start: loc[0], end: loc[1]})
		}
	}
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].start != spans[j].start {
			return spans[i].start < spans[j].start
		}
		return spans[i].end > spans[j].end
	})
	return spans
}

// splitEven cuts a short text into 2-3 roughly equal pieces.
func splitEven(text string) []string {
	size := (len(text) + 2) / 3
	if size < minShortChunk {
		size = minShortChunk
	}
	return splitFixed(text, size)
}

// splitGap emits a plain-text stretch as one chunk, or two halves when it
// is long.
func splitGap(gap string) []string {
	if gap == "" {
		return nil
	}
	if len(gap) <= gapSplitLimit {
		return []string{gap}
	}
	mid := runeBoundary(gap, len(gap)/2)
	return []string{gap[:mid], gap[mid:]}
}

// splitFixed cuts text into size-byte chunks aligned to rune boundaries.
func splitFixed(text string, size int) []string {
	var chunks []string
	for len(text) > 0 {
		if len(text) <= size {
			chunks = append(chunks, text)
			break
		}
		cut := runeBoundary(text, size)
		chunks = append(chunks, text[:cut])
		text = text[cut:]
	}
	return chunks
}

// runeBoundary nudges idx forward to the nearest rune start so chunks never
// split a multi-byte glyph.
func runeBoundary(s string, idx int) int {
	for idx < len(s) && !utf8.RuneStart(s[idx]) {
		idx++
	}
	return idx
}
