// Package parse turns unstructured completion text into structured
// itinerary and recommendation values. Every extraction step is a
// best-effort pattern match over adversarial natural-language output: a
// missing structure degrades to an empty field, never to an error. Only
// categorically empty input fails.
package parse

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/ReyhanHussain/YatraGPT/internal/domain"
)

// Subsection labels the prompt asks for in each information section. The
// section formatter keys its heading heuristic against these.
var (
	EssentialLabels = []string{"LANGUAGE BASICS", "GETTING AROUND", "CULTURAL KNOW-HOW", "FOOD GUIDE", "VISITOR TIPS"}
	PracticalLabels = []string{"SEASONAL ADVICE", "SAFETY & HEALTH", "MONEY MATTERS", "PACKING LIST", "BUDGET PLANNING"}
	InsiderLabels   = []string{"HIDDEN GEMS", "LOCAL FESTIVALS", "SHOPPING GUIDE"}
)

// Section fallback titles. The formatter guarantees its output starts with
// one of these even when the source section is empty.
const (
	essentialTitle = "ESSENTIAL TRAVEL INFORMATION"
	practicalTitle = "PRACTICAL MATTERS"
	insiderTitle   = "INSIDER KNOWLEDGE"
)

var (
	titleLineRe = regexp.MustCompile(`(?i)Cultural Journey to [^\n]*`)
	dayTitleRe  = regexp.MustCompile(`(?i)Day \d+:\s*[^\n]+`)
)

// ParseItinerary extracts a structured itinerary from raw completion text.
// It fails only when the text is empty; an itinerary with zero matched days
// is a valid, if sparse, result. len(Days) never exceeds requestedDays.
func ParseItinerary(raw, destination string, requestedDays int) (*domain.Itinerary, error) {
	content := strings.TrimSpace(raw)
	if content == "" {
		return nil, &domain.ParseError{Reason: "no content found in completion response"}
	}

	days := make([]domain.DayPlan, 0, requestedDays)
	for i := 1; i <= requestedDays; i++ {
		region, ok := dayRegion(content, i)
		if !ok {
			// Days the model skipped are omitted, never null-padded.
			continue
		}
		days = append(days, parseDay(region, i))
	}

	essential := sectionBody(content, essentialTitle, practicalTitle, insiderTitle)
	practical := sectionBody(content, practicalTitle, insiderTitle)
	insider := sectionBody(content, insiderTitle)

	return &domain.Itinerary{
		Title:               "Cultural Journey to " + destination,
		Subtitle:            "Crafted with YatraGPT",
		Destination:         strings.ToUpper(destination),
		Introduction:        introduction(content, destination),
		Days:                days,
		EssentialTravelInfo: FormatSection(essential, EssentialLabels, essentialTitle),
		PracticalMatters:    FormatSection(practical, PracticalLabels, practicalTitle),
		InsiderKnowledge:    FormatSection(insider, InsiderLabels, insiderTitle),
		GeneratedAt:         time.Now(),
	}, nil
}

// introduction returns the text between the document title line and the
// first day marker, or a generic welcome line when absent.
func introduction(content, destination string) string {
	fallback := fmt.Sprintf("Welcome to %s!", destination)

	loc := titleLineRe.FindStringIndex(content)
	if loc == nil {
		return fallback
	}

	end := len(content)
	if dayLoc := markerIndex(content, loc[1], "Day 1:"); dayLoc >= 0 {
		end = dayLoc
	}

	intro := strings.TrimSpace(content[loc[1]:end])
	if intro == "" {
		return fallback
	}
	return intro
}

// dayRegion locates the block for day i: from its "Day i:" marker up to the
// next day marker, the first known section header, or end of text.
func dayRegion(content string, i int) (string, bool) {
	marker := regexp.MustCompile(fmt.Sprintf(`(?i)Day %d:`, i))
	loc := marker.FindStringIndex(content)
	if loc == nil {
		return "", false
	}

	end := len(content)
	stops := []string{fmt.Sprintf("Day %d:", i+1), "ESSENTIAL", "PRACTICAL", "INSIDER"}
	for _, stop := range stops {
		if idx := markerIndex(content, loc[1], stop); idx >= 0 && idx < end {
			end = idx
		}
	}

	return strings.TrimSpace(content[loc[0]:end]), true
}

// parseDay extracts the title line and the four activity slots from one day
// block. Unmatched slots stay empty.
func parseDay(region string, i int) domain.DayPlan {
	title := fmt.Sprintf("Day %d", i)
	if m := dayTitleRe.FindString(region); m != "" {
		title = strings.TrimSpace(m)
	}

	return domain.DayPlan{
		Title: title,
		Activities: domain.Activities{
			Morning:   activityRegion(region, "Morning", "Lunch", "Afternoon", "Evening"),
			Lunch:     activityRegion(region, "Lunch", "Afternoon", "Evening"),
			Afternoon: activityRegion(region, "Afternoon", "Evening"),
			Evening:   activityRegion(region, "Evening"),
		},
	}
}

// activityRegion returns the text from the first occurrence of marker up to
// the earliest of the stop markers, marker word included.
func activityRegion(region, marker string, stops ...string) string {
	start := markerIndex(region, 0, marker)
	if start < 0 {
		return ""
	}

	end := len(region)
	searchFrom := start + len(marker)
	for _, stop := range stops {
		if idx := markerIndex(region, searchFrom, stop); idx >= 0 && idx < end {
			end = idx
		}
	}

	return strings.TrimSpace(region[start:end])
}

// sectionBody returns the text following the section header up to the next
// known header or end of text, without the header itself.
func sectionBody(content, header string, stops ...string) string {
	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(header) + `:?`)
	loc := re.FindStringIndex(content)
	if loc == nil {
		return ""
	}

	end := len(content)
	for _, stop := range stops {
		if idx := markerIndex(content, loc[1], stop); idx >= 0 && idx < end {
			end = idx
		}
	}

	return strings.TrimSpace(content[loc[1]:end])
}

// markerIndex finds marker case-insensitively in text at or after from,
// returning its absolute index or -1.
func markerIndex(text string, from int, marker string) int {
	if from >= len(text) {
		return -1
	}
	idx := strings.Index(strings.ToLower(text[from:]), strings.ToLower(marker))
	if idx < 0 {
		return -1
	}
	return from + idx
}
