// Package pdf renders a finished itinerary into a downloadable A4 document:
// a cover page, an introduction, one page per day, one page per information
// section, and a closing page.
package pdf

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/ReyhanHussain/YatraGPT/internal/domain"
)

const (
	pageMargin = 20.0

	titleSize      = 18.0
	headingSize    = 14.0
	subheadingSize = 12.0
	normalSize     = 10.0
	smallSize      = 8.0
)

// Nature-inspired palette carried over from the web export.
var (
	colorPrimary   = rgb{0x2E, 0x5A, 0x4B} // forest green
	colorSecondary = rgb{0x5D, 0x8C, 0x5D} // sage green
	colorAccent    = rgb{0x8A, 0x41, 0x17} // terra cotta
	colorText      = rgb{0x33, 0x33, 0x33}
	colorLine      = rgb{0xBE, 0xCF, 0xB8}
	colorTint      = rgb{0xF7, 0xF9, 0xF4}
)

type rgb struct{ r, g, b int }

var (
	boldMarkerRe   = regexp.MustCompile(`\*\*`)
	headingMarkRe  = regexp.MustCompile(`#+\s*`)
	dashBulletRe   = regexp.MustCompile(`\n\s*-\s+`)
	emptyBulletRe  = regexp.MustCompile(`(?m)^\s*•\s*$`)
	sectionLabelRe = regexp.MustCompile(`(?m)^([A-Z][A-Z\s&\-]+):`)
)

// Renderer implements domain.DocumentRenderer with fpdf.
type Renderer struct{}

// NewRenderer creates a PDF renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render produces the itinerary PDF as a byte slice.
func (r *Renderer) Render(itinerary *domain.Itinerary) ([]byte, error) {
	if itinerary == nil {
		return nil, fmt.Errorf("no itinerary to render")
	}

	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(pageMargin, pageMargin, pageMargin)
	doc.SetAutoPageBreak(true, pageMargin+15)

	// The built-in fonts are cp1252, so bullets and the copyright sign
	// have to go through the translator.
	job := &renderJob{doc: doc, tr: doc.UnicodeTranslatorFromDescriptor("")}

	doc.SetFooterFunc(func() {
		if doc.PageNo() == 1 {
			return
		}
		w, h := doc.GetPageSize()
		job.draw(colorLine)
		doc.SetLineWidth(0.5)
		doc.Line(pageMargin, h-15, w-pageMargin, h-15)

		doc.SetFont("Helvetica", "", smallSize)
		job.text(colorText)
		doc.SetXY(pageMargin, h-13)
		doc.CellFormat(0, 5, fmt.Sprintf("Page %d", doc.PageNo()), "", 0, "L", false, 0, "")
		doc.SetXY(pageMargin, h-13)
		doc.CellFormat(0, 5, "YatraGPT", "", 0, "R", false, 0, "")
	})

	job.coverPage(itinerary)

	doc.AddPage()
	job.pageHeading("INTRODUCTION")
	job.bodyText(cleanText(itinerary.Introduction), 0)

	for i, day := range itinerary.Days {
		doc.AddPage()
		job.pageHeading(fmt.Sprintf("DAY %d", i+1))
		job.dayContent(day)
	}

	infoPages := []struct {
		title, content string
	}{
		{"ESSENTIAL TRAVEL INFORMATION", itinerary.EssentialTravelInfo},
		{"PRACTICAL MATTERS", itinerary.PracticalMatters},
		{"INSIDER KNOWLEDGE", itinerary.InsiderKnowledge},
	}
	for _, page := range infoPages {
		doc.AddPage()
		job.pageHeading(page.title)
		job.infoSections(page.content)
	}

	job.closingPage()

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render itinerary pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// renderJob bundles the document with its codepage translator for the
// duration of a single render.
type renderJob struct {
	doc *fpdf.Fpdf
	tr  func(string) string
}

func (j *renderJob) coverPage(itinerary *domain.Itinerary) {
	doc := j.doc
	doc.AddPage()
	w, h := doc.GetPageSize()

	j.fill(colorTint)
	doc.Rect(0, 0, w, h, "F")

	y := h / 3

	doc.SetFont("Helvetica", "B", titleSize+8)
	j.text(colorPrimary)
	j.centered("Cultural Journey to", y)

	y += 15
	doc.SetFont("Helvetica", "B", titleSize+10)
	j.centered(strings.ToUpper(cleanText(itinerary.Destination)), y)

	y += 15
	j.draw(colorAccent)
	doc.SetLineWidth(0.7)
	doc.Line(pageMargin+30, y, w-pageMargin-30, y)

	y += 20
	doc.SetFont("Helvetica", "I", headingSize)
	j.text(colorSecondary)
	j.centered("Your Personalized Travel Itinerary", y)

	doc.SetFont("Helvetica", "", normalSize)
	j.text(colorText)
	j.centered(time.Now().Format("January 2, 2006"), h-30)
}

func (j *renderJob) dayContent(day domain.DayPlan) {
	doc := j.doc
	if day.Title != "" {
		doc.SetFont("Helvetica", "B", headingSize)
		j.text(colorSecondary)
		doc.MultiCell(0, 7, j.tr(cleanText(day.Title)), "", "L", false)
		doc.Ln(3)
	}

	slots := []struct {
		label, content string
	}{
		{"MORNING", day.Activities.Morning},
		{"LUNCH", day.Activities.Lunch},
		{"AFTERNOON", day.Activities.Afternoon},
		{"EVENING", day.Activities.Evening},
	}

	w, _ := doc.GetPageSize()
	for _, slot := range slots {
		if slot.content == "" {
			continue
		}

		doc.SetFont("Helvetica", "B", subheadingSize)
		j.text(colorAccent)
		doc.CellFormat(0, 6, slot.label, "", 1, "L", false, 0, "")
		doc.Ln(1)

		j.bodyText(cleanText(slot.content), 5)

		doc.Ln(2)
		j.draw(colorLine)
		doc.SetLineWidth(0.2)
		y := doc.GetY()
		doc.Line(pageMargin+10, y, w-pageMargin-10, y)
		doc.Ln(8)
	}
}

// infoSections splits content on uppercase-label headings so each
// subsection gets its own heading row, falling back to plain text when
// the content carries no labels.
func (j *renderJob) infoSections(content string) {
	doc := j.doc
	text := cleanText(content)
	if text == "" {
		return
	}

	locs := sectionLabelRe.FindAllStringSubmatchIndex(text, -1)
	if len(locs) == 0 {
		j.bodyText(text, 0)
		return
	}

	for i, loc := range locs {
		title := strings.TrimSpace(text[loc[2]:loc[3]])
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		body := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(text[loc[0]:end]), title+":"))

		doc.SetFont("Helvetica", "B", headingSize)
		j.text(colorSecondary)
		doc.MultiCell(0, 7, title, "", "L", false)

		j.draw(colorLine)
		doc.SetLineWidth(0.3)
		y := doc.GetY() + 1
		w, _ := doc.GetPageSize()
		doc.Line(pageMargin, y, w-pageMargin-20, y)
		doc.Ln(5)

		j.bodyText(body, 8)
		doc.Ln(4)
	}
}

func (j *renderJob) closingPage() {
	doc := j.doc
	doc.AddPage()
	w, h := doc.GetPageSize()

	j.fill(colorTint)
	doc.Rect(0, 0, w, h, "F")

	y := h / 3

	doc.SetFont("Helvetica", "B", titleSize+4)
	j.text(colorPrimary)
	j.centered("Thank You For Choosing", y)

	y += 15
	doc.SetFont("Helvetica", "B", titleSize+8)
	j.centered("YatraGPT", y)

	y += 15
	j.draw(colorAccent)
	doc.SetLineWidth(0.7)
	doc.Line(pageMargin+30, y, w-pageMargin-30, y)

	y += 25
	doc.SetFont("Helvetica", "", normalSize+1)
	j.text(colorText)
	lines := []string{
		"We hope you enjoy your cultural journey!",
		"",
		"If you need any assistance during your travels, please contact us:",
		"",
		"Email: support@yatragpt.com",
		"Website: www.yatragpt.com",
	}
	for i, line := range lines {
		j.centered(line, y+float64(i)*8)
	}

	doc.SetFont("Helvetica", "I", smallSize)
	j.centered(fmt.Sprintf("© %d YatraGPT. All rights reserved.", time.Now().Year()), h-20)
}

func (j *renderJob) pageHeading(title string) {
	doc := j.doc
	doc.SetFont("Helvetica", "B", titleSize)
	j.text(colorPrimary)
	doc.MultiCell(0, 8, title, "", "L", false)

	j.draw(colorSecondary)
	doc.SetLineWidth(0.5)
	y := doc.GetY() + 2
	w, _ := doc.GetPageSize()
	doc.Line(pageMargin, y, w-pageMargin, y)
	doc.Ln(10)
}

func (j *renderJob) bodyText(text string, indent float64) {
	if text == "" {
		return
	}
	doc := j.doc
	doc.SetFont("Helvetica", "", normalSize)
	j.text(colorText)
	if indent > 0 {
		doc.SetLeftMargin(pageMargin + indent)
		defer doc.SetLeftMargin(pageMargin)
		doc.SetX(pageMargin + indent)
	}
	doc.MultiCell(0, 5.5, j.tr(text), "", "L", false)
	doc.Ln(3)
}

func (j *renderJob) centered(text string, y float64) {
	j.doc.SetXY(pageMargin, y)
	j.doc.CellFormat(0, 8, j.tr(text), "", 0, "C", false, 0, "")
}

func (j *renderJob) text(c rgb) { j.doc.SetTextColor(c.r, c.g, c.b) }
func (j *renderJob) draw(c rgb) { j.doc.SetDrawColor(c.r, c.g, c.b) }
func (j *renderJob) fill(c rgb) { j.doc.SetFillColor(c.r, c.g, c.b) }

// cleanText strips markdown leftovers before placing text on the page.
func cleanText(text string) string {
	if text == "" {
		return ""
	}
	text = boldMarkerRe.ReplaceAllString(text, "")
	text = headingMarkRe.ReplaceAllString(text, "")
	text = dashBulletRe.ReplaceAllString(text, "\n• ")
	text = emptyBulletRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}
