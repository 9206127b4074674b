package parse

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/ReyhanHussain/YatraGPT/internal/domain"
)

const minParagraphLen = 20

var (
	itemStartRe = regexp.MustCompile(`(\d+\.|•)\s+`)
	itemBodyRe  = regexp.MustCompile(`(?s)^(?:\*\*)?([^:*\n]+)(?:\*\*)?\s*:?\s+(.+)$`)
	paraLeadRe  = regexp.MustCompile(`^(?:\d+\.\s*)?([^.!?]+)[.!?]`)
)

// ParseRecommendations extracts an ordered list of recommendations from raw
// completion text. The primary strategy scans for a repeating
// numbered/bulleted "title: content" pattern; when that yields nothing, it
// falls back to treating blank-line-separated paragraphs as items. Fails
// only on empty input.
func ParseRecommendations(raw string) ([]domain.Recommendation, error) {
	content := strings.TrimSpace(raw)
	if content == "" {
		return nil, &domain.ParseError{Reason: "no content found in completion response"}
	}

	recs := parseListed(content)
	if len(recs) == 0 {
		recs = parseParagraphs(content)
	}
	return recs, nil
}

// parseListed splits the text at numbered/bulleted item markers and
// extracts a title and content from each segment.
func parseListed(content string) []domain.Recommendation {
	starts := itemStartRe.FindAllStringIndex(content, -1)
	if starts == nil {
		return nil
	}

	now := time.Now()
	var recs []domain.Recommendation
	for k, loc := range starts {
		end := len(content)
		if k+1 < len(starts) {
			end = starts[k+1][0]
		}

		body := strings.TrimSpace(content[loc[1]:end])
		m := itemBodyRe.FindStringSubmatch(body)
		if m == nil {
			continue
		}

		title := strings.TrimSpace(m[1])
		text := strings.TrimSpace(m[2])
		if title == "" || text == "" {
			continue
		}

		recs = append(recs, domain.Recommendation{
			Title:     title,
			Content:   text,
			Type:      domain.RecommendationType,
			Timestamp: now,
		})
	}
	return recs
}

// parseParagraphs is the fallback strategy: each blank-line-separated
// paragraph longer than the minimum becomes one recommendation, titled from
// its first sentence.
func parseParagraphs(content string) []domain.Recommendation {
	now := time.Now()
	var recs []domain.Recommendation

	for i, para := range strings.Split(content, "\n\n") {
		para = strings.TrimSpace(para)
		if len(para) <= minParagraphLen {
			continue
		}

		title := fmt.Sprintf("Recommendation %d", i+1)
		if m := paraLeadRe.FindStringSubmatch(para); m != nil {
			if t := strings.TrimSpace(m[1]); t != "" {
				title = t
			}
		}

		recs = append(recs, domain.Recommendation{
			Title:     title,
			Content:   para,
			Type:      domain.RecommendationType,
			Timestamp: now,
		})
	}
	return recs
}
