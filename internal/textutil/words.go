package textutil

import (
	"math"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	// WordsPerMinute is the reading speed used for reading time estimates.
	WordsPerMinute = 200
	// DefaultReadingMinutes is reported when there is no content to measure.
	DefaultReadingMinutes = 5
)

// WordCount counts whitespace-separated words in the visible text of an HTML fragment.
func WordCount(html string) int {
	return len(strings.Fields(PlainText(html)))
}

// PlainText extracts the text nodes of an HTML fragment. Input that cannot
// be parsed is returned unchanged.
func PlainText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return html
	}
	// Block elements are not separated by whitespace in Text(); pad them so
	// "<p>a</p><p>b</p>" counts as two words.
	doc.Find("p, h1, h2, h3, h4, h5, h6, li, blockquote, br, div, tr, td").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml(" ")
	})
	return doc.Text()
}

// ReadingMinutes estimates reading time for an HTML body: ceil(words/200),
// at least 1, and DefaultReadingMinutes when the body is empty.
func ReadingMinutes(html string) int {
	if strings.TrimSpace(html) == "" {
		return DefaultReadingMinutes
	}
	minutes := int(math.Ceil(float64(WordCount(html)) / WordsPerMinute))
	if minutes < 1 {
		return 1
	}
	return minutes
}
