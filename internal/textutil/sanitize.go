package textutil

import "github.com/microcosm-cc/bluemonday"

// contentPolicy allows the formatting markup editors use in article bodies.
var contentPolicy = bluemonday.UGCPolicy()

// SanitizeHTML strips scripts, event handlers and other unsafe markup from
// an article body while keeping headings, lists, links and quotes.
func SanitizeHTML(html string) string {
	return contentPolicy.Sanitize(html)
}
