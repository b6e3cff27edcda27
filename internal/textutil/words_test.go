package textutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordCount(t *testing.T) {
	tests := []struct {
		name string
		html string
		want int
	}{
		{name: "empty", html: "", want: 0},
		{name: "plain text", html: "one two  three", want: 3},
		{name: "adjacent blocks", html: "<p>one</p><p>two</p>", want: 2},
		{name: "headings and lists", html: "<h2>Title here</h2><ul><li>a</li><li>b</li></ul>", want: 4},
		{name: "inline markup", html: "<p>keep <strong>bold</strong> words</p>", want: 3},
		{name: "arabic", html: "<p>ابدأ يومك بالامتنان</p>", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WordCount(tt.html))
		})
	}
}

func TestReadingMinutes(t *testing.T) {
	words := func(n int) string {
		return "<p>" + strings.Repeat("word ", n) + "</p>"
	}

	assert.Equal(t, DefaultReadingMinutes, ReadingMinutes(""))
	assert.Equal(t, DefaultReadingMinutes, ReadingMinutes("   "))
	assert.Equal(t, 1, ReadingMinutes(words(1)))
	assert.Equal(t, 1, ReadingMinutes(words(200)))
	assert.Equal(t, 2, ReadingMinutes(words(201)))
	assert.Equal(t, 4, ReadingMinutes(words(620)))
	assert.Equal(t, 1, ReadingMinutes("<p></p>"))
}

func TestSanitizeHTML(t *testing.T) {
	in := `<h2>Heading</h2><p onclick="x()">Text<script>alert(1)</script></p><blockquote>Quote</blockquote>`
	out := SanitizeHTML(in)

	assert.Contains(t, out, "<h2>Heading</h2>")
	assert.Contains(t, out, "<blockquote>Quote</blockquote>")
	assert.NotContains(t, out, "script")
	assert.NotContains(t, out, "onclick")
}
