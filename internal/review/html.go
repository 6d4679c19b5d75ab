package review

import (
	"html"
	"regexp"
	"strings"
)

// Card fields are HTML fragments. We are not a browser: line breaks and
// div boundaries become newlines, every other tag is dropped, entities are
// unescaped. That is enough for prose fields.
var (
	breakRe = regexp.MustCompile(`(?i)<br\s*/?>|</div>\s*<div[^>]*>|</p>`)
	tagRe   = regexp.MustCompile(`<[^>]+>`)
)

// StripTags reduces an HTML fragment to plain text.
func StripTags(s string) string {
	s = breakRe.ReplaceAllString(s, "\n")
	s = tagRe.ReplaceAllString(s, "")
	s = html.UnescapeString(s)
	return strings.ReplaceAll(s, " ", " ")
}
