package claim

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var (
	urlPattern     = regexp.MustCompile(`https?\S+|www\S+`)
	emailPattern   = regexp.MustCompile(`\S+@\S+`)
	specialPattern = regexp.MustCompile(`[^a-zA-Z0-9\s']`)
)

// Clean normalizes claim text for matching: markup, URLs and e-mail
// addresses are dropped, punctuation other than apostrophes becomes a
// space, and the result is lowercased with whitespace collapsed.
func Clean(text string) string {
	text = stripMarkup(text)
	text = urlPattern.ReplaceAllString(text, "")
	text = emailPattern.ReplaceAllString(text, "")
	text = specialPattern.ReplaceAllString(text, " ")
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// stripMarkup keeps only the text tokens of s.
func stripMarkup(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}

	var sb strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return sb.String()
		case html.TextToken:
			sb.Write(z.Text())
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			sb.WriteByte(' ')
		}
	}
}
