package yasb

import (
	"regexp"
	"strings"
)

var linkPattern = regexp.MustCompile(`https?://xwing-legacy\.com/(preview)?/?\?f=\S+`)

// FindLink returns the first squad builder link in text, upgraded to https.
// Only the first scheme occurrence is rewritten so a nested http:// inside
// the query string is left alone.
func FindLink(text string) (string, bool) {
	link := linkPattern.FindString(text)
	if link == "" {
		return "", false
	}
	return strings.Replace(link, "http://", "https://", 1), true
}
