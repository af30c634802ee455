package yasb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SogeMoge/xwsbot/internal/clients/yasb"
)

func TestFindLink(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		wantLink string
		wantOK   bool
	}{
		{
			name:     "https link",
			text:     "https://xwing-legacy.com/?f=Rebel%20Alliance&d=v8ZsZ200Z1XWW",
			wantLink: "https://xwing-legacy.com/?f=Rebel%20Alliance&d=v8ZsZ200Z1XWW",
			wantOK:   true,
		},
		{
			name:     "http upgraded to https",
			text:     "check this http://xwing-legacy.com/?f=Galactic%20Empire&d=v8ZsZ200Z",
			wantLink: "https://xwing-legacy.com/?f=Galactic%20Empire&d=v8ZsZ200Z",
			wantOK:   true,
		},
		{
			name:     "only first scheme is rewritten",
			text:     "http://xwing-legacy.com/?f=x&back=http://example.com",
			wantLink: "https://xwing-legacy.com/?f=x&back=http://example.com",
			wantOK:   true,
		},
		{
			name:     "preview path",
			text:     "https://xwing-legacy.com/preview/?f=Scum&d=v8ZhZ20Z",
			wantLink: "https://xwing-legacy.com/preview/?f=Scum&d=v8ZhZ20Z",
			wantOK:   true,
		},
		{
			name:     "stops at whitespace",
			text:     "list: https://xwing-legacy.com/?f=abc more words",
			wantLink: "https://xwing-legacy.com/?f=abc",
			wantOK:   true,
		},
		{
			name:     "first of two links",
			text:     "https://xwing-legacy.com/?f=one https://xwing-legacy.com/?f=two",
			wantLink: "https://xwing-legacy.com/?f=one",
			wantOK:   true,
		},
		{
			name: "other host",
			text: "https://raithos.github.io/?f=Rebel%20Alliance",
		},
		{
			name: "no query",
			text: "https://xwing-legacy.com/",
		},
		{
			name: "empty",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			link, ok := yasb.FindLink(tc.text)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantLink, link)
		})
	}
}
