package sanitizer

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// HTMLStripperer removes markup from user supplied text.
type HTMLStripperer interface {
	StripHTML(s string) string
	StripAndTrim(s string) string
}

type HTMLStripper struct {
	bm *bluemonday.Policy
}

// NewHTMLStripper return a new instance of blue monday policy
func NewHTMLStripper() *HTMLStripper {
	return &HTMLStripper{
		bm: bluemonday.StrictPolicy(),
	}
}

func (hs *HTMLStripper) StripHTML(s string) string {
	return hs.bm.Sanitize(s)
}

// StripAndTrim strips tags, decodes the entities bluemonday escapes and trims
// surrounding whitespace, leaving plain text suitable for storage.
func (hs *HTMLStripper) StripAndTrim(s string) string {
	return strings.TrimSpace(html.UnescapeString(hs.bm.Sanitize(s)))
}

var _ HTMLStripperer = (*HTMLStripper)(nil)
