package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var commentPolicy = bluemonday.StrictPolicy()

// SanitizeComment strips all markup from user-submitted comment text.
func SanitizeComment(text string) string {
	return strings.TrimSpace(commentPolicy.Sanitize(text))
}
