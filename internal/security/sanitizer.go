// Package security holds input hardening helpers.
package security

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer cleans user supplied free text before it is stored.
type Sanitizer interface {
	Sanitize(text string) string
}

// TextSanitizer strips all markup using bluemonday's strict policy.
// Remaining special characters are HTML-escaped.
type TextSanitizer struct {
	policy *bluemonday.Policy
}

// NewTextSanitizer creates a TextSanitizer. Safe for concurrent use.
func NewTextSanitizer() *TextSanitizer {
	return &TextSanitizer{policy: bluemonday.StrictPolicy()}
}

// Sanitize returns text without tags, trimmed of surrounding whitespace.
func (s *TextSanitizer) Sanitize(text string) string {
	return strings.TrimSpace(s.policy.Sanitize(text))
}
