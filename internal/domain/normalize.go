package domain

import (
	"strings"
)

// TrimOptional trims s and returns nil when nothing is left.
func TrimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

// NormalizeIdentifier prepares a project id or reference code for lookup:
// it trims surrounding whitespace and compresses inner runs of spaces.
func NormalizeIdentifier(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

func trimmed(s string) string {
	return strings.TrimSpace(s)
}
