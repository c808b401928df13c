package logger

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// MaxPathLength is the maximum length for URL paths in logs
	MaxPathLength = 500
	// MaxFieldLength is the maximum length for general string fields in logs
	MaxFieldLength = 2000
)

// SanitizePath sanitizes a URL path for safe logging: validates UTF-8,
// strips control characters, and truncates to MaxPathLength.
func SanitizePath(path string) string {
	return sanitize(path, MaxPathLength)
}

// SanitizeField sanitizes an arbitrary string field (for example raw time
// text echoed back from a request) before it lands in a log line.
func SanitizeField(value string) string {
	return sanitize(value, MaxFieldLength)
}

func sanitize(s string, maxLen int) string {
	if s == "" {
		return ""
	}

	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, "")
	}

	var builder strings.Builder
	builder.Grow(len(s))
	for _, r := range s {
		if unicode.IsControl(r) && r != ' ' && r != '\t' {
			continue
		}
		builder.WriteRune(r)
	}
	out := builder.String()

	if len(out) > maxLen {
		out = out[:maxLen] + "..."
	}
	return out
}
