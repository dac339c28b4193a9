// Package dateutil provides timestamp format parsing for output filenames.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidStampFormat indicates an invalid timestamp format string.
var ErrInvalidStampFormat = errors.New("invalid timestamp format")

// MaxStampFormatLength limits format string length to prevent abuse.
const MaxStampFormatLength = 50

// DefaultStampFormat produces timestamps like 20260831_142233.
const DefaultStampFormat = "YYYYMMDD_HHmmss"

// stampTokens maps user-friendly tokens to Go time format components.
// Ordered by length descending for greedy matching.
var stampTokens = []struct {
	token string
	goFmt string
}{
	{"YYYY", "2006"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"HH", "15"},
	{"mm", "04"},
	{"ss", "05"},
	{"M", "1"},
	{"D", "2"},
}

// ParseStampFormat converts a user-friendly format string to Go's time format.
// Tokens: YYYY, YY, MM, DD, HH, mm, ss, M, D
// Use brackets to escape literal text: [at] preserves "at" literally.
// Any non-token characters outside brackets are preserved as literals.
// Returns ErrInvalidStampFormat if the format is empty, too long, or has
// unclosed brackets.
func ParseStampFormat(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidStampFormat)
	}
	if len(format) > MaxStampFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidStampFormat, MaxStampFormatLength)
	}

	var result strings.Builder
	result.Grow(len(format) + 10)

	i := 0
	for i < len(format) {
		// Handle bracket-escaped literal text
		if format[i] == '[' {
			end := strings.Index(format[i+1:], "]")
			if end == -1 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidStampFormat, i)
			}
			result.WriteString(format[i+1 : i+1+end])
			i += end + 2
			continue
		}

		matched := false

		// Try to match tokens (longest first due to slice order)
		for _, t := range stampTokens {
			if strings.HasPrefix(format[i:], t.token) {
				result.WriteString(t.goFmt)
				i += len(t.token)
				matched = true
				break
			}
		}

		if !matched {
			// Preserve literal character
			result.WriteByte(format[i])
			i++
		}
	}

	return result.String(), nil
}

// FormatStamp renders t using a user-friendly format string.
// An empty format falls back to DefaultStampFormat.
func FormatStamp(t time.Time, format string) (string, error) {
	if format == "" {
		format = DefaultStampFormat
	}
	goFmt, err := ParseStampFormat(format)
	if err != nil {
		return "", err
	}
	return t.Format(goFmt), nil
}
