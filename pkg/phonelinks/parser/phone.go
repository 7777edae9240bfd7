package parser

import (
	"regexp"
	"strings"
)

// egMobilePattern locates an Egyptian mobile number embedded in arbitrary
// text. It accepts the three encodings seen in real lists: local
// 01XXXXXXXXX, international +201XXXXXXXXX, and international without the
// plus. The leftmost occurrence wins.
var egMobilePattern = regexp.MustCompile(`(?:\+?20)?0?1\d{9}`)

var nonDigit = regexp.MustCompile(`\D`)

// NormalizePhone searches value for an Egyptian mobile number and returns
// it in the digits-only international form "201XXXXXXXXX" (12 digits).
// The second return is false when value holds no valid number. Display
// form is "+" plus the result; the wa.me link uses the result as-is.
func NormalizePhone(value string) (string, bool) {
	match := egMobilePattern.FindString(value)
	if match == "" {
		return "", false
	}
	digits := nonDigit.ReplaceAllString(match, "")

	switch {
	case strings.HasPrefix(digits, "0") && len(digits) == 11:
		// local 01XXXXXXXXX
		digits = "20" + digits[1:]
	case strings.HasPrefix(digits, "20") && len(digits) == 12:
		// already international
	case strings.HasPrefix(digits, "1") && len(digits) == 10:
		// bare subscriber number
		digits = "20" + digits
	default:
		// ambiguous or malformed digit count
		return "", false
	}

	if !strings.HasPrefix(digits, "201") || len(digits) != 12 {
		return "", false
	}
	return digits, true
}
