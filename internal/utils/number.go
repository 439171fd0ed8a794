package utils

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseLeadingInt parses the integer prefix of s the way spreadsheet users
// expect: surrounding whitespace is ignored, an optional sign is accepted and
// parsing stops at the first non-digit ("62 yrs" -> 62, "12.9" -> 12).
//
// ok is false when s has no leading digits or the value overflows int64.
func ParseLeadingInt(s string) (n int64, ok bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}

	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
