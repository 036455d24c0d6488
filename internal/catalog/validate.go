package catalog

import (
	"regexp"
	"strings"
)

// EmailPattern is a stricter address check than ValidateEmail performs.
// ValidateEmail does not use it; switching would reject addresses that are
// accepted today.
var EmailPattern = regexp.MustCompile("(?m)^[A-Za-z0-9_!#$%&'*+/=?`{|}~^.-]+@[A-Za-z0-9.-]+$")

// ValidateEmail reports whether email contains both an "@" and a ".".
func ValidateEmail(email string) bool {
	return strings.Contains(email, "@") && strings.Contains(email, ".")
}

// IsAlphaNumeric reports whether every character of str is an ASCII letter
// or digit. The empty string is alphanumeric.
func IsAlphaNumeric(str string) bool {
	for _, r := range str {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'A' && r <= 'Z':
		case r >= 'a' && r <= 'z':
		default:
			return false
		}
	}
	return true
}
