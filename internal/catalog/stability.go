package catalog

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Canonical stability labels.
const (
	StabilityVeryOverstable  = "Very Overstable"
	StabilityOverstable      = "Overstable"
	StabilityStable          = "Stable"
	StabilityUnderstable     = "Understable"
	StabilityVeryUnderstable = "Very Understable"
)

// stabilityMap maps class tokens found on a disc's structural container in
// source HTML to canonical labels.
var stabilityMap = map[string]string{
	"very-overstable":  StabilityVeryOverstable,
	"overstable":       StabilityOverstable,
	"stable":           StabilityStable,
	"understable":      StabilityUnderstable,
	"very-understable": StabilityVeryUnderstable,
}

// StabilityLabel returns the canonical label for an HTML class token.
func StabilityLabel(token string) (string, bool) {
	label, ok := stabilityMap[token]
	return label, ok
}

// ParseStability derives a disc's stability label.
//
// classes is the class list of the disc's containing structural group, as
// returned by markup.ClassHint; it may be nil. The list is scanned from the
// end so the last matching class wins. When no class matches, the label is
// computed from turn+fade:
//
//	diff >= 4        Very Overstable
//	2 <= diff < 4    Overstable
//	-2 < diff < 2    Stable
//	-4 < diff <= -2  Understable
//	diff <= -4       Very Understable
//
// Postcondition: ok is false only when turn or fade has no numeric prefix.
func ParseStability(classes []string, turn, fade string) (label string, ok bool) {
	for i := len(classes) - 1; i >= 0; i-- {
		if label, ok := StabilityLabel(classes[i]); ok {
			return label, true
		}
	}

	diff := parseLeadingFloat(turn) + parseLeadingFloat(fade)
	switch {
	case diff >= 4:
		return StabilityVeryOverstable, true
	case diff >= 2 && diff < 4:
		return StabilityOverstable, true
	case diff < 2 && diff > -2:
		return StabilityStable, true
	case diff <= -2 && diff > -4:
		return StabilityUnderstable, true
	case diff <= -4:
		return StabilityVeryUnderstable, true
	default:
		return "", false
	}
}

var leadingFloat = regexp.MustCompile(`^[+-]?(?:Infinity|(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)`)

// parseLeadingFloat parses the longest numeric prefix of s after leading
// whitespace. Strings without one yield NaN; "1.5 mph" yields 1.5.
func parseLeadingFloat(s string) float64 {
	prefix := leadingFloat.FindString(strings.TrimLeftFunc(s, unicode.IsSpace))
	if prefix == "" {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(prefix, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return f
}
