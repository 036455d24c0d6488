package catalog

import "strings"

// ParseDecimalString adds the leading zero missing from strings like ".5"
// and "-.5". Any other input is returned as is; no numeric parsing happens.
func ParseDecimalString(decimal string) string {
	if strings.HasPrefix(decimal, ".") || strings.HasPrefix(decimal, "-.") {
		return strings.Replace(decimal, ".", "0.", 1)
	}
	return decimal
}
