package catalog

import "strings"

// slugStrip is the punctuation removed outright by Slugify.
const slugStrip = "/\\#,+()$~%!@^|`.'\":;*?<>{}[]"

// Slugify converts display text to a slug: lowercased, punctuation from
// slugStrip removed, and every space replaced by a hyphen.
//
// Runs of spaces are not collapsed and nothing is trimmed, so "  " becomes
// "--" and "" stays "".
func Slugify(text string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == ' ':
			return '-'
		case strings.ContainsRune(slugStrip, r):
			return -1
		}
		return r
	}, strings.ToLower(text))
}
