// Package identity canonicalizes guest names and phone numbers into the
// key used to deduplicate RSVP responses. Two submissions map to the same
// guest when their normalized name and phone match.
package identity

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes characters and drops combining marks, so that
// "João" and "Joao" compare equal.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize canonicalizes a display name: diacritics removed, trimmed,
// lowercased, internal whitespace runs collapsed to a single space.
// An empty or all-whitespace input normalizes to "".
func Normalize(raw string) string {
	s, _, err := transform.String(stripMarks, raw)
	if err != nil {
		// The chain above cannot fail on valid UTF-8; fall back to the
		// raw input rather than losing the submission.
		s = raw
	}
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeDigits strips every non-digit character from a phone number.
// "(11) 99999-0000" and "11999990000" normalize to the same string.
func NormalizeDigits(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
