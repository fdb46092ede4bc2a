// Package phone holds the normalization contract shared with the rest of
// the marketplace: one canonical "+<country><digits>" form for every
// phone number that reaches storage or lookup.
package phone

import "strings"

// Normalize canonicalizes a raw phone number. Separators are dropped, a
// leading "00" becomes "+", bare 10-digit national numbers get the default
// country code. Returns "" for input with no digits at all.
func Normalize(raw, defaultCountry string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	hasPlus := strings.HasPrefix(raw, "+")
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	if d == "" {
		return ""
	}

	if strings.HasPrefix(d, "00") {
		return "+" + d[2:]
	}
	if hasPlus {
		return "+" + d
	}
	if len(d) == 10 {
		return defaultCountry + d
	}
	return "+" + d
}
