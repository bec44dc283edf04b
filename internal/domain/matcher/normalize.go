package matcher

import (
	"strconv"
	"strings"
	"unicode"
)

// NormalizeReference canonicalizes a payment reference for exact
// comparison: whitespace is stripped, the remainder uppercased, and purely
// numeric references are re-rendered without leading zeros so that "007"
// and "7" compare equal. Non-numeric references (RF creditor references,
// prefixed invoice numbers) are standardized identifiers and are kept
// as-is beyond the strip/uppercase step. The function is total and
// idempotent; an empty result means "no reference".
func NormalizeReference(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	ref := b.String()
	if ref == "" || !isDigits(ref) {
		return ref
	}
	value, err := strconv.ParseUint(ref, 10, 64)
	if err != nil {
		return ref
	}
	return strconv.FormatUint(value, 10)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
