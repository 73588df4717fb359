// Package validation contains the pure field-level checks and the exchange
// eligibility predicate. Everything here is side-effect free; referential
// and uniqueness checks that need storage live in the service layer.
package validation

import (
	"regexp"
	"strings"
)

// emailRegex intentionally stays loose: one @, at least one dot in the
// domain, no whitespace. "user@.com" does not match because both sides of
// the dot must be non-empty.
var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// IsValidEmail reports whether email is a syntactically plausible address.
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsBlank reports whether s is empty or whitespace-only. A blank value
// counts as missing for required-field checks.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsValidRating reports whether rating is acceptable for a review. Only a
// lower bound is enforced; the upper bound is deliberately open.
func IsValidRating(rating int) bool {
	return rating >= 0
}

// CanExchange is the exchange eligibility predicate: a user cannot propose
// an exchange on a book they own themselves.
func CanExchange(requesterID, bookOwnerID uint) bool {
	return requesterID != bookOwnerID
}

// CoerceBool interprets a query-string value as a boolean filter:
// "true", "1" and "yes" (case-insensitive) mean true, any other supplied
// value means false.
func CoerceBool(value string) bool {
	switch strings.ToLower(value) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}
