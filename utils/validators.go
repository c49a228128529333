package utils

import "regexp"

// Entry validation for customer-supplied fields. Each predicate is pure:
// no I/O and no errors, the caller decides how to report a rejection.
var (
	// Two or more space-separated words, each a capital letter followed
	// by lowercase letters. "john doe", "John" and "John123 Doe" all fail.
	nameRe = regexp.MustCompile(`^[A-Z][a-z]+( [A-Z][a-z]+)+$`)

	// Exactly 10 decimal digits, nothing else.
	contactRe = regexp.MustCompile(`^[0-9]{10}$`)

	letterRe = regexp.MustCompile(`[A-Za-z]`)
	digitRe  = regexp.MustCompile(`[0-9]`)

	// The TLD whitelist (com/in/edu/org/net) is deliberate; broader
	// patterns are rejected even when they look plausible.
	emailRe = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+\.(com|in|edu|org|net)$`)
)

func IsValidName(name string) bool {
	return nameRe.MatchString(name)
}

func IsValidContact(contact string) bool {
	return contactRe.MatchString(contact)
}

// IsValidAddress requires at least 10 characters containing both a letter
// and a digit.
func IsValidAddress(address string) bool {
	return len(address) >= 10 && letterRe.MatchString(address) && digitRe.MatchString(address)
}

func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}
