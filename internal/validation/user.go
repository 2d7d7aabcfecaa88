package validation

import "regexp"

var usernameRegex = regexp.MustCompile(`^[A-Za-z0-9_-]{4,15}$`)

// Accepted test card numbers. Real card network integration is out of
// scope, so anything outside this whitelist is rejected.
var acceptedCards = map[string]struct{}{
	"4111111111111111": {},
	"4242424242424242": {},
}

// ValidUsername reports whether username is 4-15 characters of letters,
// digits, underscore or hyphen.
func ValidUsername(username string) bool {
	return usernameRegex.MatchString(username)
}

// ValidCardNumber reports whether number is an accepted test card.
func ValidCardNumber(number string) bool {
	_, ok := acceptedCards[number]
	return ok
}
