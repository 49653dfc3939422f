package validators

import "unicode"

// IsStrongPassword requires at least 8 characters with an uppercase letter,
// a digit and a special character.
func IsStrongPassword(password string) bool {
	if len(password) < 8 {
		return false
	}

	var upper, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			special = true
		}
	}

	return upper && digit && special
}
