package service

import (
	"regexp"
	"unicode"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail hace el mismo chequeo laxo de formato que el front espera.
func ValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// StrongPassword exige mínimo 8 caracteres, una mayúscula, un dígito
// y un símbolo.
func StrongPassword(pw string) bool {
	if len(pw) < 8 {
		return false
	}
	var hasUpper, hasDigit, hasSymbol bool
	for _, r := range pw {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			hasSymbol = true
		}
	}
	return hasUpper && hasDigit && hasSymbol
}
