package validator

import (
	"log"
	"unicode"

	"github.com/go-playground/validator/v10"
)

func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'alphaspace': letters and spaces only (names, specialties)
	mustRegister("alphaspace", validateAlphaSpace)

	// 'password-strength': at least one letter, one digit and one special character
	mustRegister("password-strength", validatePasswordStrength)
}

func validateAlphaSpace(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // 'required' handles empty values
	}

	hasLetter := false
	for _, r := range value {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsSpace(r):
		default:
			return false
		}
	}
	return hasLetter
}

func validatePasswordStrength(fl validator.FieldLevel) bool {
	return IsStrongPassword(fl.Field().String())
}

// IsStrongPassword reports whether s has a letter, a digit and a character
// that is neither.
func IsStrongPassword(s string) bool {
	var letter, digit, special bool
	for _, r := range s {
		switch {
		case unicode.IsLetter(r):
			letter = true
		case unicode.IsDigit(r):
			digit = true
		default:
			special = true
		}
	}
	return letter && digit && special
}
