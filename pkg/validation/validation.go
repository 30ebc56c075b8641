package validation

import "regexp"

// Patterns are unanchored: a match anywhere in the input is accepted.
var (
	nameRegex     = regexp.MustCompile(`[a-zA-Z] [a-zA-Z]+`)
	emailRegex    = regexp.MustCompile(`^(.+)@(.+)$`)
	carPlateRegex = regexp.MustCompile(`[A-Z]{3}[0-9]{4}`)
)

// ValidateName reports whether name holds a first and last name pair.
func ValidateName(name string) bool {
	return nameRegex.MatchString(name)
}

// ValidateEmail reports whether email has a non-empty local part and domain.
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidateCarPlate reports whether plate contains a legacy AAA9999 plate.
func ValidateCarPlate(plate string) bool {
	return carPlateRegex.MatchString(plate)
}
