package users

import (
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
)

var (
	// usernamePattern: starts and ends alphanumeric, hyphens allowed
	// inside, 4 to 17 characters total.
	usernamePattern = regexp.MustCompile(`(?i)^[a-z0-9][a-z0-9-]{2,15}[a-z0-9]$`)

	// emailPattern is deliberately permissive: alphanumeric local part
	// with dots, dashes and underscores, at least one domain label and a
	// 2-4 letter TLD.
	emailPattern = regexp.MustCompile(`(?i)^[a-z0-9]+[.\w-]*@[a-z]+([\w-]+\.)+[a-z]{2,4}$`)

	// namePattern: words of 3 to 10 letters, accented Latin letters
	// included, separated by single spaces (Tidy collapses the rest).
	namePattern = regexp.MustCompile(`(?i)^[a-záéíóúñ]{3,10}( [a-záéíóúñ]{3,10})*$`)

	lowercasePattern = regexp.MustCompile(`[a-záéíóúñ]`)
	uppercasePattern = regexp.MustCompile(`[A-ZÁÉÍÓÚÑ]`)
	digitPattern     = regexp.MustCompile(`\d`)

	runsOfSpacePattern = regexp.MustCompile(`\s{2,}`)
)

// Tidy collapses every run of two or more whitespace characters into a
// single space and strips leading and trailing whitespace. Tidy is
// idempotent and runs before every pattern check and before storage.
func Tidy(s string) string {
	return strings.TrimSpace(runsOfSpacePattern.ReplaceAllString(s, " "))
}

// ValidateUsername normalizes and validates the username attribute. It
// returns the value to store, or the validation error.
func ValidateUsername(attr Attribute) (string, *Error) {
	if !attr.Set {
		return "", BadRequest("/data/attributes/username", "Sorry, the username is missing from the body of the request")
	}

	username := Tidy(attr.Value)
	err := validation.Validate(username,
		validation.Required,
		validation.Match(usernamePattern),
	)
	if err != nil {
		return "", BadRequest("/data/attributes/username", "The username contains illegal characters, it has to start and end with a letter or a digit and be 4 to 17 characters long")
	}

	return username, nil
}

// ValidateEmail normalizes and validates the email attribute.
func ValidateEmail(attr Attribute) (string, *Error) {
	if !attr.Set {
		return "", BadRequest("/data/attributes/email", "Sorry, the email is missing from the body of the request")
	}

	email := Tidy(attr.Value)
	err := validation.Validate(email,
		validation.Required,
		validation.Match(emailPattern),
	)
	if err != nil {
		return "", BadRequest("/data/attributes/email", "The email provided is not valid, it has to follow the format someone@somewhere.some")
	}

	return email, nil
}

// ValidateName normalizes and validates the name attribute.
func ValidateName(attr Attribute) (string, *Error) {
	if !attr.Set {
		return "", BadRequest("/data/attributes/name", "Sorry, the name is missing from the body of the request")
	}

	name := Tidy(attr.Value)
	err := validation.Validate(name,
		validation.Required,
		validation.Match(namePattern),
		validation.RuneLength(0, 32),
	)
	if err != nil {
		return "", BadRequest("/data/attributes/name", "The name contains illegal characters, it has to be words of 3 to 10 letters and at most 32 characters in total")
	}

	return name, nil
}

// ValidatePasswords validates the password pair for registration. Absence
// of either field yields a single combined error; otherwise every violated
// rule yields its own error so the client can fix them all at once.
// Passwords are never trimmed.
func ValidatePasswords(password, confirm Attribute) []*Error {
	if !password.Set || !confirm.Set {
		return []*Error{BadRequest("/data/attributes/password", "Sorry, the password fields are missing from the attributes of the user")}
	}

	var errs []*Error

	if err := validation.Validate(password.Value, validation.Required, validation.RuneLength(10, 25)); err != nil {
		errs = append(errs, BadRequest("/data/attributes/password", "Sorry, the password can not be shorter than 10 characters, or longer than 25 characters"))
	}

	if !lowercasePattern.MatchString(password.Value) {
		errs = append(errs, BadRequest("/data/attributes/password", "The password has to contain at least one lowercase letter"))
	}

	if !uppercasePattern.MatchString(password.Value) {
		errs = append(errs, BadRequest("/data/attributes/password", "The password has to contain at least one uppercase letter"))
	}

	if !digitPattern.MatchString(password.Value) {
		errs = append(errs, BadRequest("/data/attributes/password", "The password has to contain at least one digit"))
	}

	if password.Value != confirm.Value {
		errs = append(errs, BadRequest("/data/attributes/password", "The password and its confirmation do not match"))
	}

	return errs
}

// ValidatePassword validates a single password the way authentication needs
// it: present and within policy. No confirmation is involved.
func ValidatePassword(attr Attribute) *Error {
	if !attr.Set {
		return BadRequest("/data/attributes/password", "Sorry, the password field is missing from the body of the request")
	}

	if err := validation.Validate(attr.Value, validation.Required, validation.RuneLength(10, 25)); err != nil {
		return BadRequest("/data/attributes/password", "Sorry, the password can not be shorter than 10 characters, or longer than 25 characters")
	}

	if !lowercasePattern.MatchString(attr.Value) ||
		!uppercasePattern.MatchString(attr.Value) ||
		!digitPattern.MatchString(attr.Value) {
		return BadRequest("/data/attributes/password", "The password has to contain at least one lowercase letter, one uppercase letter and one digit")
	}

	return nil
}
