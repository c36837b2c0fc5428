package auth

import (
	"regexp"
	"strings"
)

const (
	maxNameLen     = 20
	maxEmailLen    = 30
	maxPasswordLen = 20
)

var nameRe = regexp.MustCompile(`^[A-Za-z0-9]{1,20}$`)

// SignupInput is a validated, trimmed signup triple.
type SignupInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput is a validated login pair.
type LoginInput struct {
	Email    string
	Password string
}

// ValidateSignup checks the three untrusted signup fields. Empty fields are
// reported first, in name, email, password order, so the user is told which
// field to fill in. Structural checks follow: name must be 1-20 alphanumeric
// characters, email at most 30 characters, password at most 20. The email is
// never checked for format or deliverability.
func ValidateSignup(name, email, password string) (SignupInput, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)

	switch {
	case name == "":
		return SignupInput{}, &ValidationError{Field: "Name", Missing: true}
	case email == "":
		return SignupInput{}, &ValidationError{Field: "Email", Missing: true}
	case password == "":
		return SignupInput{}, &ValidationError{Field: "Password", Missing: true}
	}

	if !nameRe.MatchString(name) {
		return SignupInput{}, &ValidationError{Field: "Name"}
	}
	if len(email) > maxEmailLen {
		return SignupInput{}, &ValidationError{Field: "Email"}
	}
	if len(password) > maxPasswordLen {
		return SignupInput{}, &ValidationError{Field: "Password"}
	}

	return SignupInput{Name: name, Email: email, Password: password}, nil
}

// ValidateLogin checks the login pair. There is no empty-string pre-check
// branch here: an empty email or password simply fails the required rule.
func ValidateLogin(email, password string) (LoginInput, error) {
	if email == "" || len(email) > maxEmailLen {
		return LoginInput{}, &ValidationError{Field: "Email"}
	}
	if password == "" || len(password) > maxPasswordLen {
		return LoginInput{}, &ValidationError{Field: "Password"}
	}

	return LoginInput{Email: email, Password: password}, nil
}
