package middleware

import (
	"time"

	"github.com/ffloras/comp2537-assignment2/internal/session"
)

// Outcome is the decision of a gate function. Gates are pure: they inspect
// a session value and return an outcome instead of mutating control flow.
type Outcome int

const (
	Allow Outcome = iota
	Redirect
	Forbidden
)

// RequireAuthentication decides whether a request may proceed. A missing,
// unauthenticated or expired session is all the same anonymous state and
// yields a redirect to the login entry point.
func RequireAuthentication(sess *session.Session, now time.Time) Outcome {
	if sess == nil || !sess.Authenticated || sess.UserName == "" {
		return Redirect
	}
	if !now.Before(sess.ExpiresAt) {
		return Redirect
	}
	return Allow
}

// RequireRole decides whether an authenticated session carries the given
// role. It is only meaningful after RequireAuthentication has allowed the
// request.
func RequireRole(sess *session.Session, role string) Outcome {
	if sess != nil && sess.UserRole == role {
		return Allow
	}
	return Forbidden
}
