package auth

import "errors"

// Login failures are reported distinctly to match the observable behavior
// of the original system. The not-found/wrong-password split is a known
// user-enumeration weakness; do not unify without a requirements decision.
var (
	ErrEmailNotFound     = errors.New("email not found")
	ErrIncorrectPassword = errors.New("incorrect password")
)

// ValidationError names the first field that failed input validation.
// It deliberately carries no more detail than the field name.
type ValidationError struct {
	Field   string // "Name", "Email" or "Password"
	Missing bool   // empty after trimming, as opposed to a structural violation
}

func (e *ValidationError) Error() string {
	if e.Missing {
		return "auth: required field missing: " + e.Field
	}
	return "auth: invalid field: " + e.Field
}

// StoreError wraps a failure of the backing credential store. It is scoped
// to the request that triggered it and is never retried.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return "auth: " + e.Op + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
