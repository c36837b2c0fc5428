package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ffloras/comp2537-assignment2/internal/model"
	"github.com/ffloras/comp2537-assignment2/internal/session"
)

func authedSession(role string, expiresAt time.Time) *session.Session {
	return &session.Session{
		SessionID:     "sid",
		Authenticated: true,
		UserName:      "alice",
		UserRole:      role,
		ExpiresAt:     expiresAt,
	}
}

func TestRequireAuthentication(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name string
		sess *session.Session
		want Outcome
	}{
		{"nil session redirects", nil, Redirect},
		{
			"unauthenticated session redirects",
			&session.Session{SessionID: "sid", ExpiresAt: now.Add(time.Hour)},
			Redirect,
		},
		{
			"expired session redirects",
			authedSession(model.RoleUser, now.Add(-time.Minute)),
			Redirect,
		},
		{
			"expiry exactly now redirects",
			authedSession(model.RoleUser, now),
			Redirect,
		},
		{
			"authenticated session without name redirects",
			&session.Session{SessionID: "sid", Authenticated: true, ExpiresAt: now.Add(time.Hour)},
			Redirect,
		},
		{
			"valid session allows",
			authedSession(model.RoleUser, now.Add(time.Hour)),
			Allow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RequireAuthentication(tt.sess, now))
		})
	}
}

func TestRequireRole(t *testing.T) {
	now := time.Now()

	assert.Equal(t, Allow,
		RequireRole(authedSession(model.RoleAdmin, now.Add(time.Hour)), model.RoleAdmin))
	assert.Equal(t, Forbidden,
		RequireRole(authedSession(model.RoleUser, now.Add(time.Hour)), model.RoleAdmin))
	assert.Equal(t, Forbidden, RequireRole(nil, model.RoleAdmin))
}
