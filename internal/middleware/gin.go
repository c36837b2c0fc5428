package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ffloras/comp2537-assignment2/internal/auth"
	"github.com/ffloras/comp2537-assignment2/internal/logger"
	"github.com/ffloras/comp2537-assignment2/internal/session"
)

const sessionContextKey = "authSession"

// SessionFromContext returns the session attached by GinRequireAuth, or nil.
func SessionFromContext(c *gin.Context) *session.Session {
	v, ok := c.Get(sessionContextKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*session.Session)
	return sess
}

// LoadSession reads the session cookie and fetches the session once for this
// request. Missing cookie or evicted session yields nil without error.
func LoadSession(c *gin.Context, store session.Store) (*session.Session, error) {
	cookie, err := c.Request.Cookie(session.CookieName)
	if err != nil || cookie.Value == "" {
		return nil, nil
	}
	return store.Get(c.Request.Context(), cookie.Value)
}

// GinRequireAuth adapts RequireAuthentication to the router. On success the
// session TTL is extended by one hour (sliding window), the refreshed cookie
// is re-issued, and the session is attached to the request context.
func GinRequireAuth(store session.Store, cookieOpts session.CookieOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := LoadSession(c, store)
		if err != nil {
			logger.Error("session load failed", map[string]any{
				"error": err.Error(),
			})
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		if RequireAuthentication(sess, time.Now()) != Allow {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		newExpiry := time.Now().Add(auth.SessionTTL)
		if err := store.Touch(c.Request.Context(), sess.SessionID, newExpiry); err != nil {
			logger.Error("session touch failed", map[string]any{
				"error": err.Error(),
			})
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		sess.ExpiresAt = newExpiry
		session.SetCookie(c.Writer, sess.SessionID, newExpiry, cookieOpts)

		c.Set(sessionContextKey, sess)
		c.Next()
	}
}

// GinRequireRole adapts RequireRole. A session without the role is handed to
// forbidden, which must still produce a well-formed (if empty) payload.
func GinRequireRole(role string, forbidden gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := SessionFromContext(c)
		if RequireRole(sess, role) != Allow {
			forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
