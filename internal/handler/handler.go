package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ffloras/comp2537-assignment2/internal/admin"
	"github.com/ffloras/comp2537-assignment2/internal/auth"
	"github.com/ffloras/comp2537-assignment2/internal/logger"
	"github.com/ffloras/comp2537-assignment2/internal/middleware"
	"github.com/ffloras/comp2537-assignment2/internal/model"
	"github.com/ffloras/comp2537-assignment2/internal/session"
	"github.com/ffloras/comp2537-assignment2/internal/view"
)

// Handler wires the auth and admin services to the route surface. It
// produces view outcomes; rendering stays behind the view.Renderer.
type Handler struct {
	auth       *auth.Service
	admin      *admin.Service
	sessions   session.Store
	renderer   view.Renderer
	cookieOpts session.CookieOptions
}

func New(
	authService *auth.Service,
	adminService *admin.Service,
	sessions session.Store,
	renderer view.Renderer,
	cookieOpts session.CookieOptions,
) *Handler {
	return &Handler{
		auth:       authService,
		admin:      adminService,
		sessions:   sessions,
		renderer:   renderer,
		cookieOpts: cookieOpts,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.Home)
	r.GET("/login", h.LoginPage)
	r.POST("/loginSubmit", h.LoginSubmit)
	r.GET("/signup", h.SignupPage)
	r.POST("/signupSubmit", h.SignupSubmit)
	r.GET("/logout", h.Logout)

	members := r.Group("/members")
	members.Use(middleware.GinRequireAuth(h.sessions, h.cookieOpts))
	members.GET("", h.Members)

	adminGroup := r.Group("/admin")
	adminGroup.Use(
		middleware.GinRequireAuth(h.sessions, h.cookieOpts),
		middleware.GinRequireRole(model.RoleAdmin, h.Forbidden),
	)
	adminGroup.GET("", h.Admin)

	r.NoRoute(h.NotFound)
}

func (h *Handler) render(c *gin.Context, status int, name view.Name, data map[string]any) {
	h.renderer.Render(c.Writer, status, view.Result{View: name, Data: data})
}

// Home shows different calls to action depending on whether the visitor is
// authenticated. It does not gate: an anonymous visitor still gets a page.
func (h *Handler) Home(c *gin.Context) {
	sess, err := middleware.LoadSession(c, h.sessions)
	if err != nil {
		logger.Error("session load failed", map[string]any{"error": err.Error()})
		sess = nil // degrade to the anonymous page
	}

	if middleware.RequireAuthentication(sess, timeNow()) == middleware.Allow {
		h.render(c, http.StatusOK, view.Home, map[string]any{
			"heading": "Hello, " + sess.UserName + "!",
			"btn1":    "Go to Member's Area",
			"btn2":    "Logout",
			"urls":    []string{"/members", "/logout"},
		})
		return
	}

	h.render(c, http.StatusOK, view.Home, map[string]any{
		"heading": "",
		"btn1":    "Sign Up",
		"btn2":    "Log in",
		"urls":    []string{"/signup", "/login"},
	})
}

func (h *Handler) LoginPage(c *gin.Context) {
	h.render(c, http.StatusOK, view.Login, nil)
}

func (h *Handler) SignupPage(c *gin.Context) {
	h.render(c, http.StatusOK, view.Signup, nil)
}

// LoginSubmit authenticates the submitted form. Not-found and wrong-password
// are reported distinctly, matching the behavior this app replicates.
func (h *Handler) LoginSubmit(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	ticket, err := h.auth.Login(c.Request.Context(), email, password)
	if err != nil {
		var verr *auth.ValidationError
		switch {
		case errors.As(err, &verr):
			c.Redirect(http.StatusFound, "/login")
		case errors.Is(err, auth.ErrEmailNotFound):
			h.render(c, http.StatusOK, view.LoginError, map[string]any{
				"prompt": "Email not found",
			})
		case errors.Is(err, auth.ErrIncorrectPassword):
			h.render(c, http.StatusOK, view.LoginError, map[string]any{
				"prompt": "Incorrect Password",
			})
		default:
			logger.Error("login failed", map[string]any{"error": err.Error()})
			c.String(http.StatusInternalServerError, "login failed")
		}
		return
	}

	if h.startSession(c, ticket) {
		c.Redirect(http.StatusFound, "/members")
	}
}

// SignupSubmit creates an account and auto-authenticates it. A missing
// field renders the signup error view naming the field; any other
// validation failure redirects back to the form.
func (h *Handler) SignupSubmit(c *gin.Context) {
	name := c.PostForm("name")
	email := c.PostForm("email")
	password := c.PostForm("password")

	ticket, err := h.auth.Signup(c.Request.Context(), name, email, password)
	if err != nil {
		var verr *auth.ValidationError
		switch {
		case errors.As(err, &verr) && verr.Missing:
			h.render(c, http.StatusOK, view.SignupError, map[string]any{
				"prompt": verr.Field,
			})
		case errors.As(err, &verr):
			c.Redirect(http.StatusFound, "/signup")
		default:
			logger.Error("signup failed", map[string]any{"error": err.Error()})
			c.String(http.StatusInternalServerError, "signup failed")
		}
		return
	}

	if h.startSession(c, ticket) {
		c.Redirect(http.StatusFound, "/members")
	}
}

// startSession persists an authenticated session for the ticket and sets
// the cookie. It reports false after writing an error response.
func (h *Handler) startSession(c *gin.Context, t auth.Ticket) bool {
	sessionID, err := session.GenerateID()
	if err != nil {
		logger.Error("session id generation failed", map[string]any{"error": err.Error()})
		c.String(http.StatusInternalServerError, "session error")
		return false
	}

	sess := session.Session{
		SessionID:     sessionID,
		Authenticated: true,
		UserID:        t.UserID,
		UserName:      t.Name,
		UserRole:      t.Role,
		ExpiresAt:     t.ExpiresAt,
	}

	if err := h.sessions.Create(c.Request.Context(), sess); err != nil {
		logger.Error("session create failed", map[string]any{"error": err.Error()})
		c.String(http.StatusInternalServerError, "session error")
		return false
	}

	session.SetCookie(c.Writer, sessionID, t.ExpiresAt, h.cookieOpts)
	return true
}

func (h *Handler) Members(c *gin.Context) {
	sess := middleware.SessionFromContext(c)
	h.render(c, http.StatusOK, view.Members, map[string]any{
		"name": sess.UserName,
	})
}

// Admin optionally applies a role change (?user=<id>&type=<role>) and always
// returns the full user listing.
func (h *Handler) Admin(c *gin.Context) {
	target := c.Query("user")
	role := c.Query("type")

	listing, err := h.admin.SetUserRole(c.Request.Context(), target, role)
	switch {
	case err == nil:
		h.render(c, http.StatusOK, view.Admin, map[string]any{
			"heading": "Users",
			"users":   listing,
		})
	case errors.Is(err, admin.ErrInvalidRole) || errors.Is(err, admin.ErrInvalidTarget):
		// Mutation rejected; the listing is still current and returned.
		h.render(c, http.StatusBadRequest, view.Admin, map[string]any{
			"heading": "Users",
			"users":   listing,
		})
	default:
		logger.Error("admin mutation failed", map[string]any{"error": err.Error()})
		c.String(http.StatusInternalServerError, "admin error")
	}
}

// Forbidden is the role-gate failure outcome: a 403 with a well-formed,
// empty admin payload rather than an error page.
func (h *Handler) Forbidden(c *gin.Context) {
	h.render(c, http.StatusForbidden, view.Forbidden, map[string]any{
		"heading": "403 - Authorization required",
		"users":   []model.UserListing{},
	})
}

// Logout destroys the session if one exists. Logging out without a session
// is a no-op success; only a store failure while destroying is an error.
func (h *Handler) Logout(c *gin.Context) {
	cookie, err := c.Request.Cookie(session.CookieName)
	if err == nil && cookie.Value != "" {
		if err := h.sessions.Delete(c.Request.Context(), cookie.Value); err != nil {
			logger.Error("session destroy failed", map[string]any{"error": err.Error()})
			c.String(http.StatusBadRequest, "Unable to log out")
			return
		}
	}

	session.ClearCookie(c.Writer, h.cookieOpts)
	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) NotFound(c *gin.Context) {
	h.render(c, http.StatusNotFound, view.NotFound, nil)
}
