package app

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ffloras/comp2537-assignment2/internal/admin"
	"github.com/ffloras/comp2537-assignment2/internal/auth"
	"github.com/ffloras/comp2537-assignment2/internal/config"
	"github.com/ffloras/comp2537-assignment2/internal/handler"
	"github.com/ffloras/comp2537-assignment2/internal/session"
	"github.com/ffloras/comp2537-assignment2/internal/store"
	"github.com/ffloras/comp2537-assignment2/internal/view"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	userStore := store.NewUserStore(infra.Pool)
	sessionStore := session.NewRedisStore(infra.Redis.Client)

	authService := auth.NewService(userStore)
	adminService := admin.NewService(userStore)

	cookieOpts := session.CookieOptions{
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}

	h := handler.New(
		authService,
		adminService,
		sessionStore,
		view.NewJSONRenderer(),
		cookieOpts,
	)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())

	h.RegisterRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		if err := infra.Pool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router, func() error {
		infra.Pool.Close()
		return infra.Redis.Close()
	}, nil
}
