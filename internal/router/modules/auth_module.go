package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/go-api-boilerplate/internal/infrastructure/auth"
	handlers "github.com/oksasatya/go-api-boilerplate/internal/interface/http"
	"github.com/oksasatya/go-api-boilerplate/internal/interface/middleware"
)

// AuthModule wires the authentication handlers into routes
// Public: POST /api/auth/register, POST /api/auth/login
// Protected: GET /api/auth/me

type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *auth.JWTService
	Redis   *redis.Client
}

func NewAuthModule(h *handlers.AuthHandler, jwtSvc *auth.JWTService, rdb *redis.Client) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwtSvc, Redis: rdb}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Public endpoints with IP-based rate limits
	registerLimiter := middleware.RateLimit(m.Redis, 5, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(m.Redis, 10, time.Minute, middleware.KeyByIP(), nil)

	rg.POST("/auth/register", registerLimiter, m.Handler.Register)
	rg.POST("/auth/login", loginLimiter, m.Handler.Login)

	// Protected
	authd := rg.Group("/")
	authd.Use(middleware.Auth(m.JWT))
	authd.Use(middleware.RateLimit(m.Redis, 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		authd.GET("/auth/me", m.Handler.Me)
	}
}
