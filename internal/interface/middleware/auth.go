package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-api-boilerplate/internal/infrastructure/auth"
	"github.com/oksasatya/go-api-boilerplate/pkg/apperr"
	"github.com/oksasatya/go-api-boilerplate/pkg/response"
)

const (
	CtxUserIDKey    = "userID"
	CtxUserEmailKey = "userEmail"
	CtxUserRoleKey  = "userRole"
)

// Auth extracts and validates the bearer token from the Authorization
// header and injects the authenticated identity into the Gin context.
// Malformed or missing headers fail here, before any use case runs.
func Auth(jwtSvc *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abort(c, apperr.Auth("authentication token not provided"))
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abort(c, apperr.Auth("invalid token format, use: Bearer <token>"))
			return
		}

		res := jwtSvc.Validate(parts[1])
		if !res.Valid() {
			switch res.Status {
			case auth.TokenExpired:
				abort(c, apperr.Auth("token has expired"))
			default:
				abort(c, apperr.Auth("invalid token"))
			}
			return
		}

		c.Set(CtxUserIDKey, res.Payload.UserID)
		c.Set(CtxUserEmailKey, res.Payload.Email)
		c.Set(CtxUserRoleKey, string(res.Payload.Role))
		c.Next()
	}
}

func abort(c *gin.Context, e *apperr.Error) {
	response.AppError(c, e)
	c.Abort()
}
