package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-api-boilerplate/internal/domain/entity"
	"github.com/oksasatya/go-api-boilerplate/internal/infrastructure/auth"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newAuthEngine(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtSvc, err := auth.NewJWTService(testSecret, "test-issuer", time.Hour)
	require.NoError(t, err)

	r := gin.New()
	r.GET("/protected", Auth(jwtSvc), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userId": c.GetString(CtxUserIDKey),
			"email":  c.GetString(CtxUserEmailKey),
			"role":   c.GetString(CtxUserRoleKey),
		})
	})
	return r, jwtSvc
}

func doProtected(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	r.ServeHTTP(w, req)
	return w
}

func envelopeMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "UnauthorizedError", body.Error.Code)
	return body.Message
}

func TestAuth_MissingHeader(t *testing.T) {
	r, _ := newAuthEngine(t)

	w := doProtected(r, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "authentication token not provided", envelopeMessage(t, w))
}

func TestAuth_MalformedHeader(t *testing.T) {
	r, jwtSvc := newAuthEngine(t)

	token, err := jwtSvc.Generate(auth.TokenPayload{UserID: "u1", Email: "a@b.c", Role: entity.RoleUser}, nil)
	require.NoError(t, err)

	headers := []string{
		"Basic dXNlcjpwYXNz", // wrong scheme
		token,                // bare token without scheme
		"Bearer",             // scheme without token
	}
	for _, h := range headers {
		w := doProtected(r, h)
		require.Equal(t, http.StatusUnauthorized, w.Code, h)
		assert.Equal(t, "invalid token format, use: Bearer <token>", envelopeMessage(t, w), h)
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	r, jwtSvc := newAuthEngine(t)

	token, err := jwtSvc.Generate(
		auth.TokenPayload{UserID: "u1", Email: "a@b.c", Role: entity.RoleUser},
		&auth.GenerateOptions{ExpiresIn: -time.Minute},
	)
	require.NoError(t, err)

	w := doProtected(r, "Bearer "+token)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "token has expired", envelopeMessage(t, w))
}

func TestAuth_InvalidToken(t *testing.T) {
	r, _ := newAuthEngine(t)

	w := doProtected(r, "Bearer not.a.token")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid token", envelopeMessage(t, w))
}

func TestAuth_ValidTokenInjectsIdentity(t *testing.T) {
	r, jwtSvc := newAuthEngine(t)

	token, err := jwtSvc.Generate(auth.TokenPayload{UserID: "u1", Email: "john@example.com", Role: entity.RoleAdmin}, nil)
	require.NoError(t, err)

	// Scheme matching is case-insensitive.
	for _, scheme := range []string{"Bearer", "bearer"} {
		w := doProtected(r, scheme+" "+token)
		require.Equal(t, http.StatusOK, w.Code, scheme)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "u1", body["userId"])
		assert.Equal(t, "john@example.com", body["email"])
		assert.Equal(t, "ADMIN", body["role"])
	}
}

func TestAuth_AbortsBeforeHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwtSvc, err := auth.NewJWTService(testSecret, "test-issuer", time.Hour)
	require.NoError(t, err)

	reached := false
	r := gin.New()
	r.GET("/protected", Auth(jwtSvc), func(c *gin.Context) {
		reached = true
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+strings.Repeat("x", 20))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, reached, "rejected requests must not reach the handler")
}
