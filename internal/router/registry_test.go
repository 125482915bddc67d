package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-api-boilerplate/internal/router/modules"
)

func TestRegistry_RootModulesSkipAPIPrefix(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	reg := NewRegistry(engine)
	reg.AddRoot(modules.NewHealthModule())
	reg.RegisterAll()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)

	// The health route must not be duplicated under /api.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/healthz", nil)
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRegistry_APIModulesMountUnderPrefix(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	reg := NewRegistry(engine)
	reg.Add(moduleFunc(func(rg *gin.RouterGroup) {
		rg.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	}))
	reg.RegisterAll()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

type moduleFunc func(rg *gin.RouterGroup)

func (f moduleFunc) Register(rg *gin.RouterGroup) { f(rg) }
