package modules

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-api-boilerplate/pkg/response"
)

type HealthModule struct {
	startedAt time.Time
}

func NewHealthModule() *HealthModule {
	return &HealthModule{startedAt: time.Now()}
}

func (m *HealthModule) Register(rg *gin.RouterGroup) {
	rg.GET("/healthz", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{
			"status": "ok",
			"uptime": time.Since(m.startedAt).String(),
		}, "healthy", nil)
	})
}
