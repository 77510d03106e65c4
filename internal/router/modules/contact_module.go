package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/homelyhq/homely-backend/internal/container"
	handlers "github.com/homelyhq/homely-backend/internal/interface/http"
	"github.com/homelyhq/homely-backend/internal/interface/middleware"
)

// ContactModule wires the public contact form route.
type ContactModule struct {
	Handler *handlers.ContactHandler
}

func NewContactModule(h *handlers.ContactHandler) *ContactModule {
	return &ContactModule{Handler: h}
}

func (m *ContactModule) Register(rg *gin.RouterGroup) {
	limiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath())
	rg.POST("/contact", limiter, m.Handler.Submit)
}
