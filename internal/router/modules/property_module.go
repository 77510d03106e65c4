package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/homelyhq/homely-backend/internal/container"
	handlers "github.com/homelyhq/homely-backend/internal/interface/http"
	"github.com/homelyhq/homely-backend/internal/interface/middleware"
)

// PropertyModule wires listing routes.
// Public: GET /api/properties, POST /api/properties, POST /api/properties/like,
// GET /api/properties/search, POST /api/properties/image.
type PropertyModule struct {
	Handler *handlers.PropertyHandler
}

func NewPropertyModule(h *handlers.PropertyHandler) *PropertyModule {
	return &PropertyModule{Handler: h}
}

func (m *PropertyModule) Register(rg *gin.RouterGroup) {
	likeLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIPAndPath())
	uploadLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP())

	rg.GET("/properties", m.Handler.Get)
	rg.POST("/properties", m.Handler.Create)
	rg.POST("/properties/like", likeLimiter, m.Handler.ToggleLike)
	rg.GET("/properties/search", m.Handler.Search)
	rg.POST("/properties/image", uploadLimiter, m.Handler.UploadImage)
}
