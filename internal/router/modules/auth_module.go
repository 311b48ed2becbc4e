package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pureherbal/storefront-api/internal/container"
	handlers "github.com/pureherbal/storefront-api/internal/interface/http"
	"github.com/pureherbal/storefront-api/internal/interface/middleware"
)

// AuthModule exposes the public registration/login endpoints.
// Public: POST /api/auth/register, POST /api/auth/login
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	limiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/auth/register", limiter, m.Handler.Register)
	rg.POST("/auth/login", limiter, m.Handler.Login)
}
