package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pureherbal/storefront-api/internal/container"
	handlers "github.com/pureherbal/storefront-api/internal/interface/http"
	"github.com/pureherbal/storefront-api/internal/interface/middleware"
	"github.com/pureherbal/storefront-api/pkg/helpers"
)

// ProfileModule wires the bearer-protected profile and address-book routes.
// Protected: GET|PUT /api/profile/profile, PUT /api/profile/profile/password,
// POST /api/profile/profile/avatar, GET|POST /api/profile/addresses,
// PUT|DELETE /api/profile/addresses/:id
type ProfileModule struct {
	Profile *handlers.ProfileHandler
	Address *handlers.AddressHandler
	JWT     *helpers.JWTManager
}

func NewProfileModule(p *handlers.ProfileHandler, a *handlers.AddressHandler, jwt *helpers.JWTManager) *ProfileModule {
	return &ProfileModule{Profile: p, Address: a, JWT: jwt}
}

func (m *ProfileModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/profile")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(
		middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), nil),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil),
	)
	{
		auth.GET("/profile", m.Profile.Get)
		auth.PUT("/profile", m.Profile.Update)
		auth.PUT("/profile/password", m.Profile.ChangePassword)
		auth.POST("/profile/avatar", m.Profile.UploadAvatar)

		auth.GET("/addresses", m.Address.List)
		auth.POST("/addresses", m.Address.Add)
		auth.PUT("/addresses/:id", m.Address.Update)
		auth.DELETE("/addresses/:id", m.Address.Delete)
	}
}
