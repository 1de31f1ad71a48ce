package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/expensio/expensio/internal/container"
	handlers "github.com/expensio/expensio/internal/interface/http"
	"github.com/expensio/expensio/internal/interface/middleware"
)

// AuthModule wires the public auth endpoints:
// POST /api/auth/register, POST /api/auth/login
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	limiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP()) // 10 req/min per IP

	auth := rg.Group("/auth")
	auth.POST("/register", limiter, m.Handler.Register)
	auth.POST("/login", limiter, m.Handler.Login)
}
