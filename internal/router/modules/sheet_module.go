package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/expensio/expensio/internal/application"
	"github.com/expensio/expensio/internal/container"
	handlers "github.com/expensio/expensio/internal/interface/http"
	"github.com/expensio/expensio/internal/interface/middleware"
)

// SheetModule wires the protected sheet endpoints under /api/sheets.
// The compare route is registered before the parameterized routes so that
// "compare" is never captured as a sheet id.
type SheetModule struct {
	Handler *handlers.SheetHandler
	Auth    *application.AuthService
}

func NewSheetModule(h *handlers.SheetHandler, auth *application.AuthService) *SheetModule {
	return &SheetModule{Handler: h, Auth: auth}
}

func (m *SheetModule) Register(rg *gin.RouterGroup) {
	sheets := rg.Group("/sheets")
	sheets.Use(middleware.Auth(m.Auth))
	sheets.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID()))
	{
		sheets.POST("", m.Handler.Create)
		sheets.GET("", m.Handler.List)
		sheets.GET("/compare/:id1/:id2", m.Handler.Compare)
		sheets.GET("/:id", m.Handler.Get)
		sheets.DELETE("/:id", m.Handler.Delete)
		sheets.POST("/:id/expenses", m.Handler.AddExpense)
		sheets.PUT("/:id/expenses/:eid", m.Handler.UpdateExpense)
		sheets.DELETE("/:id/expenses/:eid", m.Handler.RemoveExpense)
		sheets.GET("/:id/stats", m.Handler.Stats)
		sheets.GET("/:id/pdf", m.Handler.PDF)
	}
}
