package router

import (
	"github.com/expensio/expensio/internal/application"
	"github.com/expensio/expensio/internal/container"
	"github.com/expensio/expensio/internal/infrastructure/mongodb"
	"github.com/expensio/expensio/internal/infrastructure/postgres"
	handlers "github.com/expensio/expensio/internal/interface/http"
	"github.com/expensio/expensio/internal/router/modules"
)

// InitModules builds every feature module from the container singletons and
// registers it. Called once during startup.
func InitModules(r *Registry) {
	logger := container.GetLogger()

	users := postgres.NewUserRepository(container.GetPGPool())
	sheets := mongodb.NewSheetRepository(container.GetMongo())

	authSvc := application.NewAuthService(users, container.GetJWT(), logger)
	sheetSvc := application.NewSheetService(sheets, logger)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger)))
	r.Add(modules.NewSheetModule(handlers.NewSheetHandler(sheetSvc, logger), authSvc))
}
