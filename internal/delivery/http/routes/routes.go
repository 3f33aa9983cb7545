package routes

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"silverwork/internal/database"
	"silverwork/internal/delivery/http/handler"
	"silverwork/internal/pkg/credential"
	"silverwork/internal/pkg/token"
	"silverwork/internal/repository"
	ucapplication "silverwork/internal/usecase/application"
	ucauth "silverwork/internal/usecase/auth"
	uchistory "silverwork/internal/usecase/history"
	ucposting "silverwork/internal/usecase/posting"
	ucprofile "silverwork/internal/usecase/profile"
)

// Register wires repositories, usecases and handlers onto the app.
func Register(app *fiber.App, db database.DB, tokens token.Service, logger *zap.Logger) {
	if app == nil {
		return
	}

	accountRepo := repository.NewPostgresAccountRepository(db)
	postingRepo := repository.NewPostgresPostingRepository(db)
	applicationRepo := repository.NewPostgresApplicationRepository(db)
	historyRepo := repository.NewPostgresHistoryRepository(db)

	hasher := credential.BcryptHasher{}

	authUC := ucauth.NewService(accountRepo, hasher, tokens, logger)
	postingUC := ucposting.NewService(postingRepo, accountRepo, logger)
	applicationUC := ucapplication.NewService(applicationRepo, accountRepo, postingRepo, logger)
	historyUC := uchistory.NewService(historyRepo, logger)
	profileUC := ucprofile.NewService(accountRepo, logger)

	handler.NewHealthHandler().RegisterRoutes(app)

	api := app.Group("/api")
	handler.NewAuthHandler(authUC).RegisterRoutes(api)
	handler.NewJobsHandler(postingUC).RegisterRoutes(api)
	handler.NewApplicationsHandler(applicationUC).RegisterRoutes(api)
	handler.NewHistoriesHandler(historyUC).RegisterRoutes(api)
	handler.NewSeniorsHandler(profileUC).RegisterRoutes(api)
}
