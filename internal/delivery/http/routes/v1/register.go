package v1

import (
	"log"

	"hire-flow/internal/config"
	"hire-flow/internal/database"
	"hire-flow/internal/delivery/http/handler"
	"hire-flow/internal/delivery/http/middleware"
	"hire-flow/internal/domain/user"
	"hire-flow/internal/infrastructure/cache"
	"hire-flow/internal/infrastructure/selection"
	"hire-flow/internal/notify"
	"hire-flow/internal/pkg/jwt"
	"hire-flow/internal/repository"
	"hire-flow/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type Deps struct {
	Config   config.Config
	DB       database.DB
	Cache    *cache.Redis
	Notifier notify.Center
	Logger   *log.Logger
}

// Register wires the v1 surface: repositories over the shared pool, usecases
// over the repositories, handlers over the usecases.
func Register(r fiber.Router, deps Deps) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		deps.Config.JWT.AccessSecret,
		deps.Config.JWT.RefreshSecret,
		deps.Config.JWT.AccessExpiresIn,
		deps.Config.JWT.RefreshExpiresIn,
	)

	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo := repository.NewPostgresUserRepository(deps.DB)
	appRepo := repository.NewPostgresApplicationRepository(deps.DB)
	jobRepo := repository.NewPostgresJobRepository(deps.DB)
	inviteRepo := repository.NewPostgresInviteRepository(deps.DB)

	selectionStore := selection.NewStore(deps.Cache)

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	listUC := usecase.NewApplicantListUsecase(appRepo, jobRepo, selectionStore, deps.Cache, deps.Logger)
	selectionUC := usecase.NewSelectionUsecase(appRepo, jobRepo, selectionStore, deps.Logger)
	bulkUC := usecase.NewBulkActionUsecase(appRepo, jobRepo, inviteRepo, selectionStore, deps.Cache, deps.Notifier, deps.Logger)
	statusUC := usecase.NewApplicationStatusUsecase(appRepo, jobRepo, deps.Cache, deps.Logger)

	authGroup := r.Group("/auth")
	handler.NewAuthHandler(authUC).RegisterRoutes(authGroup)

	employer := r.Group("", authMw.Middleware(), authMw.RequireRole(user.RoleEmployer, user.RoleAdmin))

	jobsGroup := employer.Group("/jobs")
	handler.NewApplicantHandler(listUC).RegisterRoutes(jobsGroup)
	handler.NewSelectionHandler(selectionUC).RegisterRoutes(jobsGroup)
	handler.NewBulkActionHandler(bulkUC).RegisterRoutes(jobsGroup)

	applicationsGroup := employer.Group("/applications")
	handler.NewApplicationStatusHandler(statusUC).RegisterRoutes(applicationsGroup)
}
