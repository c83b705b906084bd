package routes

import (
	"log"

	"hire-flow/internal/config"
	"hire-flow/internal/database"
	"hire-flow/internal/delivery/http/handler"
	"hire-flow/internal/delivery/http/middleware"
	"hire-flow/internal/infrastructure/cache"
	"hire-flow/internal/notify"
	"hire-flow/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Deps is everything route registration needs. The container builds these
// once; route wiring only assembles them.
type Deps struct {
	Config   config.Config
	DB       database.DB
	Cache    *cache.Redis
	Notifier notify.Center
	Hub      *ws.Hub
	Logger   *log.Logger
}

type Registry struct {
	deps Deps
}

func NewRegistry(deps Deps) *Registry {
	return &Registry{deps: deps}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerWS(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	handler.NewHealthHandler(r.deps.DB, r.deps.Cache).RegisterRoutes(app)
}

func (r *Registry) registerWS(app *fiber.App) {
	if r.deps.Hub == nil {
		return
	}
	wsHandler := ws.NewHandler(r.deps.Hub, r.deps.Logger)
	app.Get("/ws", wsHandler.HandleNotificationsWS)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.deps)

	api.Use(func(c fiber.Ctx) error {
		return middleware.NewAppError(fiber.StatusNotFound, "Not found", nil, nil)
	})
}
