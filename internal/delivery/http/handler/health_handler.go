package handler

import (
	"context"
	"time"

	"hire-flow/internal/database"
	"hire-flow/internal/infrastructure/cache"
	"hire-flow/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	db    database.DB
	redis *cache.Redis
}

func NewHealthHandler(db database.DB, redis *cache.Redis) *HealthHandler {
	return &HealthHandler{db: db, redis: redis}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	dbStatus := "ok"
	if h.db == nil {
		dbStatus = "not configured"
	} else if err := h.db.Ping(ctx); err != nil {
		dbStatus = "unreachable"
	}

	redisStatus := "ok"
	if h.redis == nil || !h.redis.Enabled() {
		redisStatus = "disabled"
	} else if err := h.redis.Ping(ctx); err != nil {
		redisStatus = "unreachable"
	}

	data := map[string]any{
		"database": dbStatus,
		"redis":    redisStatus,
	}

	status := fiber.StatusOK
	if dbStatus == "unreachable" {
		status = fiber.StatusServiceUnavailable
	}
	return response.Success(c, status, response.MessageOK, data)
}
