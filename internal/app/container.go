package app

import (
	"context"
	"log"
	"os"
	"time"

	"hire-flow/internal/config"
	"hire-flow/internal/database"
	dbpostgres "hire-flow/internal/database/postgres"
	"hire-flow/internal/infrastructure/cache"
	"hire-flow/internal/notify"
	"hire-flow/internal/ws"
)

// Container owns the process-wide dependencies: the connection pool, the
// cache wrapper, the websocket hub and the notification center over it.
type Container struct {
	Config   config.Config
	DB       database.DB
	Cache    *cache.Redis
	Hub      *ws.Hub
	Notifier notify.Center
	Logger   *log.Logger
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)

	hub := ws.NewHub(logger)
	go hub.Run()

	return &Container{
		Config:   cfg,
		DB:       db,
		Cache:    redisCache,
		Hub:      hub,
		Notifier: notify.NewHubCenter(hub, logger),
		Logger:   logger,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
