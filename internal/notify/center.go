package notify

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"

	"hire-flow/internal/ws"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notification is one user-facing event. EmployerID scopes the event so
// clients subscribed to the stream can filter their own.
type Notification struct {
	Level      Level     `json:"level"`
	Message    string    `json:"message"`
	EmployerID uuid.UUID `json:"employer_id"`
	JobID      uuid.UUID `json:"job_id,omitempty"`
	Timestamp  string    `json:"timestamp"`
}

// Center delivers user-facing notifications. Delivery is best effort; no
// caller treats a dropped notification as a failure.
type Center interface {
	Notify(ctx context.Context, n Notification)
}

// HubCenter pushes notifications over the websocket hub and mirrors them to
// the log so they remain observable without a connected client.
type HubCenter struct {
	hub    *ws.Hub
	logger *log.Logger
}

func NewHubCenter(hub *ws.Hub, logger *log.Logger) *HubCenter {
	return &HubCenter{hub: hub, logger: logger}
}

func (c *HubCenter) Notify(_ context.Context, n Notification) {
	if c == nil {
		return
	}
	if n.Timestamp == "" {
		n.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	if c.logger != nil {
		c.logger.Printf("notify | level=%s employer=%s job=%s msg=%q", n.Level, n.EmployerID, n.JobID, n.Message)
	}

	if c.hub == nil {
		return
	}
	b, err := json.Marshal(n)
	if err != nil {
		return
	}
	c.hub.Broadcast(b)
}

// LogCenter is the fallback when no hub is wired (tests, the migrate binary).
type LogCenter struct {
	logger *log.Logger
}

func NewLogCenter(logger *log.Logger) *LogCenter {
	if logger == nil {
		logger = log.Default()
	}
	return &LogCenter{logger: logger}
}

func (c *LogCenter) Notify(_ context.Context, n Notification) {
	if c == nil || c.logger == nil {
		return
	}
	c.logger.Printf("notify | level=%s employer=%s job=%s msg=%q", n.Level, n.EmployerID, n.JobID, n.Message)
}
