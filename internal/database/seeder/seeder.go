package seeder

import (
	"context"

	"hire-flow/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}
