package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"

	"hire-flow/internal/config"
	"hire-flow/internal/database/migration"
	dbpostgres "hire-flow/internal/database/postgres"
	"hire-flow/internal/database/seeder"
	"hire-flow/migrations"
)

func main() {
	seed := flag.Bool("seed", false, "load demo data after migrating")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall run timeout")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("close error: %v", err)
		}
	}()

	runner := migration.Runner{FS: migrations.FS}
	if err := runner.Run(ctx, db.SQLDB()); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	log.Printf("migrations applied")

	if *seed {
		r := seeder.Runner{Seeders: seeder.Defaults()}
		if err := r.Run(ctx, db); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
		log.Printf("demo data seeded")
	}
}
