package main

import (
	"context"
	"log"

	"github.com/strata-labs/strata-backend/config"
	"github.com/strata-labs/strata-backend/internal/bootstrap"
)

const serviceName = "strata-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	store, closeStore, err := bootstrap.OpenStore(context.Background(), cfg.Store)
	if err != nil {
		log.Fatalf("open store (%s): %v", cfg.Store.Backend, err)
	}
	defer closeStore()

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: serviceName,
		Version:     cfg.App.Version,
		Store:       store,
	})

	log.Printf("listening on :%s (store=%s)", cfg.Server.Port, cfg.Store.Backend)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal(err)
	}
}
