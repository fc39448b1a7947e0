// Command menuloader copies a directory of outlet menu files into the
// Postgres menu store, replacing each outlet's rows wholesale. Run it once
// before starting the API with menu.backend=postgres.
package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/VisheshVarshney/MUJConnect/internal/config"
	"github.com/VisheshVarshney/MUJConnect/internal/logger"
	"github.com/VisheshVarshney/MUJConnect/internal/menu"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}
	if cfg.Database.URL == "" {
		panic(fmt.Errorf("database.url is required"))
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer log.Sync()

	src := menu.NewDirStore(cfg.Menu.Dir, log)
	if err := src.Load(); err != nil {
		log.Fatal("failed to load menu directory", zap.String("dir", cfg.Menu.Dir), zap.Error(err))
	}

	dst, err := menu.NewPostgresStore(cfg.Database.URL)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}

	outlets, err := src.All(ctx)
	if err != nil {
		log.Fatal("failed to read loaded menus", zap.Error(err))
	}

	for key, m := range outlets {
		if err := dst.SaveOutlet(ctx, m); err != nil {
			log.Fatal("failed to save outlet", zap.String("outlet", key), zap.Error(err))
		}
		log.Info("saved outlet", zap.String("outlet", key))
	}

	log.Info("menu load complete", zap.Int("outlets", len(outlets)))
}
