package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/VisheshVarshney/MUJConnect/internal/api"
	"github.com/VisheshVarshney/MUJConnect/internal/config"
	"github.com/VisheshVarshney/MUJConnect/internal/logger"
	"github.com/VisheshVarshney/MUJConnect/internal/menu"
	"github.com/VisheshVarshney/MUJConnect/internal/outlet"
	"github.com/VisheshVarshney/MUJConnect/internal/platform/gemini"
	"github.com/VisheshVarshney/MUJConnect/internal/platform/openai"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer log.Sync()

	var classifier api.Classifier
	switch cfg.LLM.Provider {
	case "openai":
		classifier = openai.NewClient(cfg.LLM.APIURL, cfg.LLM.APIKey, cfg.LLM.Model)
	default:
		classifier, err = gemini.NewClient(ctx, cfg.LLM.APIKey, cfg.LLM.Model)
		if err != nil {
			panic(fmt.Errorf("error creating gemini client: %w", err))
		}
	}

	var menus menu.Store
	switch cfg.Menu.Backend {
	case "postgres":
		store, err := menu.NewPostgresStore(cfg.Database.URL)
		if err != nil {
			panic(fmt.Errorf("error creating postgres menu store: %w", err))
		}
		menus = store
	default:
		store := menu.NewDirStore(cfg.Menu.Dir, log)
		if err := store.Load(); err != nil {
			// Bad or missing files are tolerated; the bot answers from
			// whatever loaded.
			log.Error("menu load did not complete", zap.Error(err))
		}
		menus = store
	}

	handler := api.NewHandler(classifier, menus, outlet.Directory(), cfg.LLM.Timeout, log)

	r := gin.Default()

	// Configure CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.Server.AllowedOrigin},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.POST("/chat", handler.Chat)
	r.GET("/health", handler.Health)
	r.GET("/outlets", handler.Outlets)
	r.GET("/menus/:outlet", handler.Menu)

	log.Info("starting server", zap.String("addr", cfg.Server.Addr))
	if err := r.Run(cfg.Server.Addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
