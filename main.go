package main

import (
	"context"
	"log"

	"github.com/gamereviewhub/game-review-service/config"
	"github.com/gamereviewhub/game-review-service/http/controller"
	routes "github.com/gamereviewhub/game-review-service/http/route"
	infraPkg "github.com/gamereviewhub/game-review-service/infra"
	"github.com/gamereviewhub/game-review-service/repository"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, continuing with environment variables")
	}

	cfg := config.NewConfig()
	infra := infraPkg.InitInfra(cfg)
	defer infra.Telemetry.Shutdown(context.Background())
	defer func() {
		if err := infra.Logger.Shutdown(context.Background()); err != nil {
			log.Printf("Logger shutdown: %v", err)
		}
	}()

	repo := repository.InitRepository(infra)
	ctrl := controller.NewController(cfg, infra, repo)
	router := routes.SetupRouter(ctrl)

	addr := ":" + cfg.EnvConfig.Server.Port
	log.Printf("HTTP server started on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
