package main

import (
	"log"

	"github.com/RoadToFit/roadtofit-be/config"
	"github.com/RoadToFit/roadtofit-be/routes"
)

func main() {
	cfg := config.Load()
	db := config.InitDB(cfg)

	r := routes.SetupRouter(db, cfg)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
