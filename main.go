package main

import (
	"github.com/gin-gonic/gin"

	"github.com/constella-app/api-go/config"
	"github.com/constella-app/api-go/routes"
	"github.com/constella-app/api-go/utils"
)

func main() {
	cfg := config.Load()

	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}
	defer utils.Logger.Sync()

	gin.SetMode(cfg.GinMode)

	// Initialize database
	db := config.InitDB()

	r := gin.New()
	r.Use(gin.Recovery())

	// Initialize routes
	routes.SetupRoutes(r, db)

	utils.Sugar.Infow("starting server", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.Sugar.Fatalw("server exited", "error", err)
	}
}
