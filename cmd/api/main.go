package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fitmarket/trainer-booking/internal/cache"
	"github.com/fitmarket/trainer-booking/internal/config"
	"github.com/fitmarket/trainer-booking/internal/db"
	"github.com/fitmarket/trainer-booking/internal/middleware"
	"github.com/fitmarket/trainer-booking/internal/routes"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading environment directly")
	}

	cfg := config.Load()

	database := db.NewDB(cfg)
	rdb := cache.NewRedis(cfg)

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	routes.RegisterRoutes(r, database, rdb, cfg)

	log.Printf("server listening on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
