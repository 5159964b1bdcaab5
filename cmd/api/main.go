package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vilasclinic/frontdesk/internal/cache"
	"github.com/vilasclinic/frontdesk/internal/config"
	dbpkg "github.com/vilasclinic/frontdesk/internal/db"
	"github.com/vilasclinic/frontdesk/internal/handlers"
	"github.com/vilasclinic/frontdesk/internal/middleware"
	"github.com/vilasclinic/frontdesk/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)
	rdb := cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword)

	handlers.EnsureDefaultUser(db, cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
