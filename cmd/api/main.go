package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/barbernet/backend/internal/config"
	dbpkg "github.com/barbernet/backend/internal/db"
	"github.com/barbernet/backend/internal/middleware"
	"github.com/barbernet/backend/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware(cfg))
	r.Use(middleware.MaxBodyBytes(cfg.MaxBodyBytes))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "BarberNet backend is running")
	})

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	routes.RegisterRoutes(r, db)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
