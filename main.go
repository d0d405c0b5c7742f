package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"chopnow/configs"
	"chopnow/middlewares"
	"chopnow/pkg/logger"
	"chopnow/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()
	slogger := logger.New(cfg.LogLevel, cfg.LogFormat)

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate + seed
	configs.SetupDatabase()
	if err := configs.SeedVendor(); err != nil {
		log.Fatalf("seed vendor failed: %v", err)
	}
	if err := configs.SeedLookups(); err != nil {
		log.Fatalf("seed lookups failed: %v", err)
	}
	if err := configs.SeedDemoMenu(); err != nil {
		log.Fatalf("seed demo menu failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	routes.RegisterRoutes(r, db, cfg, slogger)

	addr := fmt.Sprintf(":%s", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	slogger.Info("server running", "addr", addr)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}
