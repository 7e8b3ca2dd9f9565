package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/jengzang/trip-planner-go/internal/api"
	"github.com/jengzang/trip-planner-go/internal/config"
	"github.com/jengzang/trip-planner-go/internal/database"
)

func main() {
	cfg := config.Load()

	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	if err := database.Migrate(database.GetDB()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	router, flushPlans := api.SetupRouter(cfg)

	// Flush buffered plan writes on SIGINT/SIGTERM before exiting.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		flushPlans()
		database.Close()
		os.Exit(0)
	}()

	log.Printf("Starting trip planner server on %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
