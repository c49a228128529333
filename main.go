package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"serenity-backend/config"
	"serenity-backend/controllers"
	"serenity-backend/routes"
	"serenity-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	// Persistence is optional: the reservation core is correct purely in
	// memory, so a missing database is only fatal under the require policy.
	var store services.Store
	if err := config.ConnectDatabase(); err != nil {
		if config.PersistencePolicy() == config.PolicyRequire {
			log.Fatalf("database connect failed: %v", err)
		}
		log.Printf("warning: database connect failed, continuing in-memory only: %v", err)
	} else {
		store = services.NewGormStore(config.DB)
		log.Println("database connection established")
	}

	redisClient := config.NewRedisClient()
	if redisClient == nil {
		log.Println("redis not configured; availability cache disabled")
	}
	cache := services.NewAvailabilityCache(redisClient, config.CacheTTL())

	inventory := services.NewRoomInventory()
	ledger := services.NewBookingLedger()
	reservations := services.NewReservationService(inventory, ledger, store, cache)
	if err := reservations.LoadOrSeed(config.RoomCount()); err != nil {
		log.Fatalf("room inventory init failed: %v", err)
	}
	log.Printf("room inventory ready: %d rooms", len(reservations.ListAllRooms()))

	roomController := controllers.NewRoomController(reservations)
	bookingController := controllers.NewBookingController(reservations)
	router := routes.SetupRouter(roomController, bookingController)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:    addr,
		Handler: router,

		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server stopped gracefully")
}
