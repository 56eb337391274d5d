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

	"supplier-backend/config"
	"supplier-backend/controllers"
	"supplier-backend/routes"
	"supplier-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		log.Fatal("❌ ERROR: ADMIN_PASSWORD environment variable is not set. Refusing to start without an admin secret.")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database connection established and migrations applied.")

	// Process-lifetime auth state: a restart logs out every admin and
	// forgets every rate-limit record. That is intentional.
	sessions := services.NewSessionRegistry()
	limiter := services.NewRateLimiter()

	// Initialize services
	supplierService := services.NewSupplierService(db)
	historyService := services.NewHistoryService(db)
	announcementService := services.NewAnnouncementService(db)

	// Initialize controllers
	authController := controllers.NewAuthController(adminPassword, sessions, limiter)
	supplierController := controllers.NewSupplierController(supplierService)
	historyController := controllers.NewHistoryController(historyService)
	announcementController := controllers.NewAnnouncementController(announcementService)

	// Build router
	router := routes.SetupRouter(authController, supplierController, historyController, announcementController, sessions)

	// Port from env (prefer), fallback to 8080
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
