package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"concert-tickets/internal/config"
	"concert-tickets/internal/database"
	"concert-tickets/internal/handlers"
	"concert-tickets/internal/middleware"
	"concert-tickets/internal/repositories"
	"concert-tickets/internal/services"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize database connection
	db, err := database.NewConnection(database.Config{Path: cfg.Database.Path})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	if err := db.Seed(); err != nil {
		log.Fatal("Failed to seed database:", err)
	}

	// Initialize repositories
	eventRepo := repositories.NewEventRepository(db.DB)
	cartRepo := repositories.NewCartRepository(db.DB)

	// Initialize services
	eventService := services.NewEventService(eventRepo)
	cartService := services.NewCartService(cartRepo, eventRepo)

	// Initialize handlers
	eventHandler := handlers.NewEventHandler(eventService)
	cartHandler := handlers.NewCartHandler(cartService, cfg.Session.CookieMaxAge)
	publicHandler := handlers.NewPublicHandler(cfg.Server.PublicDir)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Session)

	r.Route("/api", func(r chi.Router) {
		r.Get("/events", eventHandler.ListEvents)
		r.Get("/events/{id}", eventHandler.GetEvent)
		r.Get("/cart", cartHandler.GetCart)
		r.Post("/cart", cartHandler.AddItem)
		r.Put("/cart/{id}", cartHandler.UpdateItem)
		r.Delete("/cart/{id}", cartHandler.RemoveItem)
		r.Delete("/cart", cartHandler.ClearCart)
	})

	// Storefront pages and static assets
	r.Get("/", publicHandler.Index)
	r.Get("/event/{id}", publicHandler.EventPage)
	r.Get("/cart", publicHandler.CartPage)
	r.Get("/cart-summary", publicHandler.CartSummaryPage)
	r.NotFound(publicHandler.Static)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Concert Tickets server running at http://%s:%s", cfg.Server.Host, cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server startup failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	fmt.Println()
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
