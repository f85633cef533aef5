package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/pizzaa/pizza-store/internal/config"
	"github.com/pizzaa/pizza-store/internal/handlers"
	"github.com/pizzaa/pizza-store/internal/menu"
	"github.com/pizzaa/pizza-store/internal/middleware"
	"github.com/pizzaa/pizza-store/internal/service"
	"github.com/pizzaa/pizza-store/internal/storage"
	"github.com/pizzaa/pizza-store/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting pizza store api server",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"store_backend", cfg.Store.Backend,
		"strict_writes", cfg.Store.StrictWrites,
		"log_level", cfg.LogLevel,
	)

	// Initialize the menu store
	ctx := context.Background()
	store, err := newStore(ctx, cfg)
	if err != nil {
		log.Error("failed to initialize menu store", "error", err)
		os.Exit(1)
	}
	if closer, ok := store.(io.Closer); ok {
		defer closer.Close()
	}

	// Seed an empty store when a seed file is configured
	if cfg.Store.SeedFile != "" {
		if err := seedStore(ctx, store, cfg.Store.SeedFile, log); err != nil {
			log.Error("failed to seed menu store", "error", err)
			os.Exit(1)
		}
	}

	// Initialize service and handlers
	menuService := service.NewMenuService(store, cfg.Store.StrictWrites)

	rootHandler := handlers.NewRootHandler(log)
	healthHandler := handlers.NewHealthHandler(log)
	pizzaHandler := handlers.NewPizzaHandler(menuService, log)
	orderHandler := handlers.NewOrderHandler(menuService, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Register routes
	r.Get("/", rootHandler.ServeHTTP)
	r.Get("/health", healthHandler.ServeHTTP)
	r.Get("/pizza_names", pizzaHandler.ListNames)
	r.Get("/pizza_details", pizzaHandler.GetDetails)
	r.Post("/order", orderHandler.PlaceOrder)
	r.Put("/add_pizza", pizzaHandler.AddPizza)
	r.Delete("/remove_pizza", pizzaHandler.RemovePizza)
	r.Patch("/update_price", pizzaHandler.UpdatePrice)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Create shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}

// newStore builds the menu store selected by configuration.
func newStore(ctx context.Context, cfg *config.Config) (storage.MenuStore, error) {
	switch cfg.Store.Backend {
	case config.BackendRedis:
		return storage.NewRedisStore(ctx, cfg.Store.RedisAddr, cfg.Store.RedisPassword, cfg.Store.RedisDB)
	default:
		return storage.NewFileStore(cfg.Store.Path)
	}
}

// seedStore loads the seed menu into the store when nothing is persisted yet.
// A store that already holds records is left alone.
func seedStore(ctx context.Context, store storage.MenuStore, seedFile string, log *slog.Logger) error {
	current, err := store.Load(ctx)
	if err != nil {
		return err
	}
	if len(current) > 0 {
		log.Info("menu store already populated, skipping seed", "records", len(current))
		return nil
	}

	seeded, err := menu.LoadSeedFile(seedFile)
	if err != nil {
		return err
	}
	if err := store.Save(ctx, seeded); err != nil {
		return err
	}

	log.Info("menu store seeded", "file", seedFile, "records", len(seeded))
	return nil
}
