package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iamasit07/5-in-a-row/backend/internal/config"
	"github.com/iamasit07/5-in-a-row/backend/internal/repository/postgres"
	"github.com/iamasit07/5-in-a-row/backend/internal/repository/redis"
	"github.com/iamasit07/5-in-a-row/backend/internal/service/bot"
	"github.com/iamasit07/5-in-a-row/backend/internal/service/cleanup"
	"github.com/iamasit07/5-in-a-row/backend/internal/service/game"
	"github.com/iamasit07/5-in-a-row/backend/internal/service/suggest"
	transportHttp "github.com/iamasit07/5-in-a-row/backend/internal/transport/http"
	"github.com/iamasit07/5-in-a-row/backend/internal/transport/websocket"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Println("No .env file found")
		}
	}

	cfg := config.LoadConfig()
	ctx := context.Background()

	// 1. Persistence is optional; without a database decisions are not recorded
	opts := game.Options{
		DefaultModel:      cfg.Suggestion.Model,
		SuggestionTimeout: cfg.Suggestion.Timeout,
		CacheTTL:          cfg.Suggestion.CacheTTL,
	}

	var db *sql.DB
	if cfg.DatabaseURL != "" {
		var err error
		db, err = postgres.Open(cfg.DatabaseURL, cfg.DBMaxOpenConns, cfg.DBMaxIdleConns, cfg.DBConnMaxLifetimeMin)
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}
		defer db.Close()

		log.Println("Running database migrations...")
		if err := postgres.RunMigrations(db); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		log.Println("Database migration completed successfully")

		opts.Models = postgres.NewModelRepo(db)
		opts.Decisions = postgres.NewDecisionRepo(db)
	} else {
		log.Println("[DB] DATABASE_URL not set, decisions will not be persisted")
	}

	// 2. Redis caches provider suggestions
	cache, err := redis.Connect(ctx, cfg.RedisURL, cfg.RedisPassword)
	if err != nil {
		log.Printf("[REDIS] Warning: %v. Suggestions will not be cached.", err)
	} else {
		defer cache.Close()
		opts.Cache = cache
	}

	// 3. Suggestion provider
	if cfg.Suggestion.Enabled {
		opts.Suggester = suggest.NewClient(cfg.Suggestion.Endpoint, cfg.Suggestion.APIKey, cfg.Suggestion.HTTPClient(ctx))
		log.Printf("[SUGGEST] Provider enabled at %s", cfg.Suggestion.Endpoint)
	}

	// 4. Services
	engine := bot.NewEngine(bot.Weights{
		AttackWeight: cfg.AttackWeight,
		AcceptRatio:  cfg.SuggestionAcceptRatio,
	})
	gameService := game.NewService(engine, opts)

	// 5. Background workers
	var cleanupWorker *cleanup.Worker
	if db != nil {
		cleanupWorker = cleanup.NewWorker(postgres.NewDecisionRepo(db), cfg.DecisionRetentionDays)
		cleanupWorker.Start()
	}

	// 6. Transport
	connManager := websocket.NewConnectionManager()
	wsHandler := websocket.NewHandler(connManager, gameService, cfg.JWTSecret, cfg.AllowedOrigins)

	router := transportHttp.NewRouter(transportHttp.RouterDeps{
		MoveHandler:    transportHttp.NewMoveHandler(gameService),
		WebSocket:      wsHandler.HandleWebSocket,
		AllowedOrigins: cfg.AllowedOrigins,
		JWTSecret:      cfg.JWTSecret,
		RedisEnabled:   func() bool { return cache != nil },
		Connections:    connManager,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Server is shutting down...")

	if cleanupWorker != nil {
		cleanupWorker.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}
