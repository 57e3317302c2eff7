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
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"judgesim/internal/cache"
	"judgesim/internal/catalog"
	"judgesim/internal/config"
	"judgesim/internal/repository"
	"judgesim/internal/service"
	"judgesim/internal/session"
	"judgesim/internal/transport/rest"
	"judgesim/internal/transport/ws"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.Load()
	ctx := context.Background()

	aiConfig := config.DefaultAIConfig()
	log.Printf("AI judge model: %s", aiConfig.Model)
	if aiConfig.IsEnabled() {
		log.Println("AI judge: API key configured")
	} else {
		log.Println("AI judge: API key NOT SET (fallback questions only)")
	}

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize repositories
	userRepo := repository.NewUserRepo(db)
	reportRepo := repository.NewReportRepo(db)

	// Initialize caches
	sessionCache := cache.NewSessionCache(rdb)
	reportCache := cache.NewReportCache(rdb)

	// Initialize services
	bank := catalog.NewBank()
	manager := session.NewManager(bank)
	authSvc := service.NewAuthService(cfg.JWTSecret, userRepo)
	judgeSvc := service.NewJudgeService()
	sessionSvc := service.NewSessionService(manager, sessionCache, reportRepo, reportCache)
	reportSvc := service.NewReportService(reportRepo, reportCache)

	// Create router with container
	container := &rest.Container{
		AuthService:    authSvc,
		SessionService: sessionSvc,
		ReportService:  reportSvc,
		JudgeService:   judgeSvc,
		Bank:           bank,
		WSHub:          wsHub,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		log.Println("Endpoints:")
		log.Println("  POST /v1/auth/signup")
		log.Println("  GET  /v1/awards")
		log.Println("  POST/GET /v1/sessions")
		log.Println("  GET  /v1/readiness/quiz")
		log.Println("  POST /v1/readiness/score")
		log.Println("  GET  /v1/reports")
		log.Println("  POST /v1/ai/chat")
		log.Println("  WS   /v1/ws/sessions/{id}/voice")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
