package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"judgesim/internal/catalog"
	"judgesim/internal/config"
	"judgesim/internal/readiness"
	"judgesim/internal/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDB)
	catalogRepo := repository.NewCatalogRepo(db)

	bank := catalog.NewBank()
	questions := bank.Questions()
	awards := bank.Awards()

	if err := catalogRepo.SeedQuestions(ctx, questions); err != nil {
		log.Fatalf("Failed to seed questions: %v", err)
	}
	if err := catalogRepo.SeedAwards(ctx, awards); err != nil {
		log.Fatalf("Failed to seed awards: %v", err)
	}
	if err := catalogRepo.SeedReadinessQuiz(ctx, readiness.Quiz()); err != nil {
		log.Fatalf("Failed to seed readiness quiz: %v", err)
	}

	count, err := catalogRepo.CountQuestions(ctx)
	if err != nil {
		log.Fatalf("Failed to count questions: %v", err)
	}

	fmt.Printf("Seeded %d awards and %d questions (%d in collection)\n", len(awards), len(questions), count)
}
