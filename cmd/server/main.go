package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"whatameating/internal/adapter/api"
	"whatameating/internal/adapter/client"
	"whatameating/internal/adapter/store"
	"whatameating/internal/config"
	"whatameating/internal/usecase"

	"github.com/redis/go-redis/v9"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	ctx := context.Background()

	foods, err := store.LoadFoodMapping(cfg.FoodMappingPath)
	if err != nil {
		log.Fatalf("failed to load food mapping: %v", err)
	}
	log.Printf("[MAPPING] Loaded %d food entries from %s", foods.Len(), cfg.FoodMappingPath)

	// Redis stream for the access log
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer rdb.Close()

	classifier, err := client.NewVertexClassifier(ctx, cfg.ProjectID, cfg.Region, cfg.ModelID)
	if err != nil {
		log.Fatalf("failed to init genai client: %v", err)
	}
	log.Printf("Prediction model %s, score threshold %s", classifier.Model(), cfg.ScoreThreshold)

	recognizer := usecase.NewRecognizer(classifier, foods, cfg.ScoreThreshold).
		WithObserver(api.ObservePredict)
	auditLogger := usecase.NewAuditLogger(store.NewRedisAuditStore(rdb, cfg.AuditStream)).
		WithResultHook(api.ObserveAuditWrite)

	app := api.NewApp(cfg)
	handler := api.NewUploadHandler(recognizer, auditLogger, cfg.UploadMaxSize)
	api.SetupRouter(app, handler, cfg)

	go func() {
		log.Println("=====================================================")
		log.Printf("App listening on port %s at %s", cfg.AppName, cfg.Port)
		log.Println("=====================================================")
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down...")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("server shutdown: %v", err)
	}
	if !auditLogger.Close(5 * time.Second) {
		log.Println("[AUDIT] Gave up waiting for in-flight log writes")
	}
}
