package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/giftwise/backend/config"
	httpDelivery "github.com/giftwise/backend/internal/delivery/http"
	"github.com/giftwise/backend/internal/domain"
	"github.com/giftwise/backend/internal/infrastructure/cache"
	"github.com/giftwise/backend/internal/infrastructure/catalog"
	"github.com/giftwise/backend/internal/infrastructure/store"
	"github.com/giftwise/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting GiftWise Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Cache Type: %s", cfg.Cache.Type)

	ctx := context.Background()

	// Initialize infrastructure dependencies
	db, err := store.Open(ctx, cfg.Store.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to product database: %v", err)
	}
	defer db.Close()
	productStore := store.NewPostgresStore(db)

	var cacheRepo domain.CacheRepository
	if cfg.Cache.Type == "redis" {
		client, err := cache.NewRedisClient(ctx, cfg.Cache.RedisURL)
		if err != nil {
			log.Fatalf("Failed to connect to redis: %v", err)
		}
		defer client.Close()
		cacheRepo = cache.NewRedisCache(client)
	} else {
		cacheRepo = cache.NewMemoryCache()
	}
	log.Printf("Cache TTL: %s", cfg.Cache.TTL)

	// Initialize usecase layer
	recommendService := usecase.NewRecommendService(
		productStore,
		cacheRepo,
		usecase.RecommendConfig{
			ResultCount: cfg.Recommend.ResultCount,
			CacheTTL:    cfg.Cache.TTL,
		},
	)

	// Keep the cached catalog warm
	refresher := catalog.NewRefresher(recommendService, cfg.Recommend.RefreshMinutes)
	if err := refresher.Start(ctx); err != nil {
		log.Fatalf("Failed to start catalog refresher: %v", err)
	}
	defer refresher.Stop()

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(recommendService, productStore)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
