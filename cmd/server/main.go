package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/yash-rana0101/ecom-backend/internal/api"
	cartcache "github.com/yash-rana0101/ecom-backend/internal/cart/cache"
	cartrepo "github.com/yash-rana0101/ecom-backend/internal/cart/repository"
	cartservice "github.com/yash-rana0101/ecom-backend/internal/cart/service"
	catalogcache "github.com/yash-rana0101/ecom-backend/internal/catalog/cache"
	"github.com/yash-rana0101/ecom-backend/internal/catalog/client"
	catalogrepo "github.com/yash-rana0101/ecom-backend/internal/catalog/repository"
	catalogservice "github.com/yash-rana0101/ecom-backend/internal/catalog/service"
	checkoutrepo "github.com/yash-rana0101/ecom-backend/internal/checkout/repository"
	checkoutservice "github.com/yash-rana0101/ecom-backend/internal/checkout/service"
	"github.com/yash-rana0101/ecom-backend/internal/config"
	"github.com/yash-rana0101/ecom-backend/internal/storage"
)

type indexCreator interface {
	CreateIndexes(ctx context.Context) error
}

func main() {
	cfg := config.Load()
	ctx := context.Background()

	// MongoDB
	mongoDB, err := storage.ConnectMongoDB(ctx, cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	log.Printf("Connected to MongoDB at %s", cfg.MongoURI)

	productRepo := catalogrepo.NewMongoRepository(mongoDB)
	cartRepo := cartrepo.NewMongoRepository(mongoDB)
	orderRepo := checkoutrepo.NewMongoRepository(mongoDB)

	for _, repo := range []interface{}{cartRepo, orderRepo} {
		if ic, ok := repo.(indexCreator); ok {
			if err := ic.CreateIndexes(ctx); err != nil {
				log.Fatalf("Failed to create indexes: %v", err)
			}
		}
	}

	// Redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal("Redis connection failed: ", err)
	}
	log.Printf("Connected to Redis at %s", cfg.RedisAddr)

	// Remote catalog: client, process-wide snapshot cache, resolver
	catalogClient := client.New(cfg.CatalogBaseURL, nil)
	productCache := catalogcache.New(catalogClient, cfg.CatalogCacheTTL)
	catalog := catalogservice.New(productRepo, productCache, catalogClient)

	carts := cartservice.NewCartService(cartRepo, cartcache.NewRedisCache(redisClient), catalog)
	checkout := checkoutservice.New(orderRepo, carts)

	router := api.NewRouter(
		api.NewProductHandler(catalog),
		api.NewCartHandler(carts),
		api.NewCheckoutHandler(checkout),
		cfg.RequestTimeout,
	)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server running on port %s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	if err := mongoDB.Client().Disconnect(ctx); err != nil {
		log.Printf("MongoDB disconnect error: %v", err)
	}
	log.Println("Server stopped")
}
