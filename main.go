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

	httpLayer "hipoteca-grid/http"
	"hipoteca-grid/repository"
)

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func main() {
	// .env es opcional; las variables de entorno mandan.
	_ = godotenv.Load()

	var repo repository.SimulationRepository
	if getEnv("DATA_BACKEND", "memory") == "sqlite" {
		sqliteRepo, err := repository.NewSQLiteSimulationRepository(getEnv("SQLITE_DB_PATH", "./data/hipoteca.db"))
		if err != nil {
			log.Fatalf("Error opening sqlite repository: %v", err)
		}
		defer sqliteRepo.Close()
		repo = sqliteRepo
	} else {
		repo = repository.NewSimulationRepositoryMemory()
	}

	var cache repository.CacheRepository
	if getEnv("CACHE_BACKEND", "memory") == "redis" {
		cache = repository.NewRedisCache(getEnv("REDIS_ADDR", "localhost:6379"))
	} else {
		cache = repository.NewMockCache()
	}

	simulationHandler := httpLayer.NewSimulationHandler(repo, cache)
	distributionHandler := httpLayer.NewDistributionHandler()
	gridHandler := httpLayer.NewGridSearchHandler(repo)

	rateLimiter := httpLayer.NewRateLimiter(5, time.Minute)
	defer rateLimiter.Stop()

	mux := http.NewServeMux()
	mux.Handle(
		"/hipoteca/simular",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(simulationHandler.Simulate),
		),
	)

	mux.Handle(
		"/hipoteca/distribucion",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(distributionHandler.Analyze),
		),
	)

	mux.Handle(
		"/hipoteca/grid",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(gridHandler.RunGrid),
		),
	)

	port := getEnv("PORT", "8080")
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("🚀 API corriendo en http://localhost:%s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Printf("Error starting server: %v", err)
		return
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
}
