package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"waste-collection-service/internal/adapters/cache"
	"waste-collection-service/internal/adapters/notify"
	"waste-collection-service/internal/adapters/repositories"
	"waste-collection-service/internal/api"
	"waste-collection-service/internal/config"
	"waste-collection-service/internal/platform/db"
	"waste-collection-service/internal/ports"
	"waste-collection-service/internal/routing"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, Redis) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	port := config.Get("PORT", "8080")
	threshold := config.GetInt("FILL_LEVEL_THRESHOLD", 70)

	estimator := routing.EstimatorConfig{
		AverageSpeedKmh:    config.GetFloat("AVERAGE_SPEED_KMH", routing.DefaultAverageSpeedKmh),
		ServiceTimeMinutes: config.GetFloat("SERVICE_TIME_MINUTES", routing.DefaultServiceTimeMinutes),
	}

	sqlDB, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer sqlDB.Close()

	// Route cache is optional: without REDIS_ADDR the latest-route endpoint
	// just reports no cached routes.
	var routeCache ports.RouteCache
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})
		ttl := time.Duration(config.GetInt("ROUTE_CACHE_TTL_MINUTES", 240)) * time.Minute
		routeCache = cache.NewRedisRouteCache(client, ttl)
	}

	deps := api.RouterDeps{
		Bins:      repositories.NewPostgresBinRepository(sqlDB),
		Requests:  repositories.NewPostgresRequestRepository(sqlDB),
		Store:     repositories.NewPostgresRouteStore(sqlDB),
		Cache:     routeCache,
		Notifier:  notify.NewLogCrewNotifier(),
		Threshold: threshold,
		Estimator: estimator,
	}
	router := api.NewRouter(deps)

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
