package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"heavy-haul-service/internal/adapters/cache"
	"heavy-haul-service/internal/adapters/repositories"
	"heavy-haul-service/internal/adapters/routing"
	"heavy-haul-service/internal/api"
	"heavy-haul-service/internal/config"
	"heavy-haul-service/internal/platform/db"
	"heavy-haul-service/internal/ports"
	"heavy-haul-service/internal/services"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, Redis, routing service) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var conn *sql.DB
	if cfg.DatabaseURL != "" {
		conn, err = db.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer conn.Close()
	}

	repo, err := referenceRepository(cfg, conn)
	if err != nil {
		log.Fatal(err)
	}

	// Reference data is loaded once and shared read-only by every request.
	ref, err := services.LoadReferenceData(ctx, repo)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Reference data loaded source=%s trucks=%d states=%d",
		cfg.ReferenceSource, len(ref.Trucks), len(ref.Permits.StateCodes()))

	deps := api.Dependencies{
		Ref:                ref,
		RateLimitRPS:       cfg.RateLimitRPS,
		RateLimitBurst:     cfg.RateLimitBurst,
		FuelPricePerGallon: cfg.FuelPricePerGallon,
		AverageSpeedMPH:    cfg.AverageSpeedMPH,
	}

	if cfg.RouteServiceURL != "" {
		var routeCache ports.RouteMileageCache
		if conn != nil {
			routeCache = cache.NewSQLRouteCache(conn)
		}
		provider, err := routing.NewHTTPRouteProvider(cfg.RouteServiceURL, cfg.RouteServiceKey, routeCache)
		if err != nil {
			log.Fatal(err)
		}
		deps.Routes = provider
	} else {
		log.Println("ROUTE_SERVICE_URL not set; quotes require an explicit route")
	}

	if cfg.RedisURL != "" {
		permitCache, err := cache.NewRedisPermitCacheFromURL(cfg.RedisURL, cfg.PermitCacheTTL)
		if err != nil {
			log.Fatal(err)
		}
		defer permitCache.Close()
		deps.PermitCache = permitCache
	}

	router := api.NewRouter(deps)

	// Write timeout covers a cold route lookup with retries plus planning.
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown failed: %v", err)
		}
	}()

	log.Printf("Server listening addr=:%s", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
	log.Println("Server stopped")
}

func referenceRepository(cfg config.Config, conn *sql.DB) (ports.ReferenceDataRepository, error) {
	switch cfg.ReferenceSource {
	case config.ReferencePostgres:
		if conn == nil {
			return nil, errors.New("reference repository: postgres source needs DATABASE_URL")
		}
		return repositories.NewPostgresReferenceRepository(conn), nil
	default:
		ds, err := dataset(cfg)
		if err != nil {
			return nil, fmt.Errorf("reference repository: %w", err)
		}
		return repositories.NewEmbeddedRepository(ds), nil
	}
}

func dataset(cfg config.Config) (repositories.Dataset, error) {
	if cfg.TrucksPath != "" {
		return repositories.LoadDatasetFiles(cfg.TrucksPath, cfg.StatesPath)
	}
	return repositories.DefaultDataset()
}
