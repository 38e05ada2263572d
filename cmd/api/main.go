package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/freemanindumentaria/storefront-backend/api/routes"
	cartsvc "github.com/freemanindumentaria/storefront-backend/internal/cart"
	"github.com/freemanindumentaria/storefront-backend/internal/delivery"
	"github.com/freemanindumentaria/storefront-backend/pkg/config"
	"github.com/freemanindumentaria/storefront-backend/pkg/logger"
	"github.com/freemanindumentaria/storefront-backend/pkg/maps"
	"github.com/freemanindumentaria/storefront-backend/pkg/metrics"
	"github.com/freemanindumentaria/storefront-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	redisClient, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	registry := prometheus.NewRegistry()
	storeMetrics := metrics.NewStorefrontMetrics(registry)

	cartService, err := cartsvc.NewService(cartsvc.NewRedisStore(redisClient, logg))
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}
	cartService.Subscribe(func(ctx context.Context, sessionID, operation string, cart cartsvc.Cart) {
		storeMetrics.IncCartMutation(operation)
	})

	var geocoder delivery.Geocoder
	if cfg.Geocoding.APIKey != "" {
		opts := []maps.Option{}
		if cfg.Geocoding.BaseURL != "" {
			opts = append(opts, maps.WithBaseURL(cfg.Geocoding.BaseURL))
		}
		client, err := maps.NewClient(cfg.Geocoding.APIKey, opts...)
		if err != nil {
			logg.Error(context.Background(), "failed to create geocoding client", err)
			os.Exit(1)
		}
		geocoder = client
	} else {
		logg.Warn(context.Background(), "geocoding api key not set, delivery quotes disabled")
	}

	deliveryService, err := delivery.NewService(geocoder, cfg.Delivery.OriginAddress, storeMetrics)
	if err != nil {
		logg.Error(context.Background(), "failed to create delivery service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, redisClient, cartService, deliveryService, registry),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
