package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/api/routes"
	cartsvc "github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/internal/cart"
	"github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/internal/catalog"
	checkoutsvc "github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/internal/checkout"
	"github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/internal/coupons"
	"github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/pkg/config"
	"github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/pkg/db"
	"github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/pkg/logger"
	"github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/pkg/metrics"
	"github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/pkg/migrate"
	"github.com/sourav742001/sabjiwala-fresh-mandi-91-sub000/pkg/redis"
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

	dbClient, err := db.New(context.Background(), cfg.DB, cfg.FeatureFlags, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	cartTokens, err := cartsvc.NewTokenManager(cfg.CartToken)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart token manager", err)
		os.Exit(1)
	}

	catalogService, err := catalog.NewService(catalog.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}

	cartStorages := cartsvc.RedisStorageFactory{Client: redisClient, TTL: cfg.Cart.MirrorTTL}
	cartService, err := cartsvc.NewService(cartStorages, catalogService, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	checkoutService, err := checkoutsvc.NewService(redisClient, cartService, coupons.DefaultCatalog(), cfg.Checkout, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(registry)

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
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			dbClient,
			redisClient,
			registry,
			httpMetrics,
			cartTokens,
			catalogService,
			cartService,
			checkoutService,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
