package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"storefront/internal/adapter/repo"
	"storefront/internal/domain"
	"storefront/internal/http/handlers"
	httpapi "storefront/internal/http/httpapi"
	"storefront/internal/infra"
	"storefront/internal/infra/credentials"
	"storefront/internal/infra/geoip"
	"storefront/internal/middleware"
	"storefront/internal/nutrition"
	"storefront/internal/orders"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv, cfg.LogLevel)

	ctx := context.Background()
	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	sqlRunner := infra.NewSQLRunner(dbpool, logger.With().Str("component", "sql").Logger())

	var dishes domain.DishRepository = repo.NewDishRepository(sqlRunner)
	rdb, err := infra.NewRedisClient(ctx, cfg)
	if err != nil {
		logger.Warn().Err(err).Msg("redis unavailable; catalog cache disabled")
	}
	if rdb != nil {
		defer rdb.Close()
		dishes = repo.NewCachedCatalog(dishes, repo.NewRedisStore(rdb), cfg.CatalogCacheTTL, logger)
		logger.Info().Dur("ttl", cfg.CatalogCacheTTL).Msg("catalog cache enabled")
	}
	locations := repo.NewLocationRepository(sqlRunner)

	var countryLookup middleware.CountryLookup
	resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip database unavailable; country lookup disabled")
	}
	if resolver != nil {
		defer resolver.Close()
		countryLookup = resolver.CountryCode
	}

	adv := selectAdvisor(ctx, cfg, credentials.NewStore(sqlRunner), nil, logger)
	engine := nutrition.NewEngine(dishes, adv, logger.With().Str("component", "nutrition").Logger(), cfg.AdvisorTimeout)
	logger.Info().Str("advisor", engine.AdvisorName()).Msg("nutrition advisor ready")

	app := &handlers.App{
		Logger:    logger,
		Dishes:    dishes,
		Locations: locations,
		Orders:    orders.NewService(dishes, locations, repo.NewOrderRepository(sqlRunner), logger),
		Planner:   engine,
		Money:     orders.NewFormatter(cfg.Currency),
		DB:        sqlRunner,
	}

	router := httpapi.NewRouter(app, httpapi.Options{
		AllowedOrigins:    cfg.CORSAllowedOrigins,
		RateLimitPerMin:   cfg.RateLimitPerMin,
		DefaultLocale:     cfg.DefaultLocale,
		CountryLookup:     countryLookup,
		TrustProxyHeaders: cfg.TrustProxyHeaders,
	})

	server := infra.NewHTTPServer(cfg, router, logger)

	runCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Run(runCtx, nil); err != nil {
		logger.Error().Err(err).Msg("http server failed")
	}
	logger.Info().Msg("server stopped")
}
