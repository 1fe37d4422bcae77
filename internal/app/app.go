package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"fxconverter/internal/adapters"
	"fxconverter/internal/adapters/cache"
	"fxconverter/internal/adapters/httpclient"
	"fxconverter/internal/adapters/memory"
	"fxconverter/internal/adapters/postgres"
	"fxconverter/internal/api"
	"fxconverter/internal/config"
	"fxconverter/internal/platform/db"
	httpserver "fxconverter/internal/platform/http"
	"fxconverter/internal/platform/metrics"
	"fxconverter/internal/rate"
	"fxconverter/internal/rate/handler"

	"github.com/sirupsen/logrus"
)

const configFile = "config.yaml"

// Run wires the application components, loads the first rates snapshot and serves HTTP
// until the process receives SIGINT or SIGTERM.
func Run() error {
	appCfg, err := config.Init(configFile)
	if err != nil {
		return err
	}
	ConfigureLogger(appCfg.Logging)
	logrus.Info("✅ Config initialization successful")

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Bounded context for startup operations (first fetch, DB connect)
	startupCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	m := metrics.New()
	baseHTTPClient := NewHTTPClient(appCfg.HTTPClient)

	// Rates must be in the store before the server accepts requests.
	store := rate.NewStore()
	rateClient := httpclient.NewExchangeRateClient(baseHTTPClient, strings.TrimSuffix(appCfg.RatesAPI.BaseURL, "/"))
	loader := rate.NewLoader(rateClient, store, appCfg.RatesAPI.BaseCurrency, m)
	if _, err = loader.Load(startupCtx); err != nil {
		logrus.WithError(err).Error("Failed to fetch initial rates")
		return err
	}
	logrus.Info("✅ Initial rates loaded")

	// Currency catalog
	names, closeCatalog, err := loadCurrencyNames(startupCtx, appCfg.DbServer)
	if err != nil {
		logrus.WithError(err).Error("Failed to load currency names")
		return err
	}
	defer closeCatalog()
	logrus.Infof("✅ Currency catalog loaded (%d names)", len(names))

	// Geolocation
	geoClient := httpclient.NewGeolocationClient(baseHTTPClient, strings.TrimSuffix(appCfg.GeoAPI.BaseURL, "/"))
	geoCache, err := cache.NewGeoCache(appCfg.GeoAPI.CacheMaxItems, appCfg.GeoAPI.CacheTTL())
	if err != nil {
		return fmt.Errorf("failed to create geolocation cache: %w", err)
	}
	defer geoCache.Close()

	rateService := rate.NewService(store, geoClient, geoCache, names, m, appCfg.GeoAPI.Timeout())

	if appCfg.Scheduler.RefreshIntervalSeconds > 0 {
		scheduler := rate.NewScheduler(loader, time.Duration(appCfg.Scheduler.RefreshIntervalSeconds)*time.Second)
		defer func() {
			if shutDownErr := scheduler.Shutdown(); shutDownErr != nil {
				logrus.Errorf("Scheduler shutdown error: %v", shutDownErr)
			}
		}()
		if startErr := scheduler.Start(ctx); startErr != nil {
			logrus.WithError(startErr).Error("Failed to start scheduler")
			return startErr
		}
		logrus.Info("✅ Scheduler activation successful")
	}

	// Handlers and router
	rateHandler := handler.NewRateHandler(rateService)
	router := api.NewRouter(rateHandler, m, api.Options{TrustProxyHeaders: appCfg.HTTPServer.TrustProxyHeaders})

	logrus.Infof("Starting http server on %s", appCfg.HTTPServer.Addr())
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}

// ConfigureLogger applies level and format to the global logrus logger.
func ConfigureLogger(cfg config.Logging) {
	logrus.SetOutput(os.Stdout)
	if parsedLvl, parseErr := logrus.ParseLevel(cfg.Level); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
	if strings.EqualFold(cfg.Format, "json") {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

func NewHTTPClient(cfg config.HTTPClient) *http.Client {
	httpTimeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if httpTimeout <= 0 {
		httpTimeout = 10 * time.Second
	}
	return &http.Client{Timeout: httpTimeout}
}

// loadCurrencyNames reads the catalog from Postgres when configured, otherwise from the
// built-in table. The returned func releases the DB pool, if any.
func loadCurrencyNames(ctx context.Context, cfg config.DbServer) (map[string]string, func(), error) {
	var repo adapters.CurrencyRepository = memory.NewCurrencyRepository()
	closeFn := func() {}

	if cfg.Enabled() {
		if cfg.AutoMigrate {
			if err := db.Migrate(ctx, cfg); err != nil {
				return nil, closeFn, err
			}
			logrus.Info("✅ Database migrations applied")
		}
		pool, err := db.Connect(ctx, cfg)
		if err != nil {
			return nil, closeFn, err
		}
		logrus.Info("✅ Postgres connection successful")
		repo = postgres.NewCurrencyRepository(pool)
		closeFn = pool.Close
	}

	currencies, err := repo.List(ctx)
	if err != nil {
		closeFn()
		return nil, func() {}, err
	}
	names := make(map[string]string, len(currencies))
	for _, c := range currencies {
		names[c.Code] = c.Name
	}
	return names, closeFn, nil
}
