package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type HTTPServer struct {
	Host                   string `mapstructure:"host"`
	Port                   string `mapstructure:"port"`
	ReadHeaderTimeoutSec   int    `mapstructure:"read_header_timeout_seconds"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds"`
	TrustProxyHeaders      bool   `mapstructure:"trust_proxy_headers"`
}

func (config *HTTPServer) Addr() string {
	return net.JoinHostPort(config.Host, config.Port)
}

type RatesAPI struct {
	BaseURL      string `mapstructure:"base_url"`
	BaseCurrency string `mapstructure:"base_currency"`
}

type GeoAPI struct {
	BaseURL         string `mapstructure:"base_url"`
	TimeoutMillis   int    `mapstructure:"timeout_ms"`
	CacheTTLSeconds int    `mapstructure:"cache_ttl_seconds"`
	CacheMaxItems   int64  `mapstructure:"cache_max_items"`
}

func (config *GeoAPI) Timeout() time.Duration {
	return time.Duration(config.TimeoutMillis) * time.Millisecond
}

func (config *GeoAPI) CacheTTL() time.Duration {
	return time.Duration(config.CacheTTLSeconds) * time.Second
}

type HTTPClient struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

type Scheduler struct {
	// RefreshIntervalSeconds of 0 disables background refresh.
	RefreshIntervalSeconds int `mapstructure:"refresh_interval_seconds"`
}

type DbServer struct {
	Host        string `mapstructure:"host"`
	Port        string `mapstructure:"port"`
	User        string `mapstructure:"user"`
	Pass        string `mapstructure:"pass"`
	Name        string `mapstructure:"name"`
	MaxConns    int32  `mapstructure:"max_conns"`
	AutoMigrate bool   `mapstructure:"auto_migrate"`
}

// Enabled reports whether the currency catalog should be read from Postgres.
func (config *DbServer) Enabled() bool {
	return config.Host != ""
}

func (config *DbServer) GetConnectionStr() string {
	return fmt.Sprintf(
		"user=%s password=%s host=%s port=%s dbname=%s sslmode=disable",
		config.User, config.Pass, config.Host, config.Port, config.Name,
	)
}

type Logging struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type AppConfig struct {
	HTTPServer HTTPServer `mapstructure:"http_server"`
	RatesAPI   RatesAPI   `mapstructure:"rates_api"`
	GeoAPI     GeoAPI     `mapstructure:"geo_api"`
	HTTPClient HTTPClient `mapstructure:"http_client"`
	Scheduler  Scheduler  `mapstructure:"scheduler"`
	DbServer   DbServer   `mapstructure:"db_server"`
	Logging    Logging    `mapstructure:"logging"`
}

// Init reads .env and the YAML file at configPath (both optional), then applies env overrides.
func Init(configPath string) (*AppConfig, error) {
	var cfg AppConfig

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// http server env vars
	_ = v.BindEnv("http_server.host", "HTTP_HOST")
	_ = v.BindEnv("http_server.port", "HTTP_PORT")
	_ = v.BindEnv("http_server.trust_proxy_headers", "HTTP_TRUST_PROXY_HEADERS")

	// upstream env vars
	_ = v.BindEnv("rates_api.base_url", "RATES_API_BASE_URL")
	_ = v.BindEnv("rates_api.base_currency", "RATES_API_BASE_CURRENCY")
	_ = v.BindEnv("geo_api.base_url", "GEO_API_BASE_URL")
	_ = v.BindEnv("geo_api.timeout_ms", "GEO_API_TIMEOUT_MS")
	_ = v.BindEnv("http_client.timeout_seconds", "HTTP_CLIENT_TIMEOUT_SECONDS")
	_ = v.BindEnv("scheduler.refresh_interval_seconds", "RATES_REFRESH_INTERVAL_SECONDS")

	// db server env vars
	_ = v.BindEnv("db_server.host", "DB_HOST")
	_ = v.BindEnv("db_server.port", "DB_PORT")
	_ = v.BindEnv("db_server.user", "DB_USER")
	_ = v.BindEnv("db_server.pass", "DB_PASS")
	_ = v.BindEnv("db_server.name", "DB_NAME")
	_ = v.BindEnv("db_server.max_conns", "DB_MAX_CONNS")
	_ = v.BindEnv("db_server.auto_migrate", "DB_AUTO_MIGRATE")

	_ = v.BindEnv("logging.level", "LOG_LEVEL")
	_ = v.BindEnv("logging.format", "LOG_FORMAT")

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.Is(err, fs.ErrNotExist) || errors.As(err, &notFound)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http_server.host", "127.0.0.1")
	v.SetDefault("http_server.port", "3000")
	v.SetDefault("http_server.read_header_timeout_seconds", 5)
	v.SetDefault("http_server.shutdown_timeout_seconds", 10)
	v.SetDefault("http_server.trust_proxy_headers", false)

	v.SetDefault("rates_api.base_url", "https://api.frankfurter.app")
	v.SetDefault("rates_api.base_currency", "MYR")

	v.SetDefault("geo_api.base_url", "http://ip-api.com/json")
	v.SetDefault("geo_api.timeout_ms", 3000)
	v.SetDefault("geo_api.cache_ttl_seconds", 3600)
	v.SetDefault("geo_api.cache_max_items", 10000)

	v.SetDefault("http_client.timeout_seconds", 10)
	v.SetDefault("scheduler.refresh_interval_seconds", 0)

	v.SetDefault("db_server.port", "5432")
	v.SetDefault("db_server.max_conns", 4)
	v.SetDefault("db_server.auto_migrate", true)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

func (cfg *AppConfig) validate() error {
	cfg.RatesAPI.BaseCurrency = strings.ToUpper(strings.TrimSpace(cfg.RatesAPI.BaseCurrency))
	if cfg.RatesAPI.BaseCurrency == "" {
		return fmt.Errorf("rates_api.base_currency is required")
	}
	if cfg.RatesAPI.BaseURL == "" {
		return fmt.Errorf("rates_api.base_url is required")
	}
	if cfg.HTTPServer.Port == "" {
		return fmt.Errorf("http_server.port is required")
	}
	if cfg.Scheduler.RefreshIntervalSeconds < 0 {
		return fmt.Errorf("scheduler.refresh_interval_seconds must not be negative")
	}
	return nil
}
