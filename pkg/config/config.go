package config

import (
	"fmt"
	"net/url"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/autogirlng/muvment-customer-sub002/pkg/logger"
)

type Config struct {
	Port string

	APIBaseURL     string
	APITimeout     time.Duration
	HealthProbeTTL time.Duration

	MongoURI          string
	MongoDatabaseName string
	MongoConnTimeout  time.Duration

	RedisAddr     string
	RedisPassword string

	KafkaBrokers        []string
	KafkaAnalyticsTopic string

	GeoAPIBaseURL string
	GeoAPIKey     string
	GeoCacheTTL   time.Duration

	SessionSealKey     string
	SessionTTL         time.Duration
	TokenRefreshWindow time.Duration
	SecureCookies      bool

	RateLimitRequests int
	RateLimitWindow   time.Duration

	RequestTimeout time.Duration
	MaxRequestSize int
	IdempotencyTTL time.Duration

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	Log *logger.Logger
}

func Load(serviceName string) *Config {
	// A missing .env is fine; environment variables win either way.
	_ = godotenv.Load()

	cfg := &Config{
		Port: getEnvStr(EnvPort, DefaultPort),

		APIBaseURL:     getEnvStr(EnvAPIBaseURL, DefaultAPIBaseURL),
		APITimeout:     getEnvDuration(EnvAPITimeout, DefaultAPITimeout),
		HealthProbeTTL: getEnvDuration(EnvHealthProbeTTL, DefaultHealthProbeTTL),

		MongoURI:          getEnvStr(EnvMongoURI, DefaultMongoURI),
		MongoDatabaseName: getEnvStr(EnvMongoDatabaseName, DefaultMongoDatabaseName),
		MongoConnTimeout:  getEnvDuration(EnvMongoConnTimeout, DefaultMongoConnTimeout),

		RedisAddr:     getEnvStr(EnvRedisAddr, DefaultRedisAddr),
		RedisPassword: getEnvStr(EnvRedisPassword, ""),

		KafkaBrokers:        splitAndTrim(getEnvStr(EnvKafkaBrokers, DefaultKafkaBrokers)),
		KafkaAnalyticsTopic: getEnvStr(EnvKafkaAnalyticsTopic, DefaultKafkaAnalyticsTopic),

		GeoAPIBaseURL: getEnvStr(EnvGeoAPIBaseURL, DefaultGeoAPIBaseURL),
		GeoAPIKey:     getEnvStr(EnvGeoAPIKey, ""),
		GeoCacheTTL:   getEnvDuration(EnvGeoCacheTTL, DefaultGeoCacheTTL),

		SessionSealKey:     getEnvStr(EnvSessionSealKey, ""),
		SessionTTL:         getEnvDuration(EnvSessionTTL, DefaultSessionTTL),
		TokenRefreshWindow: getEnvDuration(EnvTokenRefreshWindow, DefaultTokenRefreshWindow),
		SecureCookies:      getEnvBool(EnvSecureCookies, true),

		RateLimitRequests: getEnvNum(EnvRateLimitRequests, DefaultRateLimitRequests),
		RateLimitWindow:   getEnvDuration(EnvRateLimitWindow, DefaultRateLimitWindow),

		RequestTimeout: getEnvDuration(EnvRequestTimeout, DefaultRequestTimeout),
		MaxRequestSize: getEnvNum(EnvMaxRequestSize, DefaultMaxRequestSize),
		IdempotencyTTL: getEnvDuration(EnvIdempotencyTTL, DefaultIdempotencyTTL),

		ReadTimeout:     getEnvDuration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout),

		Log: logger.New(logger.Config{
			Level:     getEnvStr(EnvLogLevel, DefaultLogLevel),
			Format:    logger.JSON,
			AddSource: true,
			Service:   serviceName,
		}),
	}

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal(err.Error())
	}
	cfg.LogConfiguration()
	return cfg
}

func (cfg *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}

	if u, err := url.Parse(cfg.APIBaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Sprintf("APIBaseURL must be an absolute URL, got: %s", cfg.APIBaseURL))
	}
	if cfg.APITimeout <= 0 {
		errs = append(errs, fmt.Sprintf("APITimeout must be positive, got: %s", cfg.APITimeout))
	}
	if cfg.HealthProbeTTL <= 0 {
		errs = append(errs, fmt.Sprintf("HealthProbeTTL must be positive, got: %s", cfg.HealthProbeTTL))
	}

	if cfg.MongoURI == "" {
		errs = append(errs, "MongoURI cannot be empty")
	} else if !regexp.MustCompile(`^mongodb(\+srv)?://`).MatchString(cfg.MongoURI) {
		errs = append(errs, fmt.Sprintf("MongoURI must start with 'mongodb://' or 'mongodb+srv://', got: %s", cfg.MongoURI))
	}
	if cfg.MongoDatabaseName == "" {
		errs = append(errs, "MongoDatabaseName cannot be empty")
	}
	if cfg.MongoConnTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("MongoConnTimeout must be positive, got: %s", cfg.MongoConnTimeout))
	}

	if cfg.RedisAddr == "" {
		errs = append(errs, "RedisAddr cannot be empty")
	}
	if len(cfg.KafkaBrokers) == 0 {
		errs = append(errs, "KafkaBrokers cannot be empty")
	}
	if cfg.KafkaAnalyticsTopic == "" {
		errs = append(errs, "KafkaAnalyticsTopic cannot be empty")
	}

	if cfg.GeoCacheTTL <= 0 {
		errs = append(errs, fmt.Sprintf("GeoCacheTTL must be positive, got: %s", cfg.GeoCacheTTL))
	}

	if cfg.SessionSealKey == "" {
		errs = append(errs, "SessionSealKey is required")
	}
	if cfg.SessionTTL <= 0 {
		errs = append(errs, fmt.Sprintf("SessionTTL must be positive, got: %s", cfg.SessionTTL))
	}
	if cfg.TokenRefreshWindow <= 0 {
		errs = append(errs, fmt.Sprintf("TokenRefreshWindow must be positive, got: %s", cfg.TokenRefreshWindow))
	}

	if cfg.RateLimitRequests <= 0 {
		errs = append(errs, fmt.Sprintf("RateLimitRequests must be positive, got: %d", cfg.RateLimitRequests))
	}
	if cfg.RateLimitWindow <= 0 {
		errs = append(errs, fmt.Sprintf("RateLimitWindow must be positive, got: %s", cfg.RateLimitWindow))
	}
	if cfg.RequestTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("RequestTimeout must be positive, got: %s", cfg.RequestTimeout))
	}
	if cfg.MaxRequestSize <= 0 {
		errs = append(errs, fmt.Sprintf("MaxRequestSize must be positive, got: %d", cfg.MaxRequestSize))
	}
	if cfg.IdempotencyTTL <= 0 {
		errs = append(errs, fmt.Sprintf("IdempotencyTTL must be positive, got: %s", cfg.IdempotencyTTL))
	}
	if cfg.ReadTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("ReadTimeout must be positive, got: %s", cfg.ReadTimeout))
	}
	if cfg.WriteTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("WriteTimeout must be positive, got: %s", cfg.WriteTimeout))
	}
	if cfg.IdleTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("IdleTimeout must be positive, got: %s", cfg.IdleTimeout))
	}
	if cfg.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("ShutdownTimeout must be positive, got: %s", cfg.ShutdownTimeout))
	}

	if len(errs) > 0 {
		errMsg := "Configuration validation failed:\n"
		for i, e := range errs {
			errMsg += fmt.Sprintf("  %d. %s\n", i+1, e)
		}
		return fmt.Errorf("%s", errMsg)
	}

	return nil
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded successfully",
		"port", cfg.Port,
		"api_base_url", cfg.APIBaseURL,
		"api_timeout", cfg.APITimeout,
		"health_probe_ttl", cfg.HealthProbeTTL,
		"mongo_uri", redactMongoURI(cfg.MongoURI),
		"mongo_database", cfg.MongoDatabaseName,
		"mongo_conn_timeout", cfg.MongoConnTimeout,
		"redis_addr", cfg.RedisAddr,
		"kafka_brokers", cfg.KafkaBrokers,
		"kafka_analytics_topic", cfg.KafkaAnalyticsTopic,
		"geo_api_base_url", cfg.GeoAPIBaseURL,
		"geo_api_key_set", cfg.GeoAPIKey != "",
		"geo_cache_ttl", cfg.GeoCacheTTL,
		"session_seal_key_set", cfg.SessionSealKey != "",
		"session_ttl", cfg.SessionTTL,
		"token_refresh_window", cfg.TokenRefreshWindow,
		"rate_limit_requests", cfg.RateLimitRequests,
		"rate_limit_window", cfg.RateLimitWindow,
		"request_timeout", cfg.RequestTimeout,
		"max_request_size", cfg.MaxRequestSize,
		"idempotency_ttl", cfg.IdempotencyTTL,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"idle_timeout", cfg.IdleTimeout,
		"shutdown_timeout", cfg.ShutdownTimeout,
	)
}

func redactMongoURI(uri string) string {
	credentialRegex := regexp.MustCompile(`(mongodb(\+srv)?://)[^:]+:[^@]+@`)
	return credentialRegex.ReplaceAllString(uri, "${1}***:***@")
}

func splitAndTrim(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
