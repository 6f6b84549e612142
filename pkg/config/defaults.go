package config

import "time"

const (
	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultAPIBaseURL     = "https://api.muvment.ng"
	DefaultAPITimeout     = 15 * time.Second
	DefaultHealthProbeTTL = 20 * time.Second

	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "muvment_customer"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultRedisAddr = "localhost:6379"

	DefaultKafkaBrokers        = "localhost:9092"
	DefaultKafkaAnalyticsTopic = "customer-analytics"

	DefaultGeoAPIBaseURL = "https://maps.googleapis.com/maps/api"
	// Cached geocoding results stay fresh for half an hour.
	DefaultGeoCacheTTL = 30 * time.Minute

	// Sessions match the 7-day cookie expiry of the customer web app.
	DefaultSessionTTL         = 7 * 24 * time.Hour
	DefaultTokenRefreshWindow = 5 * time.Minute

	DefaultRateLimitRequests = 60
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB
	DefaultIdempotencyTTL = 24 * time.Hour

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
)
