package config

const (
	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvAPIBaseURL     = "BOOKING_API_BASE_URL"
	EnvAPITimeout     = "BOOKING_API_TIMEOUT"
	EnvHealthProbeTTL = "BOOKING_API_PROBE_TTL"

	EnvMongoURI          = "MONGO_URI"
	EnvMongoDatabaseName = "MONGO_DATABASE_NAME"
	EnvMongoConnTimeout  = "MONGO_CONN_TIMEOUT"

	EnvRedisAddr     = "REDIS_ADDR"
	EnvRedisPassword = "REDIS_PASSWORD"

	EnvKafkaBrokers        = "KAFKA_BROKERS"
	EnvKafkaAnalyticsTopic = "KAFKA_ANALYTICS_TOPIC"

	EnvGeoAPIBaseURL = "GEO_API_BASE_URL"
	EnvGeoAPIKey     = "GEO_API_KEY"
	EnvGeoCacheTTL   = "GEO_CACHE_TTL"

	EnvSessionSealKey     = "SESSION_SEAL_KEY"
	EnvSessionTTL         = "SESSION_TTL"
	EnvTokenRefreshWindow = "TOKEN_REFRESH_WINDOW"
	EnvSecureCookies      = "SECURE_COOKIES"

	EnvRateLimitRequests = "RATE_LIMIT_REQUESTS"
	EnvRateLimitWindow   = "RATE_LIMIT_WINDOW"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"
	EnvIdempotencyTTL = "IDEMPOTENCY_TTL"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"
)
