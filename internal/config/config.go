package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration values
type Config struct {
	// Server configuration
	Port        int    `json:"port"`
	Environment string `json:"environment"`

	// MongoDB configuration
	MongoURI      string `json:"mongo_uri"`
	MongoDatabase string `json:"mongo_database"`

	// Redis configuration
	RedisURI      string `json:"redis_uri"`
	RedisPassword string `json:"redis_password"`
	RedisDB       int    `json:"redis_db"`

	// Collection names
	CadastrosCollection     string `json:"mongo_cadastros_collection"`
	CadastroLogsCollection  string `json:"mongo_cadastro_logs_collection"`
	ConfiguracoesCollection string `json:"mongo_configuracoes_collection"`
	CountersCollection      string `json:"mongo_counters_collection"`

	// Admin authentication
	AdminToken string `json:"-"`

	// Submission throttling: one submission per IP within the cooldown
	// window; the Redis marker expires after the marker TTL.
	SubmissionCooldown time.Duration `json:"submission_cooldown"`
	RateLimitMarkerTTL time.Duration `json:"rate_limit_marker_ttl"`

	// Operator settings cache
	ConfigCacheTTL time.Duration `json:"config_cache_ttl"`

	// Origin channel recorded on every submission
	CadastroFonte string `json:"cadastro_fonte"`

	// Operator notification
	NotificationWebhookURL string        `json:"notification_webhook_url"`
	NotificationTimeout    time.Duration `json:"notification_timeout"`

	// Tracing configuration
	TracingEnabled  bool   `json:"tracing_enabled"`
	TracingEndpoint string `json:"tracing_endpoint"`
}

var (
	AppConfig *Config
)

// LoadConfig loads configuration from environment variables
func LoadConfig() error {
	port, err := strconv.Atoi(getEnvOrDefault("PORT", "8080"))
	if err != nil {
		return fmt.Errorf("invalid PORT: %w", err)
	}

	redisDB, err := strconv.Atoi(getEnvOrDefault("REDIS_DB", "0"))
	if err != nil {
		return fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	adminToken := os.Getenv("ADMIN_TOKEN")
	if adminToken == "" {
		return fmt.Errorf("ADMIN_TOKEN environment variable is required")
	}

	submissionCooldown, err := time.ParseDuration(getEnvOrDefault("SUBMISSION_COOLDOWN", "30s"))
	if err != nil {
		return fmt.Errorf("invalid SUBMISSION_COOLDOWN: %w", err)
	}

	rateLimitMarkerTTL, err := time.ParseDuration(getEnvOrDefault("RATE_LIMIT_MARKER_TTL", "5m"))
	if err != nil {
		return fmt.Errorf("invalid RATE_LIMIT_MARKER_TTL: %w", err)
	}

	configCacheTTL, err := time.ParseDuration(getEnvOrDefault("CONFIG_CACHE_TTL", "10m"))
	if err != nil {
		return fmt.Errorf("invalid CONFIG_CACHE_TTL: %w", err)
	}

	notificationTimeout, err := time.ParseDuration(getEnvOrDefault("NOTIFICATION_TIMEOUT", "10s"))
	if err != nil {
		return fmt.Errorf("invalid NOTIFICATION_TIMEOUT: %w", err)
	}

	AppConfig = &Config{
		// Server configuration
		Port:        port,
		Environment: getEnvOrDefault("ENVIRONMENT", "development"),

		// MongoDB configuration
		MongoURI:      getEnvOrDefault("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnvOrDefault("MONGODB_DATABASE", "cadastro"),

		// Redis configuration
		RedisURI:      getEnvOrDefault("REDIS_URI", "localhost:6379"),
		RedisPassword: getEnvOrDefault("REDIS_PASSWORD", ""),
		RedisDB:       redisDB,

		// Collection names
		CadastrosCollection:     getEnvOrDefault("MONGODB_CADASTROS_COLLECTION", "cadastros"),
		CadastroLogsCollection:  getEnvOrDefault("MONGODB_CADASTRO_LOGS_COLLECTION", "cadastro_logs"),
		ConfiguracoesCollection: getEnvOrDefault("MONGODB_CONFIGURACOES_COLLECTION", "configuracoes"),
		CountersCollection:      getEnvOrDefault("MONGODB_COUNTERS_COLLECTION", "counters"),

		// Admin authentication
		AdminToken: adminToken,

		// Submission throttling
		SubmissionCooldown: submissionCooldown,
		RateLimitMarkerTTL: rateLimitMarkerTTL,

		// Operator settings cache
		ConfigCacheTTL: configCacheTTL,

		// Origin channel
		CadastroFonte: getEnvOrDefault("CADASTRO_FONTE", "website"),

		// Operator notification
		NotificationWebhookURL: getEnvOrDefault("NOTIFICATION_WEBHOOK_URL", ""),
		NotificationTimeout:    notificationTimeout,

		// Tracing configuration
		TracingEnabled:  getEnvOrDefault("TRACING_ENABLED", "false") == "true",
		TracingEndpoint: getEnvOrDefault("TRACING_ENDPOINT", "localhost:4317"),
	}

	return nil
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
