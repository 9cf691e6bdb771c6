package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all service configuration loaded from environment variables.
type Config struct {
	HTTPPort   int
	GRPCPort   int
	DB         DBConfig
	Kafka      KafkaConfig
	Redis      RedisConfig
	CreditRisk CreditRiskConfig
	Rules      RulesConfig
	Telemetry  TelemetryConfig
	LogLevel   string
	LogFormat  string
}

type DBConfig struct {
	Host          string
	Port          int
	User          string
	Password      string
	Name          string
	SSLMode       string
	MigrationsDir string
	MaxConns      int32
	MinConns      int32
}

type KafkaConfig struct {
	Brokers []string
}

// RedisConfig configures the assessment cache. An empty Addr disables
// caching entirely.
type RedisConfig struct {
	Addr        string
	CacheTTLSec int
}

// CreditRiskConfig configures the external credit-risk collaborator. An
// empty BaseURL selects the deterministic stub client.
type CreditRiskConfig struct {
	BaseURL        string
	APIKey         string
	TimeoutSeconds int
	MaxRetries     int
	RetryBackoffMs int
}

// RulesConfig overrides the tunable underwriting thresholds. Ratios are
// fractions, so 0.8 means 80%.
type RulesConfig struct {
	MinCibilScore      int
	AffordabilityRatio float64
	MaxLoanToValue     float64
}

type TelemetryConfig struct {
	OTLPEndpoint string
	ServiceName  string
}

// Validate checks required configuration values.
func (c Config) Validate() {
	if c.DB.Password == "" {
		panic("DB_PASSWORD environment variable is required")
	}
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	return Config{
		HTTPPort: getEnvInt("HTTP_PORT", 8089),
		GRPCPort: getEnvInt("GRPC_PORT", 9089),
		DB: DBConfig{
			Host:          getEnv("DB_HOST", "localhost"),
			Port:          getEnvInt("DB_PORT", 5432),
			User:          getEnv("DB_USER", "casaflow"),
			Password:      getEnv("DB_PASSWORD", ""),
			Name:          getEnv("DB_NAME", "casaflow_underwriting"),
			SSLMode:       getEnv("DB_SSLMODE", "require"),
			MigrationsDir: getEnv("MIGRATIONS_DIR", "file://internal/infrastructure/persistence/postgres/migrations"),
			MaxConns:      int32(getEnvInt("DB_MAX_CONNS", 20)), //nolint:gosec // bounded by env config
			MinConns:      int32(getEnvInt("DB_MIN_CONNS", 5)),  //nolint:gosec // bounded by env config
		},
		Kafka: KafkaConfig{
			Brokers: []string{getEnv("KAFKA_BROKERS", "localhost:9092")},
		},
		Redis: RedisConfig{
			Addr:        getEnv("REDIS_ADDR", ""),
			CacheTTLSec: getEnvInt("ASSESSMENT_CACHE_TTL_SEC", 900),
		},
		CreditRisk: CreditRiskConfig{
			BaseURL:        getEnv("CREDIT_RISK_BASE_URL", ""),
			APIKey:         getEnv("CREDIT_RISK_API_KEY", ""),
			TimeoutSeconds: getEnvInt("CREDIT_RISK_TIMEOUT_SEC", 10),
			MaxRetries:     getEnvInt("CREDIT_RISK_MAX_RETRIES", 3),
			RetryBackoffMs: getEnvInt("CREDIT_RISK_RETRY_BACKOFF_MS", 200),
		},
		Rules: RulesConfig{
			MinCibilScore:      getEnvInt("RULE_MIN_CIBIL_SCORE", 750),
			AffordabilityRatio: getEnvFloat("RULE_AFFORDABILITY_RATIO", 0.5),
			MaxLoanToValue:     getEnvFloat("RULE_MAX_LOAN_TO_VALUE", 0.8),
		},
		Telemetry: TelemetryConfig{
			OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
			ServiceName:  "underwriting-service",
		},
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}
}

// GRPCAddr returns the full gRPC listen address.
func (c Config) GRPCAddr() string {
	return fmt.Sprintf(":%d", c.GRPCPort)
}

// HTTPAddr returns the full HTTP listen address.
func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}
