package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config アプリケーション全体の設定
type Config struct {
	Server        ServerConfig
	JWT           JWTConfig
	OpenTelemetry OpenTelemetryConfig
	AdminAPI      AdminAPIConfig
	Store         StoreConfig
	Environment   string
	LogLevel      string
}

// ServerConfig サーバー設定
type ServerConfig struct {
	Port         int
	GRPCPort     int // 0の場合はPort+1
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	// X-Forwarded-Forを信頼するプロキシ（単一IPまたはCIDR）。空なら接続元アドレスのみ使用
	TrustedProxies []string
}

// JWTConfig JWT設定
type JWTConfig struct {
	Secret     string
	Expiration time.Duration
	Issuer     string
}

// OpenTelemetryConfig OpenTelemetry設定
type OpenTelemetryConfig struct {
	Enabled         bool
	ServiceName     string
	ServiceVersion  string
	OTLPEndpoint    string
	OTLPInsecure    bool
	TraceExporter   string // "otlp", "none"
	MetricsExporter string // "otlp", "none"
	// 0から1。1未満なら親スパンの判定を優先して比率でサンプリング
	TraceSampleRatio float64
	MetricsInterval  time.Duration
}

// AdminAPIConfig 管理API設定
type AdminAPIConfig struct {
	Enabled    bool
	APIKey     string
	AllowedIPs []string
}

// StoreConfig ストアフロント設定
type StoreConfig struct {
	InitialBalance       int64
	SupportReplyDelay    time.Duration
	CatalogFile          string // 空の場合は組み込みのカタログを使用
	SessionTTL           time.Duration
	SessionSweepInterval time.Duration
}

// Load 設定を読み込む
func Load() (*Config, error) {
	// .envファイルを読み込む（存在しない場合は無視）
	_ = godotenv.Load()

	env := getEnv("ENVIRONMENT", "development")

	cfg := &Config{
		Environment: env,
		LogLevel:    getEnv("LOG_LEVEL", "INFO"),
		Server: ServerConfig{
			Port:           getEnvAsInt("SERVER_PORT", 8080),
			GRPCPort:       getEnvAsInt("GRPC_PORT", 0),
			ReadTimeout:    getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:   getEnvAsDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:    getEnvAsDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
			TrustedProxies: getEnvAsList("SERVER_TRUSTED_PROXIES"),
		},
		JWT: JWTConfig{
			Secret:     getEnv("JWT_SECRET", ""),
			Expiration: getEnvAsDuration("JWT_EXPIRATION", 24*time.Hour),
			Issuer:     getEnv("JWT_ISSUER", "game-store"),
		},
		OpenTelemetry: OpenTelemetryConfig{
			Enabled:          getEnvAsBool("OTEL_ENABLED", true),
			ServiceName:      getEnv("OTEL_SERVICE_NAME", "game-store"),
			ServiceVersion:   getEnv("OTEL_SERVICE_VERSION", "1.0.0"),
			OTLPEndpoint:     getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://localhost:4318"),
			OTLPInsecure:     getEnvAsBool("OTEL_EXPORTER_OTLP_INSECURE", true),
			TraceExporter:    getEnv("OTEL_TRACES_EXPORTER", "otlp"),
			MetricsExporter:  getEnv("OTEL_METRICS_EXPORTER", "otlp"),
			TraceSampleRatio: getEnvAsFloat("OTEL_TRACES_SAMPLER_ARG", 1.0),
			MetricsInterval:  getEnvAsDuration("OTEL_METRICS_INTERVAL", 30*time.Second),
		},
		AdminAPI: AdminAPIConfig{
			Enabled:    getEnvAsBool("ADMIN_API_ENABLED", false),
			APIKey:     getEnv("ADMIN_API_KEY", ""),
			AllowedIPs: getEnvAsList("ADMIN_API_ALLOWED_IPS"),
		},
		Store: StoreConfig{
			InitialBalance:       getEnvAsInt64("STORE_INITIAL_BALANCE", 5000),
			SupportReplyDelay:    getEnvAsDuration("STORE_SUPPORT_REPLY_DELAY", time.Second),
			CatalogFile:          getEnv("STORE_CATALOG_FILE", ""),
			SessionTTL:           getEnvAsDuration("STORE_SESSION_TTL", 24*time.Hour),
			SessionSweepInterval: getEnvAsDuration("STORE_SESSION_SWEEP_INTERVAL", time.Minute),
		},
	}

	// 必須設定の検証
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate 設定の検証
func (c *Config) validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.AdminAPI.Enabled && c.AdminAPI.APIKey == "" {
		return fmt.Errorf("ADMIN_API_KEY is required when ADMIN_API_ENABLED is true")
	}
	if c.Store.InitialBalance < 0 {
		return fmt.Errorf("STORE_INITIAL_BALANCE must not be negative")
	}
	if c.Store.SupportReplyDelay < 0 {
		return fmt.Errorf("STORE_SUPPORT_REPLY_DELAY must not be negative")
	}
	if r := c.OpenTelemetry.TraceSampleRatio; r < 0 || r > 1 {
		return fmt.Errorf("OTEL_TRACES_SAMPLER_ARG must be between 0 and 1, got %v", r)
	}
	return nil
}

// GRPCAddressPort gRPCサーバーのポートを返す
func (c *ServerConfig) GRPCAddressPort() int {
	if c.GRPCPort > 0 {
		return c.GRPCPort
	}
	return c.Port + 1
}

// IsDevelopment 開発環境かどうかを返す
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// getEnv 環境変数を取得（デフォルト値付き）
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt 環境変数を整数として取得
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsInt64 環境変数を64bit整数として取得
func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsBool 環境変数を真偽値として取得
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsFloat 環境変数を小数として取得
func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration 環境変数を時間として取得
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList カンマ区切りの環境変数をスライスとして取得
func getEnvAsList(key string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return nil
	}
	var out []string
	for _, v := range strings.Split(valueStr, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
