package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig

	// Infrastructure
	Postgres PostgresConfig
	Kafka    KafkaConfig

	// Auth
	JWT JWTConfig

	// Chat commerce specifics
	Chat     ChatConfig
	Intent   IntentConfig
	Razorpay RazorpayConfig

	// LLM Provider Abstraction
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type PostgresConfig struct {
	DSN            string
	MaxConns       int32
	ConnectTimeout time.Duration
}

type KafkaConfig struct {
	Brokers      []string
	OrderTopic   string
	ClientID     string
	GroupID      string
	WriteTimeout time.Duration
}

type JWTConfig struct {
	Secret        string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

type ChatConfig struct {
	RateLimitPerMin int
}

type IntentConfig struct {
	ModelTimeout time.Duration
	Temperature  float64
}

type RazorpayConfig struct {
	KeyID           string
	KeySecret       string
	WebhookSecret   string
	Currency        string
	BaseURL         string
	RateLimitPerMin int
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// HasUsableProvider reports whether at least one enabled provider has credentials.
func (c LLMConfig) HasUsableProvider() bool {
	for _, p := range c.Providers {
		if p.Enabled && p.APIKey != "" {
			return true
		}
	}
	return false
}

// Load loads configuration using Viper.
// A .env file in the working directory is applied first when present.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	if port := viper.GetInt("port"); port != 0 {
		cfg.HTTPServer.Port = port
	}
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// CORS: configured origins plus the comma separated CORS_ORIGIN env
	cfg.CORS.AllowedOrigins = viper.GetStringSlice("cors.allowed_origins")
	cfg.CORS.AllowedOrigins = append(cfg.CORS.AllowedOrigins, splitCSV(viper.GetString("cors_origin"))...)

	// Postgres
	cfg.Postgres.DSN = expandEnvVar(viper.GetString("postgres.dsn"))
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Postgres.DSN = dsn
	}
	cfg.Postgres.MaxConns = viper.GetInt32("postgres.max_conns")
	cfg.Postgres.ConnectTimeout = viper.GetDuration("postgres.connect_timeout")

	// Kafka (optional: no brokers means events are dropped)
	cfg.Kafka.Brokers = viper.GetStringSlice("kafka.brokers")
	if brokers := viper.GetString("kafka_brokers"); brokers != "" {
		cfg.Kafka.Brokers = splitCSV(brokers)
	}
	cfg.Kafka.OrderTopic = viper.GetString("kafka.order_topic")
	cfg.Kafka.ClientID = viper.GetString("kafka.client_id")
	cfg.Kafka.GroupID = viper.GetString("kafka.group_id")
	cfg.Kafka.WriteTimeout = viper.GetDuration("kafka.write_timeout")

	// JWT
	cfg.JWT.Secret = expandEnvVar(viper.GetString("jwt.secret"))
	if secret := viper.GetString("jwt_secret"); secret != "" {
		cfg.JWT.Secret = secret
	}
	cfg.JWT.RefreshSecret = expandEnvVar(viper.GetString("jwt.refresh_secret"))
	if secret := viper.GetString("jwt_refresh_secret"); secret != "" {
		cfg.JWT.RefreshSecret = secret
	}
	if cfg.JWT.RefreshSecret == "" {
		cfg.JWT.RefreshSecret = cfg.JWT.Secret
	}
	cfg.JWT.AccessTTL = viper.GetDuration("jwt.access_ttl")
	cfg.JWT.RefreshTTL = viper.GetDuration("jwt.refresh_ttl")

	// Chat & intent classification
	cfg.Chat.RateLimitPerMin = viper.GetInt("chat.rate_limit_per_min")
	cfg.Intent.ModelTimeout = viper.GetDuration("intent.model_timeout")
	cfg.Intent.Temperature = viper.GetFloat64("intent.temperature")

	// Razorpay
	cfg.Razorpay.KeyID = expandEnvVar(viper.GetString("razorpay.key_id"))
	if keyID := viper.GetString("razorpay_key_id"); keyID != "" {
		cfg.Razorpay.KeyID = keyID
	}
	cfg.Razorpay.KeySecret = expandEnvVar(viper.GetString("razorpay.key_secret"))
	if keySecret := viper.GetString("razorpay_key_secret"); keySecret != "" {
		cfg.Razorpay.KeySecret = keySecret
	}
	cfg.Razorpay.WebhookSecret = expandEnvVar(viper.GetString("razorpay.webhook_secret"))
	if webhookSecret := viper.GetString("razorpay_webhook_secret"); webhookSecret != "" {
		cfg.Razorpay.WebhookSecret = webhookSecret
	}
	cfg.Razorpay.Currency = strings.ToUpper(viper.GetString("razorpay.currency"))
	cfg.Razorpay.BaseURL = viper.GetString("razorpay.base_url")
	cfg.Razorpay.RateLimitPerMin = viper.GetInt("razorpay.webhook_rate_limit_per_min")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")

	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	// A bare OPENAI_API_KEY enables the default OpenAI provider when nothing is configured.
	if len(cfg.LLM.Providers) == 0 {
		if key := viper.GetString("openai_api_key"); key != "" {
			cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
				Name:     "openai",
				Enabled:  true,
				Priority: 1,
				APIKey:   key,
				Model:    viper.GetString("openai_model"),
				Timeout:  "10s",
			})
		}
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("postgres.max_conns", 10)
	viper.SetDefault("postgres.connect_timeout", "5s")

	viper.SetDefault("kafka.order_topic", "commerce.order-events")
	viper.SetDefault("kafka.client_id", "chat-commerce")
	viper.SetDefault("kafka.group_id", "chat-commerce-audit")
	viper.SetDefault("kafka.write_timeout", "5s")

	viper.SetDefault("jwt.access_ttl", "20h")
	viper.SetDefault("jwt.refresh_ttl", "168h")

	viper.SetDefault("chat.rate_limit_per_min", 60)
	viper.SetDefault("intent.model_timeout", "5s")
	viper.SetDefault("intent.temperature", 0.0)

	viper.SetDefault("razorpay.currency", "INR")
	viper.SetDefault("razorpay.base_url", "https://api.razorpay.com")
	viper.SetDefault("razorpay.webhook_rate_limit_per_min", 120)

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 1)
	viper.SetDefault("llm.retry_delay", "500ms")
	viper.SetDefault("llm.max_total_timeout", "10s")
	viper.SetDefault("openai_model", "gpt-4o-mini")
}

func validate(cfg *Config) error {
	if cfg.Postgres.DSN == "" {
		return fmt.Errorf("postgres dsn is required (postgres.dsn or DATABASE_URL)")
	}
	if cfg.JWT.Secret == "" {
		return fmt.Errorf("jwt secret is required (jwt.secret or JWT_SECRET)")
	}
	return validateLLMConfig(&cfg.LLM)
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}

// validateLLMConfig validates the LLM configuration.
// An empty provider list is valid: intent classification then runs on rules only.
func validateLLMConfig(cfg *LLMConfig) error {
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}

		if !provider.Enabled {
			continue
		}
		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
	}

	return nil
}

func splitCSV(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
