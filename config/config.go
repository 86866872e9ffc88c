package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Data Service drivers
const (
	DriverRPC      = "rpc"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// HR agent specifics
	DataService DataServiceConfig
	Postgres    PostgresConfig
	Redis       RedisConfig
	Router      RouterConfig
	Chat        ChatConfig
	Telegram    TelegramConfig
}

type EnvironmentConfig struct {
	Name     string
	Timezone string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type DataServiceConfig struct {
	Driver   string
	Endpoint string
	Token    string
	Timeout  time.Duration
	OAuth2   OAuth2Config
}

type OAuth2Config struct {
	TokenURL     string
	ClientID     string
	ClientSecret string
	Scopes       []string
}

type PostgresConfig struct {
	DSN            string
	MaxConnections int
	MaxIdle        int
	Migrate        bool
}

// RedisConfig enables the read-through cache when Addr is set.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

type RouterConfig struct {
	PhrasesFile string
}

type ChatConfig struct {
	RateLimitPerMin int
}

type TelegramConfig struct {
	BotToken   string
	WebhookURL string
}

// Load loads configuration using Viper.
// A .env file in the working directory is loaded first when present.
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
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.Environment.Timezone = viper.GetString("environment.timezone")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Data Service
	cfg.DataService.Driver = strings.ToLower(viper.GetString("data_service.driver"))
	cfg.DataService.Endpoint = viper.GetString("data_service.endpoint")
	cfg.DataService.Token = viper.GetString("data_service.token")
	cfg.DataService.Timeout = viper.GetDuration("data_service.timeout")
	cfg.DataService.OAuth2.TokenURL = viper.GetString("data_service.oauth2.token_url")
	cfg.DataService.OAuth2.ClientID = viper.GetString("data_service.oauth2.client_id")
	cfg.DataService.OAuth2.ClientSecret = viper.GetString("data_service.oauth2.client_secret")
	cfg.DataService.OAuth2.Scopes = splitList(viper.GetString("data_service.oauth2.scopes"))

	cfg.Postgres.DSN = viper.GetString("postgres.dsn")
	cfg.Postgres.MaxConnections = viper.GetInt("postgres.max_connections")
	cfg.Postgres.MaxIdle = viper.GetInt("postgres.max_idle")
	cfg.Postgres.Migrate = viper.GetBool("postgres.migrate")

	cfg.Redis.Addr = viper.GetString("redis.addr")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")
	cfg.Redis.TTL = viper.GetDuration("redis.ttl")

	// Router, chat, channels
	cfg.Router.PhrasesFile = viper.GetString("router.phrases_file")
	cfg.Chat.RateLimitPerMin = viper.GetInt("chat.rate_limit_per_min")

	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("environment.timezone", "Asia/Ho_Chi_Minh")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("data_service.driver", DriverRPC)
	viper.SetDefault("data_service.timeout", "15s")
	viper.SetDefault("postgres.max_connections", 10)
	viper.SetDefault("postgres.max_idle", 5)
	viper.SetDefault("postgres.migrate", true)
	viper.SetDefault("redis.ttl", "5m")

	viper.SetDefault("chat.rate_limit_per_min", 60)
}

func (c *Config) validate() error {
	if c.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive, got %d", c.HTTPServer.Port)
	}
	switch c.DataService.Driver {
	case DriverRPC:
		if c.DataService.Endpoint == "" {
			return errors.New("data_service.endpoint is required for the rpc driver")
		}
		if c.DataService.OAuth2.ClientID != "" && c.DataService.OAuth2.TokenURL == "" {
			return errors.New("data_service.oauth2.token_url is required with a client_id")
		}
	case DriverPostgres:
		if c.Postgres.DSN == "" {
			return errors.New("postgres.dsn is required for the postgres driver")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown data_service.driver %q", c.DataService.Driver)
	}
	if c.Chat.RateLimitPerMin < 0 {
		return errors.New("chat.rate_limit_per_min must not be negative")
	}
	return nil
}

// splitList splits a comma separated value, since env overrides arrive as one string.
func splitList(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
