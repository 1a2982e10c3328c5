package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"todo-manager/internal/model"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Todo specifics
	Storage StorageConfig
	Todo    TodoConfig
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

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
}

// StorageConfig selects the key-value store behind the task list.
// Driver "none" runs the service in ephemeral (memory only) mode.
type StorageConfig struct {
	Driver      string
	PingTimeout time.Duration
	Redis       RedisConfig
	Postgres    PostgresConfig
}

type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

type PostgresConfig struct {
	DSN   string
	Table string
}

type TodoConfig struct {
	Users           []string      // assignees offered in the user selector
	NotificationTTL time.Duration // lifetime of the "added successfully" message
}

// Load loads configuration using Viper.
// A .env file in the working directory is applied to the environment first.
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
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	// Storage
	cfg.Storage.Driver = strings.ToLower(viper.GetString("storage.driver"))
	cfg.Storage.PingTimeout = viper.GetDuration("storage.ping_timeout")
	cfg.Storage.Redis.Addr = viper.GetString("storage.redis.addr")
	cfg.Storage.Redis.Password = viper.GetString("storage.redis.password")
	cfg.Storage.Redis.DB = viper.GetInt("storage.redis.db")
	cfg.Storage.Redis.KeyPrefix = viper.GetString("storage.redis.key_prefix")
	if redisAddr := viper.GetString("redis_addr"); redisAddr != "" {
		cfg.Storage.Redis.Addr = redisAddr
	}
	cfg.Storage.Postgres.DSN = viper.GetString("storage.postgres.dsn")
	cfg.Storage.Postgres.Table = viper.GetString("storage.postgres.table")
	if dsn := viper.GetString("postgres_dsn"); dsn != "" {
		cfg.Storage.Postgres.DSN = dsn
	}

	// Todo
	cfg.Todo.Users = splitList(viper.GetStringSlice("todo.users"))
	cfg.Todo.NotificationTTL = viper.GetDuration("todo.notification_ttl")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", string(model.EnvironmentDevelopment))
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 120)

	viper.SetDefault("storage.driver", "redis")
	viper.SetDefault("storage.ping_timeout", "2s")
	viper.SetDefault("storage.redis.addr", "localhost:6379")
	viper.SetDefault("storage.redis.db", 0)
	viper.SetDefault("storage.postgres.table", "kv_slots")

	viper.SetDefault("todo.users", []string{"alice", "bob", "carol", "dave"})
	viper.SetDefault("todo.notification_ttl", "3s")
}

// validate checks the settings the service cannot start without.
func validate(cfg *Config) error {
	if len(cfg.Todo.Users) == 0 {
		return fmt.Errorf("no assignees configured - please add todo.users to config.yaml")
	}
	seen := make(map[string]bool, len(cfg.Todo.Users))
	for _, u := range cfg.Todo.Users {
		if seen[u] {
			return fmt.Errorf("duplicate assignee %q in todo.users", u)
		}
		seen[u] = true
	}
	if cfg.Todo.NotificationTTL <= 0 {
		return fmt.Errorf("todo.notification_ttl must be positive")
	}
	return nil
}

// splitList flattens entries so that both YAML lists and comma separated env
// values (TODO_USERS=alice,bob) produce one trimmed item per name.
func splitList(raw []string) []string {
	var out []string
	for _, entry := range raw {
		for _, item := range strings.Split(entry, ",") {
			item = strings.TrimSpace(item)
			if item != "" {
				out = append(out, item)
			}
		}
	}
	return out
}
