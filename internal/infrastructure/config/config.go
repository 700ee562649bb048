package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret signs the informational identity assertions.
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=24h"`

	// AdminKeyHash is the bcrypt hash admin-creation requests are verified
	// against. Generate one with cmd/adminkey. Empty disables admin creation.
	AdminKeyHash string `env:"ADMIN_KEY_HASH"`

	// AuditWorkers sizes the audit dispatcher worker pool.
	AuditWorkers int `env:"AUDIT_WORKERS, default=4"`

	// ProfileFetchDelay overrides the simulated remote lookup delay.
	ProfileFetchDelay time.Duration `env:"PROFILE_FETCH_DELAY, default=100ms"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=identity"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,  default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
