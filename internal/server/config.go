package server

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds server settings, parsed from the environment.
type Config struct {
	Addr string `env:"FOLIOPRESS_ADDR" envDefault:":8080"`

	// Backend selects the catalog store: memory, file, mongo, postgres
	// or redis.
	Backend string `env:"FOLIOPRESS_STORE" envDefault:"memory"`

	// FileDir is the catalog directory for the file backend. Empty uses
	// the per-user default.
	FileDir string `env:"FOLIOPRESS_FILE_DIR"`

	MongoURI    string `env:"FOLIOPRESS_MONGO_URI" envDefault:"mongodb://localhost:27017"`
	PostgresDSN string `env:"FOLIOPRESS_POSTGRES_DSN"`

	RedisAddr     string        `env:"FOLIOPRESS_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string        `env:"FOLIOPRESS_REDIS_PASSWORD"`
	RedisDB       int           `env:"FOLIOPRESS_REDIS_DB" envDefault:"0"`
	RedisTTL      time.Duration `env:"FOLIOPRESS_REDIS_TTL" envDefault:"0"`

	// TemplateDir holds extra TOML templates merged over the built-ins.
	TemplateDir string `env:"FOLIOPRESS_TEMPLATE_DIR"`

	ShutdownTimeout time.Duration `env:"FOLIOPRESS_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// LoadConfig parses the configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
