// config.go - Handles configuration for the project

package config // Declares the package name

import ( // Import required packages
	"fmt"
	"time"

	"github.com/caarlos0/env/v11" // Struct-tag driven environment parsing
	"github.com/joho/godotenv"    // Optional .env file support
)

type Config struct { // Config struct holds all configuration values
	Addr          string        `env:"ADDR" envDefault:":8080"`           // HTTP listen address
	DBDriver      string        `env:"DB_DRIVER" envDefault:"sqlite"`     // "sqlite" or "postgres"
	DatabaseURL   string        `env:"DATABASE_URL" envDefault:"data.db"` // SQLite file path or postgres DSN
	SecretKey     string        `env:"SECRET_KEY"`                        // Session signing key
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"168h"`     // Lifetime of a login session
	SecureCookies bool          `env:"SECURE_COOKIES" envDefault:"false"` // Secure flag on cookies

	RedisAddr     string `env:"REDIS_ADDR"` // When set, sessions are tracked in redis
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	MQTTBroker         string        `env:"MQTT_BROKER"` // When set, domain events are published here
	MQTTClientID       string        `env:"MQTT_CLIENT_ID" envDefault:"tour-booking"`
	MQTTTopicPrefix    string        `env:"MQTT_TOPIC_PREFIX" envDefault:"tours"`
	MQTTPublishTimeout time.Duration `env:"MQTT_PUBLISH_TIMEOUT" envDefault:"500ms"` // Max wait for a broker ack per event

	CreateAdmin   bool   `env:"CREATE_ADMIN" envDefault:"false"` // Bootstrap an admin account on start
	AdminEmail    string `env:"ADMIN_EMAIL" envDefault:"admin@example.com"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	SeedTours   bool   `env:"SEED_TOURS" envDefault:"true"` // Load the bundled catalogue into an empty DB
	DefaultLang string `env:"DEFAULT_LANG" envDefault:"uk"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"` // "json" or "console"
}

// Load reads an optional .env file, then parses the environment into a Config.
func Load() (*Config, error) {
	_ = godotenv.Load() // A missing .env file is fine, plain env vars still apply

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.CreateAdmin && c.AdminPassword == "" {
		return fmt.Errorf("CREATE_ADMIN requires ADMIN_PASSWORD")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	return nil
}
