package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	PreferencesRedis  = "redis"
	PreferencesMemory = "memory"

	DocumentStoreFirestore = "firestore"
	DocumentStoreMemory    = "memory"

	NotificationKeyUUID      = "uuid"
	NotificationKeyTimestamp = "timestamp"
)

type Config struct {
	ServerPort     string   `env:"SERVER_PORT" env-default:"8080"`
	Environment    string   `env:"ENVIRONMENT" env-default:"development"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" env-separator:","`

	FirebaseProject            string `env:"FIREBASE_PROJECT_ID"`
	FirebaseApiKey             string `env:"FIREBASE_API_KEY"`
	FirebaseServiceAccountJSON string `env:"FIREBASE_SERVICE_ACCOUNT_JSON"`
	FirebaseServiceAccountPath string `env:"FIREBASE_SERVICE_ACCOUNT_PATH"`
	IdentityToolkitURL         string `env:"IDENTITY_TOOLKIT_URL" env-default:"https://identitytoolkit.googleapis.com/v1"`

	DocumentStore string `env:"DOCUMENT_STORE" env-default:"firestore"`

	GeocoderURL     string        `env:"GEOCODER_URL" env-default:"https://api.opencagedata.com/geocode/v1/json"`
	GeocoderApiKey  string        `env:"GEOCODER_API_KEY"`
	GeocoderTimeout time.Duration `env:"GEOCODER_TIMEOUT" env-default:"10s"`

	PreferencesBackend string `env:"PREFERENCES_BACKEND" env-default:"redis"`
	RedisAddr          string `env:"REDIS_ADDR" env-default:"localhost:6379"`
	RedisPassword      string `env:"REDIS_PASSWORD"`
	RedisDB            int    `env:"REDIS_DB" env-default:"0"`

	KafkaBrokers           []string `env:"KAFKA_BROKERS" env-separator:","`
	KafkaNotificationTopic string   `env:"KAFKA_NOTIFICATION_TOPIC" env-default:"gig-decisions"`

	NotificationKeyMode string `env:"NOTIFICATION_KEY_MODE" env-default:"uuid"`

	OtelEndpoint    string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OtelServiceName string `env:"OTEL_SERVICE_NAME" env-default:"gigmarket"`

	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" env-default:"10"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" env-default:"20"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.PreferencesBackend {
	case PreferencesRedis, PreferencesMemory:
	default:
		return fmt.Errorf("unknown PREFERENCES_BACKEND %q", c.PreferencesBackend)
	}

	switch c.DocumentStore {
	case DocumentStoreFirestore, DocumentStoreMemory:
	default:
		return fmt.Errorf("unknown DOCUMENT_STORE %q", c.DocumentStore)
	}

	switch c.NotificationKeyMode {
	case NotificationKeyUUID, NotificationKeyTimestamp:
	default:
		return fmt.Errorf("unknown NOTIFICATION_KEY_MODE %q", c.NotificationKeyMode)
	}

	if !c.IsDevelopment() && strings.TrimSpace(c.FirebaseProject) == "" {
		return fmt.Errorf("FIREBASE_PROJECT_ID is required outside development")
	}

	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) KafkaEnabled() bool {
	return len(c.KafkaBrokers) > 0 && c.KafkaBrokers[0] != ""
}
