package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

const (
	envDevelopment = "development"

	// Fallback used when no explicit base URL override is configured and the
	// server runs outside development mode. Photo links are built against it.
	productionBaseURL = "https://vendroo-server.onrender.com"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV" default:"development"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT" default:"8080"`
		Host     string `envconfig:"HOST" default:"0.0.0.0"`
		Shutdown struct {
			GracePeriodSeconds int64 `envconfig:"GRACE_PERIOD_SECONDS" default:"10"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name    string `envconfig:"APP_NAME" default:"vendroo-server"`
		BaseURL string `envconfig:"BASE_URL"`
		CORS    struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS" default:"Accept,Content-Type,X-Request-ID"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS" default:"GET,POST,PUT,DELETE,OPTIONS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS" default:"*"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS" default:"300"`
		} `envconfig:"CORS"`
	} `envconfig:"APP"`

	Upload struct {
		Dir     string `envconfig:"DIR" default:"uploads"`
		URLPath string `envconfig:"URL_PATH" default:"/uploads"`
	} `envconfig:"UPLOAD"`

	DB struct {
		Postgres struct {
			URL            string `envconfig:"URL"`
			Host           string `envconfig:"HOST" default:"localhost"`
			Port           string `envconfig:"PORT" default:"5432"`
			Username       string `envconfig:"USER" default:"postgres"`
			Password       string `envconfig:"PASSWORD"`
			Name           string `envconfig:"NAME" default:"vendroo"`
			SSLMode        string `envconfig:"SSL_MODE"`
			MaxRetry       int    `envconfig:"MAX_RETRY" default:"3"`
			RetryWaitTime  int    `envconfig:"RETRY_WAIT_TIME" default:"5"`
			MigrationTable string `envconfig:"MIGRATION_TABLE" default:"schema_migrations"`
			AutoMigrate    bool   `envconfig:"AUTO_MIGRATE" default:"true"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	}
}

// PublicBaseURL resolves the externally visible base URL used when building
// photo links: explicit override first, the production fallback outside
// development, localhost with the listening port otherwise.
func (c *Config) PublicBaseURL() string {
	if c.App.BaseURL != "" {
		return c.App.BaseURL
	}

	if c.Server.Env != envDevelopment {
		return productionBaseURL
	}

	return "http://localhost:" + c.Server.Port
}

// PostgresSSLMode resolves the connection TLS requirement: whatever the
// environment says, falling back to disable in development and require
// everywhere else.
func (c *Config) PostgresSSLMode() string {
	if c.DB.Postgres.SSLMode != "" {
		return c.DB.Postgres.SSLMode
	}

	if c.Server.Env == envDevelopment {
		return "disable"
	}

	return "require"
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		initialized = true

		log.Info().Msg("Service configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("loading .env file: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}
