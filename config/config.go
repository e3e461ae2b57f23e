package config

import (
	"fmt"
	"sync"
	"todos/shared/constant"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT" default:"4567"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name    string `envconfig:"APP_NAME" default:"todos"`
		Storage string `envconfig:"STORAGE" default:"session"`
		Session struct {
			CookieName string `envconfig:"COOKIE_NAME" default:"todo_session"`
			TTLSeconds int    `envconfig:"TTL_SECONDS" default:"86400"`
			Secure     bool   `envconfig:"SECURE"`
		} `envconfig:"SESSION"`
		CORS struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS"`
		} `envconfig:"RATE_LIMITER"`
	} `envconfig:"APP"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST" default:"localhost"`
				Port     string `envconfig:"PORT" default:"6379"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
	} `envconfig:"CACHE"`

	DB struct {
		Postgres struct {
			// URL wins over the discrete fields below when set.
			URL           string `envconfig:"URL"`
			Name          string `envconfig:"NAME" default:"todos"`
			Host          string `envconfig:"HOST" default:"localhost"`
			Port          string `envconfig:"PORT" default:"5432"`
			Username      string `envconfig:"USER"`
			Password      string `envconfig:"PASSWORD"`
			SSLMode       string `envconfig:"SSL_MODE" default:"disable"`
			MaxRetry      int    `envconfig:"MAX_RETRY" default:"3"`
			RetryWaitTime int    `envconfig:"RETRY_WAIT_TIME" default:"2"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	} `envconfig:"EXTERNAL"`
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

// Init loads .env when present, then reads the environment into the process-wide Config.
// A missing .env file is not an error.
func Init() error {
	var err error

	once.Do(func() {
		if loadErr := godotenv.Load(".env"); loadErr != nil {
			log.Warn().Err(loadErr).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		if err = envconfig.Process("", &conf); err != nil {
			err = fmt.Errorf("processing environment variables: %w", err)

			return
		}

		if err = conf.validate(); err != nil {
			return
		}

		initialized = true

		log.Info().Str("storage", conf.App.Storage).Msg("Service configuration initialized successfully")
	})

	return err
}

func (c *Config) validate() error {
	switch c.App.Storage {
	case constant.StorageBackendSession, constant.StorageBackendDatabase:
	default:
		return fmt.Errorf("unknown storage backend %q", c.App.Storage)
	}

	if c.App.Storage == constant.StorageBackendSession && c.App.Session.TTLSeconds <= 0 {
		return fmt.Errorf("session ttl must be positive, got %d", c.App.Session.TTLSeconds)
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
