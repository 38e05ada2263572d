package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "FREEMAN"

	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvAppEnv        = "FREEMAN_APP_ENV"
	EnvPort          = "FREEMAN_APP_PORT"
	EnvRedisURL      = "FREEMAN_REDIS_URL"
	EnvGeocodeAPIKey = "FREEMAN_GEOCODING_API_KEY"
	EnvWhatsAppPhone = "FREEMAN_WHATSAPP_PHONE"
)

type Config struct {
	App       AppConfig
	Redis     RedisConfig
	Geocoding GeocodingConfig
	Delivery  DeliveryConfig
	WhatsApp  WhatsAppConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"FREEMAN_APP_ENV" required:"true"`
	Port         string `envconfig:"FREEMAN_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"FREEMAN_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"FREEMAN_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type RedisConfig struct {
	URL          string        `envconfig:"FREEMAN_REDIS_URL" required:"true"`
	Address      string        `envconfig:"FREEMAN_REDIS_ADDR"`
	Password     string        `envconfig:"FREEMAN_REDIS_PASSWORD"`
	DB           int           `envconfig:"FREEMAN_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"FREEMAN_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"FREEMAN_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"FREEMAN_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"FREEMAN_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"FREEMAN_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// GeocodingConfig holds the credential for the Google Geocoding API. An empty
// key is tolerated at startup; delivery quotes report it as missing input.
type GeocodingConfig struct {
	APIKey  string `envconfig:"FREEMAN_GEOCODING_API_KEY"`
	BaseURL string `envconfig:"FREEMAN_GEOCODING_BASE_URL"`
}

// DeliveryConfig pins the shop's origin address used for distance quotes.
type DeliveryConfig struct {
	OriginAddress string `envconfig:"FREEMAN_DELIVERY_ORIGIN" default:"San Alberto 1336, Barrio San Vicente, Córdoba, Argentina"`
}

type WhatsAppConfig struct {
	Phone string `envconfig:"FREEMAN_WHATSAPP_PHONE" default:"5491112345678"`
}
