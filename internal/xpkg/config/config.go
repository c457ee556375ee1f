package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

type Config struct {
	HTTP  HTTP
	DB    Postgres
	RMQ   RabbitMQ
	Admin Admin
}

type HTTP struct {
	Port int `envconfig:"HTTP_PORT" default:"3000"`
}

type Postgres struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`
	Database string `envconfig:"DB_NAME" default:"resto_admin"`
}

type RabbitMQ struct {
	Host     string `envconfig:"RMQ_HOST" default:"localhost"`
	Port     string `envconfig:"RMQ_PORT" default:"5672"`
	User     string `envconfig:"RMQ_USER" default:"guest"`
	Password string `envconfig:"RMQ_PASSWORD" default:"guest"`
	VHost    string `envconfig:"RMQ_VHOST" default:"/"`
}

type Admin struct {
	Username   string `envconfig:"ADMIN_USERNAME" default:"admin"`
	Password   string `envconfig:"ADMIN_PASSWORD" required:"true"`
	SessionTTL int    `envconfig:"SESSION_TTL_MINUTES" default:"720"`
}

// Load reads configuration from the environment, with an optional .env file
// for local development. A missing .env file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, errors.Wrap(err, "process environment config")
	}
	return cfg, nil
}
