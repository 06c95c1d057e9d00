package config

import (
	"github.com/kelseyhightower/envconfig"
)

// App holds all runtime configuration, loaded from the environment.
type App struct {
	// Database
	DBHost     string `envconfig:"DB_HOST" required:"true"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" required:"true"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME" required:"true"`

	// HTTP
	ServerPort     string   `envconfig:"SERVER_PORT" default:"5000"`
	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

// Load populates an App from environment variables.
func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
