// Package config loads runtime configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

// Config holds the server's runtime settings.
//
// The image API token may be empty; a missing credential surfaces when
// generate_image is invoked, not at startup.
type Config struct {
	// LogLevel controls stderr logging: debug, info, warn or error.
	LogLevel string `env:"TOOLBOX_MCP_LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`

	// DefaultTimezone is used by current_time when no timezone argument
	// is supplied.
	DefaultTimezone string `env:"TOOLBOX_MCP_DEFAULT_TIMEZONE" envDefault:"UTC" validate:"required"`

	// ImageAPIURL is the image-generation backend endpoint.
	ImageAPIURL string `env:"IMAGE_API_URL" envDefault:"https://api-inference.huggingface.co/models/stabilityai/stable-diffusion-xl-base-1.0" validate:"url"`

	// ImageAPIToken authenticates against the image backend.
	ImageAPIToken string `env:"IMAGE_API_TOKEN"`

	// ImageTimeout bounds a single image-generation call.
	ImageTimeout time.Duration `env:"IMAGE_API_TIMEOUT" envDefault:"60s" validate:"min=1s,max=10m"`
}

// validate caches struct metadata across Load calls.
var validate = validator.New()

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}
