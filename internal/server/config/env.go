package config

import (
	"github.com/caarlos0/env/v11"
)

// parseEnv overlays environment variables onto the Config using the struct
// `env` tags (ADDRESS, DATABASE_URL, RESUME_URL). Unset variables leave the
// current values untouched.
func parseEnv(config *Config) {
	if err := env.Parse(config); err != nil {
		panic(err)
	}
}
