// Package config loads process configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnv fills the env-tagged fields of target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ParseEnvFrom is ParseEnv with an explicit environment, for tests.
func ParseEnvFrom(target any, environment map[string]string) error {
	if err := env.ParseWithOptions(target, env.Options{Environment: environment}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
