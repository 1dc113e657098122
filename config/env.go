// Package config loads settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Prefix is prepended to every environment variable the tools read.
const Prefix = "AOC_"

// ParseEnv loads configuration from environment variables into target.
// The variable names of target's env tags are prefixed with Prefix+section.
func ParseEnv(target any, section string) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: Prefix + section}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadDotEnv loads variables from the given files, or from .env when none
// are given. Variables already set in the environment win. Missing files
// are not an error; the returned bool reports whether anything was loaded.
func LoadDotEnv(filenames ...string) (bool, error) {
	if err := godotenv.Load(filenames...); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("load dotenv: %w", err)
	}
	return true, nil
}
