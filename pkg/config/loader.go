package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var loadDotenv sync.Once

// Load parses environment variables into the provided configuration struct
// based on `env` field tags. A .env file in the working directory is loaded
// once per process before the first parse; its absence is not an error.
//
// Example:
//
//	type StoreConfig struct {
//		DataDir string `env:"DATA_DIR" envDefault:"assets/data"`
//	}
//
//	var cfg StoreConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
func Load[T any](v *T) error {
	loadDotenv.Do(func() {
		// The .env file is a development convenience; missing is fine.
		_ = godotenv.Load()
	})

	if v == nil {
		return ErrNilPointer
	}
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics on failure. Used for configuration the
// server cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
