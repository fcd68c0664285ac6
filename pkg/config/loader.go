package config

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Engine holds the form engine's own configuration.
type Engine struct {
	SuccessMessage  string        `env:"FORM_SUCCESS_MESSAGE" envDefault:"Form submitted successfully!"`
	SuccessDuration time.Duration `env:"FORM_SUCCESS_DURATION" envDefault:"3s"` // How long the success banner stays visible.
	HistoryCapacity int           `env:"FORM_HISTORY_CAPACITY" envDefault:"10"` // Submissions retained per form.
}

var defaultEnvLoaded sync.Once

// Load parses environment variables into the provided configuration struct
// based on its `env` field tags. The default .env file is loaded once, if
// present, before the first parse.
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional.
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

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
