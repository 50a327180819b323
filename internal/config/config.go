// SPDX-License-Identifier: MIT

// Package config loads matcalc settings from the environment.
//
// Every field has a documented default; flags on the command line override
// whatever the environment provides (see internal/cli).
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/cofactor/internal/logging"
	"github.com/katalvlaran/cofactor/matrix"
)

// ErrInvalidConfig marks a setting that parsed but is out of bounds.
var ErrInvalidConfig = errors.New("config: invalid value")

// Log output formats, shared with internal/logging.
const (
	FormatConsole = logging.FormatConsole
	FormatJSON    = logging.FormatJSON
)

// Config is the effective matcalc configuration.
// Bounds are enforced by Validate through the validate tags.
type Config struct {
	LogLevel  string  `env:"MATCALC_LOG_LEVEL"  envDefault:"warn"`
	LogFormat string  `env:"MATCALC_LOG_FORMAT" envDefault:"console" validate:"oneof=console json"`
	MaxOrder  int     `env:"MATCALC_MAX_ORDER"  envDefault:"10"      validate:"min=1,max=16"`
	Epsilon   float64 `env:"MATCALC_EPSILON"    envDefault:"0"       validate:"finite,gte=0"`
	// Precision is the number of decimals printed; -1 prints the shortest
	// representation that round-trips.
	Precision int `env:"MATCALC_PRECISION" envDefault:"-1" validate:"gte=-1"`
}

// validate is safe for concurrent use; tag rules are cached per struct type.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// finite rejects NaN and ±Inf.
	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	})

	return v
}

// Load parses the process environment. Values are not bounds-checked here:
// callers merge command-line overrides first and then call Validate.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

// LoadFrom parses an explicit environment map instead of the process one.
// Like Load, it does not call Validate.
func LoadFrom(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

// Validate checks every field against its validate tag. The first failing
// field is reported, wrapped with ErrInvalidConfig.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var fes validator.ValidationErrors
	if errors.As(err, &fes) && len(fes) > 0 {
		fe := fes[0]
		return fmt.Errorf("%s=%v fails %q: %w", fe.Field(), fe.Value(), fe.ActualTag(), ErrInvalidConfig)
	}

	return fmt.Errorf("validate: %v: %w", err, ErrInvalidConfig)
}

// MatrixOptions maps the configuration onto the library's functional options.
// Call only on a validated Config; the option constructors panic otherwise.
func (c Config) MatrixOptions() []matrix.Option {
	return []matrix.Option{
		matrix.WithMaxOrder(c.MaxOrder),
		matrix.WithEpsilon(c.Epsilon),
	}
}
