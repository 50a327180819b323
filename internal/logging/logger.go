// SPDX-License-Identifier: MIT

// Package logging builds the zerolog logger used by the matcalc front-end.
// The matrix library itself never logs.
package logging

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// Output formats accepted by New.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// New returns a logger writing to w at the given level.
// format is FormatConsole (human-readable, no colors) or FormatJSON (one object per line).
func New(w io.Writer, level, format string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("log level %q: %w", level, err)
	}

	out := w
	if format == FormatConsole {
		out = zerolog.ConsoleWriter{Out: w, NoColor: true}
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Str("component", "matcalc").Logger(), nil
}

// Fallback is the logger used before configuration is available.
func Fallback(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).Level(zerolog.WarnLevel).With().Timestamp().Logger()
}
