// SPDX-License-Identifier: MIT

package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_JSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "info", FormatJSON)
	require.NoError(t, err)

	log.Debug().Msg("hidden")
	log.Info().Int("n", 3).Msg("shown")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	require.Equal(t, "shown", entry["message"])
	require.Equal(t, "info", entry["level"])
	require.Equal(t, "matcalc", entry["component"])
	require.EqualValues(t, 3, entry["n"])
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "debug", FormatConsole)
	require.NoError(t, err)
	log.Debug().Msg("hello")
	require.Contains(t, buf.String(), "hello")
	require.Contains(t, buf.String(), "DBG")
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "loud", FormatJSON)
	require.Error(t, err)
}

func TestFallback_WarnOnly(t *testing.T) {
	var buf bytes.Buffer
	log := Fallback(&buf)
	log.Info().Msg("quiet")
	require.Empty(t, buf.String())
	log.Warn().Msg("loud")
	require.Contains(t, buf.String(), "loud")
}
