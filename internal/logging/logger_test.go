package logging

import (
	"bytes"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

func TestInitJSONAndLevel(t *testing.T) {
	t.Cleanup(func() { Init(Config{}) })

	var buf bytes.Buffer
	Init(Config{Level: "warn", Format: "json", Output: &buf})

	Info().Msg("hidden")
	require.Zero(t, buf.Len())

	Warn().Str("address", "Addr").Msg("geocode failed")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "warn", entry["level"])
	require.Equal(t, "Addr", entry["address"])
	require.Equal(t, "geocode failed", entry["message"])
}

func TestInitConsole(t *testing.T) {
	t.Cleanup(func() { Init(Config{}) })

	var buf bytes.Buffer
	Init(Config{Level: "debug", Format: "console", Output: &buf})
	Debug().Msg("hello")
	require.Contains(t, buf.String(), "hello")
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, "info", parseLevel("").String())
	require.Equal(t, "info", parseLevel("nonsense").String())
	require.Equal(t, "error", parseLevel("ERROR").String())
	require.Equal(t, "warn", parseLevel("warning").String())
}
