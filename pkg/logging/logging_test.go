package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"TRACE", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"Info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{" error ", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestSetup_WritesConsoleAndFile(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	var console, file bytes.Buffer
	logger := Setup(&console, &file, "info")

	logger.Info().Str("vehicle", "player").Msg("Mode changed")
	logger.Debug().Msg("hidden")

	assert.Contains(t, console.String(), "Mode changed")
	assert.Contains(t, file.String(), "Mode changed")
	assert.Contains(t, file.String(), "vehicle=player")
	assert.NotContains(t, console.String(), "hidden")
	// File copy is uncoloured
	assert.NotContains(t, file.String(), "\x1b[")
}

func TestSetup_ConsoleOnly(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	var console bytes.Buffer
	logger := Setup(&console, nil, "debug")

	logger.Debug().Msg("step")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	assert.Contains(t, console.String(), "step")
}
