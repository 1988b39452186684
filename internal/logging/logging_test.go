package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewParsesLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		level string
		want  zerolog.Level
	}{
		{name: "debug", level: "debug", want: zerolog.DebugLevel},
		{name: "upper case warn", level: "WARN", want: zerolog.WarnLevel},
		{name: "empty falls back to info", level: "", want: zerolog.InfoLevel},
		{name: "garbage falls back to info", level: "loud", want: zerolog.InfoLevel},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, New(&bytes.Buffer{}, tc.level).GetLevel())
		})
	}
}

func TestComponentTagsOutput(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	logger := Component(New(&out, "info"), "session")
	logger.Info().Msg("hello")

	assert.Contains(t, out.String(), "component=session")
	assert.Contains(t, out.String(), "hello")
}
