package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestLevelFromEnv(t *testing.T) {
	cases := []struct {
		value string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"DEBUG", zapcore.DebugLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"verbose", zapcore.InfoLevel},
	}

	for _, tc := range cases {
		t.Run("LOG_LEVEL="+tc.value, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", tc.value)
			assert.Equal(t, tc.want, levelFromEnv())
		})
	}
}
