package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/dctopo/logging"
)

func TestNew(t *testing.T) {
	cases := []struct {
		level string
		want  zapcore.Level
	}{
		{"", zapcore.InfoLevel},
		{"debug", zapcore.DebugLevel},
		{"WARN", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
	}
	for _, tc := range cases {
		for _, dev := range []bool{false, true} {
			l, err := logging.New(tc.level, dev)
			require.NoError(t, err, tc.level)
			assert.True(t, l.Core().Enabled(tc.want), tc.level)
			if tc.want > zapcore.DebugLevel {
				assert.False(t, l.Core().Enabled(tc.want-1), tc.level)
			}
		}
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := logging.New("loud", false)
	assert.Error(t, err)
}
