package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		level    int
		wantJSON bool
	}{
		{name: "production uses json", env: "production", level: 0, wantJSON: true},
		{name: "prod alias", env: "prod", level: 0, wantJSON: true},
		{name: "development uses text", env: "development", level: -4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.env, tt.level)
			require.NotNil(t, l)

			_, isJSON := l.Handler().(*slog.JSONHandler)
			assert.Equal(t, tt.wantJSON, isJSON)
			assert.True(t, l.Enabled(context.Background(), slog.Level(tt.level)))
			assert.False(t, l.Enabled(context.Background(), slog.Level(tt.level-1)))
		})
	}
}

func TestNop(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
	l.Info("discarded", "key", "value")
}
