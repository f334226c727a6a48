package di

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"medialib-backend/infrastructure/config"
)

func TestProvideLogger(t *testing.T) {
	t.Run("applies configured level", func(t *testing.T) {
		logger, err := ProvideLogger(&config.Config{Environment: "production", LogLevel: "debug"})
		require.NoError(t, err)
		defer logger.Sync()

		assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("default info level filters debug", func(t *testing.T) {
		logger, err := ProvideLogger(&config.Config{Environment: "development", LogLevel: "info"})
		require.NoError(t, err)
		defer logger.Sync()

		assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
		assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
	})

	t.Run("invalid level is rejected", func(t *testing.T) {
		_, err := ProvideLogger(&config.Config{Environment: "development", LogLevel: "loud"})
		assert.Error(t, err)
	})
}
