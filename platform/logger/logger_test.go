package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	t.Run("unknown level", func(t *testing.T) {
		err := Init("loud", false)
		require.Error(t, err)
		assert.ErrorContains(t, err, "logger.Init")
	})

	t.Run("console and json", func(t *testing.T) {
		require.NoError(t, Init("debug", false))
		require.NoError(t, Init("warn", true))

		ctx := WithSessionID(context.Background(), "session-1")
		assert.NotPanics(t, func() {
			Info(ctx, "hello", String("k", "v"))
			With(Int("n", 1)).Error(ctx, "boom")
			L().Debug(context.Background(), "quiet")
		})
	})
}
