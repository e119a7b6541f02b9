package request_id_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gohabits/pkg/logger"
)

func requestIDTestLogger(t *testing.T) *logger.Logger {
	t.Helper()

	log, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)

	return log
}

func TestWithRequestID(t *testing.T) {
	t.Run("derives a new logger when the context carries an id", func(t *testing.T) {
		base := requestIDTestLogger(t)
		ctx := logger.NewRequestIDContext(context.Background(), "habits-req-3")

		derived := base.WithRequestID(ctx)

		assert.NotSame(t, base, derived, "a context with an id should produce a derived logger")
		assert.NotPanics(t, func() {
			derived.Info(ctx, "habit stored")
		})
	})

	t.Run("returns the receiver when the context has no id", func(t *testing.T) {
		base := requestIDTestLogger(t)

		derived := base.WithRequestID(context.Background())

		assert.Same(t, base, derived, "no request id means no new logger")
	})

	t.Run("keeps previously attached fields", func(t *testing.T) {
		base := requestIDTestLogger(t).With(zap.String("component", "habits"))
		ctx := logger.NewRequestIDContext(context.Background(), "habits-req-4")

		derived := base.WithRequestID(ctx)

		assert.NotSame(t, base, derived)
		assert.NotPanics(t, func() {
			derived.Info(ctx, "habit merged")
		})
	})
}
