package postgres_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gohabits/pkg/db/postgres"
)

func TestDatabasePing(t *testing.T) {
	ctx := testLoggerContext(t)

	t.Run("ping succeeds on a live connection", func(t *testing.T) {
		database, err := postgres.New(ctx, habitsDSN, 1, 2)
		if err != nil {
			t.Skip(skipMsgNoPostgres)
		}
		defer database.Close(ctx)

		assert.NoError(t, database.Ping(ctx))
	})

	t.Run("construction fails for unreachable database", func(t *testing.T) {
		database, err := postgres.New(ctx, unreachableDSN, 1, 2)

		require.Error(t, err)
		assert.Nil(t, database, msgDatabaseNilOnError)
	})

	t.Run("ping fails after the pool is closed", func(t *testing.T) {
		database, err := postgres.New(ctx, habitsDSN, 1, 2)
		if err != nil {
			t.Skip(skipMsgNoPostgres)
		}

		require.NoError(t, database.Ping(ctx))

		database.Close(ctx)

		assert.Error(t, database.Ping(ctx))
	})
}
