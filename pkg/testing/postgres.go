package testing

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/2beens/exerciselog/internal/db"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// GetDBPool connects to the postgres at POSTGRES_HOST/POSTGRES_PORT and makes sure the schema exists.
// The pool is closed when the test ends.
func GetDBPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	connString := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		envOrDefault("POSTGRES_USER", "postgres"),
		envOrDefault("POSTGRES_PASSWORD", "postgres"),
		envOrDefault("POSTGRES_HOST", "localhost"),
		envOrDefault("POSTGRES_PORT", "5432"),
		envOrDefault("POSTGRES_DB", "exercise_log"),
	)
	t.Logf("using postgres host: %s", envOrDefault("POSTGRES_HOST", "localhost"))

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		ConnString: connString,
	})
	require.NoError(t, err)
	t.Cleanup(dbPool.Close)

	require.NoError(t, db.CheckConnection(ctx, dbPool))
	require.NoError(t, db.Migrate(ctx, dbPool))

	return dbPool
}
