package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/surrealdb/surrealdb.go"

	"github.com/impacto/site/internal/config"
	"github.com/impacto/site/internal/domain"
	"github.com/impacto/site/internal/testutils"
)

// setupTestDB connects to the SurrealDB named by SURREAL_URL, skipping the
// test when none is configured.
func setupTestDB(t *testing.T) *surrealdb.DB {
	t.Helper()
	testutils.RequireSurreal(t)

	ctx := context.Background()
	db, err := NewDB(ctx, config.FromEnv())
	require.NoError(t, err, "failed to connect to test database")

	cleanup := func() {
		_, _ = surrealdb.Query[any](context.Background(), db, "DELETE lead; DELETE counter:lead;", nil)
	}
	cleanup()
	t.Cleanup(func() {
		cleanup()
		db.Close(context.Background())
	})
	return db
}

func TestSurrealLeadStore(t *testing.T) {
	store := NewSurrealLeadStore(setupTestDB(t))
	ctx := context.Background()

	first, err := store.Create(ctx, &domain.Lead{Nombre: "Ana", Email: "ana@example.com"})
	require.NoError(t, err)
	assert.Equal(t, 1, first.ID)

	second, err := store.Create(ctx, &domain.Lead{Nombre: "Luis", Email: "luis@example.com"})
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)

	_, err = store.Create(ctx, &domain.Lead{Nombre: "Bad", Email: "nope"})
	assert.ErrorIs(t, err, domain.ErrInvalidLead)

	all, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Ana", all[0].Nombre)
	assert.Equal(t, "Luis", all[1].Nombre)
}
