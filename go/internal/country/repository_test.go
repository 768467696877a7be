package country

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcdev12/footballdb/go/internal/database/dbtest"
	"github.com/mcdev12/footballdb/go/internal/sqlutil"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	return NewRepository(dbtest.New(t), clockwork.NewFakeClockAt(testNow))
}

func TestRepository_CRUD(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, CreateCountryRequest{Name: "Brazil"})
	require.NoError(t, err)
	assert.Positive(t, created.ID)
	assert.Equal(t, "Brazil", created.Name)
	assert.True(t, testNow.Equal(created.CreatedAt))

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	byName, err := repo.GetByName(ctx, "Brazil")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)

	name := "Brasil"
	updated, err := repo.Update(ctx, created.ID, UpdateCountryRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Brasil", updated.Name)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	deleted, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestRepository_Absent(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	got, err := repo.Get(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, got)

	byName, err := repo.GetByName(ctx, "Atlantis")
	require.NoError(t, err)
	assert.Nil(t, byName)

	name := "Atlantis"
	updated, err := repo.Update(ctx, 42, UpdateCountryRequest{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestRepository_ListOrderedByID(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	for _, name := range []string{"Uruguay", "Argentina", "Chile"} {
		_, err := repo.Create(ctx, CreateCountryRequest{Name: name})
		require.NoError(t, err)
	}

	countries, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, countries, 3)
	assert.Equal(t, "Uruguay", countries[0].Name)
	assert.Equal(t, "Chile", countries[2].Name)
}

func TestRepository_UniqueName(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, CreateCountryRequest{Name: "Brazil"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, CreateCountryRequest{Name: "Brazil"})
	require.Error(t, err)
	assert.True(t, sqlutil.IsUniqueViolation(err))
}
