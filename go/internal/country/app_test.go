package country

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcdev12/footballdb/go/internal/apperr"
	"github.com/mcdev12/footballdb/go/internal/changefeed"
	"github.com/mcdev12/footballdb/go/internal/database/dbtest"
	"github.com/mcdev12/footballdb/go/internal/validation"
)

func newTestApp(t *testing.T) (*App, *changefeed.Recorder) {
	t.Helper()
	clock := clockwork.NewFakeClockAt(testNow)
	feed := &changefeed.Recorder{}
	repo := NewRepository(dbtest.New(t), clock)
	return NewApp(repo, validation.New(clock), feed), feed
}

func requireKind(t *testing.T, err error, kind apperr.Kind) *apperr.Error {
	t.Helper()
	require.Error(t, err)
	var e *apperr.Error
	require.True(t, errors.As(err, &e), "expected *apperr.Error, got %T: %v", err, err)
	require.Equal(t, kind, e.Kind, e.Message)
	return e
}

func TestCreateCountry_DuplicateName(t *testing.T) {
	app, feed := newTestApp(t)
	ctx := context.Background()

	brazil, err := app.CreateCountry(ctx, CreateCountryRequest{Name: "Brazil"})
	require.NoError(t, err)
	assert.Positive(t, brazil.ID)

	_, err = app.CreateCountry(ctx, CreateCountryRequest{Name: "Brazil"})
	e := requireKind(t, err, apperr.KindDuplicate)
	assert.Equal(t, "Country with this name already exists.", e.Message)

	assert.Len(t, feed.Changes(), 1)
}

func TestCreateCountry_ConcurrentDuplicates(t *testing.T) {
	app, _ := newTestApp(t)
	ctx := context.Background()

	const n = 6
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = app.CreateCountry(ctx, CreateCountryRequest{Name: "Portugal"})
		}(i)
	}
	wg.Wait()

	var created int
	for _, err := range errs {
		if err == nil {
			created++
			continue
		}
		e := requireKind(t, err, apperr.KindDuplicate)
		assert.Equal(t, DuplicateNameMessage, e.Message)
	}
	assert.Equal(t, 1, created)
}

func TestCreateCountry_Validation(t *testing.T) {
	app, _ := newTestApp(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{name: "empty", input: "", wantMsg: "Country name cannot be empty."},
		{name: "blank", input: "   ", wantMsg: "Country name cannot be empty."},
		{name: "too long", input: strings.Repeat("a", 101), wantMsg: "Country name cannot exceed 100 characters."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := app.CreateCountry(ctx, CreateCountryRequest{Name: tt.input})
			e := requireKind(t, err, apperr.KindValidation)
			assert.Equal(t, "name", e.Field)
			assert.Equal(t, tt.wantMsg, e.Message)
		})
	}

	countries, err := app.ListCountries(ctx)
	require.NoError(t, err)
	assert.Empty(t, countries)
}

func TestCreateCountry_TrimsName(t *testing.T) {
	app, _ := newTestApp(t)

	country, err := app.CreateCountry(context.Background(), CreateCountryRequest{Name: "  Japan  "})

	require.NoError(t, err)
	assert.Equal(t, "Japan", country.Name)
}

func TestGetCountry(t *testing.T) {
	app, _ := newTestApp(t)
	ctx := context.Background()

	created, err := app.CreateCountry(ctx, CreateCountryRequest{Name: "Spain"})
	require.NoError(t, err)

	first, err := app.GetCountry(ctx, created.ID)
	require.NoError(t, err)
	second, err := app.GetCountry(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, created.Name, first.Name)

	_, err = app.GetCountry(ctx, created.ID+100)
	e := requireKind(t, err, apperr.KindNotFound)
	assert.Equal(t, fmt.Sprintf("Country with ID %d not found.", created.ID+100), e.Message)

	_, err = app.GetCountry(ctx, -1)
	requireKind(t, err, apperr.KindValidation)
}

func TestGetCountryByName(t *testing.T) {
	app, _ := newTestApp(t)
	ctx := context.Background()

	_, err := app.CreateCountry(ctx, CreateCountryRequest{Name: "Italy"})
	require.NoError(t, err)

	got, err := app.GetCountryByName(ctx, "Italy")
	require.NoError(t, err)
	assert.Equal(t, "Italy", got.Name)

	_, err = app.GetCountryByName(ctx, "Narnia")
	e := requireKind(t, err, apperr.KindNotFound)
	assert.Equal(t, "Country with name 'Narnia' not found.", e.Message)

	_, err = app.GetCountryByName(ctx, " ")
	requireKind(t, err, apperr.KindValidation)
}

func TestUpdateCountry(t *testing.T) {
	app, _ := newTestApp(t)
	ctx := context.Background()

	france, err := app.CreateCountry(ctx, CreateCountryRequest{Name: "France"})
	require.NoError(t, err)
	germany, err := app.CreateCountry(ctx, CreateCountryRequest{Name: "Germany"})
	require.NoError(t, err)

	t.Run("own name is not a duplicate", func(t *testing.T) {
		name := "France"
		updated, err := app.UpdateCountry(ctx, france.ID, UpdateCountryRequest{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "France", updated.Name)
	})

	t.Run("another country's name", func(t *testing.T) {
		name := "Germany"
		_, err := app.UpdateCountry(ctx, france.ID, UpdateCountryRequest{Name: &name})
		requireKind(t, err, apperr.KindDuplicate)
	})

	t.Run("empty string is applied and rejected", func(t *testing.T) {
		for _, name := range []string{"", "   "} {
			_, err := app.UpdateCountry(ctx, germany.ID, UpdateCountryRequest{Name: &name})
			e := requireKind(t, err, apperr.KindValidation)
			assert.Equal(t, "name", e.Field)
			assert.Equal(t, "Country name cannot be empty.", e.Message)
		}

		stored, err := app.GetCountry(ctx, germany.ID)
		require.NoError(t, err)
		assert.Equal(t, "Germany", stored.Name)
	})

	t.Run("nothing supplied leaves the record alone", func(t *testing.T) {
		updated, err := app.UpdateCountry(ctx, germany.ID, UpdateCountryRequest{})
		require.NoError(t, err)
		assert.Equal(t, "Germany", updated.Name)
	})

	t.Run("missing id is not found before validation", func(t *testing.T) {
		long := strings.Repeat("x", 500)
		_, err := app.UpdateCountry(ctx, 999, UpdateCountryRequest{Name: &long})
		requireKind(t, err, apperr.KindNotFound)
	})
}

func TestDeleteCountry(t *testing.T) {
	app, feed := newTestApp(t)
	ctx := context.Background()

	_, err := app.DeleteCountry(ctx, 5)
	requireKind(t, err, apperr.KindNotFound)

	created, err := app.CreateCountry(ctx, CreateCountryRequest{Name: "Peru"})
	require.NoError(t, err)

	deleted, err := app.DeleteCountry(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = app.GetCountry(ctx, created.ID)
	requireKind(t, err, apperr.KindNotFound)

	changes := feed.Changes()
	require.Len(t, changes, 2)
	assert.Equal(t, changefeed.OpDeleted, changes[1].Op)
	assert.Equal(t, "football.country.deleted", changes[1].Subject("football"))
}
