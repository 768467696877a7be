package country

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jonboulle/clockwork"

	"github.com/mcdev12/footballdb/go/internal/country/db"
	"github.com/mcdev12/footballdb/go/internal/models"
	"github.com/mcdev12/footballdb/go/internal/sqlutil"
)

// Repository implements country data access operations
type Repository struct {
	database *sql.DB
	queries  *db.Queries
	clock    clockwork.Clock
}

// NewRepository creates a new country repository
func NewRepository(database *sql.DB, clock clockwork.Clock) *Repository {
	return &Repository{
		database: database,
		queries:  db.New(database),
		clock:    clock,
	}
}

// Create inserts a new country
func (r *Repository) Create(ctx context.Context, req CreateCountryRequest) (*models.Country, error) {
	dbCountry, err := r.queries.CreateCountry(ctx, db.CreateCountryParams{
		Name:      req.Name,
		CreatedAt: sqlutil.UTC(r.clock.Now()),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create country: %w", err)
	}

	return dbCountryToModel(dbCountry), nil
}

// Get retrieves a country by ID; nil when it does not exist
func (r *Repository) Get(ctx context.Context, id int64) (*models.Country, error) {
	dbCountry, err := r.queries.GetCountry(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get country: %w", err)
	}

	return dbCountryToModel(dbCountry), nil
}

// GetByName retrieves a country by its unique name; nil when it does not exist
func (r *Repository) GetByName(ctx context.Context, name string) (*models.Country, error) {
	dbCountry, err := r.queries.GetCountryByName(ctx, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get country by name: %w", err)
	}

	return dbCountryToModel(dbCountry), nil
}

// List retrieves all countries ordered by ID
func (r *Repository) List(ctx context.Context) ([]models.Country, error) {
	dbCountries, err := r.queries.ListCountries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list countries: %w", err)
	}

	countries := make([]models.Country, len(dbCountries))
	for i, dbCountry := range dbCountries {
		countries[i] = *dbCountryToModel(dbCountry)
	}

	return countries, nil
}

// Update applies the supplied fields; nil when the country does not exist
func (r *Repository) Update(ctx context.Context, id int64, req UpdateCountryRequest) (*models.Country, error) {
	var updated *models.Country
	err := sqlutil.Run(ctx, r.database, r.queries.WithTx, func(q *db.Queries) error {
		current, err := q.GetCountry(ctx, id)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}

		params := db.UpdateCountryParams{ID: id, Name: current.Name}
		if req.Name != nil {
			params.Name = *req.Name
		}

		dbCountry, err := q.UpdateCountry(ctx, params)
		if err != nil {
			return err
		}
		updated = dbCountryToModel(dbCountry)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update country: %w", err)
	}

	return updated, nil
}

// Delete removes a country; false when it does not exist
func (r *Repository) Delete(ctx context.Context, id int64) (bool, error) {
	n, err := r.queries.DeleteCountry(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete country: %w", err)
	}

	return n > 0, nil
}

// dbCountryToModel converts a database country to domain model
func dbCountryToModel(dbCountry db.Country) *models.Country {
	return &models.Country{
		ID:        dbCountry.ID,
		Name:      dbCountry.Name,
		CreatedAt: dbCountry.CreatedAt.UTC(),
	}
}
