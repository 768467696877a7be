package stadium

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jonboulle/clockwork"

	"github.com/mcdev12/footballdb/go/internal/models"
	"github.com/mcdev12/footballdb/go/internal/sqlutil"
	"github.com/mcdev12/footballdb/go/internal/stadium/db"
)

// Repository implements stadium data access operations
type Repository struct {
	database *sql.DB
	queries  *db.Queries
	clock    clockwork.Clock
}

// NewRepository creates a new stadium repository
func NewRepository(database *sql.DB, clock clockwork.Clock) *Repository {
	return &Repository{
		database: database,
		queries:  db.New(database),
		clock:    clock,
	}
}

// Create inserts a new stadium
func (r *Repository) Create(ctx context.Context, req CreateStadiumRequest) (*models.Stadium, error) {
	dbStadium, err := r.queries.CreateStadium(ctx, db.CreateStadiumParams{
		Name:      req.Name,
		City:      sqlutil.ToSqlString(req.City),
		CountryID: req.CountryID,
		Capacity:  sqlutil.ToSqlInt32(req.Capacity),
		CreatedAt: sqlutil.UTC(r.clock.Now()),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create stadium: %w", err)
	}

	return dbStadiumToModel(dbStadium), nil
}

// Get retrieves a stadium by ID; nil when it does not exist
func (r *Repository) Get(ctx context.Context, id int64) (*models.Stadium, error) {
	dbStadium, err := r.queries.GetStadium(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get stadium: %w", err)
	}

	return dbStadiumToModel(dbStadium), nil
}

// GetByName retrieves a stadium by its unique name; nil when it does not exist
func (r *Repository) GetByName(ctx context.Context, name string) (*models.Stadium, error) {
	dbStadium, err := r.queries.GetStadiumByName(ctx, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get stadium by name: %w", err)
	}

	return dbStadiumToModel(dbStadium), nil
}

// List retrieves all stadiums ordered by ID
func (r *Repository) List(ctx context.Context) ([]models.Stadium, error) {
	dbStadiums, err := r.queries.ListStadiums(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stadiums: %w", err)
	}

	return dbStadiumsToModels(dbStadiums), nil
}

// ListByCountry retrieves the stadiums located in a country
func (r *Repository) ListByCountry(ctx context.Context, countryID int64) ([]models.Stadium, error) {
	dbStadiums, err := r.queries.ListStadiumsByCountry(ctx, countryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list stadiums by country: %w", err)
	}

	return dbStadiumsToModels(dbStadiums), nil
}

// Update applies the supplied fields; nil when the stadium does not exist
func (r *Repository) Update(ctx context.Context, id int64, req UpdateStadiumRequest) (*models.Stadium, error) {
	var updated *models.Stadium
	err := sqlutil.Run(ctx, r.database, r.queries.WithTx, func(q *db.Queries) error {
		current, err := q.GetStadium(ctx, id)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}

		merged := dbStadiumToModel(current)
		if req.Name != nil {
			merged.Name = *req.Name
		}
		if req.CountryID != nil {
			merged.CountryID = *req.CountryID
		}
		req.City.ApplyTo(&merged.City)
		req.Capacity.ApplyTo(&merged.Capacity)

		dbStadium, err := q.UpdateStadium(ctx, db.UpdateStadiumParams{
			ID:        id,
			Name:      merged.Name,
			City:      sqlutil.ToSqlString(merged.City),
			CountryID: merged.CountryID,
			Capacity:  sqlutil.ToSqlInt32(merged.Capacity),
		})
		if err != nil {
			return err
		}
		updated = dbStadiumToModel(dbStadium)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update stadium: %w", err)
	}

	return updated, nil
}

// Delete removes a stadium; false when it does not exist
func (r *Repository) Delete(ctx context.Context, id int64) (bool, error) {
	n, err := r.queries.DeleteStadium(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete stadium: %w", err)
	}

	return n > 0, nil
}

func dbStadiumsToModels(dbStadiums []db.Stadium) []models.Stadium {
	stadiums := make([]models.Stadium, len(dbStadiums))
	for i, dbStadium := range dbStadiums {
		stadiums[i] = *dbStadiumToModel(dbStadium)
	}
	return stadiums
}

// dbStadiumToModel converts a database stadium to domain model
func dbStadiumToModel(dbStadium db.Stadium) *models.Stadium {
	return &models.Stadium{
		ID:        dbStadium.ID,
		Name:      dbStadium.Name,
		City:      sqlutil.FromSqlStringPtr(dbStadium.City),
		CountryID: dbStadium.CountryID,
		Capacity:  sqlutil.FromSqlInt32(dbStadium.Capacity),
		CreatedAt: dbStadium.CreatedAt.UTC(),
	}
}
