package championship

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jonboulle/clockwork"

	"github.com/mcdev12/footballdb/go/internal/championship/db"
	"github.com/mcdev12/footballdb/go/internal/models"
	"github.com/mcdev12/footballdb/go/internal/sqlutil"
)

// Repository implements championship data access operations
type Repository struct {
	database *sql.DB
	queries  *db.Queries
	clock    clockwork.Clock
}

// NewRepository creates a new championship repository
func NewRepository(database *sql.DB, clock clockwork.Clock) *Repository {
	return &Repository{
		database: database,
		queries:  db.New(database),
		clock:    clock,
	}
}

// Create inserts a new championship
func (r *Repository) Create(ctx context.Context, req CreateChampionshipRequest) (*models.Championship, error) {
	dbChampionship, err := r.queries.CreateChampionship(ctx, db.CreateChampionshipParams{
		Name:      req.Name,
		CountryID: sqlutil.ToSqlInt64(req.CountryID),
		Type:      sqlutil.ToSqlString(req.Type),
		Season:    sqlutil.ToSqlString(req.Season),
		StartDate: sqlutil.ToSqlTime(sqlutil.DatePtr(req.StartDate)),
		EndDate:   sqlutil.ToSqlTime(sqlutil.DatePtr(req.EndDate)),
		CreatedAt: sqlutil.UTC(r.clock.Now()),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create championship: %w", err)
	}

	return dbChampionshipToModel(dbChampionship), nil
}

// Get retrieves a championship by ID; nil when it does not exist
func (r *Repository) Get(ctx context.Context, id int64) (*models.Championship, error) {
	dbChampionship, err := r.queries.GetChampionship(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get championship: %w", err)
	}

	return dbChampionshipToModel(dbChampionship), nil
}

// GetByName retrieves a championship by its unique name; nil when it does not exist
func (r *Repository) GetByName(ctx context.Context, name string) (*models.Championship, error) {
	dbChampionship, err := r.queries.GetChampionshipByName(ctx, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get championship by name: %w", err)
	}

	return dbChampionshipToModel(dbChampionship), nil
}

// List retrieves all championships ordered by ID
func (r *Repository) List(ctx context.Context) ([]models.Championship, error) {
	dbChampionships, err := r.queries.ListChampionships(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list championships: %w", err)
	}

	return dbChampionshipsToModels(dbChampionships), nil
}

// ListByCountry retrieves the championships held in a country
func (r *Repository) ListByCountry(ctx context.Context, countryID int64) ([]models.Championship, error) {
	dbChampionships, err := r.queries.ListChampionshipsByCountry(ctx, countryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list championships by country: %w", err)
	}

	return dbChampionshipsToModels(dbChampionships), nil
}

// Update applies the supplied fields; nil when the championship does not exist
func (r *Repository) Update(ctx context.Context, id int64, req UpdateChampionshipRequest) (*models.Championship, error) {
	var updated *models.Championship
	err := sqlutil.Run(ctx, r.database, r.queries.WithTx, func(q *db.Queries) error {
		current, err := q.GetChampionship(ctx, id)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}

		merged := dbChampionshipToModel(current)
		if req.Name != nil {
			merged.Name = *req.Name
		}
		req.CountryID.ApplyTo(&merged.CountryID)
		req.Type.ApplyTo(&merged.Type)
		req.Season.ApplyTo(&merged.Season)
		req.StartDate.ApplyTo(&merged.StartDate)
		req.EndDate.ApplyTo(&merged.EndDate)

		dbChampionship, err := q.UpdateChampionship(ctx, db.UpdateChampionshipParams{
			ID:        id,
			Name:      merged.Name,
			CountryID: sqlutil.ToSqlInt64(merged.CountryID),
			Type:      sqlutil.ToSqlString(merged.Type),
			Season:    sqlutil.ToSqlString(merged.Season),
			StartDate: sqlutil.ToSqlTime(sqlutil.DatePtr(merged.StartDate)),
			EndDate:   sqlutil.ToSqlTime(sqlutil.DatePtr(merged.EndDate)),
		})
		if err != nil {
			return err
		}
		updated = dbChampionshipToModel(dbChampionship)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update championship: %w", err)
	}

	return updated, nil
}

// Delete removes a championship; false when it does not exist
func (r *Repository) Delete(ctx context.Context, id int64) (bool, error) {
	n, err := r.queries.DeleteChampionship(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete championship: %w", err)
	}

	return n > 0, nil
}

func dbChampionshipsToModels(dbChampionships []db.Championship) []models.Championship {
	championships := make([]models.Championship, len(dbChampionships))
	for i, dbChampionship := range dbChampionships {
		championships[i] = *dbChampionshipToModel(dbChampionship)
	}
	return championships
}

// dbChampionshipToModel converts a database championship to domain model
func dbChampionshipToModel(dbChampionship db.Championship) *models.Championship {
	return &models.Championship{
		ID:        dbChampionship.ID,
		Name:      dbChampionship.Name,
		CountryID: sqlutil.FromSqlInt64(dbChampionship.CountryID),
		Type:      sqlutil.FromSqlStringPtr(dbChampionship.Type),
		Season:    sqlutil.FromSqlStringPtr(dbChampionship.Season),
		StartDate: sqlutil.DatePtr(sqlutil.FromSqlTime(dbChampionship.StartDate)),
		EndDate:   sqlutil.DatePtr(sqlutil.FromSqlTime(dbChampionship.EndDate)),
		CreatedAt: dbChampionship.CreatedAt.UTC(),
	}
}
