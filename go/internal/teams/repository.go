package teams

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jonboulle/clockwork"

	"github.com/mcdev12/footballdb/go/internal/models"
	"github.com/mcdev12/footballdb/go/internal/sqlutil"
	"github.com/mcdev12/footballdb/go/internal/teams/db"
)

// Repository implements team data access operations
type Repository struct {
	database *sql.DB
	queries  *db.Queries
	clock    clockwork.Clock
}

// NewRepository creates a new teams repository
func NewRepository(database *sql.DB, clock clockwork.Clock) *Repository {
	return &Repository{
		database: database,
		queries:  db.New(database),
		clock:    clock,
	}
}

// Create inserts a new team
func (r *Repository) Create(ctx context.Context, req CreateTeamRequest) (*models.Team, error) {
	dbTeam, err := r.queries.CreateTeam(ctx, db.CreateTeamParams{
		Name:         req.Name,
		Nickname:     sqlutil.ToSqlString(req.Nickname),
		City:         sqlutil.ToSqlString(req.City),
		CountryID:    req.CountryID,
		FoundingDate: sqlutil.ToSqlTime(sqlutil.DatePtr(req.FoundingDate)),
		CreatedAt:    sqlutil.UTC(r.clock.Now()),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return dbTeamToModel(dbTeam), nil
}

// Get retrieves a team by ID; nil when it does not exist
func (r *Repository) Get(ctx context.Context, id int64) (*models.Team, error) {
	dbTeam, err := r.queries.GetTeam(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	return dbTeamToModel(dbTeam), nil
}

// GetByName retrieves a team by its unique name; nil when it does not exist
func (r *Repository) GetByName(ctx context.Context, name string) (*models.Team, error) {
	dbTeam, err := r.queries.GetTeamByName(ctx, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get team by name: %w", err)
	}

	return dbTeamToModel(dbTeam), nil
}

// List retrieves all teams ordered by ID
func (r *Repository) List(ctx context.Context) ([]models.Team, error) {
	dbTeams, err := r.queries.ListAllTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list all teams: %w", err)
	}

	return dbTeamsToModels(dbTeams), nil
}

// ListByCountry retrieves the teams of a country
func (r *Repository) ListByCountry(ctx context.Context, countryID int64) ([]models.Team, error) {
	dbTeams, err := r.queries.ListTeamsByCountry(ctx, countryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams by country: %w", err)
	}

	return dbTeamsToModels(dbTeams), nil
}

// Update applies the supplied fields; nil when the team does not exist
func (r *Repository) Update(ctx context.Context, id int64, req UpdateTeamRequest) (*models.Team, error) {
	var updated *models.Team
	err := sqlutil.Run(ctx, r.database, r.queries.WithTx, func(q *db.Queries) error {
		current, err := q.GetTeam(ctx, id)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}

		merged := dbTeamToModel(current)
		if req.Name != nil {
			merged.Name = *req.Name
		}
		if req.CountryID != nil {
			merged.CountryID = *req.CountryID
		}
		req.Nickname.ApplyTo(&merged.Nickname)
		req.City.ApplyTo(&merged.City)
		req.FoundingDate.ApplyTo(&merged.FoundingDate)

		dbTeam, err := q.UpdateTeam(ctx, db.UpdateTeamParams{
			ID:           id,
			Name:         merged.Name,
			Nickname:     sqlutil.ToSqlString(merged.Nickname),
			City:         sqlutil.ToSqlString(merged.City),
			CountryID:    merged.CountryID,
			FoundingDate: sqlutil.ToSqlTime(sqlutil.DatePtr(merged.FoundingDate)),
		})
		if err != nil {
			return err
		}
		updated = dbTeamToModel(dbTeam)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	return updated, nil
}

// Delete removes a team; false when it does not exist
func (r *Repository) Delete(ctx context.Context, id int64) (bool, error) {
	n, err := r.queries.DeleteTeam(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete team: %w", err)
	}

	return n > 0, nil
}

func dbTeamsToModels(dbTeams []db.Team) []models.Team {
	teams := make([]models.Team, len(dbTeams))
	for i, dbTeam := range dbTeams {
		teams[i] = *dbTeamToModel(dbTeam)
	}
	return teams
}

// dbTeamToModel converts a database team to domain model
func dbTeamToModel(dbTeam db.Team) *models.Team {
	return &models.Team{
		ID:           dbTeam.ID,
		Name:         dbTeam.Name,
		Nickname:     sqlutil.FromSqlStringPtr(dbTeam.Nickname),
		City:         sqlutil.FromSqlStringPtr(dbTeam.City),
		CountryID:    dbTeam.CountryID,
		FoundingDate: sqlutil.DatePtr(sqlutil.FromSqlTime(dbTeam.FoundingDate)),
		CreatedAt:    dbTeam.CreatedAt.UTC(),
	}
}
