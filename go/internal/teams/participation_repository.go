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

// ParticipationRepository implements championship participation data access
type ParticipationRepository struct {
	database *sql.DB
	queries  *db.Queries
	clock    clockwork.Clock
}

// NewParticipationRepository creates a new participation repository
func NewParticipationRepository(database *sql.DB, clock clockwork.Clock) *ParticipationRepository {
	return &ParticipationRepository{
		database: database,
		queries:  db.New(database),
		clock:    clock,
	}
}

// Create registers a team in a championship
func (r *ParticipationRepository) Create(ctx context.Context, req CreateParticipationRequest) (*models.ChampionshipParticipation, error) {
	dbParticipation, err := r.queries.CreateParticipation(ctx, db.CreateParticipationParams{
		ChampionshipID: req.ChampionshipID,
		TeamID:         req.TeamID,
		Season:         sqlutil.ToSqlString(req.Season),
		CreatedAt:      sqlutil.UTC(r.clock.Now()),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create participation: %w", err)
	}

	return dbParticipationToModel(dbParticipation), nil
}

// Get retrieves a participation by ID; nil when it does not exist
func (r *ParticipationRepository) Get(ctx context.Context, id int64) (*models.ChampionshipParticipation, error) {
	dbParticipation, err := r.queries.GetParticipation(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get participation: %w", err)
	}

	return dbParticipationToModel(dbParticipation), nil
}

// Find retrieves the participation for a championship, team and season; nil when there is none
func (r *ParticipationRepository) Find(ctx context.Context, championshipID, teamID int64, season *string) (*models.ChampionshipParticipation, error) {
	dbParticipation, err := r.queries.FindParticipation(ctx, db.FindParticipationParams{
		ChampionshipID: championshipID,
		TeamID:         teamID,
		Season:         sqlutil.ToSqlString(season),
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find participation: %w", err)
	}

	return dbParticipationToModel(dbParticipation), nil
}

// List retrieves all participations ordered by ID
func (r *ParticipationRepository) List(ctx context.Context) ([]models.ChampionshipParticipation, error) {
	dbParticipations, err := r.queries.ListParticipations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list participations: %w", err)
	}

	return dbParticipationsToModels(dbParticipations), nil
}

// ListByTeam retrieves the championships a team takes part in
func (r *ParticipationRepository) ListByTeam(ctx context.Context, teamID int64) ([]models.ChampionshipParticipation, error) {
	dbParticipations, err := r.queries.ListParticipationsByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list participations by team: %w", err)
	}

	return dbParticipationsToModels(dbParticipations), nil
}

// ListByChampionship retrieves the teams registered in a championship
func (r *ParticipationRepository) ListByChampionship(ctx context.Context, championshipID int64) ([]models.ChampionshipParticipation, error) {
	dbParticipations, err := r.queries.ListParticipationsByChampionship(ctx, championshipID)
	if err != nil {
		return nil, fmt.Errorf("failed to list participations by championship: %w", err)
	}

	return dbParticipationsToModels(dbParticipations), nil
}

// Update changes the season; nil when the participation does not exist
func (r *ParticipationRepository) Update(ctx context.Context, id int64, req UpdateParticipationRequest) (*models.ChampionshipParticipation, error) {
	var updated *models.ChampionshipParticipation
	err := sqlutil.Run(ctx, r.database, r.queries.WithTx, func(q *db.Queries) error {
		current, err := q.GetParticipation(ctx, id)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}

		season := sqlutil.FromSqlStringPtr(current.Season)
		req.Season.ApplyTo(&season)

		dbParticipation, err := q.UpdateParticipationSeason(ctx, db.UpdateParticipationSeasonParams{
			ID:     id,
			Season: sqlutil.ToSqlString(season),
		})
		if err != nil {
			return err
		}
		updated = dbParticipationToModel(dbParticipation)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update participation: %w", err)
	}

	return updated, nil
}

// Delete removes a participation; false when it does not exist
func (r *ParticipationRepository) Delete(ctx context.Context, id int64) (bool, error) {
	n, err := r.queries.DeleteParticipation(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete participation: %w", err)
	}

	return n > 0, nil
}

func dbParticipationsToModels(dbParticipations []db.ChampionshipParticipation) []models.ChampionshipParticipation {
	participations := make([]models.ChampionshipParticipation, len(dbParticipations))
	for i, dbParticipation := range dbParticipations {
		participations[i] = *dbParticipationToModel(dbParticipation)
	}
	return participations
}

func dbParticipationToModel(dbParticipation db.ChampionshipParticipation) *models.ChampionshipParticipation {
	return &models.ChampionshipParticipation{
		ID:             dbParticipation.ID,
		ChampionshipID: dbParticipation.ChampionshipID,
		TeamID:         dbParticipation.TeamID,
		Season:         sqlutil.FromSqlStringPtr(dbParticipation.Season),
		CreatedAt:      dbParticipation.CreatedAt.UTC(),
	}
}
