package match

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jonboulle/clockwork"

	"github.com/mcdev12/footballdb/go/internal/match/db"
	"github.com/mcdev12/footballdb/go/internal/models"
	"github.com/mcdev12/footballdb/go/internal/sqlutil"
)

// SubstitutionRepository implements substitution data access operations
type SubstitutionRepository struct {
	database *sql.DB
	queries  *db.Queries
	clock    clockwork.Clock
}

// NewSubstitutionRepository creates a new substitution repository
func NewSubstitutionRepository(database *sql.DB, clock clockwork.Clock) *SubstitutionRepository {
	return &SubstitutionRepository{
		database: database,
		queries:  db.New(database),
		clock:    clock,
	}
}

// Create inserts a new substitution
func (r *SubstitutionRepository) Create(ctx context.Context, req CreateSubstitutionRequest) (*models.Substitution, error) {
	dbSub, err := r.queries.CreateSubstitution(ctx, db.CreateSubstitutionParams{
		MatchID:     req.MatchID,
		PlayerOutID: req.PlayerOutID,
		PlayerInID:  req.PlayerInID,
		Minute:      req.Minute,
		CreatedAt:   sqlutil.UTC(r.clock.Now()),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create substitution: %w", err)
	}

	return dbSubstitutionToModel(dbSub), nil
}

// Get retrieves a substitution by ID; nil when it does not exist
func (r *SubstitutionRepository) Get(ctx context.Context, id int64) (*models.Substitution, error) {
	dbSub, err := r.queries.GetSubstitution(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get substitution: %w", err)
	}

	return dbSubstitutionToModel(dbSub), nil
}

// List retrieves every substitution ordered by ID
func (r *SubstitutionRepository) List(ctx context.Context) ([]models.Substitution, error) {
	dbSubs, err := r.queries.ListSubstitutions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list substitutions: %w", err)
	}

	return dbSubstitutionsToModels(dbSubs), nil
}

// ListByMatch retrieves the substitutions of a match in minute order
func (r *SubstitutionRepository) ListByMatch(ctx context.Context, matchID int64) ([]models.Substitution, error) {
	dbSubs, err := r.queries.ListSubstitutionsByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list substitutions by match: %w", err)
	}

	return dbSubstitutionsToModels(dbSubs), nil
}

// Update corrects the minute; nil when the substitution does not exist
func (r *SubstitutionRepository) Update(ctx context.Context, id int64, req UpdateSubstitutionRequest) (*models.Substitution, error) {
	var updated *models.Substitution
	err := sqlutil.Run(ctx, r.database, r.queries.WithTx, func(q *db.Queries) error {
		current, err := q.GetSubstitution(ctx, id)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}

		minute := current.Minute
		if req.Minute != nil {
			minute = *req.Minute
		}

		dbSub, err := q.UpdateSubstitutionMinute(ctx, db.UpdateSubstitutionMinuteParams{
			ID:     id,
			Minute: minute,
		})
		if err != nil {
			return err
		}
		updated = dbSubstitutionToModel(dbSub)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update substitution: %w", err)
	}

	return updated, nil
}

// Delete removes a substitution; false when it does not exist
func (r *SubstitutionRepository) Delete(ctx context.Context, id int64) (bool, error) {
	n, err := r.queries.DeleteSubstitution(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete substitution: %w", err)
	}

	return n > 0, nil
}

func dbSubstitutionsToModels(dbSubs []db.Substitution) []models.Substitution {
	subs := make([]models.Substitution, len(dbSubs))
	for i, dbSub := range dbSubs {
		subs[i] = *dbSubstitutionToModel(dbSub)
	}
	return subs
}

func dbSubstitutionToModel(dbSub db.Substitution) *models.Substitution {
	return &models.Substitution{
		ID:          dbSub.ID,
		MatchID:     dbSub.MatchID,
		PlayerOutID: dbSub.PlayerOutID,
		PlayerInID:  dbSub.PlayerInID,
		Minute:      dbSub.Minute,
		CreatedAt:   dbSub.CreatedAt.UTC(),
	}
}
