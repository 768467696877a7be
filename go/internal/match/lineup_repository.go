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

// LineupRepository implements lineup data access operations
type LineupRepository struct {
	database *sql.DB
	queries  *db.Queries
	clock    clockwork.Clock
}

// NewLineupRepository creates a new lineup repository
func NewLineupRepository(database *sql.DB, clock clockwork.Clock) *LineupRepository {
	return &LineupRepository{
		database: database,
		queries:  db.New(database),
		clock:    clock,
	}
}

// Create inserts a new lineup entry
func (r *LineupRepository) Create(ctx context.Context, req CreateLineupRequest) (*models.Lineup, error) {
	dbLineup, err := r.queries.CreateLineup(ctx, db.CreateLineupParams{
		MatchID:   req.MatchID,
		TeamID:    req.TeamID,
		PlayerID:  req.PlayerID,
		Position:  sqlutil.ToSqlString(req.Position),
		CreatedAt: sqlutil.UTC(r.clock.Now()),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create lineup: %w", err)
	}

	return dbLineupToModel(dbLineup), nil
}

// Get retrieves a lineup entry by ID; nil when it does not exist
func (r *LineupRepository) Get(ctx context.Context, id int64) (*models.Lineup, error) {
	dbLineup, err := r.queries.GetLineup(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get lineup: %w", err)
	}

	return dbLineupToModel(dbLineup), nil
}

// Find retrieves the entry of a player in a team's lineup; nil when there is none
func (r *LineupRepository) Find(ctx context.Context, matchID, teamID, playerID int64) (*models.Lineup, error) {
	dbLineup, err := r.queries.FindLineup(ctx, db.FindLineupParams{
		MatchID:  matchID,
		TeamID:   teamID,
		PlayerID: playerID,
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find lineup: %w", err)
	}

	return dbLineupToModel(dbLineup), nil
}

// List retrieves every lineup entry ordered by ID
func (r *LineupRepository) List(ctx context.Context) ([]models.Lineup, error) {
	dbLineups, err := r.queries.ListLineups(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list lineups: %w", err)
	}

	return dbLineupsToModels(dbLineups), nil
}

// ListByMatch retrieves both lineups of a match grouped by team
func (r *LineupRepository) ListByMatch(ctx context.Context, matchID int64) ([]models.Lineup, error) {
	dbLineups, err := r.queries.ListLineupsByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list lineups by match: %w", err)
	}

	return dbLineupsToModels(dbLineups), nil
}

// Update changes the position of an entry; nil when it does not exist
func (r *LineupRepository) Update(ctx context.Context, id int64, req UpdateLineupRequest) (*models.Lineup, error) {
	var updated *models.Lineup
	err := sqlutil.Run(ctx, r.database, r.queries.WithTx, func(q *db.Queries) error {
		current, err := q.GetLineup(ctx, id)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}

		position := sqlutil.FromSqlStringPtr(current.Position)
		req.Position.ApplyTo(&position)

		dbLineup, err := q.UpdateLineupPosition(ctx, db.UpdateLineupPositionParams{
			ID:       id,
			Position: sqlutil.ToSqlString(position),
		})
		if err != nil {
			return err
		}
		updated = dbLineupToModel(dbLineup)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update lineup: %w", err)
	}

	return updated, nil
}

// Delete removes a lineup entry; false when it does not exist
func (r *LineupRepository) Delete(ctx context.Context, id int64) (bool, error) {
	n, err := r.queries.DeleteLineup(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete lineup: %w", err)
	}

	return n > 0, nil
}

func dbLineupsToModels(dbLineups []db.Lineup) []models.Lineup {
	lineups := make([]models.Lineup, len(dbLineups))
	for i, dbLineup := range dbLineups {
		lineups[i] = *dbLineupToModel(dbLineup)
	}
	return lineups
}

func dbLineupToModel(dbLineup db.Lineup) *models.Lineup {
	return &models.Lineup{
		ID:        dbLineup.ID,
		MatchID:   dbLineup.MatchID,
		TeamID:    dbLineup.TeamID,
		PlayerID:  dbLineup.PlayerID,
		Position:  sqlutil.FromSqlStringPtr(dbLineup.Position),
		CreatedAt: dbLineup.CreatedAt.UTC(),
	}
}
