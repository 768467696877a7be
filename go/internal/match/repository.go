package match

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/mcdev12/footballdb/go/internal/match/db"
	"github.com/mcdev12/footballdb/go/internal/models"
	"github.com/mcdev12/footballdb/go/internal/sqlutil"
)

// Repository implements match data access operations
type Repository struct {
	database *sql.DB
	queries  *db.Queries
	clock    clockwork.Clock
}

// NewRepository creates a new match repository
func NewRepository(database *sql.DB, clock clockwork.Clock) *Repository {
	return &Repository{
		database: database,
		queries:  db.New(database),
		clock:    clock,
	}
}

// Create inserts a new match
func (r *Repository) Create(ctx context.Context, req CreateMatchRequest) (*models.Match, error) {
	dbMatch, err := r.queries.CreateMatch(ctx, db.CreateMatchParams{
		HomeTeamID:     req.HomeTeamID,
		AwayTeamID:     req.AwayTeamID,
		ChampionshipID: req.ChampionshipID,
		StadiumID:      req.StadiumID,
		Date:           sqlutil.UTC(req.Date),
		HomeScore:      sqlutil.ToSqlInt32(req.HomeScore),
		AwayScore:      sqlutil.ToSqlInt32(req.AwayScore),
		CreatedAt:      sqlutil.UTC(r.clock.Now()),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	return dbMatchToModel(dbMatch), nil
}

// Get retrieves a match by ID; nil when it does not exist
func (r *Repository) Get(ctx context.Context, id int64) (*models.Match, error) {
	dbMatch, err := r.queries.GetMatch(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	return dbMatchToModel(dbMatch), nil
}

// List retrieves all matches ordered by ID
func (r *Repository) List(ctx context.Context) ([]models.Match, error) {
	dbMatches, err := r.queries.ListMatches(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}

	return dbMatchesToModels(dbMatches), nil
}

// ListByTeam retrieves the home and away matches of a team by date
func (r *Repository) ListByTeam(ctx context.Context, teamID int64) ([]models.Match, error) {
	dbMatches, err := r.queries.ListMatchesByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches by team: %w", err)
	}

	return dbMatchesToModels(dbMatches), nil
}

// ListByChampionship retrieves the fixtures of a championship by date
func (r *Repository) ListByChampionship(ctx context.Context, championshipID int64) ([]models.Match, error) {
	dbMatches, err := r.queries.ListMatchesByChampionship(ctx, championshipID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches by championship: %w", err)
	}

	return dbMatchesToModels(dbMatches), nil
}

// ListByStadium retrieves the matches hosted by a stadium by date
func (r *Repository) ListByStadium(ctx context.Context, stadiumID int64) ([]models.Match, error) {
	dbMatches, err := r.queries.ListMatchesByStadium(ctx, stadiumID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches by stadium: %w", err)
	}

	return dbMatchesToModels(dbMatches), nil
}

// FindByTeams retrieves every match with exactly this home and away pairing
func (r *Repository) FindByTeams(ctx context.Context, homeTeamID, awayTeamID int64) ([]models.Match, error) {
	dbMatches, err := r.queries.FindMatchesByTeams(ctx, db.FindMatchesByTeamsParams{
		HomeTeamID: homeTeamID,
		AwayTeamID: awayTeamID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find matches by teams: %w", err)
	}

	return dbMatchesToModels(dbMatches), nil
}

// FindConflict returns the earliest match other than excludeID in which either team
// plays between from and to inclusive; nil when the window is free
func (r *Repository) FindConflict(ctx context.Context, teamA, teamB int64, from, to time.Time, excludeID int64) (*models.Match, error) {
	dbMatch, err := r.queries.FindConflictingMatch(ctx, db.FindConflictingMatchParams{
		TeamA:     teamA,
		TeamB:     teamB,
		From:      sqlutil.UTC(from),
		To:        sqlutil.UTC(to),
		ExcludeID: excludeID,
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find conflicting match: %w", err)
	}

	return dbMatchToModel(dbMatch), nil
}

// Update applies the supplied fields; nil when the match does not exist
func (r *Repository) Update(ctx context.Context, id int64, req UpdateMatchRequest) (*models.Match, error) {
	var updated *models.Match
	err := sqlutil.Run(ctx, r.database, r.queries.WithTx, func(q *db.Queries) error {
		current, err := q.GetMatch(ctx, id)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}

		merged := merge(dbMatchToModel(current), req)
		dbMatch, err := q.UpdateMatch(ctx, db.UpdateMatchParams{
			ID:             id,
			HomeTeamID:     merged.HomeTeamID,
			AwayTeamID:     merged.AwayTeamID,
			ChampionshipID: merged.ChampionshipID,
			StadiumID:      merged.StadiumID,
			Date:           sqlutil.UTC(merged.Date),
			HomeScore:      sqlutil.ToSqlInt32(merged.HomeScore),
			AwayScore:      sqlutil.ToSqlInt32(merged.AwayScore),
		})
		if err != nil {
			return err
		}
		updated = dbMatchToModel(dbMatch)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update match: %w", err)
	}

	return updated, nil
}

// Delete removes a match together with its lineups and substitutions; false when it does not exist
func (r *Repository) Delete(ctx context.Context, id int64) (bool, error) {
	n, err := r.queries.DeleteMatch(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete match: %w", err)
	}

	return n > 0, nil
}

// merge returns a copy of current with the supplied fields of req applied
func merge(current *models.Match, req UpdateMatchRequest) *models.Match {
	merged := *current
	if req.HomeTeamID != nil {
		merged.HomeTeamID = *req.HomeTeamID
	}
	if req.AwayTeamID != nil {
		merged.AwayTeamID = *req.AwayTeamID
	}
	if req.ChampionshipID != nil {
		merged.ChampionshipID = *req.ChampionshipID
	}
	if req.StadiumID != nil {
		merged.StadiumID = *req.StadiumID
	}
	if req.Date != nil {
		merged.Date = *req.Date
	}
	req.HomeScore.ApplyTo(&merged.HomeScore)
	req.AwayScore.ApplyTo(&merged.AwayScore)
	return &merged
}

func dbMatchesToModels(dbMatches []db.Match) []models.Match {
	matches := make([]models.Match, len(dbMatches))
	for i, dbMatch := range dbMatches {
		matches[i] = *dbMatchToModel(dbMatch)
	}
	return matches
}

// dbMatchToModel converts a database match to domain model
func dbMatchToModel(dbMatch db.Match) *models.Match {
	return &models.Match{
		ID:             dbMatch.ID,
		HomeTeamID:     dbMatch.HomeTeamID,
		AwayTeamID:     dbMatch.AwayTeamID,
		ChampionshipID: dbMatch.ChampionshipID,
		StadiumID:      dbMatch.StadiumID,
		Date:           dbMatch.Date.UTC(),
		HomeScore:      sqlutil.FromSqlInt32(dbMatch.HomeScore),
		AwayScore:      sqlutil.FromSqlInt32(dbMatch.AwayScore),
		CreatedAt:      dbMatch.CreatedAt.UTC(),
	}
}
