package player

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jonboulle/clockwork"

	"github.com/mcdev12/footballdb/go/internal/models"
	"github.com/mcdev12/footballdb/go/internal/player/db"
	"github.com/mcdev12/footballdb/go/internal/sqlutil"
)

// Repository handles all player-related database operations
type Repository struct {
	database *sql.DB
	queries  *db.Queries
	clock    clockwork.Clock
}

// NewRepository creates a new player repository
func NewRepository(database *sql.DB, clock clockwork.Clock) *Repository {
	return &Repository{
		database: database,
		queries:  db.New(database),
		clock:    clock,
	}
}

// Create inserts a new player
func (r *Repository) Create(ctx context.Context, req CreatePlayerRequest) (*models.Player, error) {
	dbPlayer, err := r.queries.CreatePlayer(ctx, r.createParams(req))
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	return dbPlayerToModel(dbPlayer), nil
}

// CreateMany inserts every player in a single transaction; one failure rolls back the batch.
// The error carries the index of the failing item.
func (r *Repository) CreateMany(ctx context.Context, reqs []CreatePlayerRequest) ([]models.Player, int, error) {
	players := make([]models.Player, 0, len(reqs))
	failed := -1
	err := sqlutil.Run(ctx, r.database, r.queries.WithTx, func(q *db.Queries) error {
		for i, req := range reqs {
			dbPlayer, err := q.CreatePlayer(ctx, r.createParams(req))
			if err != nil {
				failed = i
				return err
			}
			players = append(players, *dbPlayerToModel(dbPlayer))
		}
		return nil
	})
	if err != nil {
		return nil, failed, fmt.Errorf("failed to create players: %w", err)
	}

	return players, -1, nil
}

// Get retrieves a player by ID; nil when it does not exist
func (r *Repository) Get(ctx context.Context, id int64) (*models.Player, error) {
	dbPlayer, err := r.queries.GetPlayer(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	return dbPlayerToModel(dbPlayer), nil
}

// GetByName retrieves the player with the lowest ID carrying name; nil when there is none
func (r *Repository) GetByName(ctx context.Context, name string) (*models.Player, error) {
	dbPlayer, err := r.queries.GetPlayerByName(ctx, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player by name: %w", err)
	}

	return dbPlayerToModel(dbPlayer), nil
}

// List retrieves all players ordered by ID
func (r *Repository) List(ctx context.Context) ([]models.Player, error) {
	dbPlayers, err := r.queries.ListPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}

	return dbPlayersToModels(dbPlayers), nil
}

// ListByCountry retrieves the players of a nationality
func (r *Repository) ListByCountry(ctx context.Context, countryID int64) ([]models.Player, error) {
	dbPlayers, err := r.queries.ListPlayersByCountry(ctx, countryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list players by country: %w", err)
	}

	return dbPlayersToModels(dbPlayers), nil
}

// ListByTeam retrieves the squad of a team
func (r *Repository) ListByTeam(ctx context.Context, teamID int64) ([]models.Player, error) {
	dbPlayers, err := r.queries.ListPlayersByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list players by team: %w", err)
	}

	return dbPlayersToModels(dbPlayers), nil
}

// Update applies the supplied fields; nil when the player does not exist
func (r *Repository) Update(ctx context.Context, id int64, req UpdatePlayerRequest) (*models.Player, error) {
	var updated *models.Player
	err := sqlutil.Run(ctx, r.database, r.queries.WithTx, func(q *db.Queries) error {
		current, err := q.GetPlayer(ctx, id)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}

		merged := dbPlayerToModel(current)
		if req.Name != nil {
			merged.Name = *req.Name
		}
		if req.CountryID != nil {
			merged.CountryID = *req.CountryID
		}
		req.BirthDate.ApplyTo(&merged.BirthDate)
		req.Position.ApplyTo(&merged.Position)
		req.TeamID.ApplyTo(&merged.TeamID)

		dbPlayer, err := q.UpdatePlayer(ctx, db.UpdatePlayerParams{
			ID:        id,
			Name:      merged.Name,
			BirthDate: sqlutil.ToSqlTime(sqlutil.DatePtr(merged.BirthDate)),
			CountryID: merged.CountryID,
			Position:  sqlutil.ToSqlString(merged.Position),
			TeamID:    sqlutil.ToSqlInt64(merged.TeamID),
		})
		if err != nil {
			return err
		}
		updated = dbPlayerToModel(dbPlayer)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	return updated, nil
}

// Delete removes a player; false when it does not exist
func (r *Repository) Delete(ctx context.Context, id int64) (bool, error) {
	n, err := r.queries.DeletePlayer(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete player: %w", err)
	}

	return n > 0, nil
}

func (r *Repository) createParams(req CreatePlayerRequest) db.CreatePlayerParams {
	return db.CreatePlayerParams{
		Name:      req.Name,
		BirthDate: sqlutil.ToSqlTime(sqlutil.DatePtr(req.BirthDate)),
		CountryID: req.CountryID,
		Position:  sqlutil.ToSqlString(req.Position),
		TeamID:    sqlutil.ToSqlInt64(req.TeamID),
		CreatedAt: sqlutil.UTC(r.clock.Now()),
	}
}

func dbPlayersToModels(dbPlayers []db.Player) []models.Player {
	players := make([]models.Player, len(dbPlayers))
	for i, dbPlayer := range dbPlayers {
		players[i] = *dbPlayerToModel(dbPlayer)
	}
	return players
}

// dbPlayerToModel converts a database player to domain model
func dbPlayerToModel(dbPlayer db.Player) *models.Player {
	return &models.Player{
		ID:        dbPlayer.ID,
		Name:      dbPlayer.Name,
		BirthDate: sqlutil.DatePtr(sqlutil.FromSqlTime(dbPlayer.BirthDate)),
		CountryID: dbPlayer.CountryID,
		Position:  sqlutil.FromSqlStringPtr(dbPlayer.Position),
		TeamID:    sqlutil.FromSqlInt64(dbPlayer.TeamID),
		CreatedAt: dbPlayer.CreatedAt.UTC(),
	}
}
