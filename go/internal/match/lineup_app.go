package match

import (
	"context"

	"github.com/mcdev12/footballdb/go/internal/apperr"
	"github.com/mcdev12/footballdb/go/internal/changefeed"
	"github.com/mcdev12/footballdb/go/internal/crud"
	"github.com/mcdev12/footballdb/go/internal/models"
	"github.com/mcdev12/footballdb/go/internal/validation"
)

// LineupEntity is the display name used in lineup messages
const LineupEntity = "Lineup"

// DuplicateLineupMessage is returned when the player already lines up for that team in the match
const DuplicateLineupMessage = "Player is already in this team's lineup for the match."

// LineupsRepository defines what the lineup app needs from the repository
type LineupsRepository interface {
	crud.Repository[models.Lineup, CreateLineupRequest, UpdateLineupRequest]
	Find(ctx context.Context, matchID, teamID, playerID int64) (*models.Lineup, error)
	ListByMatch(ctx context.Context, matchID int64) ([]models.Lineup, error)
}

// MatchReader loads the match a lineup or substitution belongs to
type MatchReader interface {
	crud.Existence
	GetMatch(ctx context.Context, id int64) (*models.Match, error)
}

// LineupApp handles lineup business logic
type LineupApp struct {
	core    *crud.App[models.Lineup, CreateLineupRequest, UpdateLineupRequest]
	repo    LineupsRepository
	matches MatchReader
	players crud.Existence
}

// NewLineupApp creates a new lineup App
func NewLineupApp(repo LineupsRepository, matches MatchReader, players crud.Existence, v *validation.Validator, feed changefeed.Publisher) *LineupApp {
	a := &LineupApp{
		repo:    repo,
		matches: matches,
		players: players,
	}

	rules := crud.Rules[models.Lineup, CreateLineupRequest, UpdateLineupRequest]{
		Entity: LineupEntity,
		ID:     func(l *models.Lineup) int64 { return l.ID },
		ValidateCreate: func(ctx context.Context, req *CreateLineupRequest) error {
			req.Position = validation.TrimOptional(req.Position)
			if err := v.Struct(LineupEntity, req); err != nil {
				return err
			}
			if err := crud.Reference(ctx, LineupEntity, "match_id", a.matches, req.MatchID); err != nil {
				return err
			}
			m, err := a.matches.GetMatch(ctx, req.MatchID)
			if err != nil {
				return err
			}
			if !m.InvolvesTeam(req.TeamID) {
				return apperr.Validationf(LineupEntity, "team_id", "Team with ID %d does not play match %d.", req.TeamID, req.MatchID)
			}
			return crud.Reference(ctx, LineupEntity, "player_id", a.players, req.PlayerID)
		},
		ValidateUpdate: func(_ context.Context, _ *models.Lineup, req *UpdateLineupRequest) error {
			req.Position = validation.TrimField(req.Position)
			return v.Struct(LineupEntity, req)
		},
		DuplicateOnCreate: func(ctx context.Context, req CreateLineupRequest) (bool, error) {
			existing, err := repo.Find(ctx, req.MatchID, req.TeamID, req.PlayerID)
			return existing != nil, err
		},
		DuplicateMessage: DuplicateLineupMessage,
		ForeignKeys: map[string]string{
			"lineups_match_id_fkey":  "match_id",
			"lineups_team_id_fkey":   "team_id",
			"lineups_player_id_fkey": "player_id",
		},
	}

	a.core = crud.New[models.Lineup, CreateLineupRequest, UpdateLineupRequest](repo, rules, feed, v.Clock())
	return a
}

// CreateLineup adds a player to a team's lineup for a match
func (a *LineupApp) CreateLineup(ctx context.Context, req CreateLineupRequest) (*models.Lineup, error) {
	return a.core.Create(ctx, req)
}

// GetLineup retrieves a lineup entry by ID
func (a *LineupApp) GetLineup(ctx context.Context, id int64) (*models.Lineup, error) {
	return a.core.Get(ctx, id)
}

// ListLineupsByMatch retrieves both lineups of an existing match
func (a *LineupApp) ListLineupsByMatch(ctx context.Context, matchID int64) ([]models.Lineup, error) {
	return crud.Children(ctx, a.matches, matchID, LineupEntity, a.repo.ListByMatch)
}

// UpdateLineup changes the position of a lineup entry
func (a *LineupApp) UpdateLineup(ctx context.Context, id int64, req UpdateLineupRequest) (*models.Lineup, error) {
	return a.core.Update(ctx, id, req)
}

// DeleteLineup removes a player from a lineup
func (a *LineupApp) DeleteLineup(ctx context.Context, id int64) (bool, error) {
	return a.core.Delete(ctx, id)
}
