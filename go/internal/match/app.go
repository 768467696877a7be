package match

import (
	"context"
	"fmt"
	"time"

	"github.com/mcdev12/footballdb/go/internal/apperr"
	"github.com/mcdev12/footballdb/go/internal/changefeed"
	"github.com/mcdev12/footballdb/go/internal/crud"
	"github.com/mcdev12/footballdb/go/internal/models"
	"github.com/mcdev12/footballdb/go/internal/sqlutil"
	"github.com/mcdev12/footballdb/go/internal/validation"
)

// Entity is the display name used in messages
const Entity = "Match"

// DefaultConflictWindow is how close two matches of the same team may be scheduled
const DefaultConflictWindow = 24 * time.Hour

// SameTeamsMessage is returned whenever a match would oppose a team to itself
const SameTeamsMessage = "Match home team and away team must be different."

// MatchRepository defines what the app layer needs from the repository
type MatchRepository interface {
	crud.Repository[models.Match, CreateMatchRequest, UpdateMatchRequest]
	ListByTeam(ctx context.Context, teamID int64) ([]models.Match, error)
	ListByChampionship(ctx context.Context, championshipID int64) ([]models.Match, error)
	ListByStadium(ctx context.Context, stadiumID int64) ([]models.Match, error)
	FindByTeams(ctx context.Context, homeTeamID, awayTeamID int64) ([]models.Match, error)
	FindConflict(ctx context.Context, teamA, teamB int64, from, to time.Time, excludeID int64) (*models.Match, error)
}

// References are the entities a match points at
type References struct {
	Teams         crud.Existence
	Championships crud.Existence
	Stadiums      crud.Existence
}

// App handles match business logic
type App struct {
	core   *crud.App[models.Match, CreateMatchRequest, UpdateMatchRequest]
	repo   MatchRepository
	refs   References
	v      *validation.Validator
	window time.Duration
}

// NewApp creates a new match App. A window of zero or less selects DefaultConflictWindow.
func NewApp(repo MatchRepository, refs References, v *validation.Validator, feed changefeed.Publisher, window time.Duration) *App {
	if window <= 0 {
		window = DefaultConflictWindow
	}
	a := &App{
		repo:   repo,
		refs:   refs,
		v:      v,
		window: window,
	}

	rules := crud.Rules[models.Match, CreateMatchRequest, UpdateMatchRequest]{
		Entity:         Entity,
		ID:             func(m *models.Match) int64 { return m.ID },
		ValidateCreate: a.validateCreate,
		ValidateUpdate: a.validateUpdate,
		ForeignKeys: map[string]string{
			"matches_home_team_id_fkey":    "home_team_id",
			"matches_away_team_id_fkey":    "away_team_id",
			"matches_championship_id_fkey": "championship_id",
			"matches_stadium_id_fkey":      "stadium_id",
		},
	}

	a.core = crud.New[models.Match, CreateMatchRequest, UpdateMatchRequest](repo, rules, feed, v.Clock())
	return a
}

func (a *App) validateCreate(ctx context.Context, req *CreateMatchRequest) error {
	if err := a.v.Struct(Entity, req); err != nil {
		return err
	}
	// notpast sees the untruncated date
	req.Date = sqlutil.UTC(req.Date)
	if req.HomeTeamID == req.AwayTeamID {
		return apperr.Validation(Entity, "away_team_id", SameTeamsMessage)
	}
	if err := a.checkReferences(ctx, &req.HomeTeamID, &req.AwayTeamID, &req.ChampionshipID, &req.StadiumID); err != nil {
		return err
	}
	return a.checkConflict(ctx, req.HomeTeamID, req.AwayTeamID, req.Date, 0)
}

func (a *App) validateUpdate(ctx context.Context, current *models.Match, req *UpdateMatchRequest) error {
	if err := a.v.Struct(Entity, req); err != nil {
		return err
	}
	if req.Date != nil {
		date := sqlutil.UTC(*req.Date)
		req.Date = &date
	}

	merged := merge(current, *req)
	if merged.HomeTeamID == merged.AwayTeamID {
		return apperr.Validation(Entity, "away_team_id", SameTeamsMessage)
	}
	if err := a.checkReferences(ctx, req.HomeTeamID, req.AwayTeamID, req.ChampionshipID, req.StadiumID); err != nil {
		return err
	}

	// scores alone never move a match in time
	if req.HomeTeamID == nil && req.AwayTeamID == nil && req.Date == nil {
		return nil
	}
	return a.checkConflict(ctx, merged.HomeTeamID, merged.AwayTeamID, merged.Date, current.ID)
}

// checkReferences verifies every supplied reference; nil pointers are skipped
func (a *App) checkReferences(ctx context.Context, homeTeamID, awayTeamID, championshipID, stadiumID *int64) error {
	checks := []struct {
		field  string
		target crud.Existence
		id     *int64
	}{
		{"home_team_id", a.refs.Teams, homeTeamID},
		{"away_team_id", a.refs.Teams, awayTeamID},
		{"championship_id", a.refs.Championships, championshipID},
		{"stadium_id", a.refs.Stadiums, stadiumID},
	}
	for _, c := range checks {
		if c.id == nil {
			continue
		}
		if err := crud.Reference(ctx, Entity, c.field, c.target, *c.id); err != nil {
			return err
		}
	}
	return nil
}

// checkConflict rejects a date within the window of another match of either team
func (a *App) checkConflict(ctx context.Context, homeTeamID, awayTeamID int64, date time.Time, excludeID int64) error {
	other, err := a.repo.FindConflict(ctx, homeTeamID, awayTeamID, date.Add(-a.window), date.Add(a.window), excludeID)
	if err != nil {
		return err
	}
	if other != nil {
		return apperr.Conflict(Entity, other.ID, fmt.Sprintf(
			"Scheduling conflict: a team already plays match %d on %s.",
			other.ID, other.Date.Format(time.RFC3339),
		))
	}
	return nil
}

// Entity returns the display name of the entity
func (a *App) Entity() string {
	return Entity
}

// Exists returns a not-found error unless the match exists
func (a *App) Exists(ctx context.Context, id int64) error {
	return a.core.Exists(ctx, id)
}

// CreateMatch schedules a new match
func (a *App) CreateMatch(ctx context.Context, req CreateMatchRequest) (*models.Match, error) {
	return a.core.Create(ctx, req)
}

// GetMatch retrieves a match by ID
func (a *App) GetMatch(ctx context.Context, id int64) (*models.Match, error) {
	return a.core.Get(ctx, id)
}

// ListMatches retrieves all matches
func (a *App) ListMatches(ctx context.Context) ([]models.Match, error) {
	return a.core.List(ctx)
}

// ListMatchesByTeam retrieves the home and away matches of an existing team
func (a *App) ListMatchesByTeam(ctx context.Context, teamID int64) ([]models.Match, error) {
	return crud.Children(ctx, a.refs.Teams, teamID, Entity, a.repo.ListByTeam)
}

// ListMatchesByChampionship retrieves the fixtures of an existing championship
func (a *App) ListMatchesByChampionship(ctx context.Context, championshipID int64) ([]models.Match, error) {
	return crud.Children(ctx, a.refs.Championships, championshipID, Entity, a.repo.ListByChampionship)
}

// ListMatchesByStadium retrieves the matches hosted by an existing stadium
func (a *App) ListMatchesByStadium(ctx context.Context, stadiumID int64) ([]models.Match, error) {
	return crud.Children(ctx, a.refs.Stadiums, stadiumID, Entity, a.repo.ListByStadium)
}

// FindMatchesByTeams retrieves every match between a home and an away team
func (a *App) FindMatchesByTeams(ctx context.Context, homeTeamID, awayTeamID int64) ([]models.Match, error) {
	if err := a.refs.Teams.Exists(ctx, homeTeamID); err != nil {
		return nil, err
	}
	return crud.Children(ctx, a.refs.Teams, awayTeamID, Entity, func(ctx context.Context, awayTeamID int64) ([]models.Match, error) {
		return a.repo.FindByTeams(ctx, homeTeamID, awayTeamID)
	})
}

// UpdateMatch updates an existing match with validation
func (a *App) UpdateMatch(ctx context.Context, id int64, req UpdateMatchRequest) (*models.Match, error) {
	return a.core.Update(ctx, id, req)
}

// DeleteMatch deletes a match with its lineups and substitutions
func (a *App) DeleteMatch(ctx context.Context, id int64) (bool, error) {
	return a.core.Delete(ctx, id)
}
