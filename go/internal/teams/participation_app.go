package teams

import (
	"context"

	"github.com/mcdev12/footballdb/go/internal/changefeed"
	"github.com/mcdev12/footballdb/go/internal/crud"
	"github.com/mcdev12/footballdb/go/internal/models"
	"github.com/mcdev12/footballdb/go/internal/validation"
)

// ParticipationEntity is the display name used in participation messages
const ParticipationEntity = "Participation"

// DuplicateParticipationMessage is returned when the team is already registered for that season
const DuplicateParticipationMessage = "Team is already registered in this championship for this season."

// ParticipationsRepository defines what the participation app needs from the repository
type ParticipationsRepository interface {
	crud.Repository[models.ChampionshipParticipation, CreateParticipationRequest, UpdateParticipationRequest]
	Find(ctx context.Context, championshipID, teamID int64, season *string) (*models.ChampionshipParticipation, error)
	ListByTeam(ctx context.Context, teamID int64) ([]models.ChampionshipParticipation, error)
	ListByChampionship(ctx context.Context, championshipID int64) ([]models.ChampionshipParticipation, error)
}

// ParticipationApp handles championship participation business logic
type ParticipationApp struct {
	core          *crud.App[models.ChampionshipParticipation, CreateParticipationRequest, UpdateParticipationRequest]
	repo          ParticipationsRepository
	teams         crud.Existence
	championships crud.Existence
}

// NewParticipationApp creates a new participation App
func NewParticipationApp(repo ParticipationsRepository, teams, championships crud.Existence, v *validation.Validator, feed changefeed.Publisher) *ParticipationApp {
	a := &ParticipationApp{
		repo:          repo,
		teams:         teams,
		championships: championships,
	}

	rules := crud.Rules[models.ChampionshipParticipation, CreateParticipationRequest, UpdateParticipationRequest]{
		Entity: ParticipationEntity,
		ID:     func(p *models.ChampionshipParticipation) int64 { return p.ID },
		ValidateCreate: func(ctx context.Context, req *CreateParticipationRequest) error {
			req.Season = validation.TrimOptional(req.Season)
			if err := v.Struct(ParticipationEntity, req); err != nil {
				return err
			}
			if err := crud.Reference(ctx, ParticipationEntity, "championship_id", a.championships, req.ChampionshipID); err != nil {
				return err
			}
			return crud.Reference(ctx, ParticipationEntity, "team_id", a.teams, req.TeamID)
		},
		ValidateUpdate: func(_ context.Context, _ *models.ChampionshipParticipation, req *UpdateParticipationRequest) error {
			req.Season = validation.TrimField(req.Season)
			return v.Struct(ParticipationEntity, req)
		},
		DuplicateOnCreate: func(ctx context.Context, req CreateParticipationRequest) (bool, error) {
			existing, err := repo.Find(ctx, req.ChampionshipID, req.TeamID, req.Season)
			return existing != nil, err
		},
		DuplicateOnUpdate: func(ctx context.Context, current *models.ChampionshipParticipation, req UpdateParticipationRequest) (bool, error) {
			if !req.Season.IsSet() {
				return false, nil
			}
			existing, err := repo.Find(ctx, current.ChampionshipID, current.TeamID, req.Season.Ptr())
			return existing != nil && existing.ID != current.ID, err
		},
		DuplicateMessage: DuplicateParticipationMessage,
		ForeignKeys: map[string]string{
			"championship_participations_championship_id_fkey": "championship_id",
			"championship_participations_team_id_fkey":         "team_id",
		},
	}

	a.core = crud.New[models.ChampionshipParticipation, CreateParticipationRequest, UpdateParticipationRequest](repo, rules, feed, v.Clock())
	return a
}

// CreateParticipation registers a team in a championship
func (a *ParticipationApp) CreateParticipation(ctx context.Context, req CreateParticipationRequest) (*models.ChampionshipParticipation, error) {
	return a.core.Create(ctx, req)
}

// GetParticipation retrieves a participation by ID
func (a *ParticipationApp) GetParticipation(ctx context.Context, id int64) (*models.ChampionshipParticipation, error) {
	return a.core.Get(ctx, id)
}

// ListParticipations retrieves every participation
func (a *ParticipationApp) ListParticipations(ctx context.Context) ([]models.ChampionshipParticipation, error) {
	return a.core.List(ctx)
}

// UpdateParticipation changes the season of a participation
func (a *ParticipationApp) UpdateParticipation(ctx context.Context, id int64, req UpdateParticipationRequest) (*models.ChampionshipParticipation, error) {
	return a.core.Update(ctx, id, req)
}

// DeleteParticipation removes a participation
func (a *ParticipationApp) DeleteParticipation(ctx context.Context, id int64) (bool, error) {
	return a.core.Delete(ctx, id)
}

// ListParticipationsByTeam retrieves the championships an existing team takes part in
func (a *ParticipationApp) ListParticipationsByTeam(ctx context.Context, teamID int64) ([]models.ChampionshipParticipation, error) {
	return crud.Children(ctx, a.teams, teamID, ParticipationEntity, a.repo.ListByTeam)
}

// ListParticipationsByChampionship retrieves the teams registered in an existing championship
func (a *ParticipationApp) ListParticipationsByChampionship(ctx context.Context, championshipID int64) ([]models.ChampionshipParticipation, error) {
	return crud.Children(ctx, a.championships, championshipID, ParticipationEntity, a.repo.ListByChampionship)
}
