package match

import (
	"context"

	"github.com/mcdev12/footballdb/go/internal/apperr"
	"github.com/mcdev12/footballdb/go/internal/changefeed"
	"github.com/mcdev12/footballdb/go/internal/crud"
	"github.com/mcdev12/footballdb/go/internal/models"
	"github.com/mcdev12/footballdb/go/internal/validation"
)

// SubstitutionEntity is the display name used in substitution messages
const SubstitutionEntity = "Substitution"

// SamePlayerMessage is returned when a player would replace themselves
const SamePlayerMessage = "Substitution player in must differ from player out."

// SubstitutionsRepository defines what the substitution app needs from the repository
type SubstitutionsRepository interface {
	crud.Repository[models.Substitution, CreateSubstitutionRequest, UpdateSubstitutionRequest]
	ListByMatch(ctx context.Context, matchID int64) ([]models.Substitution, error)
}

// SubstitutionApp handles substitution business logic
type SubstitutionApp struct {
	core    *crud.App[models.Substitution, CreateSubstitutionRequest, UpdateSubstitutionRequest]
	repo    SubstitutionsRepository
	matches crud.Existence
	players crud.Existence
}

// NewSubstitutionApp creates a new substitution App
func NewSubstitutionApp(repo SubstitutionsRepository, matches, players crud.Existence, v *validation.Validator, feed changefeed.Publisher) *SubstitutionApp {
	a := &SubstitutionApp{
		repo:    repo,
		matches: matches,
		players: players,
	}

	rules := crud.Rules[models.Substitution, CreateSubstitutionRequest, UpdateSubstitutionRequest]{
		Entity: SubstitutionEntity,
		ID:     func(s *models.Substitution) int64 { return s.ID },
		ValidateCreate: func(ctx context.Context, req *CreateSubstitutionRequest) error {
			if err := v.Struct(SubstitutionEntity, req); err != nil {
				return err
			}
			if req.PlayerOutID == req.PlayerInID {
				return apperr.Validation(SubstitutionEntity, "player_in_id", SamePlayerMessage)
			}
			if err := crud.Reference(ctx, SubstitutionEntity, "match_id", a.matches, req.MatchID); err != nil {
				return err
			}
			if err := crud.Reference(ctx, SubstitutionEntity, "player_out_id", a.players, req.PlayerOutID); err != nil {
				return err
			}
			return crud.Reference(ctx, SubstitutionEntity, "player_in_id", a.players, req.PlayerInID)
		},
		ValidateUpdate: func(_ context.Context, _ *models.Substitution, req *UpdateSubstitutionRequest) error {
			return v.Struct(SubstitutionEntity, req)
		},
		ForeignKeys: map[string]string{
			"substitutions_match_id_fkey":      "match_id",
			"substitutions_player_out_id_fkey": "player_out_id",
			"substitutions_player_in_id_fkey":  "player_in_id",
		},
	}

	a.core = crud.New[models.Substitution, CreateSubstitutionRequest, UpdateSubstitutionRequest](repo, rules, feed, v.Clock())
	return a
}

// CreateSubstitution records a player change
func (a *SubstitutionApp) CreateSubstitution(ctx context.Context, req CreateSubstitutionRequest) (*models.Substitution, error) {
	return a.core.Create(ctx, req)
}

// GetSubstitution retrieves a substitution by ID
func (a *SubstitutionApp) GetSubstitution(ctx context.Context, id int64) (*models.Substitution, error) {
	return a.core.Get(ctx, id)
}

// ListSubstitutionsByMatch retrieves the substitutions of an existing match
func (a *SubstitutionApp) ListSubstitutionsByMatch(ctx context.Context, matchID int64) ([]models.Substitution, error) {
	return crud.Children(ctx, a.matches, matchID, SubstitutionEntity, a.repo.ListByMatch)
}

// UpdateSubstitution corrects the minute of a substitution
func (a *SubstitutionApp) UpdateSubstitution(ctx context.Context, id int64, req UpdateSubstitutionRequest) (*models.Substitution, error) {
	return a.core.Update(ctx, id, req)
}

// DeleteSubstitution removes a substitution
func (a *SubstitutionApp) DeleteSubstitution(ctx context.Context, id int64) (bool, error) {
	return a.core.Delete(ctx, id)
}
