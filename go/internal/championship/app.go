package championship

import (
	"context"
	"strings"
	"time"

	"github.com/mcdev12/footballdb/go/internal/apperr"
	"github.com/mcdev12/footballdb/go/internal/changefeed"
	"github.com/mcdev12/footballdb/go/internal/crud"
	"github.com/mcdev12/footballdb/go/internal/models"
	"github.com/mcdev12/footballdb/go/internal/validation"
)

// Entity is the display name used in messages
const Entity = "Championship"

// DuplicateNameMessage is returned whenever a championship name is already taken
const DuplicateNameMessage = "Championship with this name already exists."

// ChampionshipRepository defines what the app layer needs from the repository
type ChampionshipRepository interface {
	crud.Repository[models.Championship, CreateChampionshipRequest, UpdateChampionshipRequest]
	GetByName(ctx context.Context, name string) (*models.Championship, error)
	ListByCountry(ctx context.Context, countryID int64) ([]models.Championship, error)
}

// App handles championship business logic
type App struct {
	core      *crud.App[models.Championship, CreateChampionshipRequest, UpdateChampionshipRequest]
	repo      ChampionshipRepository
	countries crud.Existence
}

// NewApp creates a new championship App
func NewApp(repo ChampionshipRepository, countries crud.Existence, v *validation.Validator, feed changefeed.Publisher) *App {
	a := &App{
		repo:      repo,
		countries: countries,
	}

	rules := crud.Rules[models.Championship, CreateChampionshipRequest, UpdateChampionshipRequest]{
		Entity: Entity,
		ID:     func(c *models.Championship) int64 { return c.ID },
		ValidateCreate: func(ctx context.Context, req *CreateChampionshipRequest) error {
			req.Name = strings.TrimSpace(req.Name)
			req.Type = validation.TrimOptional(req.Type)
			req.Season = validation.TrimOptional(req.Season)
			if err := v.Struct(Entity, req); err != nil {
				return err
			}
			if err := checkDateRange(req.StartDate, req.EndDate); err != nil {
				return err
			}
			if req.CountryID != nil {
				return crud.Reference(ctx, Entity, "country_id", a.countries, *req.CountryID)
			}
			return nil
		},
		ValidateUpdate: func(ctx context.Context, current *models.Championship, req *UpdateChampionshipRequest) error {
			req.Name = validation.TrimRequired(req.Name)
			req.Type = validation.TrimField(req.Type)
			req.Season = validation.TrimField(req.Season)
			if err := v.Struct(Entity, req); err != nil {
				return err
			}

			start, end := current.StartDate, current.EndDate
			req.StartDate.ApplyTo(&start)
			req.EndDate.ApplyTo(&end)
			if err := checkDateRange(start, end); err != nil {
				return err
			}

			if countryID, ok := req.CountryID.Get(); ok {
				return crud.Reference(ctx, Entity, "country_id", a.countries, countryID)
			}
			return nil
		},
		DuplicateOnCreate: func(ctx context.Context, req CreateChampionshipRequest) (bool, error) {
			existing, err := repo.GetByName(ctx, req.Name)
			return existing != nil, err
		},
		DuplicateOnUpdate: func(ctx context.Context, current *models.Championship, req UpdateChampionshipRequest) (bool, error) {
			if req.Name == nil || *req.Name == current.Name {
				return false, nil
			}
			existing, err := repo.GetByName(ctx, *req.Name)
			return existing != nil && existing.ID != current.ID, err
		},
		DuplicateMessage: DuplicateNameMessage,
		ForeignKeys: map[string]string{
			"championships_country_id_fkey": "country_id",
		},
	}

	a.core = crud.New[models.Championship, CreateChampionshipRequest, UpdateChampionshipRequest](repo, rules, feed, v.Clock())
	return a
}

// checkDateRange rejects an end date before the start date when both are known
func checkDateRange(start, end *time.Time) error {
	if start == nil || end == nil {
		return nil
	}
	if end.Before(*start) {
		return apperr.Validation(Entity, "end_date", "Championship end date cannot be before its start date.")
	}
	return nil
}

// Entity returns the display name of the entity
func (a *App) Entity() string {
	return Entity
}

// Exists returns a not-found error unless the championship exists
func (a *App) Exists(ctx context.Context, id int64) error {
	return a.core.Exists(ctx, id)
}

// CreateChampionship creates a new championship with validation
func (a *App) CreateChampionship(ctx context.Context, req CreateChampionshipRequest) (*models.Championship, error) {
	return a.core.Create(ctx, req)
}

// GetChampionship retrieves a championship by ID
func (a *App) GetChampionship(ctx context.Context, id int64) (*models.Championship, error) {
	return a.core.Get(ctx, id)
}

// GetChampionshipByName retrieves a championship by its exact name
func (a *App) GetChampionshipByName(ctx context.Context, name string) (*models.Championship, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.Validation(Entity, "name", "Championship name cannot be empty.")
	}

	championship, err := a.repo.GetByName(ctx, name)
	if err != nil {
		return nil, a.core.Fail("get", err)
	}
	if championship == nil {
		return nil, apperr.NotFoundByName(Entity, name)
	}
	return championship, nil
}

// ListChampionships retrieves all championships
func (a *App) ListChampionships(ctx context.Context) ([]models.Championship, error) {
	return a.core.List(ctx)
}

// ListChampionshipsByCountry retrieves the championships of an existing country
func (a *App) ListChampionshipsByCountry(ctx context.Context, countryID int64) ([]models.Championship, error) {
	return crud.Children(ctx, a.countries, countryID, Entity, a.repo.ListByCountry)
}

// UpdateChampionship updates an existing championship with validation
func (a *App) UpdateChampionship(ctx context.Context, id int64, req UpdateChampionshipRequest) (*models.Championship, error) {
	return a.core.Update(ctx, id, req)
}

// DeleteChampionship deletes a championship by ID
func (a *App) DeleteChampionship(ctx context.Context, id int64) (bool, error) {
	return a.core.Delete(ctx, id)
}
