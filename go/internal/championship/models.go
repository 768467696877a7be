package championship

import (
	"time"

	"github.com/mcdev12/footballdb/go/internal/nullable"
)

// CreateChampionshipRequest represents the data needed to create a new championship
type CreateChampionshipRequest struct {
	Name      string     `json:"name" validate:"required,max=100"`
	CountryID *int64     `json:"country_id,omitempty" validate:"omitnil,gt=0"`
	Type      *string    `json:"type,omitempty" validate:"omitnil,max=50"`
	Season    *string    `json:"season,omitempty" validate:"omitnil,max=20,digits"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

// UpdateChampionshipRequest represents the data that can be updated for a championship.
// Nullable columns use nullable.Field so that null clears them and absence leaves them alone.
type UpdateChampionshipRequest struct {
	Name      *string                   `json:"name,omitempty" validate:"omitnil,min=1,max=100"`
	CountryID nullable.Field[int64]     `json:"country_id,omitzero" validate:"omitempty,gt=0"`
	Type      nullable.Field[string]    `json:"type,omitzero" validate:"omitempty,max=50"`
	Season    nullable.Field[string]    `json:"season,omitzero" validate:"omitempty,max=20,digits"`
	StartDate nullable.Field[time.Time] `json:"start_date,omitzero"`
	EndDate   nullable.Field[time.Time] `json:"end_date,omitzero"`
}
