package stadium

import "github.com/mcdev12/footballdb/go/internal/nullable"

// CreateStadiumRequest represents the data needed to create a new stadium
type CreateStadiumRequest struct {
	Name      string  `json:"name" validate:"required,min=3,max=100"`
	City      *string `json:"city,omitempty" validate:"omitnil,min=2,max=100"`
	CountryID int64   `json:"country_id" validate:"gt=0"`
	Capacity  *int32  `json:"capacity,omitempty" validate:"omitnil,gte=0"`
}

// UpdateStadiumRequest represents the data that can be updated for a stadium
type UpdateStadiumRequest struct {
	Name      *string                `json:"name,omitempty" validate:"omitnil,min=3,max=100"`
	City      nullable.Field[string] `json:"city,omitzero" validate:"omitempty,min=2,max=100"`
	CountryID *int64                 `json:"country_id,omitempty" validate:"omitnil,gt=0"`
	Capacity  nullable.Field[int32]  `json:"capacity,omitzero" validate:"omitempty,gte=0"`
}
