package country

// CreateCountryRequest represents the data needed to create a new country
type CreateCountryRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// UpdateCountryRequest represents the data that can be updated for a country
type UpdateCountryRequest struct {
	Name *string `json:"name,omitempty" validate:"omitnil,min=1,max=100"`
}
