package rpc

// IDRequest addresses a single record
type IDRequest struct {
	ID int64 `json:"id"`
}

// NameRequest looks a record up by name
type NameRequest struct {
	Name string `json:"name"`
}

// ListRequest has no parameters; lists return every record ordered by id
type ListRequest struct{}

// DeleteResponse reports whether a record was removed
type DeleteResponse struct {
	Success bool `json:"success"`
}
