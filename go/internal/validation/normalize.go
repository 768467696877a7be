package validation

import (
	"strings"

	"github.com/mcdev12/footballdb/go/internal/nullable"
)

// TrimOptional trims s; a blank value becomes nil
func TrimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

// TrimField trims a provided value; a blank value becomes an explicit null
func TrimField(f nullable.Field[string]) nullable.Field[string] {
	v, ok := f.Get()
	if !ok {
		return f
	}
	t := strings.TrimSpace(v)
	if t == "" {
		return nullable.Null[string]()
	}
	return nullable.Value(t)
}

// TrimRequired trims a provided non-nullable value in place
func TrimRequired(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
