package apperr

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "validation", err: Validation("Country", "name", "Country name cannot be empty."), want: KindValidation},
		{name: "not found", err: NotFound("Team", 7), want: KindNotFound},
		{name: "duplicate", err: Duplicate("Country", "Country with this name already exists."), want: KindDuplicate},
		{name: "conflict", err: Conflict("Match", 3, "clash"), want: KindConflict},
		{name: "store", err: Store("Team", "create", sql.ErrConnDone), want: KindStore},
		{name: "wrapped", err: fmt.Errorf("outer: %w", NotFound("Stadium", 1)), want: KindNotFound},
		{name: "plain", err: errors.New("boom"), want: KindUnknown},
		{name: "nil", err: nil, want: KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestNotFound_Message(t *testing.T) {
	assert.Equal(t, "Team with ID 42 not found.", NotFound("Team", 42).Error())
	assert.Equal(t, "Stadium with name 'Maracanã' not found.", NotFoundByName("Stadium", "Maracanã").Error())
}

func TestStore_HidesCause(t *testing.T) {
	cause := errors.New(`pq: relation "teams" does not exist`)
	err := Store("ChampionshipParticipation", "delete", cause)

	assert.Equal(t, "failed to delete championship participation", err.Error())
	assert.NotContains(t, err.Error(), "pq:")
	assert.ErrorIs(t, err, cause)
}

func TestErrorsIs_MatchesKind(t *testing.T) {
	err := fmt.Errorf("wrap: %w", Duplicate("Team", "dup"))

	assert.True(t, errors.Is(err, &Error{Kind: KindDuplicate}))
	assert.False(t, errors.Is(err, &Error{Kind: KindNotFound}))
}

func TestWithIndex(t *testing.T) {
	err := WithIndex(Validation("Player", "name", "Player name cannot be empty."), 2)

	var e *Error
	assert.True(t, errors.As(err, &e))
	assert.Equal(t, "item 2: Player name cannot be empty.", e.Message)
	assert.Equal(t, "name", e.Field)
	assert.Equal(t, KindValidation, e.Kind)

	plain := errors.New("x")
	assert.Same(t, plain, WithIndex(plain, 0))
}
