package changefeed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestChange_Subject(t *testing.T) {
	tests := []struct {
		entity string
		op     Op
		want   string
	}{
		{entity: "Country", op: OpCreated, want: "football.country.created"},
		{entity: "ChampionshipParticipation", op: OpDeleted, want: "football.championship_participation.deleted"},
		{entity: "Match", op: OpUpdated, want: "football.match.updated"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Change{Entity: tt.entity, Op: tt.op}.Subject("football"))
		})
	}
}

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, r.Publish(context.Background(), Change{Entity: "Team", Op: OpCreated, ID: 1, At: at}))
	assert.NoError(t, r.Publish(context.Background(), Change{Entity: "Team", Op: OpDeleted, ID: 1, At: at}))

	got := r.Changes()
	assert.Len(t, got, 2)
	assert.Equal(t, OpDeleted, got[1].Op)

	got[0].ID = 99
	assert.Equal(t, int64(1), r.Changes()[0].ID)
}

func TestNoopPublisher(t *testing.T) {
	var p Publisher = NoopPublisher{}
	assert.NoError(t, p.Publish(context.Background(), Change{}))
}
