package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"
)

// Snapshot mirrors the reference JSON file
type Snapshot struct {
	Countries []CountrySeed `json:"countries"`
	Teams     []TeamSeed    `json:"teams"`
	Stadiums  []StadiumSeed `json:"stadiums"`
}

type CountrySeed struct {
	Name string `json:"name"`
}

// TeamSeed and StadiumSeed reference their country by name
type TeamSeed struct {
	Name     string  `json:"name"`
	Nickname *string `json:"nickname"`
	City     *string `json:"city"`
	Country  string  `json:"country"`
}

type StadiumSeed struct {
	Name     string  `json:"name"`
	City     *string `json:"city"`
	Country  string  `json:"country"`
	Capacity *int32  `json:"capacity"`
}

// Result counts what one table seed did
type Result struct {
	Table    string
	Total    int
	Inserted int
	Skipped  int
	Errors   int
}

func (r Result) String() string {
	return fmt.Sprintf("%s seed complete: %d total, %d inserted, %d skipped, %d errors",
		r.Table, r.Total, r.Inserted, r.Skipped, r.Errors)
}

// execer is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

const (
	insertCountry = `
INSERT INTO countries (name, created_at)
VALUES ($1, $2)
ON CONFLICT (name) DO NOTHING`

	insertTeam = `
INSERT INTO teams (name, nickname, city, country_id, created_at)
SELECT $1::varchar, $2::varchar, $3::varchar, c.id, $5::timestamptz FROM countries c WHERE c.name = $4
ON CONFLICT (name) DO NOTHING`

	insertStadium = `
INSERT INTO stadiums (name, city, country_id, capacity, created_at)
SELECT $1::varchar, $2::varchar, c.id, $4::integer, $5::timestamptz FROM countries c WHERE c.name = $3
ON CONFLICT (name) DO NOTHING`
)

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read JSON: %w", err)
	}
	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("unmarshal JSON: %w", err)
	}
	return &snapshot, nil
}

// seedAll inserts countries first so teams and stadiums can resolve them by name
func seedAll(ctx context.Context, db execer, snapshot *Snapshot, now time.Time) []Result {
	now = now.UTC().Truncate(time.Second)

	countries := Result{Table: "countries", Total: len(snapshot.Countries)}
	for _, c := range snapshot.Countries {
		countries.record(exec(ctx, db, c.Name, insertCountry, strings.TrimSpace(c.Name), now))
	}

	teams := Result{Table: "teams", Total: len(snapshot.Teams)}
	for _, t := range snapshot.Teams {
		teams.record(exec(ctx, db, t.Name, insertTeam, strings.TrimSpace(t.Name), t.Nickname, t.City, t.Country, now))
	}

	stadiums := Result{Table: "stadiums", Total: len(snapshot.Stadiums)}
	for _, s := range snapshot.Stadiums {
		stadiums.record(exec(ctx, db, s.Name, insertStadium, strings.TrimSpace(s.Name), s.City, s.Country, s.Capacity, now))
	}

	return []Result{countries, teams, stadiums}
}

func exec(ctx context.Context, db execer, name, sql string, args ...any) (bool, error) {
	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		log.Error().Err(err).Str("name", name).Msg("seed insert failed")
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// record tallies one insert. No affected row means the name already exists
// or the referenced country is unknown.
func (r *Result) record(inserted bool, err error) {
	switch {
	case err != nil:
		r.Errors++
	case inserted:
		r.Inserted++
	default:
		r.Skipped++
	}
}
